// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/go-logr/logr"
	"github.com/valyala/fasthttp"
)

// FastHTTP is Middleware for fasthttp request handlers.
func FastHTTP(log logr.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				log.Error(panicError{v}, "recovered from panic in handler",
					"method", string(ctx.Method()),
					"path", string(ctx.Path()),
					"stack", string(debug.Stack()),
				)
				ctx.Error(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next(ctx)
		}
	}
}
