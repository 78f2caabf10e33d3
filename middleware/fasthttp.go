// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"github.com/valyala/fasthttp"

	"github.com/stacklok/headerinspect/httperr"
	"github.com/stacklok/headerinspect/inspect"
)

// FastHTTP wraps next for fasthttp.
//
// Header fields are inspected in wire order. Names arrive exactly as sent when
// the server sets DisableHeaderNamesNormalizing; otherwise fasthttp normalizes
// them like net/http does. Field values alias the request buffers and are
// only valid while the handler runs.
func (g *Guard) FastHTTP(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		res := g.inspect(ctx, string(ctx.Path()), fastFields(&ctx.Request.Header))
		if res.Blocked() {
			httperr.WriteFastHTTP(ctx, res.Err())
			return
		}
		next(ctx)
	}
}

func fastFields(h *fasthttp.RequestHeader) []inspect.Field {
	fields := make([]inspect.Field, 0, h.Len())
	h.VisitAll(func(key, value []byte) {
		fields = append(fields, inspect.Field{Name: string(key), Value: value})
	})
	return fields
}
