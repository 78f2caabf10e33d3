// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/go-logr/logr"
)

// Middleware returns an HTTP middleware that recovers from panics in next.
// The panic value, request method and path, and the stack trace are logged to
// log at error level, and the client gets a 500 Internal Server Error.
//
// A panic with http.ErrAbortHandler is re-raised so net/http can abort the
// response as it expects.
func Middleware(log logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				log.Error(panicError{v}, "recovered from panic in handler",
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// panicError carries a recovered value as an error for logr.
type panicError struct {
	value any
}

func (p panicError) Error() string {
	if err, ok := p.value.(error); ok {
		return "panic: " + err.Error()
	}
	return "panic: " + fmtValue(p.value)
}

func (p panicError) Unwrap() error {
	err, _ := p.value.(error)
	return err
}
