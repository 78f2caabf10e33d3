// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

// captureLogger records every formatted log line.
func captureLogger() (logr.Logger, func() []string) {
	var (
		mu    sync.Mutex
		lines []string
	)
	log := funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, prefix+args)
	}, funcr.Options{})
	return log, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), lines...)
	}
}

func TestMiddleware_NoPanic(t *testing.T) {
	t.Parallel()

	log, lines := captureLogger()
	handler := Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", rec.Body.String())
	assert.Empty(t, lines())
}

func TestMiddleware_RecoverFromPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string value", "test panic", "panic: test panic"},
		{"error value", errors.New("nil map"), "panic: nil map"},
		{"other value", 42, "panic: 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, lines := captureLogger()
			handler := Middleware(log)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				panic(tt.value)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/downloads/a.iso", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), "Internal Server Error")

			logged := lines()
			require.Len(t, logged, 1)
			assert.Contains(t, logged[0], "recovered from panic in handler")
			assert.Contains(t, logged[0], tt.want)
			assert.Contains(t, logged[0], `"method"="POST"`)
			assert.Contains(t, logged[0], `"path"="/downloads/a.iso"`)
			assert.Contains(t, logged[0], `"stack"=`)
		})
	}
}

func TestMiddleware_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	log, lines := captureLogger()
	handler := Middleware(log)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Empty(t, lines())
}

func TestPanicError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	assert.ErrorIs(t, panicError{sentinel}, sentinel)
	assert.NoError(t, errors.Unwrap(panicError{"text"}))
}

func TestFastHTTP_RecoverFromPanic(t *testing.T) {
	t.Parallel()

	log, lines := captureLogger()
	handler := FastHTTP(log)(func(*fasthttp.RequestCtx) {
		panic("boom")
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.SetRequestURI("/media/v.mp4")
	handler(&ctx)

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	logged := lines()
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "panic: boom")
	assert.Contains(t, logged[0], `"path"="/media/v.mp4"`)
}

func TestFastHTTP_NoPanic(t *testing.T) {
	t.Parallel()

	log, lines := captureLogger()
	handler := FastHTTP(log)(func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString("success")
	})

	var ctx fasthttp.RequestCtx
	handler(&ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "success", string(ctx.Response.Body()))
	assert.Empty(t, lines())
}
