// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package middleware_test

import (
	"bufio"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/stacklok/headerinspect/inspect"
	"github.com/stacklok/headerinspect/middleware"
)

func fastOK(calls *int) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		*calls++
		ctx.SetBodyString("ok")
	}
}

// newRequestCtx builds a request context with header names kept as given.
func newRequestCtx(path string, kv ...string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.DisableNormalizing()
	ctx.Request.SetRequestURI(path)
	for i := 0; i+1 < len(kv); i += 2 {
		ctx.Request.Header.Add(kv[i], kv[i+1])
	}
	return &ctx
}

func TestGuard_FastHTTP(t *testing.T) {
	t.Parallel()

	caseInsensitive := blocking()
	caseInsensitive.NameMatching = inspect.MatchCaseInsensitive

	tests := []struct {
		name      string
		policy    inspect.Policy
		headers   []string
		wantCode  int
		wantCalls int
	}{
		{
			name:      "valid range",
			policy:    blocking(),
			headers:   []string{"Range", "bytes=0-499,500-999"},
			wantCode:  fasthttp.StatusOK,
			wantCalls: 1,
		},
		{
			name:      "reversed range",
			policy:    blocking(),
			headers:   []string{"Range", "bytes=500-0"},
			wantCode:  fasthttp.StatusBadRequest,
			wantCalls: 0,
		},
		{
			name:      "lowercase name is not inspected under exact matching",
			policy:    blocking(),
			headers:   []string{"range", "bytes=500-0"},
			wantCode:  fasthttp.StatusOK,
			wantCalls: 1,
		},
		{
			name:      "lowercase name under case-insensitive matching",
			policy:    caseInsensitive,
			headers:   []string{"range", "bytes=500-0"},
			wantCode:  fasthttp.StatusBadRequest,
			wantCalls: 0,
		},
		{
			name:      "inspection off",
			policy:    inspect.DefaultPolicy(),
			headers:   []string{"Range", "bytes=500-0"},
			wantCode:  fasthttp.StatusOK,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls int
			handler := middleware.New(quietInspector(t), middleware.StaticPolicy(tt.policy)).FastHTTP(fastOK(&calls))

			ctx := newRequestCtx("/file", tt.headers...)
			handler(ctx)

			assert.Equal(t, tt.wantCode, ctx.Response.StatusCode())
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantCode == fasthttp.StatusBadRequest {
				assert.Equal(t, "Bad Request", string(ctx.Response.Body()))
			}
		})
	}
}

func TestGuard_FastHTTP_LogsBlock(t *testing.T) {
	t.Parallel()

	log, logs := observedLogger()
	var calls int
	handler := middleware.New(quietInspector(t), middleware.StaticPolicy(blocking()), middleware.WithLogger(log)).
		FastHTTP(fastOK(&calls))

	handler(newRequestCtx("/media/v.mp4", "If-Range", `W/""`))

	entries := logs.FilterMessage("blocked request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/media/v.mp4", fields["path"])
	assert.Equal(t, "If-Range", fields["header"])
}

func TestGuard_FastHTTP_Server(t *testing.T) {
	t.Parallel()

	var calls int
	server := &fasthttp.Server{
		Handler:                       middleware.New(quietInspector(t), middleware.StaticPolicy(blocking())).FastHTTP(fastOK(&calls)),
		DisableHeaderNamesNormalizing: true,
	}
	ln := fasthttputil.NewInmemoryListener()
	t.Cleanup(func() { _ = ln.Close() })
	go func() { _ = server.Serve(ln) }()

	roundTrip := func(raw string) *http.Response {
		conn, err := ln.Dial()
		require.NoError(t, err)
		t.Cleanup(func() { _ = conn.Close() })
		_, err = io.WriteString(conn, raw)
		require.NoError(t, err)
		resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	resp := roundTrip("GET /a HTTP/1.1\r\nHost: example.com\r\nRange: bytes=500-0\r\n\r\n")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = roundTrip("GET /a HTTP/1.1\r\nHost: example.com\r\nrange: bytes=500-0\r\n\r\n")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = roundTrip("GET /a HTTP/1.1\r\nHost: example.com\r\nRange: bytes=0-1\r\n\r\n")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}
