// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package middleware applies header inspection to HTTP servers.

A Guard pairs an inspect.Inspector with a PolicyResolver, usually a
*config.Config, and checks every request against the policy of its path.
Requests that the policy blocks are answered with 400 Bad Request and never
reach the wrapped handler.

# net/http

	guard := middleware.New(inspect.New(), cfg, middleware.WithLogger(logger.NewLogr()))
	handler := recovery.Middleware(log)(guard.Handler(proxy))

# fasthttp

	server := &fasthttp.Server{
		Handler:                       guard.FastHTTP(proxy),
		DisableHeaderNamesNormalizing: true,
	}

With header name normalizing disabled, names reach inspection exactly as the
client sent them, which is what inspect.MatchExact is meant for.
*/
package middleware
