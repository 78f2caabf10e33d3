// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery provides panic recovery middleware for HTTP handlers.
//
// The middleware recovers from panics in HTTP handlers, logs them through a
// logr.Logger and returns a 500 Internal Server Error response to the client.
// A single panicking request therefore never takes the server down.
//
// # Basic Usage
//
//	handler := recovery.Middleware(logger.NewLogr())(mux)
//	http.ListenAndServe(":8080", handler)
package recovery
