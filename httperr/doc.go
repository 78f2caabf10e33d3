// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides errors that carry the HTTP status a handler should
answer with. A blocked request travels from the inspector to the middleware as
a CodedError with status 400. CodedError supports errors.Is and errors.As.

# Basic Usage

Attach a status to an error:

	err := httperr.WithCode(violation, http.StatusBadRequest)

Any error type with an HTTPCode() int method (see Coder) carries its own
status without wrapping.

# Extracting Status Codes

Extract the HTTP status code from an error chain:

	code := httperr.Code(err)
	// the first Coder in the chain decides
	// 500 when there is none, 200 when err is nil

# Error Wrapping

CodedError supports the standard Go error wrapping pattern:

	err := httperr.WithCode(violation, http.StatusBadRequest)

	// errors.Is works through the wrapper
	if errors.Is(err, grammar.ErrLimitExceeded) {
		// too many byte-range sets
	}

	// errors.As can extract the CodedError
	var coded *httperr.CodedError
	if errors.As(err, &coded) {
		log.Printf("HTTP %d: %s", coded.HTTPCode(), coded.Error())
	}

# Responding

Write answers a request from an error. Only the status text is sent to the
client:

	res := inspector.Inspect(ctx, policy, fields)
	if err := res.Err(); err != nil {
		httperr.Write(w, err) // 400 Bad Request
		return
	}

WriteFastHTTP does the same for a *fasthttp.RequestCtx.
*/
package httperr
