// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package inspect maps request header fields to the grammar validators and
applies a per-scope Policy: whether to inspect at all, what to log, and when a
malformed value blocks the request.

# Basic Usage

	in := inspect.New(inspect.WithReporter(inspect.NewSlogReporter(logger)))

	p := inspect.DefaultPolicy()
	p.Inspect = true
	p.BlockViolations = true

	res := in.Inspect(ctx, p, []inspect.Field{
	    {Name: "Range", Value: []byte("bytes=500-0")},
	})
	if res.Blocked() {
	    code := httperr.Code(res.Err()) // 400
	}

# Header Names

Only Range, If-Range, If-Modified-Since, If-Unmodified-Since, Date and
Accept-Encoding are validated. By default names must match exactly, so
"range" is an uninspected header. Set Policy.NameMatching to
MatchCaseInsensitive to classify names regardless of case.

# Block Rules

Policy.BlockRule narrows blocking to the violations a rule matches:

	p.BlockRule = rule.MustCompile(`violation.header == "Range"`)

# Concurrency

Inspector is safe for concurrent use. Policy is a value and may be shared.
*/
package inspect
