// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package grammar provides strict syntax validators for a fixed set of HTTP request
header values: Range, If-Range, If-Modified-Since, If-Unmodified-Since, Date and
Accept-Encoding.

Every validator is a hand-written parser for the RFC grammar of its header. A
value is accepted only when it matches byte for byte; leading or trailing
garbage, partial matches and out-of-range numbers are all rejected.

# Basic Usage

	if err := grammar.ValidateRange([]byte("bytes=0-499,500-999"), 5); err != nil {
		// reject or log
	}

	err := grammar.ValidateHTTPDate([]byte("Sun, 06 Nov 1994 08:49:37 GMT"))

# Error Handling

A malformed value yields a *SyntaxError carrying the offset of the first
offending byte (or the value length when the value ended too early) and one of
the reason sentinels:

	err := grammar.ValidateRange([]byte("bytes=500-0"), 5)
	if errors.Is(err, grammar.ErrOrderingViolation) {
		fmt.Println(grammar.Offset(err)) // 11
	}

Only the first violation is reported. Validators never panic on any input.

# Partial Parsers

ParseQValue and ParseContentCoding parse a token at the start of a slice and
return how many bytes they consumed, so list grammars can continue right after
the token.

# Concurrency

All functions are pure. They keep no state between calls, never modify or retain
the input slice, and are safe for concurrent use.
*/
package grammar
