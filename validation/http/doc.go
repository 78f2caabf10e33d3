// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides validation functions for HTTP header field lines and the
upstream URLs of the guarding proxy.

These checks sit in front of header inspection: they reject what any
conforming HTTP parser would already refuse (CRLF injection, control
characters, names that are not RFC 9110 tokens), so that the grammar
validators only ever see values a real server could have received.

# Field Lines

Split a "Name: value" line read from a file or terminal:

	name, value, err := http.SplitFieldLine("Range: bytes=0-499")
	if errors.Is(err, http.ErrMalformedFieldLine) {
		// not a header line
	}

The name and value can also be checked separately:

	if err := http.ValidateHeaderName("If-Range"); err != nil {
		// Handle invalid header name
	}

Length limits apply: 256 bytes for names, 8192 for values.

# Upstream URLs

	target, err := http.ValidateUpstreamURL("http://127.0.0.1:9000")

Upstream URLs must use http or https, include a host, and carry no fragment.
*/
package http
