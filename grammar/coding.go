// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

// codings maps the first byte of each accepted content-coding to its full name.
// The first bytes are unique, so one lookup selects the only candidate.
var codings = map[byte]string{
	'*': "*",
	'c': "compress",
	'd': "deflate",
	'e': "exi",
	'g': "gzip",
	'i': "identity",
	'p': "pack200-gzip",
}

// ContentCodings returns the accepted content-coding names.
func ContentCodings() []string {
	return []string{"*", "compress", "deflate", "exi", "gzip", "identity", "pack200-gzip"}
}

// ParseContentCoding matches one content-coding from the allow-list at the start
// of b and returns its length. Codings outside the list are rejected with
// ErrUnknownToken at the first byte that differs from the only candidate.
func ParseContentCoding(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, malformed(0, ErrPrematureEnd)
	}
	name, ok := codings[b[0]]
	if !ok {
		return 0, malformed(0, ErrUnknownToken)
	}
	if n := matchLiteral(b, name); n >= 0 {
		return n, malformed(n, ErrUnknownToken)
	}
	return len(name), nil
}
