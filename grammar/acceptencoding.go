// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

// ValidateAcceptEncoding checks an Accept-Encoding header value: a comma separated
// list of allow-listed content-codings, each optionally followed by ";q=" weight.
// A single optional space is allowed around each separator. An empty value and
// the lone wildcard "*" are always valid.
func ValidateAcceptEncoding(b []byte) error {
	if len(b) == 0 || (len(b) == 1 && b[0] == '*') {
		return nil
	}

	skipSpace := func(i int) int {
		if i < len(b) && b[i] == ' ' {
			return i + 1
		}
		return i
	}

	i := 0
	for i < len(b) {
		n, err := ParseContentCoding(b[i:])
		if err != nil {
			return shift(err, i)
		}
		i = skipSpace(i + n)
		if i == len(b) {
			return nil
		}

		if b[i] == ';' {
			i++
			if i >= len(b) {
				return malformed(len(b), ErrPrematureEnd)
			}
			i = skipSpace(i)
			n, err := ParseQValue(b[i:])
			if err != nil {
				return shift(err, i)
			}
			i = skipSpace(i + n)
			if i == len(b) {
				return nil
			}
		}

		if b[i] != ',' {
			return malformed(i, ErrUnexpectedByte)
		}
		i = skipSpace(i + 1)
	}

	// a separator was the last thing in the value
	return malformed(len(b), ErrPrematureEnd)
}
