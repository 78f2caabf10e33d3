// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

// ValidateEntityTag checks that b is a single entity-tag: an optional "W/" weak
// prefix followed by a double-quoted, non-empty opaque tag. The closing quote must
// be the last byte and no quote may appear inside the tag.
func ValidateEntityTag(b []byte) error {
	i := 0
	if len(b) > 0 && b[0] == 'W' {
		if len(b) < 2 {
			return malformed(len(b), ErrPrematureEnd)
		}
		if b[1] != '/' {
			return malformed(1, ErrUnexpectedByte)
		}
		i = 2
	}

	if len(b)-i < 2 {
		if len(b) > i && b[i] != '"' {
			return malformed(i, ErrUnexpectedByte)
		}
		return malformed(len(b), ErrPrematureEnd)
	}
	if b[i] != '"' {
		return malformed(i, ErrUnexpectedByte)
	}

	last := len(b) - 1
	for j := i + 1; j < last; j++ {
		if b[j] == '"' {
			return malformed(j, ErrUnexpectedByte)
		}
	}
	if b[last] != '"' {
		return malformed(len(b), ErrPrematureEnd)
	}
	if last == i+1 {
		// empty opaque tag
		return malformed(last, ErrUnexpectedByte)
	}
	return nil
}
