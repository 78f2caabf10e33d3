// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

// maxQValueLength is len("q=1.000").
const maxQValueLength = 7

// ParseQValue parses a quality weight at the start of b:
//
//	weight = "q=" ( "0" [ "." 0*3DIGIT ] / "1" [ "." 0*3("0") ] )
//
// It returns the number of bytes that belong to the weight so a list parser can
// resume right after it. The weight ends at the first byte that cannot extend it.
// If that byte is a digit the weight is out of range or over-precise, and an
// ErrUnexpectedByte is returned at that digit together with the consumed length.
func ParseQValue(b []byte) (int, error) {
	if n := matchLiteral(b, "q="); n >= 0 {
		if n == len(b) {
			return 0, malformed(n, ErrPrematureEnd)
		}
		return 0, malformed(n, ErrUnexpectedByte)
	}
	if len(b) < 3 {
		return 2, malformed(len(b), ErrPrematureEnd)
	}

	var fraction func(c byte) bool
	switch b[2] {
	case '0':
		fraction = isDigit
	case '1':
		fraction = func(c byte) bool { return c == '0' }
	default:
		return 2, malformed(2, ErrUnexpectedByte)
	}

	n := 3
	if n < len(b) && b[n] == '.' {
		n++
		for n < len(b) && n < maxQValueLength && fraction(b[n]) {
			n++
		}
	}
	if n < len(b) && isDigit(b[n]) {
		return n, malformed(n, ErrUnexpectedByte)
	}
	return n, nil
}
