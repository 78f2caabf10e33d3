// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"

	"github.com/stacklok/headerinspect/grammar"
)

// Validate runs the validator for h on value. HeaderUninspected values are
// always valid. A malformed value yields a *grammar.SyntaxError, and a Header
// outside the declared constants yields ErrUnknownHeader.
func Validate(h Header, value []byte, p Policy) error {
	switch h {
	case HeaderUninspected:
		return nil
	case HeaderRange:
		return grammar.ValidateRange(value, p.rangeMaxByteSets())
	case HeaderIfRange:
		return grammar.ValidateIfRange(value)
	case HeaderIfModifiedSince, HeaderIfUnmodifiedSince, HeaderDate:
		return grammar.ValidateHTTPDate(value)
	case HeaderAcceptEncoding:
		return grammar.ValidateAcceptEncoding(value)
	default:
		return fmt.Errorf("%w: unknown header %d", ErrUnknownHeader, int(h))
	}
}
