// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"errors"
	"fmt"
)

// Reasons a header value can be malformed. A *SyntaxError always wraps exactly one of these.
var (
	// ErrMalformedPrefix indicates a missing or wrong leading literal, such as "bytes=".
	ErrMalformedPrefix = errors.New("malformed prefix")

	// ErrUnexpectedByte indicates a byte that is illegal at its grammar position.
	ErrUnexpectedByte = errors.New("unexpected byte")

	// ErrPrematureEnd indicates the value ended before the grammar was complete.
	ErrPrematureEnd = errors.New("premature end")

	// ErrOrderingViolation indicates a bounded byte range whose first position exceeds its last.
	ErrOrderingViolation = errors.New("range ordering violation")

	// ErrLimitExceeded indicates more byte-range sets than the policy allows.
	ErrLimitExceeded = errors.New("byte-range set limit exceeded")

	// ErrFixedLengthMismatch indicates an HTTP-date whose length does not match its format.
	ErrFixedLengthMismatch = errors.New("fixed length mismatch")

	// ErrUnknownToken indicates a weekday, month or content-coding outside the allow-list.
	ErrUnknownToken = errors.New("unknown token")
)

// SyntaxError reports the first violation found in a header value.
type SyntaxError struct {
	// Offset is the index of the first offending byte, or the value length when the
	// value ended too early. It is never greater than the value length.
	Offset int
	// Err is one of the reason sentinels declared in this package.
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

// Unwrap returns the reason sentinel for errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Reason returns the short reason text, e.g. "unexpected byte".
func (e *SyntaxError) Reason() string {
	return e.Err.Error()
}

func malformed(offset int, reason error) error {
	return &SyntaxError{Offset: offset, Err: reason}
}

// shift rebases a SyntaxError produced on a sub-slice onto the enclosing value.
func shift(err error, by int) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Offset: se.Offset + by, Err: se.Err}
	}
	return err
}

// Offset extracts the offending byte offset from err.
// It returns -1 when err does not wrap a *SyntaxError.
func Offset(err error) int {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Offset
	}
	return -1
}
