// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/stacklok/headerinspect/grammar"
	"github.com/stacklok/headerinspect/rule"
)

// Field is one header occurrence as received. Value is owned by the caller.
type Field struct {
	Name  string
	Value []byte
}

// LogValue implements slog.LogValuer.
func (f Field) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("header", f.Name),
		slog.Any("value", f.Value),
	)
}

// Violation is a malformed value of an inspected header.
type Violation struct {
	// Header is the header name as received.
	Header string
	// Kind is the classified header.
	Kind Header
	// Offset is the index of the first offending byte in Value.
	Offset int
	// Value is the header value. It aliases the inspected Field.Value.
	Value []byte
	// Err is the validator error, a *grammar.SyntaxError.
	Err error
}

func newViolation(f Field, h Header, err error) *Violation {
	return &Violation{
		Header: f.Name,
		Kind:   h,
		Offset: grammar.Offset(err),
		Value:  f.Value,
		Err:    err,
	}
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("malformed %s header: %v", v.Header, v.Err)
}

// Unwrap returns the validator error, so errors.Is matches the grammar reason sentinels.
func (v *Violation) Unwrap() error {
	return v.Err
}

// Reason returns the short reason text, e.g. "unexpected byte".
func (v *Violation) Reason() string {
	var se *grammar.SyntaxError
	if errors.As(v.Err, &se) {
		return se.Reason()
	}
	return v.Err.Error()
}

// LogValue implements slog.LogValuer.
func (v *Violation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("header", v.Header),
		slog.Int("offset", v.Offset),
		slog.String("reason", v.Reason()),
		slog.Any("value", v.Value),
	)
}

func (v *Violation) subject() rule.Subject {
	return rule.Subject{
		Header: v.Kind.String(),
		Reason: v.Reason(),
		Offset: v.Offset,
		Length: len(v.Value),
		Value:  string(v.Value),
	}
}
