// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rule

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

var defaultEngine = NewEngine()

// Subject is what a rule sees about one violation.
//
// In an expression the fields are available as violation.header,
// violation.reason, violation.offset, violation.length and violation.value.
type Subject struct {
	// Header is the canonical header name, e.g. "Range".
	Header string
	// Reason is the short reason text, e.g. "byte-range set limit exceeded".
	Reason string
	// Offset is the index of the offending byte.
	Offset int
	// Length is the length of the header value.
	Length int
	// Value is the raw header value.
	Value string
}

func (s Subject) activation() map[string]any {
	return map[string]any{
		violationVar: map[string]any{
			"header": s.Header,
			"reason": s.Reason,
			"offset": int64(s.Offset),
			"length": int64(s.Length),
			"value":  s.Value,
		},
	}
}

// Rule is a compiled block predicate. It is immutable and safe for concurrent use.
type Rule struct {
	source  string
	program cel.Program
}

// Compile compiles expr with the default engine limits.
func Compile(expr string) (*Rule, error) {
	return defaultEngine.Compile(expr)
}

// MustCompile is like Compile but panics if the expression is invalid.
// It is meant for tests and package-level rules with constant sources.
func MustCompile(expr string) *Rule {
	r, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return r
}

// Source returns the original expression.
func (r *Rule) Source() string {
	return r.source
}

// String implements fmt.Stringer.
func (r *Rule) String() string {
	return r.source
}

// Matches evaluates the rule against s.
//
// Returns an error wrapping ErrEvaluation when evaluation fails, for example on
// an unknown key or when the cost limit is hit, and ErrInvalidResult when the
// expression does not yield a bool.
func (r *Rule) Matches(s Subject) (bool, error) {
	out, _, err := r.program.Eval(s.activation())
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return matched, nil
}
