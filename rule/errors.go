// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rule

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

var (
	// ErrExpressionCheck is returned when a rule fails syntax or type checking.
	ErrExpressionCheck = errors.New("rule check failed")

	// ErrEvaluation is returned when evaluating a rule fails.
	ErrEvaluation = errors.New("rule evaluation failed")

	// ErrInvalidResult is returned when a rule does not yield a bool.
	ErrInvalidResult = errors.New("rule returned a non-bool result")
)

// Issue is one problem reported while compiling a rule.
type Issue struct {
	Line int
	Col  int
	Msg  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s", i.Line, i.Col, i.Msg)
}

// Diagnostics is the rule source together with everything wrong with it.
type Diagnostics struct {
	Source string
	Issues []Issue
}

// Messages renders each issue as "line:col: msg".
func (d *Diagnostics) Messages() []string {
	msgs := make([]string, len(d.Issues))
	for i, issue := range d.Issues {
		msgs[i] = issue.String()
	}
	return msgs
}

func diagnose(source string, issues *cel.Issues) Diagnostics {
	d := Diagnostics{Source: source}
	for _, e := range issues.Errors() {
		d.Issues = append(d.Issues, Issue{
			Line: e.Location.Line(),
			Col:  e.Location.Column(),
			Msg:  e.Message,
		})
	}
	return d
}

// ParseError is returned for a rule that is not valid CEL syntax.
type ParseError struct {
	Diagnostics
	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rule parse error in %q: %s", e.Source, e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

// CheckError is returned for a rule that parses but does not type-check
// against the violation variable.
type CheckError struct {
	Diagnostics
	err error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("rule check error in %q: %s", e.Source, e.err)
}

func (e *CheckError) Unwrap() error { return e.err }

// DiagnosticsOf finds the first ParseError or CheckError in the chain of err.
func DiagnosticsOf(err error) (*Diagnostics, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return &pe.Diagnostics, true
	}
	var ce *CheckError
	if errors.As(err, &ce) {
		return &ce.Diagnostics, true
	}
	return nil, false
}

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{
		Diagnostics: diagnose(source, issues),
		err:         fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{
		Diagnostics: diagnose(source, issues),
		err:         fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}
