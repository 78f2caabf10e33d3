// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"context"
	"errors"
	"net/http"

	"github.com/stacklok/headerinspect/httperr"
	"github.com/stacklok/headerinspect/logging"
)

// Inspector applies a Policy to the header fields of a request.
// It is immutable after New and safe for concurrent use.
type Inspector struct {
	reporter Reporter
}

// Option configures an Inspector created by New.
type Option func(*Inspector)

// WithReporter sets the diagnostics sink. The default logs JSON to stderr
// through the logging package.
func WithReporter(r Reporter) Option {
	return func(in *Inspector) {
		in.reporter = r
	}
}

// New creates an Inspector.
func New(opts ...Option) *Inspector {
	in := &Inspector{}
	for _, opt := range opts {
		opt(in)
	}
	if in.reporter == nil {
		in.reporter = NewSlogReporter(logging.New())
	}
	return in
}

// Result is the outcome of inspecting one request.
type Result struct {
	// Inspected is the number of fields that were validated.
	Inspected int
	// Violations lists every malformed value found, in field order. Only the
	// first violation within a value is reported.
	Violations []*Violation
	// Blocking is the violation that blocked the request, or nil.
	Blocking *Violation
	// RuleErr collects block rule evaluation failures. A failing rule blocks.
	RuleErr error
}

// Blocked reports whether the request must be rejected.
func (r Result) Blocked() bool {
	return r.Blocking != nil
}

// Err returns the blocking violation carrying HTTP 400, or nil when the
// request is not blocked.
func (r Result) Err() error {
	if r.Blocking == nil {
		return nil
	}
	return httperr.WithCode(r.Blocking, http.StatusBadRequest)
}

// Inspect validates fields under p, which should satisfy Policy.Validate.
//
// Every field is classified by name. Uninspected fields are reported when
// p.LogUninspected is set, malformed values when p.LogViolations is set. When
// a violation blocks, inspection stops there and later fields are not looked at.
func (in *Inspector) Inspect(ctx context.Context, p Policy, fields []Field) Result {
	var res Result
	if !p.Inspect {
		return res
	}

	for _, f := range fields {
		h := Classify(f.Name, p.NameMatching)
		if h == HeaderUninspected {
			if p.LogUninspected {
				in.reporter.Uninspected(ctx, f)
			}
			continue
		}

		res.Inspected++
		err := Validate(h, f.Value, p)
		if err == nil {
			continue
		}

		v := newViolation(f, h, err)
		res.Violations = append(res.Violations, v)
		if p.LogViolations {
			in.reporter.Violation(ctx, v)
		}

		block, ruleErr := p.blocks(v)
		if ruleErr != nil {
			res.RuleErr = errors.Join(res.RuleErr, ruleErr)
		}
		if block {
			res.Blocking = v
			return res
		}
	}
	return res
}
