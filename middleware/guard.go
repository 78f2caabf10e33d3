// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"net/http"
	"sort"

	"github.com/go-logr/logr"

	"github.com/stacklok/headerinspect/httperr"
	"github.com/stacklok/headerinspect/inspect"
)

// PolicyResolver selects the inspection policy of a request path.
// *config.Config implements it.
type PolicyResolver interface {
	PolicyFor(path string) inspect.Policy
}

// StaticPolicy is a PolicyResolver returning the same policy for every path.
type StaticPolicy inspect.Policy

// PolicyFor implements PolicyResolver.
func (s StaticPolicy) PolicyFor(string) inspect.Policy {
	return inspect.Policy(s)
}

// Guard applies an Inspector to incoming requests and rejects the ones its
// policy blocks with 400 Bad Request.
type Guard struct {
	inspector *inspect.Inspector
	policies  PolicyResolver
	log       logr.Logger
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger for block decisions and block rule failures.
// Per-request inspection summaries are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(g *Guard) {
		g.log = log
	}
}

// New creates a Guard. Nothing is logged unless WithLogger is given.
func New(inspector *inspect.Inspector, policies PolicyResolver, opts ...Option) *Guard {
	g := &Guard{
		inspector: inspector,
		policies:  policies,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Handler wraps next for net/http.
//
// The net/http server canonicalizes header names before they reach the
// handler, so "range" arrives as "Range" even under inspect.MatchExact. Use
// the fasthttp adapter to inspect names exactly as sent. Header fields are
// inspected in name order, each occurrence of a repeated header separately.
func (g *Guard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := g.inspect(r.Context(), r.URL.Path, requestFields(r.Header))
		if res.Blocked() {
			httperr.Write(w, res.Err())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// inspect runs the inspector under the policy of path and logs the outcome.
func (g *Guard) inspect(ctx context.Context, path string, fields []inspect.Field) inspect.Result {
	res := g.inspector.Inspect(ctx, g.policies.PolicyFor(path), fields)

	if res.RuleErr != nil {
		g.log.Error(res.RuleErr, "block rule evaluation failed", "path", path)
	}
	if res.Blocked() {
		v := res.Blocking
		g.log.Info("blocked request",
			"path", path,
			"header", v.Header,
			"reason", v.Reason(),
			"offset", v.Offset,
		)
		return res
	}
	if res.Inspected > 0 {
		g.log.V(1).Info("request inspected",
			"path", path,
			"inspected", res.Inspected,
			"violations", len(res.Violations),
		)
	}
	return res
}

func requestFields(h http.Header) []inspect.Field {
	names := make([]string, 0, len(h))
	n := 0
	for name, values := range h {
		names = append(names, name)
		n += len(values)
	}
	sort.Strings(names)

	fields := make([]inspect.Field, 0, n)
	for _, name := range names {
		for _, value := range h[name] {
			fields = append(fields, inspect.Field{Name: name, Value: []byte(value)})
		}
	}
	return fields
}
