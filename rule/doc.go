// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package rule compiles and evaluates block rules: CEL predicates that decide
whether a header violation should block the request or only be logged.

A rule sees a single variable, violation, with the keys header, reason,
offset, length and value.

# Basic Usage

	r, err := rule.Compile(`violation.header == "Range" && violation.reason == "byte-range set limit exceeded"`)
	if err != nil {
	    // reject the configuration
	}

	block, err := r.Matches(rule.Subject{Header: "Range", Reason: "byte-range set limit exceeded"})

# Error Handling

Compilation errors are returned as *ParseError or *CheckError and carry the
line and column of each issue. DiagnosticsOf digs them out of a wrapped error:

	_, err := config.Load(path)
	if d, ok := rule.DiagnosticsOf(err); ok {
	    for _, msg := range d.Messages() {
	        fmt.Println(msg)
	    }
	}

# Limits

Expressions longer than DefaultMaxExpressionLength are rejected at compile
time, and evaluation stops once DefaultCostLimit is spent. Use NewEngine with
WithMaxExpressionLength and WithCostLimit to change either.

# Concurrency

Engine and Rule are safe for concurrent use.
*/
package rule
