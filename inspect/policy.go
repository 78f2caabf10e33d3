// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"errors"
	"fmt"

	"github.com/stacklok/headerinspect/rule"
)

// DefaultRangeMaxByteSets is the number of byte-range sets a Range header may
// carry when no limit is configured.
const DefaultRangeMaxByteSets = 5

var (
	// ErrInvalidPolicy is returned by Policy.Validate and ParseNameMatching.
	ErrInvalidPolicy = errors.New("invalid policy")

	// ErrUnknownHeader is returned by Validate for a Header value it has no validator for.
	ErrUnknownHeader = errors.New("unknown header")
)

// Policy controls inspection for one scope, typically a server location.
type Policy struct {
	// Inspect turns inspection on. When false nothing is validated or logged.
	Inspect bool
	// LogViolations reports every malformed value to the Reporter.
	LogViolations bool
	// LogUninspected reports every header outside the inspected set.
	LogUninspected bool
	// BlockViolations stops inspection at the first malformed value and marks
	// the request blocked.
	BlockViolations bool
	// RangeMaxByteSets is the maximum number of byte-range sets in a Range
	// header. Zero selects DefaultRangeMaxByteSets.
	RangeMaxByteSets uint32
	// NameMatching selects how header names are classified.
	NameMatching NameMatching
	// BlockRule, when set, narrows BlockViolations to the violations it matches.
	BlockRule *rule.Rule
}

// DefaultPolicy returns the policy of a scope with nothing configured:
// inspection off, violations logged but not blocked, uninspected headers not
// logged, at most DefaultRangeMaxByteSets range sets and exact name matching.
func DefaultPolicy() Policy {
	return Policy{
		Inspect:          false,
		LogViolations:    true,
		LogUninspected:   false,
		BlockViolations:  false,
		RangeMaxByteSets: DefaultRangeMaxByteSets,
		NameMatching:     MatchExact,
	}
}

// Validate reports whether p can be used for inspection.
func (p Policy) Validate() error {
	if p.NameMatching != MatchExact && p.NameMatching != MatchCaseInsensitive {
		return fmt.Errorf("%w: unknown name matching %d", ErrInvalidPolicy, int(p.NameMatching))
	}
	return nil
}

func (p Policy) rangeMaxByteSets() uint32 {
	if p.RangeMaxByteSets == 0 {
		return DefaultRangeMaxByteSets
	}
	return p.RangeMaxByteSets
}

// blocks reports whether v should block the request under p. A rule that
// fails to evaluate blocks, and its error is returned alongside.
func (p Policy) blocks(v *Violation) (bool, error) {
	if !p.BlockViolations {
		return false, nil
	}
	if p.BlockRule == nil {
		return true, nil
	}
	matched, err := p.BlockRule.Matches(v.subject())
	if err != nil {
		return true, fmt.Errorf("block rule %q: %w", p.BlockRule.Source(), err)
	}
	return matched, nil
}
