// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"fmt"
	"strings"
)

// Header is the closed set of inspected headers.
type Header int

const (
	// HeaderUninspected is any header outside the inspected set.
	HeaderUninspected Header = iota
	// HeaderRange is the Range request header.
	HeaderRange
	// HeaderIfRange is the If-Range request header.
	HeaderIfRange
	// HeaderIfModifiedSince is the If-Modified-Since request header.
	HeaderIfModifiedSince
	// HeaderIfUnmodifiedSince is the If-Unmodified-Since request header.
	HeaderIfUnmodifiedSince
	// HeaderDate is the Date request header.
	HeaderDate
	// HeaderAcceptEncoding is the Accept-Encoding request header.
	HeaderAcceptEncoding
)

var headerNames = [...]string{
	HeaderUninspected:       "",
	HeaderRange:             "Range",
	HeaderIfRange:           "If-Range",
	HeaderIfModifiedSince:   "If-Modified-Since",
	HeaderIfUnmodifiedSince: "If-Unmodified-Since",
	HeaderDate:              "Date",
	HeaderAcceptEncoding:    "Accept-Encoding",
}

// String returns the canonical header name, or "uninspected".
func (h Header) String() string {
	if h <= HeaderUninspected || int(h) >= len(headerNames) {
		return "uninspected"
	}
	return headerNames[h]
}

// Inspected returns the headers that have a validator, in declaration order.
func Inspected() []Header {
	return []Header{
		HeaderRange,
		HeaderIfRange,
		HeaderIfModifiedSince,
		HeaderIfUnmodifiedSince,
		HeaderDate,
		HeaderAcceptEncoding,
	}
}

// NameMatching selects how header names are compared with the inspected set.
type NameMatching int

const (
	// MatchExact requires the name byte for byte, e.g. "Range" but not "range".
	MatchExact NameMatching = iota
	// MatchCaseInsensitive compares names ignoring ASCII case.
	MatchCaseInsensitive
)

// String returns the configuration spelling of m.
func (m NameMatching) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchCaseInsensitive:
		return "case-insensitive"
	default:
		return fmt.Sprintf("NameMatching(%d)", int(m))
	}
}

// ParseNameMatching parses the configuration spelling of a NameMatching.
// The empty string selects MatchExact.
func ParseNameMatching(s string) (NameMatching, error) {
	switch s {
	case "", "exact":
		return MatchExact, nil
	case "case-insensitive":
		return MatchCaseInsensitive, nil
	default:
		return MatchExact, fmt.Errorf("%w: unknown name matching %q", ErrInvalidPolicy, s)
	}
}

// Classify maps a header name to its Header. Names outside the inspected set,
// and names that differ only in case under MatchExact, are HeaderUninspected.
func Classify(name string, m NameMatching) Header {
	for _, h := range Inspected() {
		canonical := headerNames[h]
		if len(name) != len(canonical) {
			continue
		}
		if name == canonical || (m == MatchCaseInsensitive && strings.EqualFold(name, canonical)) {
			return h
		}
	}
	return HeaderUninspected
}
