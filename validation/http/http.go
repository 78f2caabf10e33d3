// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for HTTP header field lines and
// upstream URLs.
package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const (
	maxNameLength  = 256
	maxValueLength = 8192
)

// ErrMalformedFieldLine is returned by SplitFieldLine for a line that is not
// of the form "Name: value".
var ErrMalformedFieldLine = errors.New("malformed header field line")

// ValidateHeaderName validates that a string is a valid HTTP header name per RFC 9110.
// It checks for CRLF injection, control characters, and ensures RFC token compliance.
func ValidateHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("header name cannot be empty")
	}

	if len(name) > maxNameLength {
		return fmt.Errorf("header name exceeds maximum length of %d bytes", maxNameLength)
	}

	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid HTTP header name %q: contains invalid characters", name)
	}

	return nil
}

// ValidateHeaderValue validates that a string is a valid HTTP header value per RFC 9110.
// It checks for CRLF injection and control characters. An empty value is valid.
func ValidateHeaderValue(value string) error {
	if len(value) > maxValueLength {
		return fmt.Errorf("header value exceeds maximum length of %d bytes", maxValueLength)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}

	return nil
}

// SplitFieldLine splits a "Name: value" header field line. Optional whitespace
// around the value is removed; whitespace between the name and the colon is
// not allowed. Both halves are checked with ValidateHeaderName and
// ValidateHeaderValue, so a line that a conforming HTTP parser would refuse
// never reaches header inspection.
func SplitFieldLine(line string) (name, value string, err error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", fmt.Errorf("%w: missing colon", ErrMalformedFieldLine)
	}
	if err := ValidateHeaderName(name); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformedFieldLine, err)
	}

	value = strings.Trim(value, " \t")
	if err := ValidateHeaderValue(value); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformedFieldLine, err)
	}
	return name, value, nil
}

// ValidateUpstreamURL validates a URL that requests are proxied to.
//
// A valid upstream URL must:
//   - Use the http or https scheme
//   - Include a host
//   - Not contain fragments
func ValidateUpstreamURL(upstream string) (*url.URL, error) {
	if upstream == "" {
		return nil, fmt.Errorf("upstream URL cannot be empty")
	}

	parsed, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("upstream URL must use http or https: %s", upstream)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("upstream URL must include a host: %s", upstream)
	}

	if parsed.Fragment != "" {
		return nil, fmt.Errorf("upstream URL must not contain fragments (#): %s", upstream)
	}

	return parsed, nil
}
