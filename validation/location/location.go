// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package location provides validation functions for configuration location
// names and path prefixes.
package location

import (
	"fmt"
	"regexp"
	"strings"
)

const maxNameLength = 63

var validNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-]*$`)

// ValidateName validates that a location name only contains allowed characters:
// lowercase alphanumeric, underscore and dash, starting with an alphanumeric.
// It also disallows null bytes and names longer than 63 bytes.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("location name cannot be empty or consist only of whitespace")
	}

	if strings.Contains(name, "\x00") {
		return fmt.Errorf("location name cannot contain null bytes")
	}

	if len(name) > maxNameLength {
		return fmt.Errorf("location name exceeds maximum length of %d bytes: %q", maxNameLength, name)
	}

	if name != strings.ToLower(name) {
		return fmt.Errorf("location name must be lowercase: %q", name)
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("location name can only contain lowercase alphanumeric characters, underscores and dashes, "+
			"and must start with an alphanumeric character: %q", name)
	}

	return nil
}

// ValidatePathPrefix validates a request path prefix that selects a location.
// The prefix must be absolute and free of query, fragment, and dot segments.
func ValidatePathPrefix(prefix string) error {
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("path prefix must start with '/': %q", prefix)
	}

	if strings.ContainsAny(prefix, "?#") {
		return fmt.Errorf("path prefix cannot contain a query or fragment: %q", prefix)
	}

	for _, seg := range strings.Split(prefix, "/") {
		if seg == "." || seg == ".." {
			return fmt.Errorf("path prefix cannot contain dot segments: %q", prefix)
		}
	}

	for i := 0; i < len(prefix); i++ {
		if c := prefix[i]; c <= ' ' || c == 0x7f {
			return fmt.Errorf("path prefix cannot contain whitespace or control characters: %q", prefix)
		}
	}

	return nil
}
