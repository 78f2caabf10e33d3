// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package location provides validation functions for the named locations of a
headerinspect configuration.

A location scopes an inspection policy to the requests whose path starts with
its path prefix. Names are used on the command line (check -location), so they
follow a conservative naming convention.

# Name Validation

	if err := location.ValidateName("downloads"); err != nil {
		// Handle invalid location name
	}

Valid location names must:
  - Be non-empty (not just whitespace)
  - Contain only lowercase alphanumeric characters, underscores and dashes
  - Start with an alphanumeric character
  - Not contain null bytes
  - Be at most 63 bytes long

# Examples

Valid names:

	"downloads"
	"media-v2"
	"api_internal"

Invalid names:

	""             // empty
	"Downloads"    // uppercase
	"media files"  // space
	"-media"       // leading dash

# Path Prefixes

	if err := location.ValidatePathPrefix("/downloads/"); err != nil {
		// Handle invalid prefix
	}

A prefix must start with '/', and must not contain a query, a fragment, dot
segments, whitespace or control characters.
*/
package location
