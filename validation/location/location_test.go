// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"simple", "downloads", false},
		{"with dash", "media-v2", false},
		{"with underscore", "api_internal", false},
		{"digits first", "2024-archive", false},
		{"max length", strings.Repeat("a", 63), false},

		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"uppercase", "Downloads", true},
		{"space", "media files", true},
		{"leading dash", "-media", true},
		{"special character", "media@v2", true},
		{"null byte", "media\x00", true},
		{"too long", strings.Repeat("a", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePathPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"root", "/", false},
		{"directory", "/downloads/", false},
		{"no trailing slash", "/media", false},
		{"dots inside segment", "/v1.2/files", false},

		{"empty", "", true},
		{"relative", "downloads/", true},
		{"query", "/downloads?x=1", true},
		{"fragment", "/downloads#top", true},
		{"dot segment", "/a/./b", true},
		{"dot dot segment", "/a/../b", true},
		{"space", "/my files/", true},
		{"control byte", "/a\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePathPrefix(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
