// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
		reason  error
		offset  int
	}{
		{name: "empty", input: ""},
		{name: "wildcard", input: "*"},
		{name: "single coding", input: "gzip"},
		{name: "weighted list", input: "gzip;q=0.5, deflate;q=1.0"},
		{name: "no spaces", input: "gzip,deflate,identity"},
		{name: "space before semicolon", input: "gzip ;q=0.5"},
		{name: "space after semicolon", input: "gzip; q=0.5"},
		{name: "wildcard in list", input: "*, gzip;q=0"},
		{name: "trailing space", input: "gzip "},
		{name: "every coding", input: "compress, deflate, exi, gzip, identity, pack200-gzip, *;q=0"},
		{name: "weight above one", input: "gzip;q=2", wantErr: true, reason: ErrUnexpectedByte, offset: 7},
		{name: "unknown coding", input: "unknown-coding", wantErr: true, reason: ErrUnknownToken, offset: 0},
		{name: "dangling comma", input: "gzip,", wantErr: true, reason: ErrPrematureEnd, offset: 5},
		{name: "dangling comma and space", input: "gzip, ", wantErr: true, reason: ErrPrematureEnd, offset: 6},
		{name: "dangling semicolon", input: "gzip;", wantErr: true, reason: ErrPrematureEnd, offset: 5},
		{name: "two spaces", input: "gzip  ,deflate", wantErr: true, reason: ErrUnexpectedByte, offset: 5},
		{name: "garbage after coding", input: "gzipx", wantErr: true, reason: ErrUnexpectedByte, offset: 4},
		{name: "two weights", input: "gzip;q=0.5;q=0.3", wantErr: true, reason: ErrUnexpectedByte, offset: 10},
		{name: "over precise weight", input: "gzip;q=0.1234", wantErr: true, reason: ErrUnexpectedByte, offset: 12},
		{name: "unlisted second coding", input: "gzip, br", wantErr: true, reason: ErrUnknownToken, offset: 6},
		{name: "leading space", input: " gzip", wantErr: true, reason: ErrUnknownToken, offset: 0},
		{name: "double wildcard", input: "**", wantErr: true, reason: ErrUnexpectedByte, offset: 1},
		{name: "bad weight name", input: "gzip;x=1", wantErr: true, reason: ErrUnexpectedByte, offset: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateAcceptEncoding([]byte(tt.input))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			requireSyntaxError(t, err, tt.reason, tt.offset)
		})
	}
}
