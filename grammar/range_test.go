// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		maxSets uint32
		wantErr bool
		reason  error
		offset  int
	}{
		{name: "two bounded sets", input: "bytes=0-499,500-999", maxSets: 5},
		{name: "suffix", input: "bytes=-500", maxSets: 5},
		{name: "first only", input: "bytes=9500-", maxSets: 5},
		{name: "single byte", input: "bytes=5-5", maxSets: 1},
		{name: "mixed kinds", input: "bytes=0-0,-1,100-", maxSets: 3},
		{name: "exactly at limit", input: "bytes=0-1,2-3,4-5,6-7,8-9", maxSets: 5},
		{name: "huge last saturates", input: "bytes=0-99999999999999999999999", maxSets: 1},
		{name: "both saturate", input: "bytes=99999999999999999999-18446744073709551615", maxSets: 1},
		{
			name: "ordering violation", input: "bytes=500-0", maxSets: 5,
			wantErr: true, reason: ErrOrderingViolation, offset: 11,
		},
		{
			name: "ordering violation in first set", input: "bytes=10-9,0-1", maxSets: 5,
			wantErr: true, reason: ErrOrderingViolation, offset: 10,
		},
		{
			name: "saturated first beyond last", input: "bytes=99999999999999999999-1", maxSets: 1,
			wantErr: true, reason: ErrOrderingViolation, offset: 28,
		},
		{
			name: "too many sets", input: "bytes=0-1,2-3,4-5,6-7,8-9,10-11", maxSets: 5,
			wantErr: true, reason: ErrLimitExceeded, offset: 25,
		},
		{
			name: "too many malformed sets", input: "bytes=x,x,x,x,x,x", maxSets: 5,
			wantErr: true, reason: ErrLimitExceeded, offset: 15,
		},
		{
			name: "zero limit", input: "bytes=0-1", maxSets: 0,
			wantErr: true, reason: ErrLimitExceeded, offset: 6,
		},
		{
			name: "empty", input: "", maxSets: 5,
			wantErr: true, reason: ErrMalformedPrefix, offset: 0,
		},
		{
			name: "wrong unit", input: "byte=0-1", maxSets: 5,
			wantErr: true, reason: ErrMalformedPrefix, offset: 4,
		},
		{
			name: "capitalized unit", input: "Bytes=0-1", maxSets: 5,
			wantErr: true, reason: ErrMalformedPrefix, offset: 0,
		},
		{
			name: "prefix only", input: "bytes=", maxSets: 5,
			wantErr: true, reason: ErrPrematureEnd, offset: 6,
		},
		{
			name: "lone dash", input: "bytes=-", maxSets: 5,
			wantErr: true, reason: ErrPrematureEnd, offset: 7,
		},
		{
			name: "double dash", input: "bytes=--1", maxSets: 5,
			wantErr: true, reason: ErrUnexpectedByte, offset: 7,
		},
		{
			name: "three numbers", input: "bytes=1-2-3", maxSets: 5,
			wantErr: true, reason: ErrUnexpectedByte, offset: 9,
		},
		{
			name: "empty set", input: "bytes=0-1,,2-3", maxSets: 5,
			wantErr: true, reason: ErrUnexpectedByte, offset: 10,
		},
		{
			name: "trailing comma", input: "bytes=0-1,", maxSets: 5,
			wantErr: true, reason: ErrPrematureEnd, offset: 10,
		},
		{
			name: "space after prefix", input: "bytes= 0-1", maxSets: 5,
			wantErr: true, reason: ErrUnexpectedByte, offset: 6,
		},
		{
			name: "trailing space", input: "bytes=0-1 ", maxSets: 5,
			wantErr: true, reason: ErrUnexpectedByte, offset: 9,
		},
		{
			name: "number without dash", input: "bytes=100", maxSets: 5,
			wantErr: true, reason: ErrPrematureEnd, offset: 9,
		},
		{
			name: "comma after suffix dash", input: "bytes=-,0-1", maxSets: 5,
			wantErr: true, reason: ErrUnexpectedByte, offset: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateRange([]byte(tt.input), tt.maxSets)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			requireSyntaxError(t, err, tt.reason, tt.offset)
		})
	}
}

func TestParseRange(t *testing.T) {
	t.Parallel()

	specs, err := ParseRange([]byte("bytes=0-499,-500,9500-"), 5)
	require.NoError(t, err)
	assert.Equal(t, []ByteRangeSpec{
		{Kind: RangeBounded, First: 0, Last: 499, Index: 0},
		{Kind: RangeSuffix, Index: 1},
		{Kind: RangeFirstOnly, First: 9500, Index: 2},
	}, specs)

	specs, err = ParseRange([]byte("bytes=18446744073709551616-"), 1)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, uint64(math.MaxUint64), specs[0].First)

	specs, err = ParseRange([]byte("bytes=2-1"), 1)
	assert.ErrorIs(t, err, ErrOrderingViolation)
	assert.Nil(t, specs)
}

func TestValidateRange_EachSetValidAlone(t *testing.T) {
	t.Parallel()

	valid := []string{
		"bytes=0-499,500-999",
		"bytes=0-0,-1,100-",
		"bytes=1-2,3-4,5-6,7-8,9-10",
	}

	for _, header := range valid {
		require.NoError(t, ValidateRange([]byte(header), 5), header)

		sets := bytes.Split([]byte(header)[len(rangeUnitPrefix):], []byte(","))
		for _, set := range sets {
			alone := append([]byte(rangeUnitPrefix), set...)
			assert.NoError(t, ValidateRange(alone, 1), string(alone))
		}
	}
}

func TestValidateRange_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"bytes=0-499,500-999", "bytes=500-0", "bytes=0-1,2-3,4-5,6-7,8-9,10-11"} {
		first := ValidateRange([]byte(in), 5)
		second := ValidateRange([]byte(in), 5)
		assert.Equal(t, first, second, in)
	}
}

func TestRangeTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state rangeState
		c     byte
		next  rangeState
		act   rangeAction
	}{
		{stateNewSet, '7', stateFirst, actFirstDigit},
		{stateNewSet, '-', stateSuffixDelim, actNone},
		{stateNewSet, ',', stateNewSet, actReject},
		{stateFirst, '0', stateFirst, actFirstDigit},
		{stateFirst, '-', stateDelim, actNone},
		{stateFirst, ',', stateFirst, actReject},
		{stateDelim, '9', stateLast, actLastDigit},
		{stateDelim, ',', stateNewSet, actCloseSet},
		{stateDelim, '-', stateDelim, actReject},
		{stateLast, '1', stateLast, actLastDigit},
		{stateLast, ',', stateNewSet, actCloseSet},
		{stateLast, '-', stateLast, actReject},
		{stateSuffixDelim, '5', stateSuffixLength, actNone},
		{stateSuffixDelim, ',', stateSuffixDelim, actReject},
		{stateSuffixDelim, '-', stateSuffixDelim, actReject},
		{stateSuffixLength, '5', stateSuffixLength, actNone},
		{stateSuffixLength, ',', stateNewSet, actCloseSet},
		{stateSuffixLength, '-', stateSuffixLength, actReject},
		{stateNewSet, ' ', stateNewSet, actReject},
		{stateLast, 'x', stateLast, actReject},
	}

	for _, tt := range tests {
		next, act := rangeTransition(tt.state, tt.c)
		assert.Equal(t, tt.next, next, "state %d byte %q", tt.state, tt.c)
		assert.Equal(t, tt.act, act, "state %d byte %q", tt.state, tt.c)
	}
}

func TestAccumulate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(12), accumulate(1, '2'))
	assert.Equal(t, uint64(math.MaxUint64), accumulate(math.MaxUint64/10, '6'))
	assert.Equal(t, uint64(math.MaxUint64), accumulate(math.MaxUint64, '0'))
	assert.Equal(t, uint64(math.MaxUint64-5), accumulate(math.MaxUint64/10, '0'))
}

func TestRangeKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "suffix", RangeSuffix.String())
	assert.Equal(t, "bounded", RangeBounded.String())
	assert.Equal(t, "first-only", RangeFirstOnly.String())
	assert.Equal(t, "unknown", RangeKind(0).String())
}
