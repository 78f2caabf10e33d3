// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

import "math"

const rangeUnitPrefix = "bytes="

// RangeKind is the shape of one byte-range set.
type RangeKind int

const (
	// RangeSuffix is "-N": the last N bytes.
	RangeSuffix RangeKind = iota + 1
	// RangeBounded is "first-last".
	RangeBounded
	// RangeFirstOnly is "first-": from first to the end.
	RangeFirstOnly
)

// String returns a short name for the kind.
func (k RangeKind) String() string {
	switch k {
	case RangeSuffix:
		return "suffix"
	case RangeBounded:
		return "bounded"
	case RangeFirstOnly:
		return "first-only"
	default:
		return "unknown"
	}
}

// ByteRangeSpec is one parsed byte-range set. The suffix length of a RangeSuffix
// set is checked for syntax only and not kept. First and Last saturate at
// math.MaxUint64 rather than wrap.
type ByteRangeSpec struct {
	Kind  RangeKind
	First uint64
	Last  uint64
	// Index is the zero-based position of the set within the header.
	Index int
}

type rangeState uint8

const (
	stateNewSet rangeState = iota
	stateFirst
	stateDelim
	stateLast
	stateSuffixDelim
	stateSuffixLength
)

// complete reports whether a set may end in this state.
func (s rangeState) complete() bool {
	return s == stateDelim || s == stateLast || s == stateSuffixLength
}

type rangeAction uint8

const (
	actNone rangeAction = iota
	actFirstDigit
	actLastDigit
	actCloseSet
	actReject
)

// rangeTransition is the byte-range-set automaton. It never looks at anything
// but the current state and byte.
func rangeTransition(s rangeState, c byte) (rangeState, rangeAction) {
	switch {
	case isDigit(c):
		switch s {
		case stateNewSet, stateFirst:
			return stateFirst, actFirstDigit
		case stateDelim, stateLast:
			return stateLast, actLastDigit
		default:
			return stateSuffixLength, actNone
		}
	case c == '-':
		switch s {
		case stateNewSet:
			return stateSuffixDelim, actNone
		case stateFirst:
			return stateDelim, actNone
		}
	case c == ',':
		if s.complete() {
			return stateNewSet, actCloseSet
		}
	}
	return s, actReject
}

// ValidateRange checks a Range header value against
//
//	Range = "bytes=" range-spec *( "," range-spec )
//
// allowing at most maxSets range sets. Bounded sets must satisfy first <= last.
func ValidateRange(b []byte, maxSets uint32) error {
	return scanRange(b, maxSets, nil)
}

// ParseRange validates b like ValidateRange and returns the parsed sets.
func ParseRange(b []byte, maxSets uint32) ([]ByteRangeSpec, error) {
	var specs []ByteRangeSpec
	err := scanRange(b, maxSets, func(spec ByteRangeSpec) {
		specs = append(specs, spec)
	})
	if err != nil {
		return nil, err
	}
	return specs, nil
}

func scanRange(b []byte, maxSets uint32, emit func(ByteRangeSpec)) error {
	if n := matchLiteral(b, rangeUnitPrefix); n >= 0 {
		return malformed(n, ErrMalformedPrefix)
	}
	start := len(rangeUnitPrefix)

	// the set limit is enforced before any set is parsed so that an oversized
	// list is rejected the same way whatever its sets contain
	if off := setLimitOffset(b[start:], maxSets); off >= 0 {
		return malformed(start+off, ErrLimitExceeded)
	}

	var (
		state       = stateNewSet
		first, last uint64
		index       int
	)
	for i := start; i < len(b); i++ {
		next, act := rangeTransition(state, b[i])
		switch act {
		case actReject:
			return malformed(i, ErrUnexpectedByte)
		case actFirstDigit:
			first = accumulate(first, b[i])
		case actLastDigit:
			last = accumulate(last, b[i])
		case actCloseSet:
			if err := closeSet(state, first, last, index, i, emit); err != nil {
				return err
			}
			first, last = 0, 0
			index++
		}
		state = next
	}

	if !state.complete() {
		return malformed(len(b), ErrPrematureEnd)
	}
	return closeSet(state, first, last, index, len(b), emit)
}

// closeSet finishes the set that ended at offset in the given state.
func closeSet(s rangeState, first, last uint64, index, offset int, emit func(ByteRangeSpec)) error {
	spec := ByteRangeSpec{First: first, Last: last, Index: index}
	switch s {
	case stateDelim:
		spec.Kind = RangeFirstOnly
		spec.Last = 0
	case stateLast:
		if first > last {
			return malformed(offset, ErrOrderingViolation)
		}
		spec.Kind = RangeBounded
	case stateSuffixLength:
		spec.Kind = RangeSuffix
		spec.First, spec.Last = 0, 0
	}
	if emit != nil {
		emit(spec)
	}
	return nil
}

// setLimitOffset returns the offset of the comma that opens set maxSets+1 in a
// range-set, or -1 when the list stays within the limit. It stops at that comma.
func setLimitOffset(set []byte, maxSets uint32) int {
	if maxSets == 0 {
		return 0
	}
	sets := uint32(1)
	for i, c := range set {
		if c != ',' {
			continue
		}
		sets++
		if sets > maxSets {
			return i
		}
	}
	return -1
}

// accumulate appends decimal digit c to n, saturating at math.MaxUint64.
func accumulate(n uint64, c byte) uint64 {
	d := uint64(c - '0')
	if n > (math.MaxUint64-d)/10 {
		return math.MaxUint64
	}
	return n*10 + d
}
