// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

// weekdays holds the full day names. The first three bytes are the short form.
var weekdays = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var months = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// matchWeekday returns the full weekday name whose short form starts b.
func matchWeekday(b []byte) (string, bool) {
	if len(b) < 3 {
		return "", false
	}
	for _, day := range weekdays {
		if string(b[:3]) == day[:3] {
			return day, true
		}
	}
	return "", false
}

// matchMonth reports whether b starts with a month abbreviation.
func matchMonth(b []byte) bool {
	if len(b) < 3 {
		return false
	}
	for _, m := range months {
		if string(b[:3]) == m {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// matchLiteral compares b against lit and returns the index of the first
// mismatching byte, len(b) when b is a strict prefix of lit, or -1 on a full match.
func matchLiteral(b []byte, lit string) int {
	for i := 0; i < len(lit); i++ {
		if i >= len(b) {
			return len(b)
		}
		if b[i] != lit[i] {
			return i
		}
	}
	return -1
}
