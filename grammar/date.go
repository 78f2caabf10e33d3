// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grammar

// DateFormat identifies one of the three HTTP-date forms allowed by RFC 9110.
type DateFormat int

const (
	// RFC1123 is the preferred IMF-fixdate form: "Sun, 06 Nov 1994 08:49:37 GMT".
	RFC1123 DateFormat = iota + 1
	// RFC850 is the obsolete form: "Sunday, 06-Nov-94 08:49:37 GMT".
	RFC850
	// ASCTIME is the ANSI C asctime() form: "Sun Nov  6 08:49:37 1994".
	ASCTIME
)

// minDateLength is the length of the shortest form (ASCTIME).
const minDateLength = 24

// String returns the conventional name of the format.
func (f DateFormat) String() string {
	switch f {
	case RFC1123:
		return "rfc1123"
	case RFC850:
		return "rfc850"
	case ASCTIME:
		return "asctime"
	default:
		return "unknown"
	}
}

// size returns the exact byte length a date of this format must have.
// RFC850 is pinned to 30 bytes, so only the six-letter weekdays
// (Sunday, Monday, Friday) can form a valid RFC850 date.
func (f DateFormat) size() int {
	switch f {
	case RFC1123:
		return 29
	case RFC850:
		return 30
	default:
		return minDateLength
	}
}

// ValidateHTTPDate checks that b is exactly one HTTP-date in any of the three formats.
// Nothing may precede or follow the date.
func ValidateHTTPDate(b []byte) error {
	_, err := parseHTTPDate(b)
	return err
}

// DetectDateFormat validates b like ValidateHTTPDate and reports which format it uses.
func DetectDateFormat(b []byte) (DateFormat, error) {
	return parseHTTPDate(b)
}

func parseHTTPDate(b []byte) (DateFormat, error) {
	if len(b) < minDateLength {
		return 0, malformed(len(b), ErrPrematureEnd)
	}

	weekday, ok := matchWeekday(b)
	if !ok {
		return 0, malformed(0, ErrUnknownToken)
	}

	// the byte after the short weekday picks the format
	var (
		format DateFormat
		start  int
	)
	switch b[3] {
	case ',':
		format, start = RFC1123, 4
	case ' ':
		format, start = ASCTIME, 3
	default:
		if n := matchLiteral(b[3:], weekday[3:]+","); n >= 0 {
			return 0, malformed(3+n, ErrUnexpectedByte)
		}
		format, start = RFC850, len(weekday)+1
	}

	if want := format.size(); len(b) != want {
		return 0, malformed(min(len(b), want), ErrFixedLengthMismatch)
	}

	s := &dateScanner{b: b, i: start}
	s.literal(" ")
	switch format {
	case RFC1123:
		s.digits(2)
		s.literal(" ")
		s.month()
		s.literal(" ")
		s.digits(4)
	case RFC850:
		s.digits(2)
		s.literal("-")
		s.month()
		s.literal("-")
		s.digits(2)
	case ASCTIME:
		s.month()
		s.literal(" ")
		s.paddedDay()
	}
	s.literal(" ")
	s.clock()
	s.literal(" ")
	if format == ASCTIME {
		s.digits(4)
	} else {
		s.literal("GMT")
	}
	s.end()

	if s.err != nil {
		return 0, s.err
	}
	return format, nil
}

// dateScanner walks a date field by field. The first failure sticks and
// every later call becomes a no-op.
type dateScanner struct {
	b   []byte
	i   int
	err error
}

func (s *dateScanner) fail(offset int, reason error) {
	if offset >= len(s.b) {
		offset, reason = len(s.b), ErrPrematureEnd
	}
	s.err = malformed(offset, reason)
}

func (s *dateScanner) literal(lit string) {
	if s.err != nil {
		return
	}
	if n := matchLiteral(s.b[s.i:], lit); n >= 0 {
		s.fail(s.i+n, ErrUnexpectedByte)
		return
	}
	s.i += len(lit)
}

func (s *dateScanner) digits(n int) {
	for ; n > 0 && s.err == nil; n-- {
		if s.i >= len(s.b) || !isDigit(s.b[s.i]) {
			s.fail(s.i, ErrUnexpectedByte)
			return
		}
		s.i++
	}
}

func (s *dateScanner) month() {
	if s.err != nil {
		return
	}
	if len(s.b)-s.i < 3 {
		s.fail(len(s.b), ErrPrematureEnd)
		return
	}
	if !matchMonth(s.b[s.i:]) {
		s.fail(s.i, ErrUnknownToken)
		return
	}
	s.i += 3
}

// paddedDay accepts the asctime day of month: " d" or "dd".
func (s *dateScanner) paddedDay() {
	if s.err != nil {
		return
	}
	if s.i < len(s.b) && s.b[s.i] == ' ' {
		s.i++
		s.digits(1)
		return
	}
	s.digits(2)
}

// clock accepts HH:MM:SS.
func (s *dateScanner) clock() {
	s.digits(2)
	s.literal(":")
	s.digits(2)
	s.literal(":")
	s.digits(2)
}

func (s *dateScanner) end() {
	if s.err == nil && s.i != len(s.b) {
		s.fail(s.i, ErrUnexpectedByte)
	}
}
