// File: timex.go
// Title: Core Time Utilities
// Description: Lenient and strict date parsing, calendar-day comparison and
//              whole-year arithmetic used by the textkit converter and
//              classifier.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Enhanced European date parsing support
// - 2026-10-12 v0.2.0: Invariant lenient layout list, strict standard date,
//                       CompareDate; business-day helpers removed
// - 2026-10-19 v0.2.1: TryParse for callers that discard the error

package timex

import (
	"strings"
	"time"

	tkerrors "github.com/msto63/textkit/core/errors"
)

// Common time formats
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// StandardDate is the strict yyyy-MM-dd layout
	StandardDate = ISO8601Date

	// Business formats
	BusinessDateTime = "2006-01-02 15:04:05"

	// Invariant short formats (month first)
	ShortDate     = "1/2/2006"
	ShortDateTime = "1/2/2006 15:04:05"
)

// LenientLayouts is the ordered list of layouts tried by Parse. All layouts
// are invariant: month and day names are English, numeric dates are
// month-first unless the year leads.
var LenientLayouts = []string{
	time.RFC3339Nano,
	ISO8601DateTime,
	"2006-01-02T15:04",
	BusinessDateTime,
	"2006-01-02 15:04",
	"2006-01-02 3:04:05 PM",
	ISO8601Date,
	"2006-01",
	"2006/1/2",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	ShortDate,
	ShortDateTime,
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1-2-2006",
	"January 2, 2006",
	"January 2 2006",
	"January 2, 2006 15:04:05",
	"January 2, 2006 3:04:05 PM",
	"2 January 2006",
	"2 January 2006 15:04:05",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"January 2006",
	"Monday, January 2, 2006",
	"Monday, 2 January 2006",
	"Mon, 2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
}

// ===============================
// Parsing Functions
// ===============================

// Parse interprets value with the lenient layout list after trimming
// surrounding whitespace. Layouts without a zone yield UTC.
func Parse(value string) (time.Time, error) {
	t, ok := TryParse(value)
	if !ok {
		return time.Time{}, tkerrors.InvalidFormat(tkerrors.ModuleTimex, "Parse", "date", nil).
			WithDetail("input", strings.TrimSpace(value))
	}
	return t, nil
}

// TryParse is Parse without the error value. It returns the zero time and
// false when no layout matches.
func TryParse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range LenientLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseStandardDate parses value strictly as yyyy-MM-dd. Surrounding
// whitespace, single-digit fields and impossible calendar dates are rejected.
func ParseStandardDate(value string) (time.Time, error) {
	t, err := time.Parse(StandardDate, value)
	if err != nil {
		return time.Time{}, tkerrors.InvalidFormat(tkerrors.ModuleTimex, "ParseStandardDate", "yyyy-MM-dd date", err).
			WithDetail("input", value)
	}
	return t, nil
}

// ===============================
// Calendar Functions
// ===============================

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CompareDate compares the calendar dates of a and b, each in its own
// location, ignoring the time of day. It returns -1, 0 or +1.
func CompareDate(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Age returns the whole years from birthDate to referenceDate: the difference
// of the year components, minus one when birthDate's month and day fall later
// in the year than referenceDate's.
func Age(birthDate, referenceDate time.Time) int {
	age := referenceDate.Year() - birthDate.Year()

	if birthDate.Month() > referenceDate.Month() ||
		(birthDate.Month() == referenceDate.Month() && birthDate.Day() > referenceDate.Day()) {
		age--
	}

	return age
}

// AgeToday returns Age against the current UTC date
func AgeToday(birthDate time.Time) int {
	return Age(birthDate, time.Now().UTC())
}

// Today returns the start of the current day in UTC
func Today() time.Time {
	return StartOfDay(time.Now().UTC())
}

// IsZero reports whether t is the zero time
func IsZero(t time.Time) bool {
	return t.IsZero()
}
