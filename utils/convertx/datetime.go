// File: datetime.go
// Title: Date Conversions
// Description: Lenient date parsing, pattern rendering and whole-year
//              arithmetic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package convertx

import (
	"time"

	"github.com/msto63/textkit/core/i18n"
	"github.com/msto63/textkit/utils/timex"
)

// ToDateTime parses text with the lenient layout list, or returns the zero
// time
func ToDateTime(text string) time.Time {
	t, _ := timex.TryParse(text)
	return t
}

// ToNullableDateTime converts text unless it is absent under the policy
func (c *Converter) ToNullableDateTime(text string) *time.Time {
	return Nullable(c, text, ToDateTime)
}

// ToNullableDateTime uses the default policy
func ToNullableDateTime(text string) *time.Time {
	return defaultConverter.ToNullableDateTime(text)
}

// ToDateTimeFormat converts text to a date and renders it with format using
// the invariant calendar. Unparsable text renders the zero time.
func ToDateTimeFormat(text, format string) string {
	return timex.FormatPattern(ToDateTime(text), format, i18n.Invariant())
}

// ToDateTimeFormatLocale is ToDateTimeFormat with the calendar of locale
func ToDateTimeFormatLocale(text, format, locale string) string {
	return timex.FormatPattern(ToDateTime(text), format, i18n.Lookup(locale))
}

// YearsFromDate returns the whole years elapsed from date to the current UTC
// date
func YearsFromDate(date time.Time) int {
	return timex.AgeToday(date)
}

// YearsDifference returns the whole years from date to other: the difference
// of the years, minus one when date's month and day come later in the year
// than other's
func YearsDifference(date, other time.Time) int {
	return timex.Age(date, other)
}
