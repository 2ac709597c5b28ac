// File: format.go
// Title: Pattern-Based Date Rendering
// Description: Renders times with custom date format strings (yyyy-MM-dd,
//              dddd d. MMMM yyyy, hh:mm tt ...) using a locale calendar for
//              month names, day names and AM/PM designators.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.2.0: Initial implementation

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/textkit/core/i18n"
)

// StandardPatterns expands the single-letter standard format specifiers
var StandardPatterns = map[string]string{
	"d": "MM/dd/yyyy",
	"D": "dddd, dd MMMM yyyy",
	"f": "dddd, dd MMMM yyyy HH:mm",
	"F": "dddd, dd MMMM yyyy HH:mm:ss",
	"g": "MM/dd/yyyy HH:mm",
	"G": "MM/dd/yyyy HH:mm:ss",
	"m": "MMMM dd",
	"M": "MMMM dd",
	"o": "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffzzz",
	"O": "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffzzz",
	"s": "yyyy'-'MM'-'dd'T'HH':'mm':'ss",
	"t": "HH:mm",
	"T": "HH:mm:ss",
	"u": "yyyy'-'MM'-'dd HH':'mm':'ss'Z'",
	"y": "yyyy MMMM",
	"Y": "yyyy MMMM",
}

// FormatPattern renders t with a custom format pattern. Recognized tokens:
//
//	yyyy yy y         year (padded to the token length, two-digit, short)
//	MMMM MMM MM M     month name, abbreviation, padded, plain
//	dddd ddd dd d     day name, abbreviation, padded day, plain day
//	HH H hh h         24-hour and 12-hour clock
//	mm m ss s         minutes and seconds
//	f... F...         fractional seconds (F drops trailing zeros)
//	tt t              AM/PM designator, first letter
//	zzz zz z          UTC offset (+01:00, +01, +1)
//
// Text in single or double quotes and characters after a backslash are
// copied literally; a leading % marks a one-letter custom pattern. All other
// characters are copied unchanged. A one-letter pattern listed in
// StandardPatterns is expanded first. A nil calendar uses the invariant one.
func FormatPattern(t time.Time, pattern string, cal *i18n.Calendar) string {
	if cal == nil {
		cal = i18n.Invariant()
	}
	if expanded, ok := StandardPatterns[pattern]; ok {
		pattern = expanded
	}

	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		c := runes[i]

		switch c {
		case '\'', '"':
			end := i + 1
			for end < len(runes) && runes[end] != c {
				end++
			}
			b.WriteString(string(runes[i+1 : end]))
			i = end + 1
			continue
		case '\\':
			if i+1 < len(runes) {
				b.WriteRune(runes[i+1])
			}
			i += 2
			continue
		case '%':
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == c {
			n++
		}

		if !writeToken(&b, t, c, n, cal) {
			b.WriteString(string(runes[i : i+n]))
		}
		i += n
	}

	return b.String()
}

func writeToken(b *strings.Builder, t time.Time, c rune, n int, cal *i18n.Calendar) bool {
	switch c {
	case 'y':
		year := t.Year()
		switch n {
		case 1:
			b.WriteString(strconv.Itoa(year % 100))
		case 2:
			fmt.Fprintf(b, "%02d", year%100)
		default:
			fmt.Fprintf(b, "%0*d", n, year)
		}
	case 'M':
		switch n {
		case 1:
			b.WriteString(strconv.Itoa(int(t.Month())))
		case 2:
			fmt.Fprintf(b, "%02d", int(t.Month()))
		case 3:
			b.WriteString(cal.MonthAbbr(t.Month()))
		default:
			b.WriteString(cal.MonthName(t.Month()))
		}
	case 'd':
		switch n {
		case 1:
			b.WriteString(strconv.Itoa(t.Day()))
		case 2:
			fmt.Fprintf(b, "%02d", t.Day())
		case 3:
			b.WriteString(cal.DayAbbr(t.Weekday()))
		default:
			b.WriteString(cal.DayName(t.Weekday()))
		}
	case 'H':
		writeNumber(b, t.Hour(), n)
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		writeNumber(b, hour, n)
	case 'm':
		writeNumber(b, t.Minute(), n)
	case 's':
		writeNumber(b, t.Second(), n)
	case 'f', 'F':
		if n > 9 {
			n = 9
		}
		digits := fmt.Sprintf("%09d", t.Nanosecond())[:n]
		if c == 'F' {
			digits = strings.TrimRight(digits, "0")
		}
		b.WriteString(digits)
	case 't':
		designator := cal.Designator(t.Hour())
		if n == 1 && designator != "" {
			designator = string([]rune(designator)[0])
		}
		b.WriteString(designator)
	case 'z':
		_, offset := t.Zone()
		prefix := '+'
		if offset < 0 {
			prefix = '-'
			offset = -offset
		}
		hours, minutes := offset/3600, (offset%3600)/60
		switch n {
		case 1:
			fmt.Fprintf(b, "%c%d", prefix, hours)
		case 2:
			fmt.Fprintf(b, "%c%02d", prefix, hours)
		default:
			fmt.Fprintf(b, "%c%02d:%02d", prefix, hours, minutes)
		}
	default:
		return false
	}
	return true
}

// writeNumber writes v, zero-padded to two digits when the token is doubled
func writeNumber(b *strings.Builder, v, n int) {
	if n >= 2 {
		fmt.Fprintf(b, "%02d", v)
		return
	}
	b.WriteString(strconv.Itoa(v))
}
