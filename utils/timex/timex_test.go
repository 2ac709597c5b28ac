// File: timex_test.go
// Title: Time Utilities Tests
// Description: Tests for lenient and strict parsing, calendar comparison,
//              whole-year arithmetic and pattern rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12

package timex

import (
	"testing"
	"time"

	"github.com/msto63/textkit/core/i18n"
)

// ===============================
// Parsing Tests
// ===============================

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantErr  bool
		expected string
	}{
		{"RFC3339", "2023-12-25T15:30:45Z", false, "2023-12-25T15:30:45Z"},
		{"RFC3339 offset", "2023-12-25T15:30:45+02:00", false, "2023-12-25T13:30:45Z"},
		{"RFC3339 fraction", "2023-12-25T15:30:45.123Z", false, "2023-12-25T15:30:45Z"},
		{"ISO local", "2023-12-25T15:30:45", false, "2023-12-25T15:30:45Z"},
		{"Business DateTime", "2023-12-25 15:30:45", false, "2023-12-25T15:30:45Z"},
		{"Date only", "2023-12-25", false, "2023-12-25T00:00:00Z"},
		{"Surrounding whitespace", "  2023-12-25\t", false, "2023-12-25T00:00:00Z"},
		{"Short date", "12/25/2023", false, "2023-12-25T00:00:00Z"},
		{"Short date single digits", "3/1/2024", false, "2024-03-01T00:00:00Z"},
		{"Short date with PM", "3/1/2024 2:05:00 PM", false, "2024-03-01T14:05:00Z"},
		{"Slashed year first", "2024/3/1", false, "2024-03-01T00:00:00Z"},
		{"Long month", "March 1, 2024", false, "2024-03-01T00:00:00Z"},
		{"Day month year", "1 March 2024", false, "2024-03-01T00:00:00Z"},
		{"Lower case month", "1 march 2024", false, "2024-03-01T00:00:00Z"},
		{"Year month", "2024-03", false, "2024-03-01T00:00:00Z"},
		{"RFC1123", "Fri, 01 Mar 2024 10:00:00 GMT", false, "2024-03-01T10:00:00Z"},
		{"Empty string", "", true, ""},
		{"Whitespace", "   ", true, ""},
		{"Invalid format", "not a date", true, ""},
		{"Impossible date", "2024-02-30", true, ""},
		{"Day first is not invariant", "25/12/2023", true, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Parse(tc.input)
			tried, ok := TryParse(tc.input)
			if ok == tc.wantErr || !tried.Equal(result) {
				t.Errorf("TryParse(%q) = %v, %v; Parse gave %v, %v", tc.input, tried, ok, result, err)
			}

			if tc.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) = %v, expected error", tc.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
			}
			if got := result.UTC().Format(time.RFC3339); got != tc.expected {
				t.Errorf("Parse(%q) = %s; want %s", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseStandardDate(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"2024-02-29", true},
		{"2023-12-25", true},
		{"2024-02-30", false},
		{"2023-02-29", false},
		{"2024-2-28", false},
		{" 2024-02-28", false},
		{"2024-02-28T00:00:00", false},
		{"02/28/2024", false},
		{"", false},
	}

	for _, tc := range testCases {
		_, err := ParseStandardDate(tc.input)
		if (err == nil) != tc.valid {
			t.Errorf("ParseStandardDate(%q) error = %v; want valid=%v", tc.input, err, tc.valid)
		}
	}
}

// ===============================
// Calendar Tests
// ===============================

func TestAge(t *testing.T) {
	birth := time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		reference time.Time
		expected  int
	}{
		{"day before birthday", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), 23},
		{"leap day before birthday", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 23},
		{"on birthday", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 24},
		{"one year earlier", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), 23},
		{"same day", birth, 0},
		{"reference before birth", time.Date(1999, 3, 2, 0, 0, 0, 0, time.UTC), -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Age(birth, tc.reference); got != tc.expected {
				t.Errorf("Age(%s, %s) = %d; want %d", birth.Format(ISO8601Date), tc.reference.Format(ISO8601Date), got, tc.expected)
			}
		})
	}
}

func TestAgeToday(t *testing.T) {
	now := time.Now().UTC()
	birth := now.AddDate(-30, 0, -1)
	if got := AgeToday(birth); got != 30 {
		t.Errorf("AgeToday() = %d; want 30", got)
	}
}

func TestCompareDate(t *testing.T) {
	base := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		other    time.Time
		expected int
	}{
		{"same day different time", time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC), 0},
		{"next day", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), -1},
		{"previous month", time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC), 1},
		{"previous year", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 1},
	}

	for _, tc := range testCases {
		if got := CompareDate(base, tc.other); got != tc.expected {
			t.Errorf("%s: CompareDate() = %d; want %d", tc.name, got, tc.expected)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 1, 15, 4, 5, 6, time.UTC)
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay() = %v; want %v", got, want)
	}
	if Today().Hour() != 0 || Today().Location() != time.UTC {
		t.Error("Today() should be midnight UTC")
	}
}

// ===============================
// Formatting Tests
// ===============================

func TestFormatPattern(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 120000000, time.FixedZone("CET", 3600))

	testCases := []struct {
		pattern  string
		locale   string
		expected string
	}{
		{"yyyy-MM-dd", "", "2024-03-05"},
		{"yy/M/d", "", "24/3/5"},
		{"dddd, MMMM d, yyyy", "", "Tuesday, March 5, 2024"},
		{"ddd dd MMM", "", "Tue 05 Mar"},
		{"dddd, d. MMMM yyyy", "de", "Dienstag, 5. März 2024"},
		{"d MMMM yyyy", "fr-FR", "5 mars 2024"},
		{"HH:mm:ss", "", "14:07:09"},
		{"h:mm tt", "", "2:07 PM"},
		{"hh:mm t", "", "02:07 P"},
		{"H:m:s.fff", "", "14:7:9.120"},
		{"ss.FFF", "", "09.12"},
		{"zzz", "", "+01:00"},
		{"zz|z", "", "+01|+1"},
		{"'Day' d 'of' MMMM", "", "Day 5 of March"},
		{`\d\a\y d`, "", "day 5"},
		{"%d", "", "5"},
		{"d", "", "03/05/2024"},
		{"s", "", "2024-03-05T14:07:09"},
		{"yyyy#MM", "", "2024#03"},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			got := FormatPattern(ts, tc.pattern, i18n.Lookup(tc.locale))
			if got != tc.expected {
				t.Errorf("FormatPattern(%q, %q) = %q; want %q", tc.pattern, tc.locale, got, tc.expected)
			}
		})
	}
}

func TestFormatPatternNilCalendar(t *testing.T) {
	ts := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if got := FormatPattern(ts, "MMM tt", nil); got != "Jan AM" {
		t.Errorf("FormatPattern() = %q; want %q", got, "Jan AM")
	}
}
