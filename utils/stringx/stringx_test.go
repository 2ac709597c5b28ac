// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Table tests for emptiness checks, trimming, character removal
//              and extension stripping.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12

package stringx

import (
	"testing"
	"unicode"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "hello", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsEmpty(tt.input)
			if result != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"no-break space", " ", true},
		{"ideographic space", "　", true},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	if got := TrimEnd("  a b \t\n"); got != "  a b" {
		t.Errorf("TrimEnd() = %q", got)
	}
	if got := TrimStart("  a b "); got != "a b " {
		t.Errorf("TrimStart() = %q", got)
	}
}

func TestRemoveChars(t *testing.T) {
	tests := []struct {
		input    string
		chars    string
		expected string
	}{
		{"4111 1111-1111 1111", " -", "4111111111111111"},
		{"no separators", "#", "no separators"},
		{"", " -", ""},
		{"ü-ö-ä", "-", "üöä"},
	}

	for _, tt := range tests {
		if got := RemoveChars(tt.input, tt.chars); got != tt.expected {
			t.Errorf("RemoveChars(%q, %q) = %q; want %q", tt.input, tt.chars, got, tt.expected)
		}
	}

	if got := RemoveFunc("QU\tJ0\nZ", unicode.IsSpace); got != "QUJ0Z" {
		t.Errorf("RemoveFunc() = %q", got)
	}
}

func TestDigitChecks(t *testing.T) {
	tests := []struct {
		input       string
		digits      bool
		asciiDigits bool
	}{
		{"", false, false},
		{"0123", true, true},
		{"١٢٣", true, false},
		{"12a", false, false},
		{"1 2", false, false},
	}

	for _, tt := range tests {
		if got := IsDigits(tt.input); got != tt.digits {
			t.Errorf("IsDigits(%q) = %v; want %v", tt.input, got, tt.digits)
		}
		if got := IsASCIIDigits(tt.input); got != tt.asciiDigits {
			t.Errorf("IsASCIIDigits(%q) = %v; want %v", tt.input, got, tt.asciiDigits)
		}
	}
}

func TestStripExtension(t *testing.T) {
	markers := []string{"ext.", "ext", "x"}
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ext dot", "555-1234 ext. 99", "555-1234 "},
		{"ext upper", "555-1234 EXT 99", "555-1234 "},
		{"bare x", "555-1234x99", "555-1234"},
		{"x with space", "555-1234 x 7", "555-1234 "},
		{"no digits after marker", "555-1234 ext. ", "555-1234 ext. "},
		{"letters after marker", "555-1234 ext. 9a", "555-1234 ext. 9a"},
		{"last occurrence wins", "x1 555 x2", "x1 555 "},
		{"ext. falls through to x", "ext.abc x5", "ext.abc "},
		{"no marker", "555-1234", "555-1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripExtension(tt.input, markers...); got != tt.expected {
				t.Errorf("StripExtension(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLastIndexFold(t *testing.T) {
	tests := []struct {
		s, substr string
		expected  int
	}{
		{"abcEXTabcext", "ext", 9},
		{"abcEXT", "ext", 3},
		{"abc", "ext", -1},
		{"ab", "abc", -1},
		{"abc", "", 3},
		{"straße ext", "EXT", 8},
	}

	for _, tt := range tests {
		if got := LastIndexFold(tt.s, tt.substr); got != tt.expected {
			t.Errorf("LastIndexFold(%q, %q) = %d; want %d", tt.s, tt.substr, got, tt.expected)
		}
	}
}
