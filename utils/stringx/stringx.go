// File: stringx.go
// Title: Core String Utilities
// Description: Emptiness checks, whitespace trimming, character stripping and
//              extension-suffix removal shared by the converter and the
//              format classifier.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-12 v0.3.0: Reduced to the normalization helpers used by textkit,
//                       added StripExtension and RemoveChars

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty reports whether s has no characters
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or consists only of Unicode whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// TrimEnd removes trailing Unicode whitespace
func TrimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// TrimStart removes leading Unicode whitespace
func TrimStart(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// RemoveChars returns s without any occurrence of the runes in chars
func RemoveChars(s, chars string) string {
	if !strings.ContainsAny(s, chars) {
		return s
	}
	return RemoveFunc(s, func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// RemoveFunc returns s without the runes for which drop returns true
func RemoveFunc(s string, drop func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !drop(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsDigits reports whether s is non-empty and every rune is a decimal digit
// in any script
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsASCIIDigits reports whether s is non-empty and consists of 0-9 only
func IsASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// StripExtension removes a trailing extension such as "ext. 42" or "x42".
// Markers are tried in order; for each, the last case-insensitive occurrence
// is a match when the rest of the string, after leading whitespace, is one or
// more digits. The text before the first matching marker is returned.
// Without a match s is returned unchanged.
func StripExtension(s string, markers ...string) string {
	for _, marker := range markers {
		idx := LastIndexFold(s, marker)
		if idx < 0 {
			continue
		}
		if IsDigits(TrimStart(s[idx+len(marker):])) {
			return s[:idx]
		}
	}
	return s
}

// LastIndexFold returns the index of the last occurrence of the ASCII string
// substr in s, ignoring ASCII case, or -1
func LastIndexFold(s, substr string) int {
	n := len(substr)
	if n == 0 {
		return len(s)
	}
	for i := len(s) - n; i >= 0; i-- {
		if equalFoldASCII(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
