// File: case.go
// Title: String Case Conversion Utilities
// Description: First-letter lowering and the camelCase naming rule applied
//              to JSON property names.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-12 v0.3.0: Replaced separator-based conversions with LowerFirst
//                       and CamelCaseName

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// LowerFirst lower-cases the first rune of s. Strings of fewer than two runes
// are returned unchanged.
// Example: "HelloWorld" -> "helloWorld", "A" -> "A"
func LowerFirst(s string) string {
	if utf8.RuneCountInString(s) < 2 {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	lower := unicode.ToLower(r)
	if lower == r {
		return s
	}
	return string(lower) + s[size:]
}

// CamelCaseName converts a property name to camelCase the way JSON property
// naming does: the leading run of upper-case letters is lowered, except for
// the last one when it starts a lower-case word.
// Example: "Name" -> "name", "URLValue" -> "urlValue", "ID" -> "id"
func CamelCaseName(s string) string {
	if s == "" {
		return s
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return s
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if i == 1 && !unicode.IsUpper(runes[i]) {
			break
		}
		hasNext := i+1 < len(runes)
		if i > 0 && hasNext && !unicode.IsUpper(runes[i+1]) {
			if runes[i+1] == ' ' {
				runes[i] = unicode.ToLower(runes[i])
			}
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
