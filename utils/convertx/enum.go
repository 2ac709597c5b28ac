// File: enum.go
// Title: Enumeration Conversions
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package convertx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/textkit/utils/slicex"
)

// Enum is an integer type whose values name themselves through String
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	fmt.Stringer
}

// ToEnum returns the member whose String() equals the trimmed text, or whose
// numeric value the text spells. Names compare case-insensitively when
// ignoreCase is set. Blank text or no match yields def.
func ToEnum[T Enum](text string, def T, ignoreCase bool, members ...T) T {
	s := strings.TrimSpace(text)
	if s == "" {
		return def
	}

	if m, ok := slicex.Find(members, func(m T) bool {
		name := m.String()
		return name == s || (ignoreCase && strings.EqualFold(name, s))
	}); ok {
		return m
	}

	if numeric, ok := canonicalInteger(s); ok {
		if m, ok := slicex.Find(members, func(m T) bool {
			return fmt.Sprintf("%d", m) == numeric
		}); ok {
			return m
		}
	}

	return def
}

// ToNullableEnum applies ToEnum unless text is absent under the default
// policy. Use Nullable for a custom policy.
func ToNullableEnum[T Enum](text string, def T, ignoreCase bool, members ...T) *T {
	return Nullable(defaultConverter, text, func(s string) T {
		return ToEnum(s, def, ignoreCase, members...)
	})
}

func canonicalInteger(s string) (string, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), true
	}
	if n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64); err == nil {
		return strconv.FormatUint(n, 10), true
	}
	return "", false
}
