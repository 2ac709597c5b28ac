// File: numeric.go
// Title: Numeric and Boolean Conversions
// Description: Lenient conversions of text to integers, bytes, booleans,
//              floating-point numbers and decimals using the invariant number
//              grammar.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package convertx

import (
	"math"
	"strconv"
	"strings"

	"github.com/msto63/textkit/utils/mathx"
)

// ToInt16 parses an optionally signed decimal integer, or returns 0
func ToInt16(text string) int16 {
	return int16(parseInt(text, 16))
}

// ToInt32 parses an optionally signed decimal integer, or returns 0
func ToInt32(text string) int32 {
	return int32(parseInt(text, 32))
}

// ToInt64 parses an optionally signed decimal integer, or returns 0
func ToInt64(text string) int64 {
	return parseInt(text, 64)
}

func parseInt(text string, bitSize int) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, bitSize)
	if err != nil {
		return 0
	}
	return n
}

// ToByte parses an unsigned decimal integer in 0..255, or returns 0
func ToByte(text string) byte {
	s := strings.TrimPrefix(strings.TrimSpace(text), "+")
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return byte(n)
}

// ToBoolean returns true only for a case-insensitive "true"
func ToBoolean(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "true")
}

// IsBooleanText reports whether text is a case-insensitive "true" or "false"
func IsBooleanText(text string) bool {
	s := strings.TrimSpace(text)
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

// ToFloat32 parses a floating-point number, or returns 0. Values beyond the
// float32 range yield 0.
func ToFloat32(text string) float32 {
	f, ok := parseFloat(text, 32)
	if !ok {
		return 0
	}
	return float32(f)
}

// ToFloat64 parses a floating-point number, or returns 0. Values beyond the
// float64 range yield 0.
func ToFloat64(text string) float64 {
	f, _ := parseFloat(text, 64)
	return f
}

// ParseFloat64 is ToFloat64 reporting whether text was a number
func ParseFloat64(text string) (float64, bool) {
	return parseFloat(text, 64)
}

func parseFloat(text string, bitSize int) (float64, bool) {
	s := strings.TrimSpace(text)

	switch strings.ToLower(s) {
	case "nan", "-nan", "+nan":
		return math.NaN(), true
	case "infinity", "+infinity", "∞", "+∞":
		return math.Inf(1), true
	case "-infinity", "-∞":
		return math.Inf(-1), true
	}

	normalized, ok := mathx.NormalizeNumber(s, mathx.StyleFloat)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(normalized, bitSize)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToDecimal parses a decimal number without exponent, or returns zero
func ToDecimal(text string) mathx.Decimal {
	d, _ := mathx.TryParseDecimal(text)
	return d
}

// ToNullableInt16 converts text unless it is absent under the policy
func (c *Converter) ToNullableInt16(text string) *int16 {
	return Nullable(c, text, ToInt16)
}

// ToNullableInt32 converts text unless it is absent under the policy
func (c *Converter) ToNullableInt32(text string) *int32 {
	return Nullable(c, text, ToInt32)
}

// ToNullableInt64 converts text unless it is absent under the policy
func (c *Converter) ToNullableInt64(text string) *int64 {
	return Nullable(c, text, ToInt64)
}

// ToNullableByte converts text unless it is absent under the policy
func (c *Converter) ToNullableByte(text string) *byte {
	return Nullable(c, text, ToByte)
}

// ToNullableBoolean converts text unless it is absent under the policy
func (c *Converter) ToNullableBoolean(text string) *bool {
	return Nullable(c, text, ToBoolean)
}

// ToNullableFloat32 converts text unless it is absent under the policy
func (c *Converter) ToNullableFloat32(text string) *float32 {
	return Nullable(c, text, ToFloat32)
}

// ToNullableFloat64 converts text unless it is absent under the policy
func (c *Converter) ToNullableFloat64(text string) *float64 {
	return Nullable(c, text, ToFloat64)
}

// ToNullableDecimal converts text unless it is absent under the policy
func (c *Converter) ToNullableDecimal(text string) *mathx.Decimal {
	return Nullable(c, text, ToDecimal)
}

// ToNullableInt16 uses the default policy
func ToNullableInt16(text string) *int16 { return defaultConverter.ToNullableInt16(text) }

// ToNullableInt32 uses the default policy
func ToNullableInt32(text string) *int32 { return defaultConverter.ToNullableInt32(text) }

// ToNullableInt64 uses the default policy
func ToNullableInt64(text string) *int64 { return defaultConverter.ToNullableInt64(text) }

// ToNullableByte uses the default policy
func ToNullableByte(text string) *byte { return defaultConverter.ToNullableByte(text) }

// ToNullableBoolean uses the default policy
func ToNullableBoolean(text string) *bool { return defaultConverter.ToNullableBoolean(text) }

// ToNullableFloat32 uses the default policy
func ToNullableFloat32(text string) *float32 { return defaultConverter.ToNullableFloat32(text) }

// ToNullableFloat64 uses the default policy
func ToNullableFloat64(text string) *float64 { return defaultConverter.ToNullableFloat64(text) }

// ToNullableDecimal uses the default policy
func ToNullableDecimal(text string) *mathx.Decimal {
	return defaultConverter.ToNullableDecimal(text)
}
