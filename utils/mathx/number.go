// File: number.go
// Title: Invariant Number Grammar
// Description: Scans invariant-culture numeric text (sign, thousands
//              separators, decimal point, exponent) into a canonical form
//              that strconv and math/big accept.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.2.0: Initial implementation

package mathx

import "strings"

// NumberStyle selects the optional parts of the numeric grammar
type NumberStyle int

const (
	// AllowThousands accepts ',' group separators in the integer part
	AllowThousands NumberStyle = 1 << iota

	// AllowDecimalPoint accepts a '.' and fractional digits
	AllowDecimalPoint

	// AllowExponent accepts an 'e' or 'E' exponent with optional sign
	AllowExponent
)

const (
	// StyleNumber is the grammar of decimal values
	StyleNumber = AllowThousands | AllowDecimalPoint

	// StyleFloat is the grammar of floating-point values
	StyleFloat = AllowThousands | AllowDecimalPoint | AllowExponent
)

// NormalizeNumber validates s against the invariant numeric grammar and
// returns it without surrounding whitespace, a leading '+', group
// separators or a bare trailing point; ".5" becomes "0.5". At least one digit must appear before the exponent. Group
// separators may only follow a digit of the integer part.
//
//	NormalizeNumber(" +1,234.50 ", StyleNumber) // "1234.50", true
//	NormalizeNumber("1e3", StyleNumber)         // "", false
func NormalizeNumber(s string, style NumberStyle) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	switch s[0] {
	case '-':
		b.WriteByte('-')
		i++
	case '+':
		i++
	}

	digits := 0
	for ; i < len(s); i++ {
		c := s[i]
		if isDigit(c) {
			b.WriteByte(c)
			digits++
			continue
		}
		if c == ',' && style&AllowThousands != 0 && digits > 0 {
			continue
		}
		break
	}

	if i < len(s) && s[i] == '.' && style&AllowDecimalPoint != 0 {
		i++
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i > start {
			if digits == 0 {
				b.WriteByte('0')
			}
			b.WriteByte('.')
			b.WriteString(s[start:i])
			digits += i - start
		}
	}

	if digits == 0 {
		return "", false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') && style&AllowExponent != 0 {
		b.WriteByte('e')
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			b.WriteByte(s[i])
			i++
		}
		expDigits := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			b.WriteByte(s[i])
			expDigits++
		}
		if expDigits == 0 {
			return "", false
		}
	}

	if i != len(s) {
		return "", false
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
