// File: validationx.go
// Title: Format Classifier
// Description: Boolean predicates that classify text against format shapes:
//              email, payment card (Luhn), phone number, JSON, dates and
//              numeric or alphanumeric character classes.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-12 v0.2.0: Replaced validator chains with plain predicates, added
//                       phone length bounds, bounded JSON check and date checks
// - 2026-10-19 v0.2.1: IsHTML tag classes exclude '<' and matches are time bounded

package validationx

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/msto63/textkit/utils/convertx"
	"github.com/msto63/textkit/utils/mathx"
	"github.com/msto63/textkit/utils/stringx"
	"github.com/msto63/textkit/utils/timex"
)

// HTMLMatchTimeout bounds a single IsHTML match. A match that runs out of
// time reports false.
const HTMLMatchTimeout = 250 * time.Millisecond

var (
	numberPattern = regexp.MustCompile(`^\d+$`)

	// RE2 has no backreferences, the closing tag must repeat the opening name
	htmlPattern = newHTMLPattern()
)

func newHTMLPattern() *regexp2.Regexp {
	re := regexp2.MustCompile(`<\s*([^\s<>/]+)[^<>]*>.*?<\s*/\s*\1\s*>`, regexp2.None)
	re.MatchTimeout = HTMLMatchTimeout
	return re
}

// ===============================
// Structural Format Functions
// ===============================

// IsValidEmail reports whether text contains exactly one '@' that is neither
// the first nor the last character. No further address grammar is checked.
func IsValidEmail(text string) bool {
	at := strings.IndexByte(text, '@')
	return at > 0 &&
		at != len(text)-1 &&
		at == strings.LastIndexByte(text, '@')
}

// IsValidCreditCard validates a card number with the Luhn checksum after
// removing spaces and hyphens. Any other non-digit makes it invalid.
func IsValidCreditCard(number string) bool {
	cleaned := stringx.RemoveChars(number, " -")
	if cleaned == "" {
		return false
	}
	return luhnCheck(cleaned)
}

// luhnCheck implements the Luhn algorithm over ASCII digits
func luhnCheck(number string) bool {
	var sum int
	alternate := false

	// Process digits from right to left
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')

		if alternate {
			digit *= 2
			if digit > 9 {
				digit = (digit % 10) + 1
			}
		}

		sum += digit
		alternate = !alternate
	}

	return sum%10 == 0
}

// PhoneExtensionMarkers introduce an extension suffix that is stripped before
// a phone number is checked. Matching is case-insensitive.
var PhoneExtensionMarkers = []string{"ext.", "ext", "x"}

// phoneCharacters are allowed besides digits and whitespace
const phoneCharacters = "-.()"

// PhoneOption bounds the accepted phone number length
type PhoneOption func(*phoneConfig)

type phoneConfig struct {
	minLength int
	maxLength int
}

// WithMinLength rejects numbers shorter than n runes; 0 disables the bound
func WithMinLength(n int) PhoneOption {
	return func(c *phoneConfig) {
		c.minLength = n
	}
}

// WithMaxLength rejects numbers longer than n runes; 0 disables the bound
func WithMaxLength(n int) PhoneOption {
	return func(c *phoneConfig) {
		c.maxLength = n
	}
}

// IsValidPhone checks the shape of a phone number. '+' signs and trailing
// whitespace are removed and an extension suffix is stripped. The length
// bounds apply to what remains, which must contain a digit and consist only
// of digits, whitespace and the characters "-.()".
func IsValidPhone(text string, opts ...PhoneOption) bool {
	var cfg phoneConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	value := stringx.TrimEnd(strings.ReplaceAll(text, "+", ""))
	value = stringx.StripExtension(value, PhoneExtensionMarkers...)

	length := utf8.RuneCountInString(value)
	if cfg.minLength > 0 && length < cfg.minLength {
		return false
	}
	if cfg.maxLength > 0 && length > cfg.maxLength {
		return false
	}

	if strings.IndexFunc(value, unicode.IsDigit) < 0 {
		return false
	}

	for _, r := range value {
		if !(unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(phoneCharacters, r)) {
			return false
		}
	}
	return true
}

// ===============================
// Date Functions
// ===============================

// IsValidDate reports whether t is not the zero time
func IsValidDate(t time.Time) bool {
	return !t.IsZero()
}

// IsValidNullableDate reports whether t is set and not the zero time
func IsValidNullableDate(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

// IsValidDateString reports whether text converts to a non-zero date
func IsValidDateString(text string) bool {
	return IsValidDate(convertx.ToDateTime(text))
}

// IsFutureDate reports whether text converts to a date on or after today
func IsFutureDate(text string) bool {
	return IsFutureDateAt(text, time.Now())
}

// IsFutureDateAt is IsFutureDate with an explicit current time. Only calendar
// days are compared.
func IsFutureDateAt(text string, now time.Time) bool {
	date := convertx.ToDateTime(text)
	if date.IsZero() {
		return false
	}
	return timex.CompareDate(date, now) >= 0
}

// IsValidStandardDate reports whether text is a real calendar date in the
// strict yyyy-MM-dd layout
func IsValidStandardDate(text string) bool {
	_, err := timex.ParseStandardDate(text)
	return err == nil
}

// ===============================
// Character Class Functions
// ===============================

// IsNumber reports whether text consists of one or more ASCII digits
func IsNumber(text string) bool {
	return numberPattern.MatchString(text)
}

// IsWholeNumber reports whether text parses as a 64-bit integer
func IsWholeNumber(text string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	return err == nil
}

// IsDecimalNumber reports whether text parses as a decimal
func IsDecimalNumber(text string) bool {
	_, ok := mathx.TryParseDecimal(text)
	return ok
}

// IsBoolean reports whether text is a case-insensitive "true" or "false"
func IsBoolean(text string) bool {
	return convertx.IsBooleanText(text)
}

// IsHTML reports whether text contains an opening tag followed by the
// matching closing tag on the same line. Tag names stop at whitespace, '/'
// and angle brackets.
func IsHTML(text string) bool {
	ok, err := htmlPattern.MatchString(text)
	return err == nil && ok
}

// IsAlphaNumeric reports whether every rune is a Unicode letter or digit.
// The empty string qualifies.
func IsAlphaNumeric(text string) bool {
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsAlphaNumericStrict reports whether every byte is in 0-9, A-Z or a-z.
// The empty string qualifies.
func IsAlphaNumericStrict(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !('0' <= c && c <= '9' || 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z') {
			return false
		}
	}
	return true
}
