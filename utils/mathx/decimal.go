// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements an exact decimal value backed by big.Rat, parsed with
//              the invariant number grammar and bounded to the 96-bit decimal
//              range.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2026-10-12 v0.2.0: Strict invariant parsing, usable zero value, exact
//                       String(); rational input and object pools removed
// - 2026-10-19 v0.2.1: JSON exponent input is range checked like parsed text

package mathx

import (
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	tkerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/core/errors"
)

// MaxDecimal is the largest magnitude a Decimal may hold (2^96 - 1)
var MaxDecimal = func() *big.Rat {
	limit := new(big.Int).Lsh(big.NewInt(1), 96)
	return new(big.Rat).SetInt(limit.Sub(limit, big.NewInt(1)))
}()

// maxFractionDigits bounds String() for values that do not terminate
const maxFractionDigits = 28

// maxExponent bounds the exponent accepted in JSON input. big.Rat expands
// the power of ten in full, so larger exponents are refused before parsing.
const maxExponent = 1000

// Decimal represents an exact decimal number. The zero value is 0.
type Decimal struct {
	value *big.Rat
}

// ParseDecimal parses s with the decimal grammar: optional sign, digits
// with optional ',' group separators, optional fraction. Exponents and
// fractions such as "1/2" are rejected, as are values beyond MaxDecimal.
func ParseDecimal(s string) (Decimal, error) {
	rat, ok := parseDecimalRat(s)
	if !ok {
		return Decimal{}, errors.InvalidFormat(errors.ModuleMathx, "ParseDecimal", "decimal", nil).
			WithDetail("input", s)
	}
	if !inDecimalRange(rat) {
		return Decimal{}, outOfRange("ParseDecimal", s)
	}
	return Decimal{value: rat}, nil
}

// TryParseDecimal is ParseDecimal without the error value. It reports false
// for malformed and out-of-range input alike.
func TryParseDecimal(s string) (Decimal, bool) {
	rat, ok := parseDecimalRat(s)
	if !ok || !inDecimalRange(rat) {
		return Decimal{}, false
	}
	return Decimal{value: rat}, true
}

func parseDecimalRat(s string) (*big.Rat, bool) {
	normalized, ok := NormalizeNumber(s, StyleNumber)
	if !ok {
		return nil, false
	}
	return new(big.Rat).SetString(normalized)
}

func inDecimalRange(r *big.Rat) bool {
	return new(big.Rat).Abs(r).Cmp(MaxDecimal) <= 0
}

func outOfRange(operation, input string) *tkerror.Error {
	return errors.NewErrorBuilder(errors.ModuleMathx).
		Operation(operation).
		Message("decimal value out of range").
		Code(tkerror.CodeValueOutOfRange).
		Detail("input", input).
		Build()
}

// MustParseDecimal parses s and panics on error
// Use this for constants
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{}
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Rat returns a copy of the underlying rational value
func (d Decimal) Rat() *big.Rat {
	return new(big.Rat).Set(d.rat())
}

// Add returns d + other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns d - other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns d * other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// IsZero reports whether d equals zero
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// Compare returns -1 if d < other, 0 if equal, +1 if d > other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal reports whether d and other are numerically equal
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// Float64 returns the nearest float64 value
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// String returns the exact decimal representation without trailing zeros.
// Non-terminating values are rounded to 28 fractional digits.
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	places, exact := r.FloatPrec()
	if !exact || places > maxFractionDigits {
		places = maxFractionDigits
	}

	s := r.FloatString(places)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// StringFixed returns d rounded (half away from zero) to the given number of
// fractional digits
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.rat().FloatString(places)
}

// MarshalJSON encodes the decimal as a JSON number
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON decodes a JSON number or numeric string
func (d *Decimal) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.InvalidFormat(errors.ModuleMathx, "UnmarshalJSON", "decimal", err)
		}
		n = json.Number(s)
	}

	if strings.ContainsAny(string(n), "eE") {
		normalized, ok := NormalizeNumber(string(n), StyleFloat)
		if !ok {
			return errors.InvalidFormat(errors.ModuleMathx, "UnmarshalJSON", "decimal", nil).
				WithDetail("input", string(n))
		}
		if !exponentInRange(normalized) {
			return outOfRange("UnmarshalJSON", string(n))
		}
		rat, ok := new(big.Rat).SetString(normalized)
		if !ok {
			return errors.InvalidFormat(errors.ModuleMathx, "UnmarshalJSON", "decimal", nil).
				WithDetail("input", string(n))
		}
		if !inDecimalRange(rat) {
			return outOfRange("UnmarshalJSON", string(n))
		}
		d.value = rat
		return nil
	}

	parsed, err := ParseDecimal(string(n))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// exponentInRange reports whether the exponent of a normalized float literal
// lies within maxExponent
func exponentInRange(normalized string) bool {
	i := strings.IndexAny(normalized, "eE")
	if i < 0 {
		return true
	}
	exp, err := strconv.Atoi(normalized[i+1:])
	return err == nil && exp >= -maxExponent && exp <= maxExponent
}
