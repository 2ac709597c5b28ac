// File: decimal_test.go
// Title: Decimal Arithmetic Tests
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-19

package mathx

import (
	"encoding/json"
	"testing"

	tkerror "github.com/msto63/textkit/core/error"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"0", "0", false},
		{"123.45", "123.45", false},
		{"-67.89", "-67.89", false},
		{"+5", "5", false},
		{"  42  ", "42", false},
		{"1,234,567.50", "1234567.5", false},
		{".5", "0.5", false},
		{"5.", "5", false},
		{"0.1000", "0.1", false},
		{"79228162514264337593543950335", "79228162514264337593543950335", false},
		{"79228162514264337593543950336", "", true},
		{"1/2", "", true},
		{"1e3", "", true},
		{",5", "", true},
		{"1.2.3", "", true},
		{"", "", true},
		{"-", "", true},
		{"abc", "", true},
		{"NaN", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDecimal(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDecimal(%q) = %s; want error", tt.input, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimal(%q) error = %v", tt.input, err)
			}
			if d.String() != tt.expected {
				t.Errorf("ParseDecimal(%q) = %s; want %s", tt.input, d, tt.expected)
			}
		})
	}
}

func TestParseDecimalErrorCodes(t *testing.T) {
	_, err := ParseDecimal("x")
	if !tkerror.HasCode(err, tkerror.CodeInvalidFormat) {
		t.Errorf("malformed input: got %v", err)
	}
	_, err = ParseDecimal("99999999999999999999999999999999")
	if !tkerror.HasCode(err, tkerror.CodeValueOutOfRange) {
		t.Errorf("out of range input: got %v", err)
	}
}

func TestZeroValue(t *testing.T) {
	var d Decimal
	if !d.IsZero() || d.String() != "0" || !d.Equal(Zero()) {
		t.Errorf("zero value should behave as 0, got %s", d)
	}
	if got := d.Add(NewDecimalFromInt(3)).String(); got != "3" {
		t.Errorf("0 + 3 = %s", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := MustParseDecimal("0.1")
	b := MustParseDecimal("0.2")

	if got := a.Add(b).String(); got != "0.3" {
		t.Errorf("0.1 + 0.2 = %s; want 0.3", got)
	}
	if got := a.Subtract(b).String(); got != "-0.1" {
		t.Errorf("0.1 - 0.2 = %s; want -0.1", got)
	}
	if got := a.Multiply(b).String(); got != "0.02" {
		t.Errorf("0.1 * 0.2 = %s; want 0.02", got)
	}
	if a.Compare(b) != -1 || b.Neg().Sign() != -1 {
		t.Error("Compare/Neg returned unexpected results")
	}
	if got := MustParseDecimal("2.345").StringFixed(2); got != "2.35" {
		t.Errorf("StringFixed(2) = %s; want 2.35", got)
	}
	if got := MustParseDecimal("1.5").Float64(); got != 1.5 {
		t.Errorf("Float64() = %v; want 1.5", got)
	}
}

func TestDecimalJSON(t *testing.T) {
	var v struct {
		Amount Decimal `json:"amount"`
		Text   Decimal `json:"text"`
	}
	if err := json.Unmarshal([]byte(`{"amount": 12.50, "text": "1,000.25"}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.Amount.String() != "12.5" || v.Text.String() != "1000.25" {
		t.Errorf("decoded %s and %s", v.Amount, v.Text)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"amount":12.5,"text":1000.25}` {
		t.Errorf("Marshal() = %s", out)
	}
}

func TestDecimalJSONExponent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		code     tkerror.Code
	}{
		{`1.5e2`, "150", ""},
		{`"2E-3"`, "0.002", ""},
		{`7.9e28`, "79000000000000000000000000000", ""},
		{`1e100000`, "", tkerror.CodeValueOutOfRange},
		{`-1e1000`, "", tkerror.CodeValueOutOfRange},
		{`8e28`, "", tkerror.CodeValueOutOfRange},
		{`"1e99999999999999999999"`, "", tkerror.CodeValueOutOfRange},
		{`"1ex"`, "", tkerror.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Decimal
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.code != "" {
				if !tkerror.HasCode(err, tt.code) {
					t.Fatalf("Unmarshal(%s) error = %v, want code %s", tt.input, err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if d.String() != tt.expected {
				t.Errorf("Unmarshal(%s) = %s, want %s", tt.input, d, tt.expected)
			}
		})
	}
}

func TestTryParseDecimal(t *testing.T) {
	if d, ok := TryParseDecimal("1,000.5"); !ok || d.String() != "1000.5" {
		t.Errorf("TryParseDecimal(1,000.5) = %s, %v", d, ok)
	}
	for _, input := range []string{"", "abc", "1e3", "79228162514264337593543950336"} {
		if _, ok := TryParseDecimal(input); ok {
			t.Errorf("TryParseDecimal(%q) = true", input)
		}
	}
}

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		input    string
		style    NumberStyle
		expected string
		ok       bool
	}{
		{" +1,234.50 ", StyleNumber, "1234.50", true},
		{"-1.5e-3", StyleFloat, "-1.5e-3", true},
		{"1E+10", StyleFloat, "1e+10", true},
		{"1e3", StyleNumber, "", false},
		{"1e", StyleFloat, "", false},
		{".e1", StyleFloat, "", false},
		{"1,000", AllowDecimalPoint, "", false},
		{".5", StyleNumber, "0.5", true},
		{"-.5", StyleNumber, "-0.5", true},
		{"5.", StyleNumber, "5", true},
		{".", StyleNumber, "", false},
		{"12", 0, "12", true},
		{"1.5", 0, "", false},
		{"0x10", StyleFloat, "", false},
		{"1_000", StyleFloat, "", false},
		{"--1", StyleFloat, "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeNumber(tt.input, tt.style)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("NormalizeNumber(%q, %d) = %q, %v; want %q, %v", tt.input, tt.style, got, ok, tt.expected, tt.ok)
		}
	}
}
