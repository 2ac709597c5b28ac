// File: convertx.go
// Title: Lenient Converter
// Description: Defines the absence policy and the Converter that applies it to
//              the nullable conversions. Non-nullable conversions never depend
//              on the policy and are plain package functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package convertx

import (
	"github.com/msto63/textkit/utils/stringx"
)

// Policy decides which inputs a nullable conversion treats as absent
type Policy struct {
	// WhitespaceAsAbsent makes whitespace-only text absent. When false only
	// the empty string is absent.
	WhitespaceAsAbsent bool
}

// DefaultPolicy treats empty and whitespace-only text as absent
var DefaultPolicy = Policy{WhitespaceAsAbsent: true}

// Option configures a Converter
type Option func(*Converter)

// WithWhitespaceAsAbsent sets Policy.WhitespaceAsAbsent
func WithWhitespaceAsAbsent(enabled bool) Option {
	return func(c *Converter) {
		c.policy.WhitespaceAsAbsent = enabled
	}
}

// WithPolicy replaces the whole policy
func WithPolicy(p Policy) Option {
	return func(c *Converter) {
		c.policy = p
	}
}

// Converter performs nullable conversions under a fixed absence policy.
// It is immutable and safe for concurrent use.
type Converter struct {
	policy Policy
}

var defaultConverter = &Converter{policy: DefaultPolicy}

// New creates a Converter with DefaultPolicy modified by opts
func New(opts ...Option) *Converter {
	c := &Converter{policy: DefaultPolicy}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns the converter used by the package-level functions
func Default() *Converter {
	return defaultConverter
}

// Policy returns the converter's absence policy
func (c *Converter) Policy() Policy {
	return c.policy
}

// IsAbsent reports whether text counts as "no value" under the policy
func (c *Converter) IsAbsent(text string) bool {
	if c.policy.WhitespaceAsAbsent {
		return stringx.IsBlank(text)
	}
	return stringx.IsEmpty(text)
}

// Nullable applies convert to text unless the text is absent under c's
// policy. A present but unparsable text yields a pointer to the zero value.
//
//	color := convertx.Nullable(conv, text, func(s string) Color {
//		return convertx.ToEnum(s, Red, true, Red, Green, Blue)
//	})
func Nullable[T any](c *Converter, text string, convert func(string) T) *T {
	if c == nil {
		c = defaultConverter
	}
	if c.IsAbsent(text) {
		return nil
	}
	v := convert(text)
	return &v
}
