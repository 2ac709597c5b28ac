// File: guid.go
// Title: Identifier Conversions
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package convertx

import (
	"strings"

	"github.com/google/uuid"
)

// ToGUID parses canonical, braced, urn:uuid: and 32-digit hex identifiers,
// or returns uuid.Nil
func ToGUID(text string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(text))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ToNullableGUID converts text unless it is absent under the policy
func (c *Converter) ToNullableGUID(text string) *uuid.UUID {
	return Nullable(c, text, ToGUID)
}

// ToNullableGUID uses the default policy
func ToNullableGUID(text string) *uuid.UUID {
	return defaultConverter.ToNullableGUID(text)
}
