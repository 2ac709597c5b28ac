// File: text.go
// Title: Text Conversions
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package convertx

import (
	"github.com/msto63/textkit/utils/jsonx"
	"github.com/msto63/textkit/utils/stringx"
)

// ToCamelCase lower-cases the first character. Empty and single-character
// text is returned unchanged.
func ToCamelCase(text string) string {
	return stringx.LowerFirst(text)
}

// ToJSON serializes v with the default JSON options: camelCase names, null
// properties omitted, two-space indentation
func ToJSON(v interface{}, opts ...jsonx.Option) (string, error) {
	return jsonx.ToJSON(v, opts...)
}
