// File: json.go
// Title: JSON Well-Formedness Check
// Description: Streams JSON tokens to decide whether text is a single
//              well-formed object or array within size and depth limits.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12

package validationx

import (
	"encoding/json"
	"io"
	"strings"
)

const (
	// DefaultJSONMaxBytes bounds the input size of IsValidJSON
	DefaultJSONMaxBytes = 1 << 20

	// DefaultJSONMaxDepth bounds the nesting of IsValidJSON
	DefaultJSONMaxDepth = 512
)

// JSONLimits bounds the work done by IsValidJSONWithLimits. Zero fields take
// the defaults.
type JSONLimits struct {
	MaxBytes int
	MaxDepth int
}

// DefaultJSONLimits returns the limits used by IsValidJSON
func DefaultJSONLimits() JSONLimits {
	return JSONLimits{MaxBytes: DefaultJSONMaxBytes, MaxDepth: DefaultJSONMaxDepth}
}

func (l JSONLimits) withDefaults() JSONLimits {
	if l.MaxBytes <= 0 {
		l.MaxBytes = DefaultJSONMaxBytes
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultJSONMaxDepth
	}
	return l
}

// IsValidJSON reports whether the trimmed text is a JSON object or array that
// parses completely, within DefaultJSONLimits
func IsValidJSON(text string) bool {
	return IsValidJSONWithLimits(text, DefaultJSONLimits())
}

// IsValidJSONWithLimits is IsValidJSON with explicit limits. Text larger than
// MaxBytes or nested deeper than MaxDepth is invalid.
func IsValidJSONWithLimits(text string, limits JSONLimits) bool {
	limits = limits.withDefaults()

	text = strings.TrimSpace(text)
	if len(text) > limits.MaxBytes {
		return false
	}
	if !(strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}")) &&
		!(strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]")) {
		return false
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
				if depth > limits.MaxDepth {
					return false
				}
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			break
		}
	}

	_, err := dec.Token()
	return err == io.EOF
}
