// File: base64.go
// Title: Base64 Conversions
// Description: Standard padded base64 encoding and decoding. Decoding is the
//              one conversion that reports an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package convertx

import (
	"encoding/base64"
	"strings"

	"github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/utils/stringx"
)

// base64Whitespace is skipped when decoding
const base64Whitespace = " \t\r\n"

// Base64Encode encodes the UTF-8 bytes of text
func Base64Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Base64EncodeBytes encodes data
func Base64EncodeBytes(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64DecodeBytes decodes standard padded base64, ignoring spaces, tabs and
// line breaks. Malformed input returns an INVALID_FORMAT error.
func Base64DecodeBytes(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(stringx.RemoveChars(text, base64Whitespace))
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleConvertx, "Base64Decode", "base64", err)
	}
	return data, nil
}

// Base64Decode decodes text and interprets the bytes as UTF-8. Invalid
// sequences become U+FFFD.
func Base64Decode(text string) (string, error) {
	data, err := Base64DecodeBytes(text)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
