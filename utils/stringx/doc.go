// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the text normalization helpers shared
//              by the textkit converter and classifier.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2026-10-12 v0.3.0: Narrowed to normalization helpers

// Package stringx provides text normalization helpers.
//
// The functions are Unicode-aware unless their name says otherwise:
// IsBlank and the Trim functions use unicode.IsSpace, IsDigits accepts any
// decimal digit (Nd), while IsASCIIDigits and LastIndexFold work on ASCII.
//
//	stringx.IsBlank("\t ")                                   // true
//	stringx.RemoveChars("4111-1111 1111", " -")              // "411111111111"
//	stringx.StripExtension("555 0100 x12", "ext.", "ext", "x") // "555 0100 "
//	stringx.CamelCaseName("URLValue")                        // "urlValue"
package stringx
