// File: doc.go
// Title: Package Documentation for convertx
// Description: Package convertx converts user-supplied text into typed values
//              without failing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

// Package convertx converts text into typed values leniently.
//
// Every ToX function returns the zero value of X when the text is empty or
// cannot be parsed; it never returns an error and never panics. ToNullableX
// distinguishes "no value" from "bad value": it returns nil when the text is
// absent and a pointer to ToX(text) otherwise, so unparsable text yields a
// pointer to the zero value.
//
// What counts as absent is decided by a Policy. The package-level functions
// use DefaultPolicy, which treats whitespace-only text as absent. A Converter
// created with WithWhitespaceAsAbsent(false) only treats "" as absent:
//
//	convertx.ToNullableInt32("  ")                                    // nil
//	convertx.New(convertx.WithWhitespaceAsAbsent(false)).ToNullableInt32("  ") // &0
//
// Parsing is locale independent. Numbers use '.' as decimal point and ','
// as group separator; dates are tried against timex.LenientLayouts.
// Formatting takes an explicit locale through ToDateTimeFormatLocale.
//
// Base64Decode is the one function that reports failures: malformed input
// returns a *tkerror.Error with code INVALID_FORMAT.
package convertx
