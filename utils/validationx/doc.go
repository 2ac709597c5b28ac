// File: doc.go
// Title: Package Documentation for validationx
// Description: Package validationx classifies text against format shapes.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2025-01-26 v0.2.0: Refactored to use core validation framework with standardized error codes
// - 2026-10-12 v0.3.0: Reduced to stateless boolean predicates

// Package validationx provides boolean predicates that classify text.
//
// The checks are structural and ASCII-oriented. They are not RFC parsers:
// IsValidEmail only requires a single '@' with text on both sides, and
// IsValidPhone only checks the characters that remain after removing '+'
// signs and an extension suffix.
//
// # Predicates
//
//   - IsValidEmail, IsValidCreditCard (Luhn), IsValidPhone
//   - IsValidJSON, IsValidJSONWithLimits
//   - IsValidDate, IsValidNullableDate, IsValidDateString, IsFutureDate,
//     IsValidStandardDate
//   - IsNumber, IsWholeNumber, IsDecimalNumber, IsBoolean, IsHTML,
//     IsAlphaNumeric, IsAlphaNumericStrict
//
// Date and number predicates delegate to the lenient converters in
// convertx and the decimal grammar in mathx, so a string is a valid date
// exactly when convertx.ToDateTime returns a non-zero time.
//
// # Phone Numbers
//
//	validationx.IsValidPhone("+1 (555) 123-4567")                        // true
//	validationx.IsValidPhone("555-0100 ext. 12", validationx.WithMaxLength(9)) // true
//	validationx.IsValidPhone("abcdefg")                                  // false
//
// Length bounds count runes after the extension is stripped; a bound of 0
// disables it.
//
// # Untrusted JSON
//
// IsValidJSON streams tokens and stops at 1 MiB of input or 512 levels of
// nesting. Use IsValidJSONWithLimits for other bounds.
//
// # By Name
//
// Check and Classify look predicates up by the names returned from Names,
// which is how the textkit command line tool exposes them.
//
// All functions are safe for concurrent use.
package validationx
