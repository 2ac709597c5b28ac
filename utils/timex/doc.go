// File: doc.go
// Title: Time Utilities Package Documentation
// Description: Package timex provides date parsing, comparison, whole-year
//              arithmetic and pattern-based rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-12 v0.2.0: Narrowed to the date handling used by textkit

// Package timex implements the date handling behind textkit's converters and
// predicates.
//
// # Parsing
//
// Parse is lenient: it trims the input and tries LenientLayouts in order.
// All layouts are invariant (English names, month-first numeric dates), so
// the result never depends on the host locale. ParseStandardDate accepts
// exactly yyyy-MM-dd and rejects impossible dates such as 2024-02-30.
//
// # Arithmetic
//
// Age counts whole years the way a birthday does:
//
//	birth := time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)
//	timex.Age(birth, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)) // 23
//	timex.Age(birth, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))  // 24
//
// CompareDate compares calendar days and ignores the time of day.
//
// # Rendering
//
// FormatPattern renders custom format strings such as "dddd, d. MMMM yyyy"
// with the names of an i18n.Calendar.
package timex
