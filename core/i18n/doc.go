// File: doc.go
// Title: Internationalization Package Documentation
// Description: Package i18n provides the locale calendars used to render dates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12

// Package i18n provides locale calendars for date rendering.
//
// Parsing in textkit is always invariant. Only formatting takes a locale:
// timex.FormatPattern asks a Calendar for month names, day names and AM/PM
// designators. Calendars for English, German, French and Spanish are embedded
// as TOML files; Lookup matches any BCP 47 tag or POSIX locale name against
// them and falls back to the invariant English calendar.
//
//	cal := i18n.Lookup("de-CH")
//	cal.MonthName(time.March) // "März"
package i18n
