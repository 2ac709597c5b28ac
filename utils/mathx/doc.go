// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimal values and the invariant
//              numeric grammar used by the textkit converter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2026-10-12 v0.2.0: Reduced to Decimal and NormalizeNumber

// Package mathx provides exact decimal values.
//
// Decimal wraps big.Rat so that values parsed from text keep every digit.
// Parsing follows the invariant number grammar implemented by
// NormalizeNumber: an optional sign, digits with ',' group separators and an
// optional fraction. StyleFloat additionally allows an exponent and is used
// by the floating-point converters.
//
//	total := mathx.MustParseDecimal("0.1").Add(mathx.MustParseDecimal("0.2"))
//	fmt.Println(total) // 0.3
package mathx
