// Package error provides the structured error type used across textkit.
//
// Package: error
// Title: textkit Error Handling
// Description: Implements an error type carrying a code, a severity, a set of
//              details and the failing operation. Guards, base64 decoding,
//              JSON serialization and configuration loading all report
//              failures through this type so callers can branch on codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Reduced to the codes used by the conversion toolkit,
//                       added PRECONDITION_FAILED for guard clauses
//
// Usage:
//   import tkerror "github.com/msto63/textkit/core/error"
//
//   err := tkerror.New("parameter name was blank").
//     WithCode(tkerror.CodePreconditionFailed).
//     WithDetail("parameter", "name")
//
//   if tkerror.HasCode(err, tkerror.CodePreconditionFailed) {
//     // programmer error, surface it
//   }
package error
