// Package error provides structured error handling for dbgcon.
//
// Package: error
// Title: dbgcon Error Handling Framework
// Description: This package implements a structured error handling system
//              with error codes, severity levels, and detail metadata. The
//              codes model the console's error taxonomy: registration
//              conflicts are fatal at startup, resolution and coercion
//              failures are caught at the line boundary, and script errors
//              propagate out of the current script level.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//   import dbgerror "github.com/msto63/dbgcon/core/error"
//
//   // Create a new error with context
//   err := dbgerror.New("no such command").
//     WithCode(dbgerror.CodeNoMatch).
//     WithDetail("tokens", tokens)
//
//   // Check error codes to decide whether the line loop continues
//   if dbgerror.GetCode(err).Recoverable() {
//     // report and keep prompting
//   }
package error
