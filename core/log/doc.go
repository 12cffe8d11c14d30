// Package log provides structured, leveled logging for dbgcon.
//
// Package: log
// Title: dbgcon Logging Framework
// Description: This package implements a structured logger with contextual
//              fields, named sub-loggers, per-session identifiers, and
//              pluggable output formats (colored console, plain text, JSON).
//              Diagnostics the user sees on the console are NOT logged here;
//              this logger carries the operational trail (registrations,
//              script execution, session lifecycle).
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial implementation
//
// Usage:
//   import "github.com/msto63/dbgcon/core/log"
//
//   logger := log.GetDefault().WithName("console")
//   logger.Info("command tree built", log.Fields{"commands": n})
package log
