// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so logging can prioritize
//              them appropriately. User-facing console errors are low
//              severity; construction-time invariant violations are critical.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: unknown command, bad argument, unrecognized symbol name
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable script file, malformed configuration
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: script inclusion depth exhausted, internal state inconsistency
	SeverityHigh

	// SeverityCritical indicates an error that makes the program unusable
	// Examples: duplicate overload in the registered command set
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeDuplicateOverload, CodeEmptyCommandName:
		return SeverityCritical

	case CodeScriptDepth, CodeInternal:
		return SeverityHigh

	case CodeScriptIO, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium

	case CodeNoMatch, CodeArgumentCount, CodeArgumentType,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
