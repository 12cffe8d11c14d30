// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for classifying errors across
//              dbgcon. The console codes mirror the runtime error taxonomy of
//              the command console: resolution, overload selection, argument
//              coercion, and script execution.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used across dbgcon
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Console registry construction (fatal at startup)
	CodeDuplicateOverload Code = "CONSOLE_DUPLICATE_OVERLOAD"
	CodeEmptyCommandName  Code = "CONSOLE_EMPTY_COMMAND_NAME"

	// Console runtime (caught at the line boundary)
	CodeNoMatch       Code = "CONSOLE_NO_MATCH"
	CodeArgumentCount Code = "CONSOLE_ARGUMENT_COUNT"
	CodeArgumentType  Code = "CONSOLE_ARGUMENT_TYPE"

	// Script execution
	CodeScriptIO    Code = "SCRIPT_IO"
	CodeScriptDepth Code = "SCRIPT_DEPTH"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDuplicateOverload, CodeEmptyCommandName,
		CodeNoMatch, CodeArgumentCount, CodeArgumentType,
		CodeScriptIO, CodeScriptDepth,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDuplicateOverload, CodeEmptyCommandName:
		return "registration"
	case CodeNoMatch, CodeArgumentCount, CodeArgumentType:
		return "console"
	case CodeScriptIO, CodeScriptDepth:
		return "script"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Recoverable reports whether the console loop may continue after an error
// with this code. Registration conflicts are construction-time invariant
// violations and never recoverable; script errors propagate out of the
// current script level.
func (c Code) Recoverable() bool {
	switch c {
	case CodeNoMatch, CodeArgumentCount, CodeArgumentType:
		return true
	default:
		return false
	}
}
