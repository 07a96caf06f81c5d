package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrFileNotFound indicates the input document does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrParse indicates the input is not valid JSON.
	ErrParse = errors.New("parse error")

	// ErrType indicates the input JSON has an unexpected shape.
	ErrType = errors.New("type error")

	// ErrIO indicates a filesystem read or write failure.
	ErrIO = errors.New("io error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// FileNotFoundError represents a missing input document.
type FileNotFoundError struct {
	// Path is the file path that was requested
	Path string
	// Cause is the underlying error, usually an *fs.PathError
	Cause error
}

// Error returns a human-readable error message.
func (e *FileNotFoundError) Error() string {
	msg := "file not found"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FileNotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// ParseError represents a failure to parse the input document as JSON.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// TypeError represents valid JSON whose shape does not match what the
// sidebar generator navigates (paths, path items, operations).
type TypeError struct {
	// Source is the file path or source identifier
	Source string
	// Path is the JSON path to the offending node (e.g., "$.paths['/pets'].get")
	Path string
	// Expected is the JSON kind that was required (e.g., "object", "string")
	Expected string
	// Got is the JSON kind that was found
	Got string
	// Line is the line number of the offending node (0 if unknown)
	Line int
	// Column is the column number of the offending node (0 if unknown)
	Column int
}

// Error returns a human-readable error message.
func (e *TypeError) Error() string {
	msg := "type error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Got != "" {
			msg += ", got " + e.Got
		}
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
		msg += ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *TypeError) Is(target error) bool {
	return target == ErrType
}

// IOError represents a filesystem failure while reading the input or
// writing the output.
type IOError struct {
	// Op is the failed operation: "read", "mkdir", "write", "rename", "stat"
	Op string
	// Path is the file or directory involved
	Path string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	msg := "io error"
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}
	if e.Path != "" {
		msg += " on " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, unknown configuration keys, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
