// Package oaserrors provides structured error types for the apisidebar module.
//
// Import path: github.com/pinglow/apisidebar/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish the failure kinds of the sidebar pipeline.
// Every kind is fatal to the pipeline; the types exist so the diagnostic can
// name what failed and where.
//
// # Error Types
//
//   - [FileNotFoundError]: the input document does not exist
//   - [ParseError]: the input is not syntactically valid JSON
//   - [TypeError]: the JSON does not have the paths/path item/operation shape
//   - [IOError]: reading the input or writing the output failed
//   - [ConfigError]: invalid configuration file or option
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrFileNotFound]: Matches any [FileNotFoundError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrType]: Matches any [TypeError]
//   - [ErrIO]: Matches any [IOError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.json"))
//	if errors.Is(err, oaserrors.ErrFileNotFound) {
//	    // Generate the OpenAPI document first
//	}
//
//	var typeErr *oaserrors.TypeError
//	if errors.As(err, &typeErr) {
//	    fmt.Printf("bad shape at %s (line %d)\n", typeErr.Path, typeErr.Line)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap().
// A [FileNotFoundError] keeps the underlying *fs.PathError as its cause, so
// errors.Is(err, os.ErrNotExist) also holds.
package oaserrors
