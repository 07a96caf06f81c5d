package parser

import "fmt"

// Document is the part of an OpenAPI document the sidebar is built from.
// Paths keeps the order of the source "paths" object.
type Document struct {
	// Paths holds the path items in source order
	Paths []*PathItem
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	// Template is the URL path template key (e.g., "/widgets/{id}")
	Template string
	// Operations holds the recognized-method operations in source key order.
	// Keys that are not operation methods (parameters, summary, x-*) are not kept.
	Operations []*Operation
	// Location is the position of the path template key in the source
	Location SourceLocation
}

// Operation describes a single API operation on a path.
type Operation struct {
	// Method is the lowercase HTTP method key (e.g., "get")
	Method string
	// OperationID is the operationId, empty if absent or null
	OperationID string
	// Summary is the summary as written, empty if absent or null
	Summary string
	// Location is the position of the method key in the source
	Location SourceLocation
}

// SourceLocation represents a position in a source document.
// Line and Column are 1-based (matching editor conventions).
// A zero Line value indicates the location is unknown.
type SourceLocation struct {
	// Line is the 1-based line number (0 if unknown)
	Line int
	// Column is the 1-based column number (0 if unknown)
	Column int
}

// IsKnown returns true if this location has valid line information.
func (s SourceLocation) IsKnown() bool {
	return s.Line > 0
}

// String returns "line:column", or "<unknown>" if not known.
func (s SourceLocation) String() string {
	if !s.IsKnown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// OperationCount returns the number of recognized operations across all paths.
func (d *Document) OperationCount() int {
	if d == nil {
		return 0
	}
	count := 0
	for _, p := range d.Paths {
		count += len(p.Operations)
	}
	return count
}
