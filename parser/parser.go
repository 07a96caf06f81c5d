package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/pinglow/apisidebar/oaserrors"
)

// Parser loads OpenAPI JSON documents into order-preserving [Document] values.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
	// SourceName overrides the source identifier used in results and
	// error messages. Defaults to the file path for Parse, and to
	// "ParseBytes.json" / "ParseReader.json" otherwise.
	SourceName string
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return OrNop(p.Logger)
}

// ParseResult contains the parsed document and load metadata.
// Callers should treat it as read-only.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// If the source was not a file path, this is "ParseBytes.json" or
	// "ParseReader.json" unless a source name was given.
	SourcePath string
	// Document contains the typed, order-preserving document
	Document *Document
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse reads and parses the JSON document at specPath.
//
// A missing file yields an *oaserrors.FileNotFoundError, any other read
// failure an *oaserrors.IOError. See ParseBytes for content errors.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("parser: %w", &oaserrors.FileNotFoundError{Path: specPath, Cause: err})
		}
		return nil, fmt.Errorf("parser: %w", &oaserrors.IOError{Op: "read", Path: specPath, Cause: err})
	}

	source := specPath
	if p.SourceName != "" {
		source = p.SourceName
	}
	res, err := p.parse(data, source)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader parses a JSON document from an io.Reader.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", &oaserrors.IOError{Op: "read", Path: p.sourceOr("ParseReader.json"), Cause: err})
	}
	res, err := p.parse(data, p.sourceOr("ParseReader.json"))
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a JSON document from a byte slice.
//
// Content that is not valid JSON yields an *oaserrors.ParseError with the
// line and column of the syntax error. Valid JSON whose shape does not
// match the paths/path item/operation layout yields an *oaserrors.TypeError.
// A document without "paths" is valid and has no path items.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, p.sourceOr("ParseBytes.json"))
}

func (p *Parser) sourceOr(fallback string) string {
	if p.SourceName != "" {
		return p.SourceName
	}
	return fallback
}

// parse validates data as JSON, then decodes its token stream into a node
// tree so that key order and positions survive.
func (p *Parser) parse(data []byte, source string) (*ParseResult, error) {
	if err := checkJSON(data, source); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	root, err := buildTree(data)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", &oaserrors.ParseError{Path: source, Message: "failed to build document tree", Cause: err})
	}

	d := &decoder{source: source, log: p.log()}
	doc, err := d.decode(root)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	result := &ParseResult{
		SourcePath: source,
		Document:   doc,
		SourceSize: int64(len(data)),
		Stats:      GetDocumentStats(doc),
	}
	p.log().Debug("parsed document",
		"source", source,
		"size", FormatBytes(result.SourceSize),
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
	)
	return result, nil
}

// checkJSON returns an *oaserrors.ParseError if data is not a single valid
// JSON value.
func checkJSON(data []byte, source string) error {
	if json.Valid(data) {
		return nil
	}
	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)
	parseErr := &oaserrors.ParseError{Path: source, Message: "invalid JSON", Cause: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		parseErr.Line, parseErr.Column = offsetToLineColumn(data, syntaxErr.Offset)
	}
	return parseErr
}

// offsetToLineColumn converts a json.SyntaxError offset into the 1-based
// line and column of the offending byte. The offset counts the bytes read,
// so the offending byte is the one before it.
func offsetToLineColumn(data []byte, offset int64) (int, int) {
	return positionOf(data, offset-1)
}
