package mcpserver

import (
	"fmt"
	"strings"

	"github.com/pinglow/apisidebar/internal/options"
	"github.com/pinglow/apisidebar/parser"
)

// inlineSourceName identifies inline content in results and error messages.
const inlineSourceName = "<inline>"

// specInput represents the two ways an OpenAPI document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI JSON file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI JSON document content"`
}

// resolve parses the document from whichever input was provided.
// Each call parses afresh; nothing is shared between tool calls.
func (s specInput) resolve(extraOpts ...parser.Option) (*parser.ParseResult, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file or content must be provided (got none)",
		"exactly one of file or content must be provided (got both)",
		s.File != "", s.Content != "",
	); err != nil {
		return nil, err
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set APISIDEBAR_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var opts []parser.Option
	if s.File != "" {
		opts = append(opts, parser.WithFilePath(s.File))
	} else {
		opts = append(opts,
			parser.WithReader(strings.NewReader(s.Content)),
			parser.WithSourceName(inlineSourceName),
		)
	}
	opts = append(opts, extraOpts...)

	return parser.ParseWithOptions(opts...)
}
