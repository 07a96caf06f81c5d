package sidebar

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pinglow/apisidebar/internal/options"
	"github.com/pinglow/apisidebar/internal/pathutil"
	"github.com/pinglow/apisidebar/oaserrors"
	"github.com/pinglow/apisidebar/parser"
	"github.com/pinglow/apisidebar/walker"
)

// Default values of the descriptor's fixed parts.
const (
	DefaultSidebarID     = "apiSidebar"
	DefaultCategoryLabel = "RestAPI"
	DefaultAnchorDoc     = "restapi"
	DefaultHrefPrefix    = "/docs/restapi#tag/crate/operation/"
)

// Generator builds sidebar descriptors from parsed documents.
type Generator struct {
	// SidebarID is the member name of the top-level object
	SidebarID string
	// CategoryLabel is the label of the single category
	CategoryLabel string
	// AnchorDoc is the doc id placed first in the category
	AnchorDoc string
	// HrefPrefix is prepended to each operation anchor
	HrefPrefix string
	// Logger is the structured logger for debug and warning output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a Generator with the default sidebar id, labels and href prefix.
func New() *Generator {
	return &Generator{
		SidebarID:     DefaultSidebarID,
		CategoryLabel: DefaultCategoryLabel,
		AnchorDoc:     DefaultAnchorDoc,
		HrefPrefix:    DefaultHrefPrefix,
	}
}

// Generate builds the sidebar for doc. The category starts with the anchor
// doc, followed by one link per recognized-method operation in document
// order.
func (g *Generator) Generate(doc *parser.Document) (*Sidebars, error) {
	if doc == nil {
		return nil, fmt.Errorf("sidebar: nil Document")
	}
	log := parser.OrNop(g.Logger)
	upper := cases.Upper(language.Und)

	category := &Category{
		Type:  TypeCategory,
		Label: g.CategoryLabel,
		Items: []Item{DocItem(g.AnchorDoc)},
	}
	sb := &Sidebars{ID: g.SidebarID, APISidebar: []*Category{category}}
	seen := make(map[string]string)

	err := walker.Walk(doc,
		walker.WithOperationHandler(func(wc *walker.WalkContext, op *parser.Operation) walker.Action {
			link := &Link{
				Type:  TypeLink,
				Label: operationLabel(upper, wc.PathTemplate, op),
				Href:  g.HrefPrefix + operationAnchor(wc.PathTemplate, op),
			}
			if first, dup := seen[link.Href]; dup {
				log.Warn("duplicate sidebar href",
					"href", link.Href,
					"operation", wc.JSONPath,
					"first", first,
				)
				sb.duplicates = append(sb.duplicates, link.Href)
			} else {
				seen[link.Href] = wc.JSONPath
			}
			category.Items = append(category.Items, link)
			return walker.Continue
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("sidebar: %w", err)
	}

	log.Debug("generated sidebar",
		"sidebar", sb.ID,
		"items", len(category.Items),
		"duplicates", len(sb.duplicates),
	)
	return sb, nil
}

// operationAnchor returns the operationId, or "{method}_{path}" with the
// path made anchor-safe when the operation has none.
func operationAnchor(template string, op *parser.Operation) string {
	if op.OperationID != "" {
		return op.OperationID
	}
	return op.Method + "_" + pathutil.AnchorSafe(template)
}

// operationLabel returns the trimmed summary, or "{METHOD} {path}" when the
// summary is empty after trimming.
func operationLabel(upper cases.Caser, template string, op *parser.Operation) string {
	if summary := strings.TrimSpace(op.Summary); summary != "" {
		return summary
	}
	return upper.String(op.Method) + " " + template
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source for GenerateWithOptions (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	sidebarID     string
	categoryLabel string
	anchorDoc     string
	hrefPrefix    string
	logger        parser.Logger
}

// Generate builds the sidebar for doc using functional options.
//
// Example:
//
//	sb, err := sidebar.Generate(result.Document,
//	    sidebar.WithCategoryLabel("HTTP API"),
//	    sidebar.WithLogger(logger),
//	)
func Generate(doc *parser.Document, opts ...Option) (*Sidebars, error) {
	cfg, err := applyConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("sidebar: invalid options: %w", err)
	}
	return cfg.generator().Generate(doc)
}

// GenerateWithOptions parses and builds the sidebar in one call.
// Exactly one of WithFilePath or WithParsed must be given.
//
// Example:
//
//	sb, err := sidebar.GenerateWithOptions(
//	    sidebar.WithFilePath("docs/static/openapi.json"),
//	    sidebar.WithLogger(logger),
//	)
func GenerateWithOptions(opts ...Option) (*Sidebars, error) {
	cfg, err := applyConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("sidebar: invalid options: %w", err)
	}
	if err := options.ValidateSingleInputSource(
		"sidebar: must specify an input source (use WithFilePath or WithParsed)",
		"sidebar: must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, fmt.Errorf("sidebar: invalid options: %w", err)
	}

	result := cfg.parsed
	if cfg.filePath != nil {
		result, err = parser.ParseWithOptions(
			parser.WithFilePath(*cfg.filePath),
			parser.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, err
		}
	}
	return cfg.generator().Generate(result.Document)
}

// applyConfig applies option functions over the defaults
func applyConfig(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		sidebarID:     DefaultSidebarID,
		categoryLabel: DefaultCategoryLabel,
		anchorDoc:     DefaultAnchorDoc,
		hrefPrefix:    DefaultHrefPrefix,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (cfg *generateConfig) generator() *Generator {
	return &Generator{
		SidebarID:     cfg.sidebarID,
		CategoryLabel: cfg.categoryLabel,
		AnchorDoc:     cfg.anchorDoc,
		HrefPrefix:    cfg.hrefPrefix,
		Logger:        cfg.logger,
	}
}

// WithFilePath specifies an OpenAPI JSON file as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		if result == nil {
			return fmt.Errorf("sidebar: parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithSidebarID sets the member name of the top-level object.
// Default: "apiSidebar"
func WithSidebarID(id string) Option {
	return func(cfg *generateConfig) error {
		if id == "" {
			return &oaserrors.ConfigError{Option: "sidebar_id", Message: "must not be empty"}
		}
		cfg.sidebarID = id
		return nil
	}
}

// WithCategoryLabel sets the label of the category.
// Default: "RestAPI"
func WithCategoryLabel(label string) Option {
	return func(cfg *generateConfig) error {
		if label == "" {
			return &oaserrors.ConfigError{Option: "category_label", Message: "must not be empty"}
		}
		cfg.categoryLabel = label
		return nil
	}
}

// WithAnchorDoc sets the doc id placed first in the category.
// Default: "restapi"
func WithAnchorDoc(docID string) Option {
	return func(cfg *generateConfig) error {
		if docID == "" {
			return &oaserrors.ConfigError{Option: "anchor_doc", Message: "must not be empty"}
		}
		cfg.anchorDoc = docID
		return nil
	}
}

// WithHrefPrefix sets the prefix of every operation link.
// Default: "/docs/restapi#tag/crate/operation/"
func WithHrefPrefix(prefix string) Option {
	return func(cfg *generateConfig) error {
		cfg.hrefPrefix = prefix
		return nil
	}
}

// WithLogger sets a structured logger for debug and warning output.
// The logger is also handed to the parser by GenerateWithOptions.
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}
