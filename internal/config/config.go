// Package config loads apisidebar settings from an optional TOML file.
//
// A config file looks like:
//
//	docs_dir = "docs"
//	input    = "static/openapi.json"
//	output   = "src/sidebars/apiSidebar.json"
//
//	[sidebar]
//	id             = "apiSidebar"
//	category_label = "RestAPI"
//	anchor_doc     = "restapi"
//	href_prefix    = "/docs/restapi#tag/crate/operation/"
//
// Every key is optional; missing keys keep their defaults. Relative input
// and output paths are resolved against docs_dir.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pinglow/apisidebar/oaserrors"
	"github.com/pinglow/apisidebar/sidebar"
)

// Default locations, relative to the working directory.
const (
	DefaultDocsDir = "docs"
	DefaultInput   = "static/openapi.json"
	DefaultOutput  = "src/sidebars/apiSidebar.json"
)

// Config holds the pipeline settings.
type Config struct {
	DocsDir string  `toml:"docs_dir"`
	Input   string  `toml:"input"`
	Output  string  `toml:"output"`
	Sidebar Sidebar `toml:"sidebar"`
}

// Sidebar holds the descriptor's fixed parts.
type Sidebar struct {
	ID            string `toml:"id"`
	CategoryLabel string `toml:"category_label"`
	AnchorDoc     string `toml:"anchor_doc"`
	HrefPrefix    string `toml:"href_prefix"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DocsDir: DefaultDocsDir,
		Input:   DefaultInput,
		Output:  DefaultOutput,
		Sidebar: Sidebar{
			ID:            sidebar.DefaultSidebarID,
			CategoryLabel: sidebar.DefaultCategoryLabel,
			AnchorDoc:     sidebar.DefaultAnchorDoc,
			HrefPrefix:    sidebar.DefaultHrefPrefix,
		},
	}
}

// Load reads the TOML file at path over the defaults.
// Unknown keys are rejected so that typos do not pass silently.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "config file not found", Cause: err}
		}
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "invalid config file", Cause: err}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &oaserrors.ConfigError{
			Option:  "config",
			Value:   path,
			Message: fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", ")),
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	required := []struct {
		option, value string
	}{
		{"input", c.Input},
		{"output", c.Output},
		{"sidebar.id", c.Sidebar.ID},
		{"sidebar.category_label", c.Sidebar.CategoryLabel},
		{"sidebar.anchor_doc", c.Sidebar.AnchorDoc},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &oaserrors.ConfigError{Option: r.option, Message: "must not be empty"}
		}
	}
	return nil
}

// InputPath returns the input document path, resolved against DocsDir
// when relative.
func (c *Config) InputPath() string {
	return c.resolve(c.Input)
}

// OutputPath returns the sidebar output path, resolved against DocsDir
// when relative.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.DocsDir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(c.DocsDir, p)
}

// SidebarOptions returns the generator options for the sidebar settings.
func (c *Config) SidebarOptions() []sidebar.Option {
	return []sidebar.Option{
		sidebar.WithSidebarID(c.Sidebar.ID),
		sidebar.WithCategoryLabel(c.Sidebar.CategoryLabel),
		sidebar.WithAnchorDoc(c.Sidebar.AnchorDoc),
		sidebar.WithHrefPrefix(c.Sidebar.HrefPrefix),
	}
}
