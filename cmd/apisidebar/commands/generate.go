package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinglow/apisidebar/internal/config"
	"github.com/pinglow/apisidebar/parser"
	"github.com/pinglow/apisidebar/sidebar"
)

// resolveConfig loads the config file, if any, and applies the flags the
// user set on top of it.
func resolveConfig(cmd *cobra.Command, flags *GenerateFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.Config != "" {
		loaded, err := config.Load(flags.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("docs-dir") {
		cfg.DocsDir = flags.DocsDir
	}
	if fs.Changed("input") {
		cfg.Input = flags.Input
	}
	if fs.Changed("output") {
		cfg.Output = flags.Output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runPipeline parses the input document, builds the sidebar and writes it.
// It returns the path written. Nothing is written unless every earlier
// step succeeded.
func runPipeline(ctx context.Context, cfg *config.Config, logger parser.Logger) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	result, err := parser.ParseWithOptions(
		parser.WithFilePath(cfg.InputPath()),
		parser.WithLogger(logger),
	)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	opts := append(cfg.SidebarOptions(), sidebar.WithLogger(logger))
	sb, err := sidebar.Generate(result.Document, opts...)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out := cfg.OutputPath()
	if err := sb.Write(out); err != nil {
		return "", err
	}
	logger.Debug("wrote sidebar",
		"output", out,
		"items", sb.ItemCount(),
		"load_time", result.LoadTime,
	)
	if dups := sb.DuplicateHrefs(); len(dups) > 0 {
		logger.Warn("sidebar links share an href with an earlier link", "count", len(dups))
	}
	return out, nil
}
