// Package commands provides the cobra command tree for apisidebar.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/pinglow/apisidebar"
	"github.com/pinglow/apisidebar/internal/cliutil"
)

// Exit codes returned by Execute.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// GenerateFlags contains flags for the root command.
type GenerateFlags struct {
	Config  string
	DocsDir string
	Input   string
	Output  string
	Verbose bool
}

// NewRootCommand builds the apisidebar command tree. Command output goes
// to stdout, logs and diagnostics to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &GenerateFlags{}

	root := &cobra.Command{
		Use:   "apisidebar",
		Short: "Generate the API reference sidebar from an OpenAPI document",
		Long: `apisidebar reads the OpenAPI JSON document generated for the docs site and
writes a sidebar descriptor with one link per API operation, in document order.

Without flags it reads docs/static/openapi.json and writes
docs/src/sidebars/apiSidebar.json, relative to the working directory.`,
		Example: `  apisidebar
  apisidebar --docs-dir site --output src/sidebars/http.json
  apisidebar --config apisidebar.toml -v`,
		Version:       apisidebar.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger := cliutil.NewLogger(stderr, flags.Verbose)
			out, err := runPipeline(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			cliutil.Writef(stdout, "Sidebar generated at %s\n", out)
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(apisidebar.BuildInfo())

	fs := root.Flags()
	fs.StringVar(&flags.Config, "config", "", "TOML config file")
	fs.StringVar(&flags.DocsDir, "docs-dir", "docs", "docs site directory that relative paths resolve against")
	fs.StringVar(&flags.Input, "input", "static/openapi.json", "OpenAPI JSON document")
	fs.StringVar(&flags.Output, "output", "src/sidebars/apiSidebar.json", "sidebar JSON file to write")
	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newMCPCmd())
	return root
}

// Execute runs the command tree with args and returns the process exit code.
// Failures are reported on stderr as "Error: <diagnostic>".
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		cliutil.WriteError(stderr, errors.New("interrupted"))
		return ExitInterrupted
	default:
		cliutil.WriteError(stderr, err)
		return ExitFailure
	}
}
