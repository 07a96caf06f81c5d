package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pinglow/apisidebar/parser"
	"github.com/pinglow/apisidebar/walker"
)

type inspectSpecInput struct {
	Spec  specInput `json:"spec" jsonschema:"The OpenAPI JSON document to inspect"`
	Limit int       `json:"limit,omitempty" jsonschema:"Stop after listing this many incomplete operations (default: list all)"`
}

type operationSummary struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	JSONPath    string `json:"json_path"`
	Line        int    `json:"line,omitempty"`
	OperationID string `json:"operation_id,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

type inspectSpecOutput struct {
	Source              string             `json:"source"`
	Size                string             `json:"size"`
	PathCount           int                `json:"path_count"`
	OperationCount      int                `json:"operation_count"`
	MissingOperationIDs int                `json:"missing_operation_ids"`
	MissingSummaries    int                `json:"missing_summaries"`
	EmptyPaths          []string           `json:"empty_paths,omitempty"`
	Incomplete          []operationSummary `json:"incomplete,omitempty"`
	Truncated           bool               `json:"truncated,omitempty"`
}

func handleInspectSpec(ctx context.Context, _ *mcp.CallToolRequest, input inspectSpecInput) (*mcp.CallToolResult, inspectSpecOutput, error) {
	if input.Limit < 0 {
		return errResult(fmt.Errorf("limit must not be negative (got %d)", input.Limit)), inspectSpecOutput{}, nil
	}
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), inspectSpecOutput{}, nil
	}

	output := inspectSpecOutput{
		Source:              sanitizeSource(result.SourcePath),
		Size:                parser.FormatBytes(result.SourceSize),
		PathCount:           result.Stats.PathCount,
		OperationCount:      result.Stats.OperationCount,
		MissingOperationIDs: result.Stats.MissingOperationIDs,
		MissingSummaries:    result.Stats.MissingSummaries,
	}

	err = walker.WalkResult(result,
		walker.WithContext(ctx),
		walker.WithPathHandler(func(_ *walker.WalkContext, item *parser.PathItem) walker.Action {
			if len(item.Operations) == 0 {
				output.EmptyPaths = append(output.EmptyPaths, item.Template)
				return walker.SkipChildren
			}
			return walker.Continue
		}),
		walker.WithOperationHandler(func(wc *walker.WalkContext, op *parser.Operation) walker.Action {
			if op.OperationID != "" && strings.TrimSpace(op.Summary) != "" {
				return walker.Continue
			}
			if input.Limit > 0 && len(output.Incomplete) == input.Limit {
				output.Truncated = true
				return walker.Stop
			}
			output.Incomplete = append(output.Incomplete, operationSummary{
				Method:      op.Method,
				Path:        wc.PathTemplate,
				JSONPath:    wc.JSONPath,
				Line:        op.Location.Line,
				OperationID: op.OperationID,
				Summary:     op.Summary,
			})
			return walker.Continue
		}),
	)
	if err != nil {
		return errResult(err), inspectSpecOutput{}, nil
	}

	return nil, output, nil
}

// sanitizeSource redacts absolute directories from a source path.
func sanitizeSource(source string) string {
	return pathPattern.ReplaceAllString(source, "<path>")
}
