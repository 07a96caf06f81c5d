package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pinglow/apisidebar/sidebar"
)

type generateSidebarInput struct {
	Spec          specInput `json:"spec"                     jsonschema:"The OpenAPI JSON document to build the sidebar from"`
	Output        string    `json:"output,omitempty"         jsonschema:"File path to write the sidebar JSON to. Parent directories are created."`
	CategoryLabel string    `json:"category_label,omitempty" jsonschema:"Label of the sidebar category (default RestAPI)"`
	AnchorDoc     string    `json:"anchor_doc,omitempty"     jsonschema:"Doc id placed first in the category (default restapi)"`
	HrefPrefix    string    `json:"href_prefix,omitempty"    jsonschema:"Prefix of each operation link (default /docs/restapi#tag/crate/operation/)"`
}

type generateSidebarOutput struct {
	ItemCount      int      `json:"item_count"`
	LinkCount      int      `json:"link_count"`
	DuplicateHrefs []string `json:"duplicate_hrefs,omitempty"`
	Written        string   `json:"written,omitempty"`
	Sidebar        string   `json:"sidebar"`
}

func handleGenerateSidebar(_ context.Context, _ *mcp.CallToolRequest, input generateSidebarInput) (*mcp.CallToolResult, generateSidebarOutput, error) {
	if input.Output != "" && !cfg.AllowWrite {
		return errResult(fmt.Errorf("writing files is disabled (APISIDEBAR_ALLOW_WRITE=false); omit output to get the sidebar inline")), generateSidebarOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateSidebarOutput{}, nil
	}

	sb, err := sidebar.Generate(result.Document,
		sidebar.WithCategoryLabel(orDefault(input.CategoryLabel, cfg.CategoryLabel)),
		sidebar.WithAnchorDoc(orDefault(input.AnchorDoc, cfg.AnchorDoc)),
		sidebar.WithHrefPrefix(orDefault(input.HrefPrefix, cfg.HrefPrefix)),
	)
	if err != nil {
		return errResult(err), generateSidebarOutput{}, nil
	}

	data, err := sb.Marshal()
	if err != nil {
		return errResult(err), generateSidebarOutput{}, nil
	}

	output := generateSidebarOutput{
		ItemCount:      sb.ItemCount(),
		LinkCount:      result.Stats.OperationCount,
		DuplicateHrefs: sb.DuplicateHrefs(),
		Sidebar:        string(data),
	}

	if input.Output != "" {
		if err := sb.Write(input.Output); err != nil {
			return errResult(err), generateSidebarOutput{}, nil
		}
		output.Written = input.Output
	}

	return nil, output, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
