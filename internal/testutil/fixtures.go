// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/pinglow/apisidebar/parser"
)

// WidgetsJSON is a small OpenAPI document with two path items and four
// operations. POST /widgets has no operationId, DELETE /widgets/{id} no
// summary, and /widgets/{id} carries a non-method "parameters" key.
const WidgetsJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Widgets", "version": "1.0.0"},
  "paths": {
    "/widgets": {
      "get": {"operationId": "listWidgets", "summary": "List widgets"},
      "post": {"summary": "Create a widget"}
    },
    "/widgets/{id}": {
      "parameters": [{"name": "id", "in": "path", "required": true}],
      "get": {"operationId": "getWidget", "summary": "Get a widget"},
      "delete": {"operationId": "deleteWidget"}
    }
  }
}
`

// NewSimpleDocument creates a document without path items.
func NewSimpleDocument() *parser.Document {
	return &parser.Document{}
}

// NewWidgetsDocument creates the document WidgetsJSON decodes to, without
// source locations.
func NewWidgetsDocument() *parser.Document {
	return &parser.Document{
		Paths: []*parser.PathItem{
			{
				Template: "/widgets",
				Operations: []*parser.Operation{
					{Method: "get", OperationID: "listWidgets", Summary: "List widgets"},
					{Method: "post", Summary: "Create a widget"},
				},
			},
			{
				Template: "/widgets/{id}",
				Operations: []*parser.Operation{
					{Method: "get", OperationID: "getWidget", Summary: "Get a widget"},
					{Method: "delete", OperationID: "deleteWidget"},
				},
			},
		},
	}
}

// WriteTempJSON writes content to openapi.json in a temporary directory.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "openapi.json")
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}

// WriteTempYAML marshals doc to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}
