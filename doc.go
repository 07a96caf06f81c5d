// Package apisidebar builds documentation sidebar descriptors from OpenAPI documents.
//
// The module turns the paths and operations of a generated OpenAPI document
// into the sidebar JSON consumed by a Docusaurus-style documentation site:
// one "RestAPI" category whose first entry is the "restapi" page, followed by
// one link per operation in document order.
//
// # Packages
//
//   - parser: Load an OpenAPI JSON document into an order-preserving typed document
//   - walker: Visit path items and operations in document order
//   - sidebar: Generate the sidebar descriptor and write it to disk
//   - oaserrors: Structured error types (file not found, parse, type, I/O, config)
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("docs/static/openapi.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	sb, err := sidebar.Generate(result.Document)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := sb.Write("docs/src/sidebars/apiSidebar.json"); err != nil {
//		log.Fatal(err)
//	}
//
// # Command Line
//
// The apisidebar command runs the same pipeline with the docs site defaults:
//
//	apisidebar                     # docs/static/openapi.json -> docs/src/sidebars/apiSidebar.json
//	apisidebar --docs-dir site -v  # different docs root, debug logging
//	apisidebar mcp                 # serve the generate_sidebar tool over MCP stdio
package apisidebar
