// Package parser loads OpenAPI JSON documents for sidebar generation.
//
// The parser keeps only what the sidebar needs: the "paths" object, the
// recognized-method operations of each path item, and each operation's
// operationId and summary. Everything else in the document is ignored.
//
// # Ordering
//
// Path items and operations are kept in source order. The document is
// checked with encoding/json and then read from its token stream into an
// ordered tree, so key order and line/column positions are available
// without going through Go maps. A repeated key keeps its first position
// and its last value, and is logged as a warning.
//
// # Recognized Methods
//
// get, post, put, delete, patch, options and head. Other keys of a path
// item (parameters, summary, description, servers, trace, x-*) are skipped
// without error.
//
// # Errors
//
//   - *oaserrors.FileNotFoundError: the input file does not exist
//   - *oaserrors.IOError: the input could not be read
//   - *oaserrors.ParseError: not valid JSON
//   - *oaserrors.TypeError: the root, paths, a path item or an operation is
//     not an object, or operationId/summary is neither a string nor null
//
// A document without "paths" parses to an empty [Document].
//
// # Example
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, item := range result.Document.Paths {
//		for _, op := range item.Operations {
//			fmt.Println(op.Method, item.Template, op.OperationID)
//		}
//	}
package parser
