// Package sidebar builds a Docusaurus sidebar descriptor from a parsed
// OpenAPI document and writes it as JSON.
//
// The descriptor holds a single category whose first item is the API
// reference doc, followed by one link per operation in document order:
//
//	{
//	  "apiSidebar": [
//	    {
//	      "type": "category",
//	      "label": "RestAPI",
//	      "items": [
//	        "restapi",
//	        {
//	          "type": "link",
//	          "label": "Get a widget",
//	          "href": "/docs/restapi#tag/crate/operation/getWidget"
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// # Link derivation
//
// The link anchor is the operation's operationId. Operations without one
// get "{method}_{path}" with every '/', '{' and '}' of the path replaced
// by '_', so "get /widgets/{id}" becomes "get__widgets__id_". The label
// is the trimmed summary, or "{METHOD} {path}" when the summary is empty.
//
// Two operations can produce the same anchor. Generation does not alter
// either link; it logs a warning and reports the href through
// [Sidebars.DuplicateHrefs].
//
// # Usage
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("docs/static/openapi.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sb, err := sidebar.Generate(result.Document)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sb.Write("docs/src/sidebars/apiSidebar.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// Write replaces the target through a temp file and rename, so a failed
// run leaves any previous sidebar in place.
package sidebar
