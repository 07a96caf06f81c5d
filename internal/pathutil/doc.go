// Package pathutil provides path helpers for the sidebar pipeline: JSON path
// strings for diagnostics, anchor-safe path templates, and output path checks.
//
// JSON paths use the walker's notation, with path templates in brackets:
//
//	pathutil.Member(pathutil.PathItem("/pets/{id}"), "get") // "$.paths['/pets/{id}'].get"
//
// Path templates become anchor fragments by replacing '/', '{' and '}' with '_':
//
//	pathutil.AnchorSafe("/widgets/{id}") // "_widgets__id_"
package pathutil
