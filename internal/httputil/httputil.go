// Package httputil provides HTTP method constants for OpenAPI path items.
package httputil

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only, not listed in the sidebar
)

// SidebarMethods lists the path item keys that produce sidebar entries.
// Any other key of a path item (parameters, summary, servers, trace, x-*)
// is ignored.
var SidebarMethods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodOptions,
	MethodHead,
}

var sidebarMethodSet = map[string]bool{
	MethodGet:     true,
	MethodPost:    true,
	MethodPut:     true,
	MethodDelete:  true,
	MethodPatch:   true,
	MethodOptions: true,
	MethodHead:    true,
}

// IsSidebarMethod reports whether key is a recognized operation method.
// The comparison is case-sensitive: OpenAPI method keys are lowercase.
func IsSidebarMethod(key string) bool {
	return sidebarMethodSet[key]
}
