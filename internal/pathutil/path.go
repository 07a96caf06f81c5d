package pathutil

import "strings"

// Root is the JSON path of the document root.
const Root = "$"

// PathsRoot is the JSON path of the paths object.
const PathsRoot = "$.paths"

// PathItem returns the JSON path of the path item for a path template.
func PathItem(template string) string {
	return PathsRoot + "['" + template + "']"
}

// Member appends an object member name to a JSON path.
func Member(base, name string) string {
	return base + "." + name
}

var anchorReplacer = strings.NewReplacer("/", "_", "{", "_", "}", "_")

// AnchorSafe replaces every '/', '{' and '}' in a path template with '_'.
// Other characters are kept as-is.
func AnchorSafe(template string) string {
	return anchorReplacer.Replace(template)
}
