package sidebar

import (
	"bytes"
	"encoding/json"
)

// Item types as they appear in the "type" member of sidebar objects.
const (
	TypeCategory = "category"
	TypeLink     = "link"
)

// Item is an entry of a category: a [DocItem] or a [*Link].
type Item interface {
	sidebarItem()
}

// DocItem references a documentation page by its doc id.
// It serializes as a bare JSON string.
type DocItem string

func (DocItem) sidebarItem() {}

// Link is an external or anchor link entry.
type Link struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

func (*Link) sidebarItem() {}

// Category groups sidebar items under a label.
type Category struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Links returns the category's link items in order.
func (c *Category) Links() []*Link {
	var links []*Link
	for _, item := range c.Items {
		if l, ok := item.(*Link); ok {
			links = append(links, l)
		}
	}
	return links
}

// Sidebars is the top-level sidebar descriptor. It serializes as a single
// member object keyed by ID: {"apiSidebar": [...]}.
type Sidebars struct {
	// ID is the sidebar id, the single member name of the JSON object
	ID string
	// APISidebar holds the sidebar's categories
	APISidebar []*Category

	duplicates []string
}

// DuplicateHrefs returns the hrefs that more than one operation produced,
// in the order the second occurrence was seen.
func (s *Sidebars) DuplicateHrefs() []string {
	return s.duplicates
}

// ItemCount returns the number of items across all categories.
func (s *Sidebars) ItemCount() int {
	n := 0
	for _, c := range s.APISidebar {
		n += len(c.Items)
	}
	return n
}

// MarshalJSON implements json.Marshaler. HTML characters in labels and
// hrefs are written as-is.
func (s *Sidebars) MarshalJSON() ([]byte, error) {
	categories := s.APISidebar
	if categories == nil {
		categories = []*Category{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string][]*Category{s.ID: categories}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Marshal returns the descriptor as 2-space-indented JSON followed by a
// newline. The output is byte-identical for identical descriptors.
func (s *Sidebars) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
