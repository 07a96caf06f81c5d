package parser

import (
	"github.com/pinglow/apisidebar/internal/httputil"
	"github.com/pinglow/apisidebar/internal/pathutil"
	"github.com/pinglow/apisidebar/oaserrors"
)

// JSON kind names used in type errors.
const (
	kindObject  = "object"
	kindArray   = "array"
	kindString  = "string"
	kindNumber  = "number"
	kindBoolean = "boolean"
	kindNull    = "null"
)

// decoder turns the node tree of a JSON document into a Document.
// Only the members the sidebar needs are inspected; everything else is
// skipped without validation.
type decoder struct {
	source string
	log    Logger
}

func (d *decoder) decode(root *node) (*Document, error) {
	if root.kind != kindObject {
		return nil, d.typeError(root, pathutil.Root, kindObject)
	}

	doc := &Document{}
	err := d.eachMember(root, pathutil.Root, func(m member) error {
		if m.key != "paths" {
			return nil
		}
		paths, err := d.paths(m.value)
		if err != nil {
			return err
		}
		doc.Paths = paths
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *decoder) paths(n *node) ([]*PathItem, error) {
	if n.kind != kindObject {
		return nil, d.typeError(n, pathutil.PathsRoot, kindObject)
	}
	items := make([]*PathItem, 0, len(n.members))
	err := d.eachMember(n, pathutil.PathsRoot, func(m member) error {
		item, err := d.pathItem(m)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (d *decoder) pathItem(m member) (*PathItem, error) {
	jsonPath := pathutil.PathItem(m.key)
	if m.value.kind != kindObject {
		return nil, d.typeError(m.value, jsonPath, kindObject)
	}
	item := &PathItem{
		Template: m.key,
		Location: m.keyLoc,
	}
	err := d.eachMember(m.value, jsonPath, func(method member) error {
		if !httputil.IsSidebarMethod(method.key) {
			return nil
		}
		op, err := d.operation(method, pathutil.Member(jsonPath, method.key))
		if err != nil {
			return err
		}
		item.Operations = append(item.Operations, op)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (d *decoder) operation(m member, jsonPath string) (*Operation, error) {
	if m.value.kind != kindObject {
		return nil, d.typeError(m.value, jsonPath, kindObject)
	}
	op := &Operation{
		Method:   m.key,
		Location: m.keyLoc,
	}
	err := d.eachMember(m.value, jsonPath, func(field member) error {
		switch field.key {
		case "operationId":
			s, err := d.optionalString(field.value, pathutil.Member(jsonPath, field.key))
			op.OperationID = s
			return err
		case "summary":
			s, err := d.optionalString(field.value, pathutil.Member(jsonPath, field.key))
			op.Summary = s
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}

// optionalString returns the value of a string node, or "" for null.
func (d *decoder) optionalString(n *node, jsonPath string) (string, error) {
	switch n.kind {
	case kindString:
		return n.value, nil
	case kindNull:
		return "", nil
	default:
		return "", d.typeError(n, jsonPath, kindString)
	}
}

// eachMember calls fn for each distinct key of an object node in source
// order. A repeated key stays where it first appeared and takes the value
// and location of its last occurrence.
func (d *decoder) eachMember(n *node, jsonPath string, fn func(m member) error) error {
	for _, m := range d.lastWins(n, jsonPath) {
		if err := fn(m); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) lastWins(n *node, jsonPath string) []member {
	index := make(map[string]int, len(n.members))
	members := make([]member, 0, len(n.members))
	for _, m := range n.members {
		i, dup := index[m.key]
		if !dup {
			index[m.key] = len(members)
			members = append(members, m)
			continue
		}
		d.log.Warn("duplicate key, last value wins",
			"source", d.source,
			"path", jsonPath,
			"key", m.key,
			"first", members[i].keyLoc.String(),
			"line", m.keyLoc.Line,
		)
		members[i].value = m.value
		members[i].keyLoc = m.keyLoc
	}
	return members
}

func (d *decoder) typeError(n *node, jsonPath, expected string) error {
	return &oaserrors.TypeError{
		Source:   d.source,
		Path:     jsonPath,
		Expected: expected,
		Got:      n.kind,
		Line:     n.loc.Line,
		Column:   n.loc.Column,
	}
}
