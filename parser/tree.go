package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// node is one value of a JSON document, with object members kept in
// source order. Array elements and non-string scalar values are not kept.
type node struct {
	kind    string
	value   string
	members []member
	loc     SourceLocation
}

// member is an object key and its value. Keys may repeat.
type member struct {
	key    string
	keyLoc SourceLocation
	value  *node
}

// treeBuilder reads a JSON token stream into a node tree.
type treeBuilder struct {
	data []byte
	dec  *json.Decoder
}

// buildTree decodes data, which must already be valid JSON, into a node tree.
func buildTree(data []byte) (*node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	b := &treeBuilder{data: data, dec: dec}
	return b.value()
}

// next reads one token and returns it with the position of its first byte.
func (b *treeBuilder) next() (json.Token, SourceLocation, error) {
	start := tokenStart(b.data, b.dec.InputOffset())
	tok, err := b.dec.Token()
	return tok, b.location(start), err
}

func (b *treeBuilder) value() (*node, error) {
	tok, loc, err := b.next()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return b.object(loc)
		case '[':
			return b.array(loc)
		}
		return nil, fmt.Errorf("unexpected delimiter %q at %s", t, loc)
	case string:
		return &node{kind: kindString, value: t, loc: loc}, nil
	case json.Number:
		return &node{kind: kindNumber, loc: loc}, nil
	case bool:
		return &node{kind: kindBoolean, loc: loc}, nil
	case nil:
		return &node{kind: kindNull, loc: loc}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v at %s", tok, loc)
	}
}

func (b *treeBuilder) object(loc SourceLocation) (*node, error) {
	n := &node{kind: kindObject, loc: loc}
	for b.dec.More() {
		tok, keyLoc, err := b.next()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T at %s", tok, keyLoc)
		}
		value, err := b.value()
		if err != nil {
			return nil, err
		}
		n.members = append(n.members, member{key: key, keyLoc: keyLoc, value: value})
	}
	if _, _, err := b.next(); err != nil {
		return nil, err
	}
	return n, nil
}

func (b *treeBuilder) array(loc SourceLocation) (*node, error) {
	for b.dec.More() {
		if _, err := b.value(); err != nil {
			return nil, err
		}
	}
	if _, _, err := b.next(); err != nil {
		return nil, err
	}
	return &node{kind: kindArray, loc: loc}, nil
}

func (b *treeBuilder) location(pos int64) SourceLocation {
	line, column := positionOf(b.data, pos)
	return SourceLocation{Line: line, Column: column}
}

// tokenStart skips the whitespace and separators the decoder has not yet
// consumed at offset, returning the offset of the next token.
func tokenStart(data []byte, offset int64) int64 {
	for offset < int64(len(data)) {
		switch data[offset] {
		case ' ', '\t', '\n', '\r', ',', ':':
			offset++
		default:
			return offset
		}
	}
	return offset
}

// positionOf returns the 1-based line and column of the byte at pos.
// Columns count runes.
func positionOf(data []byte, pos int64) (int, int) {
	if pos < 0 {
		pos = 0
	}
	if pos > int64(len(data)) {
		pos = int64(len(data))
	}
	prefix := data[:pos]
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	column := utf8.RuneCount(prefix[bytes.LastIndexByte(prefix, '\n')+1:]) + 1
	return line, column
}
