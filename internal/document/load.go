package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/lucene/queryir"
)

// Case is one query of a document, with its expected rendering when the
// document is a corpus file.
type Case struct {
	Name        string
	Description string
	Query       queryir.Node

	// Expect is the expected rendering. Only meaningful when HasExpect.
	Expect    string
	HasExpect bool
}

// Document is a decoded query file.
type Document struct {
	Path   string
	Format Format
	Cases  []Case
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", fmt.Errorf("unknown query file extension %q (want .yaml, .yml, .json or .cue)", filepath.Ext(path))
	}
}

// Load reads and builds a query document from disk.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, &Error{File: path, Message: "unsupported file", Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{File: path, Message: "reading file", Err: err}
	}

	doc, err := Parse(data, format)
	if err != nil {
		if derr, ok := err.(*Error); ok {
			derr.File = path
			return nil, derr
		}
		return nil, &Error{File: path, Message: "decoding", Err: err}
	}
	doc.Path = path

	// Single-query files are named after the file.
	if len(doc.Cases) == 1 && doc.Cases[0].Name == "" {
		doc.Cases[0].Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Parse decodes and builds a document from bytes.
func Parse(data []byte, format Format) (*Document, error) {
	root, err := Decode(data, format)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("invalid %s", format), Err: err}
	}

	doc := &Document{Format: format}

	obj, isObj := root.(Object)
	rawCases, hasCases := obj.Lookup("cases")
	if !isObj || !hasCases {
		q, err := Build(root)
		if err != nil {
			return nil, err
		}
		doc.Cases = []Case{{Query: q}}
		return doc, nil
	}

	list, ok := rawCases.([]any)
	if !ok {
		return nil, expected("cases", "list", rawCases)
	}
	for i, raw := range list {
		c, err := buildCase(raw, fmt.Sprintf("cases[%d]", i))
		if err != nil {
			return nil, err
		}
		doc.Cases = append(doc.Cases, c)
	}
	return doc, nil
}

func buildCase(raw any, path string) (Case, error) {
	obj, ok := raw.(Object)
	if !ok {
		return Case{}, expected(path, "object", raw)
	}

	var c Case
	for _, m := range obj {
		switch m.Key {
		case "name", "description", "expect":
			s, ok := m.Value.(string)
			if !ok {
				return Case{}, expected(path+"."+m.Key, "string", m.Value)
			}
			switch m.Key {
			case "name":
				c.Name = s
			case "description":
				c.Description = s
			default:
				c.Expect, c.HasExpect = s, true
			}
		case "query":
			q, err := build(m.Value, path+".query")
			if err != nil {
				return Case{}, err
			}
			c.Query = q
		default:
			return Case{}, &Error{Path: path, Message: fmt.Sprintf("unknown case key %q", m.Key)}
		}
	}

	if c.Name == "" {
		return Case{}, &Error{Path: path, Message: "missing name"}
	}
	if _, ok := obj.Lookup("query"); !ok {
		return Case{}, &Error{Path: path, Message: "missing query"}
	}
	return c, nil
}
