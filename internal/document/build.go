package document

import (
	"fmt"
	"strings"

	"github.com/roach88/lucene/queryir"
)

// nodeKinds lists the keys that select a node variant in an object.
var nodeKinds = []string{
	"atom", "seq", "and", "or", "not", "required", "prohibit",
	"field", "in", "fuzzy", "range", "map",
}

// Build converts a decoded value to a query tree.
func Build(v any) (queryir.Node, error) {
	return build(v, "query")
}

func build(v any, path string) (queryir.Node, error) {
	switch val := v.(type) {
	case []any:
		return buildSequence(val, path)
	case Object:
		return buildObject(val, path)
	default:
		n, err := queryir.Term(val)
		if err != nil {
			return nil, &Error{Path: path, Message: "invalid term", Err: err}
		}
		return n, nil
	}
}

func buildList(items []any, path string) ([]queryir.Node, error) {
	nodes := make([]queryir.Node, len(items))
	for i, item := range items {
		n, err := build(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}

func buildSequence(items []any, path string) (queryir.Node, error) {
	nodes, err := buildList(items, path)
	if err != nil {
		return nil, err
	}
	return queryir.Sequence{Items: nodes}, nil
}

func buildObject(obj Object, path string) (queryir.Node, error) {
	if len(obj) != 1 {
		return nil, &Error{
			Path:    path,
			Message: fmt.Sprintf("node object needs exactly one of %s, got keys %v", strings.Join(nodeKinds, ", "), obj.Keys()),
		}
	}

	kind, arg := obj[0].Key, obj[0].Value
	path = path + "." + kind

	switch kind {
	case "atom":
		s, ok := arg.(string)
		if !ok {
			return nil, expected(path, "string", arg)
		}
		return queryir.Atom(s), nil
	case "seq":
		items, ok := arg.([]any)
		if !ok {
			return nil, expected(path, "list", arg)
		}
		return buildSequence(items, path)
	case "and", "or":
		items, ok := arg.([]any)
		if !ok {
			return nil, expected(path, "list", arg)
		}
		nodes, err := buildList(items, path)
		if err != nil {
			return nil, err
		}
		op := queryir.OpAnd
		if kind == "or" {
			op = queryir.OpOr
		}
		return queryir.Group{Op: op, Terms: nodes}, nil
	case "not", "required", "prohibit":
		n, err := build(arg, path)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "not":
			return queryir.Not{Term: n}, nil
		case "required":
			return queryir.Required{Term: n}, nil
		default:
			return queryir.Prohibit{Term: n}, nil
		}
	case "field":
		return buildField(arg, path)
	case "in":
		return buildIn(arg, path)
	case "fuzzy":
		return buildFuzzy(arg, path)
	case "range":
		return buildRange(arg, path)
	case "map":
		return buildMap(arg, path)
	default:
		return nil, &Error{
			Path:    path,
			Message: fmt.Sprintf("unknown node kind %q (want one of %s)", kind, strings.Join(nodeKinds, ", ")),
		}
	}
}

// buildKey reads a field key: "name" is a bare atom, "key" is any node.
func buildKey(obj Object, path string) (queryir.Node, error) {
	if name, ok := obj.Lookup("name"); ok {
		s, ok := name.(string)
		if !ok {
			return nil, expected(path+".name", "string", name)
		}
		return queryir.Atom(s), nil
	}
	if key, ok := obj.Lookup("key"); ok {
		return build(key, path+".key")
	}
	return nil, &Error{Path: path, Message: "missing name or key"}
}

func buildField(arg any, path string) (queryir.Node, error) {
	obj, ok := arg.(Object)
	if !ok {
		return nil, expected(path, "object", arg)
	}
	key, err := buildKey(obj, path)
	if err != nil {
		return nil, err
	}
	raw, ok := obj.Lookup("value")
	if !ok {
		return nil, &Error{Path: path, Message: "missing value"}
	}
	value, err := build(raw, path+".value")
	if err != nil {
		return nil, err
	}
	return queryir.Field{Key: key, Value: value}, nil
}

func buildIn(arg any, path string) (queryir.Node, error) {
	obj, ok := arg.(Object)
	if !ok {
		return nil, expected(path, "object", arg)
	}

	var field queryir.Node
	switch f, _ := obj.Lookup("field"); fv := f.(type) {
	case string:
		field = queryir.Atom(fv)
	case nil:
		return nil, &Error{Path: path, Message: "missing field"}
	default:
		n, err := build(fv, path+".field")
		if err != nil {
			return nil, err
		}
		field = n
	}

	raw, _ := obj.Lookup("values")
	items, ok := raw.([]any)
	if !ok {
		return nil, expected(path+".values", "list", raw)
	}
	values, err := buildList(items, path+".values")
	if err != nil {
		return nil, err
	}

	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	g, err := queryir.NewIn(field, args...)
	if err != nil {
		return nil, &Error{Path: path, Message: "invalid in", Err: err}
	}
	return g, nil
}

func buildFuzzy(arg any, path string) (queryir.Node, error) {
	var term, boost any
	switch a := arg.(type) {
	case Object:
		term, _ = a.Lookup("term")
		boost, _ = a.Lookup("boost")
	default:
		term = a
	}
	f, err := queryir.NewFuzzy(term, boost)
	if err != nil {
		return nil, &Error{Path: path, Message: "invalid fuzzy", Err: err}
	}
	return f, nil
}

func buildRange(arg any, path string) (queryir.Node, error) {
	obj, ok := arg.(Object)
	if !ok {
		return nil, expected(path, "object", arg)
	}

	bounds := make([]queryir.Node, 2)
	for i, name := range []string{"from", "to"} {
		raw, ok := obj.Lookup(name)
		if !ok {
			return nil, &Error{Path: path, Message: "missing " + name}
		}
		n, err := build(raw, path+"."+name)
		if err != nil {
			return nil, err
		}
		bounds[i] = n
	}

	exclusive, _ := obj.Lookup("exclusive")
	r, err := queryir.NewRange(bounds[0], bounds[1], exclusive)
	if err != nil {
		return nil, &Error{Path: path, Message: "invalid range", Err: err}
	}
	return r, nil
}

// buildMap accepts an object (keys become atoms, in source order) or a list
// of {key, value} / {name, value} entries.
func buildMap(arg any, path string) (queryir.Node, error) {
	switch m := arg.(type) {
	case Object:
		pairs := make([]queryir.Pair, len(m))
		for i, member := range m {
			v, err := build(member.Value, path+"."+member.Key)
			if err != nil {
				return nil, err
			}
			pairs[i] = queryir.Pair{Key: queryir.Atom(member.Key), Value: v}
		}
		return queryir.Mapping{Pairs: pairs}, nil
	case []any:
		pairs := make([]queryir.Pair, len(m))
		for i, entry := range m {
			entryPath := fmt.Sprintf("%s[%d]", path, i)
			obj, ok := entry.(Object)
			if !ok {
				return nil, expected(entryPath, "object", entry)
			}
			f, err := buildField(obj, entryPath)
			if err != nil {
				return nil, err
			}
			field := f.(queryir.Field)
			pairs[i] = queryir.Pair{Key: field.Key, Value: field.Value}
		}
		return queryir.Mapping{Pairs: pairs}, nil
	default:
		return nil, expected(path, "object or list", arg)
	}
}

func expected(path, want string, got any) *Error {
	return &Error{Path: path, Message: fmt.Sprintf("expected %s, got %s", want, typeName(got))}
}
