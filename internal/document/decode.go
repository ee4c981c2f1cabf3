package document

import (
	"fmt"
	"math"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// Decode parses data in the given format into the ordered value model.
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		return decodeJSON(data)
	case FormatCUE:
		return decodeCUE(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// decodeYAML walks the yaml.v3 node graph rather than decoding into maps,
// which would lose key order.
func decodeYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		// Empty input.
		return nil, nil
	}
	return yamlValue(&root)
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		obj := make(Object, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
			}
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: normalize(keyNode.Value), Value: v})
		}
		return obj, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!timestamp" {
			// Dates are range bounds, not time values.
			return normalize(n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return scalar(v, n.Line)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func scalar(v any, line int) (any, error) {
	switch s := v.(type) {
	case nil, bool, float64, int64:
		return s, nil
	case string:
		return normalize(s), nil
	case int:
		return int64(s), nil
	case uint64:
		if s > math.MaxInt64 {
			return nil, fmt.Errorf("line %d: integer %d overflows int64", line, s)
		}
		return int64(s), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported scalar %T", line, v)
	}
}

// decodeJSON uses fastjson, whose Object.Visit reports keys in source order.
func decodeJSON(data []byte) (any, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return jsonValue(v)
}

func jsonValue(v *fastjson.Value) (any, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeString:
		return normalize(string(v.GetStringBytes())), nil
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return v.Float64()
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil, err
		}
		list := make([]any, 0, len(items))
		for _, item := range items {
			elem, err := jsonValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, elem)
		}
		return list, nil
	case fastjson.TypeObject:
		o, err := v.Object()
		if err != nil {
			return nil, err
		}
		obj := make(Object, 0, o.Len())
		var visitErr error
		o.Visit(func(key []byte, val *fastjson.Value) {
			if visitErr != nil {
				return
			}
			elem, err := jsonValue(val)
			if err != nil {
				visitErr = err
				return
			}
			obj = append(obj, Member{Key: normalize(string(key)), Value: elem})
		})
		if visitErr != nil {
			return nil, visitErr
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value %s", v.Type())
	}
}

// decodeCUE evaluates a CUE file and exports its concrete value. Struct
// fields keep their declaration order.
func decodeCUE(data []byte) (any, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return cueValue(v)
}

func cueValue(v cue.Value) (any, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	switch v.IncompleteKind() {
	case cue.NullKind:
		return nil, nil
	case cue.BoolKind:
		return v.Bool()
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return normalize(s), nil
	case cue.IntKind:
		return v.Int64()
	case cue.FloatKind, cue.NumberKind:
		return v.Float64()
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		list := []any{}
		for iter.Next() {
			elem, err := cueValue(iter.Value())
			if err != nil {
				return nil, err
			}
			list = append(list, elem)
		}
		return list, nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		obj := Object{}
		for iter.Next() {
			elem, err := cueValue(iter.Value())
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: normalize(iter.Label()), Value: elem})
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%s: value is not concrete (kind %v)", v.Pos(), v.IncompleteKind())
	}
}

// formatCUEError keeps the first CUE error with its position.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		pos := positions[0]
		return fmt.Errorf("%d:%d: %s", pos.Line(), pos.Column(), first.Error())
	}
	return first
}
