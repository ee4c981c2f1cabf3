package queryir

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Term wraps a raw Go value as a Node.
//
// Accepted values:
//   - Node: returned unchanged
//   - string: String
//   - signed/unsigned integers: Number (integer kind)
//   - float32/float64: Number (float kind); NaN and ±Inf are rejected
//   - bool: Bool
//   - []any, []Node, []string: Sequence, each element wrapped
//   - []Pair: Mapping
//   - map[string]any: Mapping with sorted atom keys (see MappingFromMap)
//
// Anything else, including nil, fails with ErrCodeTypeMismatch.
func Term(v any) (Node, error) {
	switch val := v.(type) {
	case Node:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int:
		return Number{Int: int64(val)}, nil
	case int8:
		return Number{Int: int64(val)}, nil
	case int16:
		return Number{Int: int64(val)}, nil
	case int32:
		return Number{Int: int64(val)}, nil
	case int64:
		return Number{Int: val}, nil
	case uint:
		return uintNumber(uint64(val))
	case uint8:
		return Number{Int: int64(val)}, nil
	case uint16:
		return Number{Int: int64(val)}, nil
	case uint32:
		return Number{Int: int64(val)}, nil
	case uint64:
		return uintNumber(val)
	case float32:
		// Round-trip through the shortest float32 text so 0.1 stays 0.1.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(val), 'g', -1, 32), 64)
		return floatNumber(f)
	case float64:
		return floatNumber(val)
	case []any:
		return NewSequence(val...)
	case []string:
		items := make([]Node, len(val))
		for i, s := range val {
			items[i] = String(s)
		}
		return Sequence{Items: items}, nil
	case []Node:
		items := make([]Node, len(val))
		copy(items, val)
		return Sequence{Items: items}, nil
	case []Pair:
		return NewMapping(val...), nil
	case map[string]any:
		return MappingFromMap(val)
	case nil:
		return nil, typeMismatch("term", "nil is not a query term")
	default:
		return nil, typeMismatch("term", "unsupported value of type %T", v)
	}
}

func uintNumber(u uint64) (Node, error) {
	if u > math.MaxInt64 {
		return nil, invalidValue("term", "integer %d overflows int64", u)
	}
	return Number{Int: int64(u)}, nil
}

func floatNumber(f float64) (Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, invalidValue("term", "number %v has no query form", f)
	}
	return Number{Float: f, IsFloat: true}, nil
}

// terms wraps every value through Term.
func terms(op string, values []any) ([]Node, error) {
	nodes := make([]Node, len(values))
	for i, v := range values {
		n, err := Term(v)
		if err != nil {
			return nil, withOp(err, op)
		}
		nodes[i] = n
	}
	return nodes, nil
}

// withOp attributes a wrapped-term error to the enclosing constructor.
func withOp(err error, op string) error {
	if e, ok := err.(*Error); ok {
		return &Error{Code: e.Code, Op: op, Message: e.Message}
	}
	return err
}

// NewSequence builds a Sequence. Zero items is valid.
func NewSequence(items ...any) (Sequence, error) {
	nodes, err := terms("sequence", items)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{Items: nodes}, nil
}

// NewField builds a Field from a key and a value.
func NewField(key, value any) (Field, error) {
	k, err := Term(key)
	if err != nil {
		return Field{}, withOp(err, "field")
	}
	v, err := Term(value)
	if err != nil {
		return Field{}, withOp(err, "field")
	}
	return Field{Key: k, Value: v}, nil
}

// NewAnd builds an AND group.
func NewAnd(items ...any) (Group, error) {
	return newGroup("and", OpAnd, items)
}

// NewOr builds an OR group.
func NewOr(items ...any) (Group, error) {
	return newGroup("or", OpOr, items)
}

func newGroup(op string, operator Operator, items []any) (Group, error) {
	nodes, err := terms(op, items)
	if err != nil {
		return Group{}, err
	}
	return Group{Op: operator, Terms: nodes}, nil
}

// NewIn builds the OR of field:value for each value.
//
//	NewIn(Atom("id"), 110, 220)  // (id:110 OR id:220)
func NewIn(field any, values ...any) (Group, error) {
	key, err := Term(field)
	if err != nil {
		return Group{}, withOp(err, "in")
	}
	nodes, err := terms("in", values)
	if err != nil {
		return Group{}, err
	}
	fields := make([]Node, len(nodes))
	for i, v := range nodes {
		fields[i] = Field{Key: key, Value: v}
	}
	return Group{Op: OpOr, Terms: fields}, nil
}

// NewNot builds NOT <term>.
func NewNot(term any) (Not, error) {
	n, err := Term(term)
	if err != nil {
		return Not{}, withOp(err, "not")
	}
	return Not{Term: n}, nil
}

// NewRequired builds +<term>.
func NewRequired(term any) (Required, error) {
	n, err := Term(term)
	if err != nil {
		return Required{}, withOp(err, "required")
	}
	return Required{Term: n}, nil
}

// NewProhibit builds -<term>.
func NewProhibit(term any) (Prohibit, error) {
	n, err := Term(term)
	if err != nil {
		return Prohibit{}, withOp(err, "prohibit")
	}
	return Prohibit{Term: n}, nil
}

// NewFuzzy builds a fuzzy term. The term must be a string holding at least
// one word. Boost is optional: nil means no boost, otherwise it must be a
// positive number.
func NewFuzzy(term any, boost any) (Fuzzy, error) {
	var text string
	switch t := term.(type) {
	case string:
		text = t
	case String:
		text = string(t)
	default:
		return Fuzzy{}, typeMismatch("fuzzy", "term must be a string, got %T", term)
	}
	if len(strings.Fields(text)) == 0 {
		return Fuzzy{}, invalidValue("fuzzy", "term %q has no words", text)
	}

	if boost == nil {
		return Fuzzy{Term: text}, nil
	}
	b, ok := toFloat(boost)
	if !ok {
		return Fuzzy{}, typeMismatch("fuzzy", "boost must be a number, got %T", boost)
	}
	if !(b > 0) || math.IsInf(b, 0) {
		return Fuzzy{}, invalidValue("fuzzy", "boost must be positive, got %v", b)
	}
	return Fuzzy{Term: text, Boost: b}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	case Number:
		if n.IsFloat {
			return n.Float, true
		}
		return float64(n.Int), true
	default:
		return 0, false
	}
}

// NewRange builds a range. exclusive may be nil (inclusive) or a bool.
func NewRange(lower, upper any, exclusive any) (Range, error) {
	lo, err := Term(lower)
	if err != nil {
		return Range{}, withOp(err, "range")
	}
	hi, err := Term(upper)
	if err != nil {
		return Range{}, withOp(err, "range")
	}

	var excl bool
	switch e := exclusive.(type) {
	case nil:
	case bool:
		excl = e
	case Bool:
		excl = bool(e)
	default:
		return Range{}, typeMismatch("range", "exclusive must be a bool, got %T", exclusive)
	}
	return Range{Lower: lo, Upper: hi, Exclusive: excl}, nil
}

// NewPair builds a mapping entry from raw values.
func NewPair(key, value any) (Pair, error) {
	f, err := NewField(key, value)
	if err != nil {
		return Pair{}, withOp(err, "pair")
	}
	return Pair{Key: f.Key, Value: f.Value}, nil
}

// NewMapping builds a Mapping that keeps pair order.
func NewMapping(pairs ...Pair) Mapping {
	p := make([]Pair, len(pairs))
	copy(p, pairs)
	return Mapping{Pairs: p}
}

// MappingFromMap builds a Mapping from a Go map. Go maps have no order, so
// keys are sorted to keep rendering deterministic. Keys become atoms:
//
//	MappingFromMap(map[string]any{"state": "Oregon", "city": "Portland"})
//	// (city:'Portland' AND state:'Oregon')
func MappingFromMap(m map[string]any) (Mapping, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		v, err := Term(m[k])
		if err != nil {
			return Mapping{}, withOp(err, "mapping["+k+"]")
		}
		pairs = append(pairs, Pair{Key: Atom(k), Value: v})
	}
	return Mapping{Pairs: pairs}, nil
}
