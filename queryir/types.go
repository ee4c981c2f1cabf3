package queryir

// Node is a vertex of a query tree.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in renderers.
//
// Node types:
//   - String, Atom, Number, Bool: literals
//   - Sequence: space-joined children
//   - Field: key:value qualifier
//   - Group: AND/OR combinator
//   - Not, Required, Prohibit: unary modifiers
//   - Fuzzy: approximate term match
//   - Range: inclusive or exclusive interval
//   - Mapping: ordered key/value pairs, an implicit AND of fields
type Node interface {
	queryNode() // Marker method - seals interface to this package
}

// String is a text literal. It renders escaped and single-quoted.
type String string

func (String) queryNode() {}

// Atom is a bare token. It renders verbatim, without quotes or escaping.
//
// Field names are usually atoms:
//
//	Field{Key: Atom("city"), Value: String("Portland")}  // city:'Portland'
type Atom string

func (Atom) queryNode() {}

// Number is a numeric literal. Integers and floats keep their kind so that
// 42 renders as "42" and 1.0 renders as "1.0".
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool
}

func (Number) queryNode() {}

// Bool is a boolean literal rendered as true or false.
type Bool bool

func (Bool) queryNode() {}

// Sequence is an ordered list rendered space-joined inside parentheses.
// An empty sequence renders as the empty string.
type Sequence struct {
	Items []Node
}

func (Sequence) queryNode() {}

// Field qualifies a value with a field name.
//
// Semantics:
//
//	<key>:<value>
type Field struct {
	Key   Node
	Value Node
}

func (Field) queryNode() {}

// Operator is the boolean operator of a Group.
type Operator string

const (
	OpAnd Operator = "AND"
	OpOr  Operator = "OR"
)

// Group joins its terms with an infix boolean operator.
//
// Semantics:
//
//	(<t1> AND <t2> AND ...)
//
// A group always parenthesizes, even with a single term. A group without
// terms renders as the empty string.
type Group struct {
	Op    Operator
	Terms []Node
}

func (Group) queryNode() {}

// Not negates a term: NOT <term>.
type Not struct {
	Term Node
}

func (Not) queryNode() {}

// Required marks a term as mandatory: +<term>.
type Required struct {
	Term Node
}

func (Required) queryNode() {}

// Prohibit excludes a term: -<term>.
type Prohibit struct {
	Term Node
}

func (Prohibit) queryNode() {}

// Fuzzy matches each whitespace-separated word of Term approximately.
// Boost is zero when no boost was given; constructors reject negative values.
type Fuzzy struct {
	Term  string
	Boost float64
}

func (Fuzzy) queryNode() {}

// HasBoost reports whether a boost was given.
func (f Fuzzy) HasBoost() bool {
	return f.Boost > 0
}

// Range is a bounded interval.
//
// Semantics:
//
//	[<lower> TO <upper>]   // inclusive
//	{<lower> TO <upper>}   // exclusive
//
// String bounds are emitted as bare tokens, so "*" keeps its open-bound
// meaning.
type Range struct {
	Lower     Node
	Upper     Node
	Exclusive bool
}

func (Range) queryNode() {}

// WithExclusive returns a copy of r with the given exclusivity.
func (r Range) WithExclusive(exclusive bool) Range {
	r.Exclusive = exclusive
	return r
}

// Pair is one key/value entry of a Mapping.
type Pair struct {
	Key   Node
	Value Node
}

// Mapping is an ordered set of key/value pairs. It renders as the AND of
// one Field per pair, in pair order.
type Mapping struct {
	Pairs []Pair
}

func (Mapping) queryNode() {}

// Group converts the mapping to the AND group it stands for.
func (m Mapping) Group() Group {
	terms := make([]Node, len(m.Pairs))
	for i, p := range m.Pairs {
		terms[i] = Field{Key: p.Key, Value: p.Value}
	}
	return Group{Op: OpAnd, Terms: terms}
}
