package lucene

import "github.com/roach88/lucene/queryir"

// Builder is the construction context handed to New.
//
// Every method wraps raw Go values through queryir.Term and returns a node.
// When a constructor fails, the builder keeps the first error and returns
// an empty sequence in place of the node, so a whole expression can be
// written without checking each call; New reports the error.
type Builder struct {
	err error
}

// Err returns the first construction error, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) record(n queryir.Node, err error) queryir.Node {
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return queryir.Sequence{}
	}
	return n
}

// Term wraps a scalar: strings are quoted, numbers and booleans pass through.
func (b *Builder) Term(v any) queryir.Node {
	n, err := queryir.Term(v)
	return b.record(n, err)
}

// Atom returns a bare token that renders without quoting.
func (b *Builder) Atom(s string) queryir.Node {
	return queryir.Atom(s)
}

// Seq groups items, space-separated.
func (b *Builder) Seq(items ...any) queryir.Node {
	n, err := queryir.NewSequence(items...)
	return b.record(n, err)
}

// Field builds key:value.
func (b *Builder) Field(key, value any) queryir.Node {
	n, err := queryir.NewField(key, value)
	return b.record(n, err)
}

// And joins terms with AND.
func (b *Builder) And(terms ...any) queryir.Node {
	n, err := queryir.NewAnd(terms...)
	return b.record(n, err)
}

// Or joins terms with OR.
func (b *Builder) Or(terms ...any) queryir.Node {
	n, err := queryir.NewOr(terms...)
	return b.record(n, err)
}

// In matches a field against any of values.
func (b *Builder) In(field any, values ...any) queryir.Node {
	n, err := queryir.NewIn(field, values...)
	return b.record(n, err)
}

// Not negates a term.
func (b *Builder) Not(term any) queryir.Node {
	n, err := queryir.NewNot(term)
	return b.record(n, err)
}

// Required marks a term with +.
func (b *Builder) Required(term any) queryir.Node {
	n, err := queryir.NewRequired(term)
	return b.record(n, err)
}

// Prohibit marks a term with -.
func (b *Builder) Prohibit(term any) queryir.Node {
	n, err := queryir.NewProhibit(term)
	return b.record(n, err)
}

// Fuzzy builds a fuzzy term. At most one boost may be given.
func (b *Builder) Fuzzy(term any, boost ...any) queryir.Node {
	var bst any
	switch len(boost) {
	case 0:
	case 1:
		bst = boost[0]
	default:
		return b.record(nil, &queryir.Error{
			Code:    queryir.ErrCodeTypeMismatch,
			Op:      "fuzzy",
			Message: "at most one boost is allowed",
		})
	}
	n, err := queryir.NewFuzzy(term, bst)
	return b.record(n, err)
}

// To builds an inclusive range. Use Exclusive or Range.WithExclusive to
// flip it.
func (b *Builder) To(lower, upper any) queryir.Node {
	n, err := queryir.NewRange(lower, upper, nil)
	return b.record(n, err)
}

// Range builds a range with explicit exclusivity.
func (b *Builder) Range(lower, upper any, exclusive any) queryir.Node {
	n, err := queryir.NewRange(lower, upper, exclusive)
	return b.record(n, err)
}

// Exclusive returns an exclusive copy of a range node. Any other node is a
// type mismatch.
func (b *Builder) Exclusive(n queryir.Node) queryir.Node {
	r, ok := n.(queryir.Range)
	if !ok {
		return b.record(nil, &queryir.Error{
			Code:    queryir.ErrCodeTypeMismatch,
			Op:      "exclusive",
			Message: "expected a range, got " + queryir.Kind(n),
		})
	}
	return r.WithExclusive(true)
}

// Pair builds one mapping entry.
func (b *Builder) Pair(key, value any) queryir.Pair {
	p, err := queryir.NewPair(key, value)
	if err != nil {
		b.record(nil, err)
	}
	return p
}

// Map builds an AND of fields from ordered pairs.
func (b *Builder) Map(pairs ...queryir.Pair) queryir.Node {
	return queryir.NewMapping(pairs...)
}
