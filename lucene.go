// Package lucene builds query strings for the Lucene query syntax.
//
// A query is built once through a Builder and rendered once:
//
//	q, err := lucene.New(func(b *lucene.Builder) queryir.Node {
//	    return b.And(
//	        b.Field(b.Atom("city"), "Portland"),
//	        b.Field(b.Atom("marine_life"), b.Seq(b.Required("fish"), b.Prohibit("eels"))),
//	    )
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(q) // (city:'Portland' AND marine_life:(+'fish' -'eels'))
//
// Trees can also be built directly with the queryir constructors and wrapped
// with FromNode. Solr uses the same grammar; see package solr.
package lucene

import (
	"fmt"

	"github.com/roach88/lucene/querylucene"
	"github.com/roach88/lucene/queryir"
)

// Query is a built query tree ready for rendering.
type Query struct {
	root queryir.Node
}

// New runs build exactly once with a fresh Builder and returns the query it
// produces. The first construction error recorded by the builder is
// returned instead of a query.
func New(build func(b *Builder) queryir.Node) (*Query, error) {
	b := &Builder{}
	root := build(b)
	if b.err != nil {
		return nil, b.err
	}
	return &Query{root: root}, nil
}

// MustNew is like New but panics on a construction error. It is intended
// for queries built from constants.
func MustNew(build func(b *Builder) queryir.Node) *Query {
	q, err := New(build)
	if err != nil {
		panic(fmt.Sprintf("lucene: %v", err))
	}
	return q
}

// FromNode wraps a tree that was built with the queryir constructors.
func FromNode(root queryir.Node) *Query {
	return &Query{root: root}
}

// Root returns the query tree.
func (q *Query) Root() queryir.Node {
	return q.root
}

// Render returns the query string.
func (q *Query) Render() string {
	return querylucene.Render(q.root)
}

// String implements fmt.Stringer.
func (q *Query) String() string {
	return q.Render()
}
