// Package queryir provides the expression tree for Lucene query strings.
//
// A query is a tree of Node values. Leaves are literals (String, Atom,
// Number, Bool); inner nodes combine or qualify other nodes (Sequence, Field,
// Group, Not, Required, Prohibit, Range, Mapping). Fuzzy is a leaf that
// carries its own term text.
//
// SEALED INTERFACE:
//
// Node is sealed with a marker method. Only types in this package implement
// it, so renderers can switch exhaustively over the variants:
//
//	switch n := node.(type) {
//	case queryir.String:
//	    // quoted and escaped
//	case queryir.Group:
//	    // joined with AND/OR
//	...
//	}
//
// CONSTRUCTION:
//
// Every constructor accepts raw Go scalars as well as nodes and wraps them
// through Term. Type errors surface at construction as *Error values with
// code ErrCodeTypeMismatch; a tree that was built successfully always
// renders.
//
// Nodes are immutable values. Range.WithExclusive returns a modified copy
// rather than changing the receiver.
//
// Escaping is not applied here. Literals hold raw text and the renderer
// escapes each literal exactly once.
package queryir
