// Package solr exposes the lucene query builder under the Solr name. Solr
// parses the same query grammar, so every identifier here is an alias and
// behaves identically.
package solr

import "github.com/roach88/lucene"

// Query is a built query tree ready for rendering.
type Query = lucene.Query

// Builder is the construction context handed to New.
type Builder = lucene.Builder

var (
	// New runs a build function once and returns the query it produces.
	New = lucene.New

	// MustNew is like New but panics on a construction error.
	MustNew = lucene.MustNew

	// FromNode wraps a tree built with the queryir constructors.
	FromNode = lucene.FromNode
)
