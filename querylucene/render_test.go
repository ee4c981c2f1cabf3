package querylucene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lucene/queryir"
)

func mustTerm(t *testing.T, v any) queryir.Node {
	t.Helper()
	n, err := queryir.Term(v)
	require.NoError(t, err)
	return n
}

func TestRender_Literals(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"atom", queryir.Atom("example"), "example"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"float", 3.14159, "3.14159"},
		{"integral float", 1.0, "1.0"},
		{"float32", float32(0.1), "0.1"},
		{"large float", 1e21, "1000000000000000000000.0"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"string", "example", "'example'"},
		{"empty string", "", "''"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(mustTerm(t, tc.in)))
		})
	}
}

func TestRender_EscapesStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"this || that", `'this \|| that'`},
		{"this && that", `'this \&& that'`},
		{"Query builder for the Lucene (and Solr) search engine.", `'Query builder for the Lucene \(and Solr\) search engine.'`},
		{"~jvoorhis", `'\~jvoorhis'`},
		{"-spam", `'\-spam'`},
		{"+ham", `'\+ham'`},
		{`\d{10}`, `'\\d\{10\}'`},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(queryir.String(tc.in)))
		})
	}
}

func TestRender_DowncasesEndingKeywords(t *testing.T) {
	assert.Equal(t, "'Me and'", Render(queryir.String("Me AND")))
	assert.Equal(t, "'You or'", Render(queryir.String("You OR")))
	assert.Equal(t, "'Maybe not'", Render(queryir.String("Maybe NOT")))

	// Only a whole final word counts.
	assert.Equal(t, "'BRAND'", Render(queryir.String("BRAND")))
	assert.Equal(t, "'AND then'", Render(queryir.String("AND then")))
	assert.Equal(t, "'and'", Render(queryir.String("AND")))
}

func TestRender_Sequence(t *testing.T) {
	assert.Equal(t, "", Render(queryir.Sequence{}))

	seq := queryir.Sequence{Items: []queryir.Node{
		queryir.Atom("red"), queryir.Atom("green"), queryir.Atom("blue"),
	}}
	assert.Equal(t, "(red green blue)", Render(seq))

	// Whitespace-only content is returned without parentheses.
	blank := queryir.Sequence{Items: []queryir.Node{queryir.Atom(" ")}}
	assert.Equal(t, " ", Render(blank))
}

func TestRender_Groups(t *testing.T) {
	and, err := queryir.NewAnd(queryir.Atom("symbol"), 42, "string")
	require.NoError(t, err)
	assert.Equal(t, "(symbol AND 42 AND 'string')", Render(and))

	or, err := queryir.NewOr(queryir.Atom("symbol"), 42, "string")
	require.NoError(t, err)
	assert.Equal(t, "(symbol OR 42 OR 'string')", Render(or))

	single, err := queryir.NewAnd("only")
	require.NoError(t, err)
	assert.Equal(t, "('only')", Render(single))

	empty, err := queryir.NewAnd()
	require.NoError(t, err)
	assert.Equal(t, "", Render(empty))
}

func TestRender_UnaryModifiers(t *testing.T) {
	assert.Equal(t, "NOT 'me'", Render(queryir.Not{Term: queryir.String("me")}))
	assert.Equal(t, "+'lucene'", Render(queryir.Required{Term: queryir.String("lucene")}))
	assert.Equal(t, "-'bugs'", Render(queryir.Prohibit{Term: queryir.String("bugs")}))
}

func TestRender_Fields(t *testing.T) {
	f, err := queryir.NewField(queryir.Atom("city"), "Portland")
	require.NoError(t, err)
	assert.Equal(t, "city:'Portland'", Render(f))

	f, err = queryir.NewField("city", "Portland")
	require.NoError(t, err)
	assert.Equal(t, "'city':'Portland'", Render(f))

	seq, err := queryir.NewSequence(
		queryir.Required{Term: queryir.String("fish")},
		queryir.Prohibit{Term: queryir.String("eels")},
	)
	require.NoError(t, err)
	f, err = queryir.NewField(queryir.Atom("marine_life"), seq)
	require.NoError(t, err)
	assert.Equal(t, "marine_life:(+'fish' -'eels')", Render(f))
}

func TestRender_In(t *testing.T) {
	in, err := queryir.NewIn(queryir.Atom("id"), 110, 220, 330)
	require.NoError(t, err)
	assert.Equal(t, "(id:110 OR id:220 OR id:330)", Render(in))

	empty, err := queryir.NewIn(queryir.Atom("id"))
	require.NoError(t, err)
	assert.Equal(t, "", Render(empty))
}

func TestRender_Mapping(t *testing.T) {
	m := queryir.NewMapping(
		queryir.Pair{Key: queryir.Atom("city"), Value: queryir.String("Portland")},
		queryir.Pair{Key: queryir.Atom("state"), Value: queryir.String("Oregon")},
	)
	assert.Equal(t, "(city:'Portland' AND state:'Oregon')", Render(m))

	assert.Equal(t, "", Render(queryir.Mapping{}))

	seq, err := queryir.NewSequence(
		queryir.Required{Term: queryir.String("fish")},
		queryir.Required{Term: queryir.String("dolphins")},
	)
	require.NoError(t, err)
	nested := queryir.NewMapping(queryir.Pair{Key: queryir.Atom("marine_life"), Value: seq})
	assert.Equal(t, "(marine_life:(+'fish' +'dolphins'))", Render(nested))
}

func TestRender_Fuzzy(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		boost any
		want  string
	}{
		{"single", "term", nil, "term~"},
		{"multiple words", "multiple terms", nil, "multiple~ terms~"},
		{"boost", "term", 0.7, "term~0.7"},
		{"integral boost", "term", 1, "term~1.0"},
		{"reserved", "*", nil, `\*~`},
		{"runs of whitespace", "  a \t b  ", nil, "a~ b~"},
		{"boost on every word", "big fish", 0.5, "big~0.5 fish~0.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := queryir.NewFuzzy(tc.term, tc.boost)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Render(f))
		})
	}
}

func TestRender_Range(t *testing.T) {
	r, err := queryir.NewRange("here", "eternity", nil)
	require.NoError(t, err)
	assert.Equal(t, "[here TO eternity]", Render(r))

	r, err = queryir.NewRange("soup", "nuts", true)
	require.NoError(t, err)
	assert.Equal(t, "{soup TO nuts}", Render(r))

	// Toggling twice restores the original.
	assert.Equal(t, "{soup TO nuts}", Render(r.WithExclusive(false).WithExclusive(true)))
	assert.Equal(t, "[soup TO nuts]", Render(r.WithExclusive(false)))

	open, err := queryir.NewRange("*", 100, nil)
	require.NoError(t, err)
	assert.Equal(t, "[* TO 100]", Render(open))
}

func TestRender_NilNode(t *testing.T) {
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, "NOT ", Render(queryir.Not{}))
}
