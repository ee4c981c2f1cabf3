package document

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lucene/querylucene"
)

// TestCorpus_Golden renders every case in testdata/queries and compares the
// output against testdata/golden/{case}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/document -update
func TestCorpus_Golden(t *testing.T) {
	files, err := filepath.Glob("testdata/queries/*")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	seen := map[string]string{}
	for _, file := range files {
		doc, err := Load(file)
		require.NoError(t, err, "loading %s", file)

		for _, c := range doc.Cases {
			t.Run(c.Name, func(t *testing.T) {
				prev, dup := seen[c.Name]
				require.False(t, dup, "case %q defined in both %s and %s", c.Name, prev, file)
				seen[c.Name] = file

				got := querylucene.Render(c.Query)
				if c.HasExpect {
					assert.Equal(t, c.Expect, got)
				}
				g.Assert(t, c.Name, []byte(got))
			})
		}
	}
}

func TestCorpus_FormatsCovered(t *testing.T) {
	formats := map[Format]bool{}
	files, err := filepath.Glob("testdata/queries/*")
	require.NoError(t, err)
	for _, file := range files {
		f, err := FormatFor(file)
		require.NoError(t, err)
		formats[f] = true
	}

	assert.True(t, formats[FormatYAML])
	assert.True(t, formats[FormatJSON])
	assert.True(t, formats[FormatCUE])
}
