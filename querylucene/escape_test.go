package querylucene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape_EveryReservedCharacter(t *testing.T) {
	for _, c := range `-+!(){}[]^"~*?:\` {
		t.Run(string(c), func(t *testing.T) {
			in := "a" + string(c) + "b"
			assert.Equal(t, "a\\"+string(c)+"b", Escape(in))
		})
	}
}

func TestEscape_OperatorPairs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a && b", `a \&& b`},
		{"a || b", `a \|| b`},
		{"a & b", "a & b"},
		{"a | b", "a | b"},
		{"&&&", `\&&&`},
		{"&&&&", `\&&\&&`},
		{"|||", `\|||`},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Escape(tc.in))
		})
	}
}

func TestEscape_LeavesOtherTextAlone(t *testing.T) {
	plain := "Portland, Oregon / café 'quoted' #1 @home $5 %"
	assert.Equal(t, plain, Escape(plain))

	// Multi-byte runes next to reserved characters survive intact.
	assert.Equal(t, `日本\*語`, Escape("日本*語"))
}

func TestEscape_BackslashCountMatchesReserved(t *testing.T) {
	in := `(1+1):[2]{3}^"~*?\!-`
	out := Escape(in)
	// 16 reserved characters, 4 digits.
	assert.Equal(t, len(in)+16, len(out))
	assert.Equal(t, in, unescape(out))
}

// unescape drops the backslash in front of each escaped character.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestDowncaseEndingKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Me AND", "Me and"},
		{"You OR", "You or"},
		{"Maybe NOT", "Maybe not"},
		{"NOT", "not"},
		{"tab\tOR", "tab\tor"},
		{"BRAND", "BRAND"},
		{"DOOR", "DOOR"},
		{"Me And", "Me And"},
		{"AND me", "AND me"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, DowncaseEndingKeyword(tc.in))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'example'", Quote("example"))
	assert.Equal(t, `'\(x\) and'`, Quote("(x) AND"))
}
