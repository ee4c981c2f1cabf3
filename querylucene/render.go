// Package querylucene renders queryir trees as Lucene query strings.
//
// Rendering is a single pure pass over an immutable tree. Every variant of
// queryir.Node has exactly one rule, and no rule can fail: a tree that was
// built successfully always renders.
package querylucene

import (
	"strconv"
	"strings"

	"github.com/roach88/lucene/queryir"
)

// Render converts a query tree to Lucene syntax.
//
//	Render(queryir.Field{Key: queryir.Atom("city"), Value: queryir.String("Portland")})
//	// city:'Portland'
//
// A nil node renders as the empty string.
func Render(n queryir.Node) string {
	switch node := n.(type) {
	case nil:
		return ""
	case queryir.String:
		return Quote(string(node))
	case queryir.Atom:
		return string(node)
	case queryir.Number:
		return formatNumber(node)
	case queryir.Bool:
		return strconv.FormatBool(bool(node))
	case queryir.Sequence:
		return parens(join(node.Items, " "))
	case queryir.Group:
		return parens(join(node.Terms, " "+string(node.Op)+" "))
	case queryir.Mapping:
		return Render(node.Group())
	case queryir.Field:
		return Render(node.Key) + ":" + Render(node.Value)
	case queryir.Not:
		return "NOT " + Render(node.Term)
	case queryir.Required:
		return "+" + Render(node.Term)
	case queryir.Prohibit:
		return "-" + Render(node.Term)
	case queryir.Fuzzy:
		return renderFuzzy(node)
	case queryir.Range:
		return renderRange(node)
	default:
		// Unreachable: Node is sealed.
		return ""
	}
}

// RenderBound renders a range bound. Strings are emitted as bare tokens,
// unquoted and unescaped, so "*" stays an open bound. Other nodes use
// Render.
func RenderBound(n queryir.Node) string {
	if s, ok := n.(queryir.String); ok {
		return string(s)
	}
	return Render(n)
}

func join(nodes []queryir.Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = Render(n)
	}
	return strings.Join(parts, sep)
}

// parens wraps s in parentheses unless it is blank.
func parens(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	return "(" + s + ")"
}

// formatNumber keeps the kind of the number: integers print plainly, floats
// always carry a fractional part and never use exponent notation, whose '+'
// would need escaping.
func formatNumber(n queryir.Number) string {
	if !n.IsFloat {
		return strconv.FormatInt(n.Int, 10)
	}
	s := strconv.FormatFloat(n.Float, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func renderFuzzy(f queryir.Fuzzy) string {
	words := strings.Fields(f.Term)
	suffix := "~"
	if f.HasBoost() {
		suffix += strconv.FormatFloat(f.Boost, 'f', 1, 64)
	}
	for i, w := range words {
		words[i] = Escape(w) + suffix
	}
	return strings.Join(words, " ")
}

func renderRange(r queryir.Range) string {
	left, right := "[", "]"
	if r.Exclusive {
		left, right = "{", "}"
	}
	return left + RenderBound(r.Lower) + " TO " + RenderBound(r.Upper) + right
}
