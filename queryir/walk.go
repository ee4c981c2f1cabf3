package queryir

// Walk visits n and its descendants in pre-order. If fn returns false the
// children of that node are skipped. Nil nodes are not visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch node := n.(type) {
	case Sequence:
		for _, item := range node.Items {
			Walk(item, fn)
		}
	case Group:
		for _, t := range node.Terms {
			Walk(t, fn)
		}
	case Mapping:
		for _, p := range node.Pairs {
			Walk(p.Key, fn)
			Walk(p.Value, fn)
		}
	case Field:
		Walk(node.Key, fn)
		Walk(node.Value, fn)
	case Not:
		Walk(node.Term, fn)
	case Required:
		Walk(node.Term, fn)
	case Prohibit:
		Walk(node.Term, fn)
	case Range:
		Walk(node.Lower, fn)
		Walk(node.Upper, fn)
	}
}

// Kind returns a short lowercase name for the node's variant.
func Kind(n Node) string {
	switch node := n.(type) {
	case String:
		return "string"
	case Atom:
		return "atom"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Sequence:
		return "sequence"
	case Field:
		return "field"
	case Group:
		if node.Op == OpOr {
			return "or"
		}
		return "and"
	case Not:
		return "not"
	case Required:
		return "required"
	case Prohibit:
		return "prohibit"
	case Fuzzy:
		return "fuzzy"
	case Range:
		return "range"
	case Mapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Stats counts the nodes of a tree by Kind.
func Stats(n Node) map[string]int {
	counts := make(map[string]int)
	Walk(n, func(node Node) bool {
		counts[Kind(node)]++
		return true
	})
	return counts
}
