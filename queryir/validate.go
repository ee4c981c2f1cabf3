package queryir

import "fmt"

// ValidationResult contains warnings about trees that render, but not the
// way a caller most likely intended.
type ValidationResult struct {
	// Clean is true when no warnings were found.
	Clean bool

	// Warnings lists each questionable construct, in tree order.
	Warnings []string
}

// Validate inspects a tree for constructs that Lucene accepts but that
// rarely mean what the author wanted:
//  1. nil nodes (built with struct literals) render as nothing
//  2. empty groups, sequences or mappings nested under an operator leave a
//     dangling operator, e.g. "( AND 'x')"
//  3. a query made only of NOT/prohibited clauses matches no documents
//
// Warnings never block rendering. Validate is a pure function.
func Validate(n Node) ValidationResult {
	v := &validator{
		warnings: []string{},
	}
	v.validateNode(n, "root")
	if n != nil && onlyNegative(n) {
		v.addWarning("root: purely negative query matches no documents")
	}

	return ValidationResult{
		Clean:    len(v.warnings) == 0,
		Warnings: v.warnings,
	}
}

// validator accumulates warnings during traversal.
type validator struct {
	warnings []string
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) validateNode(n Node, path string) {
	if n == nil {
		v.addWarning("%s: nil node renders as an empty string", path)
		return
	}

	switch node := n.(type) {
	case Sequence:
		v.validateChildren(node.Items, path, "sequence")
	case Group:
		v.validateChildren(node.Terms, path, string(node.Op))
	case Mapping:
		for i, p := range node.Pairs {
			v.validateNode(p.Key, fmt.Sprintf("%s.pair[%d].key", path, i))
			v.validateNode(p.Value, fmt.Sprintf("%s.pair[%d].value", path, i))
		}
	case Field:
		v.validateNode(node.Key, path+".key")
		v.validateNode(node.Value, path+".value")
	case Not:
		v.validateNode(node.Term, path+".not")
	case Required:
		v.validateNode(node.Term, path+".required")
	case Prohibit:
		v.validateNode(node.Term, path+".prohibit")
	case Range:
		v.validateNode(node.Lower, path+".lower")
		v.validateNode(node.Upper, path+".upper")
	}
}

func (v *validator) validateChildren(children []Node, path, kind string) {
	for i, child := range children {
		childPath := fmt.Sprintf("%s.%s[%d]", path, kind, i)
		if isEmpty(child) && len(children) > 1 {
			v.addWarning("%s: empty term leaves a dangling separator", childPath)
		}
		v.validateNode(child, childPath)
	}
}

// isEmpty reports whether n renders as the empty string.
func isEmpty(n Node) bool {
	switch node := n.(type) {
	case Sequence:
		return len(node.Items) == 0
	case Group:
		return len(node.Terms) == 0
	case Mapping:
		return len(node.Pairs) == 0
	}
	return false
}

// onlyNegative reports whether every top-level clause of n is negated.
func onlyNegative(n Node) bool {
	switch node := n.(type) {
	case Not, Prohibit:
		return true
	case Sequence:
		return allNegative(node.Items)
	case Group:
		return node.Op == OpAnd && allNegative(node.Terms)
	}
	return false
}

func allNegative(nodes []Node) bool {
	if len(nodes) == 0 {
		return false
	}
	for _, n := range nodes {
		if !onlyNegative(n) {
			return false
		}
	}
	return true
}
