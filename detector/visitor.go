package detector

import "github.com/rowhound/rowhound/pyast"

// comparisonOps are the operators the comparison-operand classifier
// reacts to. Membership (in/not in) and identity (is/is not) operators
// are covered by the dedicated in_()/notin_() rule instead.
var comparisonOps = map[string]bool{
	"==": true,
	"!=": true,
	"<":  true,
	"<=": true,
	">":  true,
	">=": true,
}

// Visitor walks one file's tree in pre-order and accumulates findings in
// document order. A fresh Visitor is used per file.
type Visitor struct {
	rules    *Ruleset
	findings []Finding
}

// NewVisitor creates a visitor using the given rules, or the defaults
// when rules is nil.
func NewVisitor(rules *Ruleset) *Visitor {
	if rules == nil {
		rules = DefaultRuleset()
	}
	return &Visitor{rules: rules}
}

// Walk visits every node reachable from root. A match never stops
// descent, so nested patterns inside a matched expression are reported
// independently.
func (v *Visitor) Walk(root *pyast.Node) {
	if root == nil {
		return
	}
	v.visit(root)
}

// Findings returns the accumulated findings in traversal order.
func (v *Visitor) Findings() []Finding {
	return v.findings
}

func (v *Visitor) visit(n *pyast.Node) {
	switch n.Kind {
	case pyast.KindCall:
		v.visitCall(n)
	case pyast.KindCompare:
		v.visitCompare(n)
	}
	for _, child := range n.Children() {
		if child != nil {
			v.visit(child)
		}
	}
}

func (v *Visitor) visitCall(n *pyast.Node) {
	fn := n.Func
	if fn == nil || fn.Kind != pyast.KindAttribute {
		return
	}
	if !v.rules.MembershipMethods[fn.Name] || len(n.Args) == 0 {
		return
	}

	arg := n.Args[0]
	category, ok := v.rules.ClassifyMembershipArg(arg)
	if !ok {
		return
	}

	v.findings = append(v.findings, Finding{
		Line:       n.Line,
		Code:       pyast.Render(n),
		Category:   category,
		Arg:        pyast.Render(arg),
		Comparison: MarkerMembership,
	})
}

func (v *Visitor) visitCompare(n *pyast.Node) {
	// Chained comparisons (a == b == c) are classified pair by pair; each
	// pair yields at most one finding.
	for i, op := range n.Ops {
		if !comparisonOps[op] || i >= len(n.Comparators) {
			continue
		}
		comparator := n.Comparators[i]
		category, ok := v.rules.ClassifyComparand(comparator)
		if !ok {
			continue
		}

		v.findings = append(v.findings, Finding{
			Line:       n.Line,
			Code:       pyast.Render(n),
			Category:   category,
			Arg:        pyast.Render(comparator),
			Comparison: op,
		})
	}
}
