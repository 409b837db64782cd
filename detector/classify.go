package detector

import (
	"strings"

	"github.com/rowhound/rowhound/pyast"
)

// maxChainDepth bounds the recursive chain walkers. Overflow yields "no
// match" rather than a stack fault.
const maxChainDepth = 64

// ClassifyMembershipArg classifies the first argument of an in_()/notin_()
// call. ok is false when the argument matches no heuristic, which is the
// normal outcome, not an error.
func (r *Ruleset) ClassifyMembershipArg(arg *pyast.Node) (Category, bool) {
	if arg == nil {
		return "", false
	}

	switch arg.Kind {
	case pyast.KindCall:
		// A full query chain beats the guard check: session.query(...)
		// .filter(...) is a direct query even though .all() or .subquery()
		// further down a different chain would be a guard.
		if r.isQueryChain(arg, 0) {
			return CategoryDirectQuery, true
		}
		if r.hasGuardCall(arg, 0) {
			return CategorySubqueryGuarded, true
		}

	case pyast.KindName:
		if r.matchesQueryName(arg.Name) {
			return CategoryQueryVariable, true
		}

	case pyast.KindAttribute:
		if r.matchesQueryName(arg.Name) {
			return CategoryQueryAttribute, true
		}
	}

	return "", false
}

// ClassifyComparand classifies one comparator of a comparison expression.
func (r *Ruleset) ClassifyComparand(n *pyast.Node) (Category, bool) {
	if n == nil {
		return "", false
	}

	switch n.Kind {
	case pyast.KindCall:
		if r.isRowChain(n, 0) {
			return CategoryRowResult, true
		}

	case pyast.KindName:
		if r.matchesRowName(n.Name) {
			return CategoryRowVariable, true
		}

	case pyast.KindAttribute:
		if r.matchesRowName(n.Name) {
			return CategoryRowAttribute, true
		}
	}

	return "", false
}

// isQueryChain reports whether n is a call chain of query-composition
// methods bottoming out at a .query(...) call.
func (r *Ruleset) isQueryChain(n *pyast.Node, depth int) bool {
	if depth > maxChainDepth {
		return false
	}
	if n == nil || n.Kind != pyast.KindCall {
		return false
	}
	fn := n.Func
	if fn == nil || fn.Kind != pyast.KindAttribute {
		return false
	}
	if fn.Name == r.QueryBaseMethod {
		return true
	}
	if r.QueryChainMethods[fn.Name] {
		return r.isQueryChain(fn.Value, depth+1)
	}
	return false
}

// isRowChain reports whether n is a call that produces a Row: a row method
// applied to a query chain, or a chain method (including limit) applied
// recursively to a row-or-query chain, bottoming out at .query(...).
func (r *Ruleset) isRowChain(n *pyast.Node, depth int) bool {
	if depth > maxChainDepth {
		return false
	}
	if n == nil || n.Kind != pyast.KindCall {
		return false
	}
	fn := n.Func
	if fn == nil || fn.Kind != pyast.KindAttribute {
		return false
	}
	if r.RowMethods[fn.Name] {
		return r.isQueryChain(fn.Value, depth+1)
	}
	if r.QueryChainMethods[fn.Name] || r.RowChainExtras[fn.Name] {
		return r.isRowChain(fn.Value, depth+1)
	}
	return fn.Name == r.QueryBaseMethod
}

// hasGuardCall walks the receiver spine of a call chain looking for a
// guard method, stopping at the first non-call node.
func (r *Ruleset) hasGuardCall(n *pyast.Node, depth int) bool {
	if depth > maxChainDepth {
		return false
	}
	if n == nil || n.Kind != pyast.KindCall {
		return false
	}
	fn := n.Func
	if fn == nil || fn.Kind != pyast.KindAttribute {
		return false
	}
	if r.GuardMethods[fn.Name] {
		return true
	}
	return r.hasGuardCall(fn.Value, depth+1)
}

func (r *Ruleset) matchesQueryName(name string) bool {
	name = strings.ToLower(name)
	if r.QueryNames[name] {
		return true
	}
	return containsAny(name, r.QueryKeywords)
}

func (r *Ruleset) matchesRowName(name string) bool {
	return containsAny(strings.ToLower(name), r.RowKeywords)
}

func containsAny(name string, keywords map[string]bool) bool {
	for kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
