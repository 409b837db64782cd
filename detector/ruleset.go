package detector

// Ruleset holds the name tables every classifier branch matches against.
// Keeping them as data rather than hard-coded branches lets configuration
// extend the heuristics without touching control flow. The zero value is
// not usable; start from DefaultRuleset.
type Ruleset struct {
	// MembershipMethods are the callee attribute names that make a call a
	// membership test (case-sensitive exact match).
	MembershipMethods map[string]bool

	// QueryBaseMethod is the attribute name that terminates a query chain.
	QueryBaseMethod string

	// QueryChainMethods are attribute names that continue a query chain.
	QueryChainMethods map[string]bool

	// GuardMethods are attribute names that mark a chain as already
	// converted to a subquery form.
	GuardMethods map[string]bool

	// RowMethods are attribute names whose call returns a Row when applied
	// to a query chain.
	RowMethods map[string]bool

	// RowChainExtras are attribute names that continue a row chain in
	// addition to QueryChainMethods.
	RowChainExtras map[string]bool

	// QueryNames are lower-cased identifier names matched exactly.
	QueryNames map[string]bool

	// QueryKeywords are substrings matched against lower-cased names of
	// membership-test arguments.
	QueryKeywords map[string]bool

	// RowKeywords are substrings matched against lower-cased names of
	// comparison operands.
	RowKeywords map[string]bool
}

// DefaultRuleset returns the built-in SQLAlchemy 1.x heuristics.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		MembershipMethods: toSet("in_", "notin_"),
		QueryBaseMethod:   "query",
		QueryChainMethods: toSet("filter", "join", "outerjoin", "group_by", "having", "order_by"),
		GuardMethods:      toSet("subquery", "scalar_subquery", "exists", "all"),
		RowMethods:        toSet("first", "one", "one_or_none", "scalar_one", "scalar_one_or_none"),
		RowChainExtras:    toSet("limit"),
		QueryNames:        toSet("q"),
		QueryKeywords:     toSet("query", "subq", "sub_q"),
		RowKeywords:       toSet("row", "first", "one", "result", "record", "data"),
	}
}

// AddQueryKeywords registers extra substrings for the query-name heuristic.
func (r *Ruleset) AddQueryKeywords(words ...string) {
	for _, w := range words {
		if w != "" {
			r.QueryKeywords[w] = true
		}
	}
}

// AddQueryNames registers extra exact-match query identifier names.
func (r *Ruleset) AddQueryNames(names ...string) {
	for _, n := range names {
		if n != "" {
			r.QueryNames[n] = true
		}
	}
}

// AddRowKeywords registers extra substrings for the row-name heuristic.
func (r *Ruleset) AddRowKeywords(words ...string) {
	for _, w := range words {
		if w != "" {
			r.RowKeywords[w] = true
		}
	}
}

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
