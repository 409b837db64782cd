package detector

// Category classifies one finding. The set is closed and mutually
// exclusive per visited node: the first matching rule wins.
type Category string

const (
	// CategoryDirectQuery marks a query-composition chain passed straight
	// into in_()/notin_(); it needs .scalar_subquery() under 2.0.
	CategoryDirectQuery Category = "direct-query-in-clause"

	// CategoryQueryVariable marks a bare identifier whose name suggests it
	// holds a query.
	CategoryQueryVariable Category = "query-variable-in-clause"

	// CategoryQueryAttribute marks an attribute access whose name suggests
	// it holds a query.
	CategoryQueryAttribute Category = "query-attribute-in-clause"

	// CategorySubqueryGuarded marks a chain that already ends in a
	// subquery/exists guard; listed for review, not a migration break.
	CategorySubqueryGuarded Category = "subquery-already-guarded"

	// CategoryRowResult marks a chain returning a Row used as a comparison
	// operand; it needs .scalar() or indexing under 2.0.
	CategoryRowResult Category = "row-like-result"

	// CategoryRowVariable marks an identifier whose name suggests it holds
	// a Row.
	CategoryRowVariable Category = "possible-row-variable"

	// CategoryRowAttribute marks an attribute access whose name suggests
	// it holds a Row.
	CategoryRowAttribute Category = "possible-row-attribute"
)

// Categories returns every category, highest-confidence first.
func Categories() []Category {
	return []Category{
		CategoryDirectQuery,
		CategoryRowResult,
		CategoryQueryVariable,
		CategoryQueryAttribute,
		CategoryRowVariable,
		CategoryRowAttribute,
		CategorySubqueryGuarded,
	}
}

// MarkerMembership is the comparison marker recorded for in_()/notin_()
// matches; comparison matches record the literal operator symbol instead.
const MarkerMembership = "in_or_notin_"

// Finding represents one detected migration-risk pattern.
type Finding struct {
	Line       int      // 1-based source line of the matched expression
	Code       string   // rendered text of the whole matched expression
	Category   Category // classification, exactly one per finding
	Arg        string   // rendered text of the argument or comparator
	Comparison string   // MarkerMembership or the operator symbol
}
