package sarif

import "github.com/rowhound/rowhound/detector"

// ruleInfo holds the SARIF-facing descriptions for one category.
type ruleInfo struct {
	name  string
	short string
	full  string
	help  string
}

var ruleDescriptions = map[detector.Category]ruleInfo{
	detector.CategoryDirectQuery: {
		name:  "DirectQueryInClause",
		short: "Query object passed directly to in_()/notin_()",
		full:  "A session.query(...) chain is used as the argument of an in_() or notin_() membership test. SQLAlchemy 2.0 no longer coerces Query objects in this position.",
		help:  "Append .scalar_subquery() to the query before passing it to in_().",
	},
	detector.CategoryQueryVariable: {
		name:  "QueryVariableInClause",
		short: "Variable name suggests a query inside in_()/notin_()",
		full:  "A bare identifier whose name contains a query-like keyword is used as the argument of a membership test. It may hold a Query object that needs conversion.",
		help:  "Check where the variable is assigned; if it holds a Query, add .scalar_subquery().",
	},
	detector.CategoryQueryAttribute: {
		name:  "QueryAttributeInClause",
		short: "Attribute name suggests a query inside in_()/notin_()",
		full:  "An attribute access whose name contains a query-like keyword is used as the argument of a membership test. It may hold a Query object that needs conversion.",
		help:  "Check where the attribute is assigned; if it holds a Query, add .scalar_subquery().",
	},
	detector.CategorySubqueryGuarded: {
		name:  "SubqueryAlreadyGuarded",
		short: "Membership test argument already has a subquery guard",
		full:  "The call chain already ends in subquery(), scalar_subquery(), exists() or all(). Listed for review; usually no change is needed.",
		help:  "Verify the guarded form still emits the intended SQL; subquery() in in_() warns under 1.4+ and should usually become scalar_subquery().",
	},
	detector.CategoryRowResult: {
		name:  "RowLikeResult",
		short: "Row-returning query call used as a comparison operand",
		full:  "A query chain ending in first(), one() or a similar row method is compared with ==, !=, <, <=, > or >=. The operand is a Row, not a scalar, and the comparison changes meaning under 2.0.",
		help:  "Extract the scalar with .scalar(), scalar_one() or row[0] before comparing.",
	},
	detector.CategoryRowVariable: {
		name:  "PossibleRowVariable",
		short: "Variable name suggests a Row object in a comparison",
		full:  "A bare identifier whose name contains a row-like keyword is used as a comparison operand. It may hold a Row rather than a scalar.",
		help:  "Check where the variable is assigned; if it holds a Row, compare against row[0] or use .scalar().",
	},
	detector.CategoryRowAttribute: {
		name:  "PossibleRowAttribute",
		short: "Attribute name suggests a Row object in a comparison",
		full:  "An attribute access whose name contains a row-like keyword is used as a comparison operand. It may hold a Row rather than a scalar.",
		help:  "Check where the attribute is assigned; if it holds a Row, compare against row[0] or use .scalar().",
	},
}

// BuildRules returns the descriptor for every category, in the fixed
// confidence order used across the tool.
func BuildRules() []ReportingDescriptor {
	categories := detector.Categories()
	rules := make([]ReportingDescriptor, 0, len(categories))
	for _, category := range categories {
		info := ruleDescriptions[category]
		rules = append(rules, ReportingDescriptor{
			ID:               string(category),
			Name:             info.name,
			ShortDescription: MessageString{Text: info.short},
			FullDescription:  MessageString{Text: info.full},
			Help:             MessageString{Text: info.help},
			DefaultConfiguration: Configuration{
				Level: Level(category),
			},
		})
	}
	return rules
}
