package pyast

// Kind discriminates the closed set of node shapes the classifiers
// understand. Anything the grammar produces that is not one of the
// recognized expression forms maps to KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindName
	KindAttribute
	KindCall
	KindCompare
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "Name"
	case KindAttribute:
		return "Attribute"
	case KindCall:
		return "Call"
	case KindCompare:
		return "Compare"
	case KindLiteral:
		return "Literal"
	default:
		return "Other"
	}
}

// Node is a read-only variant view of one parsed Python expression or
// statement. Nodes are built once from the tree-sitter tree and never
// mutated; they are only valid for the lifetime of one file scan.
type Node struct {
	Kind Kind
	Line int    // 1-based source line
	Text string // raw source slice; empty for synthetic nodes
	Type string // tree-sitter grammar type, kept for placeholder rendering

	// Name holds the identifier text for KindName and the attribute name
	// for KindAttribute.
	Name string

	// Value is the receiver expression of a KindAttribute node.
	Value *Node

	// Func and Args describe a KindCall node. Args holds positional
	// arguments only; keyword arguments do not participate in any
	// classification rule.
	Func *Node
	Args []*Node

	// Left, Ops and Comparators describe a KindCompare node. Ops[i] pairs
	// with Comparators[i].
	Left        *Node
	Ops         []string
	Comparators []*Node

	children []*Node
}

// Children returns every child expression in document order, regardless
// of kind. It is what a generic depth-first traversal descends into.
func (n *Node) Children() []*Node {
	switch n.Kind {
	case KindAttribute:
		if n.Value == nil {
			return nil
		}
		return []*Node{n.Value}
	case KindCall:
		out := make([]*Node, 0, len(n.Args)+len(n.children)+1)
		if n.Func != nil {
			out = append(out, n.Func)
		}
		out = append(out, n.Args...)
		return append(out, n.children...)
	case KindCompare:
		out := make([]*Node, 0, len(n.Comparators)+1)
		if n.Left != nil {
			out = append(out, n.Left)
		}
		return append(out, n.Comparators...)
	default:
		return n.children
	}
}
