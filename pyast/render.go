package pyast

import "strings"

const (
	// maxRenderDepth bounds structural recursion so a pathological tree
	// degrades to a placeholder instead of a stack fault.
	maxRenderDepth = 32

	// maxRenderArgs caps how many call arguments are reconstructed.
	maxRenderArgs = 2
)

// Render returns a best-effort textual approximation of the expression n
// represents. It prefers the exact source slice captured at parse time
// (collapsed to one line) and falls back to structural reconstruction.
// The result is non-authoritative but Render is total: it never fails and
// never returns an empty string.
func Render(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.Text != "" {
		return collapseSpace(n.Text)
	}
	return renderStructural(n, 0)
}

func renderStructural(n *Node, depth int) string {
	if n == nil {
		return "<nil>"
	}
	if depth > maxRenderDepth {
		return placeholder(n)
	}

	switch n.Kind {
	case KindName:
		if n.Name != "" {
			return n.Name
		}

	case KindAttribute:
		return renderStructural(n.Value, depth+1) + "." + n.Name

	case KindCall:
		var b strings.Builder
		b.WriteString(renderStructural(n.Func, depth+1))
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i == maxRenderArgs {
				b.WriteString(", ...")
				break
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderStructural(arg, depth+1))
		}
		b.WriteByte(')')
		return b.String()

	case KindCompare:
		// Only the first operator/comparator pair is reconstructed. The
		// visitor still classifies every pair; this is a documented
		// limitation of the fallback path, not of classification.
		if n.Left != nil && len(n.Ops) > 0 && len(n.Comparators) > 0 {
			return renderStructural(n.Left, depth+1) + " " + n.Ops[0] + " " +
				renderStructural(n.Comparators[0], depth+1)
		}
	}

	return placeholder(n)
}

func placeholder(n *Node) string {
	if n.Type != "" {
		return "<" + n.Type + ">"
	}
	return "<" + n.Kind.String() + ">"
}

func collapseSpace(s string) string {
	if !strings.ContainsAny(s, "\n\r\t") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
