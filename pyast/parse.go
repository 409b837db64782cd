package pyast

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// maxFileSize is the maximum source size the parser will accept (10MB).
const maxFileSize = 10 * 1024 * 1024

// Parse parses Python source into the variant tree. A source that
// tree-sitter flags as syntactically broken is rejected as a whole; the
// caller skips the file rather than classifying a partial tree.
func Parse(ctx context.Context, src []byte) (*Node, error) {
	if len(src) > maxFileSize {
		return nil, fmt.Errorf("source size %d exceeds limit %d", len(src), maxFileSize)
	}

	// New parser instance per call so Parse is safe for concurrent use.
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("tree-sitter returned no root node")
	}
	if root.HasError() {
		return nil, fmt.Errorf("source contains syntax errors")
	}

	return convert(root, src), nil
}

// ParseFile reads and parses a single Python file.
func ParseFile(ctx context.Context, path string) (*Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, src)
}

// literalTypes are grammar types mapped to KindLiteral. Containers such as
// lists and dicts stay KindOther so traversal still reaches their elements.
var literalTypes = map[string]bool{
	"integer":             true,
	"float":               true,
	"string":              true,
	"concatenated_string": true,
	"true":                true,
	"false":               true,
	"none":                true,
}

func convert(n *sitter.Node, src []byte) *Node {
	out := &Node{
		Line: int(n.StartPoint().Row) + 1,
		Text: n.Content(src),
		Type: n.Type(),
	}

	switch n.Type() {
	case "identifier":
		out.Kind = KindName
		out.Name = out.Text

	case "attribute":
		value := n.ChildByFieldName("object")
		attr := n.ChildByFieldName("attribute")
		if value == nil || attr == nil {
			break
		}
		out.Kind = KindAttribute
		out.Value = convert(value, src)
		out.Name = attr.Content(src)

	case "call":
		fn := n.ChildByFieldName("function")
		if fn == nil {
			break
		}
		out.Kind = KindCall
		out.Func = convert(fn, src)
		args := n.ChildByFieldName("arguments")
		out.Args = convertArgs(args, src)
		// Keyword-argument values never classify, but traversal must still
		// reach patterns nested inside them.
		out.children = convertKeywordValues(args, src)

	case "comparison_operator":
		convertCompare(out, n, src)

	case "parenthesized_expression":
		// Python's own AST has no paren node; unwrap so (q) classifies
		// the same as q.
		if inner := firstNamedChild(n); inner != nil {
			return convert(inner, src)
		}

	default:
		if literalTypes[n.Type()] {
			out.Kind = KindLiteral
			break
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child == nil || child.Type() == "comment" {
				continue
			}
			out.children = append(out.children, convert(child, src))
		}
	}

	return out
}

// convertArgs extracts positional arguments from an argument_list node.
func convertArgs(args *sitter.Node, src []byte) []*Node {
	if args == nil {
		return nil
	}
	var out []*Node
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "keyword_argument", "comment":
			continue
		}
		out = append(out, convert(child, src))
	}
	return out
}

// convertKeywordValues extracts the value expressions of keyword arguments.
func convertKeywordValues(args *sitter.Node, src []byte) []*Node {
	if args == nil {
		return nil
	}
	var out []*Node
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child == nil || child.Type() != "keyword_argument" {
			continue
		}
		if value := child.ChildByFieldName("value"); value != nil {
			out = append(out, convert(value, src))
		}
	}
	return out
}

// convertCompare fills out a KindCompare node. Operands are the named
// children; operator tokens are anonymous children, with the two-token
// forms ("not in", "is not") merged into one symbol so Ops pairs 1:1 with
// Comparators.
func convertCompare(out *Node, n *sitter.Node, src []byte) {
	var operands []*Node
	var ops []string
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.IsNamed() {
			if child.Type() == "comment" {
				continue
			}
			operands = append(operands, convert(child, src))
			continue
		}
		tok := child.Type()
		if len(ops) > 0 && len(ops) > len(operands)-1 {
			// Second token of "not in" / "is not".
			ops[len(ops)-1] += " " + tok
			continue
		}
		ops = append(ops, tok)
	}
	if len(operands) == 0 {
		return
	}
	out.Kind = KindCompare
	out.Left = operands[0]
	out.Comparators = operands[1:]
	out.Ops = ops
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child != nil && child.Type() != "comment" {
			return child
		}
	}
	return nil
}
