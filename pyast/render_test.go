package pyast

import (
	"strings"
	"testing"
)

// synthetic builds nodes without source text so the structural fallback
// path is exercised.
func name(s string) *Node {
	return &Node{Kind: KindName, Name: s}
}

func attr(value *Node, attrName string) *Node {
	return &Node{Kind: KindAttribute, Value: value, Name: attrName}
}

func call(fn *Node, args ...*Node) *Node {
	return &Node{Kind: KindCall, Func: fn, Args: args}
}

func TestRender_PrefersSourceText(t *testing.T) {
	t.Parallel()

	n := &Node{Kind: KindCall, Text: "session.query(X).filter(Y)"}
	if got := Render(n); got != "session.query(X).filter(Y)" {
		t.Errorf("Render() = %q, want source text", got)
	}
}

func TestRender_CollapsesMultilineSource(t *testing.T) {
	t.Parallel()

	n := &Node{Kind: KindCall, Text: "session.query(\n    X,\n).filter(Y)"}
	got := Render(n)
	if strings.ContainsAny(got, "\n\t") {
		t.Errorf("Render() = %q, want single line", got)
	}
}

func TestRender_Structural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "identifier",
			node: name("my_query"),
			want: "my_query",
		},
		{
			name: "attribute chain",
			node: attr(attr(name("obj"), "inner"), "value"),
			want: "obj.inner.value",
		},
		{
			name: "call without args",
			node: call(attr(name("session"), "query")),
			want: "session.query()",
		},
		{
			name: "call with two args",
			node: call(name("f"), name("a"), name("b")),
			want: "f(a, b)",
		},
		{
			name: "call args capped at two",
			node: call(name("f"), name("a"), name("b"), name("c"), name("d")),
			want: "f(a, b, ...)",
		},
		{
			name: "comparison renders first pair only",
			node: &Node{
				Kind:        KindCompare,
				Left:        name("a"),
				Ops:         []string{"==", "=="},
				Comparators: []*Node{name("b"), name("c")},
			},
			want: "a == b",
		},
		{
			name: "unknown shape renders placeholder with grammar type",
			node: &Node{Kind: KindOther, Type: "list"},
			want: "<list>",
		},
		{
			name: "unknown shape without grammar type",
			node: &Node{Kind: KindLiteral},
			want: "<Literal>",
		},
		{
			name: "nil node",
			node: nil,
			want: "<nil>",
		},
	}

	for _, tt := range tests {
		tt := tt // capture range variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Render(tt.node); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Render must terminate and return a non-empty string for every input,
// including trees deeper than the recursion cap.
func TestRender_DeepTreeTerminates(t *testing.T) {
	t.Parallel()

	n := name("base")
	for i := 0; i < maxRenderDepth*4; i++ {
		n = attr(n, "next")
	}

	got := Render(n)
	if got == "" {
		t.Error("Render() returned empty string for deep tree")
	}
}
