package pyast

import (
	"context"
	"testing"
)

func mustParse(t *testing.T, src string) *Node {
	t.Helper()
	root, err := Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) error = %v, want nil", src, err)
	}
	return root
}

// findKind returns the first node of the given kind in pre-order.
func findKind(n *Node, kind Kind) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == kind {
		return n
	}
	for _, child := range n.Children() {
		if found := findKind(child, kind); found != nil {
			return found
		}
	}
	return nil
}

func TestParse_Call(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "a.in_(my_query)")

	call := findKind(root, KindCall)
	if call == nil {
		t.Fatal("no call node found")
	}
	if call.Line != 1 {
		t.Errorf("call.Line = %d, want 1", call.Line)
	}
	if call.Func == nil || call.Func.Kind != KindAttribute {
		t.Fatalf("call.Func = %+v, want attribute", call.Func)
	}
	if call.Func.Name != "in_" {
		t.Errorf("call.Func.Name = %q, want %q", call.Func.Name, "in_")
	}
	if call.Func.Value == nil || call.Func.Value.Kind != KindName || call.Func.Value.Name != "a" {
		t.Errorf("call.Func.Value = %+v, want name 'a'", call.Func.Value)
	}
	if len(call.Args) != 1 {
		t.Fatalf("len(call.Args) = %d, want 1", len(call.Args))
	}
	if call.Args[0].Kind != KindName || call.Args[0].Name != "my_query" {
		t.Errorf("call.Args[0] = %+v, want name 'my_query'", call.Args[0])
	}
}

func TestParse_KeywordArgumentsExcluded(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "f(x, y, key=1)")

	call := findKind(root, KindCall)
	if call == nil {
		t.Fatal("no call node found")
	}
	if len(call.Args) != 2 {
		t.Fatalf("len(call.Args) = %d, want 2 (keyword argument excluded)", len(call.Args))
	}
	if call.Args[0].Name != "x" || call.Args[1].Name != "y" {
		t.Errorf("positional args = %q, %q, want x, y", call.Args[0].Name, call.Args[1].Name)
	}
}

func TestParse_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		src             string
		wantOps         []string
		wantComparators int
	}{
		{
			name:            "single pair",
			src:             "a == b",
			wantOps:         []string{"=="},
			wantComparators: 1,
		},
		{
			name:            "chained",
			src:             "a == b == c",
			wantOps:         []string{"==", "=="},
			wantComparators: 2,
		},
		{
			name:            "mixed operators",
			src:             "a < b != c",
			wantOps:         []string{"<", "!="},
			wantComparators: 2,
		},
		{
			name:            "two token operators merge",
			src:             "a not in b",
			wantOps:         []string{"not in"},
			wantComparators: 1,
		},
		{
			name:            "is not",
			src:             "a is not b",
			wantOps:         []string{"is not"},
			wantComparators: 1,
		},
	}

	for _, tt := range tests {
		tt := tt // capture range variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := mustParse(t, tt.src)
			cmp := findKind(root, KindCompare)
			if cmp == nil {
				t.Fatal("no compare node found")
			}
			if cmp.Left == nil || cmp.Left.Name != "a" {
				t.Errorf("cmp.Left = %+v, want name 'a'", cmp.Left)
			}
			if len(cmp.Ops) != len(tt.wantOps) {
				t.Fatalf("len(cmp.Ops) = %d, want %d", len(cmp.Ops), len(tt.wantOps))
			}
			for i, op := range tt.wantOps {
				if cmp.Ops[i] != op {
					t.Errorf("cmp.Ops[%d] = %q, want %q", i, cmp.Ops[i], op)
				}
			}
			if len(cmp.Comparators) != tt.wantComparators {
				t.Errorf("len(cmp.Comparators) = %d, want %d", len(cmp.Comparators), tt.wantComparators)
			}
		})
	}
}

func TestParse_ParenthesizedExpressionUnwraps(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "a.in_((my_query))")

	call := findKind(root, KindCall)
	if call == nil || len(call.Args) != 1 {
		t.Fatal("no call with one argument found")
	}
	if call.Args[0].Kind != KindName || call.Args[0].Name != "my_query" {
		t.Errorf("parenthesized arg = %+v, want unwrapped name 'my_query'", call.Args[0])
	}
}

func TestParse_Literals(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "x = 42")
	if lit := findKind(root, KindLiteral); lit == nil {
		t.Error("no literal node for integer")
	}

	// Containers stay Other so traversal reaches their elements.
	root = mustParse(t, "a.in_([1, 2, 3])")
	call := findKind(root, KindCall)
	if call == nil || len(call.Args) != 1 {
		t.Fatal("no call with one argument found")
	}
	if call.Args[0].Kind != KindOther {
		t.Errorf("list arg kind = %v, want Other", call.Args[0].Kind)
	}
}

func TestParse_LineNumbers(t *testing.T) {
	t.Parallel()

	src := "x = 1\n\n\na.in_(my_query)\n"
	root := mustParse(t, src)

	call := findKind(root, KindCall)
	if call == nil {
		t.Fatal("no call node found")
	}
	if call.Line != 4 {
		t.Errorf("call.Line = %d, want 4", call.Line)
	}
}

func TestParse_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse(context.Background(), []byte("def broken(:\n    pass\n"))
	if err == nil {
		t.Error("Parse() error = nil, want syntax error")
	}
}

func TestParse_EmptySource(t *testing.T) {
	t.Parallel()

	root, err := Parse(context.Background(), nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v, want nil", err)
	}
	if root == nil {
		t.Fatal("Parse(nil) returned nil root")
	}
}
