package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.tree")
	defer teardown()
	root := NewNode(1)
	a, b, c := NewNode(2), NewNode(3), NewNode(4)
	root.AddChild(a).AddChild(c)
	root.InsertChildAt(1, b)
	if root.ChildCount() != 3 {
		t.Fatalf("expected 3 children, have %d", root.ChildCount())
	}
	if ch, ok := root.Child(1); !ok || ch != b {
		t.Errorf("expected b at position 1, have %v", ch)
	}
	if root.IndexOfChild(c) != 2 {
		t.Errorf("expected c at position 2, have %d", root.IndexOfChild(c))
	}
	if a.Parent() != root {
		t.Errorf("expected a's parent to be root")
	}
}

func TestNodeIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.tree")
	defer teardown()
	root := NewNode(1)
	a, b := NewNode(2), NewNode(3)
	root.AddChild(a).AddChild(b)
	a.Isolate()
	if a.Parent() != nil {
		t.Errorf("expected isolated node to have no parent")
	}
	if root.ChildCount() != 1 {
		t.Errorf("expected 1 remaining child, have %d", root.ChildCount())
	}
	if root.IndexOfChild(b) != 0 {
		t.Errorf("expected b to move up to position 0")
	}
}

func TestTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.tree")
	defer teardown()
	root := NewNode("r")
	a, b := NewNode("a"), NewNode("b")
	a1 := NewNode("a1")
	root.AddChild(a).AddChild(b)
	a.AddChild(a1)
	var visited []string
	err := TopDown(root, func(n *Node[string], parent *Node[string], pos int) error {
		visited = append(visited, n.Payload)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"r", "a", "a1", "b"}
	if len(visited) != len(want) {
		t.Fatalf("expected %v, have %v", want, visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("expected pre-order %v, have %v", want, visited)
			break
		}
	}
}

func TestTopDownSkipChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.tree")
	defer teardown()
	root := NewNode("r")
	a := NewNode("a")
	a.AddChild(NewNode("a1"))
	root.AddChild(a)
	var visited []string
	_ = TopDown(root, func(n *Node[string], parent *Node[string], pos int) error {
		visited = append(visited, n.Payload)
		if n.Payload == "a" {
			return SkipChildren
		}
		return nil
	})
	if len(visited) != 2 {
		t.Errorf("expected branch below a to be pruned, visited %v", visited)
	}
}

func TestAncestorWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.tree")
	defer teardown()
	root := NewNode("r")
	mid := NewNode("m")
	leaf := NewNode("l")
	root.AddChild(mid)
	mid.AddChild(leaf)
	found := AncestorWith(leaf, func(n *Node[string]) bool { return n.Payload == "r" })
	if found != root {
		t.Errorf("expected to find root, have %v", found)
	}
	if AncestorWith(leaf, func(n *Node[string]) bool { return false }) != nil {
		t.Errorf("expected no match")
	}
	if Root(leaf) != root {
		t.Errorf("expected Root(leaf) == root")
	}
}
