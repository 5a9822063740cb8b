package cgraph_test

import (
	"testing"

	"github.com/merman-go/merman/pkg/cgraph"
)

func TestSetNodeDuplicateID(t *testing.T) {
	g := cgraph.New(nil)
	if err := g.SetNode(cgraph.Node{ID: "a"}); err != nil {
		t.Fatalf("SetNode: %v", err)
	}
	if err := g.SetNode(cgraph.Node{ID: "a"}); err != cgraph.ErrDuplicateNodeID {
		t.Fatalf("SetNode duplicate = %v, want ErrDuplicateNodeID", err)
	}
}

func TestSetEdgeNamedMultigraph(t *testing.T) {
	g := cgraph.New(nil)
	g.SetNode(cgraph.Node{ID: "a"})
	g.SetNode(cgraph.Node{ID: "b"})

	if err := g.SetEdgeNamed("a", "b", "one", nil); err != nil {
		t.Fatal(err)
	}
	if err := g.SetEdgeNamed("a", "b", "two", nil); err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if g.OutDegree("a") != 2 {
		t.Fatalf("OutDegree(a) = %d, want 2", g.OutDegree("a"))
	}
}

func TestSetParentForestInvariant(t *testing.T) {
	g := cgraph.New(nil)
	for _, id := range []string{"root", "mid", "leaf"} {
		g.SetNode(cgraph.Node{ID: id})
	}
	if err := g.SetParent("mid", "root"); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParent("leaf", "mid"); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParent("root", "leaf"); err != cgraph.ErrCyclicParentage {
		t.Fatalf("SetParent cycle = %v, want ErrCyclicParentage", err)
	}
	if got := g.Children("root"); len(got) != 1 || got[0] != "mid" {
		t.Fatalf("Children(root) = %v", got)
	}
}

func TestRemoveNodeCleansEdgesAndParentage(t *testing.T) {
	g := cgraph.New(nil)
	g.SetNode(cgraph.Node{ID: "a"})
	g.SetNode(cgraph.Node{ID: "b"})
	g.SetEdge("a", "b", nil)
	g.SetParent("b", "a")

	g.RemoveNode("a")
	if g.HasNode("a") {
		t.Fatal("expected a to be removed")
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	if g.Parent("b") != "" {
		t.Fatalf("Parent(b) = %q, want empty", g.Parent("b"))
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	g := cgraph.New(nil)
	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		g.SetNode(cgraph.Node{ID: id})
	}
	got := cgraph.NodeIDs(g.Nodes())
	for i, id := range ids {
		if got[i] != id {
			t.Fatalf("Nodes()[%d] = %q, want %q (insertion order must be preserved)", i, got[i], id)
		}
	}
}

func TestValidateDetectsCycle(t *testing.T) {
	g := cgraph.New(nil)
	g.SetNode(cgraph.Node{ID: "a", Row: 0})
	g.SetNode(cgraph.Node{ID: "b", Row: 1})
	g.SetEdge("a", "b", nil)
	g.SetEdge("b", "a", nil)

	if err := g.Validate(); err == nil {
		t.Fatal("expected an error for a cyclic graph")
	}
}
