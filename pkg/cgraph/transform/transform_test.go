package transform_test

import (
	"testing"

	"github.com/merman-go/merman/pkg/cgraph"
	"github.com/merman-go/merman/pkg/cgraph/transform"
)

func TestAssignLayersLongestPath(t *testing.T) {
	g := cgraph.New(nil)
	for _, id := range []string{"a", "b", "c", "d"} {
		g.SetNode(cgraph.Node{ID: id})
	}
	g.SetEdge("a", "b", nil)
	g.SetEdge("b", "d", nil)
	g.SetEdge("a", "c", nil)
	g.SetEdge("c", "d", nil)

	transform.AssignLayers(g)

	a, _ := g.Node("a")
	d, _ := g.Node("d")
	if a.Row != 0 {
		t.Errorf("a.Row = %d, want 0", a.Row)
	}
	if d.Row != 2 {
		t.Errorf("d.Row = %d, want 2 (longest path a->b->d and a->c->d)", d.Row)
	}
}

func TestBreakCyclesRemovesBackEdges(t *testing.T) {
	g := cgraph.New(nil)
	g.SetNode(cgraph.Node{ID: "a"})
	g.SetNode(cgraph.Node{ID: "b"})
	g.SetEdge("a", "b", nil)
	g.SetEdge("b", "a", nil)

	removed := transform.BreakCycles(g)
	if removed != 1 {
		t.Fatalf("BreakCycles removed %d edges, want 1", removed)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1 after removing the back-edge", g.EdgeCount())
	}
}

func TestSubdivideBreaksLongEdges(t *testing.T) {
	g := cgraph.New(nil)
	g.SetNode(cgraph.Node{ID: "a", Row: 0})
	g.SetNode(cgraph.Node{ID: "d", Row: 3})
	g.SetEdge("a", "d", nil)

	transform.Subdivide(g)

	if g.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4 (a, two subdividers, d)", g.NodeCount())
	}
	for _, row := range []int{0, 1, 2} {
		nodes := g.NodesInRow(row)
		if len(nodes) != 1 {
			t.Fatalf("NodesInRow(%d) has %d nodes, want 1", row, len(nodes))
		}
	}
	for _, e := range g.Edges() {
		src, _ := g.Node(e.From)
		dst, _ := g.Node(e.To)
		if dst.Row != src.Row+1 {
			t.Errorf("edge %s->%s spans rows %d->%d, want adjacent", e.From, e.To, src.Row, dst.Row)
		}
	}
}
