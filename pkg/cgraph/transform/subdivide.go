package transform

import (
	"fmt"

	"github.com/merman-go/merman/pkg/cgraph"
)

// Subdivide breaks edges that span more than one row into a chain of
// single-row edges connected by synthetic [cgraph.NodeKindSubdivider] nodes,
// so that every edge the rank-based ordering/positioning step sees connects
// adjacent rows.
//
//	Before: a (row 0) -> d (row 3)          [spans 3 rows]
//	After:  a -> a_sub_1 -> a_sub_2 -> d    [3 single-row edges]
//
// Each subdivider's MasterID links back to the node whose edge it subdivides,
// so the SVG emitter can route the chain as one continuous polyline instead
// of drawing the intermediate nodes. Only the edge's Name and Label survive
// on the final segment (the one entering the original target); intermediate
// segments carry no label.
//
// Subdividers receive IDs "master_sub_row", with a numeric "__N" suffix on
// collision. Panics if g is nil; no-op on an empty graph. O(V*D) where D is
// the row count.
func Subdivide(g *cgraph.Graph) {
	gen := newIDGen(g.Nodes())

	var toRemove []cgraph.EdgeKey
	for _, key := range g.EdgeKeys() {
		e, _ := g.EdgeByKey(key)
		src, srcOK := g.Node(e.From)
		dst, dstOK := g.Node(e.To)
		if !srcOK || !dstOK || dst.Row <= src.Row+1 {
			continue
		}

		toRemove = append(toRemove, key)
		prevID := src.ID
		for row := src.Row + 1; row < dst.Row; row++ {
			prevID = addSubdivider(g, gen, prevID, src.ID, row)
		}
		if err := g.SetEdgeNamed(prevID, dst.ID, e.Name, e.Label); err != nil {
			panic(err)
		}
	}

	for _, key := range toRemove {
		g.RemoveEdgeKey(key)
	}
}

func addSubdivider(g *cgraph.Graph, gen *idGen, from, master string, row int) string {
	id := gen.next(master, row)
	if err := g.SetNode(cgraph.Node{
		ID:       id,
		Row:      row,
		Kind:     cgraph.NodeKindSubdivider,
		MasterID: master,
	}); err != nil {
		panic(err)
	}
	if err := g.SetEdge(from, id, nil); err != nil {
		panic(err)
	}
	return id
}

type idGen struct {
	used map[string]struct{}
}

func newIDGen(nodes []*cgraph.Node) *idGen {
	m := make(map[string]struct{}, len(nodes)*2)
	for _, n := range nodes {
		m[n.ID] = struct{}{}
	}
	return &idGen{used: m}
}

func (gen *idGen) next(base string, row int) string {
	prefix := fmt.Sprintf("%s_sub_%d", base, row)
	id := prefix
	for i := 1; ; i++ {
		if _, exists := gen.used[id]; !exists {
			gen.used[id] = struct{}{}
			return id
		}
		id = fmt.Sprintf("%s__%d", prefix, i)
	}
}
