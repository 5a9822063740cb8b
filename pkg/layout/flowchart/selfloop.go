package flowchart

import "github.com/merman-go/merman/pkg/diagram"

// selfLoopEdge is a self-loop (From == To) pulled out of the model's edge
// list before graph construction. Self-loops cannot be expressed as a
// rank-respecting edge (a node is never one rank above itself), so they are
// pre-expanded into a 3-edge chain through two synthetic label nodes and
// re-attached to the real node during point composition.
type selfLoopEdge struct {
	edge diagram.Edge
	node string
}

// node1ID and node2ID name the pair of zero-size helper nodes a self-loop on
// node is expanded through. These names are part of the wire contract for
// the edge-name keys below, not arbitrary.
func node1ID(node string) string { return node + "---" + node + "---1" }
func node2ID(node string) string { return node + "---" + node + "---2" }

// Self-loop expansion keys. The third key's "cyc<lic" is not a typo to fix:
// it matches the key the reference renderer has always used for this edge.
// These keys name the chain's segments inside the scratch graph only: the
// emitted self-loop edge carries its declared ID (routedEdge.reportID), so
// none of them appears in SVG output.
const (
	selfLoopKey0 = "*-cyclic-special-0"
	selfLoopKey1 = "*-cyclic-special-1"
	selfLoopKey2 = "*-cyc<lic-special-2"
)

// extractSelfLoops removes every self-loop edge from edges and returns the
// remaining edges alongside the extracted loops in original order.
func extractSelfLoops(edges []diagram.Edge) ([]diagram.Edge, []selfLoopEdge) {
	var rest []diagram.Edge
	var loops []selfLoopEdge
	for _, e := range edges {
		if e.From == e.To {
			loops = append(loops, selfLoopEdge{edge: e, node: e.From})
			continue
		}
		rest = append(rest, e)
	}
	return rest, loops
}

// selfLoopChain describes the 3 synthetic edges a self-loop expands into,
// keyed so they survive alongside any other parallel edges between the same
// pair of nodes.
type selfLoopChain struct {
	node1, node2 string
	edges        [3]diagram.Edge
}

func expandSelfLoop(loop selfLoopEdge) selfLoopChain {
	n1, n2 := node1ID(loop.node), node2ID(loop.node)
	mk := func(from, to, key string) diagram.Edge {
		return diagram.Edge{
			ID:    key,
			From:  from,
			To:    to,
			Style: loop.edge.Style,
		}
	}
	e0 := mk(loop.node, n1, selfLoopKey0)
	e1 := mk(n1, n2, selfLoopKey1)
	e2 := mk(n2, loop.node, selfLoopKey2)
	e2.Label, e2.HasLabel, e2.LabelKind = loop.edge.Label, loop.edge.HasLabel, loop.edge.LabelKind
	e2.StartMarker, e2.EndMarker = loop.edge.StartMarker, loop.edge.EndMarker
	return selfLoopChain{node1: n1, node2: n2, edges: [3]diagram.Edge{e0, e1, e2}}
}
