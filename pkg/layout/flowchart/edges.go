package flowchart

import (
	"fmt"

	"github.com/merman-go/merman/pkg/cgraph"
	"github.com/merman-go/merman/pkg/diagram"
)

// routedEdge links a declared flowchart edge (or one segment of an expanded
// self-loop chain) to the concrete, anchored key it was inserted into the
// scratch graph under, so point composition can look positions up directly
// instead of re-deriving the anchor resolution from IDs.
type routedEdge struct {
	edge        diagram.Edge
	key         cgraph.EdgeKey
	fromCluster string
	toCluster   string
	// loopNode and loopSegment are set when this routedEdge is one segment
	// of an expanded self-loop chain (loopSegment 0..2); the emitted
	// LayoutEdge for a self-loop is built once, from segment 2, using
	// loopNode's ID as its reported From and To. reportID carries the
	// user-declared edge ID through the chain, since each segment's own
	// edge.ID is one of the synthetic selfLoopKey constants.
	loopNode    string
	loopSegment int
	reportID    string
}

// insertEdges adds every non-self-loop edge (and the pre-expanded self-loop
// chains) to the scratch graph, each keyed by its declared ID so parallel
// edges between the same pair of nodes stay distinct. Every edge is first
// inserted with its declared (un-anchored) endpoints; a second pass then
// removes and re-inserts the edges that touch a cluster, substituting the
// resolved anchor. The edge is re-inserted even when the anchor equals the
// declared endpoint, because what matters is the edge's position in
// edgeOrder: this pass always pushes cluster-touching edges to the end of
// iteration order, which in turn drives tie-breaking during cycle-breaking.
// Returns the routing record for every inserted edge, in first-pass
// insertion order (declared edges, then self-loop chain segments); the
// re-insertion pass does not reorder this slice.
func (bs *buildState) insertEdges(edges []diagram.Edge, loops []selfLoopEdge) []routedEdge {
	var routed []routedEdge

	for _, e := range edges {
		routed = append(routed, bs.insertOneEdge(e, "", -1, ""))
	}
	for _, loop := range loops {
		chain := expandSelfLoop(loop)
		for _, hn := range []string{chain.node1, chain.node2} {
			if !bs.g.HasNode(hn) {
				bs.g.SetNode(cgraph.Node{ID: hn, Kind: cgraph.NodeKindAuxiliary})
				bs.helperNodes[hn] = true
			}
		}
		for i, ce := range chain.edges {
			routed = append(routed, bs.insertOneEdge(ce, loop.node, i, loop.edge.ID))
		}
	}

	for i, r := range routed {
		from, fromCluster := bs.anchor(r.edge.From)
		to, toCluster := bs.anchor(r.edge.To)
		if fromCluster == "" && toCluster == "" {
			continue
		}
		label, ok := bs.g.EdgeByKey(r.key)
		if !ok {
			continue
		}
		bs.g.RemoveEdgeKey(r.key)
		if err := bs.g.SetEdgeNamed(from, to, r.key.Name, label.Label); err != nil {
			// from/to are guaranteed present by construction; anchor() only
			// ever returns IDs already inserted into bs.g.
			panic(err)
		}
		routed[i].key = cgraph.EdgeKey{From: from, To: to, Name: r.key.Name}
		routed[i].fromCluster = fromCluster
		routed[i].toCluster = toCluster
	}

	return routed
}

func (bs *buildState) insertOneEdge(e diagram.Edge, loopNode string, loopSegment int, reportID string) routedEdge {
	minLen := e.MinLen
	if minLen < 1 {
		minLen = 1
	}
	lw, lh := edgeLabelSize(e, bs.config)

	label := cgraph.Label{
		"id": e.ID, "minlen": minLen, "weight": 1,
		"label": e.Label, "hasLabel": e.HasLabel, "labelKind": e.LabelKind,
		"labelWidth": lw, "labelHeight": lh,
		"startMarker": e.StartMarker, "endMarker": e.EndMarker,
		"style": e.Style,
	}
	name := e.ID
	if name == "" {
		name = fmt.Sprintf("%s->%s#%d", e.From, e.To, len(bs.g.EdgeKeys()))
	}
	if err := bs.g.SetEdgeNamed(e.From, e.To, name, label); err != nil {
		// e.From/e.To are guaranteed present by construction: every edge
		// endpoint resolves to a declared node or vertex-call entry.
		panic(err)
	}
	return routedEdge{
		edge: e, key: cgraph.EdgeKey{From: e.From, To: e.To, Name: name},
		loopNode: loopNode, loopSegment: loopSegment, reportID: reportID,
	}
}

// anchor resolves id to a concrete graph node suitable as an edge endpoint:
// if id names a leaf node it is returned unchanged, otherwise (id names a
// cluster) the cluster's deepest non-cluster descendant is used instead,
// preferring a descendant that does not already anchor another cluster
// edge, so that repeated edges into the same cluster fan out across
// distinct members rather than stacking on one node. Returns the resolved
// ID and, when redirected, the original cluster ID.
func (bs *buildState) anchor(id string) (resolved, cluster string) {
	if !bs.model.IsCluster(id) {
		return id, ""
	}
	candidates := bs.deepestMembers(id, 0)
	for _, c := range candidates {
		if !bs.anchorUsed[c] {
			bs.markAnchorUsed(c)
			return c, id
		}
	}
	if len(candidates) > 0 {
		bs.markAnchorUsed(candidates[0])
		return candidates[0], id
	}
	return id, ""
}

func (bs *buildState) markAnchorUsed(id string) {
	if bs.anchorUsed == nil {
		bs.anchorUsed = make(map[string]bool)
	}
	bs.anchorUsed[id] = true
}

// deepestMembers walks down through nested clusters to the leaf-node
// members of id, depth-first in declared order, stopping recursion at
// depth 10. Cluster extraction itself applies no such limit.
func (bs *buildState) deepestMembers(id string, depth int) []string {
	if depth >= 10 {
		return nil
	}
	sg, ok := bs.model.SubgraphByID(id)
	if !ok {
		return []string{id}
	}
	var out []string
	for _, childID := range sg.Children {
		if bs.model.IsCluster(childID) {
			out = append(out, bs.deepestMembers(childID, depth+1)...)
		} else {
			out = append(out, childID)
		}
	}
	return out
}
