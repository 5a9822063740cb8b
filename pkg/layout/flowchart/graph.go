package flowchart

import (
	"github.com/merman-go/merman/pkg/cgraph"
	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/rendererr"
)

// buildState carries everything accumulated while translating a
// FlowchartModel into a scratch [cgraph.Graph], and threaded through the
// remaining construction steps.
type buildState struct {
	model  *diagram.FlowchartModel
	config diagram.Config

	g *cgraph.Graph

	// clusterDir memoizes each subgraph's resolved layout direction so step
	// 4 only walks the ancestor chain once per cluster.
	clusterDir map[string]diagram.Direction

	// helperNodes lists the self-loop label nodes created in step 1, so
	// sizing treats them as zero-footprint.
	helperNodes map[string]bool

	// anchorUsed tracks which cluster members have already been chosen as
	// an edge anchor, so repeated edges into the same cluster fan out
	// across distinct members instead of stacking on one node.
	anchorUsed map[string]bool

	// consumedEdges tracks edges already embedded in some cluster's own
	// sub-layout, so the top-level composition does not also try to route
	// them between root ancestors.
	consumedEdges map[cgraph.EdgeKey]bool
}

// newBuildState validates vertex calls and edge endpoints, and seeds the
// scratch graph with one node per leaf and one node per cluster placeholder.
func newBuildState(model *diagram.FlowchartModel, config diagram.Config) (*buildState, error) {
	bs := &buildState{
		model:       model,
		config:      config,
		g:           cgraph.New(nil),
		clusterDir:  make(map[string]diagram.Direction),
		helperNodes: make(map[string]bool),
	}

	declared := make(map[string]bool, len(model.Nodes))
	for _, n := range model.Nodes {
		declared[n.ID] = true
	}
	for _, id := range model.VertexCalls {
		if !declared[id] {
			return nil, rendererr.NewInvalidModel("edge endpoint %q has no matching node declaration", id)
		}
	}

	// Node insertion order feeds straight into cgraph's nodeOrder, which
	// AssignLayers walks verbatim, so it is a behavioral contract rather than
	// an implementation detail: it governs rank/row tie-breaking for any node
	// that is a member of more than one subgraph. Subgraph (cluster)
	// placeholders go in first, in reverse declaration order, then leaf
	// nodes in declaration order, then any vertex-call entry not already
	// covered by a Node declaration.
	for i := len(model.Subgraphs) - 1; i >= 0; i-- {
		sg := model.Subgraphs[i]
		if !bs.g.HasNode(sg.ID) {
			if err := bs.g.SetNode(cgraph.Node{ID: sg.ID, Kind: cgraph.NodeKindAuxiliary}); err != nil {
				return nil, rendererr.NewInvalidModel("duplicate subgraph %q", sg.ID)
			}
		}
	}

	for _, n := range model.Nodes {
		w, h, lw, lh := nodeSize(n, config)
		if err := bs.g.SetNode(cgraph.Node{
			ID: n.ID,
			Label: cgraph.Label{
				"width": w, "height": h,
				"labelWidth": lw, "labelHeight": lh,
				"shape": n.Shape,
			},
		}); err != nil {
			return nil, rendererr.NewInvalidModel("duplicate node %q", n.ID)
		}
	}

	for _, id := range model.VertexCalls {
		if bs.g.HasNode(id) {
			continue
		}
		if err := bs.g.SetNode(cgraph.Node{ID: id}); err != nil {
			return nil, rendererr.NewInvalidModel("duplicate node %q", id)
		}
	}

	for _, e := range model.Edges {
		for _, id := range []string{e.From, e.To} {
			if !bs.g.HasNode(id) {
				return nil, rendererr.NewInvalidModel("edge %q endpoint %q has no matching node or subgraph", e.ID, id)
			}
		}
	}

	// Parent assignment happens only once every node exists, still walked in
	// reverse declaration order so that a node listed as a child of more
	// than one subgraph keeps last-writer-wins semantics.
	for i := len(model.Subgraphs) - 1; i >= 0; i-- {
		sg := model.Subgraphs[i]
		for _, childID := range sg.Children {
			if err := bs.g.SetParent(childID, sg.ID); err != nil {
				return nil, rendererr.NewInvalidModel("subgraph %q: %v", sg.ID, err)
			}
		}
	}

	return bs, nil
}

// resolveClusterDir returns a subgraph's effective layout direction:
// explicit Dir wins outright, otherwise it inherits the parent's direction
// (toggled, unless flowchart.inheritDir is set, in which case it is copied
// verbatim), falling back to the diagram's toggled direction at the root.
// A cycle in the parent chain (which [cgraph.Graph.SetParent] should already
// prevent) falls back to the toggled diagram direction defensively.
func (bs *buildState) resolveClusterDir(id string) diagram.Direction {
	if d, ok := bs.clusterDir[id]; ok {
		return d
	}
	// Mark in-progress to guard against an unexpected cycle in the parent
	// chain; SetParent already rejects these, so this only protects against
	// a data race in that invariant.
	bs.clusterDir[id] = bs.model.Direction.Toggle()

	sg, ok := bs.model.SubgraphByID(id)
	if !ok {
		return bs.model.Direction.Toggle()
	}
	if sg.Dir != nil {
		bs.clusterDir[id] = *sg.Dir
		return *sg.Dir
	}

	parent := bs.g.Parent(id)
	if parent == "" {
		d := bs.model.Direction.Toggle()
		bs.clusterDir[id] = d
		return d
	}

	parentDir := bs.resolveClusterDir(parent)
	d := parentDir
	if !bs.config.Bool("flowchart.inheritDir", false) {
		d = parentDir.Toggle()
	}
	bs.clusterDir[id] = d
	return d
}
