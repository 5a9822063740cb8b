package flowchart

import (
	"fmt"

	"github.com/merman-go/merman/pkg/cgraph"
	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/rendererr"
	"github.com/merman-go/merman/pkg/telemetry"
)

// Build runs the compound hierarchical layout engine's full pipeline over a
// flowchart/state/class/er model and returns every node, cluster, and edge
// placed in one shared coordinate space.
//
// The pipeline: (1) pre-expand self-loops into synthetic label-node chains,
// (2) size every label, (3) build a scratch compound graph honoring
// last-writer-wins subgraph membership, (4) resolve each cluster's layout
// direction, (5) insert edges, then re-anchor the ones touching a cluster,
// (6) classify every cluster pure (has an edge crossing its boundary) or
// collapsible, recursively and independently laying out only the
// collapsible ones depth-first -- a pure cluster stays transparent and its
// members flow straight into whichever scope contains it, (7) lay out the
// remaining graph (the root scope's frontier: top-level leaves, collapsed
// cluster placeholders, and every pure cluster's members) against the
// now-sized placeholders, (8) compose every nested layout's local
// coordinates into one absolute space, then size every pure cluster's
// rectangle from its members' final positions, (9) snap edge endpoints to
// each node's visible shape outline, and (10) finalize cluster rectangles.
func Build(model *diagram.FlowchartModel, config diagram.Config) (*Layout, error) {
	if config == nil {
		config = diagram.DefaultConfig()
	}

	stopLoops := telemetry.Active().Phase("expand self-loops")
	edges, loops := extractSelfLoops(model.Edges)
	stopLoops()

	stopGraph := telemetry.Active().Phase("build graph")
	bs, err := newBuildState(model, config)
	if err != nil {
		return nil, err
	}
	routed := bs.insertEdges(edges, loops)
	stopGraph()

	stopClusters := telemetry.Active().Phase("extract clusters")
	clusterResults, pureClusters := bs.extractAndLayoutClusters()
	stopClusters()

	stopPlace := telemetry.Active().Phase("place graph")
	topGraph, topSize := bs.buildTopGraph(clusterResults, pureClusters)
	bs.rankSubgraph(topGraph, model.Direction)

	nodeSpacing := config.Float("flowchart.nodeSpacing", 50)
	rankSpacing := config.Float("flowchart.rankSpacing", 50)
	along := func(id string) (a, c float64) {
		s := topSize[id]
		if horizontal(model.Direction) {
			return s[1], s[0]
		}
		return s[0], s[1]
	}
	topRL := computeRankLayout(topGraph, along, nodeSpacing, rankSpacing)
	minX, minY, _, _ := boundsOf(topGraph, topRL, topSize, model.Direction)
	stopPlace()

	stopOutput := telemetry.Active().Phase("build output")
	defer stopOutput()

	out := &Layout{}
	absolute := make(map[string]Point)
	absClusters := make(map[string]*LayoutCluster)

	padding := config.Float("flowchart.padding", 8)
	composeTop(topGraph, topRL, topSize, model.Direction, -minX, -minY, padding, clusterResults, absolute, absClusters, out)

	bs.composePureClusters(pureClusters, absolute, absClusters)

	bs.composeEdges(routed, absolute, absClusters, out)

	for _, n := range model.Nodes {
		p, ok := absolute[n.ID]
		if !ok {
			return nil, rendererr.NewInvalidModel("node %q never received a layout position", n.ID)
		}
		w, h, lw, lh := nodeSize(n, config)
		out.Nodes = append(out.Nodes, LayoutNode{
			ID: n.ID, CenterX: p.X, CenterY: p.Y,
			Width: w, Height: h, LabelWidth: lw, LabelHeight: lh,
		})
		out.Bounds = out.Bounds.Union(Bounds{p.X - w/2, p.Y - h/2, p.X + w/2, p.Y + h/2})
	}
	for _, lc := range absClusters {
		out.Clusters = append(out.Clusters, *lc)
		out.Bounds = out.Bounds.Union(Bounds{
			lc.CenterX - lc.Width/2, lc.CenterY - lc.Height/2,
			lc.CenterX + lc.Width/2, lc.CenterY + lc.Height/2,
		})
	}

	return out, nil
}

// buildTopGraph assembles the root-level scratch graph: every root-scope
// frontier member (top-level leaf/helper nodes, collapsed top-level cluster
// placeholders, and -- transitively -- the frontier of any top-level pure
// cluster, since a pure cluster never gets a node of its own), and every
// edge whose endpoints resolve to two different frontier members and was
// not already embedded in some cluster's own sub-layout.
func (bs *buildState) buildTopGraph(results map[string]*clusterResult, pure map[string]bool) (*cgraph.Graph, map[string][2]float64) {
	top := cgraph.New(nil)
	size := make(map[string][2]float64)

	var rootChildren []string
	for _, n := range bs.g.Nodes() {
		if bs.g.Parent(n.ID) == "" {
			rootChildren = append(rootChildren, n.ID)
		}
	}

	for _, id := range bs.frontierOf(rootChildren, pure) {
		if top.HasNode(id) {
			continue
		}
		if cr, ok := results[id]; ok {
			top.SetNode(cgraph.Node{ID: id, Kind: cgraph.NodeKindAuxiliary})
			size[id] = [2]float64{cr.width, cr.height}
			continue
		}
		n, ok := bs.g.Node(id)
		if !ok {
			continue
		}
		top.SetNode(cgraph.Node{ID: id, Kind: n.Kind})
		w, _ := n.Label["width"].(float64)
		h, _ := n.Label["height"].(float64)
		size[id] = [2]float64{w, h}
	}

	for i, key := range bs.g.EdgeKeys() {
		if bs.consumedEdges[key] {
			continue
		}
		rf, rt := bs.frontierAnchor(key.From, results, ""), bs.frontierAnchor(key.To, results, "")
		if rf == rt {
			// Both endpoints resolve to the same frontier member (they were
			// absorbed by the same collapsed ancestor cluster, connecting
			// two of its own nested sub-clusters at different depths): it is
			// left out of the top-level rank graph. composeEdges still emits
			// it as a straight run between its endpoints' final positions.
			continue
		}
		e, _ := bs.g.EdgeByKey(key)
		name := fmt.Sprintf("%s#%d", e.Name, i)
		top.SetEdgeNamed(rf, rt, name, e.Label)
	}

	return top, size
}

// composeTop walks the top-level rank layout, translating every node by
// (dx, dy) and recursing into any cluster placeholder to compose its own
// member layout relative to the placeholder's absolute position.
func composeTop(g *cgraph.Graph, rl *rankLayout, size map[string][2]float64, dir diagram.Direction, dx, dy, padding float64, results map[string]*clusterResult, absolute map[string]Point, absClusters map[string]*LayoutCluster, out *Layout) {
	for _, n := range g.Nodes() {
		lx, ly := localXY(rl, n.ID, dir)
		x, y := lx+dx, ly+dy
		if cr, ok := results[n.ID]; ok {
			composeCluster(cr, x-cr.width/2, y-cr.height/2, padding, results, absolute, absClusters)
			continue
		}
		absolute[n.ID] = Point{x, y}
	}
}

// composeCluster places every member of cr relative to the cluster's own
// absolute top-left corner (originX, originY), recursing into nested
// cluster placeholders. padding is the flowchart.padding value every
// cluster's own layout used when it sized itself in [buildState.layoutOneCluster].
func composeCluster(cr *clusterResult, originX, originY, padding float64, results map[string]*clusterResult, absolute map[string]Point, absClusters map[string]*LayoutCluster) {
	contentDX := originX + padding - cr.minX
	contentDY := originY + cr.offsetY - cr.minY

	for _, n := range cr.memberG.Nodes() {
		lx, ly := localXY(cr.members, n.ID, cr.dir)
		x, y := lx+contentDX, ly+contentDY
		if child, ok := results[n.ID]; ok {
			composeCluster(child, x-child.width/2, y-child.height/2, padding, results, absolute, absClusters)
			continue
		}
		absolute[n.ID] = Point{x, y}
	}

	absClusters[cr.id] = &LayoutCluster{
		ID: cr.id, CenterX: originX + cr.width/2, CenterY: originY + cr.height/2,
		Width: cr.width, Height: cr.height, Direction: string(cr.dir),
		TitleWidth: cr.titleW, TitleHeight: cr.titleH, OffsetY: cr.offsetY,
	}
}

func localXY(rl *rankLayout, id string, dir diagram.Direction) (x, y float64) {
	if horizontal(dir) {
		return rl.centerY[id], rl.centerX[id]
	}
	return rl.centerX[id], rl.centerY[id]
}

// composeEdges builds one LayoutEdge per declared edge (collapsing each
// self-loop's 3-segment expansion back into a single reported edge) and
// appends them to out.
//
// Each polyline is a straight run from the resolved source to the resolved
// destination, snapped at both ends to the node's visible shape outline
// (or, when the declared endpoint was a cluster, to the cluster's own
// rectangle). Long edges that were subdivided across several ranks inside
// their sub- or top-level layout are not routed back through their
// intermediate waypoints -- this is a deliberate simplification, documented
// as a known fidelity gap rather than a bug.
func (bs *buildState) composeEdges(routed []routedEdge, absolute map[string]Point, absClusters map[string]*LayoutCluster, out *Layout) {
	selfLoopSeen := make(map[string]bool)

	for _, r := range routed {
		if r.loopNode != "" {
			if r.loopSegment != 2 || selfLoopSeen[r.loopNode] {
				continue
			}
			selfLoopSeen[r.loopNode] = true
			bs.emitSelfLoopEdge(r, absolute, absClusters, out)
			continue
		}
		bs.emitEdge(r, absolute, absClusters, out)
	}
}

func (bs *buildState) emitEdge(r routedEdge, absolute map[string]Point, absClusters map[string]*LayoutCluster, out *Layout) {
	fromPt, okF := absolute[r.key.From]
	toPt, okT := absolute[r.key.To]
	if !okF || !okT {
		return
	}

	start := bs.boundaryPoint(r.key.From, r.fromCluster, toPt, absolute, absClusters)
	end := bs.boundaryPoint(r.key.To, r.toCluster, fromPt, absolute, absClusters)

	lw, labelH := edgeLabelSize(r.edge, bs.config)
	var labelX, labelY float64
	if r.edge.HasLabel {
		labelX, labelY = (start.X+end.X)/2, (start.Y+end.Y)/2
	}

	out.Edges = append(out.Edges, LayoutEdge{
		ID: r.edge.ID, From: r.edge.From, To: r.edge.To,
		FromCluster: r.fromCluster, ToCluster: r.toCluster,
		Points:      []Point{start, end},
		HasLabel:    r.edge.HasLabel,
		LabelX:      labelX, LabelY: labelY,
		LabelWidth:  lw, LabelHeight: labelH,
		StartMarker: string(r.edge.StartMarker), EndMarker: string(r.edge.EndMarker),
	})
}

func (bs *buildState) emitSelfLoopEdge(r routedEdge, absolute map[string]Point, absClusters map[string]*LayoutCluster, out *Layout) {
	if _, ok := absolute[r.loopNode]; !ok {
		return
	}
	n1, ok1 := absolute[node1ID(r.loopNode)]
	n2, ok2 := absolute[node2ID(r.loopNode)]
	if !ok1 || !ok2 {
		return
	}

	leave := bs.boundaryPoint(r.loopNode, "", n1, absolute, absClusters)
	enter := bs.boundaryPoint(r.loopNode, "", n2, absolute, absClusters)

	lw, lh := edgeLabelSize(r.edge, bs.config)
	var labelX, labelY float64
	if r.edge.HasLabel {
		labelX, labelY = n2.X, n2.Y
	}

	out.Edges = append(out.Edges, LayoutEdge{
		ID: r.reportID, From: r.loopNode, To: r.loopNode,
		Points:      []Point{leave, n1, n2, enter},
		HasLabel:    r.edge.HasLabel,
		LabelX:      labelX, LabelY: labelY,
		LabelWidth:  lw, LabelHeight: lh,
		StartMarker: string(r.edge.StartMarker), EndMarker: string(r.edge.EndMarker),
	})
}

// boundaryPoint clips the segment leaving nodeID toward target to the
// node's (or, if cluster != "", the cluster's) visible outline.
func (bs *buildState) boundaryPoint(nodeID, cluster string, target Point, absolute map[string]Point, absClusters map[string]*LayoutCluster) Point {
	if cluster != "" {
		if lc, ok := absClusters[cluster]; ok {
			return rectIntersection(lc.CenterX, lc.CenterY, lc.Width, lc.Height, target)
		}
	}
	center, ok := absolute[nodeID]
	if !ok {
		return target
	}
	n, ok := bs.model.NodeByID(nodeID)
	if !ok {
		return center
	}
	w, h, _, _ := nodeSize(n, bs.config)
	isDiamond := n.Shape == diagram.ShapeDiamond || n.Shape == diagram.ShapeHexagon
	return snapToShapeBoundary([]Point{target}, center.X, center.Y, w, h, isDiamond)
}
