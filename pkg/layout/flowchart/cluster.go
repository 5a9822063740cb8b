package flowchart

import (
	"github.com/merman-go/merman/pkg/cgraph"
	"github.com/merman-go/merman/pkg/cgraph/transform"
	"github.com/merman-go/merman/pkg/diagram"
)

// clusterResult is the outcome of laying out one cluster independently of
// its parent: the sized placeholder to feed back into the parent graph, and
// the fully positioned member layout to compose once the parent's own
// positions are known.
type clusterResult struct {
	id             string
	dir            diagram.Direction
	width, height  float64
	minX, minY     float64
	titleW, titleH float64
	offsetY        float64
	members        *rankLayout
	memberSize     func(id string) (float64, float64)
	memberG        *cgraph.Graph
	children       []*clusterResult
}

// extractAndLayoutClusters lays out every cluster from the deepest nesting
// level upward (at any depth: unlike [buildState.deepestMembers], extraction
// applies no depth-10 cutoff), so that
// by the time a cluster's own layout runs, every nested cluster it contains
// has already been resolved.
//
// A cluster is classified pure if any edge has exactly one endpoint among
// its descendants -- i.e. it is not fully self-contained. A pure cluster is
// never extracted: its members stay transparent and flow straight into
// whatever scope contains it (another cluster's own sub-layout, or the root
// graph), so the boundary-crossing edge connects the real endpoints instead
// of a placeholder. A cluster with no such edge is isolated into its own
// scratch [cgraph.Graph], laid out independently of everything outside it,
// and its bounding box is fed back as the size of a placeholder node
// standing in for the whole cluster in the parent's graph.
func (bs *buildState) extractAndLayoutClusters() (map[string]*clusterResult, map[string]bool) {
	pure := bs.classifyPureClusters()
	results := make(map[string]*clusterResult)

	for _, sg := range bs.subgraphsDeepestFirst() {
		if pure[sg.ID] {
			continue
		}
		results[sg.ID] = bs.layoutOneCluster(sg, results, pure)
	}
	return results, pure
}

// subgraphsDeepestFirst returns every declared subgraph ordered by Parent()
// chain depth descending, so a subgraph nested inside another always
// precedes it.
func (bs *buildState) subgraphsDeepestFirst() []diagram.Subgraph {
	order := append([]diagram.Subgraph(nil), bs.model.Subgraphs...)
	depthOf := func(id string) int {
		d := 0
		for p := bs.g.Parent(id); p != ""; p = bs.g.Parent(p) {
			d++
		}
		return d
	}
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if depthOf(order[j].ID) > depthOf(order[i].ID) {
				order[i], order[j] = order[j], order[i]
			}
		}
	}
	return order
}

// classifyPureClusters marks every subgraph that has at least one declared
// edge with exactly one endpoint among its own member nodes -- not the
// subgraph ID itself, which is a reference to the cluster as a whole and is
// handled by cluster-edge anchoring instead. A self-loop never qualifies
// (its From and To are the same ID).
func (bs *buildState) classifyPureClusters() map[string]bool {
	pure := make(map[string]bool)
	for _, sg := range bs.model.Subgraphs {
		for _, e := range bs.model.Edges {
			inFrom := e.From != sg.ID && bs.isDescendant(e.From, sg.ID)
			inTo := e.To != sg.ID && bs.isDescendant(e.To, sg.ID)
			if inFrom != inTo {
				pure[sg.ID] = true
				break
			}
		}
	}
	return pure
}

// isDescendant reports whether id is sg (the loop includes id itself) or a
// descendant of it by Parent() chain.
func (bs *buildState) isDescendant(id, sg string) bool {
	for cur := id; cur != ""; cur = bs.g.Parent(cur) {
		if cur == sg {
			return true
		}
	}
	return false
}

// frontierOf expands ids, substituting any pure (transparent) cluster with
// its own frontier recursively, so the result only ever contains leaf nodes
// and collapsed (non-pure) cluster placeholders -- the set of IDs that
// actually get a node of their own in whatever scope is being built.
func (bs *buildState) frontierOf(ids []string, pure map[string]bool) []string {
	var out []string
	for _, id := range ids {
		if pure[id] {
			if sg, ok := bs.model.SubgraphByID(id); ok {
				out = append(out, bs.frontierOf(sg.Children, pure)...)
				continue
			}
		}
		out = append(out, id)
	}
	return out
}

// frontierAnchor resolves id to the node that actually represents it within
// the scope bounded by stopAt (the enclosing cluster ID, or "" for the root
// graph): walking up through transparent (pure) ancestors, stopping at the
// first collapsed ancestor (which absorbs id into its placeholder) or at
// the scope boundary (where id itself is the frontier member, since every
// ancestor up to there was transparent).
func (bs *buildState) frontierAnchor(id string, collapsed map[string]*clusterResult, stopAt string) string {
	for cur := id; ; {
		p := bs.g.Parent(cur)
		if p == "" || p == stopAt {
			return id
		}
		if _, ok := collapsed[p]; ok {
			return p
		}
		cur = p
	}
}

func (bs *buildState) layoutOneCluster(sg diagram.Subgraph, already map[string]*clusterResult, pure map[string]bool) *clusterResult {
	dir := bs.resolveClusterDir(sg.ID)
	nodeSpacing := bs.config.Float("flowchart.nodeSpacing", 50)
	rankSpacing := bs.config.Float("flowchart.rankSpacing", 50)

	sub := cgraph.New(nil)
	var children []*clusterResult
	sizeOf := make(map[string][2]float64)

	for _, childID := range bs.frontierOf(sg.Children, pure) {
		if childRes, ok := already[childID]; ok {
			sub.SetNode(cgraph.Node{ID: childID, Kind: cgraph.NodeKindAuxiliary})
			sizeOf[childID] = [2]float64{childRes.width, childRes.height}
			children = append(children, childRes)
			continue
		}
		if n, ok := bs.g.Node(childID); ok {
			sub.SetNode(cgraph.Node{ID: childID})
			w, _ := n.Label["width"].(float64)
			h, _ := n.Label["height"].(float64)
			sizeOf[childID] = [2]float64{w, h}
		}
	}

	for _, key := range bs.g.EdgeKeys() {
		if bs.consumedEdges[key] {
			continue
		}
		if !bs.isDescendant(key.From, sg.ID) || !bs.isDescendant(key.To, sg.ID) {
			continue
		}
		af := bs.frontierAnchor(key.From, already, sg.ID)
		at := bs.frontierAnchor(key.To, already, sg.ID)
		if af == at || !sub.HasNode(af) || !sub.HasNode(at) {
			continue
		}
		e, _ := bs.g.EdgeByKey(key)
		if err := sub.SetEdgeNamed(af, at, e.Name, e.Label); err == nil {
			bs.markConsumed(key)
		}
	}
	bs.rankSubgraph(sub, dir)

	along := func(id string) (a, c float64) {
		s := sizeOf[id]
		if horizontal(dir) {
			return s[1], s[0]
		}
		return s[0], s[1]
	}
	rl := computeRankLayout(sub, along, nodeSpacing, rankSpacing)

	titleW, titleH := subgraphTitleSize(sg, bs.config)
	padding := bs.config.Float("flowchart.padding", 8)

	minX, minY, maxX, maxY := boundsOf(sub, rl, sizeOf, dir)
	width := (maxX - minX) + padding*2
	height := (maxY - minY) + padding*2 + bs.config.SubGraphTitleTotalMargin()
	offsetY := padding + bs.config.SubGraphTitleTotalMargin()/2
	if titleW+padding*2 > width {
		width = titleW + padding*2
	}
	if titleH > 0 {
		height += titleH
		offsetY += titleH
	}

	return &clusterResult{
		id: sg.ID, dir: dir, width: width, height: height,
		minX: minX, minY: minY,
		titleW: titleW, titleH: titleH, offsetY: offsetY,
		members: rl, memberSize: func(id string) (float64, float64) { return sizeOf[id][0], sizeOf[id][1] },
		memberG:  sub,
		children: children,
	}
}

func (bs *buildState) markConsumed(key cgraph.EdgeKey) {
	if bs.consumedEdges == nil {
		bs.consumedEdges = make(map[cgraph.EdgeKey]bool)
	}
	bs.consumedEdges[key] = true
}

func horizontal(d diagram.Direction) bool { return d == diagram.DirLR || d == diagram.DirRL }

// rankSubgraph breaks cycles and assigns rows within an extracted cluster's
// scratch graph, consistent with the cluster's own resolved direction.
func (bs *buildState) rankSubgraph(sub *cgraph.Graph, dir diagram.Direction) {
	transform.BreakCycles(sub)
	transform.AssignLayers(sub)
	transform.Subdivide(sub)
	_ = dir // row 0 is always the start of the rank axis; direction only
	// affects which screen axis rows map onto, applied during coordinate
	// composition (localXY).
}

func boundsOf(g *cgraph.Graph, rl *rankLayout, sizeOf map[string][2]float64, dir diagram.Direction) (minX, minY, maxX, maxY float64) {
	first := true
	for _, n := range g.Nodes() {
		w, h := sizeOf[n.ID][0], sizeOf[n.ID][1]
		cx, cy := rl.centerX[n.ID], rl.centerY[n.ID]
		if horizontal(dir) {
			cx, cy = cy, cx
			w, h = h, w
		}
		x0, y0, x1, y1 := cx-w/2, cy-h/2, cx+w/2, cy+h/2
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			continue
		}
		minX, minY = min(minX, x0), min(minY, y0)
		maxX, maxY = max(maxX, x1), max(maxY, y1)
	}
	return
}

// composePureClusters computes a rectangle for every pure cluster once the
// root layout has placed its actual members (absolute already holds every
// leaf and collapsed-cluster position). Processed deepest-first so a pure
// cluster nested inside another already has its own rectangle available
// when its parent's union is computed.
//
// Unlike a recursively-extracted cluster's placeholder, which reserves its
// title margin by shifting its own members down when it first sizes itself
// (layoutOneCluster's offsetY), a pure cluster's members were already
// placed by the root rank layout and must not move: the rectangle instead
// grows upward and outward by the full title margin around the existing
// content.
func (bs *buildState) composePureClusters(pure map[string]bool, absolute map[string]Point, absClusters map[string]*LayoutCluster) {
	padding := bs.config.Float("flowchart.padding", 8)
	margin := bs.config.SubGraphTitleTotalMargin()

	for _, sg := range bs.subgraphsDeepestFirst() {
		if !pure[sg.ID] {
			continue
		}

		var minX, minY, maxX, maxY float64
		first := true
		grow := func(x0, y0, x1, y1 float64) {
			if first {
				minX, minY, maxX, maxY = x0, y0, x1, y1
				first = false
				return
			}
			minX, minY = min(minX, x0), min(minY, y0)
			maxX, maxY = max(maxX, x1), max(maxY, y1)
		}

		for _, childID := range sg.Children {
			if lc, ok := absClusters[childID]; ok {
				grow(lc.CenterX-lc.Width/2, lc.CenterY-lc.Height/2, lc.CenterX+lc.Width/2, lc.CenterY+lc.Height/2)
				continue
			}
			p, ok := absolute[childID]
			if !ok {
				continue
			}
			var w, h float64
			if n, ok := bs.model.NodeByID(childID); ok {
				w, h, _, _ = nodeSize(n, bs.config)
			}
			grow(p.X-w/2, p.Y-h/2, p.X+w/2, p.Y+h/2)
		}
		if first {
			continue
		}

		titleW, titleH := subgraphTitleSize(sg, bs.config)

		rectMinX, rectMaxX := minX-padding, maxX+padding
		rectMinY := minY - padding - margin - titleH
		rectMaxY := maxY + padding

		var diff float64
		if w := rectMaxX - rectMinX; titleW+padding*2 > w {
			extra := (titleW + padding*2 - w) / 2
			rectMinX -= extra
			rectMaxX += extra
			diff = extra
		}

		absClusters[sg.ID] = &LayoutCluster{
			ID:         sg.ID,
			Diff:       diff,
			CenterX:    (rectMinX + rectMaxX) / 2,
			CenterY:    (rectMinY + rectMaxY) / 2,
			Width:      rectMaxX - rectMinX,
			Height:     rectMaxY - rectMinY,
			Direction:  string(bs.resolveClusterDir(sg.ID)),
			TitleWidth: titleW, TitleHeight: titleH,
			OffsetY: padding + margin + titleH,
		}
	}
}
