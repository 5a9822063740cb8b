// Package flowchart implements the compound hierarchical layout engine used
// by flowchart, state, class, and er diagrams: it builds a compound
// multigraph on pkg/cgraph, expands self-loops, recursively extracts nested
// clusters, runs rank-based positioning on each extracted level, and
// composes everything back into one set of absolute coordinates.
package flowchart

// Point is an absolute (x, y) coordinate.
type Point struct{ X, Y float64 }

// Bounds is an inclusive axis-aligned rectangle.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Union returns the smallest Bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if b.empty() {
		return o
	}
	if o.empty() {
		return b
	}
	return Bounds{
		MinX: min(b.MinX, o.MinX), MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX), MaxY: max(b.MaxY, o.MaxY),
	}
}

func (b Bounds) empty() bool { return b.MinX == 0 && b.MinY == 0 && b.MaxX == 0 && b.MaxY == 0 }

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// LayoutNode is a positioned leaf node.
type LayoutNode struct {
	ID                string
	CenterX, CenterY  float64
	Width, Height     float64
	LabelWidth        float64
	LabelHeight       float64
	IsCluster         bool
}

// LayoutCluster is a positioned, sized cluster (subgraph).
type LayoutCluster struct {
	ID                     string
	CenterX, CenterY       float64
	Width, Height          float64
	Direction              string
	TitleWidth, TitleHeight float64
	// Diff is how far title-widening moved the rectangle's left edge
	// relative to the unmodified member-union left edge.
	Diff float64
	// OffsetY is the vertical offset from the rectangle's top to the
	// first non-title row.
	OffsetY float64
}

// LayoutEdge is a positioned edge: an ID pair, an optional cluster
// annotation on either endpoint, a polyline, and optional label geometry.
type LayoutEdge struct {
	ID          string
	From, To    string
	FromCluster string
	ToCluster   string
	Points      []Point
	HasLabel    bool
	LabelX, LabelY float64
	LabelWidth, LabelHeight float64
	StartMarker string
	EndMarker   string
}

// Layout is the full output of the compound hierarchical layout engine.
type Layout struct {
	Nodes    []LayoutNode
	Clusters []LayoutCluster
	Edges    []LayoutEdge
	Bounds   Bounds
}

// NodeByID looks up a positioned leaf node.
func (l *Layout) NodeByID(id string) (LayoutNode, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return LayoutNode{}, false
}

// ClusterByID looks up a positioned cluster.
func (l *Layout) ClusterByID(id string) (LayoutCluster, bool) {
	for _, c := range l.Clusters {
		if c.ID == id {
			return c, true
		}
	}
	return LayoutCluster{}, false
}
