package simple

import (
	"math"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/measure"
)

// MindmapNode is one positioned node of the tree.
type MindmapNode struct {
	ID, Label     string
	Shape         diagram.Shape
	CenterX, CenterY float64
	Width, Height float64
	ParentID      string
	Depth         int
}

// MindmapLayout is the full output of the mindmap layout engine.
type MindmapLayout struct {
	Nodes         []MindmapNode
	Width, Height float64
}

// BuildMindmap places the root at the origin and fans each node's children
// out around it on a ring of radius 150 + 40*depth px (mindmap.padding only
// pads each node's label box), giving each
// child an equal angular share of its own subtree's weight (leaf count) so
// that branches with many descendants claim proportionally more of the
// circle instead of every sibling getting an identical slice.
func BuildMindmap(model *diagram.MindmapModel) *MindmapLayout {
	cfg := model.Config
	if cfg == nil {
		cfg = diagram.DefaultConfig()
	}
	padding := cfg.Float("mindmap.padding", 10)
	style := measure.Style{FontFamily: cfg.String("fontFamily", ""), FontSize: cfg.Float("fontSize", 16)}

	out := &MindmapLayout{}
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)

	var place func(n diagram.MindmapNode, parentID string, depth int, cx, cy, startAngle, sweepAngle float64)
	place = func(n diagram.MindmapNode, parentID string, depth int, cx, cy, startAngle, sweepAngle float64) {
		b := measure.Measure(n.Label, style)
		w, h := b.Width+padding*2, b.Height+padding*2

		out.Nodes = append(out.Nodes, MindmapNode{
			ID: n.ID, Label: n.Label, Shape: n.Shape,
			CenterX: cx, CenterY: cy, Width: w, Height: h,
			ParentID: parentID, Depth: depth,
		})
		minX, minY = math.Min(minX, cx-w/2), math.Min(minY, cy-h/2)
		maxX, maxY = math.Max(maxX, cx+w/2), math.Max(maxY, cy+h/2)

		if len(n.Children) == 0 {
			return
		}
		weights := make([]float64, len(n.Children))
		var total float64
		for i, c := range n.Children {
			weights[i] = subtreeWeight(c)
			total += weights[i]
		}

		radius := 150.0 + float64(depth)*40.0
		angle := startAngle
		for i, c := range n.Children {
			share := sweepAngle
			if total > 0 {
				share = sweepAngle * weights[i] / total
			}
			mid := angle + share/2
			childCX := cx + radius*math.Cos(mid)
			childCY := cy + radius*math.Sin(mid)
			place(c, n.ID, depth+1, childCX, childCY, mid-share/2, share)
			angle += share
		}
	}

	place(model.Root, "", 0, 0, 0, 0, 2*math.Pi)

	if len(out.Nodes) > 0 {
		out.Width = maxX - minX
		out.Height = maxY - minY
	}
	return out
}

// subtreeWeight is the number of leaves under n, used to give bushier
// branches a proportionally wider angular share of their parent's ring.
func subtreeWeight(n diagram.MindmapNode) float64 {
	if len(n.Children) == 0 {
		return 1
	}
	var total float64
	for _, c := range n.Children {
		total += subtreeWeight(c)
	}
	return total
}
