package flowchart

import (
	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/measure"
)

// shapePadding is the extra width/height a shape's outline needs beyond its
// label's bounding box, in px. Diamonds and hexagons need the most room
// because their label must fit inside the inscribed rectangle of an angled
// outline; circles and stadiums need proportionally less.
var shapePadding = map[diagram.Shape]struct{ X, Y float64 }{
	diagram.ShapeRectangle:  {0, 0},
	diagram.ShapeRound:      {0, 0},
	diagram.ShapeStadium:    {20, 0},
	diagram.ShapeCircle:     {40, 40},
	diagram.ShapeDiamond:    {40, 40},
	diagram.ShapeHexagon:    {40, 0},
	diagram.ShapeSubroutine: {16, 0},
	diagram.ShapeCylinder:   {0, 18},
	diagram.ShapeFork:       {0, 0},
}

// nodeSize is the fully sized footprint of a leaf node: the wrapped label
// box plus the base flowchart padding plus the shape's own outline
// allowance. Fork/join bars ignore the label entirely and use a fixed
// thin-bar footprint sized from state.padding.
func nodeSize(n diagram.Node, cfg diagram.Config) (width, height, labelW, labelH float64) {
	if n.Shape == diagram.ShapeFork {
		statePad := cfg.Float("state.padding", 8)
		return statePad, statePad * 4, 0, 0
	}

	style := labelStyle(cfg)
	text := measure.NonEmptyLabel(n.Label)

	var maxWidth *float64
	if cfg.Bool("flowchart.htmlLabels", true) {
		w := cfg.Float("flowchart.wrappingWidth", 200)
		maxWidth = &w
	}
	wrapMode := measure.HtmlLike
	if !cfg.Bool("flowchart.htmlLabels", true) {
		wrapMode = measure.SvgLike
	}

	wrapped := measure.MeasureWrapped(text, style, maxWidth, wrapMode)
	labelW, labelH = wrapped.Width, wrapped.Height

	padding := cfg.Float("flowchart.padding", 8)
	pad := shapePadding[n.Shape]

	width = labelW + padding*2 + pad.X
	height = labelH + padding*2 + pad.Y

	switch n.Shape {
	case diagram.ShapeCircle:
		if width < height {
			width = height
		} else {
			height = width
		}
	case diagram.ShapeDiamond:
		// The label must fit in the rhombus's inscribed rectangle, which is
		// half the outer bounding box on each axis.
		width = labelW*2 + padding*2
		height = labelH*2 + padding*2
	}

	// Height-parity: subroutine/cylinder shapes drawn alongside rectangular
	// siblings in the same row read oddly if their height is off by a
	// single px from rounding; bump to even.
	if n.Shape == diagram.ShapeSubroutine || n.Shape == diagram.ShapeCylinder {
		if int(height)%2 != 0 {
			height++
		}
	}

	return width, height, labelW, labelH
}

func labelStyle(cfg diagram.Config) measure.Style {
	return measure.Style{
		FontFamily: cfg.String("fontFamily", `"trebuchet ms", verdana, arial, sans-serif`),
		FontSize:   cfg.Float("fontSize", 16),
		FontWeight: cfg.String("fontWeight", "normal"),
	}
}

// edgeLabelSize measures an edge's inline label as a single unwrapped line
// (measure.Measure), with no shape padding.
func edgeLabelSize(e diagram.Edge, cfg diagram.Config) (width, height float64) {
	if !e.HasLabel || e.Label == "" {
		return 0, 0
	}
	style := labelStyle(cfg)
	w := measure.Measure(e.Label, style)
	return w.Width, w.Height
}

// subgraphTitleSize measures a cluster's title bar.
func subgraphTitleSize(s diagram.Subgraph, cfg diagram.Config) (width, height float64) {
	if s.Title == "" {
		return 0, 0
	}
	style := labelStyle(cfg)
	b := measure.Measure(s.Title, style)
	return b.Width, b.Height
}
