package svg

import (
	"bytes"
	"fmt"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/layout/flowchart"
)

// RenderFlowchart turns a computed flowchart/state/class/er Layout into an
// SVG string. Element order is fixed: <defs> -> cluster rectangles -> edge
// paths -> edge labels -> nodes, matching the reference renderer's own
// paint order (edges must sit visually beneath node shapes).
func RenderFlowchart(l *flowchart.Layout, model *diagram.FlowchartModel, config diagram.Config, opts Options, lookup OverrideLookup) string {
	if config == nil {
		config = diagram.DefaultConfig()
	}
	padding := opts.ViewboxPadding
	bounds := Bounds{l.Bounds.MinX, l.Bounds.MinY, l.Bounds.MaxX, l.Bounds.MaxY}
	viewBox, maxWidth := ResolveViewport(bounds, padding, opts.DiagramID, lookup)

	var buf bytes.Buffer
	writeSVGOpen(&buf, "flowchart-"+opts.DiagramID, viewBox, maxWidth, config.Bool("useMaxWidth", true), model.AccTitle, model.AccDescr)
	buf.WriteString(defsFor("flowchart"))

	if opts.IncludeClusters {
		for _, c := range l.Clusters {
			title := ""
			if sg, ok := model.SubgraphByID(c.ID); ok {
				title = sg.Title
			}
			writeClusterRect(&buf, c, title)
		}
	}
	if opts.IncludeEdges {
		for _, e := range l.Edges {
			writeEdgePath(&buf, e)
		}
		for _, e := range l.Edges {
			if e.HasLabel {
				writeEdgeLabel(&buf, e, opts.IncludeEdgeIDLabels)
			}
		}
	}
	if opts.IncludeNodes {
		for _, n := range l.Nodes {
			node, _ := model.NodeByID(n.ID)
			writeFlowchartNode(&buf, n, node)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}

func writeSVGOpen(buf *bytes.Buffer, id, viewBox, maxWidth string, useMaxWidth bool, accTitle, accDescr string) {
	fmt.Fprintf(buf, `<svg id=%q xmlns="http://www.w3.org/2000/svg"`, id)
	if useMaxWidth {
		buf.WriteString(` width="100%"`)
		fmt.Fprintf(buf, ` style="max-width: %spx; background-color: white;"`, maxWidth)
	}
	fmt.Fprintf(buf, ` viewBox=%q`, viewBox)
	if accTitle != "" {
		buf.WriteString(` aria-labelledby="chart-title"`)
	}
	if accDescr != "" {
		buf.WriteString(` aria-describedby="chart-desc"`)
	}
	buf.WriteString(">\n")
	if accTitle != "" {
		fmt.Fprintf(buf, `<title id="chart-title">%s</title>`+"\n", EscapeLabel(accTitle))
	}
	if accDescr != "" {
		fmt.Fprintf(buf, `<desc id="chart-desc">%s</desc>`+"\n", EscapeLabel(accDescr))
	}
}

func writeClusterRect(buf *bytes.Buffer, c flowchart.LayoutCluster, title string) {
	x, y := c.CenterX-c.Width/2, c.CenterY-c.Height/2
	fmt.Fprintf(buf, `<g class="cluster" id=%q><rect x="%s" y="%s" width="%s" height="%s" rx="5" ry="5"/>`,
		c.ID, FormatNumber(x), FormatNumber(y), FormatNumber(c.Width), FormatNumber(c.Height))
	if title != "" {
		fmt.Fprintf(buf, `<text x="%s" y="%s" class="clusterTitle">%s</text>`,
			FormatNumber(c.CenterX), FormatNumber(y+c.TitleHeight), EscapeLabel(title))
	}
	buf.WriteString("</g>\n")
}

func markerRef(kind string) string {
	switch diagram.MarkerKind(kind) {
	case diagram.MarkerArrow:
		return "point"
	case diagram.MarkerCross:
		return "cross"
	case diagram.MarkerCircle:
		return "circle"
	default:
		return ""
	}
}

func writeEdgePath(buf *bytes.Buffer, e flowchart.LayoutEdge) {
	if len(e.Points) == 0 {
		return
	}
	fmt.Fprintf(buf, `<path id="%s" class="edge" d="M%s,%s`, e.ID, FormatNumber(e.Points[0].X), FormatNumber(e.Points[0].Y))
	for _, p := range e.Points[1:] {
		fmt.Fprintf(buf, "L%s,%s", FormatNumber(p.X), FormatNumber(p.Y))
	}
	buf.WriteString(`" fill="none"`)
	if ref := markerRef(e.StartMarker); ref != "" {
		fmt.Fprintf(buf, ` marker-start="url(#flowchart-%sStart)"`, ref)
	}
	if ref := markerRef(e.EndMarker); ref != "" {
		fmt.Fprintf(buf, ` marker-end="url(#flowchart-%sEnd)"`, ref)
	}
	buf.WriteString("/>\n")
}

func writeEdgeLabel(buf *bytes.Buffer, e flowchart.LayoutEdge, includeID bool) {
	fmt.Fprintf(buf, `<g class="edgeLabel" transform="translate(%s, %s)">`,
		FormatNumber(e.LabelX-e.LabelWidth/2), FormatNumber(e.LabelY-e.LabelHeight/2))
	if includeID {
		fmt.Fprintf(buf, `<title>%s</title>`, EscapeXML(e.ID))
	}
	buf.WriteString("</g>\n")
}

func writeFlowchartNode(buf *bytes.Buffer, n flowchart.LayoutNode, node diagram.Node) {
	fmt.Fprintf(buf, `<g class="node" id=%q transform="translate(%s, %s)">`,
		n.ID, FormatNumber(n.CenterX), FormatNumber(n.CenterY))
	writeShape(buf, node.Shape, n.Width, n.Height)
	buf.WriteString(`<g class="label"><foreignObject>`)
	buf.WriteString(EscapeLabel(node.Label))
	buf.WriteString(`</foreignObject></g>`)
	buf.WriteString("</g>\n")
}

func writeShape(buf *bytes.Buffer, shape diagram.Shape, w, h float64) {
	hw, hh := w/2, h/2
	switch shape {
	case diagram.ShapeDiamond:
		fmt.Fprintf(buf, `<polygon points="0,%s %s,0 0,%s %s,0" class="label-container"/>`,
			FormatNumber(hh), FormatNumber(hw), FormatNumber(-hh), FormatNumber(-hw))
	case diagram.ShapeCircle:
		fmt.Fprintf(buf, `<circle r="%s" class="label-container"/>`, FormatNumber(hw))
	case diagram.ShapeStadium:
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" class="label-container"/>`,
			FormatNumber(-hw), FormatNumber(-hh), FormatNumber(w), FormatNumber(h), FormatNumber(hh), FormatNumber(hh))
	case diagram.ShapeRound:
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="5" ry="5" class="label-container"/>`,
			FormatNumber(-hw), FormatNumber(-hh), FormatNumber(w), FormatNumber(h))
	default:
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" class="label-container"/>`,
			FormatNumber(-hw), FormatNumber(-hh), FormatNumber(w), FormatNumber(h))
	}
}
