package svg

import (
	"bytes"
	"fmt"
	"math"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/layout/simple"
)

// RenderPie turns a computed pie Layout into an SVG string: one <path>
// wedge per slice (as an SVG arc command), a legend row per slice to the
// right of the circle when ShowData is set.
func RenderPie(l *simple.PieLayout, model *diagram.PieModel, config diagram.Config, opts Options, lookup OverrideLookup) string {
	if config == nil {
		config = diagram.DefaultConfig()
	}
	legendWidth := 0.0
	if model.ShowData {
		legendWidth = 160
	}
	bounds := Bounds{0, 0, l.Width + legendWidth, l.Height}
	viewBox, maxWidth := ResolveViewport(bounds, opts.ViewboxPadding, opts.DiagramID, lookup)

	var buf bytes.Buffer
	writeSVGOpen(&buf, "pie-"+opts.DiagramID, viewBox, maxWidth, config.Bool("useMaxWidth", true), "", "")

	for i, s := range l.Slices {
		writePieSlice(&buf, l, s, i)
	}
	if model.ShowData {
		for i, s := range l.Slices {
			y := 20 + float64(i)*24
			fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="12" height="12" class="pieLegend%d"/><text x="%s" y="%s">%s (%s%%)</text>`+"\n",
				FormatNumber(l.Width+10), FormatNumber(y), i,
				FormatNumber(l.Width+28), FormatNumber(y+10), EscapeLabel(s.Label), FormatNumber(math.Round(s.Percent*10)/10))
		}
	}
	if model.Title != "" {
		fmt.Fprintf(&buf, `<text x="%s" y="%s" class="pieTitleText">%s</text>`+"\n",
			FormatNumber(l.CenterX), FormatNumber(l.Height-10), EscapeLabel(model.Title))
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}

func writePieSlice(buf *bytes.Buffer, l *simple.PieLayout, s simple.PieSlice, index int) {
	x0 := l.CenterX + l.Radius*math.Sin(s.StartAngle)
	y0 := l.CenterY - l.Radius*math.Cos(s.StartAngle)
	x1 := l.CenterX + l.Radius*math.Sin(s.EndAngle)
	y1 := l.CenterY - l.Radius*math.Cos(s.EndAngle)
	largeArc := 0
	if s.EndAngle-s.StartAngle > math.Pi {
		largeArc = 1
	}
	fmt.Fprintf(buf, `<path class="pieCircle pieCircle%d" d="M%s,%s L%s,%s A%s,%s 0 %d 1 %s,%s Z"/>`+"\n",
		index, FormatNumber(l.CenterX), FormatNumber(l.CenterY),
		FormatNumber(x0), FormatNumber(y0), FormatNumber(l.Radius), FormatNumber(l.Radius), largeArc,
		FormatNumber(x1), FormatNumber(y1))
	fmt.Fprintf(buf, `<text x="%s" y="%s" class="slice">%s</text>`+"\n",
		FormatNumber(s.LabelX), FormatNumber(s.LabelY), EscapeLabel(s.Label))
}

// RenderKanban turns a computed kanban Layout into an SVG string: one
// column rectangle with its title, then each column's stacked cards.
func RenderKanban(l *simple.KanbanLayout, config diagram.Config, opts Options, lookup OverrideLookup) string {
	if config == nil {
		config = diagram.DefaultConfig()
	}
	bounds := Bounds{0, 0, l.Width, l.Height}
	viewBox, maxWidth := ResolveViewport(bounds, opts.ViewboxPadding, opts.DiagramID, lookup)

	var buf bytes.Buffer
	writeSVGOpen(&buf, "kanban-"+opts.DiagramID, viewBox, maxWidth, config.Bool("useMaxWidth", true), "", "")

	for _, col := range l.Columns {
		fmt.Fprintf(&buf, `<g class="kanban-column" id=%q><rect x="%s" y="0" width="%s" height="%s" class="kanban-column-bg"/><text x="%s" y="20">%s</text>`,
			col.ID, FormatNumber(col.X), FormatNumber(col.Width), FormatNumber(l.Height), FormatNumber(col.X+8), EscapeLabel(col.Title))
		for _, c := range col.Cards {
			x, y := c.CenterX-c.Width/2, c.CenterY-c.Height/2
			fmt.Fprintf(&buf, `<g class="kanban-card" id=%q><rect x="%s" y="%s" width="%s" height="%s" rx="4" ry="4"/><text x="%s" y="%s">%s</text></g>`,
				c.ID, FormatNumber(x), FormatNumber(y), FormatNumber(c.Width), FormatNumber(c.Height),
				FormatNumber(c.CenterX), FormatNumber(c.CenterY), EscapeLabel(c.Label))
		}
		buf.WriteString("</g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}

// RenderGantt turns a computed gantt Layout into an SVG string: one bar
// per task (status-classed done/active/crit), grouped under their
// section's band, plus the chart title.
func RenderGantt(l *simple.GanttLayout, model *diagram.GanttModel, config diagram.Config, opts Options, lookup OverrideLookup) string {
	if config == nil {
		config = diagram.DefaultConfig()
	}
	bounds := Bounds{0, 0, l.Width, l.Height}
	viewBox, maxWidth := ResolveViewport(bounds, opts.ViewboxPadding, opts.DiagramID, lookup)

	var buf bytes.Buffer
	writeSVGOpen(&buf, "gantt-"+opts.DiagramID, viewBox, maxWidth, config.Bool("useMaxWidth", true), "", "")

	for _, b := range l.Bars {
		class := "task"
		switch {
		case b.Done:
			class = "task done"
		case b.Critical:
			class = "task crit"
		case b.Active:
			class = "task active"
		}
		fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="3" ry="3" class=%q/><text x="%s" y="%s">%s</text>`+"\n",
			FormatNumber(b.X), FormatNumber(b.Y), FormatNumber(b.Width), FormatNumber(b.Height), class,
			FormatNumber(b.X+5), FormatNumber(b.Y+b.Height/1.5), EscapeLabel(b.Label))
	}
	for _, s := range l.Sections {
		if s.Title == "" {
			continue
		}
		fmt.Fprintf(&buf, `<text x="5" y="%s" class="sectionTitle">%s</text>`+"\n",
			FormatNumber((s.Top+s.Bottom)/2), EscapeLabel(s.Title))
	}
	if model.Title != "" {
		fmt.Fprintf(&buf, `<text x="%s" y="20" class="ganttTitle">%s</text>`+"\n", FormatNumber(l.Width/2), EscapeLabel(model.Title))
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}

// RenderMindmap turns a computed mindmap Layout into an SVG string: one
// connector line from each node to its parent, then the node shapes and
// labels.
func RenderMindmap(l *simple.MindmapLayout, config diagram.Config, opts Options, lookup OverrideLookup) string {
	if config == nil {
		config = diagram.DefaultConfig()
	}
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	byID := make(map[string]simple.MindmapNode, len(l.Nodes))
	for _, n := range l.Nodes {
		byID[n.ID] = n
		minX, minY = math.Min(minX, n.CenterX-n.Width/2), math.Min(minY, n.CenterY-n.Height/2)
		maxX, maxY = math.Max(maxX, n.CenterX+n.Width/2), math.Max(maxY, n.CenterY+n.Height/2)
	}
	bounds := Bounds{minX, minY, maxX, maxY}
	viewBox, maxWidth := ResolveViewport(bounds, opts.ViewboxPadding, opts.DiagramID, lookup)

	var buf bytes.Buffer
	writeSVGOpen(&buf, "mindmap-"+opts.DiagramID, viewBox, maxWidth, config.Bool("useMaxWidth", true), "", "")

	for _, n := range l.Nodes {
		if n.ParentID == "" {
			continue
		}
		p, ok := byID[n.ParentID]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, `<path class="mindmap-edge" d="M%s,%s L%s,%s" fill="none"/>`+"\n",
			FormatNumber(p.CenterX), FormatNumber(p.CenterY), FormatNumber(n.CenterX), FormatNumber(n.CenterY))
	}
	for _, n := range l.Nodes {
		fmt.Fprintf(&buf, `<g class="mindmap-node" id=%q transform="translate(%s, %s)">`,
			n.ID, FormatNumber(n.CenterX), FormatNumber(n.CenterY))
		writeShape(&buf, n.Shape, n.Width, n.Height)
		fmt.Fprintf(&buf, `<text>%s</text></g>`+"\n", EscapeLabel(n.Label))
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}
