package svg

import (
	"bytes"
	"fmt"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/layout/architecture"
)

// RenderArchitecture turns a computed architecture-beta Layout into an SVG
// string: groups first (so service icons paint on top of their containing
// rectangle), then edges, then services/junctions.
func RenderArchitecture(l *architecture.Layout, config diagram.Config, opts Options, lookup OverrideLookup) string {
	if config == nil {
		config = diagram.DefaultConfig()
	}
	bounds := Bounds{0, 0, l.Width, l.Height}
	viewBox, maxWidth := ResolveViewport(bounds, opts.ViewboxPadding, opts.DiagramID, lookup)

	var buf bytes.Buffer
	writeSVGOpen(&buf, "architecture-"+opts.DiagramID, viewBox, maxWidth, config.Bool("architecture.useMaxWidth", true), "", "")
	buf.WriteString(defsFor("architecture"))

	for _, g := range l.Groups {
		x, y := g.CenterX-g.Width/2, g.CenterY-g.Height/2
		fmt.Fprintf(&buf, `<g class="architecture-group" id=%q><rect x="%s" y="%s" width="%s" height="%s" rx="5" ry="5"/>`,
			g.ID, FormatNumber(x), FormatNumber(y), FormatNumber(g.Width), FormatNumber(g.Height))
		if g.Title != "" {
			fmt.Fprintf(&buf, `<text x="%s" y="%s">%s</text>`, FormatNumber(x+8), FormatNumber(y+16), EscapeLabel(g.Title))
		}
		buf.WriteString("</g>\n")
	}

	if opts.IncludeEdges {
		for _, e := range l.Edges {
			fmt.Fprintf(&buf, `<path id=%q class="architecture-edge" d="M%s,%s L%s,%s" marker-end="url(#architecture-arrowhead)"/>`+"\n",
				e.ID, FormatNumber(e.From.X), FormatNumber(e.From.Y), FormatNumber(e.To.X), FormatNumber(e.To.Y))
			if e.Label != "" {
				mx, my := (e.From.X+e.To.X)/2, (e.From.Y+e.To.Y)/2
				fmt.Fprintf(&buf, `<text x="%s" y="%s" class="architecture-edge-label">%s</text>`+"\n",
					FormatNumber(mx), FormatNumber(my), EscapeLabel(e.Label))
			}
		}
	}

	for _, s := range l.Services {
		x, y := s.CenterX-s.Size/2, s.CenterY-s.Size/2
		class := "architecture-service"
		if s.IsJunction {
			class = "architecture-junction"
		}
		fmt.Fprintf(&buf, `<g class=%q id=%q transform="translate(%s, %s)">`,
			class, s.ID, FormatNumber(x), FormatNumber(y))
		if !s.IsJunction {
			fmt.Fprintf(&buf, `<rect width="%s" height="%s" rx="8" ry="8" class="architecture-icon-bg" data-icon="%s"/>`,
				FormatNumber(s.Size), FormatNumber(s.Size), EscapeXML(s.Icon))
			if s.Title != "" {
				fmt.Fprintf(&buf, `<text x="%s" y="%s" class="architecture-title">%s</text>`,
					FormatNumber(s.Size/2), FormatNumber(s.Size+14), EscapeLabel(s.Title))
			}
		} else {
			fmt.Fprintf(&buf, `<circle cx="%s" cy="%s" r="%s" class="architecture-junction-dot"/>`,
				FormatNumber(s.Size/2), FormatNumber(s.Size/2), FormatNumber(s.Size/2))
		}
		buf.WriteString("</g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}
