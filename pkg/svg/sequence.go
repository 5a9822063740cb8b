package svg

import (
	"bytes"
	"fmt"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/layout/sequence"
)

// RenderSequence turns a computed sequence Layout into an SVG string. The
// element order is fixed and does not match the other two emitters: notes
// -> block frames -> mirrored bottom actors (empty placeholders for
// actor-man variants, since that glyph paints later) -> top actors ->
// lifelines -> <defs> -> actor-man top glyphs -> activations -> messages
// -> popup menus (none emitted; sequence.forceMenus defaults off) ->
// actor-man bottom glyphs -> title.
func RenderSequence(l *sequence.Layout, model *diagram.SequenceModel, config diagram.Config, opts Options, lookup OverrideLookup) string {
	if config == nil {
		config = diagram.DefaultConfig()
	}
	bounds := Bounds{0, 0, l.Width, l.Height}
	viewBox, maxWidth := ResolveViewport(bounds, opts.ViewboxPadding, opts.DiagramID, lookup)

	var buf bytes.Buffer
	writeSVGOpen(&buf, "sequence-"+opts.DiagramID, viewBox, maxWidth, config.Bool("useMaxWidth", true), "", "")

	for _, n := range l.Notes {
		writeSequenceNote(&buf, n)
	}
	for _, b := range l.Blocks {
		writeSequenceBlock(&buf, b)
	}
	for _, a := range l.Actors {
		if a.Bottom > 0 {
			writeActorGlyphPlaceholder(&buf, a, true)
			writeActorBox(&buf, a, false)
		}
	}
	for _, a := range l.Actors {
		writeActorBox(&buf, a, true)
	}
	for _, a := range l.Actors {
		bottom := a.Bottom
		if bottom == 0 {
			bottom = a.Top + a.Height
		}
		fmt.Fprintf(&buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" class="actor-line"/>`+"\n",
			FormatNumber(a.CenterX), FormatNumber(a.Top+a.Height), FormatNumber(a.CenterX), FormatNumber(bottom))
	}

	buf.WriteString(defsFor("sequence"))

	for _, a := range l.Actors {
		if a.Kind == diagram.ActorMan {
			writeActorManGlyph(&buf, a, true)
		}
	}
	for _, act := range l.Activations {
		fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s" class="activation"/>`+"\n",
			FormatNumber(act.X-act.Width/2), FormatNumber(act.Top), FormatNumber(act.Width), FormatNumber(act.Bottom-act.Top))
	}
	for _, m := range l.Messages {
		writeSequenceMessage(&buf, m)
	}

	for _, a := range l.Actors {
		if a.Bottom > 0 && a.Kind == diagram.ActorMan {
			writeActorManGlyph(&buf, a, false)
		}
	}

	if model.Title != "" {
		fmt.Fprintf(&buf, `<text x="%s" y="25" class="sequenceTitle">%s</text>`+"\n",
			FormatNumber(l.Width/2), EscapeLabel(model.Title))
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}

func writeSequenceNote(buf *bytes.Buffer, n sequence.LayoutNote) {
	x, y := n.CenterX-n.Width/2, n.Y
	fmt.Fprintf(buf, `<g class="note"><rect x="%s" y="%s" width="%s" height="%s"/><text x="%s" y="%s">%s</text></g>`+"\n",
		FormatNumber(x), FormatNumber(y), FormatNumber(n.Width), FormatNumber(n.Height),
		FormatNumber(n.CenterX), FormatNumber(y+n.Height/2), EscapeLabel(n.Text))
}

func writeSequenceBlock(buf *bytes.Buffer, b sequence.LayoutBlock) {
	fmt.Fprintf(buf, `<g class="loop-frame"><rect x="%s" y="%s" width="%s" height="%s" fill="none" class=%q/>`,
		FormatNumber(b.Left), FormatNumber(b.Top), FormatNumber(b.Right-b.Left), FormatNumber(b.Bottom-b.Top), string(b.Kind))
	for _, s := range b.Sections {
		if s.Label == "" {
			continue
		}
		fmt.Fprintf(buf, `<text x="%s" y="%s" class="loopText">%s</text>`,
			FormatNumber(b.Left+5), FormatNumber(s.Y+12), EscapeLabel(s.Label))
	}
	buf.WriteString("</g>\n")
}

func writeActorGlyphPlaceholder(buf *bytes.Buffer, a sequence.LayoutActor, bottom bool) {
	if a.Kind != diagram.ActorMan {
		return
	}
	y := a.Top
	if bottom {
		y = a.Bottom
	}
	fmt.Fprintf(buf, `<g class="actor-man-placeholder" transform="translate(%s, %s)"/>`+"\n",
		FormatNumber(a.CenterX-a.Width/2), FormatNumber(y))
}

func writeActorBox(buf *bytes.Buffer, a sequence.LayoutActor, top bool) {
	if a.Kind == diagram.ActorMan {
		return
	}
	y := a.Top
	if !top && a.Bottom > 0 {
		y = a.Bottom
	}
	fmt.Fprintf(buf, `<g class="actor" id=%q><rect x="%s" y="%s" width="%s" height="%s" rx="3" ry="3"/><text x="%s" y="%s">%s</text></g>`+"\n",
		a.ID, FormatNumber(a.CenterX-a.Width/2), FormatNumber(y), FormatNumber(a.Width), FormatNumber(a.Height),
		FormatNumber(a.CenterX), FormatNumber(y+a.Height/2), EscapeLabel(a.Label))
}

func writeActorManGlyph(buf *bytes.Buffer, a sequence.LayoutActor, top bool) {
	y := a.Top
	if !top {
		y = a.Bottom
	}
	fmt.Fprintf(buf, `<g class="actor-man" id=%q transform="translate(%s, %s)"><text x="0" y="%s">%s</text></g>`+"\n",
		a.ID, FormatNumber(a.CenterX-a.Width/2), FormatNumber(y), FormatNumber(a.Height+14), EscapeLabel(a.Label))
}

func writeSequenceMessage(buf *bytes.Buffer, m sequence.LayoutMessage) {
	class := "messageLine0"
	if m.Arrow == diagram.ArrowDotted || m.Arrow == diagram.ArrowDottedCross || m.Arrow == diagram.ArrowDottedOpen {
		class = "messageLine1"
	}
	marker := ""
	switch m.Arrow {
	case diagram.ArrowSolidCross, diagram.ArrowDottedCross:
		marker = ` marker-end="url(#crosshead)"`
	case diagram.ArrowSolid, diagram.ArrowDotted, diagram.ArrowBidirectional:
		marker = ` marker-end="url(#arrowhead)"`
	}
	fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" class=%q%s/>`+"\n",
		FormatNumber(m.FromX), FormatNumber(m.Y), FormatNumber(m.ToX), FormatNumber(m.Y), class, marker)
	if m.Label != "" {
		mid := (m.FromX + m.ToX) / 2
		fmt.Fprintf(buf, `<text x="%s" y="%s" class="messageText">%s</text>`+"\n",
			FormatNumber(mid), FormatNumber(m.Y-5), EscapeLabel(m.Label))
	}
}
