// Package sequence lays out sequenceDiagram sources: one vertical lifeline
// column per actor, messages as a top-to-bottom line sweep between
// columns, activation bars as thin overlay rectangles on a lifeline, and
// alt/opt/loop/par/critical/break frames as bounding boxes spanning the
// messages and notes they contain.
package sequence

import (
	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/measure"
)

// LayoutActor is a positioned lifeline: the actor glyph's box at the top
// (and mirrored at the bottom, if sequence.mirrorActors), plus the X
// position its vertical lifeline is drawn at.
type LayoutActor struct {
	ID               string
	CenterX          float64
	Top, Bottom      float64 // Y of the top/bottom actor box, if mirrored
	Width, Height    float64
	Label            string
	Kind             diagram.ActorKind
}

// LayoutMessage is one positioned arrow between two lifelines at a given Y.
type LayoutMessage struct {
	FromX, ToX, Y float64
	Label         string
	Arrow         diagram.ArrowKind
	LabelWidth, LabelHeight float64
}

// LayoutActivation is a positioned activation bar overlay on one lifeline.
type LayoutActivation struct {
	ActorID      string
	X            float64
	Top, Bottom  float64
	Width        float64
}

// LayoutNote is a positioned free-floating annotation box.
type LayoutNote struct {
	CenterX, Y    float64
	Width, Height float64
	Text          string
}

// LayoutBlock is a positioned alt/opt/loop/par/critical/break frame.
type LayoutBlock struct {
	Kind     diagram.BlockKind
	Left, Right, Top, Bottom float64
	Sections []LayoutBlockSection
}

// LayoutBlockSection is one labeled divider within a LayoutBlock (the
// original section plus any else/and/option continuations).
type LayoutBlockSection struct {
	Label string
	Y     float64
}

// Layout is the full output of the sequence layout engine.
type Layout struct {
	Actors      []LayoutActor
	Messages    []LayoutMessage
	Activations []LayoutActivation
	Notes       []LayoutNote
	Blocks      []LayoutBlock
	Width, Height float64
}

// columnSpacing is the minimum center-to-center distance between two
// adjacent lifelines: sequence.width is the reference box width a single
// actor reserves. The spacing is the same whether or not either actor has
// an activation bar.
func columnSpacing(cfg diagram.Config) float64 {
	return cfg.Float("sequence.width", 150)
}

// Build runs the line-sweep sequence layout: assign each actor a fixed X
// column, then walk Entries top to bottom assigning each message/note/block
// boundary the next available Y, advancing by sequence.messageMargin after
// a message, by the note's height plus sequence.boxMargin after a note, and
// by sequence.boxMargin after a block boundary.
//
// A Block appears twice in Entries under the same pointer: the first
// sighting opens the frame (its Sections are already fully known at that
// point, since alt/else/and branches are parsed upfront), the second
// sighting closes it at the current Y.
func Build(model *diagram.SequenceModel) *Layout {
	cfg := model.Config
	if cfg == nil {
		cfg = diagram.DefaultConfig()
	}

	spacing := columnSpacing(cfg)
	diagramMarginX := cfg.Float("sequence.diagramMarginX", 50)
	diagramMarginY := cfg.Float("sequence.diagramMarginY", 10)
	actorHeight := cfg.Float("sequence.height", 65)
	messageMargin := cfg.Float("sequence.messageMargin", 35)
	boxMargin := cfg.Float("sequence.boxMargin", 10)
	mirror := cfg.Bool("sequence.mirrorActors", true)
	activationWidth := cfg.Float("sequence.activationWidth", 10)

	columnX := make(map[string]float64, len(model.Actors))
	for i, a := range model.Actors {
		columnX[a.ID] = diagramMarginX + float64(i)*spacing
	}

	out := &Layout{}
	style := measure.Style{FontFamily: cfg.String("fontFamily", ""), FontSize: cfg.Float("sequence.messageFontSize", 16)}

	y := diagramMarginY + actorHeight
	activeActivations := make(map[string]*LayoutActivation)
	var blockStack []*LayoutBlock
	opened := make(map[*diagram.Block]*LayoutBlock)

	for _, entry := range model.Entries {
		switch {
		case entry.Message != nil:
			msg := entry.Message
			fromX, toX := columnX[msg.From], columnX[msg.To]
			lw, lh := 0.0, 0.0
			if msg.Label != "" {
				b := measure.Measure(msg.Label, style)
				lw, lh = b.Width, b.Height
			}
			out.Messages = append(out.Messages, LayoutMessage{
				FromX: fromX, ToX: toX, Y: y, Label: msg.Label, Arrow: msg.Arrow,
				LabelWidth: lw, LabelHeight: lh,
			})

			switch msg.Activation {
			case diagram.ActivationStart:
				act := &LayoutActivation{ActorID: msg.To, X: toX, Top: y, Width: activationWidth}
				activeActivations[msg.To] = act
				out.Activations = append(out.Activations, *act)
			case diagram.ActivationEnd:
				if act, ok := activeActivations[msg.To]; ok {
					for i := range out.Activations {
						if out.Activations[i].ActorID == act.ActorID && out.Activations[i].Top == act.Top {
							out.Activations[i].Bottom = y
						}
					}
					delete(activeActivations, msg.To)
				}
			}

			y += messageMargin

		case entry.Note != nil:
			n := entry.Note
			b := measure.MeasureWrapped(n.Text, style, nil, measure.HtmlLike)
			var cx float64
			if len(n.Actors) == 1 {
				cx = columnX[n.Actors[0]]
			} else if len(n.Actors) >= 2 {
				cx = (columnX[n.Actors[0]] + columnX[n.Actors[len(n.Actors)-1]]) / 2
			}
			out.Notes = append(out.Notes, LayoutNote{CenterX: cx, Y: y, Width: b.Width, Height: b.Height, Text: n.Text})
			y += b.Height + boxMargin

		case entry.Block != nil:
			blk := entry.Block
			if lb, seen := opened[blk]; seen {
				// Second sighting of the same *Block value closes the frame.
				lb.Bottom = y
				out.Blocks = append(out.Blocks, *lb)
				for i := len(blockStack) - 1; i >= 0; i-- {
					if blockStack[i] == lb {
						blockStack = append(blockStack[:i], blockStack[i+1:]...)
						break
					}
				}
				y += boxMargin
			} else {
				lb := &LayoutBlock{Kind: blk.Kind, Top: y}
				for _, s := range blk.Sections {
					lb.Sections = append(lb.Sections, LayoutBlockSection{Label: s.Label, Y: y})
				}
				opened[blk] = lb
				blockStack = append(blockStack, lb)
				y += boxMargin
			}
		}
	}

	for _, act := range activeActivations {
		act.Bottom = y
	}

	minX, maxX := diagramMarginX, diagramMarginX
	for _, a := range model.Actors {
		b := measure.Measure(a.Label, style)
		la := LayoutActor{
			ID: a.ID, CenterX: columnX[a.ID], Top: diagramMarginY,
			Width: b.Width + cfg.Float("sequence.boxTextMargin", 5)*2, Height: actorHeight,
			Label: a.Label, Kind: a.Kind,
		}
		if mirror {
			la.Bottom = y
		}
		out.Actors = append(out.Actors, la)
		if x := columnX[a.ID] + spacing/2; x > maxX {
			maxX = x
		}
		if x := columnX[a.ID] - spacing/2; x < minX {
			minX = x
		}
	}
	finalizeBlockExtents(out, minX, maxX)

	out.Width = maxX + diagramMarginX
	out.Height = y + diagramMarginY
	return out
}

// finalizeBlockExtents gives every captured frame the full lifeline-area
// width, since alt/opt/loop frames in sequence diagrams always span the
// widest extent of the lifelines they cover rather than hugging their
// narrowest message.
func finalizeBlockExtents(out *Layout, left, right float64) {
	for i := range out.Blocks {
		out.Blocks[i].Left = left
		out.Blocks[i].Right = right
	}
}
