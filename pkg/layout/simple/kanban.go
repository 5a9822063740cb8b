package simple

import (
	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/measure"
)

// KanbanCard is one positioned card within its column.
type KanbanCard struct {
	ID, Label, Assigned, Priority string
	CenterX, CenterY, Width, Height float64
}

// KanbanColumn is one positioned column with its stacked cards.
type KanbanColumn struct {
	ID, Title string
	X, Width  float64
	Cards     []KanbanCard
}

// KanbanLayout is the full output of the kanban layout engine.
type KanbanLayout struct {
	Columns       []KanbanColumn
	Width, Height float64
}

// BuildKanban lays out columns left to right at a fixed kanban.sectionWidth,
// stacking each column's cards top to bottom with kanban.nodeSpacing between
// them, starting below the column title plus twice kanban.padding. The
// layout's Height is the tallest such stack, including the spacing after
// its last card; columns carry no height of their own.
func BuildKanban(model *diagram.KanbanModel) *KanbanLayout {
	cfg := model.Config
	if cfg == nil {
		cfg = diagram.DefaultConfig()
	}
	sectionWidth := cfg.Float("kanban.sectionWidth", 200)
	spacing := cfg.Float("kanban.nodeSpacing", 20)
	padding := cfg.Float("kanban.padding", 8)
	style := measure.Style{FontFamily: cfg.String("fontFamily", ""), FontSize: cfg.Float("fontSize", 16)}
	cardWidth := sectionWidth - padding*2

	out := &KanbanLayout{}
	maxHeight := 0.0

	for i, col := range model.Columns {
		x := float64(i) * (sectionWidth + spacing)
		titleBox := measure.Measure(col.Title, style)
		y := padding*2 + titleBox.Height

		lc := KanbanColumn{ID: col.ID, Title: col.Title, X: x, Width: sectionWidth}
		for _, item := range col.Items {
			wrapped := measure.MeasureWrapped(item.Label, style, &cardWidth, measure.HtmlLike)
			h := wrapped.Height + padding*2
			lc.Cards = append(lc.Cards, KanbanCard{
				ID: item.ID, Label: item.Label, Assigned: item.Assigned, Priority: item.Priority,
				CenterX: x + sectionWidth/2, CenterY: y + h/2, Width: cardWidth, Height: h,
			})
			y += h + spacing
		}
		if y > maxHeight {
			maxHeight = y
		}
		out.Columns = append(out.Columns, lc)
	}

	out.Width = float64(len(model.Columns))*sectionWidth + float64(maxInt(len(model.Columns)-1, 0))*spacing
	out.Height = maxHeight
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
