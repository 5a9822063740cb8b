// Package simple lays out the diagram kinds whose placement needs no
// graph traversal: pie wedges by cumulative angle, kanban cards by
// column/row grid, gantt bars by day-scale span, and mindmap nodes by
// depth-first radial placement around their parent.
package simple

import (
	"math"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/measure"
)

// PieSlice is one positioned wedge, described as an SVG arc: the path's
// start/end angles in radians (0 pointing up, increasing clockwise) plus
// the label anchor point at pie.textPosition's fraction of the radius.
type PieSlice struct {
	Label          string
	Value, Percent float64
	StartAngle, EndAngle float64
	LabelX, LabelY float64
}

// PieLayout is the full output of the pie layout engine.
type PieLayout struct {
	Slices        []PieSlice
	CenterX, CenterY, Radius float64
	Width, Height float64
}

// BuildPie assigns every slice a contiguous arc proportional to its share
// of the total value, walking clockwise from 12 o'clock, and places each
// label along the bisecting ray at pie.textPosition of the radius (outside
// the wedge for pie.textPosition > 1, inside for <= 1).
func BuildPie(model *diagram.PieModel) *PieLayout {
	cfg := model.Config
	if cfg == nil {
		cfg = diagram.DefaultConfig()
	}
	textPosition := cfg.Float("pie.textPosition", 0.75)

	var total float64
	for _, s := range model.Slices {
		total += s.Value
	}

	radius := 185.0
	cx, cy := radius, radius
	out := &PieLayout{CenterX: cx, CenterY: cy, Radius: radius, Width: radius * 2, Height: radius * 2}

	angle := 0.0
	for _, s := range model.Slices {
		var frac float64
		if total > 0 {
			frac = s.Value / total
		}
		sweep := frac * 2 * math.Pi
		start, end := angle, angle+sweep
		mid := (start + end) / 2

		out.Slices = append(out.Slices, PieSlice{
			Label: s.Label, Value: s.Value, Percent: frac * 100,
			StartAngle: start, EndAngle: end,
			LabelX: cx + radius*textPosition*math.Sin(mid),
			LabelY: cy - radius*textPosition*math.Cos(mid),
		})
		angle = end
	}

	if model.Title != "" {
		b := measure.Measure(model.Title, measure.Style{FontSize: cfg.Float("fontSize", 16)})
		out.Height += b.Height + 25
	}
	return out
}
