package simple

import (
	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/measure"
)

// GanttBar is one positioned task bar.
type GanttBar struct {
	ID, Label, Section string
	X, Y, Width, Height float64
	Done, Active, Critical bool
}

// GanttSection is one horizontal band grouping its tasks' bars.
type GanttSection struct {
	Title    string
	Top, Bottom float64
}

// GanttLayout is the full output of the gantt layout engine.
type GanttLayout struct {
	Bars          []GanttBar
	Sections      []GanttSection
	DayWidth      float64
	Width, Height float64
}

// dayWidth is the pixel width of one day on the task axis, wide enough for
// the longest task label to sit comfortably beside a single-day bar.
const dayWidth = 36.0

// BuildGantt places every task as a bar on a day-scale X axis (StartDay *
// dayWidth) and stacks rows top to bottom in task order, each row's
// height fixed at gantt.barHeight plus gantt.barGap; each run of
// consecutive tasks sharing a Section forms one band. Tasks are not
// regrouped, so a section whose tasks are not consecutive yields several
// bands.
func BuildGantt(model *diagram.GanttModel) *GanttLayout {
	cfg := model.Config
	if cfg == nil {
		cfg = diagram.DefaultConfig()
	}
	barHeight := cfg.Float("gantt.barHeight", 20)
	barGap := cfg.Float("gantt.barGap", 4)
	leftMargin := 75.0

	out := &GanttLayout{DayWidth: dayWidth}
	rowTop := 30.0
	maxRight := 0.0

	var currentSection string
	var sectionStart float64
	haveSection := false

	flushSection := func(end float64) {
		if haveSection {
			out.Sections = append(out.Sections, GanttSection{Title: currentSection, Top: sectionStart, Bottom: end})
		}
	}

	for _, t := range model.Tasks {
		if t.Section != currentSection || !haveSection {
			flushSection(rowTop)
			currentSection = t.Section
			sectionStart = rowTop
			haveSection = true
		}

		x := leftMargin + float64(t.StartDay)*dayWidth
		w := float64(t.DurationDays) * dayWidth
		out.Bars = append(out.Bars, GanttBar{
			ID: t.ID, Label: t.Label, Section: t.Section,
			X: x, Y: rowTop, Width: w, Height: barHeight,
			Done: t.Done, Active: t.Active, Critical: t.Critical,
		})
		if right := x + w; right > maxRight {
			maxRight = right
		}
		rowTop += barHeight + barGap
	}
	flushSection(rowTop)

	if model.Title != "" {
		b := measure.Measure(model.Title, measure.Style{FontSize: cfg.Float("fontSize", 16)})
		rowTop += b.Height + 25
	}

	out.Width = maxRight + 20
	out.Height = rowTop
	return out
}
