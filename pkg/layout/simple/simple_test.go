package simple

import (
	"testing"

	"github.com/merman-go/merman/pkg/diagram"
)

func TestBuildPieSlicesSpanFullCircle(t *testing.T) {
	m := &diagram.PieModel{
		Config: diagram.DefaultConfig(),
		Slices: []diagram.PieSlice{
			{Label: "a", Value: 30},
			{Label: "b", Value: 70},
		},
	}
	l := BuildPie(m)
	if len(l.Slices) != 2 {
		t.Fatalf("len(Slices) = %d, want 2", len(l.Slices))
	}
	if l.Slices[0].StartAngle != 0 {
		t.Errorf("first slice StartAngle = %v, want 0", l.Slices[0].StartAngle)
	}
	last := l.Slices[len(l.Slices)-1]
	if got, want := last.EndAngle, 2*3.14159265358979; (got-want) > 1e-6 || (want-got) > 1e-6 {
		t.Errorf("last slice EndAngle = %v, want ~2pi", got)
	}
	if l.Slices[0].Percent != 30 {
		t.Errorf("Percent = %v, want 30", l.Slices[0].Percent)
	}
}

func TestBuildKanbanStacksCardsWithinColumn(t *testing.T) {
	m := &diagram.KanbanModel{
		Config: diagram.DefaultConfig(),
		Columns: []diagram.KanbanColumn{
			{ID: "todo", Title: "Todo", Items: []diagram.KanbanItem{
				{ID: "c1", Label: "first"},
				{ID: "c2", Label: "second"},
			}},
			{ID: "done", Title: "Done"},
		},
	}
	l := BuildKanban(m)
	if len(l.Columns) != 2 {
		t.Fatalf("len(Columns) = %d, want 2", len(l.Columns))
	}
	cards := l.Columns[0].Cards
	if len(cards) != 2 {
		t.Fatalf("len(Cards) = %d, want 2", len(cards))
	}
	if cards[1].CenterY <= cards[0].CenterY {
		t.Errorf("second card should sit below first: %v vs %v", cards[1].CenterY, cards[0].CenterY)
	}
	if l.Columns[1].X <= l.Columns[0].X {
		t.Errorf("second column should sit to the right of first")
	}
}

func TestBuildGanttPlacesBarsByStartDay(t *testing.T) {
	m := &diagram.GanttModel{
		Config: diagram.DefaultConfig(),
		Tasks: []diagram.GanttTask{
			{ID: "t1", Label: "design", Section: "phase1", StartDay: 0, DurationDays: 3},
			{ID: "t2", Label: "build", Section: "phase1", StartDay: 3, DurationDays: 5},
		},
	}
	l := BuildGantt(m)
	if len(l.Bars) != 2 {
		t.Fatalf("len(Bars) = %d, want 2", len(l.Bars))
	}
	if l.Bars[1].X <= l.Bars[0].X {
		t.Errorf("second bar should start after first: %v vs %v", l.Bars[1].X, l.Bars[0].X)
	}
	if len(l.Sections) != 1 {
		t.Errorf("len(Sections) = %d, want 1 (both tasks share phase1)", len(l.Sections))
	}
}

func TestBuildMindmapFansChildrenAroundRoot(t *testing.T) {
	m := &diagram.MindmapModel{
		Config: diagram.DefaultConfig(),
		Root: diagram.MindmapNode{
			ID: "root", Label: "Root",
			Children: []diagram.MindmapNode{
				{ID: "a", Label: "A"},
				{ID: "b", Label: "B", Children: []diagram.MindmapNode{
					{ID: "b1", Label: "B1"},
				}},
			},
		},
	}
	l := BuildMindmap(m)
	if len(l.Nodes) != 4 {
		t.Fatalf("len(Nodes) = %d, want 4", len(l.Nodes))
	}
	var root *MindmapNode
	for i := range l.Nodes {
		if l.Nodes[i].ID == "root" {
			root = &l.Nodes[i]
		}
	}
	if root == nil {
		t.Fatal("missing root node")
	}
	if root.CenterX != 0 || root.CenterY != 0 {
		t.Errorf("root should sit at origin, got (%v, %v)", root.CenterX, root.CenterY)
	}
}
