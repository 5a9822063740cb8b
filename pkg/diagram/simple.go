package diagram

// PieSlice is one wedge of a pie chart.
type PieSlice struct {
	Label string
	Value float64
}

// PieModel is the semantic model for pie diagrams.
type PieModel struct {
	Config    Config
	Title     string
	ShowData  bool
	Slices    []PieSlice
	DiagramID string
}

// KanbanItem is one card within a column.
type KanbanItem struct {
	ID, Label string
	Assigned  string
	Priority  string
}

// KanbanColumn is one fixed-width column of cards.
type KanbanColumn struct {
	ID, Title string
	Items     []KanbanItem
}

// KanbanModel is the semantic model for kanban diagrams.
type KanbanModel struct {
	Config    Config
	Columns   []KanbanColumn
	DiagramID string
}

// GanttTask is one row in a Gantt chart: a day-scale span on the X axis.
type GanttTask struct {
	ID, Label string
	Section   string
	StartDay  int
	DurationDays int
	Done, Active, Critical bool
}

// GanttModel is the semantic model for gantt diagrams.
type GanttModel struct {
	Config    Config
	Title     string
	Tasks     []GanttTask
	DiagramID string
}

// MindmapNode is one node of the radial/indented mindmap tree.
type MindmapNode struct {
	ID, Label string
	Shape     Shape
	Children  []MindmapNode
}

// MindmapModel is the semantic model for mindmap diagrams.
type MindmapModel struct {
	Config    Config
	Root      MindmapNode
	DiagramID string
}
