// Package diagram holds the semantic model: the strongly-typed in-memory
// records a DSL parser produces for nodes, edges, subgraphs, actors,
// services, and groups. Package diagram does no layout; it is purely the
// input contract every layout engine (pkg/layout/...) reads from.
package diagram

// Kind identifies a diagram family.
type Kind string

const (
	KindFlowchart    Kind = "flowchart"
	KindState        Kind = "state"
	KindClass        Kind = "class"
	KindER           Kind = "er"
	KindArchitecture Kind = "architecture"
	KindSequence     Kind = "sequence"
	KindPie          Kind = "pie"
	KindKanban       Kind = "kanban"
	KindGantt        Kind = "gantt"
	KindMindmap      Kind = "mindmap"
)

// Direction is a flow direction for rank-based layouts.
type Direction string

const (
	DirTB Direction = "TB" // top-to-bottom (alias TD in source text)
	DirBT Direction = "BT"
	DirLR Direction = "LR"
	DirRL Direction = "RL"
)

// Toggle swaps TB/BT for LR/RL, used when a nested cluster inherits its
// parent's direction "toggled" rather than copied outright.
func (d Direction) Toggle() Direction {
	switch d {
	case DirTB, DirBT:
		return DirLR
	case DirLR, DirRL:
		return DirTB
	default:
		return DirTB
	}
}

// LabelKind distinguishes plain text labels from ones containing inline
// markdown, which the measurer and emitter treat differently (markdown
// labels wrap as HTML-like <span> runs rather than plain SVG <text>).
type LabelKind string

const (
	LabelText     LabelKind = "text"
	LabelMarkdown LabelKind = "markdown"
)
