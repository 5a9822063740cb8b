package cli

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/layout/architecture"
	"github.com/merman-go/merman/pkg/layout/flowchart"
	"github.com/merman-go/merman/pkg/layout/sequence"
	"github.com/merman-go/merman/pkg/layout/simple"
	"github.com/merman-go/merman/pkg/rendererr"
	"github.com/merman-go/merman/pkg/svg"
)

// Document is the JSON interchange shape mermango reads from disk: one
// diagram model selected by Kind, a stable, documented round-trip JSON
// shape rather than a polymorphic envelope. Parsing a DSL source into a
// Document is out of scope for this repository; a Document is expected to
// already be the output of some upstream parser.
type Document struct {
	Kind      diagram.Kind
	DiagramID string

	Flowchart    *diagram.FlowchartModel    `json:",omitempty"`
	Architecture *diagram.ArchitectureModel `json:",omitempty"`
	Sequence     *diagram.SequenceModel     `json:",omitempty"`
	Pie          *diagram.PieModel          `json:",omitempty"`
	Kanban       *diagram.KanbanModel       `json:",omitempty"`
	Gantt        *diagram.GanttModel        `json:",omitempty"`
	Mindmap      *diagram.MindmapModel      `json:",omitempty"`
}

// loadDocument reads and decodes a Document from path, assigning a fresh
// diagram ID via google/uuid when the document doesn't carry one. The core
// never generates IDs itself; an empty diagram_id is a valid SVGOptions
// value meaning "no parity override, no telemetry tag".
func loadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, rendererr.WrapIoOrFormatting(err, "decoding document %s", path)
	}
	if doc.DiagramID == "" {
		doc.DiagramID = uuid.NewString()
	}
	return &doc, nil
}

// applyConfig overwrites the Config field of whichever submodel is set, so
// the CLI's merged effective configuration always wins over any Config the
// document itself happened to carry.
func (d *Document) applyConfig(cfg diagram.Config) {
	switch d.Kind {
	case diagram.KindFlowchart, diagram.KindState, diagram.KindClass, diagram.KindER:
		if d.Flowchart != nil {
			d.Flowchart.Config = cfg
		}
	case diagram.KindArchitecture:
		if d.Architecture != nil {
			d.Architecture.Config = cfg
		}
	case diagram.KindSequence:
		if d.Sequence != nil {
			d.Sequence.Config = cfg
		}
	case diagram.KindPie:
		if d.Pie != nil {
			d.Pie.Config = cfg
		}
	case diagram.KindKanban:
		if d.Kanban != nil {
			d.Kanban.Config = cfg
		}
	case diagram.KindGantt:
		if d.Gantt != nil {
			d.Gantt.Config = cfg
		}
	case diagram.KindMindmap:
		if d.Mindmap != nil {
			d.Mindmap.Config = cfg
		}
	}
}

// buildLayout runs the layout engine matching d.Kind and returns its
// result as a plain value suitable for JSON encoding.
func (d *Document) buildLayout() (any, error) {
	switch d.Kind {
	case diagram.KindFlowchart, diagram.KindState, diagram.KindClass, diagram.KindER:
		if d.Flowchart == nil {
			return nil, rendererr.NewInvalidModel("document kind %q missing a flowchart model", d.Kind)
		}
		return flowchart.Build(d.Flowchart, d.Flowchart.Config)
	case diagram.KindArchitecture:
		if d.Architecture == nil {
			return nil, rendererr.NewInvalidModel("document kind %q missing an architecture model", d.Kind)
		}
		return architecture.Build(d.Architecture), nil
	case diagram.KindSequence:
		if d.Sequence == nil {
			return nil, rendererr.NewInvalidModel("document kind %q missing a sequence model", d.Kind)
		}
		return sequence.Build(d.Sequence), nil
	case diagram.KindPie:
		if d.Pie == nil {
			return nil, rendererr.NewInvalidModel("document kind %q missing a pie model", d.Kind)
		}
		return simple.BuildPie(d.Pie), nil
	case diagram.KindKanban:
		if d.Kanban == nil {
			return nil, rendererr.NewInvalidModel("document kind %q missing a kanban model", d.Kind)
		}
		return simple.BuildKanban(d.Kanban), nil
	case diagram.KindGantt:
		if d.Gantt == nil {
			return nil, rendererr.NewInvalidModel("document kind %q missing a gantt model", d.Kind)
		}
		return simple.BuildGantt(d.Gantt), nil
	case diagram.KindMindmap:
		if d.Mindmap == nil {
			return nil, rendererr.NewInvalidModel("document kind %q missing a mindmap model", d.Kind)
		}
		return simple.BuildMindmap(d.Mindmap), nil
	default:
		return nil, rendererr.NewInvalidModel("unknown diagram kind %q", d.Kind)
	}
}

// buildSVG runs the layout engine matching d.Kind and renders it to an SVG
// string via the matching pkg/svg emitter.
func (d *Document) buildSVG(opts svg.Options, lookup svg.OverrideLookup) (string, error) {
	opts.DiagramID = d.DiagramID
	switch d.Kind {
	case diagram.KindFlowchart, diagram.KindState, diagram.KindClass, diagram.KindER:
		if d.Flowchart == nil {
			return "", rendererr.NewInvalidModel("document kind %q missing a flowchart model", d.Kind)
		}
		l, err := flowchart.Build(d.Flowchart, d.Flowchart.Config)
		if err != nil {
			return "", err
		}
		return svg.RenderFlowchart(l, d.Flowchart, d.Flowchart.Config, opts, lookup), nil
	case diagram.KindArchitecture:
		if d.Architecture == nil {
			return "", rendererr.NewInvalidModel("document kind %q missing an architecture model", d.Kind)
		}
		l := architecture.Build(d.Architecture)
		return svg.RenderArchitecture(l, d.Architecture.Config, opts, lookup), nil
	case diagram.KindSequence:
		if d.Sequence == nil {
			return "", rendererr.NewInvalidModel("document kind %q missing a sequence model", d.Kind)
		}
		l := sequence.Build(d.Sequence)
		return svg.RenderSequence(l, d.Sequence, d.Sequence.Config, opts, lookup), nil
	case diagram.KindPie:
		if d.Pie == nil {
			return "", rendererr.NewInvalidModel("document kind %q missing a pie model", d.Kind)
		}
		l := simple.BuildPie(d.Pie)
		return svg.RenderPie(l, d.Pie, d.Pie.Config, opts, lookup), nil
	case diagram.KindKanban:
		if d.Kanban == nil {
			return "", rendererr.NewInvalidModel("document kind %q missing a kanban model", d.Kind)
		}
		l := simple.BuildKanban(d.Kanban)
		return svg.RenderKanban(l, d.Kanban.Config, opts, lookup), nil
	case diagram.KindGantt:
		if d.Gantt == nil {
			return "", rendererr.NewInvalidModel("document kind %q missing a gantt model", d.Kind)
		}
		l := simple.BuildGantt(d.Gantt)
		return svg.RenderGantt(l, d.Gantt, d.Gantt.Config, opts, lookup), nil
	case diagram.KindMindmap:
		if d.Mindmap == nil {
			return "", rendererr.NewInvalidModel("document kind %q missing a mindmap model", d.Kind)
		}
		l := simple.BuildMindmap(d.Mindmap)
		return svg.RenderMindmap(l, d.Mindmap.Config, opts, lookup), nil
	default:
		return "", rendererr.NewInvalidModel("unknown diagram kind %q", d.Kind)
	}
}
