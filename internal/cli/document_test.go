package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/svg"
)

func writeDocument(t *testing.T, dir string, doc Document) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadDocumentAssignsDiagramIDWhenMissing(t *testing.T) {
	path := writeDocument(t, t.TempDir(), Document{
		Kind: diagram.KindPie,
		Pie:  &diagram.PieModel{Slices: []diagram.PieSlice{{Label: "a", Value: 1}}},
	})

	doc, err := loadDocument(path)
	if err != nil {
		t.Fatalf("loadDocument: %v", err)
	}
	if doc.DiagramID == "" {
		t.Error("expected a generated DiagramID, got empty string")
	}
}

func TestBuildSVGDispatchesByKind(t *testing.T) {
	doc := &Document{
		Kind: diagram.KindFlowchart,
		Flowchart: &diagram.FlowchartModel{
			Direction: diagram.DirTB,
			Config:    diagram.DefaultConfig(),
			Nodes: []diagram.Node{
				{ID: "A", Label: "Start", Shape: diagram.ShapeRound},
				{ID: "B", Label: "End", Shape: diagram.ShapeRectangle},
			},
			Edges: []diagram.Edge{{ID: "e1", From: "A", To: "B"}},
		},
	}

	out, err := doc.buildSVG(svg.DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("buildSVG: %v", err)
	}
	if out == "" {
		t.Error("expected non-empty SVG output")
	}
}

func TestBuildSVGRejectsMismatchedKind(t *testing.T) {
	doc := &Document{Kind: diagram.KindSequence}
	if _, err := doc.buildSVG(svg.DefaultOptions(), nil); err == nil {
		t.Error("expected an error for a sequence kind with no Sequence model set")
	}
}

func TestMergeConfigFlattensNestedTables(t *testing.T) {
	base := diagram.DefaultConfig()
	overrides := map[string]any{
		"sequence": map[string]any{"height": 100.0},
	}
	merged := mergeConfig(base, overrides)
	if merged.Float("sequence.height", -1) != 100.0 {
		t.Errorf("sequence.height = %v, want 100", merged["sequence.height"])
	}
}
