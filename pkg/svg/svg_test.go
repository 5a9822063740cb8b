package svg

import (
	"strings"
	"testing"

	"github.com/merman-go/merman/pkg/diagram"
	"github.com/merman-go/merman/pkg/layout/architecture"
	"github.com/merman-go/merman/pkg/layout/flowchart"
)

func TestFormatNumberTrimsTrailingZeros(t *testing.T) {
	cases := map[float64]string{
		12:       "12",
		12.5:     "12.5",
		1250:     "1250",
		0:        "0",
		-3.25:    "-3.25",
		100.0001: "100.0001",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeLabelDecodesMermaidEntitiesThenEscapes(t *testing.T) {
	got := EscapeLabel("a #lt;b#gt;")
	want := "a &lt;b&gt;"
	if got != want {
		t.Errorf("EscapeLabel = %q, want %q", got, want)
	}
}

func TestResolveViewportUsesOverrideOnHit(t *testing.T) {
	lookup := func(id string) (string, string, bool) {
		if id == "abc" {
			return "0 0 10 10", "10", true
		}
		return "", "", false
	}
	vb, mw := ResolveViewport(Bounds{0, 0, 100, 50}, 5, "abc", lookup)
	if vb != "0 0 10 10" || mw != "10" {
		t.Errorf("ResolveViewport override = (%q, %q), want override values", vb, mw)
	}
	vb2, _ := ResolveViewport(Bounds{0, 0, 100, 50}, 5, "other", lookup)
	if vb2 == "0 0 10 10" {
		t.Errorf("ResolveViewport should not apply override on a miss")
	}
}

func TestRenderFlowchartProducesWellFormedRoot(t *testing.T) {
	m := &diagram.FlowchartModel{
		Direction: diagram.DirTB,
		Config:    diagram.DefaultConfig(),
		Nodes: []diagram.Node{
			{ID: "A", Label: "Start", Shape: diagram.ShapeRound},
			{ID: "B", Label: "End", Shape: diagram.ShapeRectangle},
		},
		Edges: []diagram.Edge{{ID: "e1", From: "A", To: "B"}},
	}
	l, err := flowchart.Build(m, m.Config)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out := RenderFlowchart(l, m, m.Config, DefaultOptions(), nil)
	if !strings.HasPrefix(out, "<svg ") {
		t.Errorf("output does not start with <svg: %q", out[:40])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("output does not end with </svg>")
	}
	if !strings.Contains(out, `id="A"`) || !strings.Contains(out, `id="B"`) {
		t.Errorf("output missing expected node ids")
	}
}

func TestRenderArchitectureEmitsIconBackground(t *testing.T) {
	m := &diagram.ArchitectureModel{
		Config:   diagram.DefaultConfig(),
		Services: []diagram.Service{{ID: "db", Title: "DB", Icon: "database"}},
	}
	l := architecture.Build(m)
	out := RenderArchitecture(l, m.Config, DefaultOptions(), nil)
	if !strings.Contains(out, "architecture-icon-bg") {
		t.Errorf("missing icon background rect in output")
	}
}
