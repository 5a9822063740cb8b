package cli

import (
	"strings"
	"testing"

	"github.com/merman-go/merman/pkg/diagram"
)

func TestToDOTEmitsNodesEdgesAndClusters(t *testing.T) {
	m := &diagram.FlowchartModel{
		Direction: diagram.DirLR,
		Nodes: []diagram.Node{
			{ID: "A", Label: "Start"},
			{ID: "B", Label: "End"},
		},
		Edges:     []diagram.Edge{{From: "A", To: "B", Label: "go"}},
		Subgraphs: []diagram.Subgraph{{ID: "g1", Title: "Group", Children: []string{"A"}}},
	}

	dot := toDOT(m)
	for _, want := range []string{"rankdir=LR", `"A" -> "B"`, "cluster_g1", `label="Group"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("toDOT output missing %q:\n%s", want, dot)
		}
	}
}
