package architecture

import (
	"testing"

	"github.com/merman-go/merman/pkg/diagram"
)

func TestBuildPositionsServicesAndRoutesEdges(t *testing.T) {
	m := &diagram.ArchitectureModel{
		Config: diagram.DefaultConfig(),
		Services: []diagram.Service{
			{ID: "db", Title: "Database", Icon: "database"},
			{ID: "api", Title: "API", Icon: "server"},
		},
		Edges: []diagram.ArchEdge{
			{ID: "e1", FromID: "api", FromSide: diagram.SideRight, ToID: "db", ToSide: diagram.SideLeft},
		},
	}
	l := Build(m)
	if len(l.Services) != 2 {
		t.Fatalf("len(Services) = %d, want 2", len(l.Services))
	}
	if len(l.Edges) != 1 {
		t.Fatalf("len(Edges) = %d, want 1", len(l.Edges))
	}
	if l.Width <= 0 || l.Height <= 0 {
		t.Errorf("non-positive layout extent: %v x %v", l.Width, l.Height)
	}
}

func TestBuildGroupsHaloPadMembers(t *testing.T) {
	m := &diagram.ArchitectureModel{
		Config: diagram.DefaultConfig(),
		Services: []diagram.Service{
			{ID: "a", GroupID: "g1"},
			{ID: "b", GroupID: "g1"},
		},
		Groups: []diagram.Group{{ID: "g1", Title: "Group 1"}},
	}
	l := Build(m)
	if len(l.Groups) != 1 {
		t.Fatalf("len(Groups) = %d, want 1", len(l.Groups))
	}
	g := l.Groups[0]
	if g.Width <= 0 || g.Height <= 0 {
		t.Errorf("group has non-positive size: %+v", g)
	}
}

func TestEffectiveIconFallsBackToUnknown(t *testing.T) {
	m := &diagram.ArchitectureModel{
		Config:   diagram.DefaultConfig(),
		Services: []diagram.Service{{ID: "x"}},
	}
	l := Build(m)
	if l.Services[0].Icon != "unknown" {
		t.Errorf("Icon = %q, want unknown", l.Services[0].Icon)
	}
}
