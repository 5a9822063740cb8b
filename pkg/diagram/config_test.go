package diagram

import "testing"

func TestDefaultConfigSpacing(t *testing.T) {
	c := DefaultConfig()
	if got := c.Float("flowchart.nodeSpacing", -1); got != 50 {
		t.Errorf("flowchart.nodeSpacing = %v, want 50", got)
	}
	if got := c.Float("flowchart.rankSpacing", -1); got != 50 {
		t.Errorf("flowchart.rankSpacing = %v, want 50", got)
	}
	if got := c.Float("flowchart.padding", -1); got != 8 {
		t.Errorf("flowchart.padding = %v, want 8", got)
	}
}

func TestConfigMergeOverridesLeaf(t *testing.T) {
	base := DefaultConfig()
	merged := base.Merge(Config{"flowchart.nodeSpacing": 99.0})
	if got := merged.Float("flowchart.nodeSpacing", -1); got != 99 {
		t.Errorf("merged nodeSpacing = %v, want 99", got)
	}
	if got := merged.Float("flowchart.rankSpacing", -1); got != 50 {
		t.Errorf("merge must not disturb unrelated keys, got %v", got)
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	c := DefaultConfig()
	if got := c.Float("not.a.real.key", 42); got != 42 {
		t.Errorf("unknown key should fall back to the caller's default, got %v", got)
	}
}

func TestSubGraphTitleTotalMargin(t *testing.T) {
	c := Config{
		"flowchart.subGraphTitleMargin.top":    5.0,
		"flowchart.subGraphTitleMargin.bottom": 3.0,
	}
	if got := c.SubGraphTitleTotalMargin(); got != 8 {
		t.Errorf("SubGraphTitleTotalMargin() = %v, want 8", got)
	}
}

func TestDirectionToggle(t *testing.T) {
	cases := map[Direction]Direction{DirTB: DirLR, DirBT: DirLR, DirLR: DirTB, DirRL: DirTB}
	for in, want := range cases {
		if got := in.Toggle(); got != want {
			t.Errorf("%s.Toggle() = %s, want %s", in, got, want)
		}
	}
}

func TestFlowchartModelLookups(t *testing.T) {
	m := &FlowchartModel{
		Nodes:     []Node{{ID: "a"}, {ID: "b"}},
		Subgraphs: []Subgraph{{ID: "outer", Children: []string{"a"}}},
	}
	if _, ok := m.NodeByID("a"); !ok {
		t.Error("expected to find node a")
	}
	if !m.IsCluster("outer") {
		t.Error("expected outer to be a cluster")
	}
	if m.IsCluster("a") {
		t.Error("a is a leaf node, not a cluster")
	}
}
