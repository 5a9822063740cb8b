package transform

import "github.com/merman-go/merman/pkg/cgraph"

// BreakCycles removes a minimal set of back-edges (discovered via DFS
// white/gray/black coloring) so that the remaining graph is acyclic, and
// returns the number of edges removed.
//
// Rank assignment requires acyclicity; the compound hierarchical layout
// calls BreakCycles on a scratch copy of the working graph before
// [AssignLayers] so that a stray cyclic edge in a diagram source cannot
// wedge the rank step.
func BreakCycles(g *cgraph.Graph) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var backEdges [][2]string

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, child := range g.Successors(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, [2]string{node, child})
			}
		}
		color[node] = black
	}

	for _, n := range g.Roots() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range backEdges {
		for _, key := range g.EdgeKeys() {
			if key.From == e[0] && key.To == e[1] {
				g.RemoveEdgeKey(key)
			}
		}
	}
	return len(backEdges)
}
