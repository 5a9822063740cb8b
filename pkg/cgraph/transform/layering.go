package transform

import "github.com/merman-go/merman/pkg/cgraph"

// AssignLayers assigns every node a rank (row) equal to one plus the maximum
// rank of its predecessors, using a longest-path topological traversal
// (Kahn's algorithm). Source nodes land at row 0.
//
// Existing row assignments are overwritten. The graph must be acyclic --
// run [BreakCycles] first if that is not already guaranteed. Panics if g is
// nil. O(V+E).
func AssignLayers(g *cgraph.Graph) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		rows[n.ID] = 0
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Successors(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
}
