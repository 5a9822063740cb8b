package flowchart

import (
	"sort"

	"github.com/merman-go/merman/pkg/cgraph"
)

// rankLayout assigns each node in g a row-local order (left-to-right
// position within its row) and an absolute (x, y) center, given each node's
// footprint size.
//
// This is a simplified stand-in for a full network-simplex positioning
// pass: ordering uses iterated barycenter sweeps, sorting each row by the
// mean position of its neighbors in the adjacent fixed row (the same
// family of heuristic dagre itself falls back to before its simplex
// tightening step) with a fixed iteration count, and coordinate assignment
// places each row by cumulative width/height rather than solving the
// quadratic-minimization layout dagre uses to straighten edges. It produces
// a crossing-reduced, non-overlapping layout consistent with the row
// assignment, at the cost of sometimes leaving an edge less straight than
// a full simplex solve would.
type rankLayout struct {
	order    map[int][]string  // row -> left-to-right node IDs
	centerX  map[string]float64
	centerY  map[string]float64
	rowSize  map[int]float64 // row -> max node extent along the cross axis
}

const barycenterSweeps = 4

// computeRankLayout runs the ordering and coordinate-assignment passes.
// size(id) returns the node's (along, cross) footprint: along is its extent
// along its row, which spaces nodes within the row; cross is its extent
// across the row, which sets the row's thickness and so the row spacing.
func computeRankLayout(g *cgraph.Graph, size func(id string) (along, cross float64), nodeSpacing, rankSpacing float64) *rankLayout {
	rl := &rankLayout{
		order:   make(map[int][]string),
		centerX: make(map[string]float64),
		centerY: make(map[string]float64),
		rowSize: make(map[int]float64),
	}

	rows := g.RowIDs()
	for _, r := range rows {
		ids := make([]string, 0)
		for _, n := range g.NodesInRow(r) {
			ids = append(ids, n.ID)
		}
		rl.order[r] = ids
	}

	ws := cgraph.NewCrossingWorkspace(maxRowWidth(rl.order))
	for sweep := 0; sweep < barycenterSweeps; sweep++ {
		down := sweep%2 == 0
		if down {
			for i := 1; i < len(rows); i++ {
				rl.order[rows[i]] = barycenterSort(g, rl.order[rows[i-1]], rl.order[rows[i]], true)
			}
		} else {
			for i := len(rows) - 2; i >= 0; i-- {
				rl.order[rows[i]] = barycenterSort(g, rl.order[rows[i+1]], rl.order[rows[i]], false)
			}
		}
		_ = ws // workspace retained for callers that want crossing counts; not scored here
	}

	// Cross-axis (within-row) coordinate assignment: lay each row out left
	// to right by cumulative footprint plus nodeSpacing.
	var crossAxisMax float64
	for _, r := range rows {
		var cursor float64
		var maxCross float64
		for _, id := range rl.order[r] {
			along, cross := size(id)
			rl.centerX[id] = cursor + along/2
			cursor += along + nodeSpacing
			if cross > maxCross {
				maxCross = cross
			}
		}
		rl.rowSize[r] = maxCross
		if cursor > crossAxisMax {
			crossAxisMax = cursor
		}
	}

	// Along-axis (between-row) coordinate assignment: stack rows by the
	// tallest node in the previous row plus rankSpacing.
	var y float64
	for i, r := range rows {
		half := rl.rowSize[r] / 2
		y += half
		for _, id := range rl.order[r] {
			rl.centerY[id] = y
		}
		y += half + rankSpacing
		_ = i
	}

	return rl
}

func maxRowWidth(order map[int][]string) int {
	max := 0
	for _, ids := range order {
		if len(ids) > max {
			max = len(ids)
		}
	}
	return max
}

// barycenterSort reorders row by the mean fixed-row position of each node's
// neighbors in fixed, preserving its relative order among nodes with no
// fixed-row neighbor (stable sort, ties broken by current position).
func barycenterSort(g *cgraph.Graph, fixed, row []string, useSuccessors bool) []string {
	fixedPos := cgraph.PosMap(fixed)

	type scored struct {
		id    string
		score float64
		has   bool
		orig  int
	}
	entries := make([]scored, len(row))
	for i, id := range row {
		var neighbors []string
		if useSuccessors {
			neighbors = g.Predecessors(id)
		} else {
			neighbors = g.Successors(id)
		}
		var sum float64
		var n int
		for _, nb := range neighbors {
			if p, ok := fixedPos[nb]; ok {
				sum += float64(p)
				n++
			}
		}
		e := scored{id: id, orig: i}
		if n > 0 {
			e.score = sum / float64(n)
			e.has = true
		}
		entries[i] = e
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.has != b.has {
			// Nodes with no fixed-row neighbor keep their relative
			// position rather than collapsing to one end.
			return a.orig < b.orig
		}
		if !a.has {
			return a.orig < b.orig
		}
		return a.score < b.score
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.id
	}
	return out
}
