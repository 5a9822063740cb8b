// Package cgraph implements the compound-multigraph contract assumed by the
// layout engines: nodes may be declared the parent of other nodes (forming a
// forest over the node set), and edges are keyed so that parallel edges
// between the same pair of endpoints can coexist.
//
// In addition to the compound/multigraph primitives, Graph carries a row
// index (an integer rank per node) because the hierarchical layout engines
// in pkg/layout/flowchart assign every node a rank and then route edges only
// between adjacent ranks during the line-sweep ordering and crossing-count
// phases. Rows are orthogonal to the parent/child forest: a cluster and its
// children usually occupy different rows.
package cgraph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.SetNode] when the node ID is
	// empty.
	ErrInvalidNodeID = errors.New("cgraph: node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.SetNode] when a node with the
	// same ID already exists. Use [Graph.Node] to look up and mutate it in
	// place instead.
	ErrDuplicateNodeID = errors.New("cgraph: duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.SetEdgeNamed] when the From
	// node does not exist.
	ErrUnknownSourceNode = errors.New("cgraph: unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.SetEdgeNamed] when the To
	// node does not exist.
	ErrUnknownTargetNode = errors.New("cgraph: unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge key
	// references a node that no longer exists.
	ErrInvalidEdgeEndpoint = errors.New("cgraph: invalid edge endpoint")

	// ErrNonConsecutiveRows is returned by [Graph.Validate] when an edge
	// connects nodes that are not in adjacent rows.
	ErrNonConsecutiveRows = errors.New("cgraph: edges must connect consecutive rows")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a directed cycle
	// is detected among regular (non-compound) edges.
	ErrGraphHasCycle = errors.New("cgraph: graph contains a cycle")

	// ErrCyclicParentage is returned by [Graph.SetParent] when assigning a
	// parent would break the forest invariant (a node cannot be its own
	// ancestor).
	ErrCyclicParentage = errors.New("cgraph: cyclic subgraph membership")
)

// Label stores arbitrary key-value attributes attached to a node, edge, or
// the graph itself (label width/height, shape, CSS classes, routed points,
// and so on -- the layout engines read and write through this map rather
// than through dedicated struct fields, since the attribute set differs by
// diagram kind).
type Label map[string]any

// NodeKind distinguishes original semantic-model nodes from nodes synthesized
// during layout (self-loop helper labels, long-edge subdividers, cluster
// placeholders).
type NodeKind int

const (
	// NodeKindRegular is an ordinary node from the semantic model.
	NodeKindRegular NodeKind = iota
	// NodeKindSubdivider is a synthetic node inserted to break an edge that
	// spans more than one rank into single-rank segments.
	NodeKindSubdivider
	// NodeKindAuxiliary is a synthetic helper node: a self-loop label node,
	// a separator beam, or a recursively-extracted cluster placeholder.
	NodeKindAuxiliary
)

// Node is a vertex of the compound graph. The zero value is not usable --
// ID must be set before calling [Graph.SetNode].
type Node struct {
	ID    string
	Row   int
	Label Label

	Kind     NodeKind
	MasterID string // for subdividers: the node the chain subdivides
}

func (n Node) IsSubdivider() bool { return n.Kind == NodeKindSubdivider }
func (n Node) IsAuxiliary() bool  { return n.Kind == NodeKindAuxiliary }
func (n Node) IsSynthetic() bool  { return n.Kind != NodeKindRegular }

// EffectiveID returns MasterID when set, otherwise ID. Subdivider chains
// collapse to a single logical identity under this mapping.
func (n Node) EffectiveID() string {
	if n.MasterID != "" {
		return n.MasterID
	}
	return n.ID
}

// EdgeKey identifies one edge among possibly-several parallel edges between
// the same pair of endpoints.
type EdgeKey struct {
	From, To, Name string
}

// Edge is a directed, possibly-named connection between two nodes.
type Edge struct {
	From, To, Name string
	Label          Label
}

func (e Edge) Key() EdgeKey { return EdgeKey{e.From, e.To, e.Name} }

// Graph is a compound, directed multigraph: nodes form a forest via parent
// pointers, and edges are keyed by (from, to, name) so that parallel edges
// are first-class. Insertion order is preserved and observable through
// [Graph.Nodes] and [Graph.EdgeKeys], because the layout algorithms are
// sensitive to it (tie-breaking during cycle-breaking and ranking).
//
// Graph is not safe for concurrent use.
type Graph struct {
	nodeOrder []string
	nodes     map[string]*Node

	edgeOrder []EdgeKey
	edges     map[EdgeKey]Edge

	outgoing map[string][]string
	incoming map[string][]string

	parent   map[string]string
	children map[string][]string

	rows map[int][]*Node

	label Label
}

// New creates an empty compound graph with optional graph-level metadata.
func New(label Label) *Graph {
	if label == nil {
		label = Label{}
	}
	return &Graph{
		nodes:    make(map[string]*Node),
		edges:    make(map[EdgeKey]Edge),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		parent:   make(map[string]string),
		children: make(map[string][]string),
		rows:     make(map[int][]*Node),
		label:    label,
	}
}

// Label returns the graph-level label map (never nil).
func (g *Graph) Label() Label { return g.label }

// SetNode inserts a node, or returns ErrDuplicateNodeID if the ID is already
// present. Use [Graph.Node] to fetch and mutate an existing node's Label.
func (g *Graph) SetNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Label == nil {
		n.Label = Label{}
	}
	node := &n
	g.nodes[node.ID] = node
	g.nodeOrder = append(g.nodeOrder, node.ID)
	g.rows[node.Row] = append(g.rows[node.Row], node)
	return nil
}

// RemoveNode deletes a node along with every edge and parent/child
// relationship that references it. No-op if the node does not exist.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for _, key := range slices.Clone(g.edgeOrder) {
		if key.From == id || key.To == id {
			g.RemoveEdgeKey(key)
		}
	}
	if p, ok := g.parent[id]; ok {
		g.children[p] = slices.DeleteFunc(g.children[p], func(s string) bool { return s == id })
		delete(g.parent, id)
	}
	for _, c := range slices.Clone(g.children[id]) {
		delete(g.parent, c)
	}
	delete(g.children, id)

	n := g.nodes[id]
	g.rows[n.Row] = slices.DeleteFunc(g.rows[n.Row], func(x *Node) bool { return x.ID == id })
	delete(g.nodes, id)
	g.nodeOrder = slices.DeleteFunc(g.nodeOrder, func(s string) bool { return s == id })
	delete(g.outgoing, id)
	delete(g.incoming, id)
}

// SetRows reassigns the row (rank) of each named node and rebuilds the row
// index. Nodes absent from rows keep their current row.
func (g *Graph) SetRows(rows map[string]int) {
	g.rows = make(map[int][]*Node)
	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		if r, ok := rows[id]; ok {
			n.Row = r
		}
		g.rows[n.Row] = append(g.rows[n.Row], n)
	}
}

// SetEdgeNamed inserts or replaces a directed edge keyed by (from, to, name).
// Replacing preserves the edge's position in iteration order.
func (g *Graph) SetEdgeNamed(from, to, name string, label Label) error {
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownTargetNode
	}
	if label == nil {
		label = Label{}
	}
	key := EdgeKey{from, to, name}
	if _, exists := g.edges[key]; !exists {
		g.edgeOrder = append(g.edgeOrder, key)
		g.outgoing[from] = append(g.outgoing[from], to)
		g.incoming[to] = append(g.incoming[to], from)
	}
	g.edges[key] = Edge{From: from, To: to, Name: name, Label: label}
	return nil
}

// SetEdge is SetEdgeNamed with an empty name, the common case for simple
// (non-multigraph) edges.
func (g *Graph) SetEdge(from, to string, label Label) error {
	return g.SetEdgeNamed(from, to, "", label)
}

// RemoveEdgeKey removes the edge with the given key. No-op if absent.
func (g *Graph) RemoveEdgeKey(key EdgeKey) {
	if _, ok := g.edges[key]; !ok {
		return
	}
	delete(g.edges, key)
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, func(k EdgeKey) bool { return k == key })
	g.outgoing[key.From] = removeFirst(g.outgoing[key.From], key.To)
	g.incoming[key.To] = removeFirst(g.incoming[key.To], key.From)
}

func removeFirst(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return slices.Delete(slices.Clone(s), i, i+1)
		}
	}
	return s
}

// EdgeByKey returns the edge for key and true, or the zero Edge and false.
func (g *Graph) EdgeByKey(key EdgeKey) (Edge, bool) {
	e, ok := g.edges[key]
	return e, ok
}

// EdgeKeys returns every edge key in insertion order.
func (g *Graph) EdgeKeys() []EdgeKey { return slices.Clone(g.edgeOrder) }

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, k := range g.edgeOrder {
		out = append(out, g.edges[k])
	}
	return out
}

// SetParent declares parent as the compound parent of child. Passing an
// empty parent clears any existing parent (child becomes a root). Returns
// ErrCyclicParentage if parent is a descendant of child.
func (g *Graph) SetParent(child, parent string) error {
	if parent != "" {
		for p := parent; p != ""; p = g.parent[p] {
			if p == child {
				return ErrCyclicParentage
			}
		}
	}
	if old, ok := g.parent[child]; ok {
		g.children[old] = slices.DeleteFunc(g.children[old], func(s string) bool { return s == child })
		delete(g.parent, child)
	}
	if parent != "" {
		g.parent[child] = parent
		g.children[parent] = append(g.children[parent], child)
	}
	return nil
}

// Parent returns the compound parent of id, or "" if id is a root or unknown.
func (g *Graph) Parent(id string) string { return g.parent[id] }

// Children returns the compound children of id in insertion order. This is
// the cluster-membership relation, distinct from [Graph.Successors].
func (g *Graph) Children(id string) []string { return slices.Clone(g.children[id]) }

// Successors returns the IDs that id has an outgoing edge to.
func (g *Graph) Successors(id string) []string { return slices.Clone(g.outgoing[id]) }

// Predecessors returns the IDs that have an outgoing edge to id.
func (g *Graph) Predecessors(id string) []string { return slices.Clone(g.incoming[id]) }

// OutDegree returns the number of outgoing edges from id.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to id.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ChildrenInRow returns successors of id that are assigned to row.
func (g *Graph) ChildrenInRow(id string, row int) []string {
	var result []string
	for _, c := range g.outgoing[id] {
		if n, ok := g.nodes[c]; ok && n.Row == row {
			result = append(result, c)
		}
	}
	return result
}

// ParentsInRow returns predecessors of id that are assigned to row.
func (g *Graph) ParentsInRow(id string, row int) []string {
	var result []string
	for _, p := range g.incoming[id] {
		if n, ok := g.nodes[p]; ok && n.Row == row {
			result = append(result, p)
		}
	}
	return result
}

// NodesInRow returns the nodes assigned to row, in insertion order.
func (g *Graph) NodesInRow(row int) []*Node { return slices.Clone(g.rows[row]) }

// RowCount returns the number of distinct rows populated.
func (g *Graph) RowCount() int { return len(g.rows) }

// RowIDs returns populated row indices in ascending order.
func (g *Graph) RowIDs() []int { return slices.Sorted(maps.Keys(g.rows)) }

// MaxRow returns the highest populated row index, or 0 if empty.
func (g *Graph) MaxRow() int {
	if len(g.rows) == 0 {
		return 0
	}
	ids := g.RowIDs()
	return ids[len(ids)-1]
}

// Roots returns nodes with no incoming edges.
func (g *Graph) Roots() []*Node {
	var roots []*Node
	for _, id := range g.nodeOrder {
		if len(g.incoming[id]) == 0 {
			roots = append(roots, g.nodes[id])
		}
	}
	return roots
}

// Leaves returns nodes with no outgoing edges.
func (g *Graph) Leaves() []*Node {
	var leaves []*Node
	for _, id := range g.nodeOrder {
		if len(g.outgoing[id]) == 0 {
			leaves = append(leaves, g.nodes[id])
		}
	}
	return leaves
}

// Validate checks row consistency and acyclicity of the regular-edge graph.
func (g *Graph) Validate() error {
	for _, e := range g.Edges() {
		src, okS := g.nodes[e.From]
		dst, okD := g.nodes[e.To]
		if !okS || !okD {
			return ErrInvalidEdgeEndpoint
		}
		if dst.Row != src.Row+1 {
			return ErrNonConsecutiveRows
		}
	}
	return g.detectCycles()
}

func (g *Graph) detectCycles() error {
	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range g.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.nodeOrder {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// PosMap builds a position lookup (ID -> index) from an ordered ID slice.
// Used to turn node orderings into O(1) lookups for crossing counting.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

// NodePosMap is PosMap over a node slice.
func NodePosMap(nodes []*Node) map[string]int {
	m := make(map[string]int, len(nodes))
	for i, n := range nodes {
		m[n.ID] = i
	}
	return m
}

// NodeIDs extracts IDs from a node slice, preserving order.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
