// Package transform provides rank-layout graph transformations shared by the
// compound hierarchical layout engine: cycle breaking, longest-path layer
// (rank) assignment, and long-edge subdivision. They are applied, in that
// order, to a scratch [cgraph.Graph] before the ordering and positioning
// passes run.
package transform
