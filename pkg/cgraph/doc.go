// Package cgraph provides a compound multigraph: set_node/set_edge_named/
// set_parent/parent/children/edge_keys/edge_by_key/remove_edge_key/
// remove_node, with observable insertion order. It is not specific to any
// one diagram family; pkg/layout/flowchart builds its working graphs on top
// of it, while the architecture and sequence layouts do not use it.
package cgraph
