package cgraph

import "slices"

// DAG is a fully built constraint network ready to be committed to a host.
type DAG struct {
	graph *Graph
	order []NodeID
}

// Order returns every node in deterministic topological order.
func (d *DAG) Order() []NodeID {
	return slices.Clone(d.order)
}

// Created returns the nodes to create, in topological order.
func (d *DAG) Created() []*Node {
	out := make([]*Node, 0, len(d.order))
	for _, id := range d.order {
		if n := d.graph.Nodes[id]; n.Type != NodeTypeExternal {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns the plug-level connections in insertion order.
func (d *DAG) Edges() []Edge {
	return slices.Clone(d.graph.Edges)
}

// Node returns a node by ID if it exists.
func (d *DAG) Node(id NodeID) (*Node, bool) {
	n, ok := d.graph.Nodes[id]
	return n, ok
}
