package cgraph

import (
	"errors"
	"fmt"

	"github.com/birdayz/mconstraint/scene"
)

// Builder constructs a constraint network.
//
// IMPORTANT: Builder is NOT safe for concurrent use. The resulting DAG
// is immutable and safe to use concurrently.
type Builder struct {
	graph *Graph
}

// NewBuilder creates a new DAG builder.
func NewBuilder() *Builder {
	return &Builder{
		graph: NewGraph(),
	}
}

// Build validates and finalizes the DAG.
func (b *Builder) Build() (*DAG, error) {
	if err := b.graph.Validate(); err != nil {
		return nil, err
	}

	order, err := b.graph.topologicalSort()
	if err != nil {
		return nil, fmt.Errorf("failed to order nodes: %w", err)
	}

	return &DAG{
		graph: b.graph,
		order: order,
	}, nil
}

// AddExternal registers an existing scene transform. Adding the same external
// twice is a no-op, since a driven node may also appear as its own parent space.
func (b *Builder) AddExternal(name string) error {
	nodeID := NodeID(name)
	if n, exists := b.graph.Nodes[nodeID]; exists {
		if n.Type == NodeTypeExternal {
			return nil
		}
		return fmt.Errorf("%w: external %q", ErrNodeAlreadyExists, name)
	}
	return b.graph.AddNode(&Node{
		ID:       nodeID,
		Type:     NodeTypeExternal,
		Parents:  []NodeID{},
		Children: []NodeID{},
	})
}

// AddNode registers a node the commit will create and returns it so the
// caller can attach attributes and constant values.
func (b *Builder) AddNode(name string, typ NodeType) (*Node, error) {
	if typ == NodeTypeExternal {
		return nil, fmt.Errorf("%w: use AddExternal for %q", ErrInvalidTopology, name)
	}
	node := &Node{
		ID:       NodeID(name),
		Type:     typ,
		Parents:  []NodeID{},
		Children: []NodeID{},
	}
	if err := b.graph.AddNode(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Connect adds a plug-level edge between two registered nodes.
func (b *Builder) Connect(src, dst scene.Plug) error {
	return b.graph.AddEdge(src, dst)
}

// AddAttr declares a dynamic attribute on a created node.
func (n *Node) AddAttr(spec scene.AttrSpec) {
	n.Attrs = append(n.Attrs, spec)
}

// Set records a constant value for attr.
func (n *Node) Set(attr string, value any) {
	n.Values = append(n.Values, Assignment{Attr: attr, Value: value})
}

// Lock marks attrs to be locked once values are set.
func (n *Node) Lock(attrs ...string) {
	n.Locked = append(n.Locked, attrs...)
}

// Sentinel errors for common failure cases.
var (
	ErrNodeAlreadyExists = errors.New("node already exists")
	ErrNodeNotFound      = errors.New("node not found")
	ErrCycleDetected     = errors.New("cycle detected in DAG")
	ErrOrphanedNodes     = errors.New("orphaned nodes found")
	ErrDeadEnd           = errors.New("node does not reach a driven plug")
	ErrPlugConflict      = errors.New("destination plug driven twice")
	ErrInvalidNodeID     = errors.New("invalid node ID")
	ErrInvalidTopology   = errors.New("invalid topology")
)
