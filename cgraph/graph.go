package cgraph

import (
	"fmt"
	"slices"

	"github.com/birdayz/mconstraint/scene"
)

// NodeID is a strongly-typed identifier for graph nodes. It is the scene name
// the node has (external nodes) or will be created with.
type NodeID string

// Validate checks that the NodeID is usable as a scene node name.
func (id NodeID) Validate() error {
	if err := scene.ValidateName(string(id)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNodeID, err)
	}
	return nil
}

// NodeType represents the role of a node in a constraint network.
type NodeType int

const (
	// NodeTypeExternal is an existing transform (a driver or the driven).
	NodeTypeExternal NodeType = iota
	// NodeTypeSettings holds the per-driver weight attributes.
	NodeTypeSettings
	// NodeTypeWeightedSum blends driver matrices by weight.
	NodeTypeWeightedSum
	// NodeTypeOffsetMultiply applies a frozen offset to one driver matrix.
	NodeTypeOffsetMultiply
	// NodeTypeCompositeMultiply moves the blend into the driven's parent space.
	NodeTypeCompositeMultiply
	// NodeTypeDecompose splits the result into translate/rotate/scale.
	NodeTypeDecompose
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeExternal:
		return "External"
	case NodeTypeSettings:
		return "Settings"
	case NodeTypeWeightedSum:
		return "WeightedSum"
	case NodeTypeOffsetMultiply:
		return "OffsetMultiply"
	case NodeTypeCompositeMultiply:
		return "CompositeMultiply"
	case NodeTypeDecompose:
		return "Decompose"
	default:
		return "Unknown"
	}
}

// SceneType is the host node type created for t. External nodes are never created.
func (t NodeType) SceneType() (scene.NodeType, bool) {
	switch t {
	case NodeTypeSettings:
		return scene.TypeTransform, true
	case NodeTypeWeightedSum:
		return scene.TypeWtAddMatrix, true
	case NodeTypeOffsetMultiply, NodeTypeCompositeMultiply:
		return scene.TypeMultMatrix, true
	case NodeTypeDecompose:
		return scene.TypeDecomposeMatrix, true
	default:
		return "", false
	}
}

// downstream lists the node types each type may feed.
var downstream = map[NodeType][]NodeType{
	NodeTypeExternal:          {NodeTypeWeightedSum, NodeTypeOffsetMultiply, NodeTypeCompositeMultiply},
	NodeTypeSettings:          {NodeTypeWeightedSum},
	NodeTypeOffsetMultiply:    {NodeTypeWeightedSum},
	NodeTypeWeightedSum:       {NodeTypeCompositeMultiply},
	NodeTypeCompositeMultiply: {NodeTypeDecompose},
	NodeTypeDecompose:         {NodeTypeExternal},
}

// spaceAttrs are external outputs that depend only on the node's ancestors, so
// reading them adds no node-level dependency on the node itself.
var spaceAttrs = map[string]bool{
	"parentMatrix":        true,
	"parentInverseMatrix": true,
}

// Assignment is a constant value stored on a created node's attribute.
type Assignment struct {
	Attr  string
	Value any
}

// Node is the build-time representation of a node in the network.
type Node struct {
	ID   NodeID
	Type NodeType

	// Parent edges (incoming)
	Parents []NodeID

	// Child edges (outgoing)
	Children []NodeID

	// External nodes whose parent space this node reads
	Space []NodeID

	// Under is the scene hierarchy parent the node is created under, if any.
	Under NodeID

	// Dynamic attributes added after creation
	Attrs []scene.AttrSpec

	// Constant values set after the attributes exist
	Values []Assignment

	// Attributes locked (and made non-keyable) last
	Locked []string
}

// ValidateDownstream checks if this node can feed the given child node.
// Returns ErrInvalidTopology if the types are incompatible.
func (n *Node) ValidateDownstream(child *Node) error {
	for _, t := range downstream[n.Type] {
		if t == child.Type {
			return nil
		}
	}
	return fmt.Errorf("%w: %s node %s cannot feed %s node %s",
		ErrInvalidTopology, n.Type, n.ID, child.Type, child.ID)
}

// Edge is a plug-level connection between two graph nodes.
type Edge struct {
	Src scene.Plug
	Dst scene.Plug
}

func (e Edge) String() string {
	return string(e.Src) + " -> " + string(e.Dst)
}

// Graph is the build-time network representation.
type Graph struct {
	Nodes map[NodeID]*Node

	// Plug-level connections in insertion order
	Edges []Edge

	// Deterministic node ordering (insertion order)
	NodeOrder []NodeID
}

// NewGraph creates a new empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes:     make(map[NodeID]*Node),
		Edges:     make([]Edge, 0),
		NodeOrder: make([]NodeID, 0),
	}
}

// AddNode adds a node to the graph.
func (g *Graph) AddNode(node *Node) error {
	if err := node.ID.Validate(); err != nil {
		return err
	}
	if _, exists := g.Nodes[node.ID]; exists {
		return fmt.Errorf("%w: %s", ErrNodeAlreadyExists, node.ID)
	}
	g.Nodes[node.ID] = node
	g.NodeOrder = append(g.NodeOrder, node.ID)
	return nil
}

// AddEdge connects src to dst. The node-level edge is recorded once even when
// several plugs connect the same pair of nodes. Reads of an external node's
// parent space are recorded in the child's Space list instead.
func (g *Graph) AddEdge(src, dst scene.Plug) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	parentID, childID := NodeID(src.Node()), NodeID(dst.Node())
	parent, ok := g.Nodes[parentID]
	if !ok {
		return fmt.Errorf("%w: source %s", ErrNodeNotFound, parentID)
	}
	child, ok := g.Nodes[childID]
	if !ok {
		return fmt.Errorf("%w: destination %s", ErrNodeNotFound, childID)
	}

	if err := parent.ValidateDownstream(child); err != nil {
		return fmt.Errorf("cannot connect %s -> %s: %w", src, dst, err)
	}

	g.Edges = append(g.Edges, Edge{Src: src, Dst: dst})
	if parent.Type == NodeTypeExternal && spaceAttrs[src.Attr()] {
		if !slices.Contains(child.Space, parentID) {
			child.Space = append(child.Space, parentID)
		}
		return nil
	}
	if !slices.Contains(parent.Children, childID) {
		parent.Children = append(parent.Children, childID)
		child.Parents = append(child.Parents, parentID)
	}
	return nil
}

// Created returns the nodes that a commit creates, in insertion order.
func (g *Graph) Created() []*Node {
	out := make([]*Node, 0, len(g.NodeOrder))
	for _, id := range g.NodeOrder {
		if n := g.Nodes[id]; n.Type != NodeTypeExternal {
			out = append(out, n)
		}
	}
	return out
}
