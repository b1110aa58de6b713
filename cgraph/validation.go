package cgraph

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Validation limits to prevent pathological cases
const (
	MaxNodesPerDAG     = 10000
	MaxDepth           = 500
	MaxChildrenPerNode = 1000
)

// Validate performs all topology validations.
// This includes cycle detection, orphan and dead-end detection, hierarchy
// references and plug conflicts. Returns early on first error.
func (g *Graph) Validate() error {
	if len(g.Nodes) > MaxNodesPerDAG {
		return fmt.Errorf("%w: node count %d exceeds maximum %d",
			ErrInvalidTopology, len(g.Nodes), MaxNodesPerDAG)
	}

	// 1. Cycle detection using DFS
	if err := g.detectCycles(); err != nil {
		return fmt.Errorf("DAG validation failed: %w", err)
	}

	// 2. Created nodes nothing feeds
	if err := g.validateNoOrphans(); err != nil {
		return fmt.Errorf("DAG validation failed: %w", err)
	}

	// 3. Created nodes whose output never reaches a scene node
	if err := g.validateNoDeadEnds(); err != nil {
		return fmt.Errorf("DAG validation failed: %w", err)
	}

	// 4. Hierarchy parents must be part of the graph
	if err := g.validateHierarchy(); err != nil {
		return fmt.Errorf("DAG validation failed: %w", err)
	}

	// 5. Each destination plug has at most one source
	if err := g.validatePlugs(); err != nil {
		return fmt.Errorf("DAG validation failed: %w", err)
	}

	return nil
}

// detectCycles uses Depth-First Search (DFS) to find cycles in the DAG.
// Returns ErrCycleDetected if any cycle is found.
func (g *Graph) detectCycles() error {
	visited := make(map[NodeID]bool, len(g.Nodes))
	recStack := make(map[NodeID]bool, len(g.Nodes))

	var dfs func(NodeID, []NodeID, int) error
	dfs = func(nodeID NodeID, path []NodeID, depth int) error {
		if depth > MaxDepth {
			return fmt.Errorf("%w: maximum depth %d exceeded", ErrInvalidTopology, MaxDepth)
		}

		visited[nodeID] = true
		recStack[nodeID] = true
		path = append(path, nodeID)

		node := g.Nodes[nodeID]
		if len(node.Children) > MaxChildrenPerNode {
			return fmt.Errorf("%w: node %s has %d children, exceeds maximum %d",
				ErrInvalidTopology, nodeID, len(node.Children), MaxChildrenPerNode)
		}

		for _, childID := range node.Children {
			if !visited[childID] {
				if err := dfs(childID, path, depth+1); err != nil {
					return err
				}
			} else if recStack[childID] {
				cyclePath := append(path, childID)
				return fmt.Errorf("%w: %s", ErrCycleDetected, joinIDs(cyclePath, " -> "))
			}
		}

		recStack[nodeID] = false
		return nil
	}

	// Insertion order keeps the reported cycle stable
	for _, nodeID := range g.NodeOrder {
		if !visited[nodeID] {
			if err := dfs(nodeID, nil, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateNoOrphans checks that every created node except settings nodes has
// an input. Settings nodes are roots: their weights are user-driven.
func (g *Graph) validateNoOrphans() error {
	var orphans []NodeID
	for _, node := range g.Created() {
		if node.Type == NodeTypeSettings {
			continue
		}
		if len(node.Parents) == 0 && len(node.Space) == 0 {
			orphans = append(orphans, node.ID)
		}
	}

	if len(orphans) > 0 {
		slices.Sort(orphans)
		return fmt.Errorf("%w (no inputs): %s", ErrOrphanedNodes, joinIDs(orphans, ", "))
	}
	return nil
}

// validateNoDeadEnds checks that every created node reaches an external node.
func (g *Graph) validateNoDeadEnds() error {
	reaches := make(map[NodeID]bool, len(g.Nodes))
	for _, node := range g.Nodes {
		if node.Type == NodeTypeExternal {
			g.markUpstream(node.ID, reaches)
		}
	}

	var dead []NodeID
	for _, node := range g.Created() {
		if !reaches[node.ID] {
			dead = append(dead, node.ID)
		}
	}

	if len(dead) > 0 {
		slices.Sort(dead)
		return fmt.Errorf("%w: %s", ErrDeadEnd, joinIDs(dead, ", "))
	}
	return nil
}

// markUpstream recursively marks all nodes that feed the given node.
func (g *Graph) markUpstream(nodeID NodeID, reaches map[NodeID]bool) {
	if reaches[nodeID] {
		return
	}

	reaches[nodeID] = true
	for _, parentID := range g.Nodes[nodeID].Parents {
		g.markUpstream(parentID, reaches)
	}
}

// validateHierarchy checks that every Under reference names a graph node.
func (g *Graph) validateHierarchy() error {
	for _, node := range g.Created() {
		if node.Under == "" {
			continue
		}
		if _, ok := g.Nodes[node.Under]; !ok {
			return fmt.Errorf("%w: node %s is placed under unknown node %s",
				ErrNodeNotFound, node.ID, node.Under)
		}
	}
	return nil
}

// validatePlugs checks that no two edges drive overlapping destinations, such
// as a whole vector and one of its components.
func (g *Graph) validatePlugs() error {
	for i, a := range g.Edges {
		for _, b := range g.Edges[i+1:] {
			if a.Dst.Overlaps(b.Dst) {
				return fmt.Errorf("%w: %s and %s", ErrPlugConflict, a, b)
			}
		}
	}
	return nil
}

func joinIDs(ids []NodeID, sep string) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = string(id)
	}
	return strings.Join(strs, sep)
}

// insertSorted inserts an item into a sorted slice maintaining sort order.
func insertSorted(slice []NodeID, item NodeID) []NodeID {
	idx := sort.Search(len(slice), func(i int) bool {
		return slice[i] >= item
	})
	return slices.Insert(slice, idx, item)
}

// topologicalSort creates a deterministic topological ordering using Kahn's algorithm.
// Space reads are ignored: they only name external nodes, which already exist.
func (g *Graph) topologicalSort() ([]NodeID, error) {
	inDegree := make(map[NodeID]int, len(g.Nodes))
	for nodeID := range g.Nodes {
		inDegree[nodeID] = 0
	}
	for _, node := range g.Nodes {
		for _, childID := range node.Children {
			inDegree[childID]++
		}
	}

	queue := make([]NodeID, 0, len(g.Nodes)/4)
	for nodeID, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, nodeID)
		}
	}
	slices.Sort(queue)

	result := make([]NodeID, 0, len(g.Nodes))
	for len(queue) > 0 {
		nodeID := queue[0]
		queue = queue[1:]
		result = append(result, nodeID)

		node := g.Nodes[nodeID]
		children := make([]NodeID, len(node.Children))
		copy(children, node.Children)
		slices.Sort(children)

		for _, childID := range children {
			inDegree[childID]--
			if inDegree[childID] == 0 {
				queue = insertSorted(queue, childID)
			}
		}
	}

	if len(result) != len(g.Nodes) {
		return nil, fmt.Errorf("%w: topological sort failed", ErrCycleDetected)
	}

	return result, nil
}
