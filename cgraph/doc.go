// Package cgraph provides a Directed Acyclic Graph (DAG) builder for matrix
// constraint networks.
//
// # Overview
//
// A network is planned as a graph before anything touches the scene. External
// nodes are transforms that already exist (drivers and the driven); every
// other node is created by the commit:
//
//	driver.worldMatrix ─┐
//	   (offsetMatrix)   ├─> wtMatrix ─> multMatrix ─> decompMatrix ─> driven.translate
//	settings.<d>_Weight ┘                   ^
//	                     driven.parentInverseMatrix
//
// Edges are plug-level (scene.Plug). The node-level adjacency derived from
// them drives validation:
//
//   - cycles (a driver that is also the driven closes a loop)
//   - orphans: created nodes without inputs
//   - dead ends: created nodes that never reach an external node
//   - plug conflicts: two edges driving overlapping destinations
//   - topology: each node type may only feed certain types
//
// An external node's parentMatrix and parentInverseMatrix depend only on its
// ancestors, so reading them is tracked separately (Node.Space) and does not
// count as a dependency on the node itself.
//
// # Basic Usage
//
//	b := cgraph.NewBuilder()
//	if err := b.AddExternal("A"); err != nil {
//		return err
//	}
//	wt, err := b.AddNode("C_point_wtMatrix", cgraph.NodeTypeWeightedSum)
//	...
//	err = b.Connect(scene.PlugOf("A", "worldMatrix"), scene.PlugOf(string(wt.ID), "wtMatrix[0].matrixIn"))
//	...
//	dag, err := b.Build()
//
// Build returns a DAG whose Created method lists the nodes to create in
// deterministic topological order.
package cgraph
