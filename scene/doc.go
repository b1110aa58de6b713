// Package scene defines the scene-graph collaborator used to build constraint
// networks, and provides Memory, an in-memory implementation.
//
// # Addressing
//
// Nodes are addressed by name and attributes by Plug ("node.attr"). Vector
// attributes expose scalar components with an X/Y/Z suffix ("n.translateX").
// Indexed attributes use brackets ("blend.wtMatrix[1].weightIn").
//
// # Evaluation
//
// Memory evaluates on read. Reading an attribute follows its incoming
// connection, and output attributes are computed from their node's inputs:
//
//   - transform: matrix = T · R · S, worldMatrix = parentMatrix · matrix,
//     plus the inverse and parent matrices
//   - wtAddMatrix: matrixSum = Σ wtMatrix[i].weightIn · wtMatrix[i].matrixIn
//   - multMatrix: matrixSum applies matrixIn[0] first, then matrixIn[1], ...
//   - decomposeMatrix: outputTranslate / outputRotate / outputScale of inputMatrix
//
// Rotations are XYZ Euler angles in degrees.
//
// Disconnecting or deleting a source leaves the destination holding the value
// it last received.
package scene
