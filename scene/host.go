package scene

import (
	"errors"
	"fmt"

	"github.com/birdayz/mconstraint/internal/xform"
)

// NodeType is the host type name of a scene node.
type NodeType string

const (
	TypeTransform       NodeType = "transform"
	TypeWtAddMatrix     NodeType = "wtAddMatrix"
	TypeMultMatrix      NodeType = "multMatrix"
	TypeDecomposeMatrix NodeType = "decomposeMatrix"
)

// AttrType is the value type of an attribute.
type AttrType int

const (
	AttrDouble AttrType = iota
	AttrBool
	AttrString
	AttrVector
	AttrMatrix
)

func (t AttrType) String() string {
	switch t {
	case AttrDouble:
		return "double"
	case AttrBool:
		return "bool"
	case AttrString:
		return "string"
	case AttrVector:
		return "double3"
	case AttrMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// AttrSpec describes an attribute.
type AttrSpec struct {
	Name    string
	Type    AttrType
	Default any

	// Keyable marks the attribute as an animatable channel.
	Keyable bool
	// Locked attributes refuse SetAttr and incoming connections.
	Locked bool
	// Output attributes are computed by their node and are read-only.
	Output bool
}

// AttrFlags are the per-attribute state flags.
type AttrFlags struct {
	Locked  bool
	Keyable bool
}

// Host is the scene-graph collaborator the constraint builder drives.
//
// Node handles are node names. Attributes are addressed by Plug. Values are
// float64 (double), bool, string, mgl64.Vec3 (double3) or mgl64.Mat4 (matrix).
// Reading an attribute returns its evaluated value, following connections.
type Host interface {
	// Selection returns the active selection in selection order.
	Selection() []string
	// Select replaces the active selection.
	Select(names ...string) error
	// ClearSelection empties the active selection.
	ClearSelection()

	// Exists reports whether a node with the given name exists.
	Exists(name string) bool
	// NodeID returns a stable identifier that survives renames.
	NodeID(name string) (string, error)
	// CreateNode creates a node of the given type with the requested name and
	// returns the name it was given.
	CreateNode(typ NodeType, name string) (string, error)
	// SetParent reparents child under parent. An empty parent reparents to the world.
	SetParent(child, parent string) error
	// Children returns the direct hierarchy children of a node.
	Children(name string) ([]string, error)
	// Delete deletes a node and everything parented under it.
	Delete(name string) error
	// Rename renames a node and returns the name it was given. Connections and
	// hierarchy follow the node.
	Rename(name, newName string) (string, error)

	AddAttr(node string, spec AttrSpec) error
	HasAttr(p Plug) bool
	GetAttr(p Plug) (any, error)
	SetAttr(p Plug, v any) error
	SetAttrFlags(p Plug, flags AttrFlags) error

	// Connect drives dst from src.
	Connect(src, dst Plug) error
	// Disconnect removes the src -> dst connection. The destination keeps the
	// last value it received.
	Disconnect(src, dst Plug) error
	// Connection returns the source driving dst, if any.
	Connection(dst Plug) (Plug, bool)
}

// Sentinel errors for host operations.
var (
	ErrNodeNotFound     = errors.New("scene: node not found")
	ErrNodeExists       = errors.New("scene: node already exists")
	ErrUnknownNodeType  = errors.New("scene: unknown node type")
	ErrAttrNotFound     = errors.New("scene: attribute not found")
	ErrAttrExists       = errors.New("scene: attribute already exists")
	ErrLocked           = errors.New("scene: attribute is locked")
	ErrReadOnly         = errors.New("scene: attribute is read-only")
	ErrAlreadyConnected = errors.New("scene: attribute already has an incoming connection")
	ErrNotConnected     = errors.New("scene: attributes are not connected")
	ErrTypeMismatch     = errors.New("scene: attribute type mismatch")
	ErrCycle            = errors.New("scene: dependency cycle")
	ErrInvalidName      = errors.New("scene: invalid name")
	ErrInvalidHierarchy = errors.New("scene: invalid hierarchy")
	ErrSingularMatrix   = xform.ErrSingularMatrix
)

// GetDouble reads a double attribute.
func GetDouble(h Host, p Plug) (float64, error) {
	v, err := h.GetAttr(p)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T, not double", ErrTypeMismatch, p, v)
	}
	return f, nil
}

// GetString reads a string attribute.
func GetString(h Host, p Plug) (string, error) {
	v, err := h.GetAttr(p)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not string", ErrTypeMismatch, p, v)
	}
	return s, nil
}

// GetBool reads a bool attribute.
func GetBool(h Host, p Plug) (bool, error) {
	v, err := h.GetAttr(p)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is %T, not bool", ErrTypeMismatch, p, v)
	}
	return b, nil
}
