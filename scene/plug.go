package scene

import (
	"fmt"
	"strings"
)

// Plug addresses one attribute of one node as "node.attr".
// Multi elements and compound children use the host's syntax, e.g.
// "blend.wtMatrix[0].weightIn" or "loc.translateX".
type Plug string

// PlugOf joins a node name and an attribute name.
func PlugOf(node, attr string) Plug {
	return Plug(node + "." + attr)
}

// Node returns the node part of the plug.
func (p Plug) Node() string {
	node, _, _ := strings.Cut(string(p), ".")
	return node
}

// Attr returns the attribute part of the plug.
func (p Plug) Attr() string {
	_, attr, _ := strings.Cut(string(p), ".")
	return attr
}

// Validate checks that the plug has a valid node name and a non-empty attribute.
func (p Plug) Validate() error {
	node, attr, ok := strings.Cut(string(p), ".")
	if !ok || attr == "" {
		return fmt.Errorf("%w: plug %q has no attribute", ErrInvalidName, string(p))
	}
	return ValidateName(node)
}

// vectorAttrs are the 3-vector attributes that expose X/Y/Z scalar children.
var vectorAttrs = map[string]bool{
	"translate":       true,
	"rotate":          true,
	"scale":           true,
	"outputTranslate": true,
	"outputRotate":    true,
	"outputScale":     true,
}

// IsVectorAttr reports whether attr is a 3-vector with X/Y/Z children.
func IsVectorAttr(attr string) bool {
	return vectorAttrs[attr]
}

// Component splits a scalar component plug ("n.translateY") into its vector
// parent ("n.translate") and the axis index (1).
func (p Plug) Component() (Plug, int, bool) {
	attr := p.Attr()
	if len(attr) < 2 {
		return "", 0, false
	}
	base := attr[:len(attr)-1]
	if !vectorAttrs[base] {
		return "", 0, false
	}
	idx := strings.IndexByte("XYZ", attr[len(attr)-1])
	if idx < 0 {
		return "", 0, false
	}
	return PlugOf(p.Node(), base), idx, true
}

// Overlapping returns every plug that drives the same scalar values as p:
// a vector plug with its three components, a component with its vector
// parent, or just p.
func (p Plug) Overlapping() []Plug {
	if base, _, ok := p.Component(); ok {
		return []Plug{p, base}
	}
	if !vectorAttrs[p.Attr()] {
		return []Plug{p}
	}
	node, attr := p.Node(), p.Attr()
	return []Plug{p, PlugOf(node, attr+"X"), PlugOf(node, attr+"Y"), PlugOf(node, attr+"Z")}
}

// Overlaps reports whether writing p and q would drive the same scalar value.
// A vector overlaps each of its components; sibling components do not overlap.
func (p Plug) Overlaps(q Plug) bool {
	if p == q {
		return true
	}
	if pb, _, ok := p.Component(); ok && pb == q {
		return true
	}
	if qb, _, ok := q.Component(); ok && qb == p {
		return true
	}
	return false
}

// ValidateName checks a node or attribute name.
// Names must be non-empty and cannot contain whitespace or the address
// separators '.', '[', ']' and ','.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, " \t\n\r.[],") {
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidName, name)
	}
	return nil
}
