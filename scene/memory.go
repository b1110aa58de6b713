package scene

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Memory is an in-memory Host. It evaluates transform, wtAddMatrix,
// multMatrix and decomposeMatrix nodes on read.
//
// Memory is NOT safe for concurrent use.
type Memory struct {
	nodes map[string]*node

	// Creation order, for deterministic listings
	order []string

	// Incoming connections (destination -> source)
	inputs map[Plug]Plug

	selection []string
}

type node struct {
	id       uuid.UUID
	name     string
	typ      NodeType
	parent   string
	children []string
	attrs    map[string]*attribute
	flags    map[string]AttrFlags

	// Names of attributes added with AddAttr, in insertion order
	dynamic []string
}

type attribute struct {
	spec  AttrSpec
	value any
}

// Connection is one src -> dst edge in the scene.
type Connection struct {
	Src Plug `yaml:"src"`
	Dst Plug `yaml:"dst"`
}

// NewMemory creates an empty scene.
func NewMemory() *Memory {
	return &Memory{
		nodes:  make(map[string]*node),
		inputs: make(map[Plug]Plug),
	}
}

var _ Host = (*Memory)(nil)

func builtinAttrs(typ NodeType) ([]AttrSpec, bool) {
	switch typ {
	case TypeTransform:
		return []AttrSpec{
			{Name: "translate", Type: AttrVector, Default: mgl64.Vec3{}, Keyable: true},
			{Name: "rotate", Type: AttrVector, Default: mgl64.Vec3{}, Keyable: true},
			{Name: "scale", Type: AttrVector, Default: mgl64.Vec3{1, 1, 1}, Keyable: true},
			{Name: "visibility", Type: AttrBool, Default: true, Keyable: true},
			{Name: "matrix", Type: AttrMatrix, Output: true},
			{Name: "worldMatrix", Type: AttrMatrix, Output: true},
			{Name: "worldInverseMatrix", Type: AttrMatrix, Output: true},
			{Name: "parentMatrix", Type: AttrMatrix, Output: true},
			{Name: "parentInverseMatrix", Type: AttrMatrix, Output: true},
		}, true
	case TypeWtAddMatrix, TypeMultMatrix:
		return []AttrSpec{
			{Name: "matrixSum", Type: AttrMatrix, Output: true},
		}, true
	case TypeDecomposeMatrix:
		return []AttrSpec{
			{Name: "inputMatrix", Type: AttrMatrix, Default: mgl64.Ident4()},
			{Name: "outputTranslate", Type: AttrVector, Output: true},
			{Name: "outputRotate", Type: AttrVector, Output: true},
			{Name: "outputScale", Type: AttrVector, Output: true},
		}, true
	default:
		return nil, false
	}
}

// parseMulti splits "wtMatrix[2].weightIn" into ("wtMatrix", 2, "weightIn").
func parseMulti(attr string) (base string, index int, child string, ok bool) {
	open := strings.IndexByte(attr, '[')
	closing := strings.IndexByte(attr, ']')
	if open <= 0 || closing < open+2 {
		return "", 0, "", false
	}
	index, err := strconv.Atoi(attr[open+1 : closing])
	if err != nil || index < 0 {
		return "", 0, "", false
	}
	rest := attr[closing+1:]
	if rest != "" {
		if rest[0] != '.' || len(rest) == 1 {
			return "", 0, "", false
		}
		child = rest[1:]
	}
	return attr[:open], index, child, true
}

// multiSpec returns the element spec of an indexed attribute of a node type.
func multiSpec(typ NodeType, attr string) (AttrSpec, bool) {
	base, _, child, ok := parseMulti(attr)
	if !ok {
		return AttrSpec{}, false
	}
	switch {
	case typ == TypeWtAddMatrix && base == "wtMatrix" && child == "matrixIn":
		return AttrSpec{Name: attr, Type: AttrMatrix, Default: mgl64.Ident4()}, true
	case typ == TypeWtAddMatrix && base == "wtMatrix" && child == "weightIn":
		return AttrSpec{Name: attr, Type: AttrDouble, Default: 0.0}, true
	case typ == TypeMultMatrix && base == "matrixIn" && child == "":
		return AttrSpec{Name: attr, Type: AttrMatrix, Default: mgl64.Ident4()}, true
	}
	return AttrSpec{}, false
}

func (m *Memory) lookup(name string) (*node, error) {
	n, ok := m.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	return n, nil
}

// Exists reports whether a node exists.
func (m *Memory) Exists(name string) bool {
	_, ok := m.nodes[name]
	return ok
}

// NodeID returns the UUID assigned to the node at creation.
func (m *Memory) NodeID(name string) (string, error) {
	n, err := m.lookup(name)
	if err != nil {
		return "", err
	}
	return n.id.String(), nil
}

// NodeType returns the type of a node.
func (m *Memory) NodeType(name string) (NodeType, error) {
	n, err := m.lookup(name)
	if err != nil {
		return "", err
	}
	return n.typ, nil
}

// Nodes returns all node names in creation order.
func (m *Memory) Nodes() []string {
	return slices.Clone(m.order)
}

// CreateNode creates a node. The requested name must be free.
func (m *Memory) CreateNode(typ NodeType, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	if _, exists := m.nodes[name]; exists {
		return "", fmt.Errorf("%w: %q", ErrNodeExists, name)
	}
	specs, ok := builtinAttrs(typ)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNodeType, typ)
	}

	n := &node{
		id:    uuid.New(),
		name:  name,
		typ:   typ,
		attrs: make(map[string]*attribute, len(specs)),
		flags: make(map[string]AttrFlags),
	}
	for _, spec := range specs {
		n.attrs[spec.Name] = &attribute{spec: spec, value: spec.Default}
	}

	m.nodes[name] = n
	m.order = append(m.order, name)
	return name, nil
}

// Parent returns the hierarchy parent of a node, or "" for world children.
func (m *Memory) Parent(name string) (string, error) {
	n, err := m.lookup(name)
	if err != nil {
		return "", err
	}
	return n.parent, nil
}

// SetParent reparents child under parent, or under the world when parent is "".
func (m *Memory) SetParent(child, parent string) error {
	c, err := m.lookup(child)
	if err != nil {
		return err
	}
	if parent != "" {
		p, err := m.lookup(parent)
		if err != nil {
			return err
		}
		for cur := p; cur != nil; cur = m.nodes[cur.parent] {
			if cur == c {
				return fmt.Errorf("%w: %q is an ancestor of %q", ErrInvalidHierarchy, child, parent)
			}
		}
	}

	if old, ok := m.nodes[c.parent]; ok {
		old.children = slices.DeleteFunc(old.children, func(s string) bool { return s == child })
	}
	c.parent = parent
	if parent != "" {
		p := m.nodes[parent]
		p.children = append(p.children, child)
	}
	return nil
}

// Children returns the direct children of a node.
func (m *Memory) Children(name string) ([]string, error) {
	n, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// Delete removes a node and its hierarchy descendants. Destinations outside
// the deleted subtree keep the value they last received.
func (m *Memory) Delete(name string) error {
	if _, err := m.lookup(name); err != nil {
		return err
	}

	doomed := make(map[string]bool)
	var collect func(string)
	collect = func(n string) {
		doomed[n] = true
		for _, c := range m.nodes[n].children {
			collect(c)
		}
	}
	collect(name)

	// Bake surviving destinations before their sources disappear
	var dead []Plug
	for dst, src := range m.inputs {
		if !doomed[src.Node()] && !doomed[dst.Node()] {
			continue
		}
		if !doomed[dst.Node()] {
			if err := m.bake(dst); err != nil {
				return err
			}
		}
		dead = append(dead, dst)
	}
	for _, dst := range dead {
		delete(m.inputs, dst)
	}

	if parent, ok := m.nodes[m.nodes[name].parent]; ok {
		parent.children = slices.DeleteFunc(parent.children, func(s string) bool { return s == name })
	}
	for n := range doomed {
		delete(m.nodes, n)
	}
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return doomed[s] })
	m.selection = slices.DeleteFunc(m.selection, func(s string) bool { return doomed[s] })
	return nil
}

// Rename renames a node. The new name must be free.
func (m *Memory) Rename(name, newName string) (string, error) {
	n, err := m.lookup(name)
	if err != nil {
		return "", err
	}
	if err := ValidateName(newName); err != nil {
		return "", err
	}
	if _, exists := m.nodes[newName]; exists {
		return "", fmt.Errorf("%w: %q", ErrNodeExists, newName)
	}

	rename := func(s string) string {
		if s == name {
			return newName
		}
		return s
	}
	renamePlug := func(p Plug) Plug {
		if p.Node() != name {
			return p
		}
		return PlugOf(newName, p.Attr())
	}

	delete(m.nodes, name)
	n.name = newName
	m.nodes[newName] = n
	for i := range m.order {
		m.order[i] = rename(m.order[i])
	}
	for i := range m.selection {
		m.selection[i] = rename(m.selection[i])
	}
	if p, ok := m.nodes[n.parent]; ok {
		for i := range p.children {
			p.children[i] = rename(p.children[i])
		}
	}
	for _, c := range n.children {
		m.nodes[c].parent = newName
	}

	inputs := make(map[Plug]Plug, len(m.inputs))
	for dst, src := range m.inputs {
		inputs[renamePlug(dst)] = renamePlug(src)
	}
	m.inputs = inputs
	return newName, nil
}

// Selection returns the active selection.
func (m *Memory) Selection() []string {
	return slices.Clone(m.selection)
}

// Select replaces the active selection.
func (m *Memory) Select(names ...string) error {
	for _, name := range names {
		if _, err := m.lookup(name); err != nil {
			return err
		}
	}
	m.selection = slices.Clone(names)
	return nil
}

// ClearSelection empties the active selection.
func (m *Memory) ClearSelection() {
	m.selection = nil
}

// AddAttr adds a dynamic attribute to a node.
func (m *Memory) AddAttr(name string, spec AttrSpec) error {
	n, err := m.lookup(name)
	if err != nil {
		return err
	}
	if err := ValidateName(spec.Name); err != nil {
		return err
	}
	if _, exists := n.attrs[spec.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAttrExists, PlugOf(name, spec.Name))
	}
	if spec.Output {
		return fmt.Errorf("%w: dynamic attribute %s cannot be an output", ErrReadOnly, PlugOf(name, spec.Name))
	}

	value := zeroValue(spec.Type)
	if spec.Default != nil {
		if value, err = coerce(spec.Type, spec.Default); err != nil {
			return fmt.Errorf("default of %s: %w", PlugOf(name, spec.Name), err)
		}
	}

	n.attrs[spec.Name] = &attribute{spec: spec, value: value}
	n.dynamic = append(n.dynamic, spec.Name)
	n.flags[spec.Name] = AttrFlags{Locked: spec.Locked, Keyable: spec.Keyable}
	return nil
}

// DynamicAttrs returns the names of attributes added with AddAttr, in order.
func (m *Memory) DynamicAttrs(name string) ([]string, error) {
	n, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.dynamic), nil
}

// target is a resolved plug.
type target struct {
	node *node
	// Key of the backing attribute in node.attrs
	key  string
	attr *attribute
	spec AttrSpec
	// Vector component index, or -1 for the whole attribute
	comp int
}

// resolve finds the attribute behind p. Unset multi elements are created when
// create is true and otherwise resolve to their default.
func (m *Memory) resolve(p Plug, create bool) (target, error) {
	if err := p.Validate(); err != nil {
		return target{}, err
	}
	n, err := m.lookup(p.Node())
	if err != nil {
		return target{}, err
	}
	attr := p.Attr()

	if a, ok := n.attrs[attr]; ok {
		return target{node: n, key: attr, attr: a, spec: a.spec, comp: -1}, nil
	}
	if base, idx, ok := p.Component(); ok {
		if a, ok := n.attrs[base.Attr()]; ok && a.spec.Type == AttrVector {
			spec := AttrSpec{Name: attr, Type: AttrDouble, Keyable: a.spec.Keyable, Output: a.spec.Output}
			return target{node: n, key: base.Attr(), attr: a, spec: spec, comp: idx}, nil
		}
	}
	if spec, ok := multiSpec(n.typ, attr); ok {
		t := target{node: n, key: attr, spec: spec, comp: -1}
		if create {
			t.attr = &attribute{spec: spec, value: spec.Default}
			n.attrs[attr] = t.attr
		}
		return t, nil
	}
	return target{}, fmt.Errorf("%w: %s", ErrAttrNotFound, p)
}

// HasAttr reports whether p resolves to an attribute.
func (m *Memory) HasAttr(p Plug) bool {
	_, err := m.resolve(p, false)
	return err == nil
}

// GetAttr evaluates p.
func (m *Memory) GetAttr(p Plug) (any, error) {
	return m.eval(p, make(map[Plug]bool))
}

// SetAttr stores a value on an unlocked, unconnected input attribute.
func (m *Memory) SetAttr(p Plug, v any) error {
	t, err := m.resolve(p, true)
	if err != nil {
		return err
	}
	if t.spec.Output {
		return fmt.Errorf("%w: %s", ErrReadOnly, p)
	}
	if m.locked(t.node, p) {
		return fmt.Errorf("%w: %s", ErrLocked, p)
	}
	for _, q := range p.Overlapping() {
		if src, ok := m.inputs[q]; ok {
			return fmt.Errorf("%w: %s is driven by %s", ErrAlreadyConnected, q, src)
		}
	}
	value, err := coerce(t.spec.Type, v)
	if err != nil {
		return fmt.Errorf("set %s: %w", p, err)
	}
	m.store(t, value)
	return nil
}

func (m *Memory) store(t target, value any) {
	if t.comp < 0 {
		t.attr.value = value
		return
	}
	vec := t.attr.value.(mgl64.Vec3)
	vec[t.comp] = value.(float64)
	t.attr.value = vec
}

// AttrFlags returns the lock and keyable state of p.
func (m *Memory) AttrFlags(p Plug) (AttrFlags, error) {
	t, err := m.resolve(p, false)
	if err != nil {
		return AttrFlags{}, err
	}
	if f, ok := t.node.flags[p.Attr()]; ok {
		return f, nil
	}
	return AttrFlags{Keyable: t.spec.Keyable}, nil
}

// SetAttrFlags sets the lock and keyable state of p.
func (m *Memory) SetAttrFlags(p Plug, flags AttrFlags) error {
	t, err := m.resolve(p, false)
	if err != nil {
		return err
	}
	t.node.flags[p.Attr()] = flags
	return nil
}

// locked reports whether p or an overlapping plug is locked.
func (m *Memory) locked(n *node, p Plug) bool {
	for _, q := range p.Overlapping() {
		if n.flags[q.Attr()].Locked {
			return true
		}
	}
	return false
}

// Connect drives dst from src. Both plugs must have the same value type, with
// vector components counting as doubles.
func (m *Memory) Connect(src, dst Plug) error {
	s, err := m.resolve(src, false)
	if err != nil {
		return fmt.Errorf("connect source: %w", err)
	}
	d, err := m.resolve(dst, true)
	if err != nil {
		return fmt.Errorf("connect destination: %w", err)
	}
	if d.spec.Output {
		return fmt.Errorf("%w: %s", ErrReadOnly, dst)
	}
	if m.locked(d.node, dst) {
		return fmt.Errorf("%w: %s", ErrLocked, dst)
	}
	for _, q := range dst.Overlapping() {
		if cur, ok := m.inputs[q]; ok {
			return fmt.Errorf("%w: %s is driven by %s", ErrAlreadyConnected, q, cur)
		}
	}
	if s.spec.Type != d.spec.Type {
		return fmt.Errorf("%w: %s (%s) -> %s (%s)", ErrTypeMismatch, src, s.spec.Type, dst, d.spec.Type)
	}
	m.inputs[dst] = src
	return nil
}

// Disconnect removes the src -> dst connection, keeping the last value.
func (m *Memory) Disconnect(src, dst Plug) error {
	cur, ok := m.inputs[dst]
	if !ok || cur != src {
		return fmt.Errorf("%w: %s -> %s", ErrNotConnected, src, dst)
	}
	if err := m.bake(dst); err != nil {
		return err
	}
	delete(m.inputs, dst)
	return nil
}

// bake stores the current evaluated value of a connected destination.
func (m *Memory) bake(dst Plug) error {
	v, err := m.GetAttr(dst)
	if err != nil {
		return fmt.Errorf("bake %s: %w", dst, err)
	}
	t, err := m.resolve(dst, true)
	if err != nil {
		return err
	}
	m.store(t, v)
	return nil
}

// Connection returns the source driving dst.
func (m *Memory) Connection(dst Plug) (Plug, bool) {
	src, ok := m.inputs[dst]
	return src, ok
}

// Connections returns every connection sorted by destination.
func (m *Memory) Connections() []Connection {
	conns := make([]Connection, 0, len(m.inputs))
	for dst, src := range m.inputs {
		conns = append(conns, Connection{Src: src, Dst: dst})
	}
	slices.SortFunc(conns, func(a, b Connection) int { return strings.Compare(string(a.Dst), string(b.Dst)) })
	return conns
}
