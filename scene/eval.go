package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/birdayz/mconstraint/internal/xform"
)

// eval pulls the value of p through the connection graph. visiting guards
// against dependency cycles; it is keyed by plug because a node can be both
// upstream and downstream of the same network (a driven transform feeds its
// parentInverseMatrix into the network that writes its translate).
func (m *Memory) eval(p Plug, visiting map[Plug]bool) (any, error) {
	if visiting[p] {
		return nil, fmt.Errorf("%w: through %s", ErrCycle, p)
	}
	visiting[p] = true
	defer delete(visiting, p)

	t, err := m.resolve(p, false)
	if err != nil {
		return nil, err
	}

	if t.spec.Output {
		v, err := m.compute(t.node, t.key, visiting)
		if err != nil {
			return nil, err
		}
		if t.comp >= 0 {
			return v.(mgl64.Vec3)[t.comp], nil
		}
		return v, nil
	}

	if src, ok := m.inputs[p]; ok {
		return m.eval(src, visiting)
	}

	if t.comp >= 0 {
		parent := PlugOf(t.node.name, t.key)
		if src, ok := m.inputs[parent]; ok {
			v, err := m.eval(src, visiting)
			if err != nil {
				return nil, err
			}
			return v.(mgl64.Vec3)[t.comp], nil
		}
		return t.attr.value.(mgl64.Vec3)[t.comp], nil
	}

	if t.attr == nil {
		return t.spec.Default, nil
	}

	if t.spec.Type == AttrVector {
		vec := t.attr.value.(mgl64.Vec3)
		for i, axis := range []string{"X", "Y", "Z"} {
			src, ok := m.inputs[PlugOf(t.node.name, t.key+axis)]
			if !ok {
				continue
			}
			v, err := m.eval(src, visiting)
			if err != nil {
				return nil, err
			}
			vec[i] = v.(float64)
		}
		return vec, nil
	}

	return t.attr.value, nil
}

func (m *Memory) evalMatrix(p Plug, visiting map[Plug]bool) (mgl64.Mat4, error) {
	v, err := m.eval(p, visiting)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	return v.(mgl64.Mat4), nil
}

func (m *Memory) evalVector(p Plug, visiting map[Plug]bool) (mgl64.Vec3, error) {
	v, err := m.eval(p, visiting)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return v.(mgl64.Vec3), nil
}

func (m *Memory) evalDouble(p Plug, visiting map[Plug]bool) (float64, error) {
	v, err := m.eval(p, visiting)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// compute produces the value of an output attribute.
func (m *Memory) compute(n *node, attr string, visiting map[Plug]bool) (any, error) {
	switch n.typ {
	case TypeTransform:
		return m.computeTransform(n, attr, visiting)
	case TypeWtAddMatrix:
		return m.computeWtAdd(n, visiting)
	case TypeMultMatrix:
		return m.computeMult(n, visiting)
	case TypeDecomposeMatrix:
		in, err := m.evalMatrix(PlugOf(n.name, "inputMatrix"), visiting)
		if err != nil {
			return nil, err
		}
		t, r, s := xform.Decompose(in)
		switch attr {
		case "outputTranslate":
			return t, nil
		case "outputRotate":
			return r, nil
		case "outputScale":
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s has no computed value", ErrAttrNotFound, PlugOf(n.name, attr))
}

func (m *Memory) computeTransform(n *node, attr string, visiting map[Plug]bool) (any, error) {
	switch attr {
	case "matrix":
		return m.localMatrix(n, visiting)
	case "parentMatrix":
		return m.parentMatrix(n, visiting)
	case "parentInverseMatrix":
		pm, err := m.parentMatrix(n, visiting)
		if err != nil {
			return nil, err
		}
		return xform.Inverse(pm)
	case "worldMatrix", "worldInverseMatrix":
		pm, err := m.parentMatrix(n, visiting)
		if err != nil {
			return nil, err
		}
		local, err := m.localMatrix(n, visiting)
		if err != nil {
			return nil, err
		}
		world := pm.Mul4(local)
		if attr == "worldMatrix" {
			return world, nil
		}
		return xform.Inverse(world)
	}
	return nil, fmt.Errorf("%w: %s", ErrAttrNotFound, PlugOf(n.name, attr))
}

func (m *Memory) localMatrix(n *node, visiting map[Plug]bool) (mgl64.Mat4, error) {
	t, err := m.evalVector(PlugOf(n.name, "translate"), visiting)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	r, err := m.evalVector(PlugOf(n.name, "rotate"), visiting)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	s, err := m.evalVector(PlugOf(n.name, "scale"), visiting)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	return xform.Compose(t, r, s), nil
}

func (m *Memory) parentMatrix(n *node, visiting map[Plug]bool) (mgl64.Mat4, error) {
	parent, ok := m.nodes[n.parent]
	if !ok || parent.typ != TypeTransform {
		return mgl64.Ident4(), nil
	}
	return m.evalMatrix(PlugOf(parent.name, "worldMatrix"), visiting)
}

// indices returns the sorted element indices of a multi attribute that are
// either set or connected.
func (m *Memory) indices(n *node, base string) []int {
	seen := make(map[int]bool)
	collect := func(attr string) {
		if b, idx, _, ok := parseMulti(attr); ok && b == base {
			seen[idx] = true
		}
	}
	for attr := range n.attrs {
		collect(attr)
	}
	prefix := n.name + "."
	for dst := range m.inputs {
		if strings.HasPrefix(string(dst), prefix) {
			collect(dst.Attr())
		}
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}

// computeWtAdd sums weight_i * matrix_i over all elements.
func (m *Memory) computeWtAdd(n *node, visiting map[Plug]bool) (mgl64.Mat4, error) {
	var sum mgl64.Mat4
	for _, i := range m.indices(n, "wtMatrix") {
		elem := fmt.Sprintf("wtMatrix[%d]", i)
		w, err := m.evalDouble(PlugOf(n.name, elem+".weightIn"), visiting)
		if err != nil {
			return mgl64.Mat4{}, err
		}
		mat, err := m.evalMatrix(PlugOf(n.name, elem+".matrixIn"), visiting)
		if err != nil {
			return mgl64.Mat4{}, err
		}
		sum = sum.Add(mat.Mul(w))
	}
	return sum, nil
}

// computeMult applies the inputs in index order: matrixIn[0] first. With
// column vectors that is in[n-1] · ... · in[1] · in[0].
func (m *Memory) computeMult(n *node, visiting map[Plug]bool) (mgl64.Mat4, error) {
	result := mgl64.Ident4()
	for _, i := range m.indices(n, "matrixIn") {
		mat, err := m.evalMatrix(PlugOf(n.name, fmt.Sprintf("matrixIn[%d]", i)), visiting)
		if err != nil {
			return mgl64.Mat4{}, err
		}
		result = mat.Mul4(result)
	}
	return result, nil
}
