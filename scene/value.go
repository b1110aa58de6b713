package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// GetVector reads a double3 attribute.
func GetVector(h Host, p Plug) (mgl64.Vec3, error) {
	v, err := h.GetAttr(p)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	vec, ok := v.(mgl64.Vec3)
	if !ok {
		return mgl64.Vec3{}, fmt.Errorf("%w: %s is %T, not double3", ErrTypeMismatch, p, v)
	}
	return vec, nil
}

// GetMatrix reads a matrix attribute.
func GetMatrix(h Host, p Plug) (mgl64.Mat4, error) {
	v, err := h.GetAttr(p)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	m, ok := v.(mgl64.Mat4)
	if !ok {
		return mgl64.Mat4{}, fmt.Errorf("%w: %s is %T, not matrix", ErrTypeMismatch, p, v)
	}
	return m, nil
}

// WorldMatrix returns the evaluated world matrix of a transform.
func WorldMatrix(h Host, node string) (mgl64.Mat4, error) {
	return GetMatrix(h, PlugOf(node, "worldMatrix"))
}

// coerce converts v to the Go representation of t.
func coerce(t AttrType, v any) (any, error) {
	switch t {
	case AttrDouble:
		switch f := v.(type) {
		case float64:
			return f, nil
		case float32:
			return float64(f), nil
		case int:
			return float64(f), nil
		}
	case AttrBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case AttrString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case AttrVector:
		switch vec := v.(type) {
		case mgl64.Vec3:
			return vec, nil
		case [3]float64:
			return mgl64.Vec3(vec), nil
		}
	case AttrMatrix:
		if m, ok := v.(mgl64.Mat4); ok {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: cannot use %T as %s", ErrTypeMismatch, v, t)
}

// zeroValue is the value an attribute of type t holds when no default is given.
func zeroValue(t AttrType) any {
	switch t {
	case AttrDouble:
		return 0.0
	case AttrBool:
		return false
	case AttrString:
		return ""
	case AttrVector:
		return mgl64.Vec3{}
	case AttrMatrix:
		return mgl64.Ident4()
	default:
		return nil
	}
}
