// Package xform composes and decomposes transform matrices.
//
// Matrices use mgl64's column-vector convention: a point p maps to M·p, and the
// world matrix of a node is parentWorld · local. Rotations are Euler angles in
// degrees with XYZ rotate order (X applied first).
package xform

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularMatrix is returned when a matrix has no inverse.
var ErrSingularMatrix = errors.New("xform: singular matrix")

// singularThreshold is the smallest determinant magnitude treated as invertible.
const singularThreshold = 1e-12

// Compose builds T · R · S.
func Compose(t, r, s mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(t[0], t[1], t[2]).
		Mul4(Rotation(r)).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

// Rotation builds Rz · Ry · Rx from XYZ Euler angles in degrees.
func Rotation(r mgl64.Vec3) mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(r[0]))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(r[1]))
	rz := mgl64.HomogRotate3DZ(mgl64.DegToRad(r[2]))
	return rz.Mul4(ry).Mul4(rx)
}

// Decompose splits m into translation, XYZ Euler rotation in degrees and
// scale. Shear is discarded. A negative determinant is folded into scale X.
func Decompose(m mgl64.Mat4) (t, r, s mgl64.Vec3) {
	t = mgl64.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}

	cols := [3]mgl64.Vec3{m.Col(0).Vec3(), m.Col(1).Vec3(), m.Col(2).Vec3()}
	for i, c := range cols {
		s[i] = c.Len()
	}
	if m.Mat3().Det() < 0 {
		s[0] = -s[0]
	}
	for i := range cols {
		if math.Abs(s[i]) > singularThreshold {
			cols[i] = cols[i].Mul(1 / s[i])
		}
	}

	r = EulerXYZ(mgl64.Mat3FromCols(cols[0], cols[1], cols[2]))
	return t, r, s
}

// EulerXYZ extracts XYZ Euler angles in degrees from a rotation matrix.
// At gimbal lock the Z angle is zero and X absorbs the remaining rotation.
func EulerXYZ(m mgl64.Mat3) mgl64.Vec3 {
	sy := mgl64.Clamp(-m.At(2, 0), -1, 1)
	y := math.Asin(sy)

	var x, z float64
	if math.Abs(sy) < 1-1e-9 {
		x = math.Atan2(m.At(2, 1), m.At(2, 2))
		z = math.Atan2(m.At(1, 0), m.At(0, 0))
	} else {
		x = math.Atan2(-m.At(1, 2), m.At(1, 1))
	}
	return mgl64.Vec3{mgl64.RadToDeg(x), mgl64.RadToDeg(y), mgl64.RadToDeg(z)}
}

// Inverse inverts m, failing on singular matrices instead of returning zero.
func Inverse(m mgl64.Mat4) (mgl64.Mat4, error) {
	det := m.Det()
	if math.Abs(det) < singularThreshold {
		return mgl64.Mat4{}, fmt.Errorf("%w: determinant %g", ErrSingularMatrix, det)
	}
	return m.Inv(), nil
}

// Offset returns the constant that maps driver onto driven when applied after
// the driver's world matrix: driver · Offset(driven, driver) == driven.
func Offset(driven, driver mgl64.Mat4) (mgl64.Mat4, error) {
	inv, err := Inverse(driver)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	return inv.Mul4(driven), nil
}

// ApproxEqual reports whether every element of a and b differs by at most eps.
func ApproxEqual(a, b mgl64.Mat4, eps float64) bool {
	return near(a[:], b[:], eps)
}

// ApproxEqualVec is ApproxEqual for vectors.
func ApproxEqualVec(a, b mgl64.Vec3, eps float64) bool {
	return near(a[:], b[:], eps)
}

func near(a, b []float64, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
