package mconstraint

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/birdayz/mconstraint/internal/xform"
	"github.com/birdayz/mconstraint/scene"
)

const eps = 1e-9

var errBoom = errors.New("boom")

func assertVecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	if !xform.ApproxEqualVec(want, got, eps) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func addTransform(t *testing.T, m *scene.Memory, name string, translate, rotate mgl64.Vec3) {
	t.Helper()
	_, err := m.CreateNode(scene.TypeTransform, name)
	assert.NoError(t, err)
	assert.NoError(t, m.SetAttr(scene.PlugOf(name, "translate"), translate))
	assert.NoError(t, m.SetAttr(scene.PlugOf(name, "rotate"), rotate))
}

// newScene returns A at (2,0,0), B at (0,4,0) and C at (5,5,5).
func newScene(t *testing.T) *scene.Memory {
	t.Helper()
	m := scene.NewMemory()
	addTransform(t, m, "A", mgl64.Vec3{2, 0, 0}, mgl64.Vec3{})
	addTransform(t, m, "B", mgl64.Vec3{0, 4, 0}, mgl64.Vec3{})
	addTransform(t, m, "C", mgl64.Vec3{5, 5, 5}, mgl64.Vec3{})
	return m
}

func worldTranslate(t *testing.T, h scene.Host, name string) mgl64.Vec3 {
	t.Helper()
	w, err := scene.WorldMatrix(h, name)
	assert.NoError(t, err)
	tr, _, _ := xform.Decompose(w)
	return tr
}

func vector(t *testing.T, h scene.Host, p scene.Plug) mgl64.Vec3 {
	t.Helper()
	v, err := scene.GetVector(h, p)
	assert.NoError(t, err)
	return v
}

func weightSum(t *testing.T, c *Constrainer, s *Settings) float64 {
	t.Helper()
	weights, err := c.Weights(s)
	assert.NoError(t, err)
	var sum float64
	for _, w := range weights {
		sum += w.Value
	}
	return sum
}

// faultyHost fails the n-th Connect call.
type faultyHost struct {
	*scene.Memory
	failConnectAt int
	connects      int
}

func (h *faultyHost) Connect(src, dst scene.Plug) error {
	h.connects++
	if h.connects == h.failConnectAt {
		return errBoom
	}
	return h.Memory.Connect(src, dst)
}
