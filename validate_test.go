package mconstraint

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/mock/gomock"

	"github.com/birdayz/mconstraint/scene"
)

var pointAll = Flags{Point: true, All: true}

func TestValidateWithoutHostCalls(t *testing.T) {
	for _, tc := range []struct {
		name  string
		nodes []string
		flags Flags
		want  error
	}{
		{"no nodes", []string{}, pointAll, ErrInsufficientNodes},
		{"one node", []string{"A"}, pointAll, ErrInsufficientNodes},
		{"count checked before channels", []string{"A"}, Flags{}, ErrInsufficientNodes},
		{"no channel", []string{"A", "C"}, Flags{All: true}, ErrNoChannelSelected},
		{"no axis", []string{"A", "C"}, Flags{Point: true}, ErrNoAxisSelected},
		{"channel checked before axis", []string{"A", "C"}, Flags{}, ErrNoChannelSelected},
		{"empty element", []string{"A", ""}, pointAll, ErrInvalidObjectList},
		{"attribute address", []string{"A.translate", "C"}, pointAll, ErrInvalidObjectList},
		{"nested list syntax", []string{"[A,B]", "C"}, pointAll, ErrInvalidObjectList},
		{"driven is driver", []string{"A", "C", "C"}, pointAll, ErrDrivenIsDriver},
		{"duplicate driver", []string{"A", "A", "C"}, pointAll, ErrInvalidObjectList},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			host := NewMockHost(ctrl)

			_, err := New(host).Constrain(tc.nodes, tc.flags)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("nil list reads the selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		host := NewMockHost(ctrl)
		host.EXPECT().Selection().Return([]string{"A", "B", "C"})
		host.EXPECT().Exists(gomock.Any()).Return(true).Times(3)
		host.EXPECT().Children("C").Return(nil, nil)

		req, err := New(host).Validate(nil, Flags{Orient: true, X: true, MaintainOffset: true})
		assert.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, req.Drivers)
		assert.Equal(t, "C", req.Driven)
		assert.Equal(t, NewChannelSet(ChannelOrient), req.Channels)
		assert.Equal(t, Axes(AxisX), req.Axes)
		assert.True(t, req.MaintainOffset)
	})

	t.Run("short selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		host := NewMockHost(ctrl)
		host.EXPECT().Selection().Return([]string{"A"})

		_, err := New(host).Validate(nil, pointAll)
		assert.True(t, errors.Is(err, ErrInsufficientNodes))
	})

	t.Run("missing node", func(t *testing.T) {
		m := newScene(t)
		_, err := New(m).Validate([]string{"A", "ghost", "C"}, pointAll)
		assert.True(t, errors.Is(err, ErrInvalidObjectList))
		assert.True(t, errors.Is(err, scene.ErrNodeNotFound))
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("driver below the driven", func(t *testing.T) {
		m := newScene(t)
		addTransform(t, m, "D", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{})
		assert.NoError(t, m.SetParent("A", "C"))
		assert.NoError(t, m.SetParent("D", "A"))
		before := m.Nodes()

		for _, nodes := range [][]string{{"A", "C"}, {"B", "D", "C"}} {
			_, err := New(m).Constrain(nodes, pointAll)
			assert.True(t, errors.Is(err, ErrDrivenIsDriver), "got %v", err)
		}
		assert.Equal(t, before, m.Nodes())

		_, err := scene.WorldMatrix(m, "C")
		assert.NoError(t, err)
	})

	t.Run("driver above the driven", func(t *testing.T) {
		m := newScene(t)
		assert.NoError(t, m.SetParent("C", "A"))

		_, err := New(m).Constrain([]string{"A", "B", "C"}, pointAll)
		assert.NoError(t, err)
		_, err = scene.WorldMatrix(m, "C")
		assert.NoError(t, err)
	})

	t.Run("validation failure leaves the scene untouched", func(t *testing.T) {
		m := newScene(t)
		assert.NoError(t, m.Select("A", "C"))
		before := m.Nodes()

		_, err := New(m).Constrain(nil, Flags{All: true})
		assert.True(t, errors.Is(err, ErrNoChannelSelected))
		assert.Equal(t, before, m.Nodes())
		assert.Equal(t, []string{"A", "C"}, m.Selection())
	})

	t.Run("build rechecks requests", func(t *testing.T) {
		m := newScene(t)
		c := New(m)

		_, err := c.Build(&Request{Drivers: []string{"A"}, Driven: "C", Channels: NewChannelSet(ChannelPoint)})
		assert.True(t, errors.Is(err, ErrNoAxisSelected))

		_, err = c.Build(&Request{Drivers: []string{"C"}, Driven: "C", Channels: NewChannelSet(ChannelPoint), Axes: AllAxes()})
		assert.True(t, errors.Is(err, ErrDrivenIsDriver))

		_, err = c.Build(nil)
		assert.True(t, errors.Is(err, ErrInsufficientNodes))
	})
}
