package main

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/birdayz/mconstraint"
	"github.com/birdayz/mconstraint/internal/xform"
	"github.com/birdayz/mconstraint/scene"
)

type report struct {
	Networks    []network          `yaml:"networks"`
	Connections []scene.Connection `yaml:"connections"`
	Driven      pose               `yaml:"driven"`
}

type network struct {
	Channel        string               `yaml:"channel"`
	ID             string               `yaml:"id"`
	Settings       string               `yaml:"settings"`
	Members        []string             `yaml:"members"`
	Axes           string               `yaml:"axes"`
	MaintainOffset bool                 `yaml:"maintainOffset"`
	Weights        []mconstraint.Weight `yaml:"weights"`
}

type pose struct {
	Name      string    `yaml:"name"`
	Translate mgl64.Vec3 `yaml:"translate,flow"`
	Rotate    mgl64.Vec3 `yaml:"rotate,flow"`
	Scale     mgl64.Vec3 `yaml:"scale,flow"`
}

func newReport(c *mconstraint.Constrainer, host *scene.Memory, res *mconstraint.Result) (*report, error) {
	rep := &report{Connections: host.Connections()}

	for _, ch := range res.Channels() {
		s, _ := res.Get(ch)
		weights, err := c.Weights(s)
		if err != nil {
			return nil, err
		}
		rep.Networks = append(rep.Networks, network{
			Channel:        ch.String(),
			ID:             s.ID.String(),
			Settings:       s.Node,
			Members:        s.Members,
			Axes:           s.Axes.String(),
			MaintainOffset: s.MaintainOffset,
			Weights:        weights,
		})
	}

	if last := res.Last(); last != nil {
		p, err := localPose(host, last.Driven)
		if err != nil {
			return nil, err
		}
		rep.Driven = p
	}
	return rep, nil
}

// localPose reads the evaluated local channels of a transform.
func localPose(h scene.Host, name string) (pose, error) {
	p := pose{Name: name}
	for _, ch := range []struct {
		attr string
		dst  *mgl64.Vec3
	}{
		{"translate", &p.Translate},
		{"rotate", &p.Rotate},
		{"scale", &p.Scale},
	} {
		v, err := scene.GetVector(h, scene.PlugOf(name, ch.attr))
		if err != nil {
			return pose{}, err
		}
		*ch.dst = round(v)
	}
	return p, nil
}

// worldPose decomposes the world matrix of a transform.
func worldPose(h scene.Host, name string) (pose, error) {
	m, err := scene.WorldMatrix(h, name)
	if err != nil {
		return pose{}, err
	}
	t, r, s := xform.Decompose(m)
	return pose{Name: name, Translate: round(t), Rotate: round(r), Scale: round(s)}, nil
}

// round drops float noise below 1e-9 so reports stay readable.
func round(v mgl64.Vec3) mgl64.Vec3 {
	for i := range v {
		v[i] = mgl64.Round(v[i], 9)
		if v[i] == 0 { // -0
			v[i] = 0
		}
	}
	return v
}
