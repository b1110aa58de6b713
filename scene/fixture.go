package scene

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Fixture describes a scene of transforms, used to seed a Memory host.
//
//	nodes:
//	  - name: rig
//	  - name: hand_L
//	    parent: rig
//	    translate: [4, 0, 0]
//	    rotate: [0, 45, 0]
//	selection: [hand_L, hand_R, prop]
type Fixture struct {
	Nodes     []FixtureNode `yaml:"nodes"`
	Selection []string      `yaml:"selection,omitempty"`
}

// FixtureNode is one transform of a Fixture.
type FixtureNode struct {
	Name      string      `yaml:"name"`
	Parent    string      `yaml:"parent,omitempty"`
	Translate *[3]float64 `yaml:"translate,omitempty"`
	Rotate    *[3]float64 `yaml:"rotate,omitempty"`
	Scale     *[3]float64 `yaml:"scale,omitempty"`
}

// LoadFixture decodes a YAML fixture and builds the scene it describes.
// Unknown keys are rejected.
func LoadFixture(r io.Reader) (*Memory, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return f.Build()
}

// Build creates a Memory host containing the fixture's transforms.
// Parents may be declared after their children.
func (f *Fixture) Build() (*Memory, error) {
	m := NewMemory()

	for _, n := range f.Nodes {
		if _, err := m.CreateNode(TypeTransform, n.Name); err != nil {
			return nil, fmt.Errorf("fixture node %q: %w", n.Name, err)
		}
		channels := []struct {
			attr string
			v    *[3]float64
		}{
			{"translate", n.Translate},
			{"rotate", n.Rotate},
			{"scale", n.Scale},
		}
		for _, ch := range channels {
			if ch.v == nil {
				continue
			}
			if err := m.SetAttr(PlugOf(n.Name, ch.attr), mgl64.Vec3(*ch.v)); err != nil {
				return nil, fmt.Errorf("fixture node %q: %w", n.Name, err)
			}
		}
	}

	for _, n := range f.Nodes {
		if n.Parent == "" {
			continue
		}
		if err := m.SetParent(n.Name, n.Parent); err != nil {
			return nil, fmt.Errorf("fixture node %q: %w", n.Name, err)
		}
	}

	if err := m.Select(f.Selection...); err != nil {
		return nil, fmt.Errorf("fixture selection: %w", err)
	}
	return m, nil
}
