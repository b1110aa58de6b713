package mconstraint

import (
	"fmt"
	"strings"
)

// Channel is a constraint channel family.
type Channel int

const (
	ChannelParent Channel = iota
	ChannelPoint
	ChannelOrient
	ChannelScale
)

// channelOrder is the order in which families are built.
var channelOrder = []Channel{ChannelParent, ChannelPoint, ChannelOrient, ChannelScale}

func (c Channel) String() string {
	switch c {
	case ChannelParent:
		return "parent"
	case ChannelPoint:
		return "point"
	case ChannelOrient:
		return "orient"
	case ChannelScale:
		return "scale"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel parses a channel family name.
func ParseChannel(s string) (Channel, error) {
	for _, c := range channelOrder {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

// outputs returns the decompose output and driven attribute pairs of c.
func (c Channel) outputs() [][2]string {
	switch c {
	case ChannelParent:
		return [][2]string{{"outputTranslate", "translate"}, {"outputRotate", "rotate"}}
	case ChannelPoint:
		return [][2]string{{"outputTranslate", "translate"}}
	case ChannelOrient:
		return [][2]string{{"outputRotate", "rotate"}}
	case ChannelScale:
		return [][2]string{{"outputScale", "scale"}}
	default:
		return nil
	}
}

// ChannelSet is a set of channel families.
type ChannelSet uint8

// NewChannelSet returns a set holding cs.
func NewChannelSet(cs ...Channel) ChannelSet {
	var s ChannelSet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// With returns s with c added.
func (s ChannelSet) With(c Channel) ChannelSet {
	return s | 1<<uint(c)
}

// Has reports whether c is in s.
func (s ChannelSet) Has(c Channel) bool {
	return s&(1<<uint(c)) != 0
}

// Empty reports whether s holds no channel.
func (s ChannelSet) Empty() bool {
	return s == 0
}

// List returns the members of s in build order.
func (s ChannelSet) List() []Channel {
	var out []Channel
	for _, c := range channelOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s ChannelSet) String() string {
	names := make([]string, 0, 4)
	for _, c := range s.List() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// Axis is one of the three transform axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// suffix is the component suffix of a vector attribute ("translateX").
func (a Axis) suffix() string {
	return strings.ToUpper(a.String())
}

// AxisMask selects the axes a constraint drives. It is either all axes, which
// connects whole vectors, or a subset, which connects scalar components. The
// zero value selects nothing and is rejected by validation.
type AxisMask struct {
	all    bool
	subset [3]bool
}

// AllAxes drives whole vectors.
func AllAxes() AxisMask {
	return AxisMask{all: true}
}

// Axes drives the listed components only.
func Axes(axes ...Axis) AxisMask {
	var m AxisMask
	for _, a := range axes {
		if a >= AxisX && a <= AxisZ {
			m.subset[a] = true
		}
	}
	return m
}

// ParseAxisMask parses "all" or a combination of x, y and z such as "xz".
func ParseAxisMask(s string) (AxisMask, error) {
	if s == "all" {
		return AllAxes(), nil
	}
	var axes []Axis
	for _, r := range s {
		switch r {
		case 'x':
			axes = append(axes, AxisX)
		case 'y':
			axes = append(axes, AxisY)
		case 'z':
			axes = append(axes, AxisZ)
		default:
			return AxisMask{}, fmt.Errorf("invalid axis mask %q", s)
		}
	}
	m := Axes(axes...)
	if m.Empty() {
		return AxisMask{}, fmt.Errorf("invalid axis mask %q", s)
	}
	return m, nil
}

// IsAll reports whether m drives whole vectors.
func (m AxisMask) IsAll() bool {
	return m.all
}

// Has reports whether m drives axis a.
func (m AxisMask) Has(a Axis) bool {
	if m.all {
		return true
	}
	return a >= AxisX && a <= AxisZ && m.subset[a]
}

// Empty reports whether m selects no axis.
func (m AxisMask) Empty() bool {
	return !m.all && m.subset == [3]bool{}
}

// List returns the selected axes in X, Y, Z order.
func (m AxisMask) List() []Axis {
	var out []Axis
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		if m.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (m AxisMask) String() string {
	if m.all {
		return "all"
	}
	var sb strings.Builder
	for _, a := range m.List() {
		sb.WriteString(a.String())
	}
	return sb.String()
}

// Flags is the per-call configuration, one boolean per option of the
// interactive front-end. All overrides X, Y and Z.
type Flags struct {
	Parent bool
	Point  bool
	Orient bool
	Scale  bool

	All bool
	X   bool
	Y   bool
	Z   bool

	MaintainOffset bool
}

// Channels returns the selected channel families.
func (f Flags) Channels() ChannelSet {
	var s ChannelSet
	if f.Parent {
		s = s.With(ChannelParent)
	}
	if f.Point {
		s = s.With(ChannelPoint)
	}
	if f.Orient {
		s = s.With(ChannelOrient)
	}
	if f.Scale {
		s = s.With(ChannelScale)
	}
	return s
}

// Axes returns the selected axis mask.
func (f Flags) Axes() AxisMask {
	if f.All {
		return AllAxes()
	}
	var axes []Axis
	if f.X {
		axes = append(axes, AxisX)
	}
	if f.Y {
		axes = append(axes, AxisY)
	}
	if f.Z {
		axes = append(axes, AxisZ)
	}
	return Axes(axes...)
}

// Request is a validated constraint request.
type Request struct {
	// Drivers in input order
	Drivers []string
	Driven  string

	Channels       ChannelSet
	Axes           AxisMask
	MaintainOffset bool
}

// families returns the channel families a request builds. Parent drives
// translate and rotate, so it subsumes point and orient.
func (r *Request) families() []Channel {
	out := make([]Channel, 0, 4)
	for _, c := range r.Channels.List() {
		if r.Channels.Has(ChannelParent) && (c == ChannelPoint || c == ChannelOrient) {
			continue
		}
		out = append(out, c)
	}
	return out
}
