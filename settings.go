package mconstraint

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/birdayz/mconstraint/scene"
)

// Tag attributes stored on every settings node.
const (
	tagID      = "constraintId"
	tagDriven  = "constraintDriven"
	tagChannel = "constraintChannel"
	tagDrivers = "constraintDrivers"
	tagMembers = "constraintMembers"
	tagAxes    = "constraintAxes"
	tagOffset  = "constraintOffset"
)

// Settings is the record of one constraint network, keyed by the driven
// node's host ID and the channel family.
type Settings struct {
	// ID is uuid.Nil for networks found by name without tags.
	ID uuid.UUID

	// Node is the settings node that carries the weights.
	Node string

	Driven   string
	DrivenID string
	Channel  Channel

	Drivers []string
	// Members are the other nodes the network created.
	Members []string

	Axes           AxisMask
	MaintainOffset bool
}

// Weight is the live weight of one driver.
type Weight struct {
	Driver string  `yaml:"driver"`
	Value  float64 `yaml:"value"`
}

// Lookup finds the network built for channel c on driven. It returns
// ErrNotConstrained when there is none.
func (c *Constrainer) Lookup(driven string, ch Channel) (*Settings, error) {
	s, err := c.lookup(driven, ch)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNotConstrained, driven, ch)
	}
	return s, nil
}

// lookup returns nil without error when driven has no network for ch.
func (c *Constrainer) lookup(driven string, ch Channel) (*Settings, error) {
	if !c.host.Exists(driven) {
		return nil, fmt.Errorf("%w: %s", scene.ErrNodeNotFound, driven)
	}
	drivenID, err := c.host.NodeID(driven)
	if err != nil {
		return nil, err
	}
	children, err := c.host.Children(driven)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if !c.host.HasAttr(scene.PlugOf(child, tagID)) {
			continue
		}
		s, err := c.readTags(child)
		if err != nil {
			return nil, fmt.Errorf("read settings %s: %w", child, err)
		}
		if s.DrivenID == drivenID && s.Channel == ch {
			s.Driven = driven
			return s, nil
		}
	}

	name := c.naming.settings(driven, ch)
	if !c.host.Exists(name) {
		return nil, nil
	}
	c.log.V(1).Info("settings node has no tags, reading network from connections", "node", name)
	s, err := c.readUntagged(driven, ch, name)
	if err != nil {
		return nil, err
	}
	s.DrivenID = drivenID
	return s, nil
}

func (c *Constrainer) readTags(node string) (*Settings, error) {
	str := func(attr string) (string, error) {
		return scene.GetString(c.host, scene.PlugOf(node, attr))
	}

	idStr, err := str(tagID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tagID, err)
	}
	drivenID, err := str(tagDriven)
	if err != nil {
		return nil, err
	}
	chStr, err := str(tagChannel)
	if err != nil {
		return nil, err
	}
	ch, err := ParseChannel(chStr)
	if err != nil {
		return nil, err
	}
	drivers, err := str(tagDrivers)
	if err != nil {
		return nil, err
	}
	members, err := str(tagMembers)
	if err != nil {
		return nil, err
	}
	axesStr, err := str(tagAxes)
	if err != nil {
		return nil, err
	}
	axes, err := ParseAxisMask(axesStr)
	if err != nil {
		return nil, err
	}
	offset, err := scene.GetBool(c.host, scene.PlugOf(node, tagOffset))
	if err != nil {
		return nil, err
	}

	return &Settings{
		ID:             id,
		Node:           node,
		DrivenID:       drivenID,
		Channel:        ch,
		Drivers:        splitList(drivers),
		Members:        splitList(members),
		Axes:           axes,
		MaintainOffset: offset,
	}, nil
}

// readUntagged rebuilds the record of a network from conventional names and
// the weighted-sum inputs.
func (c *Constrainer) readUntagged(driven string, ch Channel, node string) (*Settings, error) {
	s := &Settings{Node: node, Driven: driven, Channel: ch, Axes: AllAxes()}

	wt := c.naming.weightedSum(driven, ch)
	decomp := c.naming.decompose(driven, ch)
	for _, m := range []string{wt, c.naming.composite(driven, ch), decomp} {
		if c.host.Exists(m) {
			s.Members = append(s.Members, m)
		}
	}

	if c.host.Exists(wt) {
		for i := 0; ; i++ {
			src, ok := c.host.Connection(scene.PlugOf(wt, fmt.Sprintf("wtMatrix[%d].matrixIn", i)))
			if !ok {
				break
			}
			driver := src.Node()
			if src.Attr() == "matrixSum" {
				// Offset node in front of the driver
				s.MaintainOffset = true
				s.Members = append(s.Members, driver)
				if in, ok := c.host.Connection(scene.PlugOf(driver, "matrixIn[1]")); ok {
					driver = in.Node()
				}
			}
			s.Drivers = append(s.Drivers, driver)
		}
	}

	if c.host.Exists(decomp) {
		s.Axes = c.connectedAxes(driven, ch, decomp)
	}
	return s, nil
}

// connectedAxes reports which components of driven the decompose node drives.
func (c *Constrainer) connectedAxes(driven string, ch Channel, decomp string) AxisMask {
	out := ch.outputs()
	if len(out) == 0 {
		return AllAxes()
	}
	dst := out[0][1]
	if src, ok := c.host.Connection(scene.PlugOf(driven, dst)); ok && src.Node() == decomp {
		return AllAxes()
	}
	var axes []Axis
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		if src, ok := c.host.Connection(scene.PlugOf(driven, dst+a.suffix())); ok && src.Node() == decomp {
			axes = append(axes, a)
		}
	}
	if len(axes) == 0 {
		return AllAxes()
	}
	return Axes(axes...)
}

// Remove deletes the network built for channel ch on driven. The driven node
// keeps the values the network last produced.
func (c *Constrainer) Remove(driven string, ch Channel) error {
	s, err := c.Lookup(driven, ch)
	if err != nil {
		return err
	}
	if err := c.deleteNetwork(s); err != nil {
		return fmt.Errorf("%w: %w", ErrHostOperation, err)
	}
	c.log.Info("removed constraint", "driven", driven, "channel", ch.String())
	return nil
}

// deleteNetwork deletes members first so the driven node is baked before the
// settings node goes away.
func (c *Constrainer) deleteNetwork(s *Settings) error {
	for _, name := range append(slices.Clone(s.Members), s.Node) {
		if !c.host.Exists(name) {
			continue
		}
		if err := c.host.Delete(name); err != nil {
			return fmt.Errorf("delete %s: %w", name, err)
		}
		c.log.V(1).Info("deleted", "node", name)
	}
	return nil
}

// Weights returns the current weight of every driver, in driver order.
func (c *Constrainer) Weights(s *Settings) ([]Weight, error) {
	out := make([]Weight, 0, len(s.Drivers))
	for _, d := range s.Drivers {
		v, err := scene.GetDouble(c.host, scene.PlugOf(s.Node, c.naming.weight(d)))
		if err != nil {
			return nil, err
		}
		out = append(out, Weight{Driver: d, Value: v})
	}
	return out, nil
}

// SetWeight sets the weight of one driver.
func (c *Constrainer) SetWeight(s *Settings, driver string, w float64) error {
	if !slices.Contains(s.Drivers, driver) {
		return fmt.Errorf("%w: %s is not a driver of %s", ErrUnknownDriver, driver, s.Node)
	}
	return c.host.SetAttr(scene.PlugOf(s.Node, c.naming.weight(driver)), w)
}

// NormalizeWeights rescales the weights so they sum to one.
func (c *Constrainer) NormalizeWeights(s *Settings) error {
	weights, err := c.Weights(s)
	if err != nil {
		return err
	}
	var sum float64
	for _, w := range weights {
		sum += w.Value
	}
	if math.Abs(sum) < 1e-12 {
		return fmt.Errorf("%w: %s", ErrZeroWeights, s.Node)
	}
	for _, w := range weights {
		if err := c.SetWeight(s, w.Driver, w.Value/sum); err != nil {
			return err
		}
	}
	return nil
}

// Extend rebuilds the network for ch on driven with additional drivers. The
// axis mask and offset mode are kept; weights reset to equal shares.
func (c *Constrainer) Extend(driven string, ch Channel, drivers ...string) (*Settings, error) {
	s, err := c.Lookup(driven, ch)
	if err != nil {
		return nil, err
	}
	req := &Request{
		Drivers:        append(slices.Clone(s.Drivers), drivers...),
		Driven:         driven,
		Channels:       NewChannelSet(ch),
		Axes:           s.Axes,
		MaintainOffset: s.MaintainOffset,
	}
	res, err := c.Build(req)
	if err != nil {
		return nil, err
	}
	out, _ := res.Get(ch)
	return out, nil
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
