package mconstraint

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/birdayz/mconstraint/cgraph"
	"github.com/birdayz/mconstraint/internal/xform"
	"github.com/birdayz/mconstraint/scene"
)

// lockedChannels are the transform channels of a settings node that are
// locked and hidden from keying.
var lockedChannels = []string{
	"visibility",
	"translateX", "translateY", "translateZ",
	"rotateX", "rotateY", "rotateZ",
	"scaleX", "scaleY", "scaleZ",
}

// plan is the network for one channel family, ready to commit.
type plan struct {
	channel  Channel
	dag      *cgraph.DAG
	settings *Settings

	// replaces is the existing network for the same key, if any.
	replaces *Settings

	// outputs are the driven plugs the network connects.
	outputs []scene.Plug
}

// planNetwork reads the host and lays out the network for one channel family
// without modifying the scene.
func (c *Constrainer) planNetwork(req *Request, ch Channel) (*plan, error) {
	existing, err := c.lookup(req.Driven, ch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHostOperation, err)
	}
	drivenID, err := c.host.NodeID(req.Driven)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHostOperation, err)
	}

	id := uuid.New()
	if existing != nil && existing.ID != uuid.Nil {
		id = existing.ID
	}
	settings := &Settings{
		ID:             id,
		Node:           c.naming.settings(req.Driven, ch),
		Driven:         req.Driven,
		DrivenID:       drivenID,
		Channel:        ch,
		Drivers:        req.Drivers,
		Axes:           req.Axes,
		MaintainOffset: req.MaintainOffset,
	}

	var drivenWorld mgl64.Mat4
	if req.MaintainOffset {
		if drivenWorld, err = scene.WorldMatrix(c.host, req.Driven); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrHostOperation, err)
		}
	}

	b := cgraph.NewBuilder()
	if err := b.AddExternal(req.Driven); err != nil {
		return nil, err
	}

	settingsNode, err := b.AddNode(settings.Node, cgraph.NodeTypeSettings)
	if err != nil {
		return nil, err
	}
	settingsNode.Under = cgraph.NodeID(req.Driven)

	wt, err := b.AddNode(c.naming.weightedSum(req.Driven, ch), cgraph.NodeTypeWeightedSum)
	if err != nil {
		return nil, err
	}
	mult, err := b.AddNode(c.naming.composite(req.Driven, ch), cgraph.NodeTypeCompositeMultiply)
	if err != nil {
		return nil, err
	}
	decomp, err := b.AddNode(c.naming.decompose(req.Driven, ch), cgraph.NodeTypeDecompose)
	if err != nil {
		return nil, err
	}
	settings.Members = []string{string(wt.ID), string(mult.ID), string(decomp.ID)}

	weight := 1.0 / float64(len(req.Drivers))
	for i, driver := range req.Drivers {
		if err := b.AddExternal(driver); err != nil {
			return nil, err
		}

		src := scene.PlugOf(driver, "worldMatrix")
		if req.MaintainOffset {
			driverWorld, err := scene.WorldMatrix(c.host, driver)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrHostOperation, err)
			}
			offset, err := xform.Offset(drivenWorld, driverWorld)
			if err != nil {
				return nil, fmt.Errorf("%w: offset from %s: %w", ErrHostOperation, driver, err)
			}
			off, err := b.AddNode(c.naming.offset(req.Driven, ch, driver), cgraph.NodeTypeOffsetMultiply)
			if err != nil {
				return nil, err
			}
			off.Set("matrixIn[0]", offset)
			if err := b.Connect(src, nodePlug(off, "matrixIn[1]")); err != nil {
				return nil, err
			}
			settings.Members = append(settings.Members, string(off.ID))
			src = nodePlug(off, "matrixSum")
		}

		weightAttr := c.naming.weight(driver)
		settingsNode.AddAttr(scene.AttrSpec{
			Name:    weightAttr,
			Type:    scene.AttrDouble,
			Default: weight,
			Keyable: true,
		})
		if err := b.Connect(src, nodePlug(wt, fmt.Sprintf("wtMatrix[%d].matrixIn", i))); err != nil {
			return nil, err
		}
		if err := b.Connect(nodePlug(settingsNode, weightAttr), nodePlug(wt, fmt.Sprintf("wtMatrix[%d].weightIn", i))); err != nil {
			return nil, err
		}
	}

	for _, e := range []cgraph.Edge{
		{Src: nodePlug(wt, "matrixSum"), Dst: nodePlug(mult, "matrixIn[0]")},
		{Src: scene.PlugOf(req.Driven, "parentInverseMatrix"), Dst: nodePlug(mult, "matrixIn[1]")},
		{Src: nodePlug(mult, "matrixSum"), Dst: nodePlug(decomp, "inputMatrix")},
	} {
		if err := b.Connect(e.Src, e.Dst); err != nil {
			return nil, err
		}
	}

	var outputs []scene.Plug
	for _, pair := range ch.outputs() {
		out, attr := pair[0], pair[1]
		if req.Axes.IsAll() {
			outputs = append(outputs, scene.PlugOf(req.Driven, attr))
			if err := b.Connect(nodePlug(decomp, out), scene.PlugOf(req.Driven, attr)); err != nil {
				return nil, err
			}
			continue
		}
		for _, a := range req.Axes.List() {
			dst := scene.PlugOf(req.Driven, attr+a.suffix())
			outputs = append(outputs, dst)
			if err := b.Connect(nodePlug(decomp, out+a.suffix()), dst); err != nil {
				return nil, err
			}
		}
	}

	c.tagSettings(settingsNode, settings)

	dag, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("plan %s network for %s: %w", ch, req.Driven, err)
	}

	return &plan{
		channel:  ch,
		dag:      dag,
		settings: settings,
		replaces: existing,
		outputs:  outputs,
	}, nil
}

// tagSettings records the settings on its node and locks the node's own
// channels.
func (c *Constrainer) tagSettings(n *cgraph.Node, s *Settings) {
	tags := []struct {
		name  string
		typ   scene.AttrType
		value any
	}{
		{tagID, scene.AttrString, s.ID.String()},
		{tagDriven, scene.AttrString, s.DrivenID},
		{tagChannel, scene.AttrString, s.Channel.String()},
		{tagDrivers, scene.AttrString, joinList(s.Drivers)},
		{tagMembers, scene.AttrString, joinList(s.Members)},
		{tagAxes, scene.AttrString, s.Axes.String()},
		{tagOffset, scene.AttrBool, s.MaintainOffset},
	}
	for _, t := range tags {
		n.AddAttr(scene.AttrSpec{Name: t.name, Type: t.typ, Default: t.value})
		n.Lock(t.name)
	}
	n.Lock(lockedChannels...)
}

func nodePlug(n *cgraph.Node, attr string) scene.Plug {
	return scene.PlugOf(string(n.ID), attr)
}
