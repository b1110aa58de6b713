package mconstraint

import (
	"fmt"
	"slices"

	"github.com/birdayz/mconstraint/scene"
)

// Validate turns a node list and flags into a Request. A nil list reads the
// host selection instead. The last node is the driven node, the rest are
// drivers in order.
//
// Count, channel and axis checks run before the object list is inspected; for
// an explicit list they fail without calling the host.
func (c *Constrainer) Validate(nodes []string, flags Flags) (*Request, error) {
	if nodes == nil {
		nodes = c.host.Selection()
	}
	if len(nodes) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientNodes, len(nodes))
	}
	channels := flags.Channels()
	if channels.Empty() {
		return nil, ErrNoChannelSelected
	}
	axes := flags.Axes()
	if axes.Empty() {
		return nil, ErrNoAxisSelected
	}

	req := &Request{
		Drivers:        slices.Clone(nodes[:len(nodes)-1]),
		Driven:         nodes[len(nodes)-1],
		Channels:       channels,
		Axes:           axes,
		MaintainOffset: flags.MaintainOffset,
	}
	if err := c.checkObjects(req); err != nil {
		return nil, err
	}
	return req, nil
}

// checkRequest re-checks a Request that did not come from Validate.
func (c *Constrainer) checkRequest(req *Request) error {
	if req == nil || len(req.Drivers) == 0 {
		return ErrInsufficientNodes
	}
	if req.Channels.Empty() {
		return ErrNoChannelSelected
	}
	if req.Axes.Empty() {
		return ErrNoAxisSelected
	}
	return c.checkObjects(req)
}

// checkObjects checks names first, then self reference, duplicates,
// existence and drivers parented below the driven.
func (c *Constrainer) checkObjects(req *Request) error {
	all := append(slices.Clone(req.Drivers), req.Driven)
	for i, name := range all {
		if err := scene.ValidateName(name); err != nil {
			return fmt.Errorf("%w: element %d: %v", ErrInvalidObjectList, i, err)
		}
	}
	if slices.Contains(req.Drivers, req.Driven) {
		return fmt.Errorf("%w: %s", ErrDrivenIsDriver, req.Driven)
	}
	seen := make(map[string]bool, len(req.Drivers))
	for _, d := range req.Drivers {
		if seen[d] {
			return fmt.Errorf("%w: driver %s listed twice", ErrInvalidObjectList, d)
		}
		seen[d] = true
	}
	for _, name := range all {
		if !c.host.Exists(name) {
			return fmt.Errorf("%w: %s: %w", ErrInvalidObjectList, name, scene.ErrNodeNotFound)
		}
	}

	// A driver below the driven moves with the driven's outputs.
	below, err := c.descendants(req.Driven)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHostOperation, err)
	}
	for _, d := range req.Drivers {
		if below[d] {
			return fmt.Errorf("%w: %s is below %s in the hierarchy", ErrDrivenIsDriver, d, req.Driven)
		}
	}
	return nil
}

func (c *Constrainer) descendants(name string) (map[string]bool, error) {
	out := make(map[string]bool)
	queue := []string{name}
	for len(queue) > 0 {
		children, err := c.host.Children(queue[0])
		if err != nil {
			return nil, err
		}
		queue = queue[1:]
		for _, child := range children {
			if !out[child] {
				out[child] = true
				queue = append(queue, child)
			}
		}
	}
	return out, nil
}
