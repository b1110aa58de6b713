package mconstraint

import (
	"fmt"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"github.com/birdayz/mconstraint/internal/txn"
	"github.com/birdayz/mconstraint/scene"
)

// Constrainer builds constraint networks on a host scene.
//
// IMPORTANT: Constrainer is NOT safe for concurrent use, and assumes nothing
// else modifies the driven node's networks during a call.
type Constrainer struct {
	host   scene.Host
	log    logr.Logger
	naming Naming
}

// New creates a Constrainer for host.
func New(host scene.Host, opts ...Option) *Constrainer {
	c := &Constrainer{
		host:   host,
		log:    logr.Discard(),
		naming: DefaultNaming(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Constrain validates nodes and flags, clears the host selection and builds
// every requested network. A nil nodes list uses the host selection.
//
// Either every network is built or the scene is left as it was. An existing
// network for the same driven node and channel family is replaced. Outputs
// driven by anything else, including another family's network (point, then
// parent on the same node), fail with ErrChannelConflict; remove that network
// first.
func (c *Constrainer) Constrain(nodes []string, flags Flags) (*Result, error) {
	req, err := c.Validate(nodes, flags)
	if err != nil {
		return nil, err
	}

	j := txn.New(c.log.WithName("txn"))
	prev := c.host.Selection()
	err = j.Do("clear selection", func() error {
		c.host.ClearSelection()
		return nil
	}, func() error {
		keep := make([]string, 0, len(prev))
		for _, name := range prev {
			if c.host.Exists(name) {
				keep = append(keep, name)
			}
		}
		return c.host.Select(keep...)
	})
	if err != nil {
		return nil, err
	}

	return c.build(req, j)
}

// Build builds the networks of a request. Channel families are built in the
// order parent, point, orient, scale; parent replaces point and orient.
func (c *Constrainer) Build(req *Request) (*Result, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	return c.build(req, txn.New(c.log.WithName("txn")))
}

func (c *Constrainer) build(req *Request, j *txn.Journal) (*Result, error) {
	fail := func(err error) (*Result, error) {
		if rbErr := j.Rollback(); rbErr != nil {
			err = multierr.Append(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return nil, err
	}

	if req.Channels.Has(ChannelParent) && (req.Channels.Has(ChannelPoint) || req.Channels.Has(ChannelOrient)) {
		c.log.Info("parent channel includes point and orient, building parent only",
			"driven", req.Driven, "channels", req.Channels.String())
	}

	families := req.families()
	plans := make([]*plan, 0, len(families))
	for _, ch := range families {
		p, err := c.planNetwork(req, ch)
		if err != nil {
			return fail(err)
		}
		plans = append(plans, p)
	}
	if err := c.precheck(plans); err != nil {
		return fail(err)
	}

	if err := c.commit(plans, j); err != nil {
		c.log.Error(err, "build failed, rolling back", "driven", req.Driven)
		return fail(fmt.Errorf("%w: %w", ErrHostOperation, err))
	}
	j.Commit()

	res := newResult()
	for _, p := range plans {
		res.add(p.settings)
		c.log.Info("built constraint",
			"driven", req.Driven,
			"channel", p.channel.String(),
			"drivers", req.Drivers,
			"axes", req.Axes.String(),
			"maintainOffset", req.MaintainOffset,
			"settings", p.settings.Node)
	}
	return res, nil
}
