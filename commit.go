package mconstraint

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/birdayz/mconstraint/cgraph"
	"github.com/birdayz/mconstraint/internal/txn"
	"github.com/birdayz/mconstraint/scene"
)

// precheck verifies the plans against the scene before anything is modified.
// Nodes of networks being replaced do not count as collisions or conflicts.
func (c *Constrainer) precheck(plans []*plan) error {
	replaced := make(map[string]bool)
	for _, p := range plans {
		if p.replaces == nil {
			continue
		}
		replaced[p.replaces.Node] = true
		for _, m := range p.replaces.Members {
			replaced[m] = true
		}
	}

	for _, p := range plans {
		for _, n := range p.dag.Created() {
			if name := string(n.ID); c.host.Exists(name) && !replaced[name] {
				return fmt.Errorf("%w: %s", ErrNameCollision, name)
			}
		}
		for _, dst := range p.outputs {
			for _, q := range dst.Overlapping() {
				if src, ok := c.host.Connection(q); ok && !replaced[src.Node()] {
					return fmt.Errorf("%w: %s is driven by %s", ErrChannelConflict, q, src)
				}
			}
		}
	}
	return nil
}

// commit moves replaced networks aside, then creates and wires every plan
// through the journal. The replaced nodes are deleted once everything is
// wired; until then a rollback puts them back.
func (c *Constrainer) commit(plans []*plan, j *txn.Journal) error {
	var aside []string
	for _, p := range plans {
		if p.replaces == nil {
			continue
		}
		c.log.V(1).Info("replacing network", "settings", p.replaces.Node, "channel", p.channel.String())
		names, err := c.setAside(p.replaces, j)
		if err != nil {
			return err
		}
		aside = append(aside, names...)
	}
	for _, p := range plans {
		if err := c.create(p, j); err != nil {
			return err
		}
	}
	for _, name := range aside {
		if err := j.Do("delete "+name, func() error {
			return c.host.Delete(name)
		}, nil); err != nil {
			return err
		}
	}
	return nil
}

// setAside disconnects a network from its driven node and renames its nodes
// out of the way. It returns the new names.
func (c *Constrainer) setAside(s *Settings, j *txn.Journal) ([]string, error) {
	nodes := append(slices.Clone(s.Members), s.Node)
	member := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		member[n] = true
	}

	for _, pair := range s.Channel.outputs() {
		attr := pair[1]
		for _, dst := range []scene.Plug{
			scene.PlugOf(s.Driven, attr),
			scene.PlugOf(s.Driven, attr+AxisX.suffix()),
			scene.PlugOf(s.Driven, attr+AxisY.suffix()),
			scene.PlugOf(s.Driven, attr+AxisZ.suffix()),
		} {
			src, ok := c.host.Connection(dst)
			if !ok || !member[src.Node()] {
				continue
			}
			if err := j.Do("disconnect "+string(src)+" -> "+string(dst), func() error {
				return c.host.Disconnect(src, dst)
			}, func() error {
				return c.host.Connect(src, dst)
			}); err != nil {
				return nil, err
			}
		}
	}

	var aside []string
	for _, name := range nodes {
		if !c.host.Exists(name) {
			continue
		}
		tmp := c.freeName(name + "_replaced")
		if err := j.Do("rename "+name, func() error {
			got, err := c.host.Rename(name, tmp)
			tmp = got
			return err
		}, func() error {
			_, err := c.host.Rename(tmp, name)
			return err
		}); err != nil {
			return nil, err
		}
		aside = append(aside, tmp)
	}
	return aside, nil
}

func (c *Constrainer) freeName(base string) string {
	name := base
	for i := 1; c.host.Exists(name); i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	return name
}

func (c *Constrainer) create(p *plan, j *txn.Journal) error {
	c.log.V(1).Info("creating network", "channel", p.channel.String(), "order", p.dag.Order())
	for _, n := range p.dag.Created() {
		if err := c.createNode(n, j); err != nil {
			return err
		}
	}

	for _, e := range p.dag.Edges() {
		var undo func() error
		if dst, _ := p.dag.Node(cgraph.NodeID(e.Dst.Node())); dst.Type == cgraph.NodeTypeExternal {
			// Disconnecting keeps the driven value; put the old one back
			prev, err := c.host.GetAttr(e.Dst)
			if err != nil {
				return fmt.Errorf("read %s: %w", e.Dst, err)
			}
			undo = func() error {
				if err := c.host.Disconnect(e.Src, e.Dst); err != nil {
					return err
				}
				return c.host.SetAttr(e.Dst, prev)
			}
		}
		err := j.Do("connect "+e.String(), func() error {
			return c.host.Connect(e.Src, e.Dst)
		}, undo)
		if err != nil {
			return err
		}
	}
	return nil
}

// createNode creates n with its attributes, values and locks. Only the
// creation itself is undone; the rest goes away with the node.
func (c *Constrainer) createNode(n *cgraph.Node, j *txn.Journal) error {
	name := string(n.ID)
	typ, _ := n.Type.SceneType()

	err := j.Do("create "+name, func() error {
		got, err := c.host.CreateNode(typ, name)
		if err != nil {
			return err
		}
		if got != name {
			return multierr.Append(
				fmt.Errorf("%w: host created %s as %s", ErrNameCollision, name, got),
				c.host.Delete(got),
			)
		}
		return nil
	}, func() error {
		return c.host.Delete(name)
	})
	if err != nil {
		return err
	}

	if n.Under != "" {
		if err := j.Do("parent "+name, func() error {
			return c.host.SetParent(name, string(n.Under))
		}, nil); err != nil {
			return err
		}
	}
	for _, spec := range n.Attrs {
		if err := j.Do("add "+string(scene.PlugOf(name, spec.Name)), func() error {
			return c.host.AddAttr(name, spec)
		}, nil); err != nil {
			return err
		}
	}
	for _, v := range n.Values {
		p := scene.PlugOf(name, v.Attr)
		if err := j.Do("set "+string(p), func() error {
			return c.host.SetAttr(p, v.Value)
		}, nil); err != nil {
			return err
		}
	}
	for _, attr := range n.Locked {
		p := scene.PlugOf(name, attr)
		if err := j.Do("lock "+string(p), func() error {
			return c.host.SetAttrFlags(p, scene.AttrFlags{Locked: true, Keyable: false})
		}, nil); err != nil {
			return err
		}
	}
	return nil
}
