// Package mconstraint builds matrix constraint networks on a scene graph.
//
// A network blends the world matrices of one or more drivers by weight,
// moves the blend into the driven node's parent space and decomposes it onto
// the driven node's translate, rotate or scale:
//
//	host := scene.NewMemory()
//	...
//	c := mconstraint.New(host, mconstraint.WithLogr(log))
//	res, err := c.Constrain([]string{"A", "B", "C"}, mconstraint.Flags{Point: true, All: true})
//	if err != nil {
//	    return err
//	}
//	settings, _ := res.Get(mconstraint.ChannelPoint)
//	_ = c.SetWeight(settings, "A", 0.25)
//
// The weights live on a settings node parented under the driven node, one
// "<driver>_Weight" attribute per driver. Rebuilding a channel on the same
// driven node replaces its network.
package mconstraint
