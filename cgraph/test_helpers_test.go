package cgraph

import (
	"fmt"

	"github.com/birdayz/mconstraint/scene"
)

func plug(node NodeID, attr string) scene.Plug {
	return scene.PlugOf(string(node), attr)
}

// registerTestNetwork registers a point-style network driving driven.translate
// from the given drivers. It stops at the first error.
func registerTestNetwork(b *Builder, driven string, drivers ...string) error {
	if err := b.AddExternal(driven); err != nil {
		return err
	}
	settings, err := b.AddNode(driven+"_point_ConstraintSettings", NodeTypeSettings)
	if err != nil {
		return err
	}
	settings.Under = NodeID(driven)
	wt, err := b.AddNode(driven+"_point_wtMatrix", NodeTypeWeightedSum)
	if err != nil {
		return err
	}
	mult, err := b.AddNode(driven+"_point_multMatrix", NodeTypeCompositeMultiply)
	if err != nil {
		return err
	}
	decomp, err := b.AddNode(driven+"_point_decompMatrix", NodeTypeDecompose)
	if err != nil {
		return err
	}

	for i, d := range drivers {
		if err := b.AddExternal(d); err != nil {
			return err
		}
		weight := d + "_Weight"
		settings.AddAttr(scene.AttrSpec{Name: weight, Type: scene.AttrDouble, Default: 1.0, Keyable: true})
		if err := b.Connect(scene.PlugOf(d, "worldMatrix"), plug(wt.ID, fmt.Sprintf("wtMatrix[%d].matrixIn", i))); err != nil {
			return err
		}
		if err := b.Connect(plug(settings.ID, weight), plug(wt.ID, fmt.Sprintf("wtMatrix[%d].weightIn", i))); err != nil {
			return err
		}
	}

	for _, e := range []Edge{
		{plug(wt.ID, "matrixSum"), plug(mult.ID, "matrixIn[0]")},
		{scene.PlugOf(driven, "parentInverseMatrix"), plug(mult.ID, "matrixIn[1]")},
		{plug(mult.ID, "matrixSum"), plug(decomp.ID, "inputMatrix")},
		{plug(decomp.ID, "outputTranslate"), scene.PlugOf(driven, "translate")},
	} {
		if err := b.Connect(e.Src, e.Dst); err != nil {
			return err
		}
	}
	return nil
}
