package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/birdayz/mconstraint"
)

type buildOpts struct {
	flags     mconstraint.Flags
	normalize bool
}

func newBuildCmd(logger func() (logr.Logger, error)) *cobra.Command {
	var o buildOpts

	cmd := &cobra.Command{
		Use:   "build <scene.yaml> [drivers... driven]",
		Short: "Constrain the last node to the ones before it",
		Long: `Build loads a scene fixture and constrains the last listed node to the
others. Without nodes, the fixture's selection is used. The report lists the
networks built, every connection in the scene and the driven node's pose.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := logger()
			if err != nil {
				return err
			}
			host, err := loadScene(args[0])
			if err != nil {
				return err
			}

			var nodes []string
			if len(args) > 1 {
				nodes = args[1:]
			}

			c := mconstraint.New(host, mconstraint.WithLogr(l.WithName("mconstraint")))
			res, err := c.Constrain(nodes, o.flags)
			if err != nil {
				return err
			}
			if o.normalize {
				for _, ch := range res.Channels() {
					s, _ := res.Get(ch)
					if err := c.NormalizeWeights(s); err != nil {
						return err
					}
				}
			}

			rep, err := newReport(c, host, res)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(rep)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&o.flags.Parent, "parent", false, "constrain translate and rotate")
	f.BoolVar(&o.flags.Point, "point", false, "constrain translate")
	f.BoolVar(&o.flags.Orient, "orient", false, "constrain rotate")
	f.BoolVar(&o.flags.Scale, "scale", false, "constrain scale")
	f.BoolVar(&o.flags.All, "all", false, "constrain all axes")
	f.BoolVarP(&o.flags.X, "x", "x", false, "constrain the X axis")
	f.BoolVarP(&o.flags.Y, "y", "y", false, "constrain the Y axis")
	f.BoolVarP(&o.flags.Z, "z", "z", false, "constrain the Z axis")
	f.BoolVar(&o.flags.MaintainOffset, "maintain-offset", false, "keep the driven node's current pose")
	f.BoolVar(&o.normalize, "normalize", false, "normalize weights after building")
	return cmd
}
