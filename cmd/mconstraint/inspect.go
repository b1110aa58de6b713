package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/birdayz/mconstraint/scene"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <scene.yaml>",
		Short: "Print the world transform of every node in a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := loadScene(args[0])
			if err != nil {
				return err
			}

			var poses []pose
			for _, name := range host.Nodes() {
				if typ, _ := host.NodeType(name); typ != scene.TypeTransform {
					continue
				}
				p, err := worldPose(host, name)
				if err != nil {
					return err
				}
				poses = append(poses, p)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(map[string][]pose{"world": poses})
		},
	}
}
