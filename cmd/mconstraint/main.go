// Command mconstraint builds constraint networks on a scene described by a
// YAML fixture and prints what was built.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/birdayz/mconstraint/pkg/log"
	"github.com/birdayz/mconstraint/scene"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOpts struct {
	logLevel  string
	logFormat string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var g globalOpts

	root := &cobra.Command{
		Use:           "mconstraint",
		Short:         "Build matrix constraint networks",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", log.FormatConsole, "log format (console, json, tint)")

	logger := func() (logr.Logger, error) {
		return log.New(errOut, g.logLevel, g.logFormat)
	}

	root.AddCommand(newBuildCmd(logger))
	root.AddCommand(newInspectCmd())
	return root
}

func loadScene(path string) (*scene.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := scene.LoadFixture(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}
