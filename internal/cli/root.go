// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the pulsenet command.
package cli

import (
	"os"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags and the loaded configuration.
type RootOptions struct {
	ConfigPath string
	LogLevel   string

	cfg config.Config
}

// NewRootCommand creates the root command of the pulsenet CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "pulsenet",
		Short:         "Pulse network simulator",
		Long:          "Simulate button presses on networks of flip-flops and conjunctions, and extrapolate when a sink first receives a low pulse.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log") {
				c.LogLevel = opts.LogLevel
			}
			level, err := logrus.ParseLevel(c.LogLevel)
			if err != nil {
				return errors.Wrap(err, "--log")
			}
			logrus.SetLevel(level)
			opts.cfg = c
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log", "info", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewBranchesCommand(opts))

	return cmd
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// loadNetwork builds the network from the file given as argument, or from the
// configured input file.
func (o *RootOptions) loadNetwork(args []string) (*pulsenet.Network, error) {
	path := o.cfg.Input
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no module list: pass a file or set input in the configuration")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open module list")
	}
	defer f.Close()

	defs, err := pulsenet.Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	n, err := pulsenet.Build(defs, o.cfg.BuildOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	logrus.Debugf("loaded %d modules from %s", n.Len(), path)
	return n, nil
}
