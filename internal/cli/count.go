// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/db47h/pulsenet"
	"github.com/spf13/cobra"
)

// NewCountCommand creates the count command.
func NewCountCommand(root *RootOptions) *cobra.Command {
	var presses, maxPulses int

	cmd := &cobra.Command{
		Use:   "count [FILE]",
		Short: "Count low and high pulses after a number of button presses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("presses") {
				presses = root.cfg.Presses
			}
			if !cmd.Flags().Changed("max-pulses") {
				maxPulses = root.cfg.MaxPulses
			}
			n, err := root.loadNetwork(args)
			if err != nil {
				return err
			}
			c, err := pulsenet.NewSim(n, pulsenet.MaxPulses(maxPulses)).Run(presses)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "presses %d\nlow %d\nhigh %d\nproduct %d\n", presses, c.Low, c.High, c.Product())
			return nil
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1000, "number of button presses")
	cmd.Flags().IntVar(&maxPulses, "max-pulses", pulsenet.DefaultMaxPulses, "maximum pulses per press")
	return cmd
}
