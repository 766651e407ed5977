// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/db47h/pulsenet"
	"github.com/spf13/cobra"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand(root *RootOptions) *cobra.Command {
	var presses int

	cmd := &cobra.Command{
		Use:   "trace [FILE]",
		Short: "Print every pulse sent during the first button presses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := root.loadNetwork(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			var last uint64
			s := pulsenet.NewSim(n,
				pulsenet.MaxPulses(root.cfg.MaxPulses),
				pulsenet.Observe(func(press uint64, p pulsenet.Pulse) {
					if press != last {
						fmt.Fprintf(w, "# press %d\n", press)
						last = press
					}
					fmt.Fprintln(w, pulsenet.FormatPulse(n, p))
				}))
			_, err = s.Run(presses)
			return err
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1, "number of button presses")
	return cmd
}
