// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/analyze"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(root *RootOptions) *cobra.Command {
	var (
		sink    string
		budget  uint64
		workers int
		verify  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [FILE]",
		Short: "Compute the first press during which the sink receives a low pulse",
		Long: `Compute the first press during which the sink receives a low pulse.

The network must be made of independent branches starting at the entry module
and joining in a single conjunction that feeds the sink. Each branch is
simulated on its own to find its period, and the result is the least common
multiple of all periods. Use --verify to check that branches are periodic
from the first press.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := root.cfg
			if cmd.Flags().Changed("sink") {
				c.Sink = sink
			}
			if cmd.Flags().Changed("budget") {
				c.Budget = budget
			}
			if cmd.Flags().Changed("workers") {
				c.Workers = workers
			}
			if cmd.Flags().Changed("verify") {
				c.Verify = verify
			}
			n, err := root.loadNetwork(args)
			if err != nil {
				return err
			}
			r, err := analyze.Analyze(n, c.Sink, c.AnalyzeOptions())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, b := range r.Layout.Branches {
				fmt.Fprintf(w, "branch %s tap %s period %d\n", n.Name(b.Root), n.Name(b.Tap), r.Periods[i])
			}
			fmt.Fprintf(w, "presses %d\n", r.Presses)
			return nil
		},
	}
	cmd.Flags().StringVar(&sink, "sink", "rx", "sink module")
	cmd.Flags().Uint64Var(&budget, "budget", analyze.DefaultBudget, "maximum presses per branch")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "branch probe goroutines (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify that branches are periodic from the first press")
	return cmd
}

// NewBranchesCommand creates the branches command.
func NewBranchesCommand(root *RootOptions) *cobra.Command {
	var sink string

	cmd := &cobra.Command{
		Use:   "branches [FILE]",
		Short: "List the independent branches feeding the sink",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sink") {
				sink = root.cfg.Sink
			}
			n, err := root.loadNetwork(args)
			if err != nil {
				return err
			}
			id, ok := n.Lookup(sink)
			if !ok {
				return errors.Errorf("no module named %s", sink)
			}
			l, err := analyze.Branches(n, id)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "hub %s%s\n", pulsenet.Conjunction.Prefix(), n.Name(l.Hub))
			for _, b := range l.Branches {
				fmt.Fprintf(w, "branch %s tap %s modules %d\n", n.Name(b.Root), n.Name(b.Tap), len(b.Members))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sink, "sink", "rx", "sink module")
	return cmd
}
