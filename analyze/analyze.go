// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package analyze computes when the sink of a pulse network first receives a
// low pulse, for networks far too large to simulate press by press.
//
// It relies on a specific shape: the entry module feeds several independent
// branches, each behaving as a binary counter that sends a single pulse to a
// common hub conjunction every N presses, N being the branch period. The hub
// feeds the sink. The sink then receives its first low pulse after LCM(N₀, N₁,
// ...) presses.
//
// This only holds if every branch is periodic from the very first press, with
// no transient prefix. Analyze does not check this unless Options.Verify is
// set; see Verify.
//
package analyze

import (
	"runtime"
	"sync"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Default option values.
const (
	DefaultBudget = 1 << 24
)

// Options configures Analyze.
//
type Options struct {
	// Budget is the maximum number of presses per branch probe. Defaults to
	// DefaultBudget.
	Budget uint64
	// MaxPulses caps the pulses processed per press. Defaults to
	// pulsenet.DefaultMaxPulses.
	MaxPulses int
	// Workers is the number of goroutines probing branches. If <= 0, the
	// value of GOMAXPROCS is used.
	Workers int
	// Verify runs Verify on each branch once its period is known.
	Verify bool
}

// Result holds the outcome of Analyze.
//
type Result struct {
	// Presses is the index of the first press during which the sink receives
	// a low pulse.
	Presses uint64
	Layout  Layout
	// Periods holds the period of each branch in Layout.Branches.
	Periods []uint64
}

// Analyze returns the index of the first button press during which the named
// sink receives a low pulse. See the package documentation for the
// assumptions it makes. n is not modified.
//
func Analyze(n *pulsenet.Network, sink string, opts Options) (Result, error) {
	var r Result
	id, ok := n.Lookup(sink)
	if !ok {
		return r, errors.Errorf("no module named %s", sink)
	}
	if opts.Budget == 0 {
		opts.Budget = DefaultBudget
	}
	l, err := Branches(n, id)
	if err != nil {
		return r, err
	}
	r.Layout = l
	r.Periods = make([]uint64, len(l.Branches))

	errs := make([]error, len(l.Branches))
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers > len(l.Branches) {
		workers = len(l.Branches)
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				r.Periods[i], errs[i] = probe(n, l.Branches[i], &opts)
			}
		}()
	}
	for i := range l.Branches {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return r, err
		}
	}
	if r.Presses, err = LCMAll(r.Periods...); err != nil {
		return r, err
	}
	logrus.WithFields(logrus.Fields{
		"sink":     sink,
		"branches": len(l.Branches),
		"presses":  r.Presses,
	}).Info("analyze: done")
	return r, nil
}

func probe(n *pulsenet.Network, b Branch, opts *Options) (uint64, error) {
	p, err := Period(n, b, opts.Budget, opts.MaxPulses)
	if err != nil {
		return 0, err
	}
	logrus.Debugf("analyze: branch %s period %d", n.Name(b.Root), p)
	if !opts.Verify {
		return p, nil
	}
	c, err := Verify(n, b, p, opts.Budget, opts.MaxPulses)
	if err != nil {
		return 0, err
	}
	logrus.Debugf("analyze: branch %s state cycle %d+%d", n.Name(b.Root), c.Start, c.Length)
	return p, nil
}
