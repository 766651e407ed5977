// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing pulse networks.
//
package pulsetest

import (
	"math/bits"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Names used by Counter.
const (
	CounterHub  = "zh"
	CounterSink = "rx"
)

// Counter returns the definitions of a network with one binary counter branch
// per period, all joined in a conjunction hub feeding a sink:
//
//	broadcaster -> c0f0, c1f0, ...
//	%c0f0 -> c0f1, c0h   // flip-flops c<branch>f<bit>
//	...
//	&c0h -> ..., c0f0, c0t
//	&c0t -> zh           // tap of branch 0
//	&zh -> rx
//
// Flip-flops for bits set in the period feed the branch conjunction, which
// feeds back the other flip-flops. The tap of each branch receives its first
// low pulse on the press equal to the branch period, and the sink on the press
// equal to the LCM of all periods.
//
// Periods must be odd.
//
func Counter(periods ...uint64) ([]pulsenet.Def, error) {
	root := pulsenet.Def{Name: pulsenet.DefaultEntry, Kind: pulsenet.Broadcaster}
	defs := []pulsenet.Def{root}
	for j, p := range periods {
		if p&1 == 0 {
			return nil, errors.Errorf("period %d is not odd", p)
		}
		prefix := "c" + strconv.Itoa(j)
		hub, tap := prefix+"h", prefix+"t"
		ff := func(i int) string { return prefix + "f" + strconv.Itoa(i) }
		k := bits.Len64(p)

		var hubDests []string
		for i := 0; i < k; i++ {
			d := pulsenet.Def{Name: ff(i), Kind: pulsenet.FlipFlop}
			if i+1 < k {
				d.Dests = append(d.Dests, ff(i+1))
			}
			if p&(1<<uint(i)) != 0 {
				d.Dests = append(d.Dests, hub)
			} else {
				hubDests = append(hubDests, ff(i))
			}
			defs = append(defs, d)
		}
		hubDests = append(hubDests, ff(0), tap)
		defs = append(defs,
			pulsenet.Def{Name: hub, Kind: pulsenet.Conjunction, Dests: hubDests},
			pulsenet.Def{Name: tap, Kind: pulsenet.Conjunction, Dests: []string{CounterHub}})
		defs[0].Dests = append(defs[0].Dests, ff(0))
	}
	defs = append(defs, pulsenet.Def{Name: CounterHub, Kind: pulsenet.Conjunction, Dests: []string{CounterSink}})
	return defs, nil
}

// MustBuild parses the module list src and builds a network from it. It
// aborts the test on error.
//
func MustBuild(t testing.TB, src string, opts ...pulsenet.BuildOption) *pulsenet.Network {
	t.Helper()
	defs, err := pulsenet.ParseString(src)
	require.NoError(t, err)
	n, err := pulsenet.Build(defs, opts...)
	require.NoError(t, err)
	return n
}

// Trace presses the button the given number of times on n and returns the
// pulses processed, one per line, each press preceded by a "# press N" line.
//
func Trace(n *pulsenet.Network, presses int) ([]string, error) {
	var lines []string
	var last uint64
	s := pulsenet.NewSim(n, pulsenet.Observe(func(press uint64, p pulsenet.Pulse) {
		if press != last {
			lines = append(lines, "# press "+strconv.FormatUint(press, 10))
			last = press
		}
		lines = append(lines, pulsenet.FormatPulse(n, p))
	}))
	_, err := s.Run(presses)
	return lines, err
}

// AssertGolden compares the trace of the first presses of n against the golden
// file testdata/golden/<name>.golden. Run the tests with -update to rewrite
// golden files.
//
func AssertGolden(t *testing.T, name string, n *pulsenet.Network, presses int) {
	t.Helper()
	lines, err := Trace(n, presses)
	require.NoError(t, err)
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"))
	g.Assert(t, name, []byte(strings.Join(lines, "\n")+"\n"))
}

// Compare presses the button on both networks the given number of times and
// checks that they process the exact same pulses and end up in the same
// state. Both networks must be built from the same definitions.
//
func Compare(t *testing.T, n1, n2 *pulsenet.Network, presses int) {
	t.Helper()
	require.Equal(t, n1.Len(), n2.Len(), "module count")

	t1, err := Trace(n1, presses)
	require.NoError(t, err)
	t2, err := Trace(n2, presses)
	require.NoError(t, err)
	require.Equal(t, len(t1), len(t2), "pulse count")
	for i := range t1 {
		if t1[i] != t2[i] {
			t.Fatalf("traces differ at line %d: %q != %q", i+1, t1[i], t2[i])
		}
	}
	require.Equal(t, n1.Fingerprint(nil), n2.Fingerprint(nil), "final state")
}
