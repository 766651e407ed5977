// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analyze

import (
	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
)

// A Cycle describes the repeating part of a branch's state sequence: the state
// after press Start+Length is the same as after press Start, and Start is the
// smallest such press index.
//
type Cycle struct {
	Start  uint64
	Length uint64
}

// Verify checks that the tap of branch b receives a low pulse during exactly
// the presses that are multiples of period, which is what Analyze assumes.
//
// The branch is simulated on a clone of n, pressing the button until the state
// of the branch members repeats (at most budget presses, ErrNoCycle
// otherwise). The check succeeds if the cycle length is a multiple of period
// and the tap hits seen up to the end of the first cycle are exactly the
// multiples of period. Since the state sequence repeats from there on, so do
// the hits. An error wrapping ErrAperiodic is returned otherwise.
//
// Verify needs one state fingerprint per press until the cycle is found, so
// it is only practical for branches with reasonably short cycles.
//
func Verify(n *pulsenet.Network, b Branch, period, budget uint64, maxPulses int) (Cycle, error) {
	var c Cycle
	if period == 0 {
		return c, errors.Wrap(ErrAperiodic, "zero period")
	}
	net := n.Clone()
	tap := b.Tap
	var hits []uint64
	s := pulsenet.NewSim(net,
		pulsenet.Inject(n.Entry(), b.Root),
		pulsenet.MaxPulses(maxPulses),
		pulsenet.Observe(func(press uint64, p pulsenet.Pulse) {
			if p.To == tap && p.Level == pulsenet.Low && (len(hits) == 0 || hits[len(hits)-1] != press) {
				hits = append(hits, press)
			}
		}))

	seen := map[string]uint64{net.Fingerprint(b.Members): 0}
	for i := uint64(1); ; i++ {
		if i > budget {
			return c, errors.Wrapf(ErrNoCycle, "branch %s: no repeat after %d presses", n.Name(b.Root), budget)
		}
		if err := s.Press(); err != nil {
			return c, errors.Wrapf(err, "branch %s", n.Name(b.Root))
		}
		fp := net.Fingerprint(b.Members)
		if start, ok := seen[fp]; ok {
			c = Cycle{Start: start, Length: i - start}
			break
		}
		seen[fp] = i
	}

	if c.Length%period != 0 {
		return c, errors.Wrapf(ErrAperiodic, "branch %s: state cycle length %d is not a multiple of period %d", n.Name(b.Root), c.Length, period)
	}
	end := c.Start + c.Length
	want := period
	for _, h := range hits {
		if h != want {
			return c, errors.Wrapf(ErrAperiodic, "branch %s: tap %s hit at press %d, expected %d", n.Name(b.Root), n.Name(tap), h, want)
		}
		want += period
	}
	if want <= end {
		return c, errors.Wrapf(ErrAperiodic, "branch %s: tap %s missed press %d", n.Name(b.Root), n.Name(tap), want)
	}
	return c, nil
}
