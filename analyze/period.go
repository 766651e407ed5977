// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analyze

import (
	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
)

// Period returns the index of the first button press during which the tap of
// branch b receives a low pulse.
//
// Only the branch is simulated: on each press, a low pulse is sent from the
// entry module directly to the branch root. The probe runs on a clone of n,
// which is left untouched. At most budget presses are run before giving up
// with ErrNoPeriod. maxPulses caps the number of pulses per press (see
// pulsenet.MaxPulses).
//
func Period(n *pulsenet.Network, b Branch, budget uint64, maxPulses int) (uint64, error) {
	s := pulsenet.NewSim(n.Clone(),
		pulsenet.Inject(n.Entry(), b.Root),
		pulsenet.MaxPulses(maxPulses))
	tap := b.Tap
	p, err := s.PressUntil(func(p pulsenet.Pulse) bool {
		return p.To == tap && p.Level == pulsenet.Low
	}, budget)
	switch {
	case errors.Is(err, pulsenet.ErrNotFound):
		return 0, errors.Wrapf(ErrNoPeriod, "branch %s: tap %s not reached after %d presses", n.Name(b.Root), n.Name(tap), budget)
	case err != nil:
		return 0, errors.Wrapf(err, "branch %s", n.Name(b.Root))
	}
	return p, nil
}

// FirstLow simulates the whole network and returns the index of the first
// button press during which the named module receives a low pulse. It works on
// a clone of n and is only practical for small answers.
//
func FirstLow(n *pulsenet.Network, name string, budget uint64, maxPulses int) (uint64, error) {
	id, ok := n.Lookup(name)
	if !ok {
		return 0, errors.Errorf("no module named %s", name)
	}
	s := pulsenet.NewSim(n.Clone(), pulsenet.MaxPulses(maxPulses))
	return s.PressUntil(func(p pulsenet.Pulse) bool {
		return p.To == id && p.Level == pulsenet.Low
	}, budget)
}
