// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"github.com/pkg/errors"
)

// DefaultMaxPulses is the default cap on the number of pulses processed for a
// single button press.
//
const DefaultMaxPulses = 1 << 20

// Counts holds the number of low and high pulses processed.
//
type Counts struct {
	Low  uint64
	High uint64
}

// Product returns Low * High.
//
func (c Counts) Product() uint64 { return c.Low * c.High }

func (c *Counts) add(l Level) {
	if l == High {
		c.High++
	} else {
		c.Low++
	}
}

// A Predicate reports whether a pulse matches some condition.
//
type Predicate func(p Pulse) bool

// Sim runs button presses on a Network.
//
// Pulses are processed in a single FIFO queue shared by all modules: pulses
// sent while handling a pulse are queued after all pulses already pending.
// A Sim owns its Network for its whole lifetime.
//
type Sim struct {
	net       *Network
	from, to  ID
	maxPulses int
	observe   func(press uint64, p Pulse)

	queue   []Pulse
	presses uint64
	counts  Counts
}

// A SimOption configures a Sim.
//
type SimOption func(*Sim)

// MaxPulses sets the maximum number of pulses processed for a single button
// press. Values <= 0 select DefaultMaxPulses.
//
func MaxPulses(n int) SimOption {
	return func(s *Sim) {
		if n <= 0 {
			n = DefaultMaxPulses
		}
		s.maxPulses = n
	}
}

// Inject changes the pulse sent on each button press. By default, a low pulse
// is sent from Button to the network's entry module.
//
func Inject(from, to ID) SimOption {
	return func(s *Sim) { s.from, s.to = from, to }
}

// Observe sets a function called for every pulse processed, together with the
// 1-based index of the current button press.
//
func Observe(fn func(press uint64, p Pulse)) SimOption {
	return func(s *Sim) { s.observe = fn }
}

// NewSim returns a new Sim for n.
//
func NewSim(n *Network, opts ...SimOption) *Sim {
	s := &Sim{
		net:       n,
		from:      Button,
		to:        n.entry,
		maxPulses: DefaultMaxPulses,
		queue:     make([]Pulse, 0, 64),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Network returns the network s runs on.
//
func (s *Sim) Network() *Network { return s.net }

// Presses returns the number of button presses run so far.
//
func (s *Sim) Presses() uint64 { return s.presses }

// Counts returns the total number of pulses processed so far.
//
func (s *Sim) Counts() Counts { return s.counts }

// Press presses the button once and processes pulses until none remain.
//
func (s *Sim) Press() error {
	_, err := s.press(nil)
	return err
}

// Run presses the button the given number of times and returns the running
// pulse totals.
//
func (s *Sim) Run(presses int) (Counts, error) {
	for i := 0; i < presses; i++ {
		if _, err := s.press(nil); err != nil {
			return s.counts, err
		}
	}
	return s.counts, nil
}

// PressUntil presses the button until stop returns true for a processed pulse,
// at most budget times. It returns the 1-based index of the press during which
// stop matched. When stop matches, the remaining pulses for that press are
// discarded. If the budget is exhausted, the returned error wraps ErrNotFound.
//
func (s *Sim) PressUntil(stop Predicate, budget uint64) (uint64, error) {
	for i := uint64(0); i < budget; i++ {
		found, err := s.press(stop)
		if err != nil {
			return 0, err
		}
		if found {
			return s.presses, nil
		}
	}
	return 0, errors.Wrapf(ErrNotFound, "after %d presses", budget)
}

func (s *Sim) press(stop Predicate) (bool, error) {
	s.presses++
	q := append(s.queue[:0], Pulse{From: s.from, To: s.to, Level: Low})
	defer func() { s.queue = q[:0] }()

	for head := 0; head < len(q); head++ {
		if head >= s.maxPulses {
			return false, errors.Wrapf(ErrNotSettled, "press %d: more than %d pulses", s.presses, s.maxPulses)
		}
		p := q[head]
		s.counts.add(p.Level)
		if s.observe != nil {
			s.observe(s.presses, p)
		}
		if stop != nil && stop(p) {
			return true, nil
		}
		m := &s.net.mods[p.To]
		l, emit, err := m.receive(p)
		if err != nil {
			return false, errors.Wrapf(err, "press %d", s.presses)
		}
		if !emit {
			continue
		}
		for _, d := range m.dests {
			q = append(q, Pulse{From: p.To, To: d, Level: l})
		}
	}
	return false, nil
}

// FormatPulse formats p the way it is commonly written in traces:
//
//	broadcaster -low-> a
//
func FormatPulse(n *Network, p Pulse) string {
	return n.Name(p.From) + " -" + p.Level.String() + "-> " + n.Name(p.To)
}
