// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"strconv"

	"github.com/pkg/errors"
)

// ID identifies a module in a Network. IDs are dense, starting at 0.
//
type ID int

// Button is the ID of the synthetic source of the pulse sent on each button
// press. It does not map to any module.
//
const Button ID = -1

// ButtonName is the name used for Button in traces.
//
const ButtonName = "button"

// Level is the level of a pulse.
//
type Level bool

// Pulse levels.
//
const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Kind is the type of a module.
//
type Kind int

// Module kinds.
//
const (
	// Broadcaster sends any pulse it receives to all its destinations.
	Broadcaster Kind = iota
	// FlipFlop is initially off. It ignores high pulses and toggles on low
	// pulses, sending high when turned on and low when turned off.
	FlipFlop
	// Conjunction remembers the last pulse from each of its inputs (initially
	// low). It sends low if all remembered pulses are high, high otherwise.
	Conjunction
	// Sink receives pulses and does nothing. Sinks are created for
	// destinations that are not declared as modules.
	Sink
)

var kindNames = [...]string{"broadcaster", "flip-flop", "conjunction", "sink"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Prefix returns the prefix character used for k in module lists, or an empty
// string for kinds without a prefix.
//
func (k Kind) Prefix() string {
	switch k {
	case FlipFlop:
		return "%"
	case Conjunction:
		return "&"
	}
	return ""
}

// A Pulse is sent from one module to another.
//
type Pulse struct {
	From  ID
	To    ID
	Level Level
}

type module struct {
	name  string
	kind  Kind
	dests []ID // never modified after Build.

	on     bool         // flip-flop state
	inputs map[ID]Level // conjunction memory
	highs  int          // number of High values in inputs
}

// receive applies pulse p to m and returns the level to send to all of m's
// destinations. emit is false if m does not send anything.
//
func (m *module) receive(p Pulse) (out Level, emit bool, err error) {
	switch m.kind {
	case Broadcaster:
		return p.Level, true, nil
	case FlipFlop:
		if p.Level == High {
			return Low, false, nil
		}
		m.on = !m.on
		return Level(m.on), true, nil
	case Conjunction:
		prev, ok := m.inputs[p.From]
		if !ok {
			return Low, false, errors.Wrapf(ErrUnknownInput, "conjunction %s received %s pulse from id %d", m.name, p.Level, p.From)
		}
		if prev != p.Level {
			m.inputs[p.From] = p.Level
			if p.Level == High {
				m.highs++
			} else {
				m.highs--
			}
		}
		return Level(m.highs != len(m.inputs)), true, nil
	case Sink:
		return Low, false, nil
	}
	panic("unknown module kind " + m.kind.String())
}

func (m *module) reset() {
	m.on = false
	for k := range m.inputs {
		m.inputs[k] = Low
	}
	m.highs = 0
}

func (m *module) clone() module {
	c := *m
	if m.inputs != nil {
		c.inputs = make(map[ID]Level, len(m.inputs))
		for k, v := range m.inputs {
			c.inputs[k] = v
		}
	}
	return c
}
