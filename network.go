// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultEntry is the name of the entry module unless changed with Entry.
//
const DefaultEntry = "broadcaster"

// A Def is the definition of a single module: its name, kind and the names of
// the modules it sends pulses to, in order.
//
type Def struct {
	Name  string
	Kind  Kind
	Dests []string
}

func (d Def) String() string {
	return d.Kind.Prefix() + d.Name + " -> " + strings.Join(d.Dests, ", ")
}

// A Network is a set of interconnected modules.
//
// A Network is not safe for concurrent use. Use Clone to get independent
// copies.
//
type Network struct {
	mods  []module
	preds [][]ID
	names map[string]ID
	entry ID
}

type buildConfig struct {
	entry string
	sinks map[string]bool
}

// A BuildOption configures Build.
//
type BuildOption func(*buildConfig)

// Entry sets the name of the module that receives the button pulse.
//
func Entry(name string) BuildOption {
	return func(c *buildConfig) { c.entry = name }
}

// Sinks restricts the names of undeclared destinations that Build accepts as
// sink modules. By default, any undeclared destination becomes a sink.
//
func Sinks(names ...string) BuildOption {
	return func(c *buildConfig) {
		if c.sinks == nil {
			c.sinks = make(map[string]bool, len(names))
		}
		for _, n := range names {
			c.sinks[n] = true
		}
	}
}

// Build creates a new Network from the given module definitions.
//
// Module IDs are assigned in definition order. Sinks created for undeclared
// destinations get the following IDs, in order of first reference. All wiring
// errors are reported here, wrapping ErrMalformedWiring.
//
func Build(defs []Def, opts ...BuildOption) (*Network, error) {
	cfg := buildConfig{entry: DefaultEntry}
	for _, o := range opts {
		o(&cfg)
	}

	n := &Network{
		mods:  make([]module, 0, len(defs)+1),
		names: make(map[string]ID, len(defs)+1),
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, errors.Wrap(ErrMalformedWiring, "empty module name")
		}
		if d.Kind < Broadcaster || d.Kind > Sink {
			return nil, errors.Wrapf(ErrMalformedWiring, "module %s: invalid kind %d", d.Name, int(d.Kind))
		}
		if _, ok := n.names[d.Name]; ok {
			return nil, errors.Wrapf(ErrMalformedWiring, "duplicate module %s", d.Name)
		}
		n.names[d.Name] = ID(len(n.mods))
		n.mods = append(n.mods, module{name: d.Name, kind: d.Kind})
	}

	// resolve destinations, adding sinks as needed.
	for i, d := range defs {
		if d.Kind == Sink && len(d.Dests) > 0 {
			return nil, errors.Wrapf(ErrMalformedWiring, "sink %s has destinations", d.Name)
		}
		dests := make([]ID, 0, len(d.Dests))
		for _, dn := range d.Dests {
			id, ok := n.names[dn]
			if !ok {
				if dn == "" {
					return nil, errors.Wrapf(ErrMalformedWiring, "module %s: empty destination name", d.Name)
				}
				if cfg.sinks != nil && !cfg.sinks[dn] {
					return nil, errors.Wrapf(ErrMalformedWiring, "module %s: undefined destination %s", d.Name, dn)
				}
				id = ID(len(n.mods))
				n.names[dn] = id
				n.mods = append(n.mods, module{name: dn, kind: Sink})
			}
			dests = append(dests, id)
		}
		n.mods[i].dests = dests
	}

	// predecessors and conjunction memory.
	n.preds = make([][]ID, len(n.mods))
	for i := range n.mods {
		for _, d := range n.mods[i].dests {
			n.preds[d] = appendUnique(n.preds[d], ID(i))
		}
	}
	for i := range n.mods {
		m := &n.mods[i]
		if m.kind != Conjunction {
			continue
		}
		m.inputs = make(map[ID]Level, len(n.preds[i]))
		for _, p := range n.preds[i] {
			m.inputs[p] = Low
		}
	}

	entry, ok := n.names[cfg.entry]
	if !ok {
		return nil, errors.Wrapf(ErrMalformedWiring, "entry module %s not found", cfg.entry)
	}
	if n.mods[entry].kind == Conjunction {
		return nil, errors.Wrapf(ErrMalformedWiring, "entry module %s is a conjunction", cfg.entry)
	}
	n.entry = entry
	return n, nil
}

func appendUnique(ids []ID, id ID) []ID {
	for _, i := range ids {
		if i == id {
			return ids
		}
	}
	return append(ids, id)
}

// Len returns the number of modules in n, sinks included.
//
func (n *Network) Len() int { return len(n.mods) }

// Entry returns the ID of the module that receives the button pulse.
//
func (n *Network) Entry() ID { return n.entry }

// Lookup returns the ID of the named module.
//
func (n *Network) Lookup(name string) (ID, bool) {
	id, ok := n.names[name]
	return id, ok
}

// Name returns the name of module id. It returns ButtonName for Button.
//
func (n *Network) Name(id ID) string {
	if id == Button {
		return ButtonName
	}
	return n.mods[id].name
}

// Kind returns the kind of module id.
//
func (n *Network) Kind(id ID) Kind { return n.mods[id].kind }

// Destinations returns the destinations of module id. The returned slice must
// not be modified.
//
func (n *Network) Destinations(id ID) []ID { return n.mods[id].dests }

// Predecessors returns the IDs of the modules that send pulses to module id,
// in ID order. The returned slice must not be modified.
//
func (n *Network) Predecessors(id ID) []ID { return n.preds[id] }

// On returns the state of flip-flop id. It returns false for other kinds.
//
func (n *Network) On(id ID) bool { return n.mods[id].on }

// Memory returns a copy of the inputs remembered by conjunction id, or nil if
// id is not a conjunction.
//
func (n *Network) Memory(id ID) map[ID]Level {
	m := &n.mods[id]
	if m.kind != Conjunction {
		return nil
	}
	r := make(map[ID]Level, len(m.inputs))
	for k, v := range m.inputs {
		r[k] = v
	}
	return r
}

// Clone returns a copy of n with independent module state.
//
func (n *Network) Clone() *Network {
	c := &Network{
		mods:  make([]module, len(n.mods)),
		preds: n.preds,
		names: n.names,
		entry: n.entry,
	}
	for i := range n.mods {
		c.mods[i] = n.mods[i].clone()
	}
	return c
}

// Reset turns off all flip-flops and sets all conjunction inputs to low.
//
func (n *Network) Reset() {
	for i := range n.mods {
		n.mods[i].reset()
	}
}

// Fingerprint returns a string encoding the state of the given modules. Two
// networks built from the same definitions have the same fingerprint for the
// same ids if and only if these modules are in the same state. If ids is nil,
// all modules are included.
//
func (n *Network) Fingerprint(ids []ID) string {
	if ids == nil {
		ids = make([]ID, len(n.mods))
		for i := range ids {
			ids[i] = ID(i)
		}
	}
	var b strings.Builder
	for _, id := range ids {
		m := &n.mods[id]
		switch m.kind {
		case FlipFlop:
			b.WriteString(strconv.Itoa(int(id)))
			if m.on {
				b.WriteString("+;")
			} else {
				b.WriteString("-;")
			}
		case Conjunction:
			b.WriteString(strconv.Itoa(int(id)))
			b.WriteByte('[')
			// preds are sorted by construction.
			for _, p := range n.preds[id] {
				if m.inputs[p] {
					b.WriteByte('1')
				} else {
					b.WriteByte('0')
				}
			}
			b.WriteString("];")
		}
	}
	return b.String()
}

// Defs returns the module definitions of n, sinks included, in ID order.
//
func (n *Network) Defs() []Def {
	defs := make([]Def, len(n.mods))
	for i := range n.mods {
		m := &n.mods[i]
		ds := make([]string, len(m.dests))
		for j, d := range m.dests {
			ds[j] = n.mods[d].name
		}
		defs[i] = Def{Name: m.name, Kind: m.kind, Dests: ds}
	}
	return defs
}

// Names returns the names of the given modules, sorted.
//
func (n *Network) Names(ids []ID) []string {
	r := make([]string, len(ids))
	for i, id := range ids {
		r[i] = n.Name(id)
	}
	sort.Strings(r)
	return r
}
