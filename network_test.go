package pulsenet_test

import (
	"testing"

	pn "github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/pulsetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_errors(t *testing.T) {
	data := []struct {
		name string
		defs []pn.Def
		opts []pn.BuildOption
		err  string
	}{
		{"empty_name", []pn.Def{{Name: ""}}, nil,
			"empty module name: malformed wiring"},
		{"duplicate", []pn.Def{{Name: "broadcaster"}, {Name: "broadcaster", Kind: pn.FlipFlop}}, nil,
			"duplicate module broadcaster: malformed wiring"},
		{"bad_kind", []pn.Def{{Name: "broadcaster", Kind: 42}}, nil,
			"module broadcaster: invalid kind 42: malformed wiring"},
		{"no_entry", []pn.Def{{Name: "a", Dests: []string{"b"}}}, nil,
			"entry module broadcaster not found: malformed wiring"},
		{"conj_entry", []pn.Def{{Name: "broadcaster", Kind: pn.Conjunction}}, nil,
			"entry module broadcaster is a conjunction: malformed wiring"},
		{"sink_dests", []pn.Def{{Name: "broadcaster", Dests: []string{"rx"}}, {Name: "rx", Kind: pn.Sink, Dests: []string{"broadcaster"}}}, nil,
			"sink rx has destinations: malformed wiring"},
		{"undefined", []pn.Def{{Name: "broadcaster", Dests: []string{"rx", "typo"}}}, []pn.BuildOption{pn.Sinks("rx")},
			"module broadcaster: undefined destination typo: malformed wiring"},
		{"other_entry", []pn.Def{{Name: "start", Dests: []string{"rx"}}}, []pn.BuildOption{pn.Entry("start")},
			""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := pn.Build(d.defs, d.opts...)
			if d.err == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, d.err)
			assert.True(t, errors.Is(err, pn.ErrMalformedWiring))
		})
	}
}

func TestBuild(t *testing.T) {
	n := pulsetest.MustBuild(t, example2)
	require.Equal(t, 6, n.Len())

	ids := make(map[string]pn.ID)
	for _, name := range []string{"broadcaster", "a", "inv", "b", "con", "output"} {
		id, ok := n.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, n.Name(id))
		ids[name] = id
	}
	// declaration order, then sinks.
	assert.Equal(t, pn.ID(0), ids["broadcaster"])
	assert.Equal(t, pn.ID(5), ids["output"])
	assert.Equal(t, ids["broadcaster"], n.Entry())
	assert.Equal(t, pn.Sink, n.Kind(ids["output"]))
	assert.Equal(t, pn.Conjunction, n.Kind(ids["con"]))
	assert.Equal(t, []pn.ID{ids["inv"], ids["con"]}, n.Destinations(ids["a"]))
	assert.Equal(t, []pn.ID{ids["a"], ids["b"]}, n.Predecessors(ids["con"]))
	assert.Equal(t, map[pn.ID]pn.Level{ids["a"]: pn.Low, ids["b"]: pn.Low}, n.Memory(ids["con"]))
	assert.Nil(t, n.Memory(ids["a"]))
	assert.Equal(t, pn.ButtonName, n.Name(pn.Button))

	_, ok := n.Lookup("nope")
	assert.False(t, ok)

	assert.Equal(t, "&con -> output", n.Defs()[ids["con"]].String())
}

func TestBuild_sinks(t *testing.T) {
	defs, err := pn.ParseString("broadcaster -> a, rx\n%a -> rx, output")
	require.NoError(t, err)
	n, err := pn.Build(defs, pn.Sinks("rx", "output"))
	require.NoError(t, err)
	rx, ok := n.Lookup("rx")
	require.True(t, ok)
	assert.Equal(t, pn.Sink, n.Kind(rx))
	assert.Equal(t, 4, n.Len())
	assert.Empty(t, n.Destinations(rx))
}

func TestNetwork_Reachable(t *testing.T) {
	n := pulsetest.MustBuild(t, `
broadcaster -> a, d
%a -> b
%b -> c, a
&c -> rx
%d -> e
%e -> c
`)
	id := func(name string) pn.ID {
		i, ok := n.Lookup(name)
		require.True(t, ok, name)
		return i
	}
	assert.Equal(t, []string{"a", "b", "c", "rx"}, n.Names(n.Reachable(id("a"), nil)))
	// c is included but not expanded.
	c := id("c")
	got := n.Reachable(id("d"), func(i pn.ID) bool { return i == c })
	assert.Equal(t, []pn.ID{id("d"), id("e"), c}, got)
	assert.True(t, n.Feeds(id("e"), c))
	assert.False(t, n.Feeds(c, id("e")))
}
