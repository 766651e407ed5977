package pulsenet

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, m *module, from ID, l Level) (Level, bool) {
	t.Helper()
	out, emit, err := m.receive(Pulse{From: from, To: 0, Level: l})
	require.NoError(t, err)
	return out, emit
}

func Test_broadcaster(t *testing.T) {
	m := &module{name: "b", kind: Broadcaster}
	for _, l := range []Level{Low, High, Low} {
		out, emit := recv(t, m, Button, l)
		assert.True(t, emit)
		assert.Equal(t, l, out)
	}
}

func Test_flipFlop(t *testing.T) {
	m := &module{name: "f", kind: FlipFlop}

	out, emit := recv(t, m, 1, Low)
	assert.True(t, emit)
	assert.Equal(t, High, out)
	assert.True(t, m.on)

	// high pulses have no effect at all.
	_, emit = recv(t, m, 1, High)
	assert.False(t, emit)
	assert.True(t, m.on)

	out, emit = recv(t, m, 1, Low)
	assert.True(t, emit)
	assert.Equal(t, Low, out)
	assert.False(t, m.on, "two low pulses must restore the initial state")
}

func Test_conjunction(t *testing.T) {
	const a, b ID = 1, 2
	m := &module{name: "c", kind: Conjunction, inputs: map[ID]Level{a: High, b: High}, highs: 2}

	td := []struct {
		from ID
		in   Level
		out  Level
	}{
		{a, High, Low},
		{b, High, Low},
		{b, Low, High},
		{a, High, High},
		{b, High, Low},
		{a, Low, High},
		{a, Low, High},
		{b, Low, High},
		{a, High, High},
		{b, High, Low},
	}
	for i, d := range td {
		out, emit := recv(t, m, d.from, d.in)
		require.True(t, emit)
		assert.Equal(t, d.out, out, "step %d", i)
	}
}

func Test_conjunction_unknownInput(t *testing.T) {
	m := &module{name: "c", kind: Conjunction, inputs: map[ID]Level{1: Low}}
	_, _, err := m.receive(Pulse{From: 7, Level: High})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownInput))
	assert.Equal(t, Low, m.inputs[1])
	assert.Len(t, m.inputs, 1)
}

func Test_sink(t *testing.T) {
	m := &module{name: "rx", kind: Sink}
	_, emit := recv(t, m, 3, Low)
	assert.False(t, emit)
}

func Test_module_reset(t *testing.T) {
	m := &module{kind: Conjunction, inputs: map[ID]Level{1: High, 2: High}, highs: 2, on: true}
	c := m.clone()
	m.reset()
	assert.False(t, m.on)
	assert.Equal(t, 0, m.highs)
	assert.Equal(t, map[ID]Level{1: Low, 2: Low}, m.inputs)
	// the clone has its own memory.
	assert.Equal(t, map[ID]Level{1: High, 2: High}, c.inputs)
	assert.Equal(t, 2, c.highs)
}
