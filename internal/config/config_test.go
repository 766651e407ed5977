package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/pulsenet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pulsenet.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	c, err := Load(writeFile(t, `
input: modules.txt
sink: output
sinks: [output, rx]
presses: 4
workers: 2
verify: true
log_level: debug
`))
	require.NoError(t, err)
	want := Default()
	want.Input = "modules.txt"
	want.Sink = "output"
	want.Sinks = []string{"output", "rx"}
	want.Presses = 4
	want.Workers = 2
	want.Verify = true
	want.LogLevel = "debug"
	assert.Equal(t, want, c)

	ao := c.AnalyzeOptions()
	assert.Equal(t, 2, ao.Workers)
	assert.True(t, ao.Verify)
	assert.Equal(t, pulsenet.DefaultMaxPulses, ao.MaxPulses)
	assert.Len(t, c.BuildOptions(), 2)
}

func TestLoad_defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Len(t, c.BuildOptions(), 1)
}

func TestLoad_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
		err  string
	}{
		{"presses", "presses: -1", "config: negative presses -1"},
		{"workers", "workers: -2", "config: negative workers -2"},
		{"max_pulses", "max_pulses: -5", "config: negative max_pulses -5"},
		{"level", "log_level: loud", `config: not a valid logrus Level: "loud"`},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := Load(writeFile(t, d.src))
			require.EqualError(t, err, d.err)
		})
	}

	_, err := Load(writeFile(t, "presses: [1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
