package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/analyze"
	"github.com/db47h/pulsenet/pulsetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log", "warn"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"count", "analyze", "trace", "branches"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
	f := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "c", f.Shorthand)
}

func TestCount(t *testing.T) {
	out, err := run(t, "count", "testdata/example2.txt", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "presses 4\nlow 17\nhigh 11\nproduct 187\n", out)

	out, err = run(t, "count", "testdata/example2.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "product 11687500\n")
}

func TestCount_config(t *testing.T) {
	in, err := filepath.Abs("testdata/example2.txt")
	require.NoError(t, err)
	cfg := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input: "+in+"\npresses: 2\n"), 0o644))

	out, err := run(t, "-c", cfg, "count")
	require.NoError(t, err)
	assert.Equal(t, "presses 2\nlow 8\nhigh 6\nproduct 48\n", out)

	// the flag wins.
	out, err = run(t, "-c", cfg, "count", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "presses 1\nlow 4\nhigh 4\nproduct 16\n", out)
}

func TestCount_errors(t *testing.T) {
	_, err := run(t, "count")
	assert.EqualError(t, err, "no module list: pass a file or set input in the configuration")

	_, err = run(t, "count", "testdata/nope.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open module list")

	cfg := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("sinks: [rx]\n"), 0o644))
	_, err = run(t, "-c", cfg, "count", "testdata/example2.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pulsenet.ErrMalformedWiring), "%v", err)
}

func TestTrace(t *testing.T) {
	out, err := run(t, "trace", "testdata/example2.txt", "-n", "2")
	require.NoError(t, err)
	n := pulsetest.MustBuild(t, "broadcaster -> a\n%a -> inv, con\n&inv -> b\n%b -> con\n&con -> output")
	lines, err := pulsetest.Trace(n, 2)
	require.NoError(t, err)
	var want bytes.Buffer
	for _, l := range lines {
		want.WriteString(l + "\n")
	}
	assert.Equal(t, want.String(), out)
}

func TestAnalyze(t *testing.T) {
	out, err := run(t, "analyze", "testdata/counter.txt", "--verify", "-j", "2")
	require.NoError(t, err)
	assert.Equal(t, "branch c0f0 tap c0t period 3\nbranch c1f0 tap c1t period 5\npresses 15\n", out)

	_, err = run(t, "analyze", "testdata/counter.txt", "--budget", "4")
	assert.True(t, errors.Is(err, analyze.ErrNoPeriod), "%v", err)

	_, err = run(t, "analyze", "testdata/example2.txt", "--sink", "output")
	assert.True(t, errors.Is(err, analyze.ErrShape), "%v", err)
}

func TestBranches(t *testing.T) {
	out, err := run(t, "branches", "testdata/counter.txt")
	require.NoError(t, err)
	assert.Equal(t, "hub &zh\nbranch c0f0 tap c0t modules 4\nbranch c1f0 tap c1t modules 5\n", out)

	_, err = run(t, "branches", "testdata/counter.txt", "--sink", "nope")
	assert.EqualError(t, err, "no module named nope")
}
