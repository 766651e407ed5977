// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads run settings for the pulsenet command.
package config

import (
	"os"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/analyze"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a run. Zero values are replaced by defaults in
// Load.
type Config struct {
	Input     string   `yaml:"input,omitempty"`      // module list file
	Entry     string   `yaml:"entry,omitempty"`      // entry module name
	Sink      string   `yaml:"sink,omitempty"`       // module analyzed by the analyze command
	Sinks     []string `yaml:"sinks,omitempty"`      // accepted undeclared destinations, all if empty
	Presses   int      `yaml:"presses,omitempty"`    // presses for count and trace
	MaxPulses int      `yaml:"max_pulses,omitempty"` // pulse cap per press
	Budget    uint64   `yaml:"budget,omitempty"`     // press budget per branch probe
	Workers   int      `yaml:"workers,omitempty"`    // branch probe goroutines, 0 = GOMAXPROCS
	Verify    bool     `yaml:"verify,omitempty"`     // verify branch periodicity
	LogLevel  string   `yaml:"log_level,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Entry:     pulsenet.DefaultEntry,
		Sink:      "rx",
		Presses:   1000,
		MaxPulses: pulsenet.DefaultMaxPulses,
		Budget:    analyze.DefaultBudget,
		LogLevel:  "info",
	}
}

// Load reads the YAML file at path on top of the default configuration. An
// empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parse config %s", path)
	}
	return c, c.Validate()
}

// Validate checks c for invalid values.
func (c *Config) Validate() error {
	switch {
	case c.Entry == "":
		return errors.New("config: empty entry module name")
	case c.Presses < 0:
		return errors.Errorf("config: negative presses %d", c.Presses)
	case c.MaxPulses < 0:
		return errors.Errorf("config: negative max_pulses %d", c.MaxPulses)
	case c.Workers < 0:
		return errors.Errorf("config: negative workers %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}

// BuildOptions returns the pulsenet build options matching c.
func (c *Config) BuildOptions() []pulsenet.BuildOption {
	opts := []pulsenet.BuildOption{pulsenet.Entry(c.Entry)}
	if len(c.Sinks) > 0 {
		opts = append(opts, pulsenet.Sinks(c.Sinks...))
	}
	return opts
}

// AnalyzeOptions returns the analyzer options matching c.
func (c *Config) AnalyzeOptions() analyze.Options {
	return analyze.Options{
		Budget:    c.Budget,
		MaxPulses: c.MaxPulses,
		Workers:   c.Workers,
		Verify:    c.Verify,
	}
}
