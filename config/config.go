// Package config loads evaluator settings from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/smasher164/untyped/debruijn"
)

// DefaultMaxSteps bounds normalization when nothing else is configured.
const DefaultMaxSteps = 10000

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml"}

type Config struct {
	Strategy string `toml:"strategy"`
	MaxSteps int    `toml:"max_steps"`
	Trace    bool   `toml:"trace"`
	LogLevel string `toml:"log_level"`
	Format   string `toml:"format"`
}

func Default() *Config {
	return &Config{
		Strategy: "normal",
		MaxSteps: DefaultMaxSteps,
		LogLevel: "warn",
		Format:   "text",
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	md, err := toml.Decode(string(b), c)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return c, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if _, err := debruijn.StrategyByName(c.Strategy); err != nil {
		result = multierror.Append(result, err)
	}
	if c.MaxSteps < 0 {
		result = multierror.Append(result, fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}
	if !slices.Contains(Formats, c.Format) {
		result = multierror.Append(result, fmt.Errorf("unknown format %q (want one of %v)", c.Format, Formats))
	}
	return result.ErrorOrNil()
}
