// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/headerinspect/inspect"
	"github.com/stacklok/headerinspect/logging"
	"github.com/stacklok/headerinspect/rule"
	"github.com/stacklok/headerinspect/validation/location"
)

// ErrUnknownLocation is returned by Config.Location for a name no location carries.
var ErrUnknownLocation = errors.New("unknown location")

// Settings holds the inspection directives of one scope. A nil field is unset
// and inherits from the enclosing scope.
type Settings struct {
	Inspect          *bool   `yaml:"inspect,omitempty"`
	LogViolations    *bool   `yaml:"log_violations,omitempty"`
	LogUninspected   *bool   `yaml:"log_uninspected,omitempty"`
	BlockViolations  *bool   `yaml:"block_violations,omitempty"`
	RangeMaxByteSets *uint32 `yaml:"range_max_bytesets,omitempty"`
	NameMatching     *string `yaml:"name_matching,omitempty"`
	BlockWhen        *string `yaml:"block_when,omitempty"`
}

// Location is a named scope selected by request path prefix.
type Location struct {
	Name       string `yaml:"name"`
	PathPrefix string `yaml:"path_prefix"`
	Settings   `yaml:",inline"`

	policy inspect.Policy
}

// Policy returns the merged policy of the location.
func (l *Location) Policy() inspect.Policy {
	return l.policy
}

// Log selects the format and level of violation diagnostics.
type Log struct {
	Format string `yaml:"format,omitempty"`
	Level  string `yaml:"level,omitempty"`
}

// Config is a parsed and resolved configuration. It is immutable after Load
// or Parse returns and safe for concurrent use.
type Config struct {
	Log       Log        `yaml:"log,omitempty"`
	Defaults  Settings   `yaml:"defaults,omitempty"`
	Locations []Location `yaml:"locations,omitempty"`

	defaults   inspect.Policy
	logOptions []logging.Option
	// byPrefix holds indexes into Locations, longest path prefix first.
	byPrefix []int
}

// Default returns the configuration used when no file exists: a single
// default scope with inspect.DefaultPolicy.
func Default() *Config {
	return &Config{defaults: inspect.DefaultPolicy()}
}

// Load reads and parses the configuration file at path. A missing file
// returns an error wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses a YAML configuration document. The document is checked against
// the embedded JSON schema before it is decoded; schema violations are
// reported as a *ValidationError.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve validates names and rules and merges every scope with its parent.
func (c *Config) resolve() error {
	opts, err := c.Log.options()
	if err != nil {
		return err
	}
	c.logOptions = opts

	c.defaults, err = c.Defaults.merge(inspect.DefaultPolicy())
	if err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	seen := make(map[string]bool, len(c.Locations))
	c.byPrefix = make([]int, 0, len(c.Locations))
	for i := range c.Locations {
		loc := &c.Locations[i]
		if err := location.ValidateName(loc.Name); err != nil {
			return fmt.Errorf("locations[%d]: %w", i, err)
		}
		if seen[loc.Name] {
			return fmt.Errorf("locations[%d]: duplicate location name %q", i, loc.Name)
		}
		seen[loc.Name] = true
		if err := location.ValidatePathPrefix(loc.PathPrefix); err != nil {
			return fmt.Errorf("location %q: %w", loc.Name, err)
		}
		loc.policy, err = loc.merge(c.defaults)
		if err != nil {
			return fmt.Errorf("location %q: %w", loc.Name, err)
		}
		c.byPrefix = append(c.byPrefix, i)
	}

	// Ties keep file order.
	sort.SliceStable(c.byPrefix, func(a, b int) bool {
		return len(c.Locations[c.byPrefix[a]].PathPrefix) > len(c.Locations[c.byPrefix[b]].PathPrefix)
	})
	return nil
}

// merge fills the fields of parent that s sets.
func (s Settings) merge(parent inspect.Policy) (inspect.Policy, error) {
	p := parent
	if s.Inspect != nil {
		p.Inspect = *s.Inspect
	}
	if s.LogViolations != nil {
		p.LogViolations = *s.LogViolations
	}
	if s.LogUninspected != nil {
		p.LogUninspected = *s.LogUninspected
	}
	if s.BlockViolations != nil {
		p.BlockViolations = *s.BlockViolations
	}
	if s.RangeMaxByteSets != nil {
		p.RangeMaxByteSets = *s.RangeMaxByteSets
	}
	if s.NameMatching != nil {
		m, err := inspect.ParseNameMatching(*s.NameMatching)
		if err != nil {
			return inspect.Policy{}, err
		}
		p.NameMatching = m
	}
	if s.BlockWhen != nil {
		r, err := rule.Compile(*s.BlockWhen)
		if err != nil {
			return inspect.Policy{}, fmt.Errorf("block_when: %w", err)
		}
		p.BlockRule = r
	}
	if err := p.Validate(); err != nil {
		return inspect.Policy{}, err
	}
	return p, nil
}

func (l Log) options() ([]logging.Option, error) {
	var opts []logging.Option
	if l.Format != "" {
		f, err := logging.ParseFormat(l.Format)
		if err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
		opts = append(opts, logging.WithFormat(f))
	}
	if l.Level != "" {
		lvl, err := logging.ParseLevel(l.Level)
		if err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
		opts = append(opts, logging.WithLevel(lvl))
	}
	return opts, nil
}

// DefaultPolicy returns the policy of requests no location matches.
func (c *Config) DefaultPolicy() inspect.Policy {
	return c.defaults
}

// PolicyFor returns the policy of the location with the longest path prefix
// matching path, or the default policy.
func (c *Config) PolicyFor(path string) inspect.Policy {
	for _, i := range c.byPrefix {
		if strings.HasPrefix(path, c.Locations[i].PathPrefix) {
			return c.Locations[i].policy
		}
	}
	return c.defaults
}

// Location returns the location called name.
func (c *Config) Location(name string) (*Location, error) {
	for i := range c.Locations {
		if c.Locations[i].Name == name {
			return &c.Locations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
}

// LoggingOptions returns the logging options of the log section, to be passed
// to logging.New.
func (c *Config) LoggingOptions() []logging.Option {
	return append([]logging.Option(nil), c.logOptions...)
}
