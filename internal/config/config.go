// Package config loads the randomuser CLI configuration file.
//
// The file is YAML:
//
//	baseUrl: https://randomuser.me/api/1.4/
//	timeout: 10s
//	userAgent: my-tool/1.0
//	headers:
//	  X-Trace: "1"
//	strict: true
//	defaults:
//	  count: 5
//	  nationalities: [AU, GB]
//	  gender: [female]
//	  password: upper,lower,12-16
//	output:
//	  format: yaml
//	  noColor: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/randomuser"
)

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".randomuser.yaml"

// Config is the CLI configuration. Zero values mean "use the default".
type Config struct {
	BaseURL   string            `yaml:"baseUrl,omitempty"`
	Timeout   string            `yaml:"timeout,omitempty"`
	UserAgent string            `yaml:"userAgent,omitempty"`
	Headers   map[string]string `yaml:"headers,omitempty"`
	Strict    *bool             `yaml:"strict,omitempty"`
	Defaults  Defaults          `yaml:"defaults,omitempty"`
	Output    Output            `yaml:"output,omitempty"`
}

// Defaults are filters applied when the matching flag is not given.
type Defaults struct {
	Count         int      `yaml:"count,omitempty"`
	Nationalities []string `yaml:"nationalities,omitempty"`
	Gender        []string `yaml:"gender,omitempty"`
	Password      string   `yaml:"password,omitempty"`
	Seed          string   `yaml:"seed,omitempty"`
}

// Output controls rendering.
type Output struct {
	Format  string `yaml:"format,omitempty"`
	NoColor bool   `yaml:"noColor,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		BaseURL: randomuser.DefaultBaseURL,
		Timeout: "30s",
		Defaults: Defaults{
			Count: 1,
		},
		Output: Output{
			Format: "text",
		},
	}
}

// DefaultPath returns ~/.randomuser.yaml, or "" if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// LoadConfig reads and validates the file at path, layered over Default.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional loads path when it exists and returns Default otherwise.
// An empty path means DefaultPath.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return LoadConfig(path)
}

// ParseConfig decodes YAML over Default and validates the result. Unknown
// keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if errs := ValidateConfig(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}

	return cfg, nil
}

// TimeoutDuration returns the parsed timeout, or 0 when unset.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := ParseDurationString(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// StrictValidation reports whether payloads are schema validated.
func (c *Config) StrictValidation() bool {
	return c.Strict == nil || *c.Strict
}

// ParseDurationString parses "30s", "2m", a bare number of seconds ("30"),
// or spelled out units such as "1 minute". An empty string is zero.
func ParseDurationString(duration string) (time.Duration, error) {
	duration = strings.TrimSpace(duration)
	if duration == "" {
		return 0, nil
	}

	if d, err := time.ParseDuration(duration); err == nil {
		return d, nil
	}

	if d, err := time.ParseDuration(duration + "s"); err == nil {
		return d, nil
	}

	duration = strings.ToLower(strings.ReplaceAll(duration, " ", ""))

	replacements := []struct{ word, abbrev string }{
		{"seconds", "s"},
		{"second", "s"},
		{"minutes", "m"},
		{"minute", "m"},
		{"hours", "h"},
		{"hour", "h"},
	}
	for _, r := range replacements {
		duration = strings.ReplaceAll(duration, r.word, r.abbrev)
	}

	return time.ParseDuration(duration)
}
