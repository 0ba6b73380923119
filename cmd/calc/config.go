package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config holds the settings which may come from a config file. Flags given
// on the command line override them.
type config struct {
	Format        string `toml:"format" yaml:"format"`
	Echo          bool   `toml:"echo" yaml:"echo"`
	Strict        bool   `toml:"strict" yaml:"strict"`
	RightAssocPow bool   `toml:"right_assoc_pow" yaml:"right_assoc_pow"`
	Jobs          int    `toml:"jobs" yaml:"jobs"`
	Color         string `toml:"color" yaml:"color"`
}

func defaultConfig() config {
	return config{
		Format: "%g",
		Jobs:   1,
		Color:  "auto",
	}
}

// loadConfig loads a config file, choosing the format by extension. Settings
// missing from the file keep their defaults.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config file: %w", err)
	}
	cfg := defaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return config{}, fmt.Errorf("parse toml: %w", err)
		}
		if u := md.Undecoded(); len(u) > 0 {
			return config{}, fmt.Errorf("unknown config keys: %v", u)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return config{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return config{}, fmt.Errorf("unsupported config file extension: %q", ext)
	}
	if err := cfg.validate(); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// override replaces settings with the flags given on the command line.
func (c *config) override(cmd *cobra.Command, o *options) {
	f := cmd.Flags()
	if f.Changed("fmt") {
		c.Format = o.format
	}
	if f.Changed("echo") {
		c.Echo = o.echo
	}
	if f.Changed("strict") {
		c.Strict = o.strict
	}
	if f.Changed("right-assoc-pow") {
		c.RightAssocPow = o.rightpow
	}
	if f.Changed("jobs") {
		c.Jobs = o.jobs
	}
	if f.Changed("color") {
		c.Color = o.color
	}
}

func (c *config) validate() error {
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on, or off, not %q", c.Color)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs (%d) must be positive", c.Jobs)
	}
	if c.Format == "" {
		return errors.New("format must not be empty")
	}
	return nil
}
