// Package config loads the command-line tool settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "f77sub"

// Output formats accepted by Output.Format.
const (
	FormatTree   = "tree"
	FormatSexp   = "sexp"
	FormatDot    = "dot"
	FormatTokens = "tokens"
)

var Formats = []string{FormatTree, FormatSexp, FormatDot, FormatTokens}

type Config struct {
	Output Output `toml:"output" yaml:"output"`
	REPL   REPL   `toml:"repl" yaml:"repl"`

	// Path is the file the configuration was loaded from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type Output struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

type REPL struct {
	Prompt  string `toml:"prompt" yaml:"prompt"`
	History string `toml:"history" yaml:"history"`
}

// HistoryPath is where the REPL keeps its history unless configured otherwise.
var HistoryPath = filepath.Join(xdg.DataHome, appName, "."+appName+"_history")

func Default() *Config {
	return &Config{
		Output: Output{Format: FormatTree, Color: true},
		REPL:   REPL{Prompt: "> ", History: HistoryPath},
	}
}

// Load reads path on top of the defaults. The format is chosen by extension:
// .yaml and .yml are YAML, everything else is TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Path = path
	if cfg.REPL.History == "" {
		cfg.REPL.History = HistoryPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Discover loads the first of f77sub/config.toml, config.yaml or config.yml
// found in the XDG config directories, or returns the defaults.
func Discover() (*Config, error) {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path, err := xdg.SearchConfigFile(filepath.Join(appName, name))
		if err != nil {
			continue
		}
		return Load(path)
	}

	return Default(), nil
}

var ErrUnknownFormat = errors.New("unknown output format")

func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, c.Output.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// EnsureHistoryDir creates the directory holding the REPL history file.
func (c *Config) EnsureHistoryDir() error {
	return os.MkdirAll(filepath.Dir(c.REPL.History), os.ModePerm)
}
