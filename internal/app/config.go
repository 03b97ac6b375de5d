package app

import (
	"flag"
	"fmt"
	"os"

	"minesweeper/internal/core"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Preset      string
	Seed        int64
	TPS         int
	PresetsFile string
	LogLevel    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "normal", TPS: 60, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "difficulty preset to start with")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for mine placement (0 = time based)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.PresetsFile, "presets", c.PresetsFile, "YAML file with extra difficulty presets")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Logger builds a logrus logger at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log := logrus.New()
	log.SetLevel(level)
	return log, nil
}

// Resolve loads the optional presets file and returns the starting preset.
func (c *Config) Resolve() (core.Preset, error) {
	if c.PresetsFile != "" {
		if _, err := LoadPresets(c.PresetsFile); err != nil {
			return core.Preset{}, err
		}
	}
	p, ok := core.LookupPreset(c.Preset)
	if !ok {
		return core.Preset{}, fmt.Errorf("%w: unknown preset %q", core.ErrInvalidPreset, c.Preset)
	}
	return p, nil
}

type presetsFile struct {
	Presets []core.Preset `yaml:"presets"`
}

// LoadPresets reads a YAML presets file, validates every entry and registers
// them. Nothing is registered when any entry is invalid.
func LoadPresets(path string) ([]core.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	for i, p := range file.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %d in %s: %w", i, path, err)
		}
	}
	for _, p := range file.Presets {
		if err := core.RegisterPreset(p); err != nil {
			return nil, err
		}
	}
	return file.Presets, nil
}
