// Package config loads the keyboard player configuration from YAML.
//
// Example:
//
//	octave: 5
//	velocity: 90
//	port: 0
//	channel: 0
//	font: /usr/share/fonts/TTF/DejaVuSans.ttf
//	keymap:
//	  - {key: a, pitch: C}
//	  - {key: k, pitch: C, shift: 1}
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/minikomi/keynote/internal/note"
)

// Binding maps a keyboard key to a pitch, Shift octaves above the current one.
type Binding struct {
	Key   string `yaml:"key"`
	Pitch string `yaml:"pitch"`
	Shift int    `yaml:"shift,omitempty"`
}

type Config struct {
	Octave   int       `yaml:"octave"`
	Velocity int       `yaml:"velocity"`
	Port     int       `yaml:"port"`
	Channel  int       `yaml:"channel"`
	Font     string    `yaml:"font,omitempty"`
	Keymap   []Binding `yaml:"keymap,omitempty"`
}

// DefaultKeymap plays the white keys on the home row and the sharps on the
// row above, continuing into the next octave.
var DefaultKeymap = []Binding{
	{Key: "a", Pitch: "C"},
	{Key: "w", Pitch: "C#"},
	{Key: "s", Pitch: "D"},
	{Key: "e", Pitch: "D#"},
	{Key: "d", Pitch: "E"},
	{Key: "f", Pitch: "F"},
	{Key: "t", Pitch: "F#"},
	{Key: "g", Pitch: "G"},
	{Key: "y", Pitch: "G#"},
	{Key: "h", Pitch: "A"},
	{Key: "u", Pitch: "A#"},
	{Key: "j", Pitch: "B"},
	// high octave
	{Key: "k", Pitch: "C", Shift: 1},
	{Key: "o", Pitch: "C#", Shift: 1},
	{Key: "l", Pitch: "D", Shift: 1},
}

func Default() *Config {
	return &Config{
		Octave:   5,
		Velocity: 90,
		Keymap:   append([]Binding(nil), DefaultKeymap...),
	}
}

// Load reads the config at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	cfg.Keymap = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(cfg.Keymap) == 0 {
		cfg.Keymap = append([]Binding(nil), DefaultKeymap...)
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if o := note.OctaveNumber(c.Octave); o < note.MinOctave || o > note.MaxOctave {
		return fmt.Errorf("octave %d out of range [%d, %d]", c.Octave, note.MinOctave, note.MaxOctave)
	}
	if c.Velocity < 1 || c.Velocity > 127 {
		return fmt.Errorf("velocity %d out of range [1, 127]", c.Velocity)
	}
	if c.Channel < 0 || c.Channel > 15 {
		return fmt.Errorf("channel %d out of range [0, 15]", c.Channel)
	}
	if c.Port < 0 {
		return fmt.Errorf("port %d is negative", c.Port)
	}
	seen := make(map[string]bool, len(c.Keymap))
	for i, b := range c.Keymap {
		// key names are case-insensitive
		k := strings.ToLower(strings.TrimSpace(b.Key))
		if k == "" {
			return fmt.Errorf("keymap[%d]: empty key", i)
		}
		if seen[k] {
			return fmt.Errorf("keymap[%d]: duplicate key %q", i, b.Key)
		}
		seen[k] = true
		if _, err := note.ParsePitch(b.Pitch); err != nil {
			return fmt.Errorf("keymap[%d]: %w", i, err)
		}
	}
	return nil
}
