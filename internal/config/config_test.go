package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keynote.yaml")
	data := []byte(`octave: 3
velocity: 64
channel: 9
keymap:
  - {key: z, pitch: Bb}
  - {key: x, pitch: C, shift: 1}
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Octave)
	assert.Equal(t, 64, cfg.Velocity)
	assert.Equal(t, 9, cfg.Channel)
	assert.Equal(t, 0, cfg.Port)
	assert.Equal(t, []Binding{
		{Key: "z", Pitch: "Bb"},
		{Key: "x", Pitch: "C", Shift: 1},
	}, cfg.Keymap)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte("port: 2\n"), cfg))
	assert.Equal(t, 2, cfg.Port)
	assert.Equal(t, 5, cfg.Octave)
	assert.Equal(t, 90, cfg.Velocity)
	assert.Equal(t, DefaultKeymap, cfg.Keymap)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"octave low", "octave: -1"},
		{"octave high", "octave: 11"},
		{"velocity zero", "velocity: 0"},
		{"velocity high", "velocity: 128"},
		{"channel", "channel: 16"},
		{"port", "port: -1"},
		{"bad pitch", "keymap:\n  - {key: a, pitch: H}"},
		{"empty key", "keymap:\n  - {key: '', pitch: C}"},
		{"duplicate key", "keymap:\n  - {key: a, pitch: C}\n  - {key: a, pitch: D}"},
		{"duplicate key by case", "keymap:\n  - {key: a, pitch: C}\n  - {key: A, pitch: D}"},
		{"blank key", "keymap:\n  - {key: ' ', pitch: C}"},
		{"bad yaml", "octave: [1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Parse([]byte(tt.yaml), Default()))
		})
	}
}
