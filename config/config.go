package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// InputMode selects how captured messages reach the consumer loop.
type InputMode string

const (
	// InputCallback delivers messages from the driver callback through the
	// process-wide queue. Recommended.
	InputCallback InputMode = "callback"
	// InputPolling buffers messages per port; the consumer drains them each
	// tick, bypassing the queue.
	InputPolling InputMode = "polling"
)

// EOXCategory selects which monitor row displays the End of Exclusive cell.
type EOXCategory string

const (
	// EOXSystemCommon is the default, matching the MIDI specification.
	EOXSystemCommon    EOXCategory = "system-common"
	EOXSystemExclusive EOXCategory = "system-exclusive"
)

// Blink duration bounds, in seconds.
const (
	MinBlinkDuration     = 0.0
	MaxBlinkDuration     = 0.5
	DefaultBlinkDuration = 0.25
)

// Config is the persisted application configuration.
type Config struct {
	// BlinkDuration is the monitor highlight persistence in seconds,
	// clamped to [MinBlinkDuration, MaxBlinkDuration].
	BlinkDuration float64 `json:"blinkDuration"`
	// ZeroVelocityNoteOnIsNoteOff follows the MIDI specification default.
	ZeroVelocityNoteOnIsNoteOff bool        `json:"zeroVelocityNoteOnIsNoteOff"`
	EOXCategory                 EOXCategory `json:"eoxCategory"`
	InputMode                   InputMode   `json:"inputMode"`
	// HistoryCapacity bounds the event journal; 0 means unbounded.
	HistoryCapacity int `json:"historyCapacity"`
	// LegacySharedClock uses a single shared delta clock instead of
	// per-source deltas.
	LegacySharedClock bool `json:"legacySharedClock,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BlinkDuration:               DefaultBlinkDuration,
		ZeroVelocityNoteOnIsNoteOff: true,
		EOXCategory:                 EOXSystemCommon,
		InputMode:                   InputCallback,
		HistoryCapacity:             1024,
	}
}

// Normalize clamps out-of-range values and fills missing enums with their
// defaults.
func (c *Config) Normalize() {
	if c.BlinkDuration < MinBlinkDuration {
		c.BlinkDuration = MinBlinkDuration
	}
	if c.BlinkDuration > MaxBlinkDuration {
		c.BlinkDuration = MaxBlinkDuration
	}
	if c.EOXCategory != EOXSystemCommon && c.EOXCategory != EOXSystemExclusive {
		c.EOXCategory = EOXSystemCommon
	}
	if c.InputMode != InputCallback && c.InputMode != InputPolling {
		c.InputMode = InputCallback
	}
	if c.HistoryCapacity < 0 {
		c.HistoryCapacity = 0
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "midiexplorer"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
