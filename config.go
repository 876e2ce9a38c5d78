package riffline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// minSequence is the shortest accumulation that can still hold the
// bytes following the prefix of an arrow sequence.
const minSequence = 2

// Config holds the settings read from riffline.toml.
type Config struct {
	Prompt          string `toml:"prompt"`
	LongestSequence int    `toml:"longest_sequence"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Prompt:          DefaultPrompt,
		LongestSequence: DefaultLongestSequence,
	}
}

// Options returns the Session options for c.
func (c Config) Options() []Option {
	return []Option{
		WithPrompt(c.Prompt),
		WithLongestSequence(c.LongestSequence),
	}
}

func (c Config) validate() error {
	if c.LongestSequence < minSequence {
		return fmt.Errorf("riffline: longest_sequence must be at least %d, got %d", minSequence, c.LongestSequence)
	}
	return nil
}

// ConfigPath returns the default config file path.
// Respects XDG_CONFIG_HOME if set, otherwise uses ~/.config/riffline.toml
func ConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "riffline.toml")
}

// LoadConfig loads settings from the default config file.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(ConfigPath())
}

// LoadConfigFrom loads settings from path over the defaults.
// A missing file yields the defaults.
func LoadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Missing config is fine
		}
		return cfg, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("riffline: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}
