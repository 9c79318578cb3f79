// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Game     GameConfig     `toml:"game"`
	Log      LogConfig      `toml:"log"`
	Store    StoreConfig    `toml:"store"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	TextFile *string  `toml:"text-file"`
	ShowTips *bool    `toml:"show-tips"`
	Words    *int     `toml:"words"`
	CapsPct  *float64 `toml:"caps"`
	PunctPct *float64 `toml:"punct"`
	PunctSet *string  `toml:"punct-set"`
}

// GameConfig maps falling-words settings.
type GameConfig struct {
	WordsFile *string `toml:"words-file"`
	Duration  *int    `toml:"duration"`
	Lives     *int    `toml:"lives"`
}

// LogConfig maps logger settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// StoreConfig maps the database location.
type StoreConfig struct {
	Path *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return FileConfig{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// Validate checks the values that are set.
func (c FileConfig) Validate() error {
	if v := c.Game.Duration; v != nil && *v <= 0 {
		return fmt.Errorf("game.duration must be > 0")
	}
	if v := c.Game.Lives; v != nil && *v <= 0 {
		return fmt.Errorf("game.lives must be > 0")
	}
	if v := c.Practice.Words; v != nil && *v <= 0 {
		return fmt.Errorf("practice.words must be > 0")
	}
	if v := c.Practice.CapsPct; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("practice.caps must be between 0 and 1")
	}
	if v := c.Practice.PunctPct; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("practice.punct must be between 0 and 1")
	}
	if v := c.Log.Level; v != nil {
		switch strings.ToLower(*v) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("log.level must be one of debug, info, warn, error")
		}
	}
	return nil
}
