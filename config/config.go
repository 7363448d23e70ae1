// Package config loads the generator's TOML settings file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the generator's settings. Load seeds it with the values
// from defaults, which are what a caller gets when no file is found.
type Config struct {
	ConflictPolicy string `toml:"conflict_policy"` // "shift-over-reduce" (default) or "strict"
	OutputDir      string `toml:"output_dir"`
	PackageName    string `toml:"package_name"`
	HistoryFile    string `toml:"history_file"`
}

func defaults() *Config {
	return &Config{
		ConflictPolicy: "shift-over-reduce",
		OutputDir:      ".",
		PackageName:    "main",
		HistoryFile:    ".lrgen_history",
	}
}

// Load reads path as TOML into a Config seeded with defaults. A missing
// file is not an error; Load returns the defaults instead.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
