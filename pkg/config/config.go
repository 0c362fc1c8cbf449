// Package config contains the engine's TOML-based startup configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/herohde/gorgon/pkg/engine"
)

// Config holds the default engine options, read once at process startup. UCI
// "setoption" commands may subsequently override any of these for the running process.
type Config struct {
	// Hash is the transposition table size in MB. Zero disables the table.
	Hash uint `toml:"hash"`
	// Depth is the default search depth limit. Zero means no limit.
	Depth uint `toml:"depth"`
	// Noise is the evaluation randomness in millipawns. Zero is deterministic.
	Noise uint `toml:"noise"`
	// OpeningBook is the path to a Polyglot .bin opening book. Empty disables the feature.
	OpeningBook string `toml:"opening_book"`
	// Tablebase is the directory of Gaviota endgame tablebase files. Empty disables it.
	Tablebase string `toml:"tablebase"`
}

// Default returns the engine's built-in defaults, used if no config file is present.
func Default() Config {
	return Config{Hash: 64, Depth: 0, Noise: 10}
}

// Load reads a TOML config file at path, starting from Default and overriding only the
// keys present in the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // missing config file: fall back to defaults, not an error
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %v: %w", path, err)
	}
	return cfg, nil
}

// EngineOptions projects the parts of Config that map directly onto engine.Options.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{Depth: c.Depth, Hash: c.Hash, Noise: c.Noise}
}
