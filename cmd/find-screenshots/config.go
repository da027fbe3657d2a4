package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const defaultLogLevel = "info"

// fileConfig holds the optional TOML configuration. Only driver-level knobs
// live here; the classification rules are fixed and never configurable.
type fileConfig struct {
	Workers        int    `toml:"workers"`
	LogLevel       string `toml:"log_level"`
	SkipDuplicates bool   `toml:"skip_duplicates"`
}

// loadConfig reads the TOML file at path. A missing file yields defaults;
// a malformed one is an error. With an empty path only defaults apply.
func loadConfig(path string) (fileConfig, error) {
	cfg := fileConfig{LogLevel: defaultLogLevel}

	if path == "" {
		return cfg, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(contents, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}
