// Package config provides configuration loading for the voltflip CLI.
//
// Precedence, highest to lowest: VOLTFLIP_* environment variables, the
// YAML config file, built-in defaults. The library packages take their
// parameters as arguments and never read configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// maxFileSize bounds the config file read; anything larger is rejected.
const maxFileSize = 1 << 20

// envPrefix namespaces the environment overrides: VOLTFLIP_TOP_SAFEST,
// VOLTFLIP_MAX_BOARDS, VOLTFLIP_NO_COLOR, VOLTFLIP_DEBUG.
const envPrefix = "VOLTFLIP_"

var (
	// ErrTopSafestRange indicates top_safest outside [1, 25].
	ErrTopSafestRange = errors.New("config: top_safest out of range")
	// ErrMaxBoardsNegative indicates a negative max_boards.
	ErrMaxBoardsNegative = errors.New("config: max_boards must not be negative")
	// ErrFileTooLarge indicates a config file above the size bound.
	ErrFileTooLarge = errors.New("config: file too large")
)

// Config holds the CLI-level knobs. Zero values mean "unset"; Load fills
// them from defaults after file and environment merging.
type Config struct {
	// TopSafest is how many ranked cells the assistant lists per turn.
	TopSafest int `koanf:"top_safest"`

	// MaxBoards caps the enumeration; 0 means unlimited.
	MaxBoards int `koanf:"max_boards"`

	// NoColor disables the styled renderer.
	NoColor bool `koanf:"no_color"`

	// Debug enables debug-level logging of each turn's solver work.
	Debug bool `koanf:"debug"`
}

// Default returns the built-in configuration: a five-entry safest list,
// unlimited enumeration, colored output, quiet logging.
func Default() Config {
	return Config{
		TopSafest: 5,
		MaxBoards: 0,
		NoColor:   false,
		Debug:     false,
	}
}

// Load reads the configuration at path, then applies environment
// overrides and defaults. An empty path means the default location,
// ~/.config/voltflip/config.yaml; a missing file is not an error, the
// defaults simply stand.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("config: resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "voltflip", "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		content, err := readBounded(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if c.TopSafest < 1 || c.TopSafest > 25 {
		return fmt.Errorf("top_safest %d: %w", c.TopSafest, ErrTopSafestRange)
	}
	if c.MaxBoards < 0 {
		return fmt.Errorf("max_boards %d: %w", c.MaxBoards, ErrMaxBoardsNegative)
	}

	return nil
}

// readBounded reads the file, rejecting anything above maxFileSize.
func readBounded(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config: %s is %d bytes: %w", path, info.Size(), ErrFileTooLarge)
	}

	content, err := io.ReadAll(io.LimitReader(f, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return content, nil
}
