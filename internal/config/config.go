// Package config loads psymaze.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "PSYMAZE_CONFIG"

type Config struct {
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Level       int    `toml:"level"`        // 0 = ask, defaulting to the saved profile level
	Seed        int64  `toml:"seed"`         // 0 = seed from the clock
	MorphAmount int    `toml:"morph_amount"` // toggle attempts per mood change, 0 = none
	NPCCount    int    `toml:"npc_count"`    // 0 = none
	DataDir     string `toml:"data_dir"`     // empty = XDG data dir
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console or json
}

// Load reads the config at path over the defaults. The file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults(), nil
	}
	return cfg, err
}

// Resolve loads the config the way the game binary does: an explicit path
// must exist, then $PSYMAZE_CONFIG, then the per-user default which may be
// absent.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if env := os.Getenv(EnvPath); env != "" {
		return Load(env)
	}
	p, err := DefaultPath()
	if err != nil {
		return defaults(), nil
	}
	return LoadOptional(p)
}

// DefaultPath is $XDG_CONFIG_HOME/psymaze/psymaze.toml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "psymaze", "psymaze.toml"), nil
}

// Default returns a fresh copy of the built-in settings.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			MorphAmount: 3,
			NPCCount:    3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	if c.Game.MorphAmount < 0 {
		return fmt.Errorf("game.morph_amount must be >= 0, got %d", c.Game.MorphAmount)
	}
	if c.Game.NPCCount < 0 {
		return fmt.Errorf("game.npc_count must be >= 0, got %d", c.Game.NPCCount)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
