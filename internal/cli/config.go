package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/connectoviz/connectoviz/pkg/palette"
	"github.com/connectoviz/connectoviz/pkg/pipeline"
)

// Config holds user defaults loaded from the TOML config file. Command-line
// flags always win over config values.
type Config struct {
	// Palette is the default palette name for group coloring.
	Palette string `toml:"palette"`

	// Format is the default output format.
	Format string `toml:"format"`

	// Size is the default square surface size in pixels.
	Size int `toml:"size"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Palette: palette.Default,
		Format:  pipeline.DefaultFormat,
		Size:    pipeline.DefaultSize,
	}
}

// configPath returns the per-user config file location,
// e.g. ~/.config/connectoviz/config.toml on Linux.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "connectoviz", "config.toml"), nil
}

// loadConfig reads the user config file, returning built-in defaults when
// the file does not exist. A present but malformed file is an error; silent
// fallback would hide typos.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), err
	}

	// Unset fields keep their defaults.
	if cfg.Palette == "" {
		cfg.Palette = palette.Default
	}
	if cfg.Format == "" {
		cfg.Format = pipeline.DefaultFormat
	}
	if cfg.Size <= 0 {
		cfg.Size = pipeline.DefaultSize
	}
	return cfg, nil
}
