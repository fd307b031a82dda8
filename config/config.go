// Package config loads zx16asm's optional TOML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the assembler's configurable, non-architectural knobs.
// None of it changes what a source file assembles to; it only changes
// default file extensions, listing cosmetics, and diagnostic severity.
type Config struct {
	Output struct {
		BinExtension string `toml:"bin_extension"`
		LstExtension string `toml:"lst_extension"`
	} `toml:"output"`

	Listing struct {
		CodeColumnWidth int `toml:"code_column_width"`
		AddressDigits   int `toml:"address_digits"`
	} `toml:"listing"`

	Diagnostics struct {
		WarningsAsErrors bool `toml:"warnings_as_errors"`
	} `toml:"diagnostics"`
}

// Default returns the configuration the assembler runs with when no
// config file is present, matching spec.md's zero-config CLI contract.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.BinExtension = ".bin"
	cfg.Output.LstExtension = ".lst"
	cfg.Listing.CodeColumnWidth = 12
	cfg.Listing.AddressDigits = 4
	cfg.Diagnostics.WarningsAsErrors = false
	return cfg
}

// Load reads and parses a TOML config file at path, starting from
// Default() so that a config file only needs to mention the fields it
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional per-user config file location,
// $XDG_CONFIG_HOME/zx16asm/config.toml (or ~/.config/zx16asm/config.toml).
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "zx16asm", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "zx16asm", "config.toml")
}

// LoadDefaultPath loads the config at DefaultPath() if it exists, or
// returns Default() unchanged if it does not.
func LoadDefaultPath() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
