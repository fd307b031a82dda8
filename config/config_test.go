package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.BinExtension != ".bin" {
		t.Errorf("Expected BinExtension=.bin, got %s", cfg.Output.BinExtension)
	}
	if cfg.Output.LstExtension != ".lst" {
		t.Errorf("Expected LstExtension=.lst, got %s", cfg.Output.LstExtension)
	}
	if cfg.Listing.CodeColumnWidth != 12 {
		t.Errorf("Expected CodeColumnWidth=12, got %d", cfg.Listing.CodeColumnWidth)
	}
	if cfg.Listing.AddressDigits != 4 {
		t.Errorf("Expected AddressDigits=4, got %d", cfg.Listing.AddressDigits)
	}
	if cfg.Diagnostics.WarningsAsErrors {
		t.Error("Expected WarningsAsErrors=false")
	}
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	if path == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}
}

func TestLoadOverridesOnlyMentionedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zx16asm.toml")
	contents := "[diagnostics]\nwarnings_as_errors = true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Diagnostics.WarningsAsErrors {
		t.Error("Expected WarningsAsErrors=true after override")
	}
	if cfg.Output.BinExtension != ".bin" {
		t.Errorf("Expected unmentioned field to keep its default, got BinExtension=%s", cfg.Output.BinExtension)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nosuch.toml")); err == nil {
		t.Fatal("expected an error loading a nonexistent config file")
	}
}

func TestLoadDefaultPathFallsBackWhenAbsent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadDefaultPath()
	if err != nil {
		t.Fatalf("LoadDefaultPath: %v", err)
	}
	if cfg.Output.BinExtension != ".bin" {
		t.Errorf("Expected default config when no file exists, got BinExtension=%s", cfg.Output.BinExtension)
	}
}
