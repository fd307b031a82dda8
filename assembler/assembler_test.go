package assembler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shalan/zx16/config"
)

func writeSource(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestAssembleProducesBinaryAndListing(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.s", ".text\nadd x1, x2\naddi x3, 5\n")

	res, err := Assemble(src, Options{})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(res.Image) != 4 {
		t.Fatalf("image length = %d, want 4", len(res.Image))
	}
	if _, err := os.Stat(res.BinPath); err != nil {
		t.Errorf("binary file not written: %v", err)
	}
	if _, err := os.Stat(res.LstPath); err != nil {
		t.Errorf("listing file not written: %v", err)
	}
}

func TestAssembleIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	lower := writeSource(t, dir, "lower.s", ".text\nadd x1, x2\n")
	upper := writeSource(t, dir, "upper.s", ".text\nADD X1, X2\n")

	resLower, err := Assemble(lower, Options{})
	if err != nil {
		t.Fatalf("Assemble(lower): %v", err)
	}
	resUpper, err := Assemble(upper, Options{})
	if err != nil {
		t.Fatalf("Assemble(upper): %v", err)
	}
	if string(resLower.Image) != string(resUpper.Image) {
		t.Errorf("case-insensitive sources produced different images: %v vs %v", resLower.Image, resUpper.Image)
	}
}

func TestAssembleDuplicateLabelFails(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "dup.s", ".text\nstart: add x0, x0\nstart: add x0, x0\n")
	if _, err := Assemble(src, Options{}); err == nil {
		t.Fatal("expected a duplicate-label error")
	}
}

func TestAssembleReportsUnusedLabelWarning(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "unused.s", ".text\nloop: add x0, x0\n")
	res, err := Assemble(src, Options{})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Message == "" {
		t.Fatalf("Warnings = %v, want one unused-label warning", res.Warnings)
	}
}

func TestAssembleWarningsAsErrorsPromotesToFailure(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "unused.s", ".text\nloop: add x0, x0\n")
	cfg := config.Default()
	cfg.Diagnostics.WarningsAsErrors = true
	if _, err := Assemble(src, Options{Config: cfg}); err == nil {
		t.Fatal("expected the unused-label warning to be promoted to a fatal error")
	}
}

func TestAssembleRespectsExplicitBinPath(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.s", ".text\nadd x1, x2\n")
	binPath := filepath.Join(dir, "custom.out")

	res, err := Assemble(src, Options{BinPath: binPath})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if res.BinPath != binPath {
		t.Errorf("BinPath = %q, want %q", res.BinPath, binPath)
	}
	if _, err := os.Stat(binPath); err != nil {
		t.Errorf("binary not written to explicit path: %v", err)
	}
}

func TestAssembleMissingSourceFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Assemble(filepath.Join(dir, "nosuch.s"), Options{}); err == nil {
		t.Fatal("expected an IO error for a missing source file")
	}
}
