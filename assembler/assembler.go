// Package assembler wires pass 1 (parser), pass 2 (encoder), and the two
// emitters together into the single two-pass translation pipeline, the
// way main.go inlines a VM/debugger/symbol-table pipeline in the teacher
// project. It owns no architectural logic of its own.
package assembler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shalan/zx16/config"
	"github.com/shalan/zx16/emit"
	"github.com/shalan/zx16/encoder"
	"github.com/shalan/zx16/parser"
)

// Options configures a single assembly run.
type Options struct {
	Verbose bool
	Debug   bool
	BinPath string // overrides the derived binary output path if non-empty
	Config  *config.Config
}

// Result is everything a successful assembly produced, returned so a
// caller (the CLI, or the interactive browser) can act on it without
// re-reading files from disk.
type Result struct {
	Program  *parser.Program
	Image    []byte
	BinPath  string
	LstPath  string
	Warnings []*parser.Warning
}

// Assemble runs the full pipeline against the source file at sourcePath
// and writes the binary and listing files. No partial output is written
// if either pass fails.
func Assemble(sourcePath string, opts Options) (*Result, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}

	debugf(opts, "Starting Pass 1")
	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, parser.NewError(parser.Position{Filename: sourcePath}, parser.ErrIO,
			"reading source: %s", err)
	}

	prog, err := parser.Parse(sourcePath, string(src))
	if err != nil {
		return nil, err
	}
	debugf(opts, "Pass 1 complete, %d lines processed", len(prog.Lines))

	debugf(opts, "Starting Pass 2")
	enc := encoder.New(prog)
	if err := enc.Encode(); err != nil {
		return nil, err
	}
	debugf(opts, "Pass 2 complete")

	warnings := unusedLabelWarnings(prog, opts.Config.Diagnostics.WarningsAsErrors)
	if opts.Config.Diagnostics.WarningsAsErrors {
		for _, w := range warnings {
			return nil, parser.NewError(w.Pos, parser.ErrUnusedLabel, "%s", w.Message)
		}
	}

	image := emit.BuildImage(prog)

	binPath := opts.BinPath
	if binPath == "" {
		binPath = derivePath(sourcePath, opts.Config.Output.BinExtension)
	}
	lstPath := derivePath(sourcePath, opts.Config.Output.LstExtension)

	if err := os.WriteFile(binPath, image, 0o644); err != nil {
		return nil, parser.NewError(parser.Position{Filename: binPath}, parser.ErrIO,
			"writing binary: %s", err)
	}
	lstFile, err := os.Create(lstPath)
	if err != nil {
		return nil, parser.NewError(parser.Position{Filename: lstPath}, parser.ErrIO,
			"writing listing: %s", err)
	}
	defer lstFile.Close()
	listingOpts := emit.ListingOptions{
		CodeColumnWidth: opts.Config.Listing.CodeColumnWidth,
		AddressDigits:   opts.Config.Listing.AddressDigits,
	}
	if err := emit.WriteListing(lstFile, prog, listingOpts); err != nil {
		return nil, parser.NewError(parser.Position{Filename: lstPath}, parser.ErrIO,
			"writing listing: %s", err)
	}

	fmt.Printf("Binary file generated: %s\n", binPath)
	fmt.Printf("Listing file generated: %s\n", lstPath)

	return &Result{
		Program:  prog,
		Image:    image,
		BinPath:  binPath,
		LstPath:  lstPath,
		Warnings: warnings,
	}, nil
}

// unusedLabelWarnings reports labels that were defined but never used by
// a branch or jump. quiet suppresses the stderr print when the caller
// intends to promote these to a fatal error instead.
func unusedLabelWarnings(prog *parser.Program, quiet bool) []*parser.Warning {
	var warnings []*parser.Warning
	for _, sym := range prog.Symbols.Unused() {
		w := &parser.Warning{
			Pos:     parser.Position{Filename: prog.Filename, Line: sym.DefLine},
			Message: fmt.Sprintf("label %q defined but never referenced", sym.Name),
		}
		warnings = append(warnings, w)
		if !quiet {
			fmt.Fprintln(os.Stderr, w.String())
		}
	}
	return warnings
}

// derivePath replaces sourcePath's final extension with ext, or appends
// ext if sourcePath has none.
func derivePath(sourcePath, ext string) string {
	dir, file := filepath.Split(sourcePath)
	if dot := strings.LastIndex(file, "."); dot >= 0 {
		file = file[:dot]
	}
	return filepath.Join(dir, file+ext)
}

func debugf(opts Options, format string, args ...any) {
	if opts.Debug {
		fmt.Printf("Debug: "+format+"\n", args...)
	}
}

// DumpVerbose prints the symbol table and per-section byte usage, as -v
// requests.
func DumpVerbose(res *Result) {
	fmt.Println("\n--- Symbol Table ---")
	for _, sym := range res.Program.Symbols.All() {
		fmt.Printf("%-10s  0x%04X  %s\n", sym.Name, sym.Address, sym.Section)
	}

	var textBytes, dataBytes int
	for _, line := range res.Program.Lines {
		end := int(line.Address) + line.CodeCount*line.ElementSize
		switch line.Section {
		case parser.SectionText:
			if end > textBytes {
				textBytes = end
			}
		case parser.SectionData:
			if end > dataBytes {
				dataBytes = end
			}
		}
	}
	fmt.Println("\nMemory usage:")
	fmt.Printf("  Text section: %d bytes\n", textBytes)
	fmt.Printf("  Data section: %d bytes\n", dataBytes)
}
