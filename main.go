package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shalan/zx16/assembler"
	"github.com/shalan/zx16/browse"
	"github.com/shalan/zx16/config"
)

func main() {
	var (
		verbose     = flag.Bool("v", false, "print the symbol table and per-section byte usage")
		debug       = flag.Bool("d", false, "print pass-boundary debug messages")
		interactive = flag.Bool("i", false, "open the interactive listing/symbol browser after assembling")
		outPath     = flag.String("o", "", "binary output path (default: source path with .bin)")
		configPath  = flag.String("config", "", "path to a zx16asm.toml config file (default: per-user config)")
	)
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	sourcePath := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zx16asm: %s\n", err)
		os.Exit(1)
	}

	res, err := assembler.Assemble(sourcePath, assembler.Options{
		Verbose: *verbose,
		Debug:   *debug,
		BinPath: *outPath,
		Config:  cfg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "zx16asm: %s\n", err)
		os.Exit(1)
	}

	if *verbose {
		assembler.DumpVerbose(res)
	}

	if *interactive {
		b := browse.New(res.Program, res.BinPath, res.LstPath, len(res.Image))
		if err := b.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "zx16asm: browser: %s\n", err)
			os.Exit(1)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefaultPath()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-v] [-d] [-i] [-o <binary_file>] [-config <path>] <sourcefile>\n", os.Args[0])
	flag.PrintDefaults()
}
