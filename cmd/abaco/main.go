// ABOUTME: CLI entry point for abaco
// ABOUTME: Parses flags, loads config, builds the logger and store, runs the REPL

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dstefano/abaco/internal/calc"
	"github.com/dstefano/abaco/internal/config"
	"github.com/dstefano/abaco/internal/histfile"
	"github.com/dstefano/abaco/internal/log"
	"github.com/dstefano/abaco/internal/repl"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("abaco %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and starts the REPL.
func run(args cliArgs) error {
	configPath := args.configPath
	if configPath == "" {
		configPath = config.ConfigFile()
	}

	cfg, err := config.Load(configPath, buildCLIOverrides(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := log.Setup(cfg.LogFile(), args.verbose)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	store := histfile.New(cfg.HistoryFile())
	calculator := calc.New(cfg, logger, store)

	// Start from whatever history the last session left behind. A missing
	// file is an empty history; anything else is worth a warning but not a
	// refusal to start.
	if err := calculator.LoadHistory(); err != nil {
		logger.Warn("could not load previous history", "error", err)
	}

	calculator.AddObserver(calc.NewLoggingObserver(logger))
	calculator.AddObserver(calc.NewAutoSaveObserver(calculator))

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	loop := repl.New(calculator, os.Stdin, os.Stdout, styled)
	return loop.Run()
}

// buildCLIOverrides maps CLI flags to a Settings struct for config.Load.
func buildCLIOverrides(args cliArgs) *config.Settings {
	s := &config.Settings{}
	if args.baseDir != "" {
		s.BaseDir = args.baseDir
	}
	if args.precision != 0 {
		s.Precision = args.precision
	}
	if args.maxHistory != 0 {
		s.MaxHistorySize = args.maxHistory
	}
	if args.noAutosave {
		f := false
		s.AutoSave = &f
	}
	return s
}
