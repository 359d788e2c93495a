// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -base-dir, -precision, -max-history, -no-autosave, -verbose, -version

package main

import "flag"

type cliArgs struct {
	configPath string
	baseDir    string
	precision  int
	maxHistory int
	noAutosave bool
	verbose    bool
	version    bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.configPath, "config", "", "Path to the config file (default ~/.abaco/config.yaml)")
	flag.StringVar(&args.baseDir, "base-dir", "", "Base directory for logs and history (default ~/.abaco)")
	flag.IntVar(&args.precision, "precision", 0, "Decimal places shown for results")
	flag.IntVar(&args.maxHistory, "max-history", 0, "Maximum number of history entries")
	flag.BoolVar(&args.noAutosave, "no-autosave", false, "Disable saving history after each calculation")
	flag.BoolVar(&args.verbose, "verbose", false, "Log debug output to stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
