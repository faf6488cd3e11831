package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/hillpath/config"
)

// ExitError carries the process exit code for usage failures.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// parseArgs resolves the run configuration from defaults, an optional
// config file and the flags that were actually set. The boolean result
// reports a clean exit after -help.
func parseArgs(args []string, output io.Writer) (config.Config, bool, error) {
	def := config.Default()
	flagSet := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
hillclimb - shortest climbs on a letter height map.

Usage:
  hillclimb [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Height map file. Overrides the config file; -input takes precedence.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Config file (.yaml, .yml, .hcl or .json).")
	inputFlag := flagSet.String("input", def.Input, "Height map file.")
	strictFlag := flagSet.Bool("strict", def.Strict, "Reject ragged rows, unknown symbols and repeated markers.")
	frontierFlag := flagSet.String("frontier", def.Frontier, "Search frontier: 'heap' or 'btree'.")
	reverseFlag := flagSet.Bool("reverse", def.Reverse, "Answer part two with one reverse walk from the summit.")
	pathFlag := flagSet.Bool("path", def.ShowPath, "Print a shortest route for part one.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log format: 'text' or 'json'.")
	metricsFlag := flagSet.String("metrics-file", def.MetricsFile, "Write Prometheus counters to this file.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, true, nil
		}
		return config.Config{}, false, usageError("%v", err)
	}
	if flagSet.NArg() > 1 {
		return config.Config{}, false, usageError("expected at most one input path, got %d", flagSet.NArg())
	}

	cfg := def
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return config.Config{}, false, usageError("%v", err)
		}
		cfg = loaded
	}
	if flagSet.NArg() == 1 {
		cfg.Input = flagSet.Arg(0)
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "strict":
			cfg.Strict = *strictFlag
		case "frontier":
			cfg.Frontier = *frontierFlag
		case "reverse":
			cfg.Reverse = *reverseFlag
		case "path":
			cfg.ShowPath = *pathFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "metrics-file":
			cfg.MetricsFile = *metricsFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, usageError("%v", err)
	}

	return cfg, false, nil
}
