// Command hillclimb prints the fewest steps from the start marker to the
// summit of a height map, and from the best lowest square to the summit.
//
// Usage:
//
//	hillclimb [options] [INPUT_PATH]
//
// Settings come from built-in defaults, then an optional -config file
// (.yaml, .yml, .hcl or .json), then explicit flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/hillpath/hillclimb"
	"github.com/katalvlaran/hillpath/metrics"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the whole program so tests can drive it with plain writers.
func run(stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	logger.Debug("configuration resolved", "input", cfg.Input, "frontier", cfg.Frontier,
		"reverse", cfg.Reverse, "strict", cfg.Strict)

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	opts := []hillclimb.Option{
		hillclimb.WithLogger(logger),
		hillclimb.WithFrontier(cfg.FrontierKind()),
	}
	if cfg.Strict {
		opts = append(opts, hillclimb.WithStrict())
	}
	if cfg.Reverse {
		opts = append(opts, hillclimb.WithReverse())
	}
	if cfg.ShowPath {
		opts = append(opts, hillclimb.WithRoute())
	}
	var rec *metrics.Recorder
	if cfg.MetricsFile != "" {
		rec = metrics.NewRecorder()
		opts = append(opts, hillclimb.WithMetrics(rec))
	}

	res, err := hillclimb.Solve(string(data), opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Part 1: %d\n", res.FromStart)
	fmt.Fprintf(stdout, "Part 2: %d\n", res.FromLowest)
	if cfg.ShowPath {
		steps := make([]string, len(res.Route))
		for i, n := range res.Route {
			steps[i] = n.String()
		}
		fmt.Fprintf(stdout, "Route: %s\n", strings.Join(steps, " -> "))
	}

	if rec != nil {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", cfg.MetricsFile)
	}
	logger.Info("solved", "input", cfg.Input, "part1", res.FromStart, "part2", res.FromLowest)

	return nil
}

// newLogger builds a slog.Logger writing to w. Unknown levels fall back to
// info and unknown formats to text.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}
