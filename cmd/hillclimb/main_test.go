package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillpath/hillclimb"
)

const reference = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// writeFile stores body in dir under name and returns the path.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// runCLI executes run and returns its stdout, stderr and error.
func runCLI(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, args)

	return stdout.String(), stderr.String(), err
}

// ------------------------------------------------------------------------
// 1. Happy paths
// ------------------------------------------------------------------------

func TestRun_Positional(t *testing.T) {
	input := writeFile(t, t.TempDir(), "day12.txt", reference)

	for _, extra := range [][]string{
		nil,
		{"-reverse"},
		{"-frontier", "btree"},
		{"-strict", "-frontier=BTREE", "-reverse"},
	} {
		out, _, err := runCLI(append(extra, input)...)
		require.NoError(t, err, "%v", extra)
		assert.Equal(t, "Part 1: 31\nPart 2: 29\n", out, "%v", extra)
	}
}

func TestRun_InputFlag(t *testing.T) {
	input := writeFile(t, t.TempDir(), "map.txt", reference)
	out, _, err := runCLI("-input", input)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 31\nPart 2: 29\n", out)
}

func TestRun_Path(t *testing.T) {
	input := writeFile(t, t.TempDir(), "snake.txt", "Sbcdefghijklm\nEyxwvutsrqpon\n")
	out, _, err := runCLI("-path", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Part 1: 25\n")
	assert.Contains(t, out, "Route: S(0,0) -> b(0,1) -> ")
	assert.Contains(t, out, " -> m(0,12) -> n(1,12) -> ")
	assert.Contains(t, out, " -> y(1,1) -> E(1,0)\n")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "map.txt", reference)
	cfg := writeFile(t, dir, "run.yaml", "input: "+input+"\nfrontier: btree\nlog_level: debug\nlog_format: json\n")

	out, logs, err := runCLI("-config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 31\nPart 2: 29\n", out)
	assert.Contains(t, logs, `"msg":"part one"`)
	assert.Contains(t, logs, `"frontier":"btree"`)

	// Flags beat the file.
	_, logs, err = runCLI("-config", cfg, "-log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestRun_HCLConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "map.txt", reference)
	cfg := writeFile(t, dir, "run.hcl", "input   = \""+filepath.ToSlash(input)+"\"\nreverse = true\n")

	out, logs, err := runCLI("-config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 31\nPart 2: 29\n", out)
	assert.Contains(t, logs, "msg=solved")
}

func TestRun_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "map.txt", reference)
	prom := filepath.Join(dir, "hill.prom")

	_, _, err := runCLI("-metrics-file", prom, "-reverse", input)
	require.NoError(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `hillpath_searches_total{result="found"} 1`)
	assert.Contains(t, string(data), "hillpath_nodes_expanded_total")
}

func TestRun_Help(t *testing.T) {
	out, usage, err := runCLI("-help")
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, usage, "hillclimb [options] [INPUT_PATH]")
	assert.Contains(t, usage, "-frontier")
}

// ------------------------------------------------------------------------
// 2. Failures
// ------------------------------------------------------------------------

func TestRun_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "map.txt", reference)
	badCfg := writeFile(t, dir, "bad.yaml", "colour: blue\n")

	cases := map[string][]string{
		"unknown flag":  {"-nope", input},
		"frontier":      {"-frontier", "fibonacci", input},
		"log level":     {"-log-level", "loud", input},
		"log format":    {"-log-format", "xml", input},
		"two inputs":    {input, input},
		"config format": {"-config", filepath.Join(dir, "run.toml"), input},
		"config keys":   {"-config", badCfg, input},
	}
	for name, args := range cases {
		_, _, err := runCLI(args...)
		var exitErr *ExitError
		if assert.True(t, errors.As(err, &exitErr), name) {
			assert.Equal(t, 2, exitErr.Code, name)
			assert.NotEmpty(t, exitErr.Error(), name)
		}
	}
}

func TestRun_SolveErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCLI(filepath.Join(dir, "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	walled := writeFile(t, dir, "walled.txt", "Szz\nzzE\n")
	_, _, err = runCLI(walled)
	assert.ErrorIs(t, err, hillclimb.ErrNoPath)

	noStart := writeFile(t, dir, "nostart.txt", "abE\n")
	_, _, err = runCLI(noStart)
	assert.ErrorIs(t, err, hillclimb.ErrMissingStart)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger("warn", "json", &buf).Info("hidden")
	assert.Empty(t, buf.String())

	newLogger("bogus", "bogus", &buf).Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
