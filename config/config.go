package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillpath/dijkstra"
)

// Sentinel errors returned by the config package.
var (
	// ErrUnsupportedFormat indicates a config file extension Load cannot decode.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidConfig indicates a field value outside its allowed set.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// DefaultInput is the puzzle input read when nothing else is given.
const DefaultInput = "input/day12.txt"

// Config holds the settings of one hillclimb run.
type Config struct {
	Input       string // path to the height map
	Strict      bool   // reject malformed maps instead of parsing leniently
	Frontier    string // "heap" or "btree"
	Reverse     bool   // answer part two with one reverse walk
	ShowPath    bool   // print the part one route
	LogLevel    string // debug, info, warn or error
	LogFormat   string // text or json
	MetricsFile string // Prometheus textfile output; empty disables it
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input:     DefaultInput,
		Frontier:  dijkstra.FrontierHeap.String(),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// fileConfig mirrors Config with optional fields so a file can override
// only what it names.
type fileConfig struct {
	Input       *string `yaml:"input" hcl:"input,optional"`
	Strict      *bool   `yaml:"strict" hcl:"strict,optional"`
	Frontier    *string `yaml:"frontier" hcl:"frontier,optional"`
	Reverse     *bool   `yaml:"reverse" hcl:"reverse,optional"`
	ShowPath    *bool   `yaml:"show_path" hcl:"show_path,optional"`
	LogLevel    *string `yaml:"log_level" hcl:"log_level,optional"`
	LogFormat   *string `yaml:"log_format" hcl:"log_format,optional"`
	MetricsFile *string `yaml:"metrics_file" hcl:"metrics_file,optional"`
}

// Load reads path, applies it on top of Default and validates the result.
// The decoder is chosen by file extension.
func Load(path string) (Config, error) {
	var (
		fc  fileConfig
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(path, &fc)
	case ".hcl", ".json":
		err = decodeHCL(path, ext, &fc)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	fc.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// decodeYAML decodes path in strict mode. An empty document is not an error.
func decodeYAML(path string, fc *fileConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: could not read %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: YAML error in %q: %w", path, err)
	}

	return nil
}

// decodeHCL decodes path as HCL native syntax or, for .json, HCL's JSON syntax.
func decodeHCL(path, ext string, fc *fileConfig) error {
	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if ext == ".json" {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return fmt.Errorf("config: failed to parse %q: %w", path, diags)
	}

	diags = gohcl.DecodeBody(file.Body, nil, fc)
	if diags.HasErrors() {
		return fmt.Errorf("config: failed to decode %q: %w", path, diags)
	}

	return nil
}

// apply copies every field the file set onto cfg.
func (fc fileConfig) apply(cfg *Config) {
	if fc.Input != nil {
		cfg.Input = *fc.Input
	}
	if fc.Strict != nil {
		cfg.Strict = *fc.Strict
	}
	if fc.Frontier != nil {
		cfg.Frontier = *fc.Frontier
	}
	if fc.Reverse != nil {
		cfg.Reverse = *fc.Reverse
	}
	if fc.ShowPath != nil {
		cfg.ShowPath = *fc.ShowPath
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.MetricsFile != nil {
		cfg.MetricsFile = *fc.MetricsFile
	}
}

// Validate normalises LogLevel, LogFormat and Frontier to lower case and
// checks them against their allowed values.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q (want debug, info, warn or error)", ErrInvalidConfig, c.LogLevel)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}

	f, err := dijkstra.ParseFrontier(c.Frontier)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.Frontier = f.String()

	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	}

	return nil
}

// FrontierKind returns the parsed Frontier. It falls back to the heap for
// values Validate would reject.
func (c Config) FrontierKind() dijkstra.Frontier {
	f, err := dijkstra.ParseFrontier(c.Frontier)
	if err != nil {
		return dijkstra.FrontierHeap
	}

	return f
}
