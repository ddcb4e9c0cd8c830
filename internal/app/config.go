// Package app wires the extract, generate and render steps into one run.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/abhisek/examgen/internal/examerr"
	"github.com/abhisek/examgen/internal/examgen"
	"github.com/abhisek/examgen/internal/render"
)

// Environment keys read by ConfigFromEnv, besides the examgen.Env* counts.
const (
	EnvInput       = "EXAMGEN_INPUT"
	EnvSupplement1 = "EXAMGEN_SUPPLEMENT_1"
	EnvSupplement2 = "EXAMGEN_SUPPLEMENT_2"
	EnvOutputDir   = "EXAMGEN_OUTPUT_DIR"
	EnvTitle       = "EXAMGEN_TITLE"
	EnvSplit       = "EXAMGEN_SPLIT"
	EnvTimestamp   = "EXAMGEN_TIMESTAMP"
	EnvFont        = "EXAMGEN_FONT"
	EnvStructured  = "EXAMGEN_STRUCTURED"
	EnvSaveText    = "EXAMGEN_SAVE_TEXT"
)

// DefaultOutputDir is where documents go when no directory is configured.
const DefaultOutputDir = "output"

// Config is everything one run needs, read once before the run starts.
type Config struct {
	Input       string
	Supplements []string

	OutputDir string
	// Timestamp appends the run time to output file names.
	Timestamp bool
	// SaveText also writes the generated exam text next to the PDFs.
	SaveText bool

	Title string
	Split bool

	Spec      examgen.Spec
	Generator examgen.Config

	BlankSpacing bool
	FontPath     string
}

// DefaultConfig returns a Config with defaults and no input.
func DefaultConfig() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Timestamp: true,
		Title:     render.DefaultTitle,
		Spec:      examgen.Spec{Language: examgen.DefaultLanguage},
		Generator: examgen.DefaultConfig(),
	}
}

// ConfigFromEnv builds a Config from lookup, which has the signature of
// os.LookupEnv. All problems are reported together as an
// InvalidConfiguration error.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg.Input = get(EnvInput)
	for _, k := range []string{EnvSupplement1, EnvSupplement2} {
		if s := get(k); s != "" {
			cfg.Supplements = append(cfg.Supplements, s)
		}
	}
	if d := get(EnvOutputDir); d != "" {
		cfg.OutputDir = d
	}
	if t := get(EnvTitle); t != "" {
		cfg.Title = t
	}
	cfg.FontPath = get(EnvFont)

	split, err := ParseSplit(get(EnvSplit))
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", EnvSplit, err))
	}
	cfg.Split = split

	flags := []struct {
		key string
		dst *bool
	}{
		{EnvTimestamp, &cfg.Timestamp},
		{EnvStructured, &cfg.Generator.Structured},
		{EnvSaveText, &cfg.SaveText},
	}
	for _, f := range flags {
		v := get(f.key)
		if v == "" {
			continue
		}
		b, err := parseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.key, err))
			continue
		}
		*f.dst = b
	}

	spec, err := examgen.ParseSpec(lookup)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Spec = spec

	if len(errs) > 0 {
		return cfg, examerr.New(examerr.InvalidConfiguration, "read config", errors.Join(errs...))
	}
	return cfg, nil
}

// Validate checks the parts of cfg a run cannot do without.
func (c Config) Validate() error {
	if c.Input == "" {
		return examerr.New(examerr.InvalidConfiguration, "validate config",
			fmt.Errorf("no input document (set %s or pass a path)", EnvInput))
	}
	if len(c.Supplements) > 2 {
		return examerr.New(examerr.InvalidConfiguration, "validate config",
			fmt.Errorf("at most 2 supplementary documents, got %d", len(c.Supplements)))
	}
	return c.Spec.Validate()
}

// CheckInput reports a missing or unreadable primary document.
func (c Config) CheckInput() error {
	info, err := os.Stat(c.Input)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return examerr.WithPath(examerr.NotFound, "check input", c.Input, err)
	case err != nil:
		return examerr.WithPath(examerr.ExtractionFailure, "check input", c.Input, err)
	case info.IsDir():
		return examerr.WithPath(examerr.ExtractionFailure, "check input", c.Input,
			fmt.Errorf("%s is a directory", c.Input))
	}
	return nil
}

// ParseSplit turns a split setting into a bool. Matching is case-insensitive
// after trimming.
//
//	true:  1 t true y yes on split
//	false: "" 0 f false n no off combined "do not split"
//
// Anything else is an InvalidConfiguration error.
func ParseSplit(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "split":
		return true, nil
	case "", "combined", "do not split":
		return false, nil
	}
	b, err := parseBool(s)
	if err != nil {
		return false, examerr.New(examerr.InvalidConfiguration, "parse split", err)
	}
	return b, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
