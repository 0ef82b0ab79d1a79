// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package config loads settings for the jtok command-line tool.
//
// Configuration files are written in JWCC, JSON with commas and comments:
//
//	{
//	  // Where to find annotated token streams.
//	  "input_dir": "input_folder",
//	  "output_dir": "output_folder",
//	  "scope_keys": false,
//	}
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds the settings for a batch run.
type Config struct {
	InputDir  string `json:"input_dir"`  // directory of input files
	OutputDir string `json:"output_dir"` // directory for output files
	Pattern   string `json:"pattern"`    // glob matching input file names
	ScopeKeys bool   `json:"scope_keys"` // check duplicate keys per object
	Workers   int    `json:"workers"`    // maximum files parsed concurrently
	LogLevel  string `json:"log_level"`  // debug, info, warn, or error
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		InputDir:  "input_folder",
		OutputDir: "output_folder",
		Pattern:   "*Input*.txt",
		Workers:   4,
		LogLevel:  "info",
	}
}

// Load reads the configuration file at path. Settings not given in the file
// keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Parse decodes a JWCC configuration from data over the defaults.
func Parse(data []byte) (Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate reports an error if c is not usable.
func (c Config) Validate() error {
	var errs []error
	if c.InputDir == "" {
		errs = append(errs, errors.New("missing input_dir"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("missing output_dir"))
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil || c.Pattern == "" {
		errs = append(errs, fmt.Errorf("invalid pattern %q", c.Pattern))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the log level named by c.LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return lvl, nil
}
