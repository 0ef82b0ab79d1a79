// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"context"
	"fmt"

	"github.com/creachadair/jtok/internal/config"
	"github.com/creachadair/jtok/internal/driver"
	"github.com/spf13/cobra"
)

func newRunCmd(rf *rootFlags) *cobra.Command {
	var cfgFile string
	cfg := config.Default()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Parse a directory of input files",
		Long: `Parse every input file in a directory, writing each tree and first
error to an output file. The output name replaces "Input" in the input name
with "Output", so Type1ErrorInput.txt produces Type1ErrorOutput.txt.

Settings are read from the --config file, if given, and flags override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				loaded, err := config.Load(cfgFile)
				if err != nil {
					return err
				}
				// Flags set explicitly take precedence over the file.
				fs := cmd.Flags()
				if fs.Changed("input") {
					loaded.InputDir = cfg.InputDir
				}
				if fs.Changed("output") {
					loaded.OutputDir = cfg.OutputDir
				}
				if fs.Changed("pattern") {
					loaded.Pattern = cfg.Pattern
				}
				if fs.Changed("workers") {
					loaded.Workers = cfg.Workers
				}
				if fs.Changed("scope-keys") {
					loaded.ScopeKeys = cfg.ScopeKeys
				}
				cfg = loaded
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := cfg.Level()
			log := newLogger(cmd.ErrOrStderr(), level, rf.verbose)

			jobs, err := driver.Discover(cfg.InputDir, cfg.Pattern, cfg.OutputDir)
			if err != nil {
				return err
			} else if len(jobs) == 0 {
				return fmt.Errorf("no files matching %q in %q", cfg.Pattern, cfg.InputDir)
			}
			reps, err := driver.Run(context.Background(), jobs, driver.Options{
				ScopeKeys: cfg.ScopeKeys,
				Workers:   cfg.Workers,
				Logger:    log,
			})
			if err != nil {
				return err
			}
			var nerr int
			for _, r := range reps {
				if r.Err != nil {
					nerr++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Parsed %d files, %d with errors\n", len(reps), nerr)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&cfgFile, "config", "", "Configuration file (JWCC)")
	fs.StringVar(&cfg.InputDir, "input", cfg.InputDir, "Input directory")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Output directory")
	fs.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "Glob matching input file names")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Maximum files parsed concurrently")
	fs.BoolVar(&cfg.ScopeKeys, "scope-keys", cfg.ScopeKeys, "Check duplicate keys separately in each object")
	return cmd
}
