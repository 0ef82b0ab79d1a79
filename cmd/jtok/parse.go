// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/creachadair/jtok/ast"
	"github.com/creachadair/jtok/ast/cursor"
	"github.com/creachadair/jtok/internal/driver"
	"github.com/spf13/cobra"
)

func newParseCmd(rf *rootFlags) *cobra.Command {
	var (
		scoped bool
		path   string
	)
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse files and print their trees",
		Long: `Parse each named file and print its tree, followed by its first
semantic error, if any.

With --path, print only the subtree at the given slash-separated path of
object keys and child offsets, e.g. "items/0".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), slog.LevelWarn, rf.verbose)
			out := cmd.OutOrStdout()
			for _, name := range args {
				log.Debug("parsing", "input", name)
				res, err := driver.ParseFile(name, scoped)
				if err != nil {
					return err
				}
				if len(args) > 1 {
					fmt.Fprintf(out, "== %s\n", name)
				}
				if path == "" {
					if err := ast.WriteResult(out, res); err != nil {
						return err
					}
				} else if err := writeSubtree(cmd, res, path); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err := res.Err(); err != nil {
					log.Warn("semantic error", "input", name, "error", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&scoped, "scope-keys", false, "Check duplicate keys separately in each object")
	cmd.Flags().StringVar(&path, "path", "", "Print only the subtree at this path")
	return cmd
}

func writeSubtree(cmd *cobra.Command, res *ast.Result, path string) error {
	if res.Root == nil {
		return errors.New("empty input")
	}
	n, err := cursor.Path(res.Root, cursor.ParsePath(path)...)
	if err != nil {
		return err
	}
	return ast.Format(cmd.OutOrStdout(), n)
}
