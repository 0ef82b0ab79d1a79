// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:   "jtok",
		Short: "Parse annotated JSON token streams",
		Long: `Parse annotated JSON token streams into labeled parse trees.

Each input line holds one token, written <KIND,VALUE>, where KIND is one of
STRING, NUMBER, TRUE, FALSE, NULL, LEFTCURLY, RIGHTCURLY, LEFTSQUARE,
RIGHTSQUARE, COMMA, COLON, or EOF. Other lines are ignored.

The tree is printed with four spaces of indentation per level. If the input
has a semantic error, parsing stops there and the error is printed after a
blank line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&rf.verbose, "verbose", "v", false, "Verbose log output")
	root.AddCommand(newParseCmd(&rf), newRunCmd(&rf))
	return root
}

// newLogger returns a text logger writing to w at the given level, or at
// debug level if verbose is set.
func newLogger(w io.Writer, level slog.Level, verbose bool) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
