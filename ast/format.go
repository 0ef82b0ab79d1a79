// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// A Formatter carries the settings for rendering parse trees.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the number of spaces added at each nesting level.
	// If Indent <= 0, it defaults to 4.
	Indent int
}

func (f Formatter) indent() int {
	if f.Indent <= 0 {
		return 4
	}
	return f.Indent
}

func (f Formatter) placeholder() string { return "(none)" }

// Format renders n to w with default settings.
//
// Each node is written on its own line: first its label, then each of its
// children indented by four more spaces, then its closing label (if any) at
// the same indentation as the label.
func Format(w io.Writer, n *Node) error {
	var f Formatter
	return f.Format(w, n)
}

// FormatToString formats n to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(n *Node) string {
	var buf bytes.Buffer
	if Format(&buf, n) != nil {
		return ""
	}
	return buf.String()
}

// Format renders n to w using the settings from f. A nil node renders as
// nothing.
func (f Formatter) Format(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	f.formatNode(bw, n, 0)
	return bw.Flush()
}

// WriteResult renders the tree of r to w, if there is one. If r has errors,
// it then writes a blank line followed by the text of the first error.
// Later errors are not written.
func (f Formatter) WriteResult(w io.Writer, r *Result) error {
	bw := bufio.NewWriter(w)
	if r.Root != nil {
		f.formatNode(bw, r.Root, 0)
	}
	if err := r.Err(); err != nil {
		bw.WriteString("\n")
		bw.WriteString(err.Error())
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// WriteResult renders r to w with default settings.
func WriteResult(w io.Writer, r *Result) error {
	var f Formatter
	return f.WriteResult(w, r)
}

// formatNode writes n to w at the given depth in spaces.  Errors are sticky
// in a bufio.Writer and are reported by Flush.
func (f Formatter) formatNode(w *bufio.Writer, n *Node, depth int) {
	indent := strings.Repeat(" ", depth)
	label := n.Label
	if label == "" {
		label = f.placeholder()
	}
	w.WriteString(indent + label + "\n")
	for _, c := range n.Children {
		f.formatNode(w, c, depth+f.indent())
	}
	if n.Closing != "" {
		w.WriteString(indent + n.Closing + "\n")
	}
}
