// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"strings"

	"github.com/creachadair/jtok"
)

// Kinds maps the punctuation and constant words accepted by Stream to their
// token kinds.
var Kinds = map[string]jtok.Kind{
	"{":     jtok.LeftCurly,
	"}":     jtok.RightCurly,
	"[":     jtok.LeftSquare,
	"]":     jtok.RightSquare,
	",":     jtok.Comma,
	":":     jtok.Colon,
	"true":  jtok.True,
	"false": jtok.False,
	"null":  jtok.Null,
}

// Stream renders a compact, space-separated description of a token sequence
// as annotated input, one token per line. Punctuation and the words true,
// false, and null denote themselves; a word in double quotes is a string;
// any other word is a number. For example:
//
//	Stream(`{ "a" : [ 1 , 2 ] }`)
//
// Strings may not contain spaces.
func Stream(desc string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(desc) {
		sb.WriteString(Line(word))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Line renders a single word of a Stream description as an annotated line.
func Line(word string) string {
	if k, ok := Kinds[word]; ok {
		return fmt.Sprintf("<%s,%s>", k, word)
	} else if strings.HasPrefix(word, `"`) {
		return fmt.Sprintf("<%s,%s>", jtok.String, word)
	}
	return fmt.Sprintf("<%s,%s>", jtok.Number, word)
}

// Tree renders an expected tree given its lines, with indentation marked by
// leading ">" characters, four spaces for each. This keeps expected output in
// tests legible without depending on exact whitespace in the test source.
//
//	Tree("{", ">a", ">1", "}") == "{\n    a\n    1\n}\n"
func Tree(lines ...string) string {
	var sb strings.Builder
	for _, line := range lines {
		trim := strings.TrimLeft(line, ">")
		sb.WriteString(strings.Repeat("    ", len(line)-len(trim)))
		sb.WriteString(trim)
		sb.WriteByte('\n')
	}
	return sb.String()
}
