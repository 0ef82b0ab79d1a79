// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"bufio"
	"io"
	"math"
	"unicode"

	"go4.org/mem"
)

// A Source reads annotated tokens from an input stream, one per line.  Each
// call to Next returns the next token. After the input is exhausted, Next
// returns an EOF token on every call.
type Source struct {
	sc   *bufio.Scanner
	line int
	done bool
	err  error
}

// NewSource constructs a new token source that consumes input from r.
// Input lines may be of any length.
func NewSource(r io.Reader) *Source {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, math.MaxInt)
	return &Source{sc: sc}
}

// Next returns the next token of the input. Lines that do not carry a
// recognized token annotation are skipped. Next never fails: at the end of
// the input, or after a read error, it returns an EOF token.
func (s *Source) Next() Token {
	for !s.done {
		if !s.sc.Scan() {
			s.done = true
			s.err = s.sc.Err()
			break
		}
		s.line++
		if tok, ok := ParseLine(s.sc.Text(), s.line); ok {
			return tok
		}
	}
	return Token{Kind: EOF}
}

// Err returns the error, other than end of input, that stopped s, or nil.
func (s *Source) Err() error { return s.err }

// Line reports the number of input lines consumed so far.
func (s *Source) Line() int { return s.line }

// ParseLine converts a single annotated input line of the form <KIND,VALUE>
// into a token tagged with lineNo. It reports false if line does not begin
// with a known token kind.
//
// Surrounding whitespace and a single pair of angle brackets are removed, all
// remaining whitespace is discarded, and the text is split at the first
// comma, so the value may itself contain commas. For a String, one pair of
// enclosing double quotes is also removed from the value.
func ParseLine(line string, lineNo int) (Token, bool) {
	text := mem.TrimSpace(mem.S(line))
	text = mem.TrimPrefix(text, mem.S("<"))
	text = mem.TrimSuffix(text, mem.S(">"))
	text = removeSpace(text)

	var name, value mem.RO
	if i := mem.IndexByte(text, ','); i >= 0 {
		name, value = text.SliceTo(i), text.SliceFrom(i+1)
	} else {
		name = text
	}
	kind, ok := ParseKind(name.StringCopy())
	if !ok {
		return Token{}, false
	}
	if kind == String {
		value = unquote(value)
	}
	return Token{Kind: kind, Value: value.StringCopy(), Line: lineNo}, true
}

// removeSpace returns a copy of text with all whitespace runes removed.
func removeSpace(text mem.RO) mem.RO {
	buf := make([]byte, 0, text.Len())
	for text.Len() != 0 {
		r, n := mem.DecodeRune(text)
		if !unicode.IsSpace(r) {
			buf = append(buf, text.SliceTo(n).StringCopy()...)
		}
		text = text.SliceFrom(n)
	}
	return mem.B(buf)
}

// unquote removes one pair of enclosing double quotes from text, if present.
// No escape sequences are decoded.
func unquote(text mem.RO) mem.RO {
	if text.Len() >= 2 && mem.HasPrefix(text, mem.S(`"`)) && mem.HasSuffix(text, mem.S(`"`)) {
		return text.Slice(1, text.Len()-1)
	}
	return text
}
