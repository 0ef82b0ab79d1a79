// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jtok reads annotated JSON token streams.
//
// An annotated token stream is text that holds one already-classified token
// per line, written <KIND,VALUE>:
//
//	<LEFTCURLY,{>
//	<STRING,"name">
//	<COLON,:>
//	<NUMBER,15>
//	<RIGHTCURLY,}>
//
// KIND is one of the names of the Kind constants, matched exactly. VALUE is
// the raw token text, and may contain commas. Whitespace within a line is
// discarded. Lines that do not begin with a known KIND are ignored.
//
// # Sources
//
// The Source type converts an annotated stream into a sequence of tokens.
// Construct a source from an io.Reader and call its Next method to pull tokens
// one at a time:
//
//	s := jtok.NewSource(input)
//	for tok := s.Next(); !tok.IsEOF(); tok = s.Next() {
//	   log.Printf("Next token: %v", tok)
//	}
//
// Next never fails. When the input is exhausted, or cannot be read, Next
// returns an EOF token on every call. Use Err to check for a read error:
//
//	if err := s.Err(); err != nil {
//	   log.Fatalf("Reading failed: %v", err)
//	}
//
// # Parsing
//
// The ast package parses a token stream into a labeled parse tree, checking
// the input for semantic errors such as duplicate keys and malformed numbers
// as it goes:
//
//	res, err := ast.Parse(input)
//	if err != nil {
//	   log.Fatalf("Reading failed: %v", err)
//	}
//	ast.WriteResult(os.Stdout, res)
//
// The parser stops at the first semantic error; the tree it returns is
// truncated at that point.
package jtok
