// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import "fmt"

// Kind is the type of a lexical token in the annotated token stream.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid     Kind = iota // invalid token, never emitted by a Source
	String                  // quoted string
	Number                  // number, undecoded
	True                    // constant: true
	False                   // constant: false
	Null                    // constant: null
	LeftCurly               // left brace "{"
	RightCurly              // right brace "}"
	LeftSquare              // left square bracket "["
	RightSquare             // right square bracket "]"
	Comma                   // comma ","
	Colon                   // colon ":"
	EOF                     // end of input

	// Do not modify the order of these constants without updating kindStr.
)

var kindStr = [...]string{
	Invalid:     "INVALID",
	String:      "STRING",
	Number:      "NUMBER",
	True:        "TRUE",
	False:       "FALSE",
	Null:        "NULL",
	LeftCurly:   "LEFTCURLY",
	RightCurly:  "RIGHTCURLY",
	LeftSquare:  "LEFTSQUARE",
	RightSquare: "RIGHTSQUARE",
	Comma:       "COMMA",
	Colon:       "COLON",
	EOF:         "EOF",
}

// String returns the annotation name of k, as it appears in the input.
func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// ParseKind returns the Kind whose annotation name is exactly s. The match is
// case-sensitive. It reports false if s does not name a token kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "STRING":
		return String, true
	case "NUMBER":
		return Number, true
	case "TRUE":
		return True, true
	case "FALSE":
		return False, true
	case "NULL":
		return Null, true
	case "LEFTCURLY":
		return LeftCurly, true
	case "RIGHTCURLY":
		return RightCurly, true
	case "LEFTSQUARE":
		return LeftSquare, true
	case "RIGHTSQUARE":
		return RightSquare, true
	case "COMMA":
		return Comma, true
	case "COLON":
		return Colon, true
	case "EOF":
		return EOF, true
	default:
		return Invalid, false
	}
}

// A Token is a single classified unit of the input.
type Token struct {
	Kind  Kind
	Value string // the raw value text, possibly empty
	Line  int    // source line number, 1-based; 0 if synthetic
}

// IsEOF reports whether t marks the end of the input.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// String renders t in its annotated input form.
func (t Token) String() string { return fmt.Sprintf("<%s,%s>", t.Kind, t.Value) }
