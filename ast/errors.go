// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// ErrorCode identifies one of the semantic checks performed by the parser.
type ErrorCode byte

// Constants defining the valid ErrorCode values. The numeric value of each
// code is the error type number reported in its message.
const (
	InvalidDecimal   ErrorCode = 1 // number begins or ends with "."
	EmptyKey         ErrorCode = 2 // object key is empty
	InvalidNumber    ErrorCode = 3 // number begins with "0" or "+"
	ReservedKey      ErrorCode = 4 // object key is "true" or "false"
	DuplicateKey     ErrorCode = 5 // object key was already seen
	InconsistentList ErrorCode = 6 // list elements differ in kind
	ReservedString   ErrorCode = 7 // string value is "true" or "false"
)

var codeStr = [...]string{
	InvalidDecimal:   "Invalid Decimal Number",
	EmptyKey:         "Empty Key",
	InvalidNumber:    "Invalid Number",
	ReservedKey:      "Dictionary Key is a Reserved Word",
	DuplicateKey:     "Duplicate Key",
	InconsistentList: "Inconsistent List Element Type",
	ReservedString:   "Reserved Word as String",
}

// String returns the description of c.
func (c ErrorCode) String() string {
	if c == 0 || int(c) >= len(codeStr) {
		return fmt.Sprintf("ErrorCode(%d)", c)
	}
	return codeStr[c]
}

// SemanticError is the concrete type of errors recorded by the parser.
type SemanticError struct {
	Code ErrorCode
	Text string // the text of the offending token or element
	Line int    // source line of the offending token, 0 if unknown
}

// Error satisfies the error interface.
func (e *SemanticError) Error() string {
	return fmt.Sprintf("Error Type %d at '%s': %s", e.Code, e.Text, e.Code)
}
