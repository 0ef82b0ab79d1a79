// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a labeled parse tree for annotated JSON token streams,
// and a parser that constructs parse trees while checking the input for
// semantic errors.
package ast

import "fmt"

// ValueKind classifies the scalar value held by a leaf Node.
type ValueKind byte

// Constants defining the valid ValueKind values.
const (
	NoValue      ValueKind = iota // objects, lists, and keys
	StringValue                   // a string
	NumberValue                   // a number
	BooleanValue                  // true or false
	NullValue                     // null
)

var valueKindStr = [...]string{
	NoValue:      "",
	StringValue:  "STRING",
	NumberValue:  "NUMBER",
	BooleanValue: "BOOLEAN",
	NullValue:    "NULL",
}

func (v ValueKind) String() string {
	if int(v) >= len(valueKindStr) {
		return fmt.Sprintf("ValueKind(%d)", v)
	}
	return valueKindStr[v]
}

// A Node is a single construct of the parse tree: an object, a list, an
// object key, or a scalar value.
//
// The Closing label of an object or list is set only if its closing
// delimiter was consumed from the input. A node whose input ended early, or
// whose parse was halted by an error, has an empty Closing label.
type Node struct {
	Label    string    // the opening label or the value text; "" if unlabeled
	Closing  string    // the closing label, or ""
	Children []*Node   // ordered children
	Kind     ValueKind // the kind of a scalar value, or NoValue
}

// Add appends children to n.
func (n *Node) Add(children ...*Node) { n.Children = append(n.Children, children...) }

// IsClosed reports whether n has a closing label.
func (n *Node) IsClosed() bool { return n.Closing != "" }

// IsLeaf reports whether n holds a scalar value.
func (n *Node) IsLeaf() bool { return n.Kind != NoValue }

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Node(%s %q)", n.Kind, n.Label)
	}
	return fmt.Sprintf("Node(%q, len=%d)", n.Label, len(n.Children))
}
