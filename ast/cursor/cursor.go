// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a parse tree.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jtok/ast"
)

// Path traverses a sequential path into the structure of n where path
// elements are as documented for the Cursor.Down method.  This is a
// convenience wrapper for creating a cursor, applying path, and retrieving its
// node.
func Path(n *ast.Node, path ...any) (*ast.Node, error) {
	c := New(n).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Node(), nil
}

// ParsePath splits a slash-separated path string into path elements suitable
// for Down. Elements that parse as integers become offsets; all others are
// keys. An empty string yields an empty path.
func ParsePath(s string) []any {
	if s == "" {
		return nil
	}
	var path []any
	for _, elt := range strings.Split(s, "/") {
		if v, err := strconv.Atoi(elt); err == nil {
			path = append(path, v)
		} else {
			path = append(path, elt)
		}
	}
	return path
}

// A Cursor is a pointer that navigates into the structure of a parse tree.
type Cursor struct {
	org *ast.Node
	stk []*ast.Node
	val *ast.Node // value following the key atop stk, if any
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *ast.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() *ast.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Node reports the current node under the cursor.
func (c *Cursor) Node() *ast.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the current
// location in c.
func (c *Cursor) Path() []*ast.Node {
	return append([]*ast.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	c.val = nil
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.val = nil; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are strings (denoting object keys),
// integers (denoting offsets into children), functions, or nil.  If the path
// cannot be completely consumed, traversal stops and an error is recorded.
// Use Err to recover the error.
//
// A string element requires an object node, and resolves to the first key
// node with that label. If more elements follow, they continue from the value
// node paired with that key. Use a nil element to move from a key to its
// value at the end of a path.
//
// An integer element resolves to a child of the current node by offset.
// Negative offsets count backward from the end (-1 is last).
//
// A function element must have the signature
//
//	func(*ast.Node) (*ast.Node, error)
//
// and its result becomes the next node in the sequence.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Node()
	for _, elt := range path {
		// If the previous step ended on a key, interpret the next path element
		// relative to the value of that key.
		if c.val != nil {
			cur = c.push(c.val)
		}

		switch t := elt.(type) {
		case string:
			if cur.Label != "{" || cur.IsLeaf() {
				return c.setErrorf("cannot traverse %v with %q", cur, t)
			}
			i := findKey(cur, t)
			if i < 0 {
				return c.setErrorf("key %q not found", t)
			}
			obj := cur
			cur = c.push(obj.Children[i])
			if i+1 < len(obj.Children) {
				c.val = obj.Children[i+1]
			}

		case int:
			i, ok := fixBound(len(cur.Children), t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", t, len(cur.Children))
			}
			cur = c.push(cur.Children[i])

		case func(*ast.Node) (*ast.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing. This case supports moving from a key to its value at
			// the end of the path.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

// push pushes n onto the stack and clears any pending value.
func (c *Cursor) push(n *ast.Node) *ast.Node {
	c.stk = append(c.stk, n)
	c.val = nil
	return n
}

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

// findKey returns the offset of the first key child of obj labeled key, or -1.
// The children of an object alternate between keys and values.
func findKey(obj *ast.Node, key string) int {
	for i := 0; i < len(obj.Children); i += 2 {
		if obj.Children[i].Label == key {
			return i
		}
	}
	return -1
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
