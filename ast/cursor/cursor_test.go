// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/ast"
	"github.com/creachadair/jtok/ast/cursor"
	"github.com/creachadair/jtok/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

const testInput = `{
  "list" : [ { "x" : 1 } , { "x" : 2 } ] ,
  "y" : { "hello" : "there" } ,
  "o" : [ "hi" , "yourself" ] ,
  "xyz" : { "p" : true , "d" : null , "q" : false }
}`

func TestCursor(t *testing.T) {
	// Keys repeat across objects, so check them in separate namespaces.
	p := ast.NewParser(sourceOf(testInput))
	p.ScopeKeys(true)
	r := p.Parse()
	if err := r.Err(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v := r.Root
	kid := func(n *ast.Node, path ...int) *ast.Node {
		for _, i := range path {
			n = n.Children[i]
		}
		return n
	}

	tests := []struct {
		name string
		path []any
		want *ast.Node
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongIndex", []any{11}, v, true},

		{"Key", []any{"y"}, kid(v, 2), false},
		{"KeyValue", []any{"y", nil}, kid(v, 3), false},
		{"ListPos", []any{"list", 1}, kid(v, 1, 1), false},
		{"ListNeg", []any{"list", -1}, kid(v, 1, 1), false},
		{"ListRange", []any{"o", 25}, kid(v, 5), true},
		{"ObjPath", []any{"xyz", "d"}, kid(v, 7, 2), false},
		{"ObjValue", []any{"xyz", "d", nil}, kid(v, 7, 3), false},
		{"Deep", []any{"list", 0, "x", nil}, kid(v, 1, 0, 1), false},
		{"LeafKey", []any{"o", 0, "hi"}, kid(v, 5, 0), true},

		{"FuncList", []any{"o", lastChild}, kid(v, 5, 1), false},
		{"FuncLeaf", []any{"y", "hello", nil, lastChild}, kid(v, 3, 1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Errorf("Down %+v: got %v, want error", tc.path, c.Node())
			}
			if got := c.Node(); got != tc.want {
				t.Errorf("Down %+v: got %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestCursorMoves(t *testing.T) {
	r, err := ast.Parse(strings.NewReader(testutil.Stream(`{ "a" : { "b" : [ 1 , 2 ] } }`)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := cursor.New(r.Root)
	if !c.AtOrigin() || c.Origin() != r.Root {
		t.Fatal("New cursor is not at its origin")
	}
	c.Down("a", "b", -1)
	if err := c.Err(); err != nil {
		t.Fatalf("Down: %v", err)
	}
	var labels []string
	for _, n := range c.Path() {
		labels = append(labels, n.Label)
	}
	if diff := cmp.Diff([]string{"{", "a", "{", "b", "[", "2"}, labels); diff != "" {
		t.Errorf("Path: (-want, +got)\n%s", diff)
	}
	if got := c.Up().Up().Node().Label; got != "b" {
		t.Errorf("Up twice: got %q, want b", got)
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Error("Reset did not return to origin")
	}
	if _, err := cursor.Path(r.Root, 3.5); err == nil {
		t.Error("Path with invalid element did not fail")
	}
	n, err := cursor.Path(r.Root, "a", "b", nil, 0)
	if err != nil || n.Label != "1" {
		t.Errorf("Path: got %v, %v; want 1", n, err)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  []any
	}{
		{"", nil},
		{"a", []any{"a"}},
		{"a/0/b", []any{"a", 0, "b"}},
		{"-1/x", []any{-1, "x"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, cursor.ParsePath(tc.input)); diff != "" {
			t.Errorf("ParsePath(%q): (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func sourceOf(desc string) ast.TokenSource {
	return jtok.NewSource(strings.NewReader(testutil.Stream(desc)))
}

func lastChild(n *ast.Node) (*ast.Node, error) {
	if len(n.Children) == 0 {
		return nil, errors.New("no children")
	}
	return n.Children[len(n.Children)-1], nil
}
