// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/creachadair/jtok"
	"github.com/creachadair/mds/mapset"
)

// A TokenSource delivers tokens to a Parser. Once its input is exhausted, a
// TokenSource must return EOF tokens indefinitely. *jtok.Source satisfies
// this interface.
type TokenSource interface {
	Next() jtok.Token
}

// Result is the outcome of parsing a single input.
type Result struct {
	Root   *Node            // the root of the parse tree, or nil if the input was empty
	Errors []*SemanticError // semantic errors in the order they were found
}

// Err returns the first semantic error recorded, or nil. Only the first error
// is meaningful: the parser halts as soon as an error is found.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Parse parses a single object from the annotated token stream in r.  The
// returned error is non-nil only if reading r failed; semantic errors are
// reported in the Result.
func Parse(r io.Reader) (*Result, error) {
	src := jtok.NewSource(r)
	res := NewParser(src).Parse()
	return res, src.Err()
}

// A Parser is a recursive-descent parser for the grammar
//
//	object   → '{' contents? '}'
//	contents → pair (',' pair)*
//	pair     → STRING ':' value
//	value    → STRING | NUMBER | TRUE | FALSE | NULL | list | object
//	list     → '[' items? ']'
//	items    → value (',' value)*
//
// The parser checks the input for semantic errors as it goes. When the first
// error is recorded, the parser halts: from then on every rule observes the
// end of input, so the tree is truncated at the point of the error.
type Parser struct {
	src    TokenSource
	tok    jtok.Token // current token
	halted bool       // no further input is consumed
	scoped bool       // track keys per object
	depth  int        // object nesting depth
	keys   mapset.Set[string]
	errs   []*SemanticError
	res    *Result
}

// NewParser constructs a new Parser that consumes tokens from src.
func NewParser(src TokenSource) *Parser {
	return &Parser{src: src, keys: mapset.New[string]()}
}

// ScopeKeys configures the parser to check duplicate keys separately within
// each object (true), or across all the keys of the input (false).  The
// default is false, so that the same key in two different nested objects is
// reported as a duplicate.
func (p *Parser) ScopeKeys(ok bool) { p.scoped = ok }

// Parse fetches the first token and parses an object. Parse consumes the
// input only once; subsequent calls return the same result.
func (p *Parser) Parse() *Result {
	if p.res == nil {
		p.advance()
		p.res = &Result{Root: p.parseObject(), Errors: p.errs}
	}
	return p.res
}

// Keys returns the keys recorded in the outermost key namespace, in sorted
// order. Unless ScopeKeys is enabled, this is every key of the input.
func (p *Parser) Keys() []string { return slices.Sorted(maps.Keys(p.keys)) }

// parseObject parses the object rule.
func (p *Parser) parseObject() *Node {
	if p.current() == jtok.EOF {
		return nil
	}
	if p.scoped && p.depth > 0 {
		outer := p.keys
		p.keys = mapset.New[string]()
		defer func() { p.keys = outer }()
	}
	p.depth++
	defer func() { p.depth-- }()

	node := &Node{Label: "{"}
	p.eat(jtok.LeftCurly)
	if p.current() != jtok.RightCurly {
		node.Add(p.parseContents()...)
	}
	if p.eat(jtok.RightCurly) {
		node.Closing = "}"
	}
	return node
}

// parseContents parses the contents rule. The result is a flat sequence of
// key and value nodes.
func (p *Parser) parseContents() []*Node {
	if p.current() == jtok.EOF {
		return nil
	}
	nodes := p.parsePair()
	for p.eat(jtok.Comma) {
		nodes = append(nodes, p.parsePair()...)
	}
	return nodes
}

// parsePair parses the pair rule, returning the key node followed by the
// value node, if there is one.
func (p *Parser) parsePair() []*Node {
	if p.current() == jtok.EOF {
		return nil
	}
	key, line := p.tok.Value, p.tok.Line

	if strings.ReplaceAll(key, " ", "") == "" {
		p.fail(EmptyKey, key, line)
	}
	if isReserved(key) {
		p.fail(ReservedKey, key, line)
	}
	if p.keys.Has(key) {
		p.fail(DuplicateKey, key, line)
	}
	p.keys.Add(key)

	knode := &Node{Label: key}
	p.eat(jtok.String)
	p.eat(jtok.Colon)
	if v := p.parseValue(); v != nil {
		return []*Node{knode, v}
	}
	return []*Node{knode}
}

// parseValue parses the value rule. An unexpected token halts the parser
// without recording an error.
func (p *Parser) parseValue() *Node {
	text, line := p.tok.Value, p.tok.Line
	switch kind := p.current(); kind {
	case jtok.EOF:
		return nil

	case jtok.String:
		if isReserved(text) {
			p.fail(ReservedString, text, line)
		}
		p.eat(kind)
		return &Node{Label: text, Kind: StringValue}

	case jtok.Number:
		if strings.HasPrefix(text, ".") || strings.HasSuffix(text, ".") {
			p.fail(InvalidDecimal, text, line)
		}
		if strings.HasPrefix(text, "0") || strings.HasPrefix(text, "+") {
			p.fail(InvalidNumber, text, line)
		}
		p.eat(kind)
		return &Node{Label: text, Kind: NumberValue}

	case jtok.True:
		p.eat(kind)
		return &Node{Label: "true", Kind: BooleanValue}
	case jtok.False:
		p.eat(kind)
		return &Node{Label: "false", Kind: BooleanValue}
	case jtok.Null:
		p.eat(kind)
		return &Node{Label: "null", Kind: NullValue}

	case jtok.LeftSquare:
		return p.parseList()
	case jtok.LeftCurly:
		return p.parseObject()

	default:
		p.halted = true
		return nil
	}
}

// parseList parses the list rule.
func (p *Parser) parseList() *Node {
	if p.current() == jtok.EOF {
		return nil
	}
	node := &Node{Label: "["}
	p.eat(jtok.LeftSquare)
	if p.current() != jtok.RightSquare {
		node.Add(p.parseItems()...)
	}
	if p.eat(jtok.RightSquare) {
		node.Closing = "]"
	}
	return node
}

// parseItems parses the items rule. The kind of the first element fixes the
// kind expected of all the elements that follow it.
func (p *Parser) parseItems() []*Node {
	if p.current() == jtok.EOF {
		return nil
	}
	var items []*Node
	first := p.parseValue()
	if first == nil {
		return nil
	}
	items = append(items, first)
	for p.eat(jtok.Comma) {
		line := p.tok.Line
		elt := p.parseValue()
		if elt == nil {
			continue
		}
		if elt.Kind != first.Kind {
			p.fail(InconsistentList, elt.Label, line)
		}
		items = append(items, elt)
	}
	return items
}

// current returns the kind of the current token. Once the parser has halted,
// current always reports EOF.
func (p *Parser) current() jtok.Kind {
	if p.halted {
		return jtok.EOF
	}
	return p.tok.Kind
}

// advance fetches the next token from the source.
func (p *Parser) advance() { p.tok = p.src.Next() }

// eat consumes the current token and reports true if its kind is k.
// Otherwise the current token is unchanged and eat reports false.
func (p *Parser) eat(k jtok.Kind) bool {
	if p.current() != k {
		return false
	}
	p.advance()
	return true
}

// fail records a semantic error and halts the parser.
func (p *Parser) fail(code ErrorCode, text string, line int) {
	p.errs = append(p.errs, &SemanticError{Code: code, Text: text, Line: line})
	p.halted = true
}

func isReserved(s string) bool { return s == "true" || s == "false" }
