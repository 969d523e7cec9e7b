// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query compiles wildcard-search and comparison-filter strings
// into predicate trees and evaluates them over a citation graph's edges.
//
// A compiled query is a tree of boolean connectives over atomic leaves:
// an anchored pattern match for search queries, a string comparison for
// filter queries. Each leaf is evaluated against one field value per
// edge by direct dispatch; no query ever executes as code.
// Implements: prd003-query (R1-R4);
//
//	docs/ARCHITECTURE § Query Engine.
package query

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidQuery reports a structurally malformed query: an empty
// query, an operator where an operand belongs, or a dangling operator.
var ErrInvalidQuery = errors.New("invalid query")

// Expr is a compiled predicate over a single field value. Implementations
// live in this package; callers hold and evaluate them opaquely.
type Expr interface {
	match(value string) bool
}

type andExpr struct{ left, right Expr }
type orExpr struct{ left, right Expr }
type notExpr struct{ inner Expr }

func (e andExpr) match(v string) bool { return e.left.match(v) && e.right.match(v) }
func (e orExpr) match(v string) bool  { return e.left.match(v) || e.right.match(v) }
func (e notExpr) match(v string) bool { return !e.inner.match(v) }

// matchExpr matches the entire field value against an anchored pattern.
// A nil pattern never matches: a term that failed to compile degrades to
// a non-match instead of failing the whole query.
type matchExpr struct{ re *regexp.Regexp }

func (e matchExpr) match(v string) bool {
	return e.re != nil && e.re.MatchString(v)
}

// compareExpr compares the field value against a literal. Comparisons
// are over strings per contract, never numeric.
type compareExpr struct {
	op      string
	literal string
}

func (e compareExpr) match(v string) bool {
	switch e.op {
	case "==":
		return v == e.literal
	case "!=":
		return v != e.literal
	case "<":
		return v < e.literal
	case "<=":
		return v <= e.literal
	case ">":
		return v > e.literal
	case ">=":
		return v >= e.literal
	}
	return false
}

// CompileSearch compiles a wildcard search query. Whitespace-separated
// tokens are either the operators "and", "or", "not" (exact, lowercase)
// or search terms. Terms are case-folded and matched against the entire
// field value, with "*" standing for any run of characters including the
// empty one; all other pattern characters are literal.
func CompileSearch(q string) (Expr, error) {
	tokens := strings.Fields(q)
	leaves := make([]Expr, len(tokens))
	for i, tok := range tokens {
		if !isConnective(tok) {
			leaves[i] = compileTerm(tok)
		}
	}
	return parse(tokens, leaves)
}

// CompileFilter compiles a comparison filter query. The expression is
// case-folded as a whole; each comparison operator (<=, >=, ==, !=, <, >)
// consumes the following token as its string literal, with the edge's
// field value as the implicit left-hand side. Connectives compose
// comparisons exactly as in search queries.
func CompileFilter(q string) (Expr, error) {
	tokens := strings.Fields(strings.ToLower(q))

	var parseToks []string
	var leaves []Expr
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if isConnective(tok) {
			parseToks = append(parseToks, tok)
			leaves = append(leaves, nil)
			continue
		}
		if !isCompareOp(tok) {
			return nil, fmt.Errorf("%w: expected comparison operator, got %q", ErrInvalidQuery, tok)
		}
		if i+1 >= len(tokens) || isConnective(tokens[i+1]) || isCompareOp(tokens[i+1]) {
			return nil, fmt.Errorf("%w: operator %q has no value", ErrInvalidQuery, tok)
		}
		parseToks = append(parseToks, tok)
		leaves = append(leaves, compareExpr{op: tok, literal: tokens[i+1]})
		i++
	}
	return parse(parseToks, leaves)
}

// compileTerm turns one search term into an anchored pattern leaf.
// Splitting on "*" and quoting the parts escapes every special character
// while preserving the wildcard.
func compileTerm(term string) Expr {
	parts := strings.Split(strings.ToLower(term), "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re, err := regexp.Compile("^" + strings.Join(parts, ".*") + "$")
	if err != nil {
		return matchExpr{} // never matches
	}
	return matchExpr{re: re}
}

func isConnective(tok string) bool {
	return tok == "and" || tok == "or" || tok == "not"
}

var compareOps = map[string]bool{
	"<=": true, ">=": true, "==": true, "!=": true, "<": true, ">": true,
}

func isCompareOp(tok string) bool { return compareOps[tok] }

// parser walks a token stream with pre-compiled leaves. tokens[i] is a
// connective or a leaf placeholder; leaves[i] is non-nil exactly for the
// placeholders. Precedence is not > and > or; the grammar has no
// parentheses.
type parser struct {
	tokens []string
	leaves []Expr
	pos    int
}

func parse(tokens []string, leaves []Expr) (Expr, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidQuery)
	}
	p := &parser{tokens: tokens, leaves: leaves}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidQuery, p.tokens[p.pos])
	}
	return expr, nil
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek() == "or" {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orExpr{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek() == "and" {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andExpr{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.peek() == "not" {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notExpr{inner: inner}, nil
	}
	return p.parseLeaf()
}

func (p *parser) parseLeaf() (Expr, error) {
	if p.pos >= len(p.tokens) {
		return nil, fmt.Errorf("%w: missing operand", ErrInvalidQuery)
	}
	if leaf := p.leaves[p.pos]; leaf != nil {
		p.pos++
		return leaf, nil
	}
	return nil, fmt.Errorf("%w: operator %q where an operand belongs", ErrInvalidQuery, p.tokens[p.pos])
}

// peek returns the next token, or "" at the end of the stream.
func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}
