// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"

	"github.com/pdiddy/citegraph/internal/graph"
)

// Field selects which per-edge value a predicate is evaluated against.
type Field string

const (
	// FieldCiting is the source identifier, case-folded.
	FieldCiting Field = "citing"
	// FieldCited is the target identifier, case-folded.
	FieldCited Field = "cited"
	// FieldCreation is the source node's creation date, case untouched.
	FieldCreation Field = "creation"
	// FieldTimespan is the edge's elapsed-time descriptor, case-folded.
	FieldTimespan Field = "timespan"
)

// ParseField validates a field name from user input.
func ParseField(s string) (Field, bool) {
	switch f := Field(strings.ToLower(s)); f {
	case FieldCiting, FieldCited, FieldCreation, FieldTimespan:
		return f, true
	}
	return "", false
}

// Evaluate applies a compiled predicate to the chosen field of every
// edge and returns the edge-induced subgraph of the matches: a fresh
// graph, never a view of g. Edges whose field value is unavailable are
// excluded rather than failing the evaluation; an unrecognized field
// matches nothing.
func Evaluate(g *graph.Graph, expr Expr, field Field) *graph.Graph {
	var matched []graph.Edge
	for _, e := range g.Edges() {
		v, ok := fieldValue(g, e, field)
		if !ok {
			continue
		}
		if expr.match(v) {
			matched = append(matched, e)
		}
	}
	return g.EdgeSubgraph(matched)
}

func fieldValue(g *graph.Graph, e graph.Edge, field Field) (string, bool) {
	switch field {
	case FieldCiting:
		return strings.ToLower(e.Citing), true
	case FieldCited:
		return strings.ToLower(e.Cited), true
	case FieldCreation:
		return g.Creation(e.Citing)
	case FieldTimespan:
		ts, ok := g.Timespan(e.Citing, e.Cited)
		return strings.ToLower(ts), ok
	}
	return "", false
}

// SearchByPrefix returns the subgraph of edges whose citing (or, when
// citing is false, cited) identifier starts with prefix and whose first
// "/" sits exactly at the end of the prefix. This is DOI registrant
// matching: prefix "10.1234" selects identifiers of that registrant and
// nothing longer.
func SearchByPrefix(g *graph.Graph, prefix string, citing bool) *graph.Graph {
	slashpos := len(prefix)
	var matched []graph.Edge
	for _, e := range g.Edges() {
		id := e.Cited
		if citing {
			id = e.Citing
		}
		if strings.HasPrefix(id, prefix) && strings.Index(id, "/") == slashpos {
			matched = append(matched, e)
		}
	}
	return g.EdgeSubgraph(matched)
}
