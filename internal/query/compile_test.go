// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"errors"
	"testing"
)

func mustSearch(t *testing.T, q string) Expr {
	t.Helper()
	expr, err := CompileSearch(q)
	if err != nil {
		t.Fatalf("CompileSearch(%q): %v", q, err)
	}
	return expr
}

func mustFilter(t *testing.T, q string) Expr {
	t.Helper()
	expr, err := CompileFilter(q)
	if err != nil {
		t.Fatalf("CompileFilter(%q): %v", q, err)
	}
	return expr
}

func TestSearchWildcards(t *testing.T) {
	tests := []struct {
		query   string
		value   string
		matches bool
	}{
		// Trailing wildcard is a prefix match on the whole value.
		{"ab*", "ab", true},
		{"ab*", "abc", true},
		{"ab*", "abxyz", true},
		{"ab*", "xab", false},
		// Interior wildcard, anchored at both ends.
		{"a*c", "ac", true},
		{"a*c", "abc", true},
		{"a*c", "abbbc", true},
		{"a*c", "abcd", false},
		// No wildcard means a complete match, not a substring one.
		{"abc", "abc", true},
		{"abc", "abcd", false},
		{"abc", "xabc", false},
		// Terms are case-folded; field values arrive folded too.
		{"AB*", "abc", true},
		// Pattern-special characters are literal.
		{"10.1234/a.b", "10.1234/a.b", true},
		{"10.1234/a.b", "10.1234/axb", false},
		{"a+b", "a+b", true},
		{"a+b", "aab", false},
	}

	for _, tt := range tests {
		expr := mustSearch(t, tt.query)
		if got := expr.match(tt.value); got != tt.matches {
			t.Errorf("search %q on %q = %v, want %v", tt.query, tt.value, got, tt.matches)
		}
	}
}

func TestSearchBooleanComposition(t *testing.T) {
	tests := []struct {
		query   string
		value   string
		matches bool
	}{
		{"ab* and not cd*", "abx", true},
		{"ab* and not cd*", "cdx", false},
		{"ab* and not cd*", "xyz", false},
		{"ab* or cd*", "cdx", true},
		{"ab* or cd*", "xyz", false},
		{"not ab*", "xyz", true},
		{"not ab*", "abx", false},
		{"not not ab*", "abx", true},
		// "and" binds tighter than "or".
		{"a* and b* or c*", "c", true},
		{"a* and b* or c*", "a", false},
		// "not" binds tighter than "and".
		{"not a* and b*", "b", true},
		{"not a* and b*", "ab", false},
	}

	for _, tt := range tests {
		expr := mustSearch(t, tt.query)
		if got := expr.match(tt.value); got != tt.matches {
			t.Errorf("search %q on %q = %v, want %v", tt.query, tt.value, got, tt.matches)
		}
	}
}

func TestSearchConnectivesAreCaseSensitive(t *testing.T) {
	// "AND" is a search term, not an operator, so this is two terms with
	// no connective between them: structurally invalid.
	if _, err := CompileSearch("ab* AND cd*"); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("upper-case AND must parse as a term, err = %v", err)
	}
}

func TestSearchInvalidQueries(t *testing.T) {
	for _, q := range []string{
		"",
		"   ",
		"and",
		"not",
		"ab* and",
		"and ab*",
		"ab* and or cd*",
		"ab* not cd*", // "not" is unary; two operands need a binary connective
		"ab* cd*",
	} {
		if _, err := CompileSearch(q); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("CompileSearch(%q): err = %v, want ErrInvalidQuery", q, err)
		}
	}
}

func TestFilterComparisons(t *testing.T) {
	tests := []struct {
		query   string
		value   string
		matches bool
	}{
		{"== P1Y", "p1y", true},
		{"== P1Y", "p2y", false},
		{"!= p1y", "p2y", true},
		{"!= p1y", "p1y", false},
		// String comparison, not numeric, per contract.
		{"< 2018", "2017-05-30", true},
		{"< 2018", "2018-01-01", false},
		{">= 2015 and <= 2018", "2016", true},
		{">= 2015 and <= 2018", "2019", false},
		{"== p1y or == p2y", "p2y", true},
		{"not == p1y", "p3y", true},
		{"not == p1y", "p1y", false},
	}

	for _, tt := range tests {
		expr := mustFilter(t, tt.query)
		if got := expr.match(tt.value); got != tt.matches {
			t.Errorf("filter %q on %q = %v, want %v", tt.query, tt.value, got, tt.matches)
		}
	}
}

func TestFilterIsCaseFolded(t *testing.T) {
	// The whole filter expression folds, connectives included.
	expr := mustFilter(t, "== P1Y AND != P2Y")
	if !expr.match("p1y") {
		t.Error("folded filter should match p1y")
	}
	if expr.match("p2y") {
		t.Error("folded filter should not match p2y")
	}
}

func TestFilterInvalidQueries(t *testing.T) {
	for _, q := range []string{
		"",
		"p1y",           // bare term: comparisons need an operator
		"==",            // operator with no value
		"== p1y ==",     // dangling operator
		"== == p1y",     // operator as a value
		"== p1y and",    // dangling connective
		"and == p1y",    // leading connective
		"== p1y != p2y", // two comparisons need a connective
	} {
		if _, err := CompileFilter(q); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("CompileFilter(%q): err = %v, want ErrInvalidQuery", q, err)
		}
	}
}
