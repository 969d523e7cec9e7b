// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package timespan

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		reference  string
		descriptor string
		want       string
	}{
		{"year back, full date", "2020-06-15", "P1Y", "2019-06-15"},
		{"year forward, full date", "2020-06-15", "-P1Y", "2021-06-15"},
		{"years months days back", "2020-06-15", "P2Y3M10D", "2018-03-05"},
		{"years months days forward", "2018-03-05", "-P2Y3M10D", "2020-06-15"},
		{"zero years, months only descriptor still needs Y", "2020-06-15", "P0Y6M", "2019-12-15"},
		{"year precision", "2020", "P3Y", "2017"},
		{"year precision forward", "2020", "-P3Y", "2023"},
		{"year-month precision", "2020-06", "P1Y2M", "2019-04"},
		{"year-month precision forward", "2019-04", "-P1Y2M", "2020-06"},
		{"day rollover across month", "2020-03-31", "P0Y1M", "2020-03-02"},
		{"day rollover across year", "2020-01-05", "P0Y0M10D", "2019-12-26"},
		{"large span", "2020-01-01", "P57Y", "1963-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.reference, tt.descriptor)
			if err != nil {
				t.Fatalf("Resolve(%q, %q): %v", tt.reference, tt.descriptor, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.reference, tt.descriptor, got, tt.want)
			}
		})
	}
}

func TestResolvePreservesPrecision(t *testing.T) {
	for _, ref := range []string{"2015", "2015-08", "2015-08-21"} {
		got, err := Resolve(ref, "P2Y1M")
		if err != nil {
			t.Fatalf("Resolve(%q): %v", ref, err)
		}
		if len(got) != len(ref) {
			t.Errorf("Resolve(%q) = %q: length %d, want %d", ref, got, len(got), len(ref))
		}
	}
}

func TestResolveRoundTrip(t *testing.T) {
	// Resolving a descriptor and then its inverted counterpart from the
	// derived date returns the original reference date, as long as the
	// intermediate dates avoid month-end rollover.
	tests := []struct {
		reference  string
		descriptor string
		inverted   string
	}{
		{"2020-06-15", "P1Y", "-P1Y"},
		{"2020-06-15", "P3Y4M", "-P3Y4M"},
		{"2020-06-15", "P0Y0M20D", "-P0Y0M20D"},
		{"2011-03", "P5Y6M", "-P5Y6M"},
		{"1999", "P10Y", "-P10Y"},
	}

	for _, tt := range tests {
		derived, err := Resolve(tt.reference, tt.descriptor)
		if err != nil {
			t.Fatalf("Resolve(%q, %q): %v", tt.reference, tt.descriptor, err)
		}
		back, err := Resolve(derived, tt.inverted)
		if err != nil {
			t.Fatalf("Resolve(%q, %q): %v", derived, tt.inverted, err)
		}
		if back != tt.reference {
			t.Errorf("round trip %q -> %q -> %q, want %q", tt.reference, derived, back, tt.reference)
		}
	}
}

func TestResolveMalformedDescriptor(t *testing.T) {
	for _, descriptor := range []string{
		"",
		"P",
		"1Y",
		"PY",
		"P1M",      // missing year component
		"P1Y2D3M",  // units out of order
		"P1W",      // unknown unit
		"P-1Y",     // sign inside the number
		"--P1Y",
		"P1Y ",
		"p1y", // descriptors are upper-case on the wire
	} {
		_, err := Resolve("2020-01-01", descriptor)
		if !errors.Is(err, ErrMalformedDescriptor) {
			t.Errorf("Resolve(%q): err = %v, want ErrMalformedDescriptor", descriptor, err)
		}
	}
}

func TestResolveBadReferenceDate(t *testing.T) {
	for _, ref := range []string{"20", "2020-13", "not-a-date", "2020-02-30"} {
		_, err := Resolve(ref, "P1Y")
		if err == nil {
			t.Errorf("Resolve(%q) should fail", ref)
		}
		if errors.Is(err, ErrMalformedDescriptor) {
			t.Errorf("Resolve(%q): reference date errors must not be descriptor errors", ref)
		}
	}
}
