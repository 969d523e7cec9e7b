// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package timespan resolves a cited document's publication date from the
// citing document's date and the elapsed-time descriptor carried on the
// citation edge.
// Implements: prd001-ingestion (R2);
//
//	docs/ARCHITECTURE § Timespan Resolution.
package timespan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrMalformedDescriptor reports a descriptor that does not match the
// duration grammar: an optional leading "-", then "P", a mandatory year
// component, and optional month and day components (e.g. "P1Y",
// "-P2Y6M", "P0Y3M14D").
var ErrMalformedDescriptor = errors.New("malformed timespan descriptor")

// descriptorRe captures the sign, years, optional months, and optional
// days of an elapsed-time descriptor.
var descriptorRe = regexp.MustCompile(`^(-)?P(\d+)Y(?:(\d+)M)?(?:(\d+)D)?$`)

const dateFmt = "2006-01-02"

// Resolve derives the cited document's date from referenceDate (the
// citing document's date) and descriptor (the citation's elapsed time).
//
// referenceDate may carry year, year-month, or full precision; missing
// month and day default to 01 for the arithmetic, and the result is
// truncated back to the reference's precision.
//
// A descriptor without a leading "-" dates the cited document before the
// citing one, so its components are negated; a leading "-" applies them
// forward. Components are added years first, then months, then days,
// with calendar rollover (Jan 31 + 1 month = Mar 2/3, never clamped).
func Resolve(referenceDate, descriptor string) (string, error) {
	datelen := len(referenceDate)

	full := referenceDate
	switch datelen {
	case 4:
		full += "-01-01"
	case 7:
		full += "-01"
	case 10:
		// Already a full date.
	default:
		return "", fmt.Errorf("reference date %q: unsupported precision", referenceDate)
	}

	ref, err := time.Parse(dateFmt, full)
	if err != nil {
		return "", fmt.Errorf("reference date %q: %w", referenceDate, err)
	}

	years, months, days, err := parseDescriptor(descriptor)
	if err != nil {
		return "", err
	}

	derived := ref.AddDate(years, 0, 0).AddDate(0, months, 0).AddDate(0, 0, days)
	return derived.Format(dateFmt)[:datelen], nil
}

// parseDescriptor splits a descriptor into signed year, month, and day
// counts. The sign convention follows the citing→cited direction: no
// leading "-" means the cited document precedes the citing one, so all
// components come back negated.
func parseDescriptor(descriptor string) (years, months, days int, err error) {
	m := descriptorRe.FindStringSubmatch(descriptor)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedDescriptor, descriptor)
	}

	years, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedDescriptor, descriptor)
	}
	if m[3] != "" {
		if months, err = strconv.Atoi(m[3]); err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedDescriptor, descriptor)
		}
	}
	if m[4] != "" {
		if days, err = strconv.Atoi(m[4]); err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedDescriptor, descriptor)
		}
	}

	if m[1] == "" {
		years, months, days = -years, -months, -days
	}
	return years, months, days, nil
}
