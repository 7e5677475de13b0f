// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"strings"
)

// Locale selects how the day and month fields of slash/dash separated
// dates are ordered when the shape alone cannot decide, since 01/02/2006
// is month first in the US and day first in the EU. The zero value,
// LocaleAuto, applies a heuristic: a first field greater than 12 cannot be
// a month and forces the day first form, otherwise US ordering is assumed.
type Locale int

const (
	// LocaleAuto resolves the ambiguity heuristically, defaulting to US
	// ordering.
	LocaleAuto Locale = iota
	// LocaleUS forces month first ordering.
	LocaleUS
	// LocaleEU forces day first ordering.
	LocaleEU
)

func (l Locale) String() string {
	switch l {
	case LocaleUS:
		return "us"
	case LocaleEU:
		return "eu"
	default:
		return "auto"
	}
}

// Parse sets l from one of 'auto', 'us' or 'eu'. It allows a Locale to be
// used directly as a flag value.
func (l *Locale) Parse(val string) error {
	switch strings.ToLower(val) {
	case "", "auto":
		*l = LocaleAuto
	case "us":
		*l = LocaleUS
	case "eu":
		*l = LocaleEU
	default:
		return fmt.Errorf("invalid locale: %q, expected auto, us or eu", val)
	}
	return nil
}

// The detection tiers, tried in order with no backtracking across tiers.
// ISO layouts are tried first since their fixed width, '-'/':'/'T'
// separated grammars cannot collide with the US/EU or compact forms, and
// within the family the more qualified layouts are tried first so that an
// offset or millisecond suffix is never shadowed by a looser match.
// Compact forms are pure digit strings and are tried before the slash/dash
// forms, which would reject them for lack of separators.
var isoTier = []Pattern{ISODateTimeOffset, ISODateTimeMS, ISODateTime, ISODate}
var compactTier = []Pattern{CompactDateTimeMS, CompactDateTime, CompactDate}

// Detect classifies val as one of the patterns in the catalog, returning
// the single best match. Detection is deterministic: a given input always
// yields the same pattern. Ambiguous slash/dash dates are resolved as for
// LocaleAuto; use DetectIn to supply a locale. Detect fails with
// ErrEmptyInput for empty input and ErrUnrecognizedFormat when no pattern
// matches.
func Detect(val string) (Pattern, error) {
	return DetectIn(val, LocaleAuto)
}

// DetectIn is like Detect but resolves the day/month ordering of
// slash/dash separated dates using the supplied locale.
func DetectIn(val string, locale Locale) (Pattern, error) {
	if len(val) == 0 {
		return PatternUnspecified, fmt.Errorf("cannot detect pattern: %w", ErrEmptyInput)
	}
	for _, p := range isoTier {
		if p.Match(val) {
			return p, nil
		}
	}
	for _, p := range compactTier {
		if p.Match(val) {
			return p, nil
		}
	}
	if p, ok := detectSeparated(val, locale); ok {
		return p, nil
	}
	return PatternUnspecified, fmt.Errorf("%q: %w", val, ErrUnrecognizedFormat)
}

// detectSeparated handles the slash/dash forms. US and EU shapes are
// structurally identical so the choice is made by, in order: the supplied
// locale, the first-field heuristic, and finally the US default.
func detectSeparated(val string, locale Locale) (Pattern, bool) {
	datePattern, dateTimePattern := USDate, USDateTime
	m := patternSpecs[USDate].re.FindStringSubmatch(val)
	if m == nil {
		m = patternSpecs[USDateTime].re.FindStringSubmatch(val)
		datePattern = dateTimePattern
	}
	if m == nil {
		return PatternUnspecified, false
	}
	if locale == LocaleEU || (locale == LocaleAuto && atoi(m[1]) > 12) {
		if datePattern == USDate {
			return EUDate, true
		}
		return EUDateTime, true
	}
	return datePattern, true
}
