// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import "fmt"

// FormatDate returns cd in the canonical rendering of the specified
// pattern. Datetime patterns require time fields that a CalendarDate
// cannot supply and fail with ErrUnsupportedPattern.
func FormatDate(cd CalendarDate, pattern Pattern) (string, error) {
	if !pattern.IsValid() {
		return "", fmt.Errorf("%v: %w", pattern, ErrUnsupportedPattern)
	}
	if pattern.HasTime() {
		return "", fmt.Errorf("%v requires time fields: %w", pattern, ErrUnsupportedPattern)
	}
	return pattern.render(fields{year: cd.Year(), month: int(cd.Month()), day: cd.Day()}), nil
}

// FormatDateTime returns cdt in the canonical rendering of the specified
// pattern. A date only pattern renders the date component and drops the
// time of day. A pattern with an offset field fails with
// ErrUnsupportedPattern when the value carries no offset marker.
func FormatDateTime(cdt CalendarDateTime, pattern Pattern) (string, error) {
	if !pattern.IsValid() {
		return "", fmt.Errorf("%v: %w", pattern, ErrUnsupportedPattern)
	}
	f := fields{
		year:        cdt.Year(),
		month:       int(cdt.Month()),
		day:         cdt.Day(),
		hour:        cdt.Hour(),
		minute:      cdt.Minute(),
		second:      cdt.Second(),
		millisecond: cdt.Millisecond(),
	}
	if patternSpecs[pattern].hasOffset {
		off, ok := cdt.Offset()
		if !ok {
			return "", fmt.Errorf("%v requires an offset and the value has none: %w", pattern, ErrUnsupportedPattern)
		}
		f.offsetMinutes, f.hasOffset = off, true
	}
	return pattern.render(f), nil
}
