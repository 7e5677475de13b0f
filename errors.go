// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import "errors"

// The error values returned by this package. They classify every failure
// mode and are matched with errors.Is; returned errors wrap one of these
// with the offending input. Malformed input is always classified, never
// silently defaulted.
var (
	// ErrEmptyInput indicates an empty string was supplied where a date or
	// datetime was expected.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnrecognizedFormat indicates that no pattern in the catalog
	// matches the shape of the input.
	ErrUnrecognizedFormat = errors.New("unrecognized date/time format")

	// ErrStructuralMismatch indicates that the input does not match the
	// shape of an explicitly supplied pattern.
	ErrStructuralMismatch = errors.New("input does not match pattern")

	// ErrInvalidCalendarValue indicates that the input matched a pattern's
	// shape but one or more fields are outside their calendar ranges, such
	// as month 13 or Feb 30.
	ErrInvalidCalendarValue = errors.New("invalid calendar value")

	// ErrUnsupportedPattern indicates that a pattern requires fields that
	// the value (or the requested operation) cannot supply.
	ErrUnsupportedPattern = errors.New("pattern cannot represent value")

	// ErrUnanchoredCalendarDuration indicates that a unit conversion was
	// requested on a Duration with a month or year component, which has no
	// fixed length without an anchor instant.
	ErrUnanchoredCalendarDuration = errors.New("calendar duration requires an anchor instant")
)
