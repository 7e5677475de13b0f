// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import "fmt"

// ParseDate parses val as a CalendarDate, detecting its pattern as per
// Detect. A datetime pattern is never silently downgraded to its date
// portion: if the detected pattern carries time fields the parse fails
// with ErrUnsupportedPattern.
func ParseDate(val string) (CalendarDate, error) {
	return ParseDateIn(val, LocaleAuto)
}

// ParseDateIn is like ParseDate but resolves ambiguous slash/dash forms
// using the supplied locale, as per DetectIn.
func ParseDateIn(val string, locale Locale) (CalendarDate, error) {
	p, err := DetectIn(val, locale)
	if err != nil {
		return 0, err
	}
	return parseDate(val, p)
}

// ParseDateAs parses val against an explicitly supplied pattern. A shape
// mismatch fails with ErrStructuralMismatch, as opposed to the
// ErrUnrecognizedFormat returned when detection fails.
func ParseDateAs(val string, pattern Pattern) (CalendarDate, error) {
	return parseDate(val, pattern)
}

func parseDate(val string, pattern Pattern) (CalendarDate, error) {
	if pattern.HasTime() {
		return 0, fmt.Errorf("%v is a datetime pattern, use ParseDateTime: %w", pattern, ErrUnsupportedPattern)
	}
	f, err := parseFields(val, pattern)
	if err != nil {
		return 0, err
	}
	return NewCalendarDate(f.year, Month(f.month), f.day), nil
}

// ParseDateTime parses val as a CalendarDateTime, detecting its pattern as
// per Detect. A date only pattern yields the start of the day,
// 00:00:00.000 with no offset marker.
func ParseDateTime(val string) (CalendarDateTime, error) {
	return ParseDateTimeIn(val, LocaleAuto)
}

// ParseDateTimeIn is like ParseDateTime but resolves ambiguous slash/dash
// forms using the supplied locale, as per DetectIn.
func ParseDateTimeIn(val string, locale Locale) (CalendarDateTime, error) {
	p, err := DetectIn(val, locale)
	if err != nil {
		return CalendarDateTime{}, err
	}
	return parseDateTime(val, p)
}

// ParseDateTimeAs parses val against an explicitly supplied pattern. A
// shape mismatch fails with ErrStructuralMismatch.
func ParseDateTimeAs(val string, pattern Pattern) (CalendarDateTime, error) {
	return parseDateTime(val, pattern)
}

func parseDateTime(val string, pattern Pattern) (CalendarDateTime, error) {
	f, err := parseFields(val, pattern)
	if err != nil {
		return CalendarDateTime{}, err
	}
	cdt := NewCalendarDateTime(f.year, Month(f.month), f.day, f.hour, f.minute, f.second, f.millisecond)
	if f.hasOffset {
		cdt = cdt.WithOffset(f.offsetMinutes)
	}
	return cdt, nil
}

// parseFields matches val against the pattern's grammar, extracts the raw
// integer tokens and validates their calendar legality.
func parseFields(val string, pattern Pattern) (fields, error) {
	if len(val) == 0 {
		return fields{}, fmt.Errorf("cannot parse: %w", ErrEmptyInput)
	}
	if !pattern.IsValid() {
		return fields{}, fmt.Errorf("%v: %w", pattern, ErrUnsupportedPattern)
	}
	m := patternSpecs[pattern].re.FindStringSubmatch(val)
	if m == nil {
		// A detected pattern matched the recognizer by construction, so a
		// failure to match here can only arise for an explicit pattern.
		return fields{}, fmt.Errorf("%q does not match %v: %w", val, pattern, ErrStructuralMismatch)
	}
	f := pattern.extract(m)
	if err := f.validate(val); err != nil {
		return fields{}, err
	}
	return f, nil
}

func (f fields) validate(val string) error {
	if f.month < 1 || f.month > 12 {
		return fmt.Errorf("%q: month %d: %w", val, f.month, ErrInvalidCalendarValue)
	}
	if f.day < 1 || f.day > DaysInMonth(f.year, Month(f.month)) {
		return fmt.Errorf("%q: day %d of month %d: %w", val, f.day, f.month, ErrInvalidCalendarValue)
	}
	if f.hour > 23 {
		return fmt.Errorf("%q: hour %d: %w", val, f.hour, ErrInvalidCalendarValue)
	}
	if f.minute > 59 {
		return fmt.Errorf("%q: minute %d: %w", val, f.minute, ErrInvalidCalendarValue)
	}
	if f.second > 59 {
		return fmt.Errorf("%q: second %d: %w", val, f.second, ErrInvalidCalendarValue)
	}
	if f.hasOffset && (f.offsetMinutes < minOffsetMinutes || f.offsetMinutes > maxOffsetMinutes) {
		return fmt.Errorf("%q: offset %d minutes: %w", val, f.offsetMinutes, ErrInvalidCalendarValue)
	}
	return nil
}
