// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt_test

import (
	"errors"
	"testing"

	"cloudeng.io/datefmt"
)

func TestFormatDate(t *testing.T) {
	cd := newCalendarDate(2024, 1, 2)
	for _, tc := range []struct {
		pattern datefmt.Pattern
		want    string
	}{
		{datefmt.ISODate, "2024-01-02"},
		{datefmt.USDate, "01/02/2024"},
		{datefmt.EUDate, "02/01/2024"},
		{datefmt.CompactDate, "20240102"},
	} {
		got, err := datefmt.FormatDate(cd, tc.pattern)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.pattern, err)
			continue
		}
		if got, want := got, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.pattern, got, want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	cdt := newCalendarDateTime(2024, 1, 2, 15, 4, 5, 123)
	for _, tc := range []struct {
		val     datefmt.CalendarDateTime
		pattern datefmt.Pattern
		want    string
	}{
		{cdt, datefmt.ISODateTime, "2024-01-02T15:04:05"},
		{cdt, datefmt.ISODateTimeMS, "2024-01-02T15:04:05.123"},
		{cdt.WithOffset(0), datefmt.ISODateTimeOffset, "2024-01-02T15:04:05.123Z"},
		{cdt.WithOffset(330), datefmt.ISODateTimeOffset, "2024-01-02T15:04:05.123+05:30"},
		{cdt.WithOffset(-480), datefmt.ISODateTimeOffset, "2024-01-02T15:04:05.123-08:00"},
		{cdt, datefmt.USDateTime, "01/02/2024 15:04:05"},
		{cdt, datefmt.EUDateTime, "02/01/2024 15:04:05"},
		{cdt, datefmt.CompactDateTime, "20240102150405"},
		{cdt, datefmt.CompactDateTimeMS, "20240102150405123"},
		// A date only pattern renders the date and drops the time of day.
		{cdt, datefmt.ISODate, "2024-01-02"},
		{cdt, datefmt.CompactDate, "20240102"},
	} {
		got, err := datefmt.FormatDateTime(tc.val, tc.pattern)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.pattern, err)
			continue
		}
		if got, want := got, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.pattern, got, want)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	cd := newCalendarDate(2024, 1, 2)
	if _, err := datefmt.FormatDate(cd, datefmt.ISODateTime); !errors.Is(err, datefmt.ErrUnsupportedPattern) {
		t.Errorf("got %v, want %v", err, datefmt.ErrUnsupportedPattern)
	}
	if _, err := datefmt.FormatDate(cd, datefmt.PatternUnspecified); !errors.Is(err, datefmt.ErrUnsupportedPattern) {
		t.Errorf("got %v, want %v", err, datefmt.ErrUnsupportedPattern)
	}
	// An offset pattern needs a value that carries an offset marker.
	cdt := newCalendarDateTime(2024, 1, 2, 15, 4, 5, 0)
	if _, err := datefmt.FormatDateTime(cdt, datefmt.ISODateTimeOffset); !errors.Is(err, datefmt.ErrUnsupportedPattern) {
		t.Errorf("got %v, want %v", err, datefmt.ErrUnsupportedPattern)
	}
}

// Formatting a value and parsing the result against the same pattern
// yields the original value, for every pattern in the catalog, provided
// the value only populates fields that the pattern can carry.
func TestFormatParseRoundTrip(t *testing.T) {
	for _, p := range datefmt.Patterns() {
		if !p.HasTime() {
			want := newCalendarDate(2024, 3, 4)
			text, err := datefmt.FormatDate(want, p)
			if err != nil {
				t.Errorf("%v: %v", p, err)
				continue
			}
			got, err := datefmt.ParseDateAs(text, p)
			if err != nil {
				t.Errorf("%v: %v: %v", p, text, err)
				continue
			}
			if got != want {
				t.Errorf("%v: got %v, want %v", p, got, want)
			}
			continue
		}
		want := newCalendarDateTime(2024, 3, 4, 15, 6, 7, 0)
		switch p {
		case datefmt.ISODateTimeMS, datefmt.CompactDateTimeMS:
			want = newCalendarDateTime(2024, 3, 4, 15, 6, 7, 89)
		case datefmt.ISODateTimeOffset:
			want = newCalendarDateTime(2024, 3, 4, 15, 6, 7, 89).WithOffset(-330)
		}
		text, err := datefmt.FormatDateTime(want, p)
		if err != nil {
			t.Errorf("%v: %v", p, err)
			continue
		}
		got, err := datefmt.ParseDateTimeAs(text, p)
		if err != nil {
			t.Errorf("%v: %v: %v", p, text, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", p, got, want)
		}
		gotOff, gotOK := got.Offset()
		wantOff, wantOK := want.Offset()
		if gotOff != wantOff || gotOK != wantOK {
			t.Errorf("%v: got offset %v/%v, want %v/%v", p, gotOff, gotOK, wantOff, wantOK)
		}
	}
}
