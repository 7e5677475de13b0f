// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt_test

import (
	"errors"
	"testing"

	"cloudeng.io/datefmt"
)

func TestDetect(t *testing.T) {
	for _, tc := range []struct {
		val     string
		pattern datefmt.Pattern
	}{
		{"2024-01-02", datefmt.ISODate},
		{"2024-01-02T15:04:05", datefmt.ISODateTime},
		{"2024-01-02T15:04:05.123", datefmt.ISODateTimeMS},
		{"2024-01-02T15:04:05Z", datefmt.ISODateTimeOffset},
		{"2024-01-02T15:04:05.123Z", datefmt.ISODateTimeOffset},
		{"2024-01-02T15:04:05+05:30", datefmt.ISODateTimeOffset},
		{"2024-01-02T15:04:05.123-08:00", datefmt.ISODateTimeOffset},
		{"20240102", datefmt.CompactDate},
		{"20240102150405", datefmt.CompactDateTime},
		{"20240102150405123", datefmt.CompactDateTimeMS},
		{"01/02/2024", datefmt.USDate},
		{"1/2/2024", datefmt.USDate},
		{"01-02-2024", datefmt.USDate},
		{"01/02/2024 15:04:05", datefmt.USDateTime},
		// A first field that cannot be a month forces the day first form.
		{"13/01/2024", datefmt.EUDate},
		{"13/01/2024 15:04:05", datefmt.EUDateTime},
		{"31-12-2024", datefmt.EUDate},
	} {
		got, err := datefmt.Detect(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := got, tc.pattern; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
}

func TestDetectLocale(t *testing.T) {
	for _, tc := range []struct {
		val     string
		locale  datefmt.Locale
		pattern datefmt.Pattern
	}{
		{"01/02/2024", datefmt.LocaleAuto, datefmt.USDate},
		{"01/02/2024", datefmt.LocaleUS, datefmt.USDate},
		{"01/02/2024", datefmt.LocaleEU, datefmt.EUDate},
		{"13/01/2024", datefmt.LocaleAuto, datefmt.EUDate},
		{"13/01/2024", datefmt.LocaleEU, datefmt.EUDate},
		{"01/02/2024 10:00:00", datefmt.LocaleEU, datefmt.EUDateTime},
		// The locale only affects the ambiguous forms.
		{"2024-01-02", datefmt.LocaleEU, datefmt.ISODate},
		{"20240102", datefmt.LocaleEU, datefmt.CompactDate},
	} {
		got, err := datefmt.DetectIn(tc.val, tc.locale)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := got, tc.pattern; got != want {
			t.Errorf("%v (%v): got %v, want %v", tc.val, tc.locale, got, want)
		}
	}
}

func TestDetectErrors(t *testing.T) {
	_, err := datefmt.Detect("")
	if !errors.Is(err, datefmt.ErrEmptyInput) {
		t.Errorf("got %v, want %v", err, datefmt.ErrEmptyInput)
	}
	for _, val := range []string{
		"not-a-date",
		"2024",
		"202401021",        // 9 digits, no compact form
		"2024010215040512", // 16 digits
		"01/02",
		"01/02/24",
		"2024/01/02",
		"Jan 2 2024",
		"2024-01-02 15:04:05", // ISO date with a space separated time
	} {
		_, err := datefmt.Detect(val)
		if !errors.Is(err, datefmt.ErrUnrecognizedFormat) {
			t.Errorf("%v: got %v, want %v", val, err, datefmt.ErrUnrecognizedFormat)
		}
	}
}

// Detection is deterministic and independent of the order in which values
// are presented: every canonical rendering of every pattern detects as the
// pattern that produced it, modulo the documented US default for ambiguous
// slash/dash forms.
func TestDetectStability(t *testing.T) {
	cd := newCalendarDate(2024, 3, 4)
	cdt := newCalendarDateTime(2024, 3, 4, 15, 6, 7, 89).WithOffset(330)
	for _, p := range datefmt.Patterns() {
		var val string
		var err error
		if p.HasTime() {
			val, err = datefmt.FormatDateTime(cdt, p)
		} else {
			val, err = datefmt.FormatDate(cd, p)
		}
		if err != nil {
			t.Errorf("%v: %v", p, err)
			continue
		}
		want := p
		if p == datefmt.EUDate {
			want = datefmt.USDate // 04/03/2024 is a legal US date
		}
		if p == datefmt.EUDateTime {
			want = datefmt.USDateTime
		}
		for i := 0; i < 3; i++ {
			got, err := datefmt.Detect(val)
			if err != nil {
				t.Errorf("%v: %v: %v", p, val, err)
				break
			}
			if got != want {
				t.Errorf("%v: %v: got %v, want %v", p, val, got, want)
			}
		}
	}
}

func TestLocaleFlag(t *testing.T) {
	for _, tc := range []struct {
		val    string
		locale datefmt.Locale
	}{
		{"auto", datefmt.LocaleAuto},
		{"", datefmt.LocaleAuto},
		{"us", datefmt.LocaleUS},
		{"US", datefmt.LocaleUS},
		{"eu", datefmt.LocaleEU},
	} {
		var l datefmt.Locale
		if err := l.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := l, tc.locale; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	var l datefmt.Locale
	if err := l.Parse("fr"); err == nil {
		t.Errorf("failed to return an error")
	}
}
