// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt_test

import (
	"reflect"
	"testing"
	"time"

	"cloudeng.io/datefmt"
)

func TestLeapAndDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2023, false},
		{2024, true},
		{1900, false},
		{2000, true},
		{2100, false},
	} {
		if got, want := datefmt.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := datefmt.DaysInFeb(2024), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datefmt.DaysInFeb(2023), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	days := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m, want := range days {
		if got := datefmt.DaysInMonth(2023, datefmt.Month(m+1)); got != want {
			t.Errorf("month %v: got %v, want %v", m+1, got, want)
		}
	}
	if got, want := datefmt.DaysInMonth(2024, 2), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarDateFields(t *testing.T) {
	cd := newCalendarDate(2024, 2, 29)
	if got, want := cd.Year(), 2024; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Month(), datefmt.Month(2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.Day(), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cd.String(), "2024-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cd.IsValid() {
		t.Errorf("%v: should be valid", cd)
	}
	for _, invalid := range []datefmt.CalendarDate{
		newCalendarDate(2023, 2, 29),
		newCalendarDate(2024, 13, 1),
		newCalendarDate(2024, 0, 1),
		newCalendarDate(2024, 4, 31),
		newCalendarDate(2024, 1, 0),
	} {
		if invalid.IsValid() {
			t.Errorf("%v: should be invalid", invalid)
		}
	}
}

func TestCalendarDateOrder(t *testing.T) {
	a, b := newCalendarDate(2024, 1, 31), newCalendarDate(2024, 2, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("%v should be after %v", b, a)
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Errorf("equality failed for %v, %v", a, b)
	}
}

func TestWeekdayAndYearDay(t *testing.T) {
	for _, tc := range []struct {
		date    datefmt.CalendarDate
		weekday time.Weekday
		yearDay int
	}{
		{newCalendarDate(2024, 1, 1), time.Monday, 1},
		{newCalendarDate(2024, 2, 29), time.Thursday, 31 + 29},
		{newCalendarDate(2024, 12, 31), time.Tuesday, 366},
		{newCalendarDate(2023, 12, 31), time.Sunday, 365},
		{newCalendarDate(2024, 12, 16), time.Monday, 351},
	} {
		if got, want := tc.date.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
		if got, want := tc.date.YearDay(), tc.yearDay; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
	}
}

func TestTomorrowYesterday(t *testing.T) {
	for _, tc := range []struct {
		date, tomorrow datefmt.CalendarDate
	}{
		{newCalendarDate(2024, 1, 1), newCalendarDate(2024, 1, 2)},
		{newCalendarDate(2024, 1, 31), newCalendarDate(2024, 2, 1)},
		{newCalendarDate(2024, 2, 28), newCalendarDate(2024, 2, 29)},
		{newCalendarDate(2023, 2, 28), newCalendarDate(2023, 3, 1)},
		{newCalendarDate(2024, 12, 31), newCalendarDate(2025, 1, 1)},
	} {
		if got, want := tc.date.Tomorrow(), tc.tomorrow; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
		if got, want := tc.tomorrow.Yesterday(), tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.tomorrow, got, want)
		}
	}
}

func TestCalendarDateList(t *testing.T) {
	var cdl datefmt.CalendarDateList
	if err := cdl.Parse("2024-01-02, 02/29/2024,20241104"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	want := datefmt.CalendarDateList{
		newCalendarDate(2024, 1, 2),
		newCalendarDate(2024, 2, 29),
		newCalendarDate(2024, 11, 4),
	}
	if got := cdl; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cdl.Contains(newCalendarDate(2024, 2, 29)) {
		t.Errorf("missing date")
	}
	if cdl.Contains(newCalendarDate(2024, 2, 28)) {
		t.Errorf("unexpected date")
	}
	if err := cdl.Parse(""); err == nil {
		t.Errorf("failed to return an error")
	}
	if err := cdl.Parse("2024-01-02,junk"); err == nil {
		t.Errorf("failed to return an error")
	}
}
