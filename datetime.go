// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"time"
)

// Offsets are bounded as for RFC 3339.
const (
	minOffsetMinutes = -18 * 60
	maxOffsetMinutes = 18 * 60
)

// CalendarDateTime represents a date with a time of day at millisecond
// resolution and an optional offset marker in signed minutes east of UTC.
// The offset is a marker only: values are compared field by field as
// written and are never normalized to a common zone, and arithmetic
// operates on the written fields, carrying the marker through unchanged.
// CalendarDateTime values are immutable.
type CalendarDateTime struct {
	date   CalendarDate
	tod    TimeOfDay
	off    int16
	hasOff bool
}

// NewCalendarDateTime returns a CalendarDateTime for the specified fields
// with no offset marker. The fields are not validated, use IsValid to
// check them or ParseDateTime to parse and validate a string.
func NewCalendarDateTime(year int, month Month, day, hour, minute, second, millisecond int) CalendarDateTime {
	return CalendarDateTime{
		date: NewCalendarDate(year, month, day),
		tod:  NewTimeOfDay(hour, minute, second, millisecond),
	}
}

// AtTime returns the CalendarDateTime for the date at the specified time
// of day, with no offset marker.
func (cd CalendarDate) AtTime(tod TimeOfDay) CalendarDateTime {
	return CalendarDateTime{date: cd, tod: tod}
}

// StartOfDay returns the CalendarDateTime for the date at 00:00:00.000.
func (cd CalendarDate) StartOfDay() CalendarDateTime {
	return cd.AtTime(NewTimeOfDay(0, 0, 0, 0))
}

// EndOfDay returns the CalendarDateTime for the date at 23:59:59.999.
func (cd CalendarDate) EndOfDay() CalendarDateTime {
	return cd.AtTime(NewTimeOfDay(23, 59, 59, 999))
}

// WithOffset returns a copy of cdt carrying an offset marker of the
// specified signed minutes east of UTC.
func (cdt CalendarDateTime) WithOffset(minutes int) CalendarDateTime {
	cdt.off, cdt.hasOff = int16(minutes), true // #nosec G115
	return cdt
}

// WithoutOffset returns a copy of cdt with no offset marker.
func (cdt CalendarDateTime) WithoutOffset() CalendarDateTime {
	cdt.off, cdt.hasOff = 0, false
	return cdt
}

// Offset returns the offset marker in signed minutes east of UTC and true,
// or zero and false if the value carries no offset.
func (cdt CalendarDateTime) Offset() (int, bool) {
	return int(cdt.off), cdt.hasOff
}

// Date returns the date component.
func (cdt CalendarDateTime) Date() CalendarDate {
	return cdt.date
}

// TimeOfDay returns the time of day component.
func (cdt CalendarDateTime) TimeOfDay() TimeOfDay {
	return cdt.tod
}

// Year returns the year.
func (cdt CalendarDateTime) Year() int { return cdt.date.Year() }

// Month returns the month.
func (cdt CalendarDateTime) Month() Month { return cdt.date.Month() }

// Day returns the day of the month.
func (cdt CalendarDateTime) Day() int { return cdt.date.Day() }

// Hour returns the hour, 0-23.
func (cdt CalendarDateTime) Hour() int { return cdt.tod.Hour() }

// Minute returns the minute, 0-59.
func (cdt CalendarDateTime) Minute() int { return cdt.tod.Minute() }

// Second returns the second, 0-59.
func (cdt CalendarDateTime) Second() int { return cdt.tod.Second() }

// Millisecond returns the millisecond, 0-999.
func (cdt CalendarDateTime) Millisecond() int { return cdt.tod.Millisecond() }

// Weekday returns the day of the week.
func (cdt CalendarDateTime) Weekday() time.Weekday { return cdt.date.Weekday() }

// IsValid returns true if the date, the time of day and any offset marker
// are all within their valid ranges.
func (cdt CalendarDateTime) IsValid() bool {
	if cdt.hasOff && (cdt.off < minOffsetMinutes || cdt.off > maxOffsetMinutes) {
		return false
	}
	return cdt.date.IsValid() && cdt.tod.IsValid()
}

// Before returns true if cdt is before other in the field by field order
// (year, month, day, hour, minute, second, millisecond). Offset markers do
// not participate: values are compared as written.
func (cdt CalendarDateTime) Before(other CalendarDateTime) bool {
	if cdt.date != other.date {
		return cdt.date < other.date
	}
	return cdt.tod < other.tod
}

// After returns true if cdt is after other, comparing as for Before.
func (cdt CalendarDateTime) After(other CalendarDateTime) bool {
	return other.Before(cdt)
}

// Equal returns true if all of the written date and time fields are equal,
// ignoring offset markers.
func (cdt CalendarDateTime) Equal(other CalendarDateTime) bool {
	return cdt.date == other.date && cdt.tod == other.tod
}

// Parse parses a datetime in any of the supported patterns, detecting the
// pattern as per Detect.
func (cdt *CalendarDateTime) Parse(val string) error {
	d, err := ParseDateTime(val)
	if err != nil {
		return err
	}
	*cdt = d
	return nil
}

// String returns the value in the canonical ISO_DATETIME_MS rendering,
// with the offset marker appended when present.
func (cdt CalendarDateTime) String() string {
	s := fmt.Sprintf("%sT%s", cdt.date, cdt.tod)
	if cdt.hasOff {
		s += formatOffset(int(cdt.off))
	}
	return s
}

// Time returns the wall clock fields as a time.Time in UTC, ignoring any
// offset marker. It is used internally for field-exact arithmetic.
func (cdt CalendarDateTime) Time() time.Time {
	return time.Date(cdt.Year(), time.Month(cdt.Month()), cdt.Day(),
		cdt.Hour(), cdt.Minute(), cdt.Second(), cdt.Millisecond()*int(time.Millisecond), time.UTC)
}

// epochMillis returns the written fields as milliseconds since the start
// of Jan 1 of year 1.
func (cdt CalendarDateTime) epochMillis() int64 {
	return cdt.date.epochDays()*millisPerDay + cdt.tod.millis()
}

// withWallClock returns a copy of cdt with the date and time fields taken
// from t, preserving cdt's offset marker.
func (cdt CalendarDateTime) withWallClock(t time.Time) CalendarDateTime {
	cdt.date = calendarDateFromTime(t)
	cdt.tod = NewTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
	return cdt
}
