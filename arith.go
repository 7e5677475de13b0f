// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// Unit represents a unit of date/time arithmetic, ordered from finest to
// coarsest granularity. Millis through Weeks have fixed lengths and convert
// exactly between each other; Months and Years have no fixed length and
// are applied as calendar field deltas.
type Unit int

const (
	Millis Unit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
	millisPerWeek   = 7 * millisPerDay
)

var unitNames = []string{"millis", "seconds", "minutes", "hours", "days", "weeks", "months", "years"}

// IsValid returns true if u is one of the defined units.
func (u Unit) IsValid() bool {
	return u >= Millis && u <= Years
}

// IsCalendar returns true for the units with no fixed length, Months and
// Years.
func (u Unit) IsCalendar() bool {
	return u == Months || u == Years
}

// millis returns the fixed length of the unit in milliseconds, or zero for
// the calendar units.
func (u Unit) millis() int64 {
	switch u {
	case Millis:
		return 1
	case Seconds:
		return millisPerSecond
	case Minutes:
		return millisPerMinute
	case Hours:
		return millisPerHour
	case Days:
		return millisPerDay
	case Weeks:
		return millisPerWeek
	}
	return 0
}

func (u Unit) String() string {
	if !u.IsValid() {
		return fmt.Sprintf("unit(%d)", int(u))
	}
	return unitNames[u]
}

// Parse sets u from a unit name such as 'days' or 'day'. It allows a Unit
// to be used directly as a flag value.
func (u *Unit) Parse(val string) error {
	lc := strings.ToLower(val)
	for i, name := range unitNames {
		if lc == name || lc+"s" == name {
			*u = Unit(i)
			return nil
		}
	}
	return fmt.Errorf("invalid unit: %q, expected one of %s", val, strings.Join(unitNames, ", "))
}

// Add returns the date with the signed amount of the unit added. Month and
// year addition clamps the day of the month to the last valid day of the
// target month, so Jan 31 plus one month is Feb 29 in a leap year and
// Feb 28 otherwise. Day and week addition is exact. Sub day units operate
// on the start of the day and the result is truncated back to a date, so
// adding -1 hour to a date yields the previous day.
func (cd CalendarDate) Add(amount int, unit Unit) CalendarDate {
	switch unit {
	case Months:
		return cd.addMonths(amount)
	case Years:
		return cd.addMonths(12 * amount)
	case Days:
		return calendarDateFromTime(cd.StartOfDay().Time().AddDate(0, 0, amount))
	case Weeks:
		return calendarDateFromTime(cd.StartOfDay().Time().AddDate(0, 0, 7*amount))
	default:
		return cd.StartOfDay().Add(amount, unit).Date()
	}
}

// Sub is Add with the amount negated.
func (cd CalendarDate) Sub(amount int, unit Unit) CalendarDate {
	return cd.Add(-amount, unit)
}

func (cd CalendarDate) addMonths(amount int) CalendarDate {
	months := cd.Year()*12 + int(cd.Month()) - 1 + amount
	year, month := months/12, Month(months%12+1)
	day := cd.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return NewCalendarDate(year, month, day)
}

// Add returns the value with the signed amount of the unit added. Month
// and year addition clamps the day of the month as for CalendarDate.Add
// and leaves the time of day untouched. All other units are exact, with
// overflow carrying into coarser fields: adding 90 minutes to 23:30 rolls
// into the next day. Any offset marker is carried through unchanged.
func (cdt CalendarDateTime) Add(amount int, unit Unit) CalendarDateTime {
	switch unit {
	case Months, Years:
		cdt.date = cdt.date.Add(amount, unit)
		return cdt
	case Days:
		return cdt.withWallClock(cdt.Time().AddDate(0, 0, amount))
	case Weeks:
		return cdt.withWallClock(cdt.Time().AddDate(0, 0, 7*amount))
	default:
		return cdt.withWallClock(cdt.Time().Add(time.Duration(amount) * time.Duration(unit.millis()) * time.Millisecond))
	}
}

// Sub is Add with the amount negated.
func (cdt CalendarDateTime) Sub(amount int, unit Unit) CalendarDateTime {
	return cdt.Add(-amount, unit)
}

// DateBetween returns the signed number of whole units separating a and b,
// truncated toward zero: 1.9 days measured in Days yields 1. The count is
// positive when b is after a.
func DateBetween(a, b CalendarDate, unit Unit) (int64, error) {
	return DateTimeBetween(a.StartOfDay(), b.StartOfDay(), unit)
}

// DateTimeBetween returns the signed number of whole units separating a
// and b, truncated toward zero. For Months and Years the count is the
// largest n for which a plus n units, with day of month clamping, does not
// pass b.
func DateTimeBetween(a, b CalendarDateTime, unit Unit) (int64, error) {
	if !unit.IsValid() {
		return 0, fmt.Errorf("%v: invalid unit", unit)
	}
	if unit.IsCalendar() {
		months := wholeMonthsBetween(a, b)
		if unit == Years {
			return months / 12, nil
		}
		return months, nil
	}
	return (b.epochMillis() - a.epochMillis()) / unit.millis(), nil
}

func wholeMonthsBetween(a, b CalendarDateTime) int64 {
	months := int64(b.Year()-a.Year())*12 + int64(b.Month()) - int64(a.Month())
	if months > 0 && a.Add(int(months), Months).After(b) {
		months--
	}
	if months < 0 && a.Add(int(months), Months).Before(b) {
		months++
	}
	return months
}
