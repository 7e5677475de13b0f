// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datefmt provides format detection, parsing, formatting and
// calendar arithmetic for date and date/time strings. The set of supported
// layouts is the closed catalog of Pattern values; Detect classifies a raw
// string into the single best matching Pattern without a format hint, and
// the parse functions produce immutable CalendarDate and CalendarDateTime
// values that all other operations consume. Every operation that looks like
// a mutation returns a new value; the package holds no state and is safe
// for concurrent use.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// Month as an int.
type Month time.Month

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// CalendarDate represents a date with a year, month and day. The year is
// stored in the top 16 bits, the month in the next 8 and the day in the low
// 8 bits so that integer comparison orders dates chronologically.
// CalendarDate values are immutable.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the specified year, month and
// day. The fields are not validated, use IsValid to check them or ParseDate
// to parse and validate a string.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(uint16(year))<<16 | uint32(uint8(month))<<8 | uint32(uint8(day))) // #nosec G115
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16 & 0xffff)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// IsValid returns true if the date is a legal calendar date, that is the
// month is in 1-12 and the day is valid for that month and year.
func (cd CalendarDate) IsValid() bool {
	m := cd.Month()
	if m < 1 || m > 12 {
		return false
	}
	d := cd.Day()
	return d >= 1 && d <= DaysInMonth(cd.Year(), m)
}

// Weekday returns the day of the week.
func (cd CalendarDate) Weekday() time.Weekday {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC).Weekday()
}

// YearDay returns the day of the year as 1-365, or 1-366 for leap years.
func (cd CalendarDate) YearDay() int {
	if IsLeap(cd.Year()) {
		return dayOfYearLeap[cd.Month()-1] + cd.Day()
	}
	return dayOfYear[cd.Month()-1] + cd.Day()
}

// epochDays returns the number of days since Jan 1 of year 1 (day zero).
// Day arithmetic uses epoch days rather than time.Duration since spans of
// thousands of years overflow time.Duration.
func (cd CalendarDate) epochDays() int64 {
	y := int64(cd.Year()) - 1
	return y*365 + y/4 - y/100 + y/400 + int64(cd.YearDay()) - 1
}

func calendarDateFromTime(t time.Time) CalendarDate {
	return NewCalendarDate(t.Year(), Month(t.Month()), t.Day())
}

// Tomorrow returns the date of the next day. Dec 31 wraps to Jan 1 of the
// following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 12 && day == 31 {
		return NewCalendarDate(year+1, 1, 1)
	}
	if day >= DaysInMonth(year, month) {
		return NewCalendarDate(year, month+1, 1)
	}
	return NewCalendarDate(year, month, day+1)
}

// Yesterday returns the date of the previous day. Jan 1 wraps to Dec 31 of
// the previous year.
func (cd CalendarDate) Yesterday() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 1 && day == 1 {
		return NewCalendarDate(year-1, 12, 31)
	}
	if day <= 1 {
		return NewCalendarDate(year, month-1, DaysInMonth(year, month-1))
	}
	return NewCalendarDate(year, month, day-1)
}

// Before returns true if cd is chronologically before other.
func (cd CalendarDate) Before(other CalendarDate) bool {
	return cd < other
}

// After returns true if cd is chronologically after other.
func (cd CalendarDate) After(other CalendarDate) bool {
	return cd > other
}

// Equal returns true if cd and other refer to the same day.
func (cd CalendarDate) Equal(other CalendarDate) bool {
	return cd == other
}

// Parse parses a date in any of the supported patterns, detecting the
// pattern as per Detect.
func (cd *CalendarDate) Parse(val string) error {
	d, err := ParseDate(val)
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

// String returns the date in the canonical ISO_DATE rendering.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

// CalendarDateList represents a list of CalendarDate values and can be used
// directly as a flag value.
type CalendarDateList []CalendarDate

// Parse a comma separated list of dates, each in any supported pattern.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("no dates specified: %w", ErrEmptyInput)
	}
	parts := strings.Split(val, ",")
	d := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var date CalendarDate
		if err := date.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		d = append(d, date)
	}
	*cdl = d
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if the list contains the specified date.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}
