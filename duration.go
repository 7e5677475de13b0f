// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"time"
)

// Duration represents an immutable signed span of time as an exact
// millisecond component plus an independent calendar month component.
// Months and years have no fixed length, so a Duration constructed from
// them records a calendar field delta that is only resolved to an exact
// span when anchored to a concrete instant. NewDuration sets exactly one
// of the components; both may be non-zero only by composition with Plus
// or Minus.
type Duration struct {
	millis int64
	months int64
}

// NewDuration returns the Duration for the signed amount of the unit.
// Months and Years populate the calendar component, all other units the
// millisecond component at their fixed ratios (a week is seven days).
func NewDuration(amount int64, unit Unit) Duration {
	switch unit {
	case Months:
		return Duration{months: amount}
	case Years:
		return Duration{months: 12 * amount}
	default:
		return Duration{millis: amount * unit.millis()}
	}
}

// DurationBetween returns the span from a to b. Since it measures two
// concrete instants the result is always millisecond resolution, never a
// calendar field delta. The span is positive when b is after a and the
// instants are compared as written, ignoring offset markers.
func DurationBetween(a, b CalendarDateTime) Duration {
	return Duration{millis: b.epochMillis() - a.epochMillis()}
}

// IsCalendar returns true if the duration carries a calendar month
// component and so cannot be converted to fixed units without anchoring.
func (d Duration) IsCalendar() bool {
	return d.months != 0
}

// IsZero returns true for the zero duration.
func (d Duration) IsZero() bool {
	return d.millis == 0 && d.months == 0
}

// Negate returns the duration with both components negated.
func (d Duration) Negate() Duration {
	return Duration{millis: -d.millis, months: -d.months}
}

// Plus returns the component-wise sum of d and other.
func (d Duration) Plus(other Duration) Duration {
	return Duration{millis: d.millis + other.millis, months: d.months + other.months}
}

// Minus returns the component-wise difference of d and other.
func (d Duration) Minus(other Duration) Duration {
	return d.Plus(other.Negate())
}

// AddTo returns the instant with the duration added: the calendar month
// component is applied first, with day of month clamping as for
// CalendarDateTime.Add, followed by the exact millisecond component.
func (d Duration) AddTo(cdt CalendarDateTime) CalendarDateTime {
	if d.months != 0 {
		cdt = cdt.Add(int(d.months), Months)
	}
	if d.millis != 0 {
		days, rem := d.millis/millisPerDay, d.millis%millisPerDay
		t := cdt.Time().AddDate(0, 0, int(days)).Add(time.Duration(rem) * time.Millisecond)
		cdt = cdt.withWallClock(t)
	}
	return cdt
}

// SubFrom returns the instant with the duration subtracted, as AddTo of
// the negated duration.
func (d Duration) SubFrom(cdt CalendarDateTime) CalendarDateTime {
	return d.Negate().AddTo(cdt)
}

// Anchor resolves the calendar month component against the concrete
// instant at, returning an exact millisecond resolution duration: the
// span from at to at plus d. A duration with no calendar component is
// returned unchanged.
func (d Duration) Anchor(at CalendarDateTime) Duration {
	if d.months == 0 {
		return d
	}
	return DurationBetween(at, d.AddTo(at))
}

// Millis returns the duration in milliseconds. It fails with
// ErrUnanchoredCalendarDuration if the duration carries a calendar month
// component; use Anchor to resolve such a duration first.
func (d Duration) Millis() (int64, error) {
	if d.months != 0 {
		return 0, fmt.Errorf("%v months: %w", d.months, ErrUnanchoredCalendarDuration)
	}
	return d.millis, nil
}

// Seconds returns the duration in whole seconds, truncated toward zero,
// with the same anchoring requirement as Millis.
func (d Duration) Seconds() (int64, error) {
	return d.convert(millisPerSecond)
}

// Minutes returns the duration in whole minutes, truncated toward zero.
func (d Duration) Minutes() (int64, error) {
	return d.convert(millisPerMinute)
}

// Hours returns the duration in whole hours, truncated toward zero.
func (d Duration) Hours() (int64, error) {
	return d.convert(millisPerHour)
}

// Days returns the duration in whole days, truncated toward zero.
func (d Duration) Days() (int64, error) {
	return d.convert(millisPerDay)
}

func (d Duration) convert(unitMillis int64) (int64, error) {
	ms, err := d.Millis()
	if err != nil {
		return 0, err
	}
	return ms / unitMillis, nil
}
