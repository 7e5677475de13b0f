// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import "time"

// Clock provides the current instant. It is the only external collaborator
// of this package; everything else operates purely on its arguments.
// Supplying a fixed Clock makes time dependent callers deterministic.
type Clock interface {
	Now() CalendarDateTime
}

// SystemClock is the Clock backed by the host's time.Now. The returned
// instant carries the local zone offset as its offset marker.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() CalendarDateTime {
	t := time.Now()
	_, offsetSeconds := t.Zone()
	return NewCalendarDateTime(t.Year(), Month(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond)).WithOffset(offsetSeconds / 60)
}

// Now returns the current instant from the supplied clock, or from
// SystemClock if the clock is nil.
func Now(clock Clock) CalendarDateTime {
	if clock == nil {
		clock = SystemClock{}
	}
	return clock.Now()
}

// Today returns the date of the current instant, as per Now.
func Today(clock Clock) CalendarDate {
	return Now(clock).Date()
}
