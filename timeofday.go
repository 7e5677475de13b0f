// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import "fmt"

// TimeOfDay represents a time of day with millisecond resolution. The hour
// is stored in the top 8 bits, the minute in the next 8, the second in the
// next 6 and the millisecond in the low 10 bits so that integer comparison
// orders times chronologically.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute,
// second and millisecond. The fields are not validated, use IsValid to
// check them.
func NewTimeOfDay(hour, minute, second, millisecond int) TimeOfDay {
	return TimeOfDay(uint32(hour)<<24 | uint32(minute)<<16 | uint32(second)<<10 | uint32(millisecond)) // #nosec G115
}

// Hour returns the hour, 0-23.
func (t TimeOfDay) Hour() int {
	return int(t >> 24)
}

// Minute returns the minute, 0-59.
func (t TimeOfDay) Minute() int {
	return int(t >> 16 & 0xff)
}

// Second returns the second, 0-59.
func (t TimeOfDay) Second() int {
	return int(t >> 10 & 0x3f)
}

// Millisecond returns the millisecond, 0-999.
func (t TimeOfDay) Millisecond() int {
	return int(t & 0x3ff)
}

// IsValid returns true if all of the fields are within their valid
// calendar ranges.
func (t TimeOfDay) IsValid() bool {
	return t.Hour() <= 23 && t.Minute() <= 59 && t.Second() <= 59 && t.Millisecond() <= 999
}

// millis returns the time of day as milliseconds since midnight.
func (t TimeOfDay) millis() int64 {
	return ((int64(t.Hour())*60+int64(t.Minute()))*60+int64(t.Second()))*1000 + int64(t.Millisecond())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour(), t.Minute(), t.Second(), t.Millisecond())
}
