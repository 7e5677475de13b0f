// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt_test

import (
	"cloudeng.io/datefmt"
)

func newCalendarDate(y, m, d int) datefmt.CalendarDate {
	return datefmt.NewCalendarDate(y, datefmt.Month(m), d)
}

func newCalendarDateTime(y, mo, d, h, mi, s, ms int) datefmt.CalendarDateTime {
	return datefmt.NewCalendarDateTime(y, datefmt.Month(mo), d, h, mi, s, ms)
}

func mustParseDateTime(val string) datefmt.CalendarDateTime {
	cdt, err := datefmt.ParseDateTime(val)
	if err != nil {
		panic(err)
	}
	return cdt
}

// fixedClock implements datefmt.Clock for deterministic tests.
type fixedClock struct {
	when datefmt.CalendarDateTime
}

func (c fixedClock) Now() datefmt.CalendarDateTime {
	return c.when
}
