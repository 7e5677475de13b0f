// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidISO8601Duration indicates a malformed ISO 8601 duration string.
var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

func consumeN(dur string) (float64, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.ParseFloat(dur[:i], 64)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

func wholeOnly(n float64, designator byte, dur string) (int64, error) {
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("fractional %c component: %s: %w", designator, dur, ErrInvalidISO8601Duration)
	}
	return int64(n), nil
}

// ParseISO8601Duration parses a duration string in the ISO8601 format,
// [-]PnYnMnWnDTnHnMnS. The year and month designators populate the
// calendar month component of the Duration and must be whole numbers; the
// remaining designators populate the exact millisecond component and may
// carry fractions down to millisecond resolution.
func ParseISO8601Duration(dur string) (Duration, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return Duration{}, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidISO8601Duration)
	}
	orig := dur
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}

	var result Duration
	state := 0 // 0 = P, 1 = T
	for len(dur) > 0 {
		if dur[0] == 'T' {
			state = 1
			dur = dur[1:]
			continue
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return Duration{}, err
		}
		dur = dur[idx:]
		switch state {
		case 0:
			switch designator {
			case 'Y':
				years, err := wholeOnly(n, designator, orig)
				if err != nil {
					return Duration{}, err
				}
				result.months += 12 * years
			case 'M':
				months, err := wholeOnly(n, designator, orig)
				if err != nil {
					return Duration{}, err
				}
				result.months += months
			case 'W':
				result.millis += int64(float64(millisPerWeek) * n)
			case 'D':
				result.millis += int64(float64(millisPerDay) * n)
			default:
				return Duration{}, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
			}
			continue
		case 1:
			switch designator {
			case 'H':
				result.millis += int64(float64(millisPerHour) * n)
			case 'M':
				result.millis += int64(float64(millisPerMinute) * n)
			case 'S':
				result.millis += int64(float64(millisPerSecond) * n)
			default:
				return Duration{}, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
			}
		}
	}
	if hasNP {
		result = result.Negate()
	}
	return result, nil
}

// Parse sets d from an ISO 8601 duration string. It allows a Duration to
// be used directly as a flag value.
func (d *Duration) Parse(val string) error {
	dd, err := ParseISO8601Duration(val)
	if err != nil {
		return err
	}
	*d = dd
	return nil
}

// String returns the duration in ISO 8601 form. Durations whose components
// share a sign render canonically (negative spans with a leading '-');
// mixed sign durations, which can only arise by composition, render as the
// concatenation of their calendar and exact parts, each with its own sign.
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	months, millis := d.months, d.millis
	if (months > 0 && millis < 0) || (months < 0 && millis > 0) {
		return Duration{months: months}.String() + Duration{millis: millis}.String()
	}
	var out strings.Builder
	if months <= 0 && millis <= 0 {
		out.WriteByte('-')
		months, millis = -months, -millis
	}
	out.WriteByte('P')
	if y := months / 12; y != 0 {
		fmt.Fprintf(&out, "%dY", y)
	}
	if m := months % 12; m != 0 {
		fmt.Fprintf(&out, "%dM", m)
	}
	if days := millis / millisPerDay; days != 0 {
		fmt.Fprintf(&out, "%dD", days)
	}
	tod := millis % millisPerDay
	if tod == 0 {
		return out.String()
	}
	out.WriteByte('T')
	if h := tod / millisPerHour; h != 0 {
		fmt.Fprintf(&out, "%dH", h)
	}
	if m := tod / millisPerMinute % 60; m != 0 {
		fmt.Fprintf(&out, "%dM", m)
	}
	s, ms := tod/millisPerSecond%60, tod%millisPerSecond
	switch {
	case ms != 0:
		fmt.Fprintf(&out, "%d.%03dS", s, ms)
	case s != 0:
		fmt.Fprintf(&out, "%dS", s)
	}
	return out.String()
}
