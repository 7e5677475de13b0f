// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pattern identifies one of the supported date/datetime layouts. The set of
// patterns is closed and their names are stable identifiers; new patterns
// may be added but existing ones are never renamed or removed.
type Pattern int

const (
	// PatternUnspecified is the zero value and requests pattern detection.
	PatternUnspecified Pattern = iota
	// ISODate is 2006-01-02.
	ISODate
	// ISODateTime is 2006-01-02T15:04:05.
	ISODateTime
	// ISODateTimeMS is 2006-01-02T15:04:05.000.
	ISODateTimeMS
	// ISODateTimeOffset is 2006-01-02T15:04:05.000 followed by Z or a
	// signed hh:mm offset. Fractional seconds are optional on input and
	// always rendered.
	ISODateTimeOffset
	// USDate is month first, 01/02/2006. One or two digit month and day
	// and a '-' separator are accepted on input.
	USDate
	// USDateTime is 01/02/2006 15:04:05.
	USDateTime
	// EUDate is day first, 02/01/2006, with the same input tolerance as
	// USDate.
	EUDate
	// EUDateTime is 02/01/2006 15:04:05.
	EUDateTime
	// CompactDate is 20060102.
	CompactDate
	// CompactDateTime is 20060102150405.
	CompactDateTime
	// CompactDateTimeMS is 20060102150405000.
	CompactDateTimeMS
)

// patternSpec describes the grammar for a single Pattern: an anchored
// structural recognizer, the interpretation of its submatches and whether
// the layout carries time, millisecond and offset fields. Adding a new
// pattern requires only a new entry here (and a detection tier if it is to
// be detected); no other component enumerates patterns by name.
type patternSpec struct {
	name      string
	re        *regexp.Regexp
	dayFirst  bool // the day precedes the month in the numeric fields
	hasTime   bool
	hasMillis bool
	hasOffset bool
}

var patternSpecs = []patternSpec{
	PatternUnspecified: {name: "unspecified"},
	ISODate: {
		name: "iso-date",
		re:   regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`),
	},
	ISODateTime: {
		name:    "iso-datetime",
		re:      regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})$`),
		hasTime: true,
	},
	ISODateTimeMS: {
		name:      "iso-datetime-ms",
		re:        regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})\.(\d{3})$`),
		hasTime:   true,
		hasMillis: true,
	},
	ISODateTimeOffset: {
		name:      "iso-datetime-offset",
		re:        regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(?:\.(\d{3}))?(Z|[+-]\d{2}:\d{2})$`),
		hasTime:   true,
		hasMillis: true,
		hasOffset: true,
	},
	USDate: {
		name: "us-date",
		re:   regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`),
	},
	USDateTime: {
		name:    "us-datetime",
		re:      regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4}) (\d{2}):(\d{2}):(\d{2})$`),
		hasTime: true,
	},
	EUDate: {
		name:     "eu-date",
		re:       regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`),
		dayFirst: true,
	},
	EUDateTime: {
		name:     "eu-datetime",
		re:       regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4}) (\d{2}):(\d{2}):(\d{2})$`),
		dayFirst: true,
		hasTime:  true,
	},
	CompactDate: {
		name: "compact-date",
		re:   regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`),
	},
	CompactDateTime: {
		name:    "compact-datetime",
		re:      regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})$`),
		hasTime: true,
	},
	CompactDateTimeMS: {
		name:      "compact-datetime-ms",
		re:        regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})(\d{3})$`),
		hasTime:   true,
		hasMillis: true,
	},
}

// Patterns returns all of the patterns in the catalog.
func Patterns() []Pattern {
	p := make([]Pattern, 0, len(patternSpecs)-1)
	for i := 1; i < len(patternSpecs); i++ {
		p = append(p, Pattern(i))
	}
	return p
}

// IsValid returns true if p is a pattern in the catalog.
func (p Pattern) IsValid() bool {
	return p > PatternUnspecified && int(p) < len(patternSpecs)
}

// HasTime returns true if the pattern carries time of day fields.
func (p Pattern) HasTime() bool {
	return p.IsValid() && patternSpecs[p].hasTime
}

// Match is the structural recognizer for the pattern: it reports whether
// val has the pattern's shape. It does not check calendar validity of the
// field values.
func (p Pattern) Match(val string) bool {
	return p.IsValid() && patternSpecs[p].re.MatchString(val)
}

func (p Pattern) String() string {
	if int(p) < 0 || int(p) >= len(patternSpecs) {
		return fmt.Sprintf("pattern(%d)", int(p))
	}
	return patternSpecs[p].name
}

// Parse sets p from one of the stable pattern names, eg. 'iso-date' or
// 'compact-datetime'. It allows a Pattern to be used directly as a flag
// value.
func (p *Pattern) Parse(val string) error {
	for i, spec := range patternSpecs[1:] {
		if spec.name == val {
			*p = Pattern(i + 1)
			return nil
		}
	}
	return fmt.Errorf("invalid pattern name: %q", val)
}

// fields holds the raw integer tokens extracted from a string matched
// against a pattern's grammar, prior to calendar validation.
type fields struct {
	year, month, day                  int
	hour, minute, second, millisecond int
	offsetMinutes                     int
	hasOffset                         bool
}

// extract maps the submatches of a pattern's recognizer to raw integer
// tokens. The match must have been produced by the pattern's own regexp.
func (p Pattern) extract(match []string) fields {
	var f fields
	spec := patternSpecs[p]
	switch p {
	case USDate, USDateTime, EUDate, EUDateTime:
		first, second := atoi(match[1]), atoi(match[2])
		if spec.dayFirst {
			f.day, f.month = first, second
		} else {
			f.month, f.day = first, second
		}
		f.year = atoi(match[3])
	default:
		f.year, f.month, f.day = atoi(match[1]), atoi(match[2]), atoi(match[3])
	}
	if !spec.hasTime {
		return f
	}
	f.hour, f.minute, f.second = atoi(match[4]), atoi(match[5]), atoi(match[6])
	if spec.hasMillis && match[7] != "" {
		f.millisecond = atoi(match[7])
	}
	if spec.hasOffset {
		f.offsetMinutes = parseOffset(match[8])
		f.hasOffset = true
	}
	return f
}

// atoi converts a string of digits already vetted by a recognizer.
func atoi(val string) int {
	n, _ := strconv.Atoi(val)
	return n
}

func parseOffset(val string) int {
	if val == "Z" {
		return 0
	}
	sign := 1
	if val[0] == '-' {
		sign = -1
	}
	h, m := atoi(val[1:3]), atoi(val[4:6])
	return sign * (h*60 + m)
}

// render returns the canonical rendering of the fields for the pattern.
func (p Pattern) render(f fields) string {
	var out strings.Builder
	switch p {
	case USDate, USDateTime, EUDate, EUDateTime:
		first, second := f.month, f.day
		if patternSpecs[p].dayFirst {
			first, second = f.day, f.month
		}
		fmt.Fprintf(&out, "%02d/%02d/%04d", first, second, f.year)
	case CompactDate, CompactDateTime, CompactDateTimeMS:
		fmt.Fprintf(&out, "%04d%02d%02d", f.year, f.month, f.day)
	default:
		fmt.Fprintf(&out, "%04d-%02d-%02d", f.year, f.month, f.day)
	}
	switch p {
	case USDateTime, EUDateTime:
		fmt.Fprintf(&out, " %02d:%02d:%02d", f.hour, f.minute, f.second)
	case ISODateTime:
		fmt.Fprintf(&out, "T%02d:%02d:%02d", f.hour, f.minute, f.second)
	case ISODateTimeMS:
		fmt.Fprintf(&out, "T%02d:%02d:%02d.%03d", f.hour, f.minute, f.second, f.millisecond)
	case ISODateTimeOffset:
		fmt.Fprintf(&out, "T%02d:%02d:%02d.%03d%s", f.hour, f.minute, f.second, f.millisecond, formatOffset(f.offsetMinutes))
	case CompactDateTime:
		fmt.Fprintf(&out, "%02d%02d%02d", f.hour, f.minute, f.second)
	case CompactDateTimeMS:
		fmt.Fprintf(&out, "%02d%02d%02d%03d", f.hour, f.minute, f.second, f.millisecond)
	}
	return out.String()
}

func formatOffset(minutes int) string {
	if minutes == 0 {
		return "Z"
	}
	sign := byte('+')
	if minutes < 0 {
		sign, minutes = '-', -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
