// Package timeparse converts free-text schedule labels like
// "Thursday at 8:00 AM" or "Tomorrow at 4:00 PM" into a structured
// day/hour pair. It is the single canonical parser for time labels.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parsed is the result of parsing a time label. An empty Day means the
// day could not be resolved; Hour24 is -1 when no clock time was found.
// Consumers must treat either as "unknown" and exclude the item from
// slot-based computations. Relative marks a day that came from a
// today/tonight/tomorrow term rather than an explicit day name.
type Parsed struct {
	Day      string
	Hour24   int
	Relative bool
}

// HasDay reports whether a weekday was resolved.
func (p Parsed) HasDay() bool { return p.Day != "" }

// HasHour reports whether a clock time was resolved.
func (p Parsed) HasHour() bool { return p.Hour24 >= 0 }

// MatchMode controls how day names are located inside a label.
type MatchMode int

const (
	// MatchSubstring finds day names anywhere in the label. A title
	// embedding a day name ("Sundays brunch") can false-positive;
	// this matches the historical behavior and is the default.
	MatchSubstring MatchMode = iota
	// MatchWordBoundary only accepts day names as whole words.
	MatchWordBoundary
)

// dayCodes is ordered to align with time.Weekday (Sunday == 0).
var dayCodes = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var dayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// dayScanOrder checks day names Monday-first, so a label naming two days
// resolves to the earlier weekday in the Monday-first week.
var dayScanOrder = [7]int{1, 2, 3, 4, 5, 6, 0}

var clockRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)

// Parse resolves a label against the current wall-clock day using
// substring day matching.
func Parse(label string) Parsed {
	return ParseAt(label, time.Now(), MatchSubstring)
}

// ParseAt is Parse with an injected reference time and match mode.
// It never fails: unresolved fields come back as empty/-1. Relative
// terms take precedence over explicit day names.
func ParseAt(label string, now time.Time, mode MatchMode) Parsed {
	p := Parsed{Hour24: -1}
	lower := strings.ToLower(label)

	wd := int(now.Weekday())
	switch {
	case containsDay(lower, "today", mode), containsDay(lower, "tonight", mode):
		p.Day = dayCodes[wd]
		p.Relative = true
	case containsDay(lower, "tomorrow", mode):
		p.Day = dayCodes[(wd+1)%7]
		p.Relative = true
	}
	if p.Day == "" {
		for _, i := range dayScanOrder {
			if containsDay(lower, dayNames[i], mode) {
				p.Day = dayCodes[i]
				break
			}
		}
	}

	if m := clockRe.FindStringSubmatch(label); m != nil {
		hours, _ := strconv.Atoi(m[1])
		if hours >= 1 && hours <= 12 {
			ampm := strings.ToUpper(m[3])
			if ampm == "PM" && hours != 12 {
				hours += 12
			}
			if ampm == "AM" && hours == 12 {
				hours = 0
			}
			p.Hour24 = hours
		}
	}
	return p
}

func containsDay(lower, word string, mode MatchMode) bool {
	if mode == MatchSubstring {
		return strings.Contains(lower, word)
	}
	for rest := lower; ; {
		i := strings.Index(rest, word)
		if i < 0 {
			return false
		}
		before := i == 0 || !isWordChar(rest[i-1])
		afterIdx := i + len(word)
		after := afterIdx >= len(rest) || !isWordChar(rest[afterIdx])
		if before && after {
			return true
		}
		rest = rest[i+1:]
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// DayIndex returns the time.Weekday-aligned index (Sun == 0) of a
// three-letter day code, or -1 for unknown codes.
func DayIndex(code string) int {
	for i, c := range dayCodes {
		if c == code {
			return i
		}
	}
	return -1
}

// DayCode returns the three-letter code for a weekday.
func DayCode(wd time.Weekday) string {
	return dayCodes[int(wd)%7]
}

// FullDayName expands a three-letter code to the full day name, or
// returns the code unchanged when it is not recognized.
func FullDayName(code string) string {
	if i := DayIndex(code); i >= 0 {
		name := dayNames[i]
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return code
}

// DisplayHour renders a 24-hour value as a short 12-hour label,
// e.g. 8 -> "8 AM", 12 -> "12 PM", 0 -> "12 AM".
func DisplayHour(hour24 int) string {
	ampm := "AM"
	h := hour24
	switch {
	case hour24 == 0:
		h = 12
	case hour24 == 12:
		ampm = "PM"
	case hour24 > 12:
		h = hour24 - 12
		ampm = "PM"
	}
	return strconv.Itoa(h) + " " + ampm
}
