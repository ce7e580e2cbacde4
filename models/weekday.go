package models

import (
	"strings"
	"time"
)

// Canonical weekday values are time.Weekday (Sunday = 0). Day tokens arrive
// from callers and legacy records in several shapes: full English names,
// three-letter abbreviations, ISO numeric strings (Monday=1 .. Sunday=7) and
// zero-based numeric strings (Sunday=0 .. Saturday=6). All of them funnel
// through ParseWeekday; raw day-name comparisons are forbidden elsewhere.

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var weekdayAbbrevs = [7]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

// ParseWeekday canonicalizes a weekday token. The second return value is
// false when the token is not recognized; callers treat that as a non-match,
// never as a fatal error. Matching order is fixed: full names, then
// abbreviations (both case-insensitive), then numeric forms. Both "0" and
// "7" canonicalize to Sunday.
func ParseWeekday(token string) (time.Weekday, bool) {
	for i := range weekdayNames {
		if strings.EqualFold(token, weekdayNames[i]) {
			return time.Weekday(i), true
		}
	}
	for i := range weekdayAbbrevs {
		if strings.EqualFold(token, weekdayAbbrevs[i]) {
			return time.Weekday(i), true
		}
	}
	if len(token) == 1 {
		switch token[0] {
		case '0', '7':
			return time.Sunday, true
		case '1', '2', '3', '4', '5', '6':
			// ISO convention: Monday=1 .. Saturday=6. The zero-based
			// convention agrees on 1..6 for Monday..Saturday, so a single
			// mapping covers both.
			return time.Weekday(token[0] - '0'), true
		}
	}
	return time.Sunday, false
}

// WeekdayName returns the full English name for a canonical weekday.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[int(d)%7]
}
