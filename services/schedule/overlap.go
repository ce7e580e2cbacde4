// Package schedule holds the pure weekly-pattern computations the batch
// scheduling flows are built on: day/time overlap detection between two
// weekly schedules and end-date projection from a session count. Everything
// here is side-effect-free and safe for concurrent use.
package schedule

import (
	"sort"
	"time"

	"academis/models"
)

// DayOverlap describes one weekday present in both schedules, with the two
// windows and whether they actually intersect in time.
type DayOverlap struct {
	Day          time.Weekday
	WindowA      models.TimeWindow
	WindowB      models.TimeWindow
	TimesCollide bool
}

// DayMatches returns the weekdays present in both schedules, Sunday-first.
// This is weekday coincidence only; times are ignored. An empty schedule on
// either side yields no matches: empty means "unspecified pattern", never
// "always overlaps".
func DayMatches(a, b models.WeeklySchedule) []time.Weekday {
	if a.IsEmpty() || b.IsEmpty() {
		return nil
	}
	var days []time.Weekday
	for d := range a {
		if _, ok := b[d]; ok {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Overlaps returns one DayOverlap per shared weekday, Sunday-first.
// TimesCollide uses strict interval intersection (a.Start < b.End &&
// b.Start < a.End); adjacent windows do not collide.
func Overlaps(a, b models.WeeklySchedule) []DayOverlap {
	days := DayMatches(a, b)
	if len(days) == 0 {
		return nil
	}
	overlaps := make([]DayOverlap, 0, len(days))
	for _, d := range days {
		wa, wb := a[d], b[d]
		overlaps = append(overlaps, DayOverlap{
			Day:          d,
			WindowA:      wa,
			WindowB:      wb,
			TimesCollide: wa.Intersects(wb),
		})
	}
	return overlaps
}

// AnyTimeCollision reports whether any shared weekday's windows intersect.
func AnyTimeCollision(a, b models.WeeklySchedule) bool {
	for _, o := range Overlaps(a, b) {
		if o.TimesCollide {
			return true
		}
	}
	return false
}
