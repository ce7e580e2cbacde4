package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeWindow is a wall-clock interval within a single day, stored as minutes
// from midnight (e.g., 420 for 7:00 AM). Cross-midnight windows are not
// modeled; a valid window always has Start < End.
type TimeWindow struct {
	Start int `bson:"start"`
	End   int `bson:"end"`
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || h*60+m > 24*60 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Valid reports whether the window is a well-formed same-day interval.
func (w TimeWindow) Valid() bool {
	return w.Start >= 0 && w.End <= 24*60 && w.Start < w.End
}

// Intersects reports strict interval intersection: touching endpoints
// (one window ending exactly when the other starts) do not collide.
func (w TimeWindow) Intersects(o TimeWindow) bool {
	return w.Start < o.End && o.Start < w.End
}

// Label renders the window for display, e.g. "09:00 - 11:30".
func (w TimeWindow) Label() string {
	return formatClock(w.Start) + " - " + formatClock(w.End)
}

type timeWindowJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (w TimeWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeWindowJSON{Start: formatClock(w.Start), End: formatClock(w.End)})
}

func (w *TimeWindow) UnmarshalJSON(data []byte) error {
	var raw timeWindowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := ParseClock(raw.Start)
	if err != nil {
		return err
	}
	end, err := ParseClock(raw.End)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("time window %s-%s: start must precede end", raw.Start, raw.End)
	}
	w.Start, w.End = start, end
	return nil
}

// WeeklySchedule maps canonical weekdays to at most one time window each.
// An empty schedule is a valid, distinct value meaning "unspecified pattern";
// it is never interpreted as "no constraint".
type WeeklySchedule map[time.Weekday]TimeWindow

// IsEmpty reports whether no weekday carries a window.
func (ws WeeklySchedule) IsEmpty() bool { return len(ws) == 0 }

// MarshalJSON encodes the schedule as an object keyed by lowercase day names.
func (ws WeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]TimeWindow, len(ws))
	for d, w := range ws {
		out[strings.ToLower(WeekdayName(d))] = w
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts an object keyed by any token ParseWeekday understands.
// Unrecognized keys are dropped rather than rejected; they are a data-quality
// signal, not a fatal condition.
func (ws *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string]TimeWindow
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(WeeklySchedule, len(raw))
	for token, w := range raw {
		day, ok := ParseWeekday(token)
		if !ok {
			continue
		}
		out[day] = w
	}
	*ws = out
	return nil
}

// ScheduleEntry is the flattened persistence form of one weekday's window.
// Mongo documents store schedules as entry arrays because bson maps require
// string keys.
type ScheduleEntry struct {
	Day   string `bson:"day" json:"day"`
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`
}

// ScheduleFromEntries rebuilds a schedule from its persisted form, dropping
// entries whose day token does not canonicalize.
func ScheduleFromEntries(entries []ScheduleEntry) WeeklySchedule {
	ws := make(WeeklySchedule, len(entries))
	for _, e := range entries {
		day, ok := ParseWeekday(e.Day)
		if !ok {
			continue
		}
		ws[day] = TimeWindow{Start: e.Start, End: e.End}
	}
	return ws
}

// DateLayout is the wire and storage form for calendar dates. ISO dates
// compare correctly as strings, which the range filters below rely on.
const DateLayout = "2006-01-02"

// Date is a calendar date in "2006-01-02" form.
type Date string

// Parse converts the date to a time.Time at midnight UTC.
func (d Date) Parse() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", string(d), err)
	}
	return t, nil
}

// Valid reports whether the date parses.
func (d Date) Valid() bool {
	_, err := d.Parse()
	return err == nil
}

// DateOf formats a time.Time as a Date.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// DateRange is an inclusive calendar interval with Start <= End.
type DateRange struct {
	Start Date `bson:"startDate" json:"start" binding:"required"`
	End   Date `bson:"endDate" json:"end" binding:"required"`
}

// Valid reports whether both endpoints parse and Start <= End.
func (r DateRange) Valid() bool {
	return r.Start.Valid() && r.End.Valid() && r.Start <= r.End
}

// Overlaps reports inclusive interval overlap with another range.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start <= o.End && o.Start <= r.End
}
