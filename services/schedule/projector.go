package schedule

import (
	"fmt"

	"academis/models"
)

// ProjectEndDate computes the default end date for a course starting at
// start and requiring totalSessions meetings under the given weekly pattern.
//
// With an empty schedule every calendar day counts as one session, so the
// result is start + totalSessions days. With a non-empty schedule the walk
// advances one calendar day at a time and counts only days whose weekday is
// scheduled; the date on which the counter reaches totalSessions is the
// result, so a non-empty projection always lands on a scheduled weekday.
// totalSessions == 0 projects to start itself.
//
// The result is a default; callers may override it.
func ProjectEndDate(start models.Date, totalSessions int, ws models.WeeklySchedule) (models.Date, error) {
	if totalSessions < 0 {
		return "", fmt.Errorf("total sessions must be >= 0, got %d", totalSessions)
	}
	t, err := start.Parse()
	if err != nil {
		return "", err
	}
	if totalSessions == 0 {
		return start, nil
	}
	if ws.IsEmpty() {
		return models.DateOf(t.AddDate(0, 0, totalSessions)), nil
	}

	// The start date itself counts as session #1 when it falls on a
	// scheduled weekday.
	counted := 0
	for {
		if _, scheduled := ws[t.Weekday()]; scheduled {
			counted++
			if counted == totalSessions {
				return models.DateOf(t), nil
			}
		}
		t = t.AddDate(0, 0, 1)
	}
}
