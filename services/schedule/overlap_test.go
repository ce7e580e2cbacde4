package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"academis/models"
)

func window(startH, endH int) models.TimeWindow {
	return models.TimeWindow{Start: startH * 60, End: endH * 60}
}

func TestDayMatchesDisjointDays(t *testing.T) {
	// Regression for the day-mismatch scenario: {Thu,Sat} vs {Mon,Wed,Fri}.
	a := models.WeeklySchedule{
		time.Thursday: window(9, 11),
		time.Saturday: window(9, 11),
	}
	b := models.WeeklySchedule{
		time.Monday:    window(9, 11),
		time.Wednesday: window(9, 11),
		time.Friday:    window(9, 11),
	}
	assert.Empty(t, DayMatches(a, b))
	assert.Empty(t, Overlaps(a, b))
}

func TestDayMatchesFullCoincidence(t *testing.T) {
	a := models.WeeklySchedule{
		time.Tuesday:  window(9, 11),
		time.Thursday: window(9, 11),
		time.Saturday: window(9, 11),
	}
	b := models.WeeklySchedule{
		time.Tuesday:  window(14, 16),
		time.Thursday: window(14, 16),
		time.Saturday: window(14, 16),
	}
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Thursday, time.Saturday}, DayMatches(a, b))
}

func TestDayMatchesEmptySchedule(t *testing.T) {
	nonEmpty := models.WeeklySchedule{time.Monday: window(9, 11)}

	// Empty never means "always overlaps".
	assert.Empty(t, DayMatches(models.WeeklySchedule{}, nonEmpty))
	assert.Empty(t, DayMatches(nonEmpty, models.WeeklySchedule{}))
	assert.Empty(t, DayMatches(nil, nonEmpty))
}

func TestOverlapsTimeCollision(t *testing.T) {
	a := models.WeeklySchedule{
		time.Monday:    window(9, 11),
		time.Wednesday: window(9, 11),
	}
	b := models.WeeklySchedule{
		time.Monday:    window(10, 12), // collides
		time.Wednesday: window(11, 13), // adjacent, no collision
	}

	overlaps := Overlaps(a, b)
	assert.Len(t, overlaps, 2)

	assert.Equal(t, time.Monday, overlaps[0].Day)
	assert.True(t, overlaps[0].TimesCollide)
	assert.Equal(t, time.Wednesday, overlaps[1].Day)
	assert.False(t, overlaps[1].TimesCollide)

	assert.True(t, AnyTimeCollision(a, b))
	assert.False(t, AnyTimeCollision(a, models.WeeklySchedule{time.Monday: window(12, 14)}))
}
