package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWindowIntersects(t *testing.T) {
	morning := TimeWindow{Start: 9 * 60, End: 11 * 60}

	assert.True(t, morning.Intersects(TimeWindow{Start: 10 * 60, End: 12 * 60}))
	assert.True(t, morning.Intersects(TimeWindow{Start: 8 * 60, End: 9*60 + 30}))
	assert.True(t, morning.Intersects(morning))

	// Strict intersection: adjacent windows do not collide.
	assert.False(t, morning.Intersects(TimeWindow{Start: 11 * 60, End: 13 * 60}))
	assert.False(t, morning.Intersects(TimeWindow{Start: 7 * 60, End: 9 * 60}))
	assert.False(t, morning.Intersects(TimeWindow{Start: 14 * 60, End: 16 * 60}))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("nope")
	assert.Error(t, err)
}

func TestDateRangeOverlaps(t *testing.T) {
	base := DateRange{Start: "2025-03-01", End: "2025-03-31"}

	assert.True(t, base.Overlaps(DateRange{Start: "2025-03-15", End: "2025-04-15"}))
	assert.True(t, base.Overlaps(DateRange{Start: "2025-02-01", End: "2025-03-01"}), "inclusive endpoints")
	assert.True(t, base.Overlaps(DateRange{Start: "2025-03-31", End: "2025-04-10"}), "inclusive endpoints")
	assert.False(t, base.Overlaps(DateRange{Start: "2025-04-01", End: "2025-04-30"}))
	assert.False(t, base.Overlaps(DateRange{Start: "2025-01-01", End: "2025-02-28"}))
}

func TestWeeklyScheduleUnmarshalNormalizesKeys(t *testing.T) {
	payload := `{
		"monday":  {"start": "09:00", "end": "11:00"},
		"Wed":     {"start": "14:00", "end": "16:00"},
		"5":       {"start": "10:00", "end": "12:00"},
		"someday": {"start": "08:00", "end": "09:00"}
	}`

	var ws WeeklySchedule
	require.NoError(t, json.Unmarshal([]byte(payload), &ws))

	assert.Len(t, ws, 3, "unrecognized day tokens are dropped, not fatal")
	assert.Equal(t, TimeWindow{Start: 9 * 60, End: 11 * 60}, ws[time.Monday])
	assert.Equal(t, TimeWindow{Start: 14 * 60, End: 16 * 60}, ws[time.Wednesday])
	assert.Equal(t, TimeWindow{Start: 10 * 60, End: 12 * 60}, ws[time.Friday])
}

func TestScheduleFromEntries(t *testing.T) {
	entries := []ScheduleEntry{
		{Day: "Monday", Start: 9 * 60, End: 11 * 60},
		{Day: "fri", Start: 10 * 60, End: 12 * 60},
		{Day: "someday", Start: 8 * 60, End: 9 * 60}, // dropped, not fatal
	}
	ws := ScheduleFromEntries(entries)
	assert.Equal(t, WeeklySchedule{
		time.Monday: {Start: 9 * 60, End: 11 * 60},
		time.Friday: {Start: 10 * 60, End: 12 * 60},
	}, ws)
}

func TestBatchSpecValidate(t *testing.T) {
	valid := BatchSpec{
		CurriculumIDs: []string{"AutoCAD"},
		Range:         DateRange{Start: "2025-01-06", End: "2025-03-31"},
		Schedule:      WeeklySchedule{time.Monday: {Start: 9 * 60, End: 11 * 60}},
	}
	assert.NoError(t, valid.Validate())

	noCurriculum := valid
	noCurriculum.CurriculumIDs = nil
	assert.Error(t, noCurriculum.Validate())

	badRange := valid
	badRange.Range = DateRange{Start: "2025-03-31", End: "2025-01-06"}
	assert.Error(t, badRange.Validate())

	badWindow := valid
	badWindow.Schedule = WeeklySchedule{time.Monday: {Start: 11 * 60, End: 9 * 60}}
	assert.Error(t, badWindow.Validate())
}
