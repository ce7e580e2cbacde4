package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academis/models"
)

// stubFacultyRepo serves canned assignments, filtering by date overlap the
// way the real registry query does.
type stubFacultyRepo struct {
	assignments []models.FacultyAssignment
	err         error
}

func (s *stubFacultyRepo) AssignmentsOverlapping(ctx context.Context, facultyIDs []string, rng models.DateRange) (map[string][]models.FacultyAssignment, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := make(map[string]bool, len(facultyIDs))
	for _, id := range facultyIDs {
		wanted[id] = true
	}
	grouped := make(map[string][]models.FacultyAssignment)
	for _, a := range s.assignments {
		if wanted[a.FacultyID] && a.Range.Overlaps(rng) {
			grouped[a.FacultyID] = append(grouped[a.FacultyID], a)
		}
	}
	return grouped, nil
}

func (s *stubFacultyRepo) UpcomingAssignments(ctx context.Context, from, to models.Date) ([]models.FacultyAssignment, error) {
	return s.assignments, s.err
}

func window(startH, endH int) models.TimeWindow {
	return models.TimeWindow{Start: startH * 60, End: endH * 60}
}

var candidateRange = models.DateRange{Start: "2025-02-01", End: "2025-04-30"}

func TestCheckOutOfRangeAssignmentNeverConflicts(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &stubFacultyRepo{
		assignments: []models.FacultyAssignment{{
			FacultyID: "F1",
			BatchID:   "B-old",
			Range:     models.DateRange{Start: "2024-01-01", End: "2024-12-31"},
			Schedule:  models.WeeklySchedule{time.Monday: window(9, 11)},
		}},
	}}

	results, err := svc.Check(context.Background(), []string{"F1"}, candidateRange,
		models.WeeklySchedule{time.Monday: window(9, 11)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsAvailable)
	assert.Empty(t, results[0].Conflicts)
}

func TestCheckUnscheduledAssignmentConflictsByDateAlone(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &stubFacultyRepo{
		assignments: []models.FacultyAssignment{{
			FacultyID: "F1",
			BatchID:   "B-1",
			Range:     models.DateRange{Start: "2025-03-01", End: "2025-03-31"},
			// No weekly pattern: active every day of the range.
		}},
	}}

	results, err := svc.Check(context.Background(), []string{"F1"}, candidateRange,
		models.WeeklySchedule{time.Tuesday: window(14, 16)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].IsAvailable)
	require.Len(t, results[0].Conflicts, 1)
	assert.Equal(t, "B-1", results[0].Conflicts[0].BatchID)
	// Windows only when both sides specify them.
	assert.Empty(t, results[0].Conflicts[0].Windows)
}

func TestCheckDayAndTimeConflict(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &stubFacultyRepo{
		assignments: []models.FacultyAssignment{{
			FacultyID: "F1",
			BatchID:   "B-2",
			Range:     models.DateRange{Start: "2025-03-01", End: "2025-05-31"},
			Schedule: models.WeeklySchedule{
				time.Monday:    window(9, 11),
				time.Wednesday: window(9, 11),
			},
		}},
	}}

	results, err := svc.Check(context.Background(), []string{"F1", "F2"}, candidateRange,
		models.WeeklySchedule{
			time.Monday: window(10, 12),
			time.Friday: window(10, 12),
		})
	require.NoError(t, err)
	require.Len(t, results, 2)

	f1 := results[0]
	assert.Equal(t, "F1", f1.FacultyID)
	assert.False(t, f1.IsAvailable)
	require.Len(t, f1.Conflicts, 1)
	assert.Equal(t, []string{"Monday"}, f1.Conflicts[0].Days)
	require.Len(t, f1.Conflicts[0].Windows, 1)
	assert.Equal(t, "Monday", f1.Conflicts[0].Windows[0].Day)
	assert.Equal(t, window(9, 11), f1.Conflicts[0].Windows[0].Existing)
	assert.Equal(t, window(10, 12), f1.Conflicts[0].Windows[0].Proposed)

	// A faculty member with no overlapping assignments is available.
	f2 := results[1]
	assert.Equal(t, "F2", f2.FacultyID)
	assert.True(t, f2.IsAvailable)
}

func TestCheckSharedDayWithoutTimeCollisionStillConflicts(t *testing.T) {
	// Day-level coincidence alone blocks the faculty member; the windows
	// list stays empty because the times do not intersect.
	svc := &DefaultAvailabilityService{Repo: &stubFacultyRepo{
		assignments: []models.FacultyAssignment{{
			FacultyID: "F1",
			BatchID:   "B-3",
			Range:     models.DateRange{Start: "2025-03-01", End: "2025-05-31"},
			Schedule:  models.WeeklySchedule{time.Monday: window(9, 11)},
		}},
	}}

	results, err := svc.Check(context.Background(), []string{"F1"}, candidateRange,
		models.WeeklySchedule{time.Monday: window(14, 16)})
	require.NoError(t, err)
	assert.False(t, results[0].IsAvailable)
	require.Len(t, results[0].Conflicts, 1)
	assert.Equal(t, []string{"Monday"}, results[0].Conflicts[0].Days)
	assert.Empty(t, results[0].Conflicts[0].Windows)
}

func TestCheckUpstreamFailureAborts(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &stubFacultyRepo{err: errors.New("registry down")}}

	_, err := svc.Check(context.Background(), []string{"F1"}, candidateRange, nil)
	require.Error(t, err)
	var ue *UpstreamError
	assert.ErrorAs(t, err, &ue)
	assert.Equal(t, "faculty registry", ue.Source)
}

func TestCheckInvalidInput(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &stubFacultyRepo{}}

	_, err := svc.Check(context.Background(), nil, candidateRange, nil)
	assert.Error(t, err)

	_, err = svc.Check(context.Background(), []string{"F1"},
		models.DateRange{Start: "2025-05-01", End: "2025-01-01"}, nil)
	assert.Error(t, err)
}
