package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academis/models"
)

type stubEnrollments struct {
	byBatch map[string][]models.Enrollment
	calls   int
}

func (s *stubEnrollments) ForStudentsOverlapping(ctx context.Context, studentIDs []string, rng models.DateRange) (map[string][]models.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollments) ForBatch(ctx context.Context, batchID string) ([]models.Enrollment, error) {
	s.calls++
	return s.byBatch[batchID], nil
}

func TestActiveEnrollmentCounts(t *testing.T) {
	enrollments := &stubEnrollments{byBatch: map[string][]models.Enrollment{
		"B-1": {
			{StudentID: "S1", BatchID: "B-1", Active: true},
			{StudentID: "S2", BatchID: "B-1", Active: true},
			{StudentID: "S3", BatchID: "B-1", Active: false},
		},
		"B-2": {
			{StudentID: "S4", BatchID: "B-2", Active: false},
		},
	}}
	assignments := []models.FacultyAssignment{
		{FacultyID: "F1", BatchID: "B-1"},
		{FacultyID: "F2", BatchID: "B-1"}, // co-taught, roster fetched once
		{FacultyID: "F1", BatchID: "B-2"},
	}

	counts, err := activeEnrollmentCounts(context.Background(), enrollments, assignments)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"B-1": 2, "B-2": 0}, counts)
	assert.Equal(t, 2, enrollments.calls)
}

func TestBuildLoadSummary(t *testing.T) {
	assignments := []models.FacultyAssignment{
		{FacultyID: "F1", BatchID: "B-1"},
		{FacultyID: "F2", BatchID: "B-2"},
		{FacultyID: "F1", BatchID: "B-3"},
	}
	enrolled := map[string]int{"B-1": 12, "B-2": 8, "B-3": 5}
	at := time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC)

	summary := buildLoadSummary("2025-03-01", "2025-04-30", assignments, enrolled, at)

	assert.Equal(t, models.Date("2025-03-01"), summary.From)
	assert.Equal(t, models.Date("2025-04-30"), summary.To)
	assert.Equal(t, "2025-03-01T02:00:00Z", summary.ComputedAt)

	require.Len(t, summary.Faculty, 2)
	f1 := summary.Faculty[0]
	assert.Equal(t, "F1", f1.FacultyID)
	assert.Equal(t, 2, f1.Assignments)
	assert.Equal(t, []batchLoad{{BatchID: "B-1", Enrolled: 12}, {BatchID: "B-3", Enrolled: 5}}, f1.Batches)

	f2 := summary.Faculty[1]
	assert.Equal(t, "F2", f2.FacultyID)
	assert.Equal(t, []batchLoad{{BatchID: "B-2", Enrolled: 8}}, f2.Batches)
}
