// Package availability detects faculty double-booking across overlapping
// date ranges and weekly patterns.
package availability

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	facultyRepo "academis/database/repository/faculty"
	"academis/models"
	"academis/services/schedule"
	"academis/utils"
)

// AvailabilityService checks a set of faculty against a candidate date range
// and optional weekly schedule.
type AvailabilityService interface {
	Check(ctx context.Context, facultyIDs []string, rng models.DateRange, ws models.WeeklySchedule) ([]models.FacultyAvailability, error)
}

// DefaultAvailabilityService implements AvailabilityService over the
// faculty/batch registry.
type DefaultAvailabilityService struct {
	Repo facultyRepo.FacultyRepository
}

// Check fetches every existing assignment overlapping rng in one batched
// query and reports, per faculty, whether the candidate slot is free and the
// structured conflicts when it is not. The check is a pure read.
func (s *DefaultAvailabilityService) Check(ctx context.Context, facultyIDs []string, rng models.DateRange, ws models.WeeklySchedule) ([]models.FacultyAvailability, error) {
	if len(facultyIDs) == 0 {
		return nil, fmt.Errorf("availability check requires at least one faculty id")
	}
	if !rng.Valid() {
		return nil, fmt.Errorf("availability check range %s..%s is invalid", rng.Start, rng.End)
	}

	assignments, err := s.Repo.AssignmentsOverlapping(ctx, facultyIDs, rng)
	if err != nil {
		return nil, &UpstreamError{Source: "faculty registry", Err: err}
	}

	results := make([]models.FacultyAvailability, 0, len(facultyIDs))
	for _, id := range facultyIDs {
		verdict := models.FacultyAvailability{FacultyID: id, IsAvailable: true}
		for _, a := range assignments[id] {
			if conflict, ok := assignmentConflict(a, ws); ok {
				verdict.IsAvailable = false
				verdict.Conflicts = append(verdict.Conflicts, conflict)
			}
		}
		results = append(results, verdict)
	}

	utils.GetLogger().Debug("availability: check complete",
		zap.Int("faculty", len(facultyIDs)),
		zap.Int("assignments", len(assignments)))
	return results, nil
}

// assignmentConflict decides whether one date-overlapping assignment blocks
// the candidate schedule, and builds the conflict detail when it does.
func assignmentConflict(a models.FacultyAssignment, candidate models.WeeklySchedule) (models.FacultyConflict, bool) {
	// An assignment without a weekly pattern occupies every day of its
	// range, so date overlap alone is a full conflict. The same holds when
	// the candidate has no pattern yet.
	if a.Schedule.IsEmpty() || candidate.IsEmpty() {
		return models.FacultyConflict{BatchID: a.BatchID}, true
	}

	overlaps := schedule.Overlaps(a.Schedule, candidate)
	conflict := models.FacultyConflict{BatchID: a.BatchID}
	for _, o := range overlaps {
		conflict.Days = append(conflict.Days, models.WeekdayName(o.Day))
		if o.TimesCollide {
			conflict.Windows = append(conflict.Windows, models.ConflictWindow{
				Day:      models.WeekdayName(o.Day),
				Existing: o.WindowA,
				Proposed: o.WindowB,
			})
		}
	}
	return conflict, len(conflict.Days) > 0
}
