package facultyRepo

import (
	"context"

	"academis/models"
)

// FacultyRepository defines read access to the faculty/batch registry.
type FacultyRepository interface {
	// AssignmentsOverlapping retrieves, in one query, every assignment of the
	// given faculty whose date range overlaps rng, grouped by faculty ID.
	// Faculty with no overlapping assignment are absent from the map.
	AssignmentsOverlapping(ctx context.Context, facultyIDs []string, rng models.DateRange) (map[string][]models.FacultyAssignment, error)
	// UpcomingAssignments retrieves all assignments active between from and
	// to, inclusive.
	UpcomingAssignments(ctx context.Context, from, to models.Date) ([]models.FacultyAssignment, error)
}
