package enrollmentRepo

import (
	"context"

	"academis/models"
)

// EnrollmentRepository defines read access to the enrollment registry.
type EnrollmentRepository interface {
	// ForStudentsOverlapping retrieves, in one query, every enrollment of the
	// given students whose date range overlaps rng, grouped by student ID.
	ForStudentsOverlapping(ctx context.Context, studentIDs []string, rng models.DateRange) (map[string][]models.Enrollment, error)
	// ForBatch retrieves all enrollments of a batch.
	ForBatch(ctx context.Context, batchID string) ([]models.Enrollment, error)
}
