package studentRepo

import (
	"context"

	"academis/models"
)

// StudentRepository defines read access to the student registry.
type StudentRepository interface {
	// ListByStatuses retrieves all students whose lifecycle status is in the
	// given set, in one query.
	ListByStatuses(ctx context.Context, statuses []string) ([]models.Student, error)
}
