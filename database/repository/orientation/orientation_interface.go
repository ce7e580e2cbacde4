package orientationRepo

import "context"

// OrientationRepository defines read access to the orientation registry.
type OrientationRepository interface {
	// AcceptedForStudents reports, in one query, which of the given students
	// hold an accepted orientation in any supported language. Students with
	// no acceptance are absent from the map.
	AcceptedForStudents(ctx context.Context, studentIDs []string) (map[string]bool, error)
}
