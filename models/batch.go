package models

import "fmt"

// CurriculumItem maps a curriculum/software identifier to the number of
// sessions required to complete it. The catalog of items is injected
// configuration, not compiled-in business logic.
type CurriculumItem struct {
	Identifier string `mapstructure:"identifier" json:"identifier"`
	Sessions   int    `mapstructure:"sessions" json:"sessions"`
}

// BatchSpec is a draft batch specification: the in-memory value every
// scheduling computation runs against. Drafts are never persisted by the
// scheduling core; the batch registry owns batches once confirmed.
type BatchSpec struct {
	CurriculumIDs []string       `json:"curriculumIds" binding:"required,min=1"`
	Schedule      WeeklySchedule `json:"schedule"`
	Range         DateRange      `json:"range" binding:"required"`
	FacultyIDs    []string       `json:"facultyIds"`
}

// Validate checks the structural invariants a draft must satisfy before any
// scheduling computation runs against it.
func (s BatchSpec) Validate() error {
	if len(s.CurriculumIDs) == 0 {
		return fmt.Errorf("batch spec requires at least one curriculum identifier")
	}
	if !s.Range.Valid() {
		return fmt.Errorf("batch spec range %s..%s is invalid", s.Range.Start, s.Range.End)
	}
	for day, w := range s.Schedule {
		if !w.Valid() {
			return fmt.Errorf("batch spec window on %s is invalid: %s", WeekdayName(day), w.Label())
		}
	}
	return nil
}

// DraftBatchSession is the redis-cached state of an in-progress batch draft.
type DraftBatchSession struct {
	SessionID        string    `json:"sessionId"`
	Spec             BatchSpec `json:"spec"`
	TotalSessions    int       `json:"totalSessions"`
	ProjectedEndDate Date      `json:"projectedEndDate"`
	CreatedAt        string    `json:"createdAt"`
}
