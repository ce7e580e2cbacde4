// Package suggestion classifies a pool of students into enrollment-suggestion
// categories for a draft batch and ranks the outcome. The engine is a pure
// read over its collaborators: it accepts the draft specification as an
// in-memory value and persists nothing.
package suggestion

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	billingRepo "academis/database/repository/billing"
	enrollmentRepo "academis/database/repository/enrollment"
	orientationRepo "academis/database/repository/orientation"
	studentRepo "academis/database/repository/student"
	"academis/models"
	"academis/services/catalog"
	"academis/utils"
)

// Options selects the student pool for one suggestion run.
type Options struct {
	// Statuses filters the pool; defaults to active students only.
	Statuses []string
}

// SuggestionService classifies and ranks candidate students for a draft batch.
type SuggestionService interface {
	Suggest(ctx context.Context, spec models.BatchSpec, opts Options) (*models.SuggestionReport, error)
}

// DefaultSuggestionService implements SuggestionService over the student,
// enrollment, billing and orientation collaborators.
type DefaultSuggestionService struct {
	Students    studentRepo.StudentRepository
	Enrollments enrollmentRepo.EnrollmentRepository
	Billing     billingRepo.BillingRepository
	Orientation orientationRepo.OrientationRepository

	// Now supplies "today" for fee aging; defaults to time.Now.
	Now func() time.Time
}

// Group order for ranking: available first, then the remaining statuses in
// reverse precedence order so the least blocked candidates surface first.
var statusRank = map[models.CandidateStatus]int{
	models.StatusAvailable:     0,
	models.StatusBusy:          1,
	models.StatusTimeConflict:  2,
	models.StatusDayMismatch:   3,
	models.StatusPendingFees:   4,
	models.StatusFeesOverdue:   5,
	models.StatusNoOrientation: 6,
}

// Suggest evaluates every student in the selected pool independently against
// the draft spec. All collaborator data is fetched in one batched query per
// category; any failed read aborts the whole run.
func (s *DefaultSuggestionService) Suggest(ctx context.Context, spec models.BatchSpec, opts Options) (*models.SuggestionReport, error) {
	logger := utils.GetLogger()

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	statuses := opts.Statuses
	if len(statuses) == 0 {
		statuses = []string{models.StudentActive}
	}

	students, err := s.Students.ListByStatuses(ctx, statuses)
	if err != nil {
		return nil, &UpstreamError{Source: "student registry", Err: err}
	}
	if len(students) == 0 {
		return &models.SuggestionReport{Candidates: []models.CandidateResult{}, Summary: map[models.CandidateStatus]int{}}, nil
	}

	ids := make([]string, len(students))
	for i, st := range students {
		ids[i] = st.ID
	}

	enrollments, err := s.Enrollments.ForStudentsOverlapping(ctx, ids, spec.Range)
	if err != nil {
		return nil, &UpstreamError{Source: "enrollment registry", Err: err}
	}
	fees, err := s.Billing.SummariesForStudents(ctx, ids, models.DateOf(s.now()))
	if err != nil {
		return nil, &UpstreamError{Source: "billing ledger", Err: err}
	}
	oriented, err := s.Orientation.AcceptedForStudents(ctx, ids)
	if err != nil {
		return nil, &UpstreamError{Source: "orientation registry", Err: err}
	}

	missingFees := 0
	var results []models.CandidateResult
	for _, st := range students {
		summary, hasSummary := fees[st.ID]
		if !hasSummary {
			// Fail-open: no ledger record means a clear fee status.
			missingFees++
		}
		cc := &candidateContext{
			student:     st,
			spec:        spec,
			enrollments: enrollments[st.ID],
			fees:        summary,
			hasFees:     hasSummary,
			oriented:    oriented[st.ID],
		}
		result, include := classify(cc)
		if include {
			results = append(results, result)
		}
	}
	if missingFees > 0 {
		logger.Debug("suggestion: students with no billing record treated as clear",
			zap.Int("count", missingFees))
	}

	sort.Slice(results, func(i, j int) bool {
		ri, rj := statusRank[results[i].Status], statusRank[results[j].Status]
		if ri != rj {
			return ri < rj
		}
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].StudentID < results[j].StudentID
	})

	summary := make(map[models.CandidateStatus]int)
	for _, r := range results {
		summary[r.Status]++
	}
	if results == nil {
		results = []models.CandidateResult{}
	}

	logger.Info("suggestion: run complete",
		zap.Int("pool", len(students)),
		zap.Int("candidates", len(results)))
	return &models.SuggestionReport{Candidates: results, Summary: summary}, nil
}

func (s *DefaultSuggestionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// classify runs the ordered rules for one student. The second return value
// is false when the student is excluded from the result set entirely: a
// student blocked by nothing whose curriculum interest does not match the
// batch is not a candidate at all.
func classify(c *candidateContext) (models.CandidateResult, bool) {
	result := models.CandidateResult{
		StudentID:     c.student.ID,
		Name:          c.student.Name,
		Phone:         c.student.Phone,
		Email:         c.student.Email,
		OverdueAmount: c.fees.OverdueAmount,
		PendingAmount: c.fees.PendingAmount,
	}

	for _, r := range classificationRules {
		if r.match(c) {
			result.Status = r.status
			result.StatusMessage = r.message(c)
			result.Flags = buildFlags(c)
			return result, true
		}
	}

	if !catalog.InterestMatches(c.student.Interests, c.spec.CurriculumIDs) {
		return models.CandidateResult{}, false
	}

	result.Status = models.StatusAvailable
	result.StatusMessage = "Available for enrollment"
	result.Flags = buildFlags(c)
	return result, true
}

func buildFlags(c *candidateContext) models.CandidateFlags {
	batches := c.conflictBatches
	for _, b := range c.busyBatches {
		batches = appendUnique(batches, b)
	}
	return models.CandidateFlags{
		HasOverdueFees:     c.fees.OverdueCount > 0,
		HasPendingFees:     c.fees.PendingCount > 0,
		NoBillingRecord:    !c.hasFees,
		ConflictingBatches: batches,
		ConflictingWindows: c.conflictWindows,
	}
}
