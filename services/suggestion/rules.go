package suggestion

import (
	"fmt"

	"academis/models"
	"academis/services/schedule"
)

// candidateContext carries one student's precomputed signals through the
// classification rules.
type candidateContext struct {
	student     models.Student
	spec        models.BatchSpec
	enrollments []models.Enrollment
	fees        models.FeeSummary
	hasFees     bool
	oriented    bool

	// Filled lazily by the conflict predicates.
	conflictBatches []string
	conflictWindows []models.ConflictWindow
	busyBatches     []string
}

// rule is one named classification predicate. Rules run in fixed precedence
// order; the first match decides the status.
type rule struct {
	status  models.CandidateStatus
	message func(*candidateContext) string
	match   func(*candidateContext) bool
}

var classificationRules = []rule{
	{
		status: models.StatusNoOrientation,
		match:  func(c *candidateContext) bool { return !c.oriented },
		message: func(c *candidateContext) string {
			return "No accepted orientation on record"
		},
	},
	{
		status: models.StatusFeesOverdue,
		match:  func(c *candidateContext) bool { return c.fees.OverdueCount > 0 },
		message: func(c *candidateContext) string {
			return fmt.Sprintf("%d payment(s) past due", c.fees.OverdueCount)
		},
	},
	{
		status: models.StatusPendingFees,
		match:  func(c *candidateContext) bool { return c.fees.PendingCount > 0 },
		message: func(c *candidateContext) string {
			return fmt.Sprintf("%d payment(s) due", c.fees.PendingCount)
		},
	},
	{
		status: models.StatusDayMismatch,
		match:  dayMismatch,
		message: func(c *candidateContext) string {
			return "Student's weekly pattern shares no day with the batch"
		},
	},
	{
		status: models.StatusTimeConflict,
		match:  timeConflict,
		message: func(c *candidateContext) string {
			return fmt.Sprintf("Time collision with batch(es): %v", c.conflictBatches)
		},
	},
	{
		status: models.StatusBusy,
		match:  busy,
		message: func(c *candidateContext) string {
			return fmt.Sprintf("Overlapping enrollment(s) without precise times: %v", c.busyBatches)
		},
	},
}

// dayMismatch: the student's own weekly pattern shares no weekday with the
// batch. A student with no recorded pattern is "unspecified", not "available
// on no day", so the rule is skipped for them (conservative default: an
// unspecified pattern cannot assert a mismatch).
func dayMismatch(c *candidateContext) bool {
	if c.student.Schedule.IsEmpty() || c.spec.Schedule.IsEmpty() {
		return false
	}
	return len(schedule.DayMatches(c.student.Schedule, c.spec.Schedule)) == 0
}

// timeConflict: an active overlapping enrollment's windows collide with the
// batch's proposed window on a shared weekday. The student's own pattern is
// an availability statement, not a commitment, so it never produces a time
// conflict; only active enrollments do. Dropped or completed enrollments no
// longer occupy the slot.
func timeConflict(c *candidateContext) bool {
	for _, e := range c.enrollments {
		if !e.Active || !e.Range.Overlaps(c.spec.Range) {
			continue
		}
		for _, o := range schedule.Overlaps(e.Schedule, c.spec.Schedule) {
			if !o.TimesCollide {
				continue
			}
			c.conflictBatches = appendUnique(c.conflictBatches, e.BatchID)
			c.conflictWindows = append(c.conflictWindows, models.ConflictWindow{
				Day:      models.WeekdayName(o.Day),
				Existing: o.WindowA,
				Proposed: o.WindowB,
			})
		}
	}
	return len(c.conflictBatches) > 0
}

// busy: an active overlapping enrollment exists but no precise collision
// could be established because one side's pattern is unspecified. Missing
// times are treated as unbounded, which blocks the slot conservatively but
// is reported as busy rather than a hard time conflict.
func busy(c *candidateContext) bool {
	for _, e := range c.enrollments {
		if !e.Active || !e.Range.Overlaps(c.spec.Range) {
			continue
		}
		if e.Schedule.IsEmpty() || c.spec.Schedule.IsEmpty() {
			c.busyBatches = appendUnique(c.busyBatches, e.BatchID)
		}
	}
	return len(c.busyBatches) > 0
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
