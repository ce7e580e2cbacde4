package models

// Student enrollment lifecycle statuses. The suggestion engine filters the
// pool by a caller-selected subset; active is the default.
const (
	StudentActive      = "active"
	StudentDropped     = "dropped"
	StudentDeactivated = "deactivated"
)

// Student is the slice of a student record the scheduling core reads:
// identity, contact, lifecycle status, curriculum interests and the
// student's own weekly availability pattern (may be empty, meaning
// unspecified).
type Student struct {
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Phone     string         `bson:"phone" json:"phone"`
	Email     string         `bson:"email" json:"email"`
	Status    string         `bson:"status" json:"status"`
	Interests []string       `bson:"interests" json:"interests"`
	Schedule  WeeklySchedule `bson:"-" json:"schedule"`

	// ScheduleEntries is the persisted form of Schedule.
	ScheduleEntries []ScheduleEntry `bson:"schedule,omitempty" json:"-"`
}

// Enrollment is an existing membership of a student in a batch, with the
// batch's own date range and weekly pattern. An empty schedule means the
// batch meets on an unspecified pattern and is treated as unbounded when
// checking collisions.
type Enrollment struct {
	StudentID string         `bson:"studentId" json:"studentId"`
	BatchID   string         `bson:"batchId" json:"batchId"`
	Range     DateRange      `bson:"range" json:"range"`
	Schedule  WeeklySchedule `bson:"-" json:"schedule"`
	Active    bool           `bson:"active" json:"active"`

	ScheduleEntries []ScheduleEntry `bson:"schedule,omitempty" json:"-"`
}

// FeeSummary condenses a student's billing ledger into the two signals the
// classifier needs. A missing summary defaults to clear (fail-open).
type FeeSummary struct {
	OverdueAmount float64 `json:"overdueAmount"`
	PendingAmount float64 `json:"pendingAmount"`
	OverdueCount  int     `json:"overdueCount"`
	PendingCount  int     `json:"pendingCount"`
}

// Invoice is one unpaid ledger line, as stored by the billing collaborator.
type Invoice struct {
	StudentID string  `bson:"studentId" json:"studentId"`
	Amount    float64 `bson:"amount" json:"amount"`
	DueDate   Date    `bson:"dueDate" json:"dueDate"`
	Paid      bool    `bson:"paid" json:"paid"`
}

// OrientationRecord is a per-student, per-language acceptance flag from the
// orientation registry.
type OrientationRecord struct {
	StudentID string `bson:"studentId" json:"studentId"`
	Language  string `bson:"language" json:"language"`
	Accepted  bool   `bson:"accepted" json:"accepted"`
}
