package models

// CandidateStatus is the closed classification outcome set for a prospective
// student against a draft batch.
type CandidateStatus string

const (
	StatusAvailable     CandidateStatus = "available"
	StatusBusy          CandidateStatus = "busy"
	StatusTimeConflict  CandidateStatus = "time_conflict"
	StatusDayMismatch   CandidateStatus = "day_mismatch"
	StatusPendingFees   CandidateStatus = "pending_fees"
	StatusFeesOverdue   CandidateStatus = "fees_overdue"
	StatusNoOrientation CandidateStatus = "no_orientation"
)

// CandidateFlags carries the raw signals behind a classification so callers
// can render detail without re-deriving it.
type CandidateFlags struct {
	HasOverdueFees bool `json:"hasOverdueFees"`
	HasPendingFees bool `json:"hasPendingFees"`
	// NoBillingRecord marks students whose fee status is clear only because
	// the ledger holds nothing for them, typically new admissions.
	NoBillingRecord    bool             `json:"noBillingRecord"`
	ConflictingBatches []string         `json:"conflictingBatches,omitempty"`
	ConflictingWindows []ConflictWindow `json:"conflictingWindows,omitempty"`
}

// CandidateResult is one classified student in a suggestion report.
type CandidateResult struct {
	StudentID     string          `json:"studentId"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Status        CandidateStatus `json:"status"`
	StatusMessage string          `json:"statusMessage"`
	Flags         CandidateFlags  `json:"flags"`
	OverdueAmount float64         `json:"overdueAmount"`
	PendingAmount float64         `json:"pendingAmount"`
}

// SuggestionReport is the ranked output of one suggestion run, produced
// fresh on every invocation and never cached.
type SuggestionReport struct {
	Candidates []CandidateResult       `json:"candidates"`
	Summary    map[CandidateStatus]int `json:"summary"`
}
