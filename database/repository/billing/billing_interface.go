package billingRepo

import (
	"context"

	"academis/models"
)

// BillingRepository defines read access to the billing ledger.
type BillingRepository interface {
	// SummariesForStudents retrieves unpaid-invoice summaries for the given
	// students in one query, keyed by student ID. Students with no unpaid
	// invoices are absent from the map.
	SummariesForStudents(ctx context.Context, studentIDs []string, asOf models.Date) (map[string]models.FeeSummary, error)
}
