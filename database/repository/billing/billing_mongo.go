package billingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"academis/database"
	"academis/models"
)

// MongoBillingRepo implements BillingRepository using MongoDB.
type MongoBillingRepo struct {
	coll *mongo.Collection
}

// NewMongoBillingRepo creates a new instance of BillingRepository using MongoDB.
func NewMongoBillingRepo() BillingRepository {
	repo := &MongoBillingRepo{coll: database.Collection("invoices")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoBillingRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "paid", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// SummariesForStudents fetches all unpaid invoices for the given students in
// one query and folds them into per-student overdue/pending summaries. An
// invoice is overdue when its due date is strictly before asOf, pending
// otherwise.
func (r *MongoBillingRepo) SummariesForStudents(ctx context.Context, studentIDs []string, asOf models.Date) (map[string]models.FeeSummary, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"studentId": bson.M{"$in": studentIDs},
		"paid":      false,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid invoices: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := make(map[string]models.FeeSummary)
	for cursor.Next(ctx) {
		var inv models.Invoice
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		s := summaries[inv.StudentID]
		if inv.DueDate < asOf {
			s.OverdueCount++
			s.OverdueAmount += inv.Amount
		} else {
			s.PendingCount++
			s.PendingAmount += inv.Amount
		}
		summaries[inv.StudentID] = s
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("invoice cursor error: %w", err)
	}
	return summaries, nil
}
