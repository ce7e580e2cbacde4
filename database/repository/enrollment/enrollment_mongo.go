package enrollmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"academis/database"
	"academis/models"
)

// MongoEnrollmentRepo implements EnrollmentRepository using MongoDB.
type MongoEnrollmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEnrollmentRepo creates a new instance of EnrollmentRepository using MongoDB.
func NewMongoEnrollmentRepo() EnrollmentRepository {
	repo := &MongoEnrollmentRepo{coll: database.Collection("enrollments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoEnrollmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "range.startDate", Value: 1}}},
		{Keys: bson.D{{Key: "batchId", Value: 1}}, Options: options.Index()},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ForStudentsOverlapping retrieves every enrollment of the given students
// overlapping rng, grouped by student ID. ISO date strings compare
// lexicographically, so the range filter works on plain string comparison.
func (r *MongoEnrollmentRepo) ForStudentsOverlapping(ctx context.Context, studentIDs []string, rng models.DateRange) (map[string][]models.Enrollment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"studentId":       bson.M{"$in": studentIDs},
		"range.startDate": bson.M{"$lte": string(rng.End)},
		"range.endDate":   bson.M{"$gte": string(rng.Start)},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	grouped := make(map[string][]models.Enrollment)
	for cursor.Next(ctx) {
		var e models.Enrollment
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode enrollment: %w", err)
		}
		e.Schedule = models.ScheduleFromEntries(e.ScheduleEntries)
		grouped[e.StudentID] = append(grouped[e.StudentID], e)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("enrollment cursor error: %w", err)
	}
	return grouped, nil
}

// ForBatch retrieves all enrollments of a batch.
func (r *MongoEnrollmentRepo) ForBatch(ctx context.Context, batchID string) ([]models.Enrollment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"batchId": batchID})
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments for batch %s: %w", batchID, err)
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	for cursor.Next(ctx) {
		var e models.Enrollment
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode enrollment: %w", err)
		}
		e.Schedule = models.ScheduleFromEntries(e.ScheduleEntries)
		enrollments = append(enrollments, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("enrollment cursor error: %w", err)
	}
	return enrollments, nil
}
