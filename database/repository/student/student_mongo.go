package studentRepo

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

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo creates a new instance of StudentRepository using MongoDB.
func NewMongoStudentRepo() StudentRepository {
	repo := &MongoStudentRepo{coll: database.Collection("students")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoStudentRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListByStatuses retrieves all students in the given status set.
func (r *MongoStudentRepo) ListByStatuses(ctx context.Context, statuses []string) ([]models.Student, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": bson.M{"$in": statuses}})
	if err != nil {
		return nil, fmt.Errorf("failed to list students by status: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	for cursor.Next(ctx) {
		var s models.Student
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		s.Schedule = models.ScheduleFromEntries(s.ScheduleEntries)
		students = append(students, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("student cursor error: %w", err)
	}
	return students, nil
}
