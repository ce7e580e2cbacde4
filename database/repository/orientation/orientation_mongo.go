package orientationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"academis/database"
	"academis/models"
)

// MongoOrientationRepo implements OrientationRepository using MongoDB.
type MongoOrientationRepo struct {
	coll *mongo.Collection
}

// NewMongoOrientationRepo creates a new instance of OrientationRepository using MongoDB.
func NewMongoOrientationRepo() OrientationRepository {
	repo := &MongoOrientationRepo{coll: database.Collection("orientations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoOrientationRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "accepted", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// AcceptedForStudents reports which students hold an accepted orientation in
// any supported language.
func (r *MongoOrientationRepo) AcceptedForStudents(ctx context.Context, studentIDs []string) (map[string]bool, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"studentId": bson.M{"$in": studentIDs},
		"accepted":  true,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query orientation acceptances: %w", err)
	}
	defer cursor.Close(ctx)

	accepted := make(map[string]bool)
	for cursor.Next(ctx) {
		var rec models.OrientationRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode orientation record: %w", err)
		}
		accepted[rec.StudentID] = true
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("orientation cursor error: %w", err)
	}
	return accepted, nil
}
