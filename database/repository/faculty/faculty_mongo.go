package facultyRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"academis/database"
	"academis/models"
)

// MongoFacultyRepo implements FacultyRepository using MongoDB.
type MongoFacultyRepo struct {
	coll *mongo.Collection
}

// NewMongoFacultyRepo creates a new instance of FacultyRepository using MongoDB.
func NewMongoFacultyRepo() FacultyRepository {
	repo := &MongoFacultyRepo{coll: database.Collection("faculty_assignments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoFacultyRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "facultyId", Value: 1}, {Key: "range.startDate", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// AssignmentsOverlapping retrieves every assignment of the given faculty
// whose date range overlaps rng, grouped by faculty ID.
func (r *MongoFacultyRepo) AssignmentsOverlapping(ctx context.Context, facultyIDs []string, rng models.DateRange) (map[string][]models.FacultyAssignment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"facultyId":       bson.M{"$in": facultyIDs},
		"range.startDate": bson.M{"$lte": string(rng.End)},
		"range.endDate":   bson.M{"$gte": string(rng.Start)},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping assignments: %w", err)
	}
	defer cursor.Close(ctx)

	grouped := make(map[string][]models.FacultyAssignment)
	for cursor.Next(ctx) {
		var a models.FacultyAssignment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode faculty assignment: %w", err)
		}
		a.Schedule = models.ScheduleFromEntries(a.ScheduleEntries)
		grouped[a.FacultyID] = append(grouped[a.FacultyID], a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("faculty assignment cursor error: %w", err)
	}
	return grouped, nil
}

// UpcomingAssignments retrieves all assignments active between from and to.
func (r *MongoFacultyRepo) UpcomingAssignments(ctx context.Context, from, to models.Date) ([]models.FacultyAssignment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"range.startDate": bson.M{"$lte": string(to)},
		"range.endDate":   bson.M{"$gte": string(from)},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []models.FacultyAssignment
	for cursor.Next(ctx) {
		var a models.FacultyAssignment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode faculty assignment: %w", err)
		}
		a.Schedule = models.ScheduleFromEntries(a.ScheduleEntries)
		assignments = append(assignments, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("faculty assignment cursor error: %w", err)
	}
	return assignments, nil
}
