package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"academis/config"
	enrollmentRepo "academis/database/repository/enrollment"
	facultyRepo "academis/database/repository/faculty"
	"academis/models"
	"academis/utils"
)

// FacultyLoadSummaryKey is where the latest load report is cached.
const FacultyLoadSummaryKey = "faculty:load-summary"

// batchLoad is one batch's slice of a faculty member's load: the batch and
// its current active head count.
type batchLoad struct {
	BatchID  string `json:"batchId"`
	Enrolled int    `json:"enrolled"`
}

// facultyLoad is one faculty member's assignment load over the horizon.
type facultyLoad struct {
	FacultyID   string      `json:"facultyId"`
	Assignments int         `json:"assignments"`
	Batches     []batchLoad `json:"batches"`
}

type loadSummary struct {
	From       models.Date   `json:"from"`
	To         models.Date   `json:"to"`
	Faculty    []facultyLoad `json:"faculty"`
	ComputedAt string        `json:"computedAt"`
}

// StartFacultySummaryWorker schedules the periodic faculty-load summary job.
// The report is an ops read model only; scheduling decisions never consume it.
func StartFacultySummaryWorker(faculty facultyRepo.FacultyRepository, enrollments enrollmentRepo.EnrollmentRepository, cache *redis.Client) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	spec := config.AppConfig.FacultySummaryCron
	if _, err := c.AddFunc(spec, func() {
		if err := computeFacultySummary(faculty, enrollments, cache); err != nil {
			logger.Error("faculty summary job failed", zap.Error(err))
		}
	}); err != nil {
		logger.Error("failed to schedule faculty summary job",
			zap.String("spec", spec), zap.Error(err))
		return c
	}

	c.Start()
	logger.Info("faculty summary worker started", zap.String("spec", spec))
	return c
}

func computeFacultySummary(faculty facultyRepo.FacultyRepository, enrollments enrollmentRepo.EnrollmentRepository, cache *redis.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	from := models.DateOf(now)
	to := models.DateOf(now.AddDate(0, 0, config.AppConfig.FacultySummaryHorizon))

	assignments, err := faculty.UpcomingAssignments(ctx, from, to)
	if err != nil {
		return err
	}
	enrolled, err := activeEnrollmentCounts(ctx, enrollments, assignments)
	if err != nil {
		return err
	}

	summary := buildLoadSummary(from, to, assignments, enrolled, now)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	if err := cache.Set(ctx, FacultyLoadSummaryKey, data, 0).Err(); err != nil {
		return err
	}

	utils.GetLogger().Info("faculty load summary refreshed",
		zap.Int("faculty", len(summary.Faculty)),
		zap.Int("assignments", len(assignments)))
	return nil
}

// activeEnrollmentCounts fetches each assigned batch's roster once and counts
// its active enrollments.
func activeEnrollmentCounts(ctx context.Context, enrollments enrollmentRepo.EnrollmentRepository, assignments []models.FacultyAssignment) (map[string]int, error) {
	counts := make(map[string]int)
	for _, a := range assignments {
		if _, done := counts[a.BatchID]; done {
			continue
		}
		roster, err := enrollments.ForBatch(ctx, a.BatchID)
		if err != nil {
			return nil, err
		}
		active := 0
		for _, e := range roster {
			if e.Active {
				active++
			}
		}
		counts[a.BatchID] = active
	}
	return counts, nil
}

// buildLoadSummary folds assignments and per-batch head counts into the
// report, preserving first-seen faculty order.
func buildLoadSummary(from, to models.Date, assignments []models.FacultyAssignment, enrolled map[string]int, computedAt time.Time) loadSummary {
	byFaculty := make(map[string]*facultyLoad)
	order := []string{}
	for _, a := range assignments {
		load, ok := byFaculty[a.FacultyID]
		if !ok {
			load = &facultyLoad{FacultyID: a.FacultyID}
			byFaculty[a.FacultyID] = load
			order = append(order, a.FacultyID)
		}
		load.Assignments++
		load.Batches = append(load.Batches, batchLoad{
			BatchID:  a.BatchID,
			Enrolled: enrolled[a.BatchID],
		})
	}

	summary := loadSummary{
		From:       from,
		To:         to,
		ComputedAt: computedAt.UTC().Format(time.RFC3339),
	}
	for _, id := range order {
		summary.Faculty = append(summary.Faculty, *byFaculty[id])
	}
	return summary
}
