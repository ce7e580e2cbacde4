package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest probe result per dependency. Sessions covers
// the redis DB holding draft batch sessions; Cache covers the ops read-model
// DB (faculty load summaries).
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	Sessions  bool      `json:"sessions"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Degraded reports whether a dependency the scheduling flows cannot run
// without is down. The summary cache is excluded: losing it only stales the
// ops report.
func (s HealthStatus) Degraded() bool {
	return !s.Mongo || !s.Sessions
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes mongo and both redis DBs once a minute and keeps
// the snapshot in memory for the health endpoint. One probe runs immediately
// so the endpoint never serves the zero snapshot.
func StartHealthMonitor(cache, sessions *redis.Client, mongoClient *mongo.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		snapshot := HealthStatus{
			Mongo:     mongoClient.Ping(ctx, nil) == nil,
			Cache:     cache.Ping(ctx).Err() == nil,
			Sessions:  sessions.Ping(ctx).Err() == nil,
			CheckedAt: time.Now(),
		}

		healthMu.Lock()
		currentHealth = snapshot
		healthMu.Unlock()
	}

	go func() {
		probe()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
