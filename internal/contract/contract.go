// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/apolabs/autoscope/schema"
)

// StoreManager defines the interface for managing persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetResultStore() CacheStore
	GetRunStore() RunStore
}

// CacheStore defines the interface for analysis result caching.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// RunStore defines the interface for tracking analysis runs and storing scores.
type RunStore interface {
	// BeginRun creates a new analysis run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the analysis run with completion data
	EndRun(runID int64, endTime time.Time, totalTechnologies int) error

	// RecordScores stores final scores for a technology
	RecordScores(runID int64, technologyID string, record schema.ScoreRecord) error

	// RecordProjection stores one projected year for a technology
	RecordProjection(runID int64, technologyID string, record schema.ProjectionRecord) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns retrieves every run for export
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllScores retrieves every score row for export
	GetAllScores() ([]schema.ScoreRow, error)

	// GetAllProjections retrieves every projection row for export
	GetAllProjections() ([]schema.ProjectionRow, error)

	// Close closes the underlying connection
	Close() error
}
