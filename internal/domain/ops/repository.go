package ops

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"
	"time"
)

// Repository defines operational state persistence.
type Repository interface {
	// GetState returns the singleton scheduler row, creating it with
	// defaults when absent.
	GetState(ctx context.Context) (*SchedulerState, error)
	SetNextRun(ctx context.Context, nextRunAt time.Time) error
	SetActiveJobs(ctx context.Context, jobs []byte) error
	AddLog(ctx context.Context, entry *LogEntry) error
	// ListRecentLogs returns the newest entries, oldest first.
	ListRecentLogs(ctx context.Context, limit int) ([]*LogEntry, error)
	// ListAllLogs returns every entry in insertion order; limit <= 0 means
	// no limit.
	ListAllLogs(ctx context.Context, limit int) ([]*LogEntry, error)
}
