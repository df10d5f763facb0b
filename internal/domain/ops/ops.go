package ops

import (
	"encoding/json"
	"time"
)

// Log levels for LogEntry rows.
const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// SchedulerState is the singleton health row: when the sweeper runs next,
// when the process came up, and what jobs are in flight.
type SchedulerState struct {
	NextRunAt       time.Time       `json:"nextRunAt"`
	UptimeStartedAt time.Time       `json:"uptimeStartedAt"`
	ActiveJobs      json.RawMessage `json:"activeJobs"`
}

// LogEntry is an append-only operational log row, replayable from chat.
type LogEntry struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Level     string          `json:"level"`
	Message   string          `json:"message"`
	Context   json.RawMessage `json:"context,omitempty"`
}
