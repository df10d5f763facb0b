package ops

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/codevote/codevote/internal/application/game"
	domainOps "github.com/codevote/codevote/internal/domain/ops"
)

// Service exposes operational state: health reports, sweep heartbeats and
// the replayable event log.
type Service struct {
	tx     game.TxRunner
	logger zerolog.Logger
}

func NewService(tx game.TxRunner, logger zerolog.Logger) *Service {
	return &Service{
		tx:     tx,
		logger: logger.With().Str("service", "ops").Logger(),
	}
}

// HealthReport is a point-in-time operational summary for one chat.
type HealthReport struct {
	Now             time.Time       `json:"now"`
	UptimeStartedAt time.Time       `json:"uptimeStartedAt"`
	Uptime          string          `json:"uptime"`
	NextRunAt       *time.Time      `json:"nextRunAt,omitempty"`
	ActiveJobs      json.RawMessage `json:"activeJobs,omitempty"`
	HasActivePoll   bool            `json:"hasActivePoll"`
	HistoryEpoch    int             `json:"historyEpoch"`
	CodeLines       int             `json:"codeLines"`
}

// Health assembles the report for a chat: scheduler state plus the chat's
// ledger position.
func (s *Service) Health(ctx context.Context, chatID int64) (*HealthReport, error) {
	now := time.Now()
	report := &HealthReport{Now: now}
	err := s.tx.InTx(ctx, func(ctx context.Context, uow game.UnitOfWork) error {
		state, err := uow.Ops().GetState(ctx)
		if err != nil {
			return err
		}
		report.UptimeStartedAt = state.UptimeStartedAt
		report.Uptime = now.Sub(state.UptimeStartedAt).Round(time.Second).String()
		if !state.NextRunAt.IsZero() {
			nextRun := state.NextRunAt
			report.NextRunAt = &nextRun
		}
		report.ActiveJobs = state.ActiveJobs

		c, err := uow.Chats().Get(ctx, chatID)
		if err != nil {
			return err
		}
		if c == nil {
			return nil
		}
		report.HistoryEpoch = c.HistoryEpoch
		if c.ActivePollID != nil {
			p, err := uow.Polls().GetByID(ctx, *c.ActivePollID)
			if err != nil {
				return err
			}
			report.HasActivePoll = p != nil && !p.Status.Terminal()
		}
		lines, err := uow.Code().ListByEpoch(ctx, chatID, c.HistoryEpoch)
		if err != nil {
			return err
		}
		report.CodeLines = len(lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Heartbeat records the sweeper's next scheduled run and current in-flight
// jobs. Called once per sweep tick.
func (s *Service) Heartbeat(ctx context.Context, nextRunAt time.Time, activeJobs []string) error {
	jobs, err := json.Marshal(activeJobs)
	if err != nil {
		return err
	}
	return s.tx.InTx(ctx, func(ctx context.Context, uow game.UnitOfWork) error {
		if err := uow.Ops().SetNextRun(ctx, nextRunAt); err != nil {
			return err
		}
		return uow.Ops().SetActiveJobs(ctx, jobs)
	})
}

// RecentLogs returns the newest limit entries, oldest first.
func (s *Service) RecentLogs(ctx context.Context, limit int) ([]*domainOps.LogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []*domainOps.LogEntry
	err := s.tx.InTx(ctx, func(ctx context.Context, uow game.UnitOfWork) error {
		var err error
		entries, err = uow.Ops().ListRecentLogs(ctx, limit)
		return err
	})
	return entries, err
}

// AllLogs returns the full event log in insertion order; limit <= 0 means
// everything.
func (s *Service) AllLogs(ctx context.Context, limit int) ([]*domainOps.LogEntry, error) {
	var entries []*domainOps.LogEntry
	err := s.tx.InTx(ctx, func(ctx context.Context, uow game.UnitOfWork) error {
		var err error
		entries, err = uow.Ops().ListAllLogs(ctx, limit)
		return err
	})
	return entries, err
}
