package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/codevote/codevote/internal/domain/poll"
)

// Ledger is the slice of the game service the sweeper reads.
type Ledger interface {
	ListTimedOutPolls(ctx context.Context, now time.Time, limit int) ([]*poll.Poll, error)
}

// Heartbeater records sweep scheduling state for health reporting.
type Heartbeater interface {
	Heartbeat(ctx context.Context, nextRunAt time.Time, activeJobs []string) error
}

// Finisher closes one timed-out round end to end.
type Finisher interface {
	FinishRound(ctx context.Context, p *poll.Poll) error
}

// Sweeper periodically closes rounds whose deadline has passed. Closing is
// idempotent on the ledger side, so a round swept twice resolves once.
type Sweeper struct {
	ledger   Ledger
	ops      Heartbeater
	finisher Finisher
	interval time.Duration
	batch    int
	logger   zerolog.Logger
}

func NewSweeper(ledger Ledger, ops Heartbeater, finisher Finisher, interval time.Duration, batch int, logger zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if batch <= 0 {
		batch = 50
	}
	return &Sweeper{
		ledger:   ledger,
		ops:      ops,
		finisher: finisher,
		interval: interval,
		batch:    batch,
		logger:   logger.With().Str("service", "sweeper").Logger(),
	}
}

// Run ticks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep closes every overdue round it can find, one at a time. A failure on
// one poll does not block the rest; the poll is retried next tick.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := time.Now()
	polls, err := s.ledger.ListTimedOutPolls(ctx, now, s.batch)
	if err != nil {
		s.logger.Error().Err(err).Msg("list timed out polls")
		return
	}

	jobs := make([]string, 0, len(polls))
	for _, p := range polls {
		jobs = append(jobs, fmt.Sprintf("finish poll %d", p.ID))
	}
	if err := s.ops.Heartbeat(ctx, now.Add(s.interval), jobs); err != nil {
		s.logger.Warn().Err(err).Msg("record heartbeat")
	}

	for _, p := range polls {
		if err := s.finisher.FinishRound(ctx, p); err != nil {
			s.logger.Error().Err(err).Int64("poll_id", p.ID).Msg("finish timed out poll")
			continue
		}
		s.logger.Info().Int64("poll_id", p.ID).Int64("chat_id", p.ChatID).Msg("timed out poll closed")
	}
}
