package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/codevote/codevote/internal/domain/poll"
)

type stubLedger struct {
	polls []*poll.Poll
	err   error
}

func (s *stubLedger) ListTimedOutPolls(ctx context.Context, now time.Time, limit int) ([]*poll.Poll, error) {
	return s.polls, s.err
}

type stubHeartbeater struct {
	jobs [][]string
}

func (s *stubHeartbeater) Heartbeat(ctx context.Context, nextRunAt time.Time, activeJobs []string) error {
	s.jobs = append(s.jobs, activeJobs)
	return nil
}

type stubFinisher struct {
	finished []int64
	failOn   int64
}

func (s *stubFinisher) FinishRound(ctx context.Context, p *poll.Poll) error {
	if p.ID == s.failOn {
		return errors.New("boom")
	}
	s.finished = append(s.finished, p.ID)
	return nil
}

func TestSweep_FinishesOverduePolls(t *testing.T) {
	ledger := &stubLedger{polls: []*poll.Poll{{ID: 1, ChatID: 5}, {ID: 2, ChatID: 6}}}
	hb := &stubHeartbeater{}
	fin := &stubFinisher{}
	s := NewSweeper(ledger, hb, fin, time.Second, 10, zerolog.Nop())

	s.Sweep(context.Background())

	assert.Equal(t, []int64{1, 2}, fin.finished)
	assert.Equal(t, [][]string{{"finish poll 1", "finish poll 2"}}, hb.jobs)
}

func TestSweep_OneFailureDoesNotBlockRest(t *testing.T) {
	ledger := &stubLedger{polls: []*poll.Poll{{ID: 1}, {ID: 2}, {ID: 3}}}
	fin := &stubFinisher{failOn: 2}
	s := NewSweeper(ledger, &stubHeartbeater{}, fin, time.Second, 10, zerolog.Nop())

	s.Sweep(context.Background())

	assert.Equal(t, []int64{1, 3}, fin.finished)
}

func TestSweep_ListErrorSkipsTick(t *testing.T) {
	ledger := &stubLedger{err: errors.New("db down")}
	hb := &stubHeartbeater{}
	fin := &stubFinisher{}
	s := NewSweeper(ledger, hb, fin, time.Second, 10, zerolog.Nop())

	s.Sweep(context.Background())

	assert.Empty(t, fin.finished)
	assert.Empty(t, hb.jobs)
}

func TestSweep_NoOverduePollsStillHeartbeats(t *testing.T) {
	hb := &stubHeartbeater{}
	s := NewSweeper(&stubLedger{}, hb, &stubFinisher{}, time.Second, 10, zerolog.Nop())

	s.Sweep(context.Background())

	assert.Equal(t, [][]string{{}}, hb.jobs)
}
