package game

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/codevote/codevote/internal/domain/chat"
	"github.com/codevote/codevote/internal/domain/code"
	"github.com/codevote/codevote/internal/domain/ops"
	"github.com/codevote/codevote/internal/domain/poll"
)

// Service is the poll/vote/history ledger. Every externally triggered event
// (new round, vote, close, reset) runs as exactly one transaction; partial
// writes are never observable.
type Service struct {
	tx            TxRunner
	maxDupOptions int
	logger        zerolog.Logger
}

// NewService creates the ledger service. maxDupOptions bounds how often a
// single text may repeat in one option list.
func NewService(tx TxRunner, maxDupOptions int, logger zerolog.Logger) *Service {
	if maxDupOptions < 1 {
		maxDupOptions = 1
	}
	return &Service{
		tx:            tx,
		maxDupOptions: maxDupOptions,
		logger:        logger.With().Str("service", "game").Logger(),
	}
}

// StartRoundInput carries everything known at round creation time. The
// transport ids are not part of it; they are bound later, after the poll
// message has actually been sent.
type StartRoundInput struct {
	ChatID         int64
	Options        []string
	TimeoutAt      *time.Time
	OracleRequest  json.RawMessage
	OracleResponse json.RawMessage
}

// FinishResult describes one poll resolution.
type FinishResult struct {
	Poll     *poll.Poll
	Winner   poll.Option
	Line     *code.Line
	Appended bool
}

// RegisterChat returns the chat, creating it lazily on first reference.
func (s *Service) RegisterChat(ctx context.Context, chatID int64) (*chat.Chat, error) {
	var c *chat.Chat
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		c, err = uow.Chats().GetOrCreate(ctx, chatID)
		return err
	})
	return c, err
}

// SetChatAdmins replaces the chat's privileged user set.
func (s *Service) SetChatAdmins(ctx context.Context, chatID int64, adminIDs []int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		if _, err := uow.Chats().GetOrCreate(ctx, chatID); err != nil {
			return err
		}
		return uow.Chats().SetAdminIDs(ctx, chatID, adminIDs)
	})
}

// StartRound opens a new poll pinned to the chat's current history epoch.
// Rejected when the chat's current poll is still active; the single active
// poll per chat invariant is checked explicitly rather than assumed.
func (s *Service) StartRound(ctx context.Context, in StartRoundInput) (*poll.Poll, error) {
	if err := poll.ValidateOptions(in.Options, s.maxDupOptions); err != nil {
		return nil, err
	}

	trace := uuid.NewString()
	var p *poll.Poll
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		c, err := uow.Chats().GetOrCreate(ctx, in.ChatID)
		if err != nil {
			return err
		}
		if c.ActivePollID != nil {
			prev, err := uow.Polls().GetByID(ctx, *c.ActivePollID)
			if err != nil {
				return err
			}
			if prev != nil && prev.Status == poll.StatusActive {
				return fmt.Errorf("chat %d poll %d: %w", c.ID, prev.ID, chat.ErrActivePoll)
			}
		}

		p = &poll.Poll{
			ChatID:         c.ID,
			Status:         poll.StatusActive,
			Epoch:          c.HistoryEpoch,
			CreatedAt:      time.Now(),
			TimeoutAt:      in.TimeoutAt,
			OracleRequest:  in.OracleRequest,
			OracleResponse: in.OracleResponse,
		}
		if err := uow.Polls().Create(ctx, p, in.Options); err != nil {
			return fmt.Errorf("create poll: %w", err)
		}
		if err := uow.Chats().SetActivePoll(ctx, c.ID, &p.ID); err != nil {
			return err
		}
		return s.logEvent(ctx, uow, ops.LevelInfo, "round started", map[string]any{
			"trace":  trace,
			"chatId": c.ID,
			"pollId": p.ID,
			"epoch":  p.Epoch,
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace", trace).Int64("chat_id", p.ChatID).Int64("poll_id", p.ID).Int("epoch", p.Epoch).Msg("round started")
	return p, nil
}

// BindTransportIDs attaches the transport-assigned poll id and message id to
// a poll created before the message was sent.
func (s *Service) BindTransportIDs(ctx context.Context, pollID int64, transportPollID string, messageID int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		return uow.Polls().BindTransportIDs(ctx, pollID, transportPollID, messageID)
	})
}

// RegisterVote records a ballot. Identified voters overwrite their earlier
// ballot for the poll; anonymous ballots always append. Votes arriving after
// the poll is terminal are stored, but the already-fixed winner is never
// affected because resolution happened in its own transaction.
func (s *Service) RegisterVote(ctx context.Context, transportPollID string, voterID *int64, optionIndex int) error {
	return s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		p, err := uow.Polls().GetByTransportID(ctx, transportPollID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("transport poll %q: %w", transportPollID, poll.ErrNotFound)
		}
		opts, err := uow.Polls().ListOptions(ctx, p.ID)
		if err != nil {
			return err
		}
		if optionIndex < 0 || optionIndex >= len(opts) {
			return fmt.Errorf("poll %d index %d of %d: %w", p.ID, optionIndex, len(opts), poll.ErrOptionIndexOutOfRange)
		}
		return uow.Polls().UpsertVote(ctx, &poll.Vote{
			PollID:      p.ID,
			VoterID:     voterID,
			OptionIndex: optionIndex,
			AnsweredAt:  time.Now(),
		})
	})
}

// FinishPoll closes the poll, recounts the votes, resolves the winner and
// appends the winning line, all in one transaction. Idempotent: repeating it on a
// closed poll re-derives the same winner, leaves closedAt untouched and
// appends nothing (the existing poll line is the witness). Rejected and
// failed polls resolve a winner for reporting but never append.
func (s *Service) FinishPoll(ctx context.Context, transportPollID string) (*FinishResult, error) {
	trace := uuid.NewString()
	var res *FinishResult
	var failedPollID int64
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		p, err := uow.Polls().GetByTransportID(ctx, transportPollID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("transport poll %q: %w", transportPollID, poll.ErrNotFound)
		}

		// Tallies come from the vote rows; the cached counters are display
		// only and merely refreshed here.
		counts, err := uow.Polls().CountVotesByOption(ctx, p.ID)
		if err != nil {
			return err
		}
		if err := uow.Polls().RefreshVoteCounts(ctx, p.ID); err != nil {
			return err
		}
		opts, err := uow.Polls().ListOptions(ctx, p.ID)
		if err != nil {
			return err
		}
		for i := range opts {
			opts[i].VoteCount = counts[opts[i].Index]
		}
		winner, err := poll.ResolveWinner(opts)
		if err != nil {
			// Rolls back the whole scope; the poll is marked failed in a
			// follow-up transaction so the mark itself survives.
			if p.Status == poll.StatusActive {
				failedPollID = p.ID
			}
			return fmt.Errorf("resolve winner for poll %d: %w", p.ID, err)
		}

		now := time.Now()
		if p.Close(now) {
			if err := uow.Polls().UpdateStatus(ctx, p.ID, poll.StatusClosed, p.ClosedAt); err != nil {
				return err
			}
		}
		res = &FinishResult{Poll: p, Winner: winner}
		if p.Status != poll.StatusClosed {
			// Rejected or failed: the round never counted.
			return nil
		}

		line, err := uow.Code().GetByPoll(ctx, p.ID)
		if err != nil {
			return err
		}
		if line == nil {
			opt, err := uow.Polls().GetOption(ctx, p.ID, winner.Index)
			if err != nil {
				return err
			}
			if opt == nil {
				return fmt.Errorf("poll %d option %d: %w", p.ID, winner.Index, code.ErrOptionNotFound)
			}
			// Numbering is scoped to the poll's own epoch: a round that
			// resolves after a reset lands in the pre-reset sequence.
			n, err := uow.Code().NextLineNumber(ctx, p.ChatID, p.Epoch)
			if err != nil {
				return err
			}
			line = &code.Line{
				ChatID:     p.ChatID,
				PollID:     p.ID,
				Epoch:      p.Epoch,
				LineNumber: n,
				Text:       opt.Text,
				CreatedAt:  now,
			}
			if err := uow.Code().Append(ctx, line); err != nil {
				return fmt.Errorf("append line: %w", err)
			}
			res.Appended = true
			if err := s.logEvent(ctx, uow, ops.LevelInfo, "poll finished", map[string]any{
				"trace":      trace,
				"chatId":     p.ChatID,
				"pollId":     p.ID,
				"epoch":      p.Epoch,
				"winner":     winner.Index,
				"lineNumber": line.LineNumber,
			}); err != nil {
				return err
			}
		}
		res.Line = line
		return nil
	})
	if err != nil {
		if failedPollID != 0 {
			if ferr := s.FailPoll(ctx, failedPollID); ferr != nil {
				s.logger.Error().Err(ferr).Int64("poll_id", failedPollID).Msg("mark poll failed")
			}
		}
		return nil, err
	}
	s.logger.Info().Str("trace", trace).Int64("poll_id", res.Poll.ID).Int("winner_index", res.Winner.Index).Bool("appended", res.Appended).Msg("poll finished")
	return res, nil
}

// FailPoll marks an active poll failed, e.g. when the transport could not
// deliver the poll message. No-op on terminal polls.
func (s *Service) FailPoll(ctx context.Context, pollID int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		p, err := uow.Polls().GetByID(ctx, pollID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("poll %d: %w", pollID, poll.ErrNotFound)
		}
		if !p.Fail() {
			return nil
		}
		return uow.Polls().UpdateStatus(ctx, p.ID, poll.StatusFailed, nil)
	})
}

// ResetHistory starts a fresh epoch for the chat. The active poll, if any,
// is rejected before the epoch advances: once the epoch moves, a late close
// of that poll appends into its own stale epoch and current code stays
// clean. Nothing is deleted; old epochs remain queryable.
func (s *Service) ResetHistory(ctx context.Context, chatID int64) (*chat.Chat, error) {
	var c *chat.Chat
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		cur, err := uow.Chats().GetOrCreate(ctx, chatID)
		if err != nil {
			return err
		}
		if cur.ActivePollID != nil {
			p, err := uow.Polls().GetByID(ctx, *cur.ActivePollID)
			if err != nil {
				return err
			}
			if p != nil {
				now := time.Now()
				if p.Reject(now) {
					if err := uow.Polls().UpdateStatus(ctx, p.ID, poll.StatusRejected, p.ClosedAt); err != nil {
						return err
					}
				}
			}
		}
		c, err = uow.Chats().AdvanceEpoch(ctx, chatID)
		if err != nil {
			return err
		}
		return s.logEvent(ctx, uow, ops.LevelInfo, "history reset", map[string]any{
			"chatId": chatID,
			"epoch":  c.HistoryEpoch,
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("chat_id", chatID).Int("epoch", c.HistoryEpoch).Msg("history reset")
	return c, nil
}

// HardResetCode bulk-deletes every code line of the chat, all epochs.
// Administrative escape hatch; normal resets only advance the epoch.
func (s *Service) HardResetCode(ctx context.Context, chatID int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		c, err := uow.Chats().Get(ctx, chatID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("chat %d: %w", chatID, chat.ErrNotFound)
		}
		if err := uow.Code().DeleteAllForChat(ctx, chatID); err != nil {
			return err
		}
		return s.logEvent(ctx, uow, ops.LevelWarn, "code hard reset", map[string]any{"chatId": chatID})
	})
}

// CurrentCode returns the chat's program for its current epoch: the lines
// appended since the last reset, in order.
func (s *Service) CurrentCode(ctx context.Context, chatID int64) ([]string, error) {
	var lines []string
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		c, err := uow.Chats().Get(ctx, chatID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("chat %d: %w", chatID, chat.ErrNotFound)
		}
		rows, err := uow.Code().ListByEpoch(ctx, chatID, c.HistoryEpoch)
		if err != nil {
			return err
		}
		lines = make([]string, 0, len(rows))
		for _, l := range rows {
			lines = append(lines, l.Text)
		}
		return nil
	})
	return lines, err
}

// CodeForEpoch returns the chat's program for an explicit epoch, letting
// callers read history from before a reset.
func (s *Service) CodeForEpoch(ctx context.Context, chatID int64, epoch int) ([]*code.Line, error) {
	var rows []*code.Line
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		rows, err = uow.Code().ListByEpoch(ctx, chatID, epoch)
		return err
	})
	return rows, err
}

// SaveCompleted stores a full-program artifact produced by the oracle's
// complete mode, versioned under the chat's current epoch.
func (s *Service) SaveCompleted(ctx context.Context, chatID int64, text string, oracleReq, oracleResp json.RawMessage) (*code.Snapshot, error) {
	var snap *code.Snapshot
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		c, err := uow.Chats().Get(ctx, chatID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("chat %d: %w", chatID, chat.ErrNotFound)
		}
		snap = &code.Snapshot{
			ChatID:         chatID,
			Epoch:          c.HistoryEpoch,
			Text:           text,
			CreatedAt:      time.Now(),
			OracleRequest:  oracleReq,
			OracleResponse: oracleResp,
		}
		if err := uow.Snapshots().Save(ctx, snap); err != nil {
			return err
		}
		return s.logEvent(ctx, uow, ops.LevelInfo, "snapshot saved", map[string]any{
			"chatId": chatID,
			"epoch":  snap.Epoch,
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// LatestSnapshot returns the chat's newest completed-program artifact, or
// nil when none exists.
func (s *Service) LatestSnapshot(ctx context.Context, chatID int64) (*code.Snapshot, error) {
	var snap *code.Snapshot
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		snap, err = uow.Snapshots().GetLatestForChat(ctx, chatID)
		return err
	})
	return snap, err
}

// ActivePoll returns the chat's currently active poll, or nil.
func (s *Service) ActivePoll(ctx context.Context, chatID int64) (*poll.Poll, error) {
	var p *poll.Poll
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		p, err = uow.Polls().GetActiveForChat(ctx, chatID)
		return err
	})
	return p, err
}

// ListTimedOutPolls returns active polls whose deadline has passed. Used by
// the sweeper; the ledger itself is passive with respect to time.
func (s *Service) ListTimedOutPolls(ctx context.Context, now time.Time, limit int) ([]*poll.Poll, error) {
	var polls []*poll.Poll
	err := s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		polls, err = uow.Polls().ListTimedOut(ctx, now, limit)
		return err
	})
	return polls, err
}

// RecountPoll resynchronizes a poll's cached option counters from its vote
// rows. Deterministic and safe to repeat; useful after a restart.
func (s *Service) RecountPoll(ctx context.Context, pollID int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		return uow.Polls().RefreshVoteCounts(ctx, pollID)
	})
}

func (s *Service) logEvent(ctx context.Context, uow UnitOfWork, level, msg string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return uow.Ops().AddLog(ctx, &ops.LogEntry{
		CreatedAt: time.Now(),
		Level:     level,
		Message:   msg,
		Context:   payload,
	})
}
