package poll

import (
	"encoding/json"
	"errors"
	"time"
)

// Status represents poll status.
type Status string

const (
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)

// Terminal reports whether the status is absorbing. Transitions attempted on
// a terminal poll are no-ops, which is what makes every lifecycle operation
// idempotent under at-least-once delivery.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusRejected || s == StatusFailed
}

var (
	// ErrNotFound is returned when a referenced poll does not exist.
	ErrNotFound = errors.New("poll not found")
	// ErrTooFewOptions rejects rounds with fewer than two candidate lines.
	ErrTooFewOptions = errors.New("poll needs at least two options")
	// ErrTooManyDuplicates rejects option lists where one text repeats more
	// often than the configured limit allows.
	ErrTooManyDuplicates = errors.New("too many duplicate options")
	// ErrOptionIndexOutOfRange rejects votes outside the poll's option range.
	ErrOptionIndexOutOfRange = errors.New("option index out of range")
	// ErrNoOptions means winner resolution was attempted on a poll without
	// options; should be unreachable given creation validation.
	ErrNoOptions = errors.New("poll has no options")
)

// Poll is one voting round, pinned forever to the history epoch that was
// current in its chat when it was created.
//
// The local ID is assigned at creation; the transport ids arrive later, once
// the chat layer has actually sent the poll message.
type Poll struct {
	ID                 int64           `json:"id"`
	ChatID             int64           `json:"chatId"`
	TransportPollID    string          `json:"transportPollId,omitempty"`
	TransportMessageID int64           `json:"transportMessageId,omitempty"`
	Status             Status          `json:"status"`
	Epoch              int             `json:"epoch"`
	CreatedAt          time.Time       `json:"createdAt"`
	ClosedAt           *time.Time      `json:"closedAt,omitempty"`
	TimeoutAt          *time.Time      `json:"timeoutAt,omitempty"`
	OracleRequest      json.RawMessage `json:"oracleRequest,omitempty"`
	OracleResponse     json.RawMessage `json:"oracleResponse,omitempty"`
}

// Option is one candidate code line of a poll, identified by (poll, index).
// VoteCount is a display cache recomputed from the vote rows; resolution
// never trusts it.
type Option struct {
	ID        int64  `json:"id"`
	PollID    int64  `json:"pollId"`
	Index     int    `json:"index"`
	Text      string `json:"text"`
	VoteCount int    `json:"voteCount"`
}

// Vote is a single ballot. Identified voters hold at most one row per poll;
// a repeated vote overwrites OptionIndex and AnsweredAt in place. Anonymous
// votes (nil VoterID) have no identity to deduplicate on and always append.
type Vote struct {
	ID          int64     `json:"id"`
	PollID      int64     `json:"pollId"`
	VoterID     *int64    `json:"voterId,omitempty"`
	OptionIndex int       `json:"optionIndex"`
	AnsweredAt  time.Time `json:"answeredAt"`
}

// CanTransitionTo validates poll status transition.
func (p *Poll) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusActive:   {StatusClosed, StatusRejected, StatusFailed},
		StatusClosed:   {},
		StatusRejected: {},
		StatusFailed:   {},
	}
	for _, s := range transitions[p.Status] {
		if s == target {
			return true
		}
	}
	return false
}

// Close marks the poll closed. Returns false (and changes nothing) when the
// poll is already terminal.
func (p *Poll) Close(now time.Time) bool {
	if !p.CanTransitionTo(StatusClosed) {
		return false
	}
	p.Status = StatusClosed
	p.ClosedAt = &now
	return true
}

// Reject marks the poll superseded by a history reset. No-op when terminal.
func (p *Poll) Reject(now time.Time) bool {
	if !p.CanTransitionTo(StatusRejected) {
		return false
	}
	p.Status = StatusRejected
	p.ClosedAt = &now
	return true
}

// Fail marks the poll as unresolvable. No-op when terminal.
func (p *Poll) Fail() bool {
	if !p.CanTransitionTo(StatusFailed) {
		return false
	}
	p.Status = StatusFailed
	return true
}

// ValidateOptions checks a candidate option list at poll creation time.
// Duplicate texts are allowed (two options may legitimately propose the same
// line) up to maxDuplicates occurrences of any single text.
func ValidateOptions(texts []string, maxDuplicates int) error {
	if len(texts) < 2 {
		return ErrTooFewOptions
	}
	if maxDuplicates < 1 {
		maxDuplicates = 1
	}
	seen := make(map[string]int, len(texts))
	for _, t := range texts {
		seen[t]++
		if seen[t] > maxDuplicates {
			return ErrTooManyDuplicates
		}
	}
	return nil
}

// ResolveWinner picks the winning option: highest vote count, ties broken by
// lowest index. A poll with zero votes still resolves, to option 0; a
// no-engagement round must not stall the game. The counts on the given
// options must come from a fresh recount of the vote rows, never from the
// cached counters.
func ResolveWinner(options []Option) (Option, error) {
	if len(options) == 0 {
		return Option{}, ErrNoOptions
	}
	winner := options[0]
	for _, o := range options[1:] {
		if o.VoteCount > winner.VoteCount {
			winner = o
			continue
		}
		if o.VoteCount == winner.VoteCount && o.Index < winner.Index {
			winner = o
		}
	}
	return winner, nil
}
