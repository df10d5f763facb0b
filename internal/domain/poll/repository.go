package poll

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"
	"time"
)

// Repository defines poll, option and vote persistence.
type Repository interface {
	// Create inserts the poll and one option row per text, with sequential
	// zero-based indices and zero vote counts. Sets p.ID.
	Create(ctx context.Context, p *Poll, optionTexts []string) error
	// GetByID returns the poll or nil when absent.
	GetByID(ctx context.Context, pollID int64) (*Poll, error)
	// GetByTransportID looks a poll up by its transport-assigned poll id.
	GetByTransportID(ctx context.Context, transportPollID string) (*Poll, error)
	// GetActiveForChat returns the chat's most recently created active poll,
	// or nil.
	GetActiveForChat(ctx context.Context, chatID int64) (*Poll, error)
	// BindTransportIDs attaches the transport poll id and message id once the
	// poll message has actually been sent. Returns ErrNotFound when the poll
	// does not exist.
	BindTransportIDs(ctx context.Context, pollID int64, transportPollID string, messageID int64) error
	// UpdateStatus records a lifecycle transition. closedAt may be nil for
	// the failed state.
	UpdateStatus(ctx context.Context, pollID int64, status Status, closedAt *time.Time) error
	// ListOptions returns the poll's options ordered by index.
	ListOptions(ctx context.Context, pollID int64) ([]Option, error)
	// GetOption returns one option by (poll, index), or nil when absent.
	GetOption(ctx context.Context, pollID int64, index int) (*Option, error)
	// UpsertVote records a ballot. Identified voters overwrite their previous
	// row for the poll; anonymous ballots always insert.
	UpsertVote(ctx context.Context, v *Vote) error
	// CountVotesByOption tallies vote rows grouped by option index. Indices
	// with no votes are absent from the map.
	CountVotesByOption(ctx context.Context, pollID int64) (map[int]int, error)
	// RefreshVoteCounts rewrites every option's cached counter from the vote
	// rows, including explicit zeros. Idempotent.
	RefreshVoteCounts(ctx context.Context, pollID int64) error
	// ListTimedOut returns active polls whose timeout deadline has passed.
	ListTimedOut(ctx context.Context, now time.Time, limit int) ([]*Poll, error)
}
