package game

import (
	"context"

	"github.com/codevote/codevote/internal/domain/chat"
	"github.com/codevote/codevote/internal/domain/code"
	"github.com/codevote/codevote/internal/domain/ops"
	"github.com/codevote/codevote/internal/domain/poll"
)

// UnitOfWork exposes every repository bound to one shared transaction. All
// reads and writes made through it commit or roll back as a unit.
type UnitOfWork interface {
	Chats() chat.Repository
	Polls() poll.Repository
	Code() code.Repository
	Snapshots() code.SnapshotRepository
	Ops() ops.Repository
}

// TxRunner owns the transaction boundary. Exactly one scope per inbound
// event: fn runs inside a fresh transaction that commits when fn returns nil
// and rolls back otherwise. Nested calls are an error, not a savepoint.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
