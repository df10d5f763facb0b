package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codevote/codevote/internal/application/game"
	"github.com/codevote/codevote/internal/domain/chat"
	"github.com/codevote/codevote/internal/domain/code"
	"github.com/codevote/codevote/internal/domain/ops"
	"github.com/codevote/codevote/internal/domain/poll"
)

// ErrNestedTx is returned when InTx is called from inside another InTx scope.
var ErrNestedTx = errors.New("nested transaction scope")

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx. Every
// repository runs its statements through it, so the same repository code
// serves both pooled one-off calls and transactional scopes.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txMarkerKey struct{}

// TxManager implements game.TxRunner on a pgx pool. One InTx call is one
// database transaction; the repositories handed to fn all share it.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

type unitOfWork struct {
	chats     *ChatRepository
	polls     *PollRepository
	code      *CodeRepository
	snapshots *SnapshotRepository
	ops       *OpsRepository
}

func (u *unitOfWork) Chats() chat.Repository             { return u.chats }
func (u *unitOfWork) Polls() poll.Repository             { return u.polls }
func (u *unitOfWork) Code() code.Repository              { return u.code }
func (u *unitOfWork) Snapshots() code.SnapshotRepository { return u.snapshots }
func (u *unitOfWork) Ops() ops.Repository                { return u.ops }

// InTx begins a transaction, runs fn with repositories bound to it and
// commits when fn returns nil. Any error rolls the whole scope back. Nesting
// is rejected: a second scope inside fn is a bug, not a savepoint.
func (m *TxManager) InTx(ctx context.Context, fn func(ctx context.Context, uow game.UnitOfWork) error) error {
	if ctx.Value(txMarkerKey{}) != nil {
		return ErrNestedTx
	}
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	ctx = context.WithValue(ctx, txMarkerKey{}, struct{}{})

	uow := &unitOfWork{
		chats:     &ChatRepository{q: tx},
		polls:     &PollRepository{q: tx},
		code:      &CodeRepository{q: tx},
		snapshots: &SnapshotRepository{q: tx},
		ops:       &OpsRepository{q: tx},
	}
	if err := fn(ctx, uow); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
