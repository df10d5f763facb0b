package game

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/codevote/codevote/internal/domain/chat"
	chatMocks "github.com/codevote/codevote/internal/domain/chat/mocks"
	"github.com/codevote/codevote/internal/domain/code"
	codeMocks "github.com/codevote/codevote/internal/domain/code/mocks"
	"github.com/codevote/codevote/internal/domain/ops"
	opsMocks "github.com/codevote/codevote/internal/domain/ops/mocks"
	"github.com/codevote/codevote/internal/domain/poll"
	pollMocks "github.com/codevote/codevote/internal/domain/poll/mocks"
)

// fixture wires gomock repositories into a pass-through transaction runner,
// so service flows run exactly as they would inside one transaction scope.
type fixture struct {
	chats     *chatMocks.MockRepository
	polls     *pollMocks.MockRepository
	code      *codeMocks.MockRepository
	snapshots *codeMocks.MockSnapshotRepository
	ops       *opsMocks.MockRepository
}

func (f *fixture) Chats() chat.Repository             { return f.chats }
func (f *fixture) Polls() poll.Repository             { return f.polls }
func (f *fixture) Code() code.Repository              { return f.code }
func (f *fixture) Snapshots() code.SnapshotRepository { return f.snapshots }
func (f *fixture) Ops() ops.Repository                { return f.ops }

type passthroughRunner struct {
	uow UnitOfWork
}

func (r *passthroughRunner) InTx(ctx context.Context, fn func(context.Context, UnitOfWork) error) error {
	return fn(ctx, r.uow)
}

func newFixture(t *testing.T) (*fixture, *Service) {
	ctrl := gomock.NewController(t)
	f := &fixture{
		chats:     chatMocks.NewMockRepository(ctrl),
		polls:     pollMocks.NewMockRepository(ctrl),
		code:      codeMocks.NewMockRepository(ctrl),
		snapshots: codeMocks.NewMockSnapshotRepository(ctrl),
		ops:       opsMocks.NewMockRepository(ctrl),
	}
	svc := NewService(&passthroughRunner{uow: f}, 2, zerolog.Nop())
	return f, svc
}

func ptrInt64(v int64) *int64 { return &v }

func TestStartRound_RejectsActivePoll(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().GetOrCreate(ctx, int64(7)).Return(&chat.Chat{
		ID:           7,
		HistoryEpoch: 1,
		ActivePollID: ptrInt64(41),
	}, nil)
	f.polls.EXPECT().GetByID(ctx, int64(41)).Return(&poll.Poll{ID: 41, ChatID: 7, Status: poll.StatusActive}, nil)

	_, err := svc.StartRound(ctx, StartRoundInput{ChatID: 7, Options: []string{"a", "b"}})
	assert.ErrorIs(t, err, chat.ErrActivePoll)
}

func TestStartRound_StampsChatEpoch(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().GetOrCreate(ctx, int64(7)).Return(&chat.Chat{ID: 7, HistoryEpoch: 3}, nil)
	f.polls.EXPECT().
		Create(ctx, gomock.Any(), []string{"a", "b"}).
		DoAndReturn(func(_ context.Context, p *poll.Poll, _ []string) error {
			assert.Equal(t, 3, p.Epoch)
			assert.Equal(t, poll.StatusActive, p.Status)
			p.ID = 42
			return nil
		})
	f.chats.EXPECT().SetActivePoll(ctx, int64(7), gomock.Any()).Return(nil)
	f.ops.EXPECT().AddLog(ctx, gomock.Any()).Return(nil)

	p, err := svc.StartRound(ctx, StartRoundInput{ChatID: 7, Options: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, 3, p.Epoch)
}

func TestStartRound_ValidatesOptions(t *testing.T) {
	_, svc := newFixture(t)
	ctx := context.Background()

	_, err := svc.StartRound(ctx, StartRoundInput{ChatID: 7, Options: []string{"only"}})
	assert.ErrorIs(t, err, poll.ErrTooFewOptions)

	_, err = svc.StartRound(ctx, StartRoundInput{ChatID: 7, Options: []string{"x", "x", "x"}})
	assert.ErrorIs(t, err, poll.ErrTooManyDuplicates)
}

func TestRegisterVote_OutOfRangeIndex(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.polls.EXPECT().GetByTransportID(ctx, "tg-1").Return(&poll.Poll{ID: 5, Status: poll.StatusActive}, nil)
	f.polls.EXPECT().ListOptions(ctx, int64(5)).Return([]poll.Option{{Index: 0}, {Index: 1}}, nil)

	err := svc.RegisterVote(ctx, "tg-1", ptrInt64(100), 2)
	assert.ErrorIs(t, err, poll.ErrOptionIndexOutOfRange)
}

func TestRegisterVote_IdentifiedUpsert(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.polls.EXPECT().GetByTransportID(ctx, "tg-1").Return(&poll.Poll{ID: 5, Status: poll.StatusActive}, nil)
	f.polls.EXPECT().ListOptions(ctx, int64(5)).Return([]poll.Option{{Index: 0}, {Index: 1}}, nil)
	f.polls.EXPECT().
		UpsertVote(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, v *poll.Vote) error {
			require.NotNil(t, v.VoterID)
			assert.Equal(t, int64(100), *v.VoterID)
			assert.Equal(t, 1, v.OptionIndex)
			return nil
		})

	require.NoError(t, svc.RegisterVote(ctx, "tg-1", ptrInt64(100), 1))
}

func TestRegisterVote_AcceptedAfterClose(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	// A late vote against a terminal poll is stored; it cannot affect the
	// winner because resolution already committed.
	f.polls.EXPECT().GetByTransportID(ctx, "tg-1").Return(&poll.Poll{ID: 5, Status: poll.StatusClosed}, nil)
	f.polls.EXPECT().ListOptions(ctx, int64(5)).Return([]poll.Option{{Index: 0}, {Index: 1}}, nil)
	f.polls.EXPECT().UpsertVote(ctx, gomock.Any()).Return(nil)

	require.NoError(t, svc.RegisterVote(ctx, "tg-1", nil, 0))
}

func TestFinishPoll_TieBreaksToLowestIndex(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	p := &poll.Poll{ID: 5, ChatID: 7, Epoch: 1, Status: poll.StatusActive}
	f.polls.EXPECT().GetByTransportID(ctx, "tg-1").Return(p, nil)
	f.polls.EXPECT().CountVotesByOption(ctx, int64(5)).Return(map[int]int{0: 1, 1: 1}, nil)
	f.polls.EXPECT().RefreshVoteCounts(ctx, int64(5)).Return(nil)
	f.polls.EXPECT().ListOptions(ctx, int64(5)).Return([]poll.Option{
		{PollID: 5, Index: 0, Text: "a"},
		{PollID: 5, Index: 1, Text: "b"},
	}, nil)
	f.polls.EXPECT().UpdateStatus(ctx, int64(5), poll.StatusClosed, gomock.Any()).Return(nil)
	f.code.EXPECT().GetByPoll(ctx, int64(5)).Return(nil, nil)
	f.polls.EXPECT().GetOption(ctx, int64(5), 0).Return(&poll.Option{PollID: 5, Index: 0, Text: "a"}, nil)
	f.code.EXPECT().NextLineNumber(ctx, int64(7), 1).Return(1, nil)
	f.code.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, l *code.Line) error {
			assert.Equal(t, 1, l.Epoch)
			assert.Equal(t, 1, l.LineNumber)
			assert.Equal(t, "a", l.Text)
			l.ID = 900
			return nil
		})
	f.ops.EXPECT().AddLog(ctx, gomock.Any()).Return(nil)

	res, err := svc.FinishPoll(ctx, "tg-1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Winner.Index)
	assert.True(t, res.Appended)
	require.NotNil(t, res.Line)
	assert.Equal(t, "a", res.Line.Text)
}

func TestFinishPoll_SecondCallAppendsNothing(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	closedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &poll.Poll{ID: 5, ChatID: 7, Epoch: 1, Status: poll.StatusClosed, ClosedAt: &closedAt}
	f.polls.EXPECT().GetByTransportID(ctx, "tg-1").Return(p, nil)
	f.polls.EXPECT().CountVotesByOption(ctx, int64(5)).Return(map[int]int{1: 2}, nil)
	f.polls.EXPECT().RefreshVoteCounts(ctx, int64(5)).Return(nil)
	f.polls.EXPECT().ListOptions(ctx, int64(5)).Return([]poll.Option{
		{PollID: 5, Index: 0, Text: "a"},
		{PollID: 5, Index: 1, Text: "b"},
	}, nil)
	// No UpdateStatus: a terminal poll re-enters no transition.
	f.code.EXPECT().GetByPoll(ctx, int64(5)).Return(&code.Line{ID: 900, PollID: 5, Epoch: 1, LineNumber: 1, Text: "b"}, nil)

	res, err := svc.FinishPoll(ctx, "tg-1")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Winner.Index)
	assert.False(t, res.Appended)
	assert.Equal(t, &closedAt, res.Poll.ClosedAt)
}

func TestFinishPoll_RejectedPollNeverAppends(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	p := &poll.Poll{ID: 5, ChatID: 7, Epoch: 1, Status: poll.StatusRejected}
	f.polls.EXPECT().GetByTransportID(ctx, "tg-1").Return(p, nil)
	f.polls.EXPECT().CountVotesByOption(ctx, int64(5)).Return(map[int]int{}, nil)
	f.polls.EXPECT().RefreshVoteCounts(ctx, int64(5)).Return(nil)
	f.polls.EXPECT().ListOptions(ctx, int64(5)).Return([]poll.Option{
		{PollID: 5, Index: 0, Text: "a"},
		{PollID: 5, Index: 1, Text: "b"},
	}, nil)

	res, err := svc.FinishPoll(ctx, "tg-1")
	require.NoError(t, err)
	assert.False(t, res.Appended)
	assert.Nil(t, res.Line)
}

func TestFinishPoll_ZeroVotesWinsOptionZero(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	p := &poll.Poll{ID: 5, ChatID: 7, Epoch: 2, Status: poll.StatusActive}
	f.polls.EXPECT().GetByTransportID(ctx, "tg-1").Return(p, nil)
	f.polls.EXPECT().CountVotesByOption(ctx, int64(5)).Return(map[int]int{}, nil)
	f.polls.EXPECT().RefreshVoteCounts(ctx, int64(5)).Return(nil)
	f.polls.EXPECT().ListOptions(ctx, int64(5)).Return([]poll.Option{
		{PollID: 5, Index: 0, Text: "x"},
		{PollID: 5, Index: 1, Text: "y"},
	}, nil)
	f.polls.EXPECT().UpdateStatus(ctx, int64(5), poll.StatusClosed, gomock.Any()).Return(nil)
	f.code.EXPECT().GetByPoll(ctx, int64(5)).Return(nil, nil)
	f.polls.EXPECT().GetOption(ctx, int64(5), 0).Return(&poll.Option{PollID: 5, Index: 0, Text: "x"}, nil)
	f.code.EXPECT().NextLineNumber(ctx, int64(7), 2).Return(4, nil)
	f.code.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	f.ops.EXPECT().AddLog(ctx, gomock.Any()).Return(nil)

	res, err := svc.FinishPoll(ctx, "tg-1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Winner.Index)
	assert.Equal(t, "x", res.Line.Text)
	assert.Equal(t, 4, res.Line.LineNumber)
}

func TestResetHistory_RejectsActivePollBeforeEpochBump(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().GetOrCreate(ctx, int64(7)).Return(&chat.Chat{
		ID:           7,
		HistoryEpoch: 1,
		ActivePollID: ptrInt64(41),
	}, nil)
	f.polls.EXPECT().GetByID(ctx, int64(41)).Return(&poll.Poll{ID: 41, ChatID: 7, Epoch: 1, Status: poll.StatusActive}, nil)

	// The reject must land before the epoch advances.
	reject := f.polls.EXPECT().UpdateStatus(ctx, int64(41), poll.StatusRejected, gomock.Any()).Return(nil)
	advance := f.chats.EXPECT().AdvanceEpoch(ctx, int64(7)).Return(&chat.Chat{ID: 7, HistoryEpoch: 2}, nil)
	gomock.InOrder(reject, advance)
	f.ops.EXPECT().AddLog(ctx, gomock.Any()).Return(nil)

	c, err := svc.ResetHistory(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, c.HistoryEpoch)
	assert.Nil(t, c.ActivePollID)
}

func TestResetHistory_NoActivePoll(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().GetOrCreate(ctx, int64(7)).Return(&chat.Chat{ID: 7, HistoryEpoch: 4}, nil)
	f.chats.EXPECT().AdvanceEpoch(ctx, int64(7)).Return(&chat.Chat{ID: 7, HistoryEpoch: 5}, nil)
	f.ops.EXPECT().AddLog(ctx, gomock.Any()).Return(nil)

	c, err := svc.ResetHistory(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, c.HistoryEpoch)
}

func TestResetHistory_TerminalPollNotRetransitioned(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().GetOrCreate(ctx, int64(7)).Return(&chat.Chat{
		ID:           7,
		HistoryEpoch: 1,
		ActivePollID: ptrInt64(41),
	}, nil)
	// Already closed: no UpdateStatus expected.
	f.polls.EXPECT().GetByID(ctx, int64(41)).Return(&poll.Poll{ID: 41, Status: poll.StatusClosed}, nil)
	f.chats.EXPECT().AdvanceEpoch(ctx, int64(7)).Return(&chat.Chat{ID: 7, HistoryEpoch: 2}, nil)
	f.ops.EXPECT().AddLog(ctx, gomock.Any()).Return(nil)

	_, err := svc.ResetHistory(ctx, 7)
	require.NoError(t, err)
}

func TestCurrentCode_UsesChatEpoch(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().Get(ctx, int64(7)).Return(&chat.Chat{ID: 7, HistoryEpoch: 2}, nil)
	f.code.EXPECT().ListByEpoch(ctx, int64(7), 2).Return([]*code.Line{
		{LineNumber: 1, Text: "def main():"},
		{LineNumber: 2, Text: "    pass"},
	}, nil)

	lines, err := svc.CurrentCode(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"def main():", "    pass"}, lines)
}

func TestCurrentCode_UnknownChat(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().Get(ctx, int64(99)).Return(nil, nil)

	_, err := svc.CurrentCode(ctx, 99)
	assert.ErrorIs(t, err, chat.ErrNotFound)
}

func TestSaveCompleted_StampsCurrentEpoch(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().Get(ctx, int64(7)).Return(&chat.Chat{ID: 7, HistoryEpoch: 3}, nil)
	f.snapshots.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *code.Snapshot) error {
			assert.Equal(t, 3, s.Epoch)
			assert.Equal(t, "print('done')", s.Text)
			s.ID = 12
			return nil
		})
	f.ops.EXPECT().AddLog(ctx, gomock.Any()).Return(nil)

	snap, err := svc.SaveCompleted(ctx, 7, "print('done')", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), snap.ID)
}

func TestCodeForEpoch_ReadsStaleEpoch(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.code.EXPECT().ListByEpoch(ctx, int64(7), 1).Return([]*code.Line{
		{Epoch: 1, LineNumber: 1, Text: "import os"},
	}, nil)

	lines, err := svc.CodeForEpoch(ctx, 7, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "import os", lines[0].Text)
}

func TestHardResetCode(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().Get(ctx, int64(7)).Return(&chat.Chat{ID: 7, HistoryEpoch: 2}, nil)
	f.code.EXPECT().DeleteAllForChat(ctx, int64(7)).Return(nil)
	f.ops.EXPECT().AddLog(ctx, gomock.Any()).Return(nil)

	require.NoError(t, svc.HardResetCode(ctx, 7))
}

func TestHardResetCode_UnknownChat(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.chats.EXPECT().Get(ctx, int64(99)).Return(nil, nil)

	assert.ErrorIs(t, svc.HardResetCode(ctx, 99), chat.ErrNotFound)
}

func TestLatestSnapshot(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.snapshots.EXPECT().GetLatestForChat(ctx, int64(7)).Return(&code.Snapshot{ID: 12, Epoch: 3}, nil)

	snap, err := svc.LatestSnapshot(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(12), snap.ID)
}

func TestRecountPoll(t *testing.T) {
	f, svc := newFixture(t)
	ctx := context.Background()

	f.polls.EXPECT().RefreshVoteCounts(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.RecountPoll(ctx, 5))
}
