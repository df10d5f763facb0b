package poll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusActive.Terminal())
	assert.True(t, StatusClosed.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestPoll_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "active to closed", from: StatusActive, to: StatusClosed, allowed: true},
		{name: "active to rejected", from: StatusActive, to: StatusRejected, allowed: true},
		{name: "active to failed", from: StatusActive, to: StatusFailed, allowed: true},
		{name: "closed is absorbing", from: StatusClosed, to: StatusRejected, allowed: false},
		{name: "rejected is absorbing", from: StatusRejected, to: StatusClosed, allowed: false},
		{name: "failed is absorbing", from: StatusFailed, to: StatusClosed, allowed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Poll{Status: tt.from}
			assert.Equal(t, tt.allowed, p.CanTransitionTo(tt.to))
		})
	}
}

func TestPoll_CloseIsIdempotent(t *testing.T) {
	p := &Poll{Status: StatusActive}
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.True(t, p.Close(first))
	assert.Equal(t, StatusClosed, p.Status)
	require.NotNil(t, p.ClosedAt)
	assert.Equal(t, first, *p.ClosedAt)

	// A second close must not move the timestamp.
	assert.False(t, p.Close(first.Add(time.Hour)))
	assert.Equal(t, first, *p.ClosedAt)
}

func TestPoll_RejectOnlyWhenActive(t *testing.T) {
	now := time.Now()

	p := &Poll{Status: StatusActive}
	require.True(t, p.Reject(now))
	assert.Equal(t, StatusRejected, p.Status)
	require.NotNil(t, p.ClosedAt)

	closed := &Poll{Status: StatusClosed}
	assert.False(t, closed.Reject(now))
	assert.Equal(t, StatusClosed, closed.Status)
}

func TestPoll_Fail(t *testing.T) {
	p := &Poll{Status: StatusActive}
	require.True(t, p.Fail())
	assert.Equal(t, StatusFailed, p.Status)
	assert.Nil(t, p.ClosedAt)

	assert.False(t, p.Fail())
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		texts   []string
		maxDup  int
		wantErr error
	}{
		{name: "nil", texts: nil, maxDup: 2, wantErr: ErrTooFewOptions},
		{name: "single option", texts: []string{"x"}, maxDup: 2, wantErr: ErrTooFewOptions},
		{name: "two distinct", texts: []string{"a", "b"}, maxDup: 2},
		{name: "duplicates within limit", texts: []string{"a", "a", "b"}, maxDup: 2},
		{name: "duplicates beyond limit", texts: []string{"a", "a", "a", "b"}, maxDup: 2, wantErr: ErrTooManyDuplicates},
		{name: "limit below one treated as one", texts: []string{"a", "a"}, maxDup: 0, wantErr: ErrTooManyDuplicates},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(tt.texts, tt.maxDup)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveWinner(t *testing.T) {
	tests := []struct {
		name      string
		options   []Option
		wantIndex int
	}{
		{
			name: "highest tally wins",
			options: []Option{
				{Index: 0, VoteCount: 1},
				{Index: 1, VoteCount: 3},
				{Index: 2, VoteCount: 2},
			},
			wantIndex: 1,
		},
		{
			name: "tie resolves to lowest index",
			options: []Option{
				{Index: 0, VoteCount: 2},
				{Index: 1, VoteCount: 2},
				{Index: 2, VoteCount: 1},
			},
			wantIndex: 0,
		},
		{
			name: "tie at the top among later options",
			options: []Option{
				{Index: 0, VoteCount: 0},
				{Index: 1, VoteCount: 4},
				{Index: 2, VoteCount: 4},
			},
			wantIndex: 1,
		},
		{
			name: "zero votes still resolves to option 0",
			options: []Option{
				{Index: 0, VoteCount: 0},
				{Index: 1, VoteCount: 0},
				{Index: 2, VoteCount: 0},
				{Index: 3, VoteCount: 0},
			},
			wantIndex: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner, err := ResolveWinner(tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, winner.Index)

			// Determinism: repeated resolution over the same input never
			// changes the outcome.
			again, err := ResolveWinner(tt.options)
			require.NoError(t, err)
			assert.Equal(t, winner.Index, again.Index)
		})
	}
}

func TestResolveWinner_NoOptions(t *testing.T) {
	_, err := ResolveWinner(nil)
	assert.ErrorIs(t, err, ErrNoOptions)
}
