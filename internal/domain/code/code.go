package code

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrOptionNotFound is returned when a winning option vanished between
	// resolution and append. Defensive; unreachable under normal operation.
	ErrOptionNotFound = errors.New("winning option not found")
)

// Line is one accepted line of the chat's program.
//
// Epoch is copied from the poll that produced the line, not from the chat's
// current epoch. A poll that resolves after a reset therefore appends into
// its own, now-stale epoch and never corrupts the new one.
type Line struct {
	ID         int64     `json:"id"`
	ChatID     int64     `json:"chatId"`
	PollID     int64     `json:"pollId"`
	Epoch      int       `json:"epoch"`
	LineNumber int       `json:"lineNumber"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Snapshot is a point-in-time full-program artifact produced by the content
// oracle's complete mode. Append-only; the newest by CreatedAt is "current".
type Snapshot struct {
	ID             int64           `json:"id"`
	ChatID         int64           `json:"chatId"`
	Epoch          int             `json:"epoch"`
	Text           string          `json:"text"`
	CreatedAt      time.Time       `json:"createdAt"`
	OracleRequest  json.RawMessage `json:"oracleRequest,omitempty"`
	OracleResponse json.RawMessage `json:"oracleResponse,omitempty"`
}
