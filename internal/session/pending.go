package session

import (
	"context"
	"time"

	"github.com/trenerai/trener-intent/internal/command"
)

// DefaultTTL is how long a staged action stays confirmable.
const DefaultTTL = 5 * time.Minute

// PendingAction is a staged mutating command waiting for the user's
// explicit confirmation. It is owned by exactly one session, replaced
// wholesale by any newer staged action, and destroyed on resolution,
// cancellation or expiry.
type PendingAction struct {
	Intent    command.Intent `json:"intent"`
	Data      map[string]any `json:"data"`
	Prompt    string         `json:"prompt"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Store holds at most one pending action per session key. Every read
// path treats an action past its expiry instant as absent; deleting
// expired entries eagerly is an implementation courtesy, not a
// requirement.
//
// This is an interface so the dispatcher can be tested against an
// in-memory fake and production can run on Redis without touching
// dispatch logic.
type Store interface {
	// Stage overwrites any existing pending action for the session and
	// stamps CreatedAt/ExpiresAt from the store's clock and TTL.
	Stage(ctx context.Context, sessionID string, action *PendingAction) error

	// Peek returns the pending action, or nil if none exists or it has
	// expired.
	Peek(ctx context.Context, sessionID string) (*PendingAction, error)

	// Clear removes the session's slot unconditionally.
	Clear(ctx context.Context, sessionID string) error
}
