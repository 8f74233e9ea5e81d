package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/concentration/internal/game"
)

// Session is one player's game.
type Session struct {
	ID        uuid.UUID
	Game      *game.Locked
	CreatedAt time.Time
}

// NewSession wraps g in a session with a fresh ID.
func NewSession(g *game.Locked) *Session {
	return &Session{
		ID:        uuid.New(),
		Game:      g,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	if s == nil || s.ID == uuid.Nil || s.Game == nil {
		return ErrInvalidEntity
	}
	return nil
}

// SessionStore defines the interface for keeping game sessions.
type SessionStore interface {
	// Create stores a new session.
	// Returns ErrInvalidEntity if the session is incomplete and
	// ErrSessionExists if a session with the same ID is already stored.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by its ID.
	// Returns ErrSessionNotFound if the session does not exist.
	Get(ctx context.Context, id uuid.UUID) (*Session, error)

	// Delete removes a session.
	// Returns ErrSessionNotFound if the session does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns every stored session, oldest first.
	List(ctx context.Context) ([]*Session, error)
}
