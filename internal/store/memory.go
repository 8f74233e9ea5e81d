package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a SessionStore backed by a map.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	logger   *slog.Logger
}

var _ SessionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(logger *slog.Logger) *MemoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryStore{
		sessions: make(map[uuid.UUID]*Session),
		logger:   logger.With(slog.String("component", "memory_session_store")),
	}
}

// Create implements SessionStore.Create.
func (s *MemoryStore) Create(ctx context.Context, session *Session) error {
	if err := session.Validate(); err != nil {
		return NewStoreError("session", "create", "session is incomplete", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return ErrSessionExists
	}
	s.sessions[session.ID] = session

	s.logger.DebugContext(ctx, "session created",
		slog.String("session_id", session.ID.String()),
		slog.Int("session_count", len(s.sessions)))
	return nil
}

// Get implements SessionStore.Get.
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete implements SessionStore.Delete.
func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)

	s.logger.DebugContext(ctx, "session deleted",
		slog.String("session_id", id.String()),
		slog.Int("session_count", len(s.sessions)))
	return nil
}

// List implements SessionStore.List.
func (s *MemoryStore) List(ctx context.Context) ([]*Session, error) {
	s.mu.RLock()
	out := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
