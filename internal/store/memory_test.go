package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/concentration/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	m, err := game.New(game.WithSeed(1), game.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	return NewSession(game.NewLocked(m))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("create and get", func(t *testing.T) {
		s := NewMemoryStore(logger)
		session := newTestSession(t)

		require.NoError(t, s.Create(ctx, session))

		got, err := s.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Same(t, session, got)
	})

	t.Run("duplicate create", func(t *testing.T) {
		s := NewMemoryStore(logger)
		session := newTestSession(t)
		require.NoError(t, s.Create(ctx, session))

		err := s.Create(ctx, session)
		assert.ErrorIs(t, err, ErrSessionExists)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("invalid session", func(t *testing.T) {
		s := NewMemoryStore(logger)

		for _, session := range []*Session{nil, {ID: uuid.New()}, {Game: newTestSession(t).Game}} {
			err := s.Create(ctx, session)
			assert.ErrorIs(t, err, ErrInvalidEntity)

			var storeErr *StoreError
			require.True(t, errors.As(err, &storeErr))
			assert.Equal(t, "create", storeErr.Operation)
		}
	})

	t.Run("get unknown session", func(t *testing.T) {
		s := NewMemoryStore(logger)

		got, err := s.Get(ctx, uuid.New())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.True(t, IsNotFoundError(err))
	})

	t.Run("delete", func(t *testing.T) {
		s := NewMemoryStore(logger)
		session := newTestSession(t)
		require.NoError(t, s.Create(ctx, session))

		require.NoError(t, s.Delete(ctx, session.ID))

		_, err := s.Get(ctx, session.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.ErrorIs(t, s.Delete(ctx, session.ID), ErrSessionNotFound)
	})

	t.Run("list oldest first", func(t *testing.T) {
		s := NewMemoryStore(logger)
		older := newTestSession(t)
		older.CreatedAt = time.Now().Add(-time.Hour)
		newer := newTestSession(t)
		require.NoError(t, s.Create(ctx, newer))
		require.NoError(t, s.Create(ctx, older))

		sessions, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Same(t, older, sessions[0])
		assert.Same(t, newer, sessions[1])
	})
}

func TestStoreError(t *testing.T) {
	err := NewStoreError("session", "delete", "boom", ErrSessionNotFound)
	assert.Equal(t, "delete operation on session failed: boom: entity not found: session", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	bare := NewStoreError("session", "list", "boom", nil)
	assert.Equal(t, "list operation on session failed: boom", bare.Error())
}
