package testutils

import (
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/concentration/internal/domain"
	"github.com/phrazzld/concentration/internal/game"
	"github.com/stretchr/testify/require"
)

// OrderedLayout deals pair i at indices i and i+PairCount.
var OrderedLayout = func() []int {
	layout := make([]int, domain.BoardSize)
	for i := range layout {
		layout[i] = i % domain.PairCount
	}
	return layout
}()

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MustNewGame creates a game dealt with OrderedLayout and a discarding
// logger. Extra options are applied after the defaults.
func MustNewGame(t *testing.T, opts ...game.Option) *game.Model {
	t.Helper()

	all := append([]game.Option{
		game.WithLayout(OrderedLayout),
		game.WithLogger(DiscardLogger()),
	}, opts...)

	m, err := game.New(all...)
	require.NoError(t, err, "Failed to create test game")
	return m
}

// NewGameFactory returns a factory that deals OrderedLayout games, in the
// shape HTTP handlers expect.
func NewGameFactory() func() (*game.Model, error) {
	return func() (*game.Model, error) {
		return game.New(game.WithLayout(OrderedLayout), game.WithLogger(DiscardLogger()))
	}
}

// PlayMatch selects pairID's two cards on an OrderedLayout game.
func PlayMatch(t *testing.T, m *game.Model, pairID int) {
	t.Helper()
	_, err := m.SelectCard(pairID)
	require.NoError(t, err)
	res, err := m.SelectCard(pairID + domain.PairCount)
	require.NoError(t, err)
	require.Equal(t, game.Match, res, "expected pair %d to match", pairID)
}
