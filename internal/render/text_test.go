package render

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/concentration/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderedLayout = []int{0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7}

func newRenderedModel(t *testing.T) (*game.Model, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m, err := game.New(game.WithLayout(orderedLayout), game.WithLogger(logger))
	require.NoError(t, err)

	board := &bytes.Buffer{}
	cheat := &bytes.Buffer{}
	m.AddObserver(NewText(board, cheat, 4, nil, logger))
	return m, board, cheat
}

func lastFrame(buf *bytes.Buffer) string {
	frames := strings.SplitAfter(buf.String(), "Moves\n")
	if len(frames) < 2 {
		return buf.String()
	}
	return frames[len(frames)-2]
}

func TestTextRendersSelection(t *testing.T) {
	m, board, cheat := newRenderedModel(t)

	_, err := m.SelectCard(0)
	require.NoError(t, err)

	frame := lastFrame(board)
	assert.True(t, strings.HasPrefix(frame, PromptSecondCard))
	assert.Contains(t, frame, "[abra")
	assert.NotContains(t, frame, "bulbasaur")
	assert.Contains(t, frame, "0 Moves")
	assert.Empty(t, cheat.String())

	lines := strings.Split(strings.TrimSpace(frame), "\n")
	assert.Len(t, lines, 1+4+1, "prompt, four rows of four, move counter")
}

func TestTextRendersMismatchAndMatch(t *testing.T) {
	m, board, _ := newRenderedModel(t)

	_, _ = m.SelectCard(0)
	_, _ = m.SelectCard(1)
	assert.True(t, strings.HasPrefix(lastFrame(board), PromptNoMatch))
	assert.Contains(t, lastFrame(board), "1 Moves")

	_, _ = m.SelectCard(2)
	_, _ = m.SelectCard(10)
	frame := lastFrame(board)
	assert.True(t, strings.HasPrefix(frame, PromptFirstCard))
	assert.Equal(t, 2, strings.Count(frame, "charmander*"))
	assert.NotContains(t, frame, "abra")
}

func TestTextRendersWin(t *testing.T) {
	m, board, _ := newRenderedModel(t)

	for i := 0; i < 8; i++ {
		_, _ = m.SelectCard(i)
		_, _ = m.SelectCard(i + 8)
	}

	frame := lastFrame(board)
	assert.True(t, strings.HasPrefix(frame, PromptWin))
	assert.Contains(t, frame, "8 Moves")
}

func TestTextRendersCheatSeparately(t *testing.T) {
	m, board, cheat := newRenderedModel(t)
	before := board.String()

	m.Cheat()

	assert.Equal(t, before, board.String(), "cheat must not redraw the main surface")
	out := cheat.String()
	assert.True(t, strings.HasPrefix(out, "Cheat Window\n"))
	for _, name := range DefaultLabels {
		assert.Equal(t, 2, strings.Count(out, "["+name), name)
	}
}

func TestNewTextRequiresSurfaces(t *testing.T) {
	assert.Panics(t, func() { NewText(nil, &bytes.Buffer{}, 4, nil, nil) })
	assert.Panics(t, func() { NewText(&bytes.Buffer{}, nil, 4, nil, nil) })
}
