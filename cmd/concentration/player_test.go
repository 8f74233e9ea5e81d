package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/concentration/internal/game"
	"github.com/phrazzld/concentration/internal/render"
	"github.com/phrazzld/concentration/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session struct {
	model  *game.Model
	out    *bytes.Buffer
	errOut *bytes.Buffer
	view   *render.Text
}

func newSession(t *testing.T) *session {
	t.Helper()
	m := testutils.MustNewGame(t)

	s := &session{model: m, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	s.view = render.NewText(s.out, s.out, 4, render.DefaultLabels, testutils.DiscardLogger())
	m.AddObserver(s.view)
	return s
}

func (s *session) play(t *testing.T, input string) {
	t.Helper()
	p := newPlayer(s.model, s.out, s.errOut)
	require.NoError(t, p.play(context.Background(), strings.NewReader(input), s.view))
}

func TestPlayCommands(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		moves     int
		cardsUp   int
		wantOut   []string
		wantErrs  []string
		undoDepth int
	}{
		{
			name:    "bare numbers and select both flip cards",
			input:   "0\nselect 8\n",
			moves:   1,
			wantOut: []string{"abra*", "1 Moves"},
		},
		{
			name:      "mismatch then undo",
			input:     "1\n2\nundo\n",
			moves:     0,
			wantOut:   []string{"No Match: Undo or select a card."},
			undoDepth: 0,
		},
		{
			name:    "undo with nothing to undo",
			input:   "undo\n",
			wantOut: []string{"Nothing to undo."},
		},
		{
			name:     "out of range index keeps playing",
			input:    "16\n3\n",
			cardsUp:  1,
			wantErrs: []string{"card index must be between 0 and 15"},
		},
		{
			name:     "unknown command",
			input:    "flip 3\n",
			wantErrs: []string{`unknown command "flip"`},
		},
		{
			name:     "select needs an argument",
			input:    "select\n",
			wantErrs: []string{"usage: select N"},
		},
		{
			name:    "cheat draws the cheat window",
			input:   "cheat\n",
			wantOut: []string{"Cheat Window", "venomoth"},
		},
		{
			name:    "help",
			input:   "help\n",
			wantOut: []string{"Commands:", "cheat"},
		},
		{
			name:    "quit stops reading",
			input:   "quit\n0\n",
			cardsUp: 0,
		},
		{
			name:    "reset clears the board",
			input:   "1\n2\nreset\n",
			moves:   0,
			cardsUp: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(t)

			s.play(t, tc.input)

			assert.Equal(t, tc.moves, s.model.MoveCount())
			assert.Equal(t, tc.cardsUp, s.model.CardsUp())
			assert.Equal(t, tc.undoDepth, s.model.UndoDepth())
			for _, want := range tc.wantOut {
				assert.Contains(t, s.out.String(), want)
			}
			for _, want := range tc.wantErrs {
				assert.Contains(t, s.errOut.String(), want)
			}
			if len(tc.wantErrs) == 0 {
				assert.Empty(t, s.errOut.String())
			}
		})
	}
}

func TestPlayDrawsInitialBoard(t *testing.T) {
	s := newSession(t)

	s.play(t, "")

	assert.Contains(t, s.out.String(), "Select the first card.")
	assert.Contains(t, s.out.String(), "0 Moves")
}

func TestPlayToWin(t *testing.T) {
	s := newSession(t)

	var input strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&input, "select %d\n%d\n", i, i+8)
	}
	s.play(t, input.String())

	assert.True(t, s.model.Won())
	assert.Equal(t, 8, s.model.MoveCount())
	assert.Contains(t, s.out.String(), "YOU WIN!")
}

func TestPlayStopsWhenContextCanceled(t *testing.T) {
	s := newSession(t)
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newPlayer(s.model, s.out, s.errOut).play(ctx, in, s.view)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("play kept waiting for input after the context was canceled")
	}
}
