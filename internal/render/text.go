package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/concentration/internal/domain"
	"github.com/phrazzld/concentration/internal/events"
	"github.com/phrazzld/concentration/internal/game"
)

// Text renders the board as a grid of cells. Face-down cards draw as an
// empty cell, face-up cards show their label and matched cards are marked
// with a trailing '*'.
type Text struct {
	board   io.Writer
	cheat   io.Writer
	columns int
	labels  Labels
	logger  *slog.Logger
}

var _ events.Observer[*game.Model] = (*Text)(nil)

// NewText creates a renderer that draws the game on board and cheat reveals
// on cheat. columns is the grid width.
func NewText(board, cheat io.Writer, columns int, labels Labels, logger *slog.Logger) *Text {
	if board == nil || cheat == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("render surfaces cannot be nil")
	}
	if columns <= 0 {
		columns = 4
	}
	if labels == nil {
		labels = DefaultLabels
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Text{
		board:   board,
		cheat:   cheat,
		columns: columns,
		labels:  labels,
		logger:  logger.With(slog.String("component", "text_renderer")),
	}
}

// Update implements events.Observer.
func (t *Text) Update(m *game.Model, reveal *events.Reveal) {
	var err error
	if reveal != nil {
		err = t.RenderCheat(m)
	} else {
		err = t.Render(m)
	}
	if err != nil {
		t.logger.Error("failed to render board", slog.String("error", err.Error()))
	}
}

// Render draws the prompt, the real board and the move counter.
func (t *Text) Render(m *game.Model) error {
	state := m.State()

	var b strings.Builder
	b.WriteString(Prompt(state.CardsUp, state.Won))
	b.WriteString("\n")
	t.writeGrid(&b, state.Cards)
	b.WriteString(Moves(state.MoveCount))
	b.WriteString("\n")

	_, err := io.WriteString(t.board, b.String())
	return err
}

// RenderCheat draws the fully face-up board on the cheat surface.
func (t *Text) RenderCheat(m *game.Model) error {
	var b strings.Builder
	b.WriteString("Cheat Window\n")
	t.writeGrid(&b, m.CheatCards())

	_, err := io.WriteString(t.cheat, b.String())
	return err
}

func (t *Text) writeGrid(b *strings.Builder, cards []domain.Card) {
	w := t.labels.width()
	for i, c := range cards {
		fmt.Fprintf(b, "%2d[%-*s]", i, w+1, t.cell(c))
		if (i+1)%t.columns == 0 || i == len(cards)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
}

func (t *Text) cell(c domain.Card) string {
	switch {
	case c.Matched:
		return t.labels.For(c.PairID) + "*"
	case c.FaceUp:
		return t.labels.For(c.PairID)
	default:
		return ""
	}
}
