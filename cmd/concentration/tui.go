package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phrazzld/concentration/internal/game"
	"github.com/phrazzld/concentration/internal/render"
)

// frameWriter keeps the most recent write. render.Text draws a whole frame
// per write, so the last one is what the screen should show.
type frameWriter struct {
	frame string
}

func (f *frameWriter) Write(p []byte) (int, error) {
	f.frame = string(p)
	return len(p), nil
}

func (f *frameWriter) reset() { f.frame = "" }

// tuiModel is the bubbletea front end. Commands typed into the input line
// go through the same player as the plain prompt; board redraws arrive
// through the game's observers and are read back from the frames.
type tuiModel struct {
	player *player
	input  textinput.Model
	board  *frameWriter
	cheat  *frameWriter
	status *frameWriter
}

// newTUIModel registers a renderer on m that draws into the model's frames.
func newTUIModel(m *game.Model, columns int, logger *slog.Logger) (*tuiModel, error) {
	board, cheat, status := &frameWriter{}, &frameWriter{}, &frameWriter{}
	text := render.NewText(board, cheat, columns, render.DefaultLabels, logger)
	m.AddObserver(text)
	if err := text.Render(m); err != nil {
		return nil, fmt.Errorf("failed to draw board: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "card number or command"
	input.Prompt = "> "
	input.CharLimit = 32
	input.Focus()

	return &tuiModel{
		player: newPlayer(m, status, status),
		input:  input,
		board:  board,
		cheat:  cheat,
		status: status,
	}, nil
}

// Init implements tea.Model.
func (t *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (t *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return t, tea.Quit
		case tea.KeyEnter:
			return t, t.submit()
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// submit runs the typed line and clears the input.
func (t *tuiModel) submit() tea.Cmd {
	line := t.input.Value()
	t.input.SetValue("")
	t.cheat.reset()
	t.status.reset()

	if err := t.player.exec(line); err != nil {
		if errors.Is(err, errQuit) {
			return tea.Quit
		}
		t.status.frame = "error: " + err.Error() + "\n"
	}
	return nil
}

// View implements tea.Model.
func (t *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(t.board.frame)
	if t.cheat.frame != "" {
		b.WriteString("\n")
		b.WriteString(t.cheat.frame)
	}
	if t.status.frame != "" {
		b.WriteString("\n")
		b.WriteString(t.status.frame)
	}
	b.WriteString("\n")
	b.WriteString(t.input.View())
	b.WriteString("\n\nenter: run  help: commands  esc: quit\n")
	return b.String()
}

// runTUI runs the full-screen interface until the player quits or ctx is
// canceled.
func runTUI(ctx context.Context, model *tuiModel, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal interface failed: %w", err)
	}
	return nil
}
