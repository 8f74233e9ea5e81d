package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phrazzld/concentration/internal/domain"
	"github.com/phrazzld/concentration/internal/game"
)

const helpText = `Commands:
  select N | N   flip card N (0-15)
  undo           take back the last mismatched comparison
  reset          deal a new board
  cheat          show every card without changing the board
  help           show this help
  quit           leave the game
`

var errQuit = errors.New("quit")

// boardRenderer draws the current board.
type boardRenderer interface {
	Render(m *game.Model) error
}

// player maps typed commands to game operations. Board output comes from
// the model's observers; player only writes help and error text.
type player struct {
	model  *game.Model
	out    io.Writer
	errOut io.Writer
}

func newPlayer(m *game.Model, out, errOut io.Writer) *player {
	return &player{model: m, out: out, errOut: errOut}
}

// play draws the initial board and runs commands from in until quit, EOF or
// ctx is canceled.
func (p *player) play(ctx context.Context, in io.Reader, view boardRenderer) error {
	if err := view.Render(p.model); err != nil {
		return fmt.Errorf("failed to draw board: %w", err)
	}
	fmt.Fprint(p.out, "Type help for commands.\n")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				case <-ctx.Done():
					return nil
				}
			}
			if err := p.exec(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(p.errOut, "error: %v\n", err)
			}
		}
	}
}

// readLines scans in on its own goroutine so that a blocked read never
// delays cancellation. The lines channel closes at EOF, after the scan error
// (possibly nil) has been sent on the error channel. A reader blocked when
// ctx is canceled is abandoned.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// exec runs a single command line.
func (p *player) exec(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	switch cmd := fields[0]; cmd {
	case "select", "s":
		if len(fields) != 2 {
			return errors.New("usage: select N")
		}
		return p.selectCard(fields[1])
	case "undo", "u":
		if !p.model.Undo() {
			fmt.Fprint(p.out, "Nothing to undo.\n")
		}
		return nil
	case "reset", "r":
		p.model.Reset()
		return nil
	case "cheat", "c":
		p.model.Cheat()
		return nil
	case "help", "h", "?":
		fmt.Fprint(p.out, helpText)
		return nil
	case "quit", "q", "exit":
		return errQuit
	default:
		if len(fields) == 1 {
			if _, err := strconv.Atoi(cmd); err == nil {
				return p.selectCard(cmd)
			}
		}
		return fmt.Errorf("unknown command %q, type help for commands", cmd)
	}
}

func (p *player) selectCard(arg string) error {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("card index %q is not a number", arg)
	}

	if _, err := p.model.SelectCard(index); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return fmt.Errorf("card index must be between 0 and %d", domain.BoardSize-1)
		}
		return err
	}
	return nil
}
