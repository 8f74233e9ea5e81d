package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/concentration/internal/domain"
	"github.com/phrazzld/concentration/internal/events"
)

// State is a consistent read of everything a view needs to render the board.
type State struct {
	Cards        []domain.Card `json:"cards"`
	MoveCount    int           `json:"move_count"`
	CardsUp      int           `json:"cards_up"`
	Phase        Phase         `json:"phase"`
	MatchedPairs int           `json:"matched_pairs"`
	Won          bool          `json:"won"`
	UndoDepth    int           `json:"undo_depth"`
}

// Model is the Concentration game-state engine. It is not safe for
// concurrent use; see Locked.
type Model struct {
	board   *domain.Board
	history history
	// pending is the state captured before the first card of the current
	// comparison was flipped. It becomes a history entry on mismatch.
	pending *snapshot
	moves   int

	shuffler  domain.Shuffler
	layout    []int
	observers *events.Registry[*Model]
	logger    *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithShuffler sets the randomness source used to shuffle the board on every
// reset. *rand.Rand satisfies domain.Shuffler.
func WithShuffler(s domain.Shuffler) Option {
	return func(m *Model) {
		m.shuffler = s
	}
}

// WithSeed shuffles boards with a math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return WithShuffler(rand.New(rand.NewSource(seed)))
}

// WithLayout deals the same fixed layout of pair ids on every reset instead
// of shuffling. The layout is validated by New.
func WithLayout(pairIDs []int) Option {
	return func(m *Model) {
		m.layout = append([]int(nil), pairIDs...)
	}
}

// WithLogger sets the logger used by the model and its observer registry.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates a model with a freshly dealt board. It fails only when a
// layout given through WithLayout is invalid.
func New(opts ...Option) (*Model, error) {
	m := &Model{}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.Default()
	}
	m.observers = events.NewRegistry[*Model](m.logger)
	m.logger = m.logger.With(slog.String("component", "game_model"))

	if m.shuffler == nil {
		m.shuffler = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if m.layout != nil {
		if _, err := domain.NewBoardFromLayout(m.layout); err != nil {
			return nil, err
		}
	}

	m.Reset()
	return m, nil
}

// SelectCard flips the card at index as part of the current comparison.
//
// Selecting a matched card, or a card that is already face-up in the current
// selection, is a no-op. When two mismatched cards are face-up, they are
// turned back down before the new card becomes the first of a fresh
// comparison. An index outside the board returns an error wrapping
// domain.ErrIndexOutOfRange and leaves the model untouched.
func (m *Model) SelectCard(index int) (SelectResult, error) {
	target, err := m.board.Card(index)
	if err != nil {
		m.logger.Warn("card selection out of range",
			slog.Int("index", index),
			slog.Int("board_size", m.board.Len()))
		return NoOp, NewSelectCardError(index, err)
	}

	if target.FaceUp {
		m.logger.Debug("ignoring selection of face-up card",
			slog.Int("index", index),
			slog.Bool("matched", target.Matched))
		return NoOp, nil
	}

	if phaseOf(m.board) == TwoSelectedMismatch {
		if err := m.resolveMismatch(); err != nil {
			return NoOp, NewSelectCardError(index, err)
		}
	}

	var result SelectResult
	selected := m.board.Selected()
	switch len(selected) {
	case 0:
		m.pending = takeSnapshot(m.board, m.moves)
		if err := m.board.FlipUp(index); err != nil {
			return NoOp, NewSelectCardError(index, err)
		}
		result = FirstCard

	default:
		first, err := m.board.Card(selected[0])
		if err != nil {
			return NoOp, NewSelectCardError(index, err)
		}
		if err := m.board.FlipUp(index); err != nil {
			return NoOp, NewSelectCardError(index, err)
		}
		m.moves++

		if first.PairID == target.PairID {
			if err := m.board.MarkMatched(selected[0], index); err != nil {
				return NoOp, NewSelectCardError(index, err)
			}
			result = Match
		} else {
			if m.pending != nil {
				m.history.push(m.pending)
			}
			result = Mismatch
		}
		m.pending = nil
	}

	m.logger.Debug("card selected",
		slog.Int("index", index),
		slog.String("result", result.String()),
		slog.Int("move_count", m.moves),
		slog.Int("undo_depth", m.history.len()))

	m.observers.Notify(m, nil)
	return result, nil
}

// resolveMismatch turns the two face-up unmatched cards back down. It is not
// a move and records no history.
func (m *Model) resolveMismatch() error {
	for _, i := range m.board.Selected() {
		if err := m.board.FlipDown(i); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverts the most recent mismatched comparison, restoring the board
// and move count to what they were before its first card was flipped. Pairs
// found since then stay matched and keep their moves. Undo reports whether
// anything was undone; with an empty history it does nothing and sends no
// notification.
func (m *Model) Undo() bool {
	snap, ok := m.history.pop()
	if !ok {
		m.logger.Debug("nothing to undo")
		return false
	}

	current := m.board.Cards()
	cards := snap.board.Cards()

	carried := 0
	for i := range cards {
		if current[i].Matched && !cards[i].Matched {
			cards[i].FaceUp = true
			cards[i].Matched = true
			carried++
		}
	}

	if err := m.board.Restore(cards); err != nil {
		// Snapshots are taken from this board, so sizes always agree.
		m.logger.Error("failed to restore snapshot", slog.String("error", err.Error()))
		return false
	}
	m.moves = snap.moves + carried/2
	m.pending = nil

	m.logger.Debug("undid comparison",
		slog.Int("move_count", m.moves),
		slog.Int("carried_pairs", carried/2),
		slog.Int("undo_depth", m.history.len()))

	m.observers.Notify(m, nil)
	return true
}

// Reset deals a new face-down board, clears the move count and the undo
// history, and notifies observers.
func (m *Model) Reset() {
	if m.layout != nil {
		// Validated in New.
		m.board, _ = domain.NewBoardFromLayout(m.layout)
	} else {
		m.board = domain.NewBoard(m.shuffler)
	}
	m.moves = 0
	m.pending = nil
	m.history.clear()

	m.logger.Debug("board reset", slog.Int("board_size", m.board.Len()))
	m.observers.Notify(m, nil)
}

// Cheat asks observers to show a reveal of the whole board. The board itself
// is not changed.
func (m *Model) Cheat() {
	reveal := events.NewReveal()
	m.logger.Debug("cheat reveal requested", slog.String("reveal_id", reveal.ID.String()))
	m.observers.Notify(m, reveal)
}

// Cards returns a copy of the real board.
func (m *Model) Cards() []domain.Card {
	return m.board.Cards()
}

// CheatCards returns a copy of the board with every card face-up. It shares
// nothing with the real board.
func (m *Model) CheatCards() []domain.Card {
	cards := m.board.Cards()
	for i := range cards {
		cards[i] = cards[i].Revealed()
	}
	return cards
}

// MoveCount returns the number of completed comparisons since the last reset.
func (m *Model) MoveCount() int {
	return m.moves
}

// CardsUp returns how many unmatched cards are face-up: 0, 1 or 2.
func (m *Model) CardsUp() int {
	return m.board.CountSelected()
}

// Phase returns the current selection phase.
func (m *Model) Phase() Phase {
	return phaseOf(m.board)
}

// Won reports whether every pair has been found.
func (m *Model) Won() bool {
	return m.board.AllMatched()
}

// UndoDepth returns the number of comparisons that can be undone.
func (m *Model) UndoDepth() int {
	return m.history.len()
}

// State returns a consistent read of the model.
func (m *Model) State() State {
	return State{
		Cards:        m.board.Cards(),
		MoveCount:    m.moves,
		CardsUp:      m.board.CountSelected(),
		Phase:        phaseOf(m.board),
		MatchedPairs: m.board.MatchedPairs(),
		Won:          m.board.AllMatched(),
		UndoDepth:    m.history.len(),
	}
}

// AddObserver registers an observer and returns the id to remove it with.
// The model does not own the observer.
func (m *Model) AddObserver(o events.Observer[*Model]) uuid.UUID {
	return m.observers.Register(o)
}

// RemoveObserver unregisters the observer added under id.
func (m *Model) RemoveObserver(id uuid.UUID) bool {
	return m.observers.Unregister(id)
}
