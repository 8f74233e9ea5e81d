package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/concentration/internal/domain"
	"github.com/phrazzld/concentration/internal/events"
)

// Locked guards a Model with a single mutex held for the whole of each
// operation, including observer notification, so that board mutation,
// history changes and notification appear atomic to other goroutines.
//
// Observers still receive the inner *Model and must query it directly;
// calling back into the Locked from an observer deadlocks.
type Locked struct {
	mu    sync.Mutex
	model *Model
}

// NewLocked wraps m.
func NewLocked(m *Model) *Locked {
	if m == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("model cannot be nil")
	}
	return &Locked{model: m}
}

// Do runs fn with exclusive access to the model, for callers that need
// several operations to happen as one.
func (l *Locked) Do(fn func(m *Model)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.model)
}

// SelectCard calls Model.SelectCard under the lock.
func (l *Locked) SelectCard(index int) (SelectResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.SelectCard(index)
}

// Undo calls Model.Undo under the lock.
func (l *Locked) Undo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.Undo()
}

// Reset calls Model.Reset under the lock.
func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.model.Reset()
}

// Cheat calls Model.Cheat under the lock.
func (l *Locked) Cheat() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.model.Cheat()
}

// Cards calls Model.Cards under the lock.
func (l *Locked) Cards() []domain.Card {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.Cards()
}

// CheatCards calls Model.CheatCards under the lock.
func (l *Locked) CheatCards() []domain.Card {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.CheatCards()
}

// MoveCount calls Model.MoveCount under the lock.
func (l *Locked) MoveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.MoveCount()
}

// CardsUp calls Model.CardsUp under the lock.
func (l *Locked) CardsUp() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.CardsUp()
}

// State calls Model.State under the lock.
func (l *Locked) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.State()
}

// AddObserver calls Model.AddObserver under the lock.
func (l *Locked) AddObserver(o events.Observer[*Model]) uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.AddObserver(o)
}

// RemoveObserver calls Model.RemoveObserver under the lock.
func (l *Locked) RemoveObserver(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.RemoveObserver(id)
}
