package events

import (
	"time"

	"github.com/google/uuid"
)

// Reveal marks a notification as a cheat reveal request. A nil *Reveal means
// the board changed normally.
type Reveal struct {
	// ID is a unique identifier for this reveal request
	ID uuid.UUID `json:"id"`

	// RequestedAt is the timestamp when the reveal was requested
	RequestedAt time.Time `json:"requested_at"`
}

// NewReveal creates a new Reveal token.
func NewReveal() *Reveal {
	return &Reveal{
		ID:          uuid.New(),
		RequestedAt: time.Now().UTC(),
	}
}

// Observer defines an interface for components that react to changes of a
// subject of type S.
type Observer[S any] interface {
	// Update is called synchronously after every mutating operation on the
	// subject. reveal is nil for normal changes and non-nil for cheat reveals.
	Update(subject S, reveal *Reveal)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[S any] func(subject S, reveal *Reveal)

// Update implements Observer.
func (f ObserverFunc[S]) Update(subject S, reveal *Reveal) {
	f(subject, reveal)
}
