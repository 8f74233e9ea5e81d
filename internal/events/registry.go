package events

import (
	"log/slog"

	"github.com/google/uuid"
)

type registration[S any] struct {
	id       uuid.UUID
	observer Observer[S]
}

// Registry holds observers in registration order and dispatches
// notifications to them. It does not own the observers; their lifetime is
// managed by whoever registered them.
//
// Registry is not safe for concurrent use. The game model that owns it is
// single-threaded; hosts that share a model guard it with one lock.
type Registry[S any] struct {
	observers []registration[S]
	logger    *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry[S any](logger *slog.Logger) *Registry[S] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry[S]{
		logger: logger.With(slog.String("component", "observer_registry")),
	}
}

// Register adds an observer and returns the id to unregister it with.
func (r *Registry[S]) Register(o Observer[S]) uuid.UUID {
	if o == nil {
		// ALLOW-PANIC: registering nil is a caller bug
		panic("observer cannot be nil")
	}

	id := uuid.New()
	r.observers = append(r.observers, registration[S]{id: id, observer: o})
	r.logger.Debug("registered observer",
		slog.String("observer_id", id.String()),
		slog.Int("observer_count", len(r.observers)))
	return id
}

// Unregister removes the observer registered under id. It reports whether an
// observer was removed.
func (r *Registry[S]) Unregister(id uuid.UUID) bool {
	for i, reg := range r.observers {
		if reg.id == id {
			r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
			r.logger.Debug("unregistered observer",
				slog.String("observer_id", id.String()),
				slog.Int("observer_count", len(r.observers)))
			return true
		}
	}
	return false
}

// Len returns the number of registered observers.
func (r *Registry[S]) Len() int {
	return len(r.observers)
}

// Notify calls every registered observer in registration order.
// Observers registered or removed during dispatch take effect on the next
// notification.
func (r *Registry[S]) Notify(subject S, reveal *Reveal) {
	observers := make([]registration[S], len(r.observers))
	copy(observers, r.observers)

	if reveal != nil {
		r.logger.Debug("notifying observers of cheat reveal",
			slog.String("reveal_id", reveal.ID.String()),
			slog.Int("observer_count", len(observers)))
	} else {
		r.logger.Debug("notifying observers of board change",
			slog.Int("observer_count", len(observers)))
	}

	for _, reg := range observers {
		reg.observer.Update(subject, reveal)
	}
}
