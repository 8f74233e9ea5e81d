package natsbus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/phrazzld/concentration/internal/domain"
	"github.com/phrazzld/concentration/internal/events"
	"github.com/phrazzld/concentration/internal/game"
	"github.com/phrazzld/concentration/internal/redact"
)

// Publisher sends a message on a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// Event kinds carried in BoardEvent.Kind.
const (
	KindBoard = "board"
	KindCheat = "cheat"
)

// BoardEvent is the message published after every notification.
type BoardEvent struct {
	SessionID   uuid.UUID     `json:"session_id"`
	Kind        string        `json:"kind"`
	RevealID    *uuid.UUID    `json:"reveal_id,omitempty"`
	Cards       []domain.Card `json:"cards"`
	MoveCount   int           `json:"move_count"`
	CardsUp     int           `json:"cards_up"`
	Won         bool          `json:"won"`
	PublishedAt time.Time     `json:"published_at"`
}

// BoardPublisher is an observer that forwards a session's notifications to
// NATS. Normal changes go to <prefix>.<session>.board with the real board,
// cheat reveals to <prefix>.<session>.cheat with the fully face-up board.
type BoardPublisher struct {
	pub       Publisher
	prefix    string
	sessionID uuid.UUID
	logger    *slog.Logger
}

var _ events.Observer[*game.Model] = (*BoardPublisher)(nil)

// NewBoardPublisher creates a publisher for one session.
func NewBoardPublisher(pub Publisher, prefix string, sessionID uuid.UUID, logger *slog.Logger) *BoardPublisher {
	if pub == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("publisher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BoardPublisher{
		pub:       pub,
		prefix:    prefix,
		sessionID: sessionID,
		logger: logger.With(
			slog.String("component", "nats_board_publisher"),
			slog.String("session_id", sessionID.String()),
		),
	}
}

// Subject returns the subject events of the given kind are published on.
func (p *BoardPublisher) Subject(kind string) string {
	return fmt.Sprintf("%s.%s.%s", p.prefix, p.sessionID, kind)
}

// Update implements events.Observer. Publish failures are logged; they never
// affect the game.
func (p *BoardPublisher) Update(m *game.Model, reveal *events.Reveal) {
	event := BoardEvent{
		SessionID:   p.sessionID,
		Kind:        KindBoard,
		Cards:       m.Cards(),
		MoveCount:   m.MoveCount(),
		CardsUp:     m.CardsUp(),
		Won:         m.Won(),
		PublishedAt: time.Now().UTC(),
	}
	if reveal != nil {
		id := reveal.ID
		event.Kind = KindCheat
		event.RevealID = &id
		event.Cards = m.CheatCards()
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode board event", slog.String("error", err.Error()))
		return
	}

	subject := p.Subject(event.Kind)
	if err := p.pub.Publish(subject, data); err != nil {
		p.logger.Error("failed to publish board event",
			slog.String("subject", subject),
			slog.String("error", redact.Error(err)))
		return
	}

	p.logger.Debug("published board event",
		slog.String("subject", subject),
		slog.Int("bytes", len(data)))
}
