package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/concentration/internal/domain"
	"github.com/phrazzld/concentration/internal/game"
	"github.com/phrazzld/concentration/internal/render"
)

// SelectCardRequest is the payload for POST /api/games/{id}/select.
type SelectCardRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// CardView is a card as a client may see it. PairID is omitted while the
// card is face-down.
type CardView struct {
	Index   int  `json:"index"`
	PairID  *int `json:"pair_id,omitempty"`
	FaceUp  bool `json:"face_up"`
	Matched bool `json:"matched"`
}

// GameResponse is the view of a session returned by most endpoints.
type GameResponse struct {
	ID           uuid.UUID  `json:"id"`
	Cards        []CardView `json:"cards"`
	MoveCount    int        `json:"move_count"`
	CardsUp      int        `json:"cards_up"`
	Phase        game.Phase `json:"phase"`
	MatchedPairs int        `json:"matched_pairs"`
	Won          bool       `json:"won"`
	UndoDepth    int        `json:"undo_depth"`
	Prompt       string     `json:"prompt"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SelectCardResponse adds the outcome of the selection to the game view.
type SelectCardResponse struct {
	GameResponse
	Result string `json:"result"`
}

// UndoResponse reports whether an undo step was applied.
type UndoResponse struct {
	GameResponse
	Undone bool `json:"undone"`
}

// CheatResponse shows every card face-up. The real board is not changed.
type CheatResponse struct {
	ID    uuid.UUID  `json:"id"`
	Cards []CardView `json:"cards"`
}

// ListGamesResponse lists the active sessions.
type ListGamesResponse struct {
	Games []GameSummary `json:"games"`
}

// GameSummary is a compact view of a session for listings.
type GameSummary struct {
	ID        uuid.UUID `json:"id"`
	MoveCount int       `json:"move_count"`
	Won       bool      `json:"won"`
	CreatedAt time.Time `json:"created_at"`
}

func cardViews(cards []domain.Card) []CardView {
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = CardView{
			Index:   i,
			FaceUp:  c.FaceUp,
			Matched: c.Matched,
		}
		if c.FaceUp {
			pairID := c.PairID
			views[i].PairID = &pairID
		}
	}
	return views
}

func stateToResponse(id uuid.UUID, createdAt time.Time, s game.State) GameResponse {
	return GameResponse{
		ID:           id,
		Cards:        cardViews(s.Cards),
		MoveCount:    s.MoveCount,
		CardsUp:      s.CardsUp,
		Phase:        s.Phase,
		MatchedPairs: s.MatchedPairs,
		Won:          s.Won,
		UndoDepth:    s.UndoDepth,
		Prompt:       render.Prompt(s.CardsUp, s.Won),
		Status:       render.Moves(s.MoveCount),
		CreatedAt:    createdAt,
	}
}
