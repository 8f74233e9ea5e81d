package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/concentration/internal/api/shared"
	"github.com/phrazzld/concentration/internal/events"
	"github.com/phrazzld/concentration/internal/game"
	"github.com/phrazzld/concentration/internal/platform/logger"
	"github.com/phrazzld/concentration/internal/redact"
	"github.com/phrazzld/concentration/internal/store"
)

// GameFactory builds the engine for a new session.
type GameFactory func() (*game.Model, error)

// ObserverFactory builds an observer attached to every new session, for
// example a NATS publisher. It may return nil to attach nothing.
type ObserverFactory func(sessionID uuid.UUID) events.Observer[*game.Model]

// GameHandler handles game session HTTP requests.
type GameHandler struct {
	store     store.SessionStore
	newGame   GameFactory
	observers []ObserverFactory
	logger    *slog.Logger
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(
	sessions store.SessionStore,
	newGame GameFactory,
	logger *slog.Logger,
	observers ...ObserverFactory,
) *GameHandler {
	if sessions == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("session store cannot be nil for GameHandler")
	}
	if newGame == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("game factory cannot be nil for GameHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GameHandler")
	}

	return &GameHandler{
		store:     sessions,
		newGame:   newGame,
		observers: observers,
		logger:    logger.With(slog.String("component", "game_handler")),
	}
}

// Routes mounts the game endpoints on r.
func (h *GameHandler) Routes(r chi.Router) {
	r.Route("/games", func(r chi.Router) {
		r.Post("/", h.CreateGame)
		r.Get("/", h.ListGames)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetGame)
			r.Delete("/", h.DeleteGame)
			r.Post("/select", h.SelectCard)
			r.Post("/undo", h.Undo)
			r.Post("/reset", h.Reset)
			r.Post("/cheat", h.Cheat)
		})
	})
}

// CreateGame handles POST /games requests.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	m, err := h.newGame()
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create game")
		return
	}

	sess := store.NewSession(game.NewLocked(m))
	for _, factory := range h.observers {
		if o := factory(sess.ID); o != nil {
			sess.Game.AddObserver(o)
		}
	}

	if err := h.store.Create(r.Context(), sess); err != nil {
		HandleAPIError(w, r, err, "Failed to create game")
		return
	}

	log.Info("game created", slog.String("session_id", sess.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated,
		stateToResponse(sess.ID, sess.CreatedAt, sess.Game.State()))
}

// ListGames handles GET /games requests.
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list games")
		return
	}

	resp := ListGamesResponse{Games: make([]GameSummary, 0, len(sessions))}
	for _, sess := range sessions {
		var moves int
		var won bool
		sess.Game.Do(func(m *game.Model) {
			moves, won = m.MoveCount(), m.Won()
		})
		resp.Games = append(resp.Games, GameSummary{
			ID:        sess.ID,
			MoveCount: moves,
			Won:       won,
			CreatedAt: sess.CreatedAt,
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetGame handles GET /games/{id} requests.
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		stateToResponse(sess.ID, sess.CreatedAt, sess.Game.State()))
}

// DeleteGame handles DELETE /games/{id} requests.
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete game")
		return
	}

	log.Info("game deleted", slog.String("session_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// SelectCard handles POST /games/{id}/select requests.
func (h *GameHandler) SelectCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req SelectCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request format", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, ErrInvalidRequest, "")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var (
		result game.SelectResult
		state  game.State
		selErr error
	)
	sess.Game.Do(func(m *game.Model) {
		result, selErr = m.SelectCard(*req.Index)
		state = m.State()
	})
	if selErr != nil {
		HandleAPIError(w, r, selErr, "Failed to select card")
		return
	}

	log.Debug("card selected",
		slog.String("session_id", sess.ID.String()),
		slog.Int("index", *req.Index),
		slog.String("result", result.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, SelectCardResponse{
		GameResponse: stateToResponse(sess.ID, sess.CreatedAt, state),
		Result:       result.String(),
	})
}

// Undo handles POST /games/{id}/undo requests. An empty history is not an
// error; the response reports undone=false.
func (h *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var (
		undone bool
		state  game.State
	)
	sess.Game.Do(func(m *game.Model) {
		undone = m.Undo()
		state = m.State()
	})

	shared.RespondWithJSON(w, r, http.StatusOK, UndoResponse{
		GameResponse: stateToResponse(sess.ID, sess.CreatedAt, state),
		Undone:       undone,
	})
}

// Reset handles POST /games/{id}/reset requests.
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var state game.State
	sess.Game.Do(func(m *game.Model) {
		m.Reset()
		state = m.State()
	})
	shared.RespondWithJSON(w, r, http.StatusOK, stateToResponse(sess.ID, sess.CreatedAt, state))
}

// Cheat handles POST /games/{id}/cheat requests. Observers are notified with
// a reveal and the response carries every card face-up.
func (h *GameHandler) Cheat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var resp CheatResponse
	sess.Game.Do(func(m *game.Model) {
		m.Cheat()
		resp = CheatResponse{ID: sess.ID, Cards: cardViews(m.CheatCards())}
	})

	log.Info("cheat requested", slog.String("session_id", sess.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
