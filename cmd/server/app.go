package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/phrazzld/concentration/internal/api"
	"github.com/phrazzld/concentration/internal/config"
	"github.com/phrazzld/concentration/internal/events"
	"github.com/phrazzld/concentration/internal/game"
	"github.com/phrazzld/concentration/internal/platform/natsbus"
	"github.com/phrazzld/concentration/internal/store"
)

// application holds the shared dependencies of the server and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	sessions store.SessionStore
	seeds    *seedSource

	// publisher is nil when NATS is disabled.
	publisher natsbus.Publisher
	natsConn  *nats.Conn
}

// newApplication wires the application from configuration. It connects to
// NATS only when a URL is configured.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		sessions: store.NewMemoryStore(logger),
		seeds:    newSeedSource(cfg.Game.Seed),
	}

	if cfg.NATS.Enabled() {
		nc, err := natsbus.Connect(cfg.NATS.URL, "concentration-server", logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		app.natsConn = nc
		app.publisher = nc
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// newGame deals a game for a new session. Every game gets its own shuffler
// seeded from the application's seed source.
func (app *application) newGame() (*game.Model, error) {
	return game.New(
		game.WithSeed(app.seeds.next()),
		game.WithLogger(app.logger),
	)
}

// observerFactories returns the observers attached to every new session.
func (app *application) observerFactories() []api.ObserverFactory {
	if app.publisher == nil {
		return nil
	}
	return []api.ObserverFactory{
		func(id uuid.UUID) events.Observer[*game.Model] {
			return natsbus.NewBoardPublisher(app.publisher, app.config.NATS.Subject, id, app.logger)
		},
	}
}

// cleanup releases external connections.
func (app *application) cleanup() {
	if app.natsConn != nil {
		if err := app.natsConn.Drain(); err != nil {
			app.logger.Error("error draining NATS connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}

// seedSource hands out per-game seeds. A fixed configured seed makes the
// sequence of dealt boards reproducible across restarts.
type seedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSeedSource(seed int64) *seedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &seedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seedSource) next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}
