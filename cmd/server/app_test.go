package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/concentration/internal/api"
	"github.com/phrazzld/concentration/internal/config"
	"github.com/phrazzld/concentration/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *recordingPublisher) Publish(subject string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func testApp(t *testing.T, seed int64) *application {
	t.Helper()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		Game:   config.GameConfig{Seed: seed, Columns: 4},
		NATS:   config.NATSConfig{Subject: "concentration"},
	}
	return &application{
		config:   cfg,
		logger:   l,
		sessions: store.NewMemoryStore(l),
		seeds:    newSeedSource(seed),
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := testApp(t, 1).setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouterServesGames(t *testing.T) {
	router := testApp(t, 1).setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/games", nil))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Trace-Id"))

	var created api.GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost,
		"/api/games/"+created.ID.String()+"/select", strings.NewReader(`{"index": 5}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	var selected api.SelectCardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &selected))
	assert.Equal(t, "first_card", selected.Result)
	assert.Equal(t, 1, selected.CardsUp)
}

func TestSessionsPublishToNATSWhenEnabled(t *testing.T) {
	app := testApp(t, 1)
	pub := &recordingPublisher{}
	app.publisher = pub
	router := app.setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/games", nil))
	require.Equal(t, http.StatusCreated, rr.Code)
	var created api.GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	for _, path := range []string{"/select", "/cheat"} {
		body := ""
		if path == "/select" {
			body = `{"index": 0}`
		}
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost,
			"/api/games/"+created.ID.String()+path, strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	prefix := "concentration." + created.ID.String()
	assert.Equal(t, []string{prefix + ".board", prefix + ".cheat"}, pub.subjects)
}

func TestSeededGamesAreReproducible(t *testing.T) {
	deal := func() [][]int {
		app := testApp(t, 42)
		var boards [][]int
		for i := 0; i < 3; i++ {
			m, err := app.newGame()
			require.NoError(t, err)
			var ids []int
			for _, c := range m.CheatCards() {
				ids = append(ids, c.PairID)
			}
			boards = append(boards, ids)
		}
		return boards
	}

	first, second := deal(), deal()
	assert.Equal(t, first, second)
	assert.NotEqual(t, first[0], first[1], "each session gets its own shuffle")
}
