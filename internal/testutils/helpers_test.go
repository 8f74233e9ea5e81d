package testutils

import (
	"net/http"
	"testing"

	"github.com/phrazzld/concentration/internal/api/shared"
	"github.com/phrazzld/concentration/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderedLayoutIsValid(t *testing.T) {
	_, err := domain.NewBoardFromLayout(OrderedLayout)
	assert.NoError(t, err)
}

func TestPlayMatch(t *testing.T) {
	m := MustNewGame(t)
	for pair := 0; pair < domain.PairCount; pair++ {
		PlayMatch(t, m, pair)
	}
	assert.True(t, m.Won())
}

func TestAssertErrorResponse(t *testing.T) {
	server := CreateTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Game not found")
	}))

	resp := DoJSON(t, server, http.MethodGet, "/api/games/x", "")
	AssertErrorResponse(t, resp, http.StatusNotFound, "not found")
}
