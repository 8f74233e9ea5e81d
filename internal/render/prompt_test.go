package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name    string
		cardsUp int
		won     bool
		want    string
	}{
		{"nothing selected", 0, false, PromptFirstCard},
		{"one selected", 1, false, PromptSecondCard},
		{"mismatch", 2, false, PromptNoMatch},
		{"won", 0, true, PromptWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prompt(tt.cardsUp, tt.won))
		})
	}
}

func TestMoves(t *testing.T) {
	assert.Equal(t, "0 Moves", Moves(0))
	assert.Equal(t, "12 Moves", Moves(12))
}

func TestLabelsFor(t *testing.T) {
	assert.Equal(t, "abra", DefaultLabels.For(0))
	assert.Equal(t, "venomoth", DefaultLabels.For(7))
	assert.Equal(t, "9", DefaultLabels.For(9))
	assert.Equal(t, "-1", DefaultLabels.For(-1))
}
