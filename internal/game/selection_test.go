package game

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/concentration/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{NoneSelected, "none_selected"},
		{OneSelected, "one_selected"},
		{TwoSelectedMatch, "two_selected_match"},
		{TwoSelectedMismatch, "two_selected_mismatch"},
		{Phase(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.phase.String())
		})
	}
}

func TestPhaseMarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Phase Phase `json:"phase"`
	}{OneSelected})

	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"one_selected"}`, string(data))
}

func TestPhaseJSONRoundTrip(t *testing.T) {
	type payload struct {
		Phase Phase `json:"phase"`
	}

	for _, phase := range []Phase{NoneSelected, OneSelected, TwoSelectedMatch, TwoSelectedMismatch} {
		t.Run(phase.String(), func(t *testing.T) {
			data, err := json.Marshal(payload{phase})
			require.NoError(t, err)

			var decoded payload
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, phase, decoded.Phase)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		var decoded payload
		err := json.Unmarshal([]byte(`{"phase":"three_selected"}`), &decoded)
		assert.ErrorContains(t, err, `unknown phase "three_selected"`)
	})
}

func TestSelectResultPhase(t *testing.T) {
	assert.Equal(t, NoneSelected, NoOp.Phase())
	assert.Equal(t, OneSelected, FirstCard.Phase())
	assert.Equal(t, TwoSelectedMatch, Match.Phase())
	assert.Equal(t, TwoSelectedMismatch, Mismatch.Phase())
	assert.Equal(t, "mismatch", Mismatch.String())
}

func TestHistory(t *testing.T) {
	var h history

	_, ok := h.pop()
	assert.False(t, ok)

	first := &snapshot{moves: 1}
	second := &snapshot{moves: 2}
	h.push(first)
	h.push(second)
	assert.Equal(t, 2, h.len())

	top, ok := h.pop()
	require.True(t, ok)
	assert.Same(t, second, top)

	h.clear()
	assert.Equal(t, 0, h.len())
}

func TestTakeSnapshotIsIndependentOfBoard(t *testing.T) {
	b := domain.NewBoard(nil)
	snap := takeSnapshot(b, 3)

	require.NoError(t, b.FlipUp(0))
	require.NoError(t, b.MarkMatched(1, 9))

	for i, c := range snap.board.Cards() {
		assert.False(t, c.FaceUp, "card %d changed in the snapshot", i)
	}
	assert.Equal(t, 3, snap.moves)
}
