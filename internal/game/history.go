package game

import "github.com/phrazzld/concentration/internal/domain"

// snapshot is an immutable capture of the board and move count taken before
// the first card of a comparison was flipped. The selection is not stored:
// it is always empty at capture time and is otherwise derived from the
// cards' face-up flags.
type snapshot struct {
	board *domain.Board
	moves int
}

func takeSnapshot(b *domain.Board, moves int) *snapshot {
	return &snapshot{board: b.Clone(), moves: moves}
}

// history is the undo stack. The most recent snapshot is on top.
type history struct {
	entries []*snapshot
}

func (h *history) push(s *snapshot) {
	h.entries = append(h.entries, s)
}

func (h *history) pop() (*snapshot, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	top := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return top, true
}

func (h *history) len() int {
	return len(h.entries)
}

func (h *history) clear() {
	h.entries = nil
}
