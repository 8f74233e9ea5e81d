package game

import (
	"fmt"

	"github.com/phrazzld/concentration/internal/domain"
)

// Phase is the selection state of the board.
type Phase int

const (
	// NoneSelected means no unmatched card is face-up.
	NoneSelected Phase = iota
	// OneSelected means the first card of a comparison is face-up.
	OneSelected
	// TwoSelectedMatch is the transient outcome of a comparison that found a
	// pair. The board is back in NoneSelected once the call returns.
	TwoSelectedMatch
	// TwoSelectedMismatch means two different cards are face-up awaiting
	// undo or the next selection.
	TwoSelectedMismatch
)

// String returns the string representation of a Phase.
func (p Phase) String() string {
	switch p {
	case NoneSelected:
		return "none_selected"
	case OneSelected:
		return "one_selected"
	case TwoSelectedMatch:
		return "two_selected_match"
	case TwoSelectedMismatch:
		return "two_selected_mismatch"
	default:
		return "unknown"
	}
}

// phaseOf derives the phase from the board's face-up flags. Matches resolve
// immediately, so a stored board is never in TwoSelectedMatch.
func phaseOf(b *domain.Board) Phase {
	switch b.CountSelected() {
	case 0:
		return NoneSelected
	case 1:
		return OneSelected
	default:
		return TwoSelectedMismatch
	}
}

// SelectResult describes what a SelectCard call did.
type SelectResult int

const (
	// NoOp means the card was already matched or already selected.
	NoOp SelectResult = iota
	// FirstCard means the card became the first of a new comparison.
	FirstCard
	// Match means the card completed a pair.
	Match
	// Mismatch means the card was compared against a different card.
	Mismatch
)

// String returns the string representation of a SelectResult.
func (r SelectResult) String() string {
	switch r {
	case NoOp:
		return "no_op"
	case FirstCard:
		return "first_card"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Phase returns the phase the board is in right after a select with this
// result.
func (r SelectResult) Phase() Phase {
	switch r {
	case FirstCard:
		return OneSelected
	case Match:
		return TwoSelectedMatch
	case Mismatch:
		return TwoSelectedMismatch
	default:
		return NoneSelected
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name produced by MarshalText.
func (p *Phase) UnmarshalText(text []byte) error {
	for _, candidate := range []Phase{NoneSelected, OneSelected, TwoSelectedMatch, TwoSelectedMismatch} {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}
