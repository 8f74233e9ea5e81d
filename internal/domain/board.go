package domain

import "fmt"

const (
	// PairCount is the number of distinct pairs on a board.
	PairCount = 8

	// BoardSize is the number of cards on a board.
	BoardSize = 2 * PairCount
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it, which
// lets callers inject a seeded source for deterministic games.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Board is the ordered collection of cards. Positions are fixed once the
// board has been shuffled.
type Board struct {
	cards []Card
}

// NewBoard lays out every pair id twice and permutes the cards with s.
// A nil shuffler leaves the cards in layout order [0..7, 0..7].
func NewBoard(s Shuffler) *Board {
	cards := make([]Card, BoardSize)
	for i := range cards {
		cards[i] = Card{PairID: i % PairCount}
	}

	if s != nil {
		s.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
	}

	return &Board{cards: cards}
}

// NewBoardFromLayout builds a face-down board with the given pair ids in
// order. Every pair id in [0, PairCount) must appear exactly twice.
func NewBoardFromLayout(pairIDs []int) (*Board, error) {
	if len(pairIDs) != BoardSize {
		return nil, fmt.Errorf("%w: want %d cards, got %d", ErrInvalidLayout, BoardSize, len(pairIDs))
	}

	counts := make([]int, PairCount)
	cards := make([]Card, len(pairIDs))
	for i, id := range pairIDs {
		if id < 0 || id >= PairCount {
			return nil, fmt.Errorf("%w: pair id %d at position %d", ErrInvalidLayout, id, i)
		}
		counts[id]++
		cards[i] = Card{PairID: id}
	}

	for id, n := range counts {
		if n != 2 {
			return nil, fmt.Errorf("%w: pair id %d appears %d times", ErrInvalidLayout, id, n)
		}
	}

	return &Board{cards: cards}, nil
}

// Len returns the number of cards on the board.
func (b *Board) Len() int {
	return len(b.cards)
}

// Card returns the card at index i.
func (b *Board) Card(i int) (Card, error) {
	if err := b.checkIndex(i); err != nil {
		return Card{}, err
	}
	return b.cards[i], nil
}

// Cards returns a copy of the cards in board order.
func (b *Board) Cards() []Card {
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{cards: b.Cards()}
}

// Selected returns the indices of face-up, unmatched cards in board order.
func (b *Board) Selected() []int {
	var out []int
	for i, c := range b.cards {
		if c.Selected() {
			out = append(out, i)
		}
	}
	return out
}

// CountSelected returns how many cards are face-up and unmatched.
func (b *Board) CountSelected() int {
	n := 0
	for _, c := range b.cards {
		if c.Selected() {
			n++
		}
	}
	return n
}

// MatchedPairs returns the number of pairs found so far.
func (b *Board) MatchedPairs() int {
	n := 0
	for _, c := range b.cards {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

// AllMatched reports whether every pair has been found.
func (b *Board) AllMatched() bool {
	for _, c := range b.cards {
		if !c.Matched {
			return false
		}
	}
	return len(b.cards) > 0
}

// FlipUp turns the card at i face-up.
func (b *Board) FlipUp(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.cards[i].FaceUp = true
	return nil
}

// FlipDown turns the card at i face-down. Matched cards never go back down.
func (b *Board) FlipDown(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if b.cards[i].Matched {
		return fmt.Errorf("flip down card %d: %w", i, ErrMatchedFaceDown)
	}
	b.cards[i].FaceUp = false
	return nil
}

// MarkMatched records the cards at i and j as a found pair. Both stay face-up.
func (b *Board) MarkMatched(i, j int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if err := b.checkIndex(j); err != nil {
		return err
	}
	for _, k := range []int{i, j} {
		b.cards[k].FaceUp = true
		b.cards[k].Matched = true
	}
	return nil
}

// Restore replaces the board's cards with a copy of cards.
func (b *Board) Restore(cards []Card) error {
	if len(cards) != len(b.cards) {
		return fmt.Errorf("%w: restore %d cards onto a board of %d", ErrInvalidLayout, len(cards), len(b.cards))
	}
	copy(b.cards, cards)
	return nil
}

// Validate checks every board invariant: each pair id appears exactly twice,
// matched cards are face-up, and at most two unmatched cards are face-up.
func (b *Board) Validate() error {
	counts := make(map[int]int, PairCount)
	for i, c := range b.cards {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
		counts[c.PairID]++
	}

	for id, n := range counts {
		if n != 2 {
			return fmt.Errorf("%w: pair id %d appears %d times", ErrInvalidLayout, id, n)
		}
	}

	if n := b.CountSelected(); n > 2 {
		return fmt.Errorf("%w: %d selected", ErrTooManySelected, n)
	}

	return nil
}

func (b *Board) checkIndex(i int) error {
	if i < 0 || i >= len(b.cards) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(b.cards))
	}
	return nil
}
