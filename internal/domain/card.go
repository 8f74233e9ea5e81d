package domain

// Card is a single tile on the board. Two cards share each PairID.
type Card struct {
	PairID  int  `json:"pair_id"`
	FaceUp  bool `json:"face_up"`
	Matched bool `json:"matched"`
}

// Selected reports whether the card is face-up but not yet part of a found
// pair, i.e. part of the current selection.
func (c Card) Selected() bool {
	return c.FaceUp && !c.Matched
}

// Validate checks the card's own invariant.
func (c Card) Validate() error {
	if c.Matched && !c.FaceUp {
		return ErrMatchedFaceDown
	}
	return nil
}

// Revealed returns a copy of the card turned face-up. Matched is preserved.
func (c Card) Revealed() Card {
	c.FaceUp = true
	return c
}
