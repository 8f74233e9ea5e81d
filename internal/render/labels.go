package render

import "strconv"

// Labels maps pair ids to the names drawn on face-up cards.
type Labels []string

// DefaultLabels are the pictures of the classic board.
var DefaultLabels = Labels{
	"abra",
	"bulbasaur",
	"charmander",
	"jigglypuff",
	"meowth",
	"pikachu",
	"squirtle",
	"venomoth",
}

// For returns the label of pairID, or the id itself when no label is known.
func (l Labels) For(pairID int) string {
	if pairID >= 0 && pairID < len(l) {
		return l[pairID]
	}
	return strconv.Itoa(pairID)
}

// width returns the length of the longest label.
func (l Labels) width() int {
	w := 2
	for _, s := range l {
		if len(s) > w {
			w = len(s)
		}
	}
	return w
}
