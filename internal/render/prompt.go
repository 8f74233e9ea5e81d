package render

import "fmt"

// Prompts shown above the board.
const (
	PromptFirstCard  = "Select the first card."
	PromptSecondCard = "Select the second card."
	PromptNoMatch    = "No Match: Undo or select a card."
	PromptWin        = "YOU WIN!"
)

// Prompt returns the instruction for the player given how many unmatched
// cards are face-up and whether the game is won.
func Prompt(cardsUp int, won bool) string {
	if won {
		return PromptWin
	}
	switch cardsUp {
	case 0:
		return PromptFirstCard
	case 1:
		return PromptSecondCard
	default:
		return PromptNoMatch
	}
}

// Moves formats the move counter.
func Moves(n int) string {
	return fmt.Sprintf("%d Moves", n)
}
