package game

import (
	"github.com/ratel-online/uno/card"
)

// HandPoints is the value a hand awards the winner when left unplayed at
// the end of a round.
func HandPoints(cards []card.Card) int {
	points := 0
	for _, handCard := range cards {
		points += handCard.Points()
	}
	return points
}
