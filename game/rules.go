package game

import (
	"github.com/ratel-online/uno/card"
)

func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard.Color() == lastPlayedCard.Color() {
		return true
	}

	switch candidateCard := candidateCard.(type) {
	case card.WildCard, card.WildDrawFourCard:
		return true
	case card.DrawTwoCard:
		_, isDrawTwoCard := lastPlayedCard.(card.DrawTwoCard)
		return isDrawTwoCard
	case card.ReverseCard:
		_, isReverseCard := lastPlayedCard.(card.ReverseCard)
		return isReverseCard
	case card.SkipCard:
		_, isSkipCard := lastPlayedCard.(card.SkipCard)
		return isSkipCard
	case card.NumberCard:
		lastPlayedCard, isNumberCard := lastPlayedCard.(card.NumberCard)
		return isNumberCard && lastPlayedCard.Number() == candidateCard.Number()
	default:
		return false
	}
}

// wildDrawFourWasLegal reports whether a wild draw four was allowed: the
// player must have held no card matching the color in play beneath it.
// Wild cards in hand never make the play illegal.
func wildDrawFourWasLegal(hand []card.Card, previousCard card.Card) bool {
	if previousCard == nil || previousCard.Color() == nil {
		return true
	}
	for _, heldCard := range hand {
		if heldCard.Color() == previousCard.Color() {
			return false
		}
	}
	return true
}
