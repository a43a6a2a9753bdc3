package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

type Player interface {
	ID() int64
	Name() string
	PickColor(gameState State) (color.Color, error)
	// Play selects one of playableCards. A nil card means the player draws
	// from the deck instead.
	Play(playableCards []card.Card, gameState State) (card.Card, error)
	// PlayDrawnCard reports whether the player wants to play the playable
	// card they just drew.
	PlayDrawnCard(drawnCard card.Card, gameState State) (bool, error)
	// Challenge reports whether the player challenges the wild draw four
	// just played against them.
	Challenge(gameState State) (bool, error)
	NotifyCardsDrawn(drawnCards []card.Card)
	NotifyNoMatchingCardsInHand(lastPlayedCard card.Card, hand []card.Card)
}
