package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/ui"
)

type playerController struct {
	player Player
	hand   *Hand
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
	c.player.NotifyCardsDrawn(cards)
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) ID() int64 {
	return c.player.ID()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

func (c *playerController) PickColor(gameState State) (color.Color, error) {
	return c.player.PickColor(gameState)
}

func (c *playerController) Challenge(gameState State) (bool, error) {
	return c.player.Challenge(gameState)
}

// Play returns the card the player puts on the pile this turn, or nil when
// the turn ends without one (the player drew and kept the card, or could
// not draw at all).
func (c *playerController) Play(gameState State, dealer *Dealer) (card.Card, error) {
	playableCards := c.hand.PlayableCards(gameState.LastPlayedCard)
	if len(playableCards) == 0 {
		c.player.NotifyNoMatchingCardsInHand(gameState.LastPlayedCard, c.hand.Cards())
		return c.tryTopDecking(gameState, dealer)
	}

	for {
		selectedCard, err := c.player.Play(playableCards, gameState)
		if err != nil {
			return nil, err
		}
		if selectedCard == nil {
			return c.tryTopDecking(gameState, dealer)
		}
		if !contains(playableCards, selectedCard) {
			ui.Printfln("Cheat detected! Card %s is not in %s's hand!", selectedCard, c.player.Name())
			continue
		}
		c.hand.RemoveCard(selectedCard)
		return selectedCard, nil
	}
}

func (c *playerController) tryTopDecking(gameState State, dealer *Dealer) (card.Card, error) {
	drawnCards := dealer.Draw(1)
	c.AddCards(drawnCards)
	if len(drawnCards) == 0 {
		return nil, nil
	}
	extraCard := drawnCards[0]
	if !Playable(extraCard, gameState.LastPlayedCard) {
		return nil, nil
	}
	play, err := c.player.PlayDrawnCard(extraCard, gameState)
	if err != nil || !play {
		return nil, err
	}
	c.hand.RemoveCard(extraCard)
	return extraCard, nil
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, card := range cards {
		if card.Equal(searchedCard) {
			return true
		}
	}
	return false
}
