package player

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/ui"
)

type humanPlayer struct {
	id   int64
	name string
}

func NewHumanPlayer(id int64, name string) game.Player {
	return humanPlayer{id: id, name: name}
}

func (p humanPlayer) ID() int64 {
	return p.id
}

func (p humanPlayer) Name() string {
	return p.name
}

func (p humanPlayer) PickColor(gameState game.State) (color.Color, error) {
	ui.Printfln("%s, pick a color for the wild card!", p.name)
	return ui.PromptColor()
}

func (p humanPlayer) Play(playableCards []card.Card, gameState game.State) (card.Card, error) {
	ui.Message.HumanPlayerTurnStarted(p.name)
	ui.Println(gameState)
	return ui.PromptCardSelection(playableCards)
}

func (p humanPlayer) PlayDrawnCard(drawnCard card.Card, gameState game.State) (bool, error) {
	return ui.PromptConfirm(fmt.Sprintf("%s, play %s right away?", p.name, drawnCard))
}

func (p humanPlayer) Challenge(gameState game.State) (bool, error) {
	return ui.PromptConfirm(fmt.Sprintf("%s, challenge the wild draw four?", p.name))
}

func (p humanPlayer) NotifyCardsDrawn(cards []card.Card) {
	if len(cards) == 0 {
		ui.Message.HumanPlayerCouldNotDraw(p.name)
		return
	}
	ui.Message.HumanPlayerDrewCards(cards)
}

func (p humanPlayer) NotifyNoMatchingCardsInHand(lastPlayedCard card.Card, hand []card.Card) {
	ui.Message.HumanPlayerHasNoMatchingCardsInHand(p.name, lastPlayedCard, hand)
}
