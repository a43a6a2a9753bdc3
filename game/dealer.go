package game

import (
	"github.com/ratel-online/uno/card"
)

// Dealer owns the draw pile and the discard pile; every card that moves
// between them moves through it.
type Dealer struct {
	deck *Deck
	pile *Pile
}

func NewDealer() *Dealer {
	return &Dealer{
		deck: NewDeck(),
		pile: NewPile(),
	}
}

// Draw hands out up to amount cards from the top of the deck. When the deck
// runs dry mid-draw, the buried discards are reshuffled into it and drawing
// continues. Once the deck is empty and only the top discard remains, the
// draw stops where it is: no cards move, no reshuffle happens, and the
// result holds whatever was drawn before that point. A draw attempted while
// the piles are already down to a lone discard returns nothing at all.
func (d *Dealer) Draw(amount int) []card.Card {
	drawn := make([]card.Card, 0, amount)
	for len(drawn) < amount {
		drawn = append(drawn, d.deck.Draw(amount-len(drawn))...)
		if len(drawn) == amount {
			break
		}
		buried := d.pile.TakeBuried()
		if len(buried) == 0 {
			break
		}
		d.deck.Refill(unwrapCards(buried))
	}
	return drawn
}

// unwrapCards sheds the picked-color wrapper from recycled wilds so they
// return to the deck as plain wild cards.
func unwrapCards(cards []card.Card) []card.Card {
	unwrapped := make([]card.Card, len(cards))
	for index, buriedCard := range cards {
		if coloredCard, ok := buriedCard.(card.ColoredCard); ok {
			unwrapped[index] = coloredCard.Card()
		} else {
			unwrapped[index] = buriedCard
		}
	}
	return unwrapped
}

func (d *Dealer) Discard(card card.Card) {
	d.pile.Add(card)
}

// Top returns the active discard, nil before the first card is flipped.
func (d *Dealer) Top() card.Card {
	return d.pile.Top()
}

func (d *Dealer) ReplaceTop(card card.Card) {
	d.pile.ReplaceTop(card)
}

// FlipFirst reveals the opening card. A wild draw four cannot open the
// game: it is shuffled back into the deck and another card is flipped.
func (d *Dealer) FlipFirst() card.Card {
	for {
		firstCard := d.deck.Draw(1)[0]
		if _, forbidden := firstCard.(card.WildDrawFourCard); !forbidden {
			d.pile.Add(firstCard)
			return firstCard
		}
		d.deck.Refill([]card.Card{firstCard})
	}
}

// Exhausted reports whether draws are currently suppressed: the deck is
// empty and the discard pile is down to its top card. The state clears as
// soon as another card hits the pile and draws resume.
func (d *Dealer) Exhausted() bool {
	return d.deck.Size() == 0 && d.pile.Size() == 1
}

func (d *Dealer) PlayedCards() []card.Card {
	return d.pile.Cards()
}

func (d *Dealer) DeckSize() int {
	return d.deck.Size()
}

func (d *Dealer) PileSize() int {
	return d.pile.Size()
}
