package game

import (
	"sync"

	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

type Deck struct {
	sync.Mutex
	cards []card.Card
}

// NewDeck builds a shuffled standard 108-card deck: per color one zero, two
// each of 1-9, two skips, two reverses, two draw twos, plus four wilds and
// four wild draw fours.
func NewDeck() *Deck {
	cards := make([]card.Card, 0, 108)
	cards = append(cards, createWildCards()...)
	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)
	shuffleCards(cards)
	return &Deck{cards: cards}
}

// Draw removes and returns the top amount cards. It returns fewer when the
// deck does not hold that many; the deck never refills itself.
func (d *Deck) Draw(amount int) []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := d.cards[0:amount]
	d.cards = d.cards[amount:]
	return cards
}

// Refill puts cards back into the deck and reshuffles it.
func (d *Deck) Refill(cards []card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, cards...)
	shuffleCards(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createWildCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(cards []card.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
