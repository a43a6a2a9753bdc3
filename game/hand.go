package game

import (
	"sort"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

// AddCards puts cards into the hand and keeps it sorted by color and rank.
func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
	sort.SliceStable(h.cards, func(i, j int) bool {
		return sortOrder(h.cards[i]) < sortOrder(h.cards[j])
	})
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

func (h *Hand) RemoveCard(card card.Card) {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(card) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return
		}
	}
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func sortOrder(c card.Card) int {
	colorRank := len(color.All)
	for index, cardColor := range color.All {
		if c.Color() == cardColor {
			colorRank = index
			break
		}
	}
	return colorRank*100 + typeOrder(c)
}

func typeOrder(c card.Card) int {
	switch c := c.(type) {
	case card.NumberCard:
		return c.Number()
	case card.SkipCard:
		return 10
	case card.ReverseCard:
		return 11
	case card.DrawTwoCard:
		return 12
	case card.WildCard:
		return 13
	case card.WildDrawFourCard:
		return 14
	default:
		return 15
	}
}
