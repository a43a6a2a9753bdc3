package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// ColoredCard wraps a played wild card together with the color picked for
// it, so the discard top always carries a color.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Card() Card {
	return c.card
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

func (c ColoredCard) Points() int {
	return c.card.Points()
}

func (c ColoredCard) String() string {
	return c.color.Paint(c.card.String())
}
