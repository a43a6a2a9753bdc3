package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

// Card values are immutable. A card declares its play effects as action
// values and its score as the points it leaves the winner when stuck in a
// losing hand.
type Card interface {
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	Points() int
	String() string
}

const (
	actionCardPoints = 20
	wildCardPoints   = 50
)
