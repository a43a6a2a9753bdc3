package player

import (
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/service"
)

// CreatePlayers turns the seated roster into game players, keeping the
// seating order as the turn order.
func CreatePlayers(seats []*service.Player) []game.Player {
	players := make([]game.Player, 0, len(seats))
	for _, seat := range seats {
		players = append(players, NewHumanPlayer(seat.ID, seat.Name))
	}
	return players
}
