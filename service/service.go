package service

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/awesome-cap/hashmap"
)

var playerIds int64 = 0
var players = hashmap.New()

// Player is a seat in the series roster. Score accumulates across games
// until somebody reaches the session target.
type Player struct {
	ID    int64
	Name  string
	Score int
	Wins  int
}

func (p Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}

func CreatePlayer(name string) *Player {
	player := &Player{
		ID:   atomic.AddInt64(&playerIds, 1),
		Name: name,
	}
	players.Set(player.ID, player)
	return player
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

// RecordWin credits a finished game to the winning player.
func RecordWin(playerId int64, points int) {
	player := GetPlayer(playerId)
	if player == nil {
		return
	}
	player.Score += points
	player.Wins++
}

// Standings returns every registered player, best score first. Ties keep
// seating order.
func Standings() []*Player {
	list := make([]*Player, 0)
	players.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Player))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}
		return list[i].ID < list[j].ID
	})
	return list
}
