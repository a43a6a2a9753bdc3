package game

type PlayerIterator struct {
	players map[int64]*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	var playerIds []int64
	playerMap := make(map[int64]*playerController, len(players))
	for _, player := range players {
		playerId := player.ID()
		playerIds = append(playerIds, playerId)
		playerMap[playerId] = newPlayerController(player)
	}
	return &PlayerIterator{
		players: playerMap,
		cycler:  NewCycler(playerIds),
	}
}

func (i *PlayerIterator) GetPlayerController(playerId int64) *playerController {
	return i.players[playerId]
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	for range i.players {
		function(i.Current())
		i.Next()
	}
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

// Skip advances past the next player and returns the controller of the
// player whose turn was skipped.
func (i *PlayerIterator) Skip() *playerController {
	return i.Next()
}

func (i *PlayerIterator) Size() int {
	return len(i.players)
}
