package state

import (
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/ui"
)

type playing struct{}

func (*playing) Next(session *service.Session) (consts.StateID, error) {
	gameId := uuid.New()
	log.Infof("game %s started with %d players\n", gameId, len(session.Players))
	unoGame := game.New(player.CreatePlayers(session.Players))
	unoGame.DealStartingCards()
	if err := unoGame.PlayFirstCard(); err != nil {
		return 0, err
	}
	for {
		finished, err := unoGame.PlayTurn()
		if err != nil {
			return 0, err
		}
		if finished {
			break
		}
	}
	winner := unoGame.Winner()
	points := unoGame.Points(winner.ID())
	service.RecordWin(winner.ID(), points)
	session.GamesPlayed++
	ui.Message.WinnerFound(winner.Name())
	ui.Message.PlayerScored(winner.Name(), points)
	log.Infof("game %s won by %s with %d points\n", gameId, winner.Name(), points)
	return consts.StateScoreboard, nil
}
