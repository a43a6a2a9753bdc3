package state

import (
	"fmt"

	"github.com/ratel-online/core/log"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/ui"
)

type welcome struct{}

func (*welcome) Next(session *service.Session) (consts.StateID, error) {
	ui.Message.Welcome()
	numberOfPlayers, err := playerCount(session)
	if err != nil {
		return 0, err
	}
	for i := 0; i < numberOfPlayers; i++ {
		name, err := playerName(session, i)
		if err != nil {
			return 0, err
		}
		session.Seat(service.CreatePlayer(name))
	}
	log.Infof("session %s seated %d players\n", session.ID, len(session.Players))
	return consts.StatePlaying, nil
}

func playerCount(session *service.Session) (int, error) {
	if session.Config.Players != 0 {
		return session.Config.Players, nil
	}
	named := len(session.Config.PlayerNames)
	if named >= consts.MinPlayers && named <= consts.MaxPlayers {
		return named, nil
	}
	return ui.PromptIntegerInRange(
		consts.MinPlayers,
		consts.MaxPlayers,
		fmt.Sprintf("How many players? (%d-%d)", consts.MinPlayers, consts.MaxPlayers),
	)
}

func playerName(session *service.Session, seat int) (string, error) {
	if seat < len(session.Config.PlayerNames) {
		return session.Config.PlayerNames[seat], nil
	}
	return ui.PromptString(fmt.Sprintf("Enter a name for player %d:", seat+1))
}
