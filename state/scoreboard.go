package state

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/ui"
)

type scoreboard struct{}

func (*scoreboard) Next(session *service.Session) (consts.StateID, error) {
	standings := service.Standings()
	lines := []string{
		fmt.Sprintf("Scoreboard after %d game(s):", session.GamesPlayed),
		fmt.Sprintf("%-4s%-20s%-10s%-10s", "#", "Player", "Score", "Wins"),
	}
	for i, player := range standings {
		lines = append(lines, fmt.Sprintf("%-4d%-20s%-10d%-10d", i+1, player.Name, player.Score, player.Wins))
	}
	ui.Printlns(lines)

	leader := standings[0]
	if leader.Score >= session.TargetScore {
		ui.Message.SeriesWon(leader.Name, leader.Score)
		return consts.StateDone, nil
	}
	ui.Printfln("First to %d points wins the series. Next game!", session.TargetScore)
	return consts.StatePlaying, nil
}
