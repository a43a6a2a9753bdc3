package service

import (
	"github.com/google/uuid"

	"github.com/ratel-online/uno/config"
)

// Session tracks one series of games played to a target score.
type Session struct {
	ID          uuid.UUID
	Config      config.Config
	Players     []*Player
	TargetScore int
	GamesPlayed int
}

func NewSession(cfg config.Config) *Session {
	return &Session{
		ID:          uuid.New(),
		Config:      cfg,
		TargetScore: cfg.TargetScore,
	}
}

// Seat adds a player to the series in turn order.
func (s *Session) Seat(player *Player) {
	s.Players = append(s.Players, player)
}
