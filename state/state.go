package state

import (
	"github.com/ratel-online/core/log"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StatePlaying, &playing{})
	register(consts.StateScoreboard, &scoreboard{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(session *service.Session) (consts.StateID, error)
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Run drives the session through its states until the series is done.
// Closing the input counts as quitting, not as a failure.
func Run(session *service.Session) error {
	stateId := Root()
	for stateId != consts.StateDone {
		state := states[stateId]
		nextId, err := state.Next(session)
		if err != nil {
			if e, ok := err.(consts.Error); ok && e.Exit {
				log.Infof("session %s closed: %s\n", session.ID, e.Msg)
				return nil
			}
			log.Error(err)
			return err
		}
		stateId = nextId
	}
	return nil
}
