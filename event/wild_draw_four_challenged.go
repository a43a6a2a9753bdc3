package event

import "github.com/ratel-online/uno/card"

var WildDrawFourChallenged = &wildDrawFourChallengedEmitter{}

type WildDrawFourChallengedPayload struct {
	ChallengerName string
	OffenderName   string
	RevealedHand   []card.Card
	Legal          bool
}

type WildDrawFourChallengedListener interface {
	OnWildDrawFourChallenged(WildDrawFourChallengedPayload)
}

type wildDrawFourChallengedEmitter struct {
	listeners []WildDrawFourChallengedListener
}

func (e *wildDrawFourChallengedEmitter) AddListener(listener WildDrawFourChallengedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *wildDrawFourChallengedEmitter) Emit(payload WildDrawFourChallengedPayload) {
	for _, listener := range e.listeners {
		listener.OnWildDrawFourChallenged(payload)
	}
}
