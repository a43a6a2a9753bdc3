package ui

import "github.com/ratel-online/uno/event"

// Announcer relays game events to the terminal. Register it exactly once
// per process so every broadcast is printed a single time, no matter how
// many players share the screen.
type Announcer struct{}

func RegisterAnnouncer() {
	announcer := Announcer{}
	event.FirstCardPlayed.AddListener(announcer)
	event.CardPlayed.AddListener(announcer)
	event.ColorPicked.AddListener(announcer)
	event.PlayerPassed.AddListener(announcer)
	event.TurnSkipped.AddListener(announcer)
	event.TurnOrderReversed.AddListener(announcer)
	event.WildDrawFourChallenged.AddListener(announcer)
}

func (a Announcer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	Message.FirstCardPlayed(payload.Card)
}

func (a Announcer) OnCardPlayed(payload event.CardPlayedPayload) {
	Message.PlayerPlayedCard(payload.PlayerName, payload.Card)
}

func (a Announcer) OnColorPicked(payload event.ColorPickedPayload) {
	Message.PlayerPickedColor(payload.PlayerName, payload.Color)
}

func (a Announcer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	Message.PlayerPassed(payload.PlayerName)
}

func (a Announcer) OnTurnSkipped(payload event.TurnSkippedPayload) {
	Message.PlayerTurnSkipped(payload.PlayerName)
}

func (a Announcer) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	Message.TurnOrderReversed()
}

func (a Announcer) OnWildDrawFourChallenged(payload event.WildDrawFourChallengedPayload) {
	Message.WildDrawFourChallenged(payload.ChallengerName, payload.OffenderName, payload.RevealedHand, payload.Legal)
}
