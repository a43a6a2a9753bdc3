package event_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/event"
	"github.com/stretchr/testify/require"
)

func TestWildDrawFourChallenged(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.WildDrawFourChallenged.AddListener(listenerOne)
	event.WildDrawFourChallenged.AddListener(listenerTwo)

	payloads := []event.WildDrawFourChallengedPayload{
		{
			ChallengerName: "Someone",
			OffenderName:   "Somebody",
			RevealedHand:   []card.Card{card.NewNumberCard(color.Red, 5)},
			Legal:          false,
		},
		{
			ChallengerName: "Somebody",
			OffenderName:   "Someone",
			RevealedHand:   []card.Card{card.NewWildCard()},
			Legal:          true,
		},
	}

	for _, payload := range payloads {
		event.WildDrawFourChallenged.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
