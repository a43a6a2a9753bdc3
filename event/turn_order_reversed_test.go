package event_test

import (
	"testing"

	"github.com/ratel-online/uno/event"
	"github.com/stretchr/testify/require"
)

func TestTurnOrderReversed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.TurnOrderReversed.AddListener(listenerOne)
	event.TurnOrderReversed.AddListener(listenerTwo)

	payloads := []event.TurnOrderReversedPayload{
		{},
		{},
	}

	for _, payload := range payloads {
		event.TurnOrderReversed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
