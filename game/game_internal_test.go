package game

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/event"
	"github.com/stretchr/testify/require"
)

type stubPlayer struct {
	id         int64
	name       string
	challenges bool
}

func (p stubPlayer) ID() int64    { return p.id }
func (p stubPlayer) Name() string { return p.name }

func (p stubPlayer) PickColor(gameState State) (color.Color, error) {
	return color.Red, nil
}

func (p stubPlayer) Play(playableCards []card.Card, gameState State) (card.Card, error) {
	return nil, nil
}

func (p stubPlayer) PlayDrawnCard(drawnCard card.Card, gameState State) (bool, error) {
	return false, nil
}

func (p stubPlayer) Challenge(gameState State) (bool, error) {
	return p.challenges, nil
}

func (p stubPlayer) NotifyCardsDrawn(drawnCards []card.Card) {}

func (p stubPlayer) NotifyNoMatchingCardsInHand(lastPlayedCard card.Card, hand []card.Card) {}

// newChallengeGame seats an offender and a victim so that the victim is the
// current player, the position resolveChallenge expects.
func newChallengeGame(victimChallenges bool) (*Game, *playerController, *playerController) {
	g := New([]Player{
		stubPlayer{id: 1, name: "Offender"},
		stubPlayer{id: 2, name: "Victim", challenges: victimChallenges},
	})
	return g, g.players.GetPlayerController(1), g.players.GetPlayerController(2)
}

func TestResolveChallenge(t *testing.T) {
	t.Run("unchallenged_penalty_goes_to_the_victim", func(t *testing.T) {
		g, offender, victim := newChallengeGame(false)

		err := g.resolveChallenge(offender, 4, card.NewNumberCard(color.Red, 5))
		require.NoError(t, err)
		require.Len(t, victim.Hand(), 4)
		require.Empty(t, offender.Hand())
		require.Equal(t, 104, g.dealer.DeckSize())
	})

	t.Run("successful_challenge_bounces_the_penalty_back", func(t *testing.T) {
		g, offender, victim := newChallengeGame(true)
		offender.AddCards([]card.Card{card.NewNumberCard(color.Red, 9)})
		listener := event.NewDummyListener()
		event.WildDrawFourChallenged.AddListener(listener)

		err := g.resolveChallenge(offender, 4, card.NewNumberCard(color.Red, 5))
		require.NoError(t, err)
		require.Len(t, offender.Hand(), 5)
		require.Empty(t, victim.Hand())

		payloads := listener.ReceivedPayloads()
		require.Len(t, payloads, 1)
		payload := payloads[0].(event.WildDrawFourChallengedPayload)
		require.Equal(t, "Victim", payload.ChallengerName)
		require.Equal(t, "Offender", payload.OffenderName)
		require.False(t, payload.Legal)
		require.Equal(t, []card.Card{card.NewNumberCard(color.Red, 9)}, payload.RevealedHand)
	})

	t.Run("failed_challenge_costs_two_extra_cards", func(t *testing.T) {
		g, offender, victim := newChallengeGame(true)
		offender.AddCards([]card.Card{card.NewNumberCard(color.Blue, 3), card.NewWildCard()})
		listener := event.NewDummyListener()
		event.WildDrawFourChallenged.AddListener(listener)

		err := g.resolveChallenge(offender, 4, card.NewNumberCard(color.Red, 5))
		require.NoError(t, err)
		require.Len(t, victim.Hand(), 6)
		require.Len(t, offender.Hand(), 2)

		payloads := listener.ReceivedPayloads()
		require.Len(t, payloads, 1)
		require.True(t, payloads[0].(event.WildDrawFourChallengedPayload).Legal)
	})
}

func TestWildDrawFourFlow(t *testing.T) {
	g := New([]Player{
		stubPlayer{id: 1, name: "Ann"},
		stubPlayer{id: 2, name: "Ben"},
	})
	// Ben, the current player, puts the wild draw four on top of a green seven.
	previousCard := card.NewNumberCard(color.Green, 7)
	playedCard := card.NewWildDrawFourCard()
	g.dealer.Discard(previousCard)
	g.dealer.Discard(playedCard)

	err := g.performCardActions(playedCard, previousCard)
	require.NoError(t, err)

	// Ben picked red, Ann declined the challenge and drew four.
	top, ok := g.dealer.Top().(card.ColoredCard)
	require.True(t, ok)
	require.Equal(t, color.Red, top.Color())
	require.Len(t, g.players.GetPlayerController(1).Hand(), 4)
	require.Equal(t, "Ann", g.players.Current().Name())
}

func TestReverseActsAsSkipForTwoPlayers(t *testing.T) {
	g := New([]Player{
		stubPlayer{id: 1, name: "Ann"},
		stubPlayer{id: 2, name: "Ben"},
	})
	listener := event.NewDummyListener()
	event.TurnSkipped.AddListener(listener)

	// Ben, the current player, plays the reverse.
	err := g.performCardActions(card.NewReverseCard(color.Red), nil)
	require.NoError(t, err)

	// Ann loses her turn and the next advance comes back to Ben.
	require.Equal(t, "Ann", g.players.Current().Name())
	require.Equal(t, "Ben", g.players.Next().Name())

	payloads := listener.ReceivedPayloads()
	require.Len(t, payloads, 1)
	require.Equal(t, event.TurnSkippedPayload{PlayerName: "Ann"}, payloads[0])
}

func TestSkipAdvancesPastThePlayer(t *testing.T) {
	g := New([]Player{
		stubPlayer{id: 1, name: "Ann"},
		stubPlayer{id: 2, name: "Ben"},
		stubPlayer{id: 3, name: "Cat"},
	})

	// Cat, the current player, plays the skip against Ann.
	err := g.performCardActions(card.NewSkipCard(color.Red), nil)
	require.NoError(t, err)
	require.Equal(t, "Ann", g.players.Current().Name())
	require.Equal(t, "Ben", g.players.Next().Name())
}

func TestDrawTwoPenalizesTheNextPlayer(t *testing.T) {
	g := New([]Player{
		stubPlayer{id: 1, name: "Ann"},
		stubPlayer{id: 2, name: "Ben"},
	})

	// Ben, the current player, plays the draw two against Ann.
	err := g.performCardActions(card.NewDrawTwoCard(color.Red), nil)
	require.NoError(t, err)
	require.Len(t, g.players.GetPlayerController(1).Hand(), 2)
	require.Empty(t, g.players.GetPlayerController(2).Hand())
	require.Equal(t, 106, g.dealer.DeckSize())
}
