package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

type Game struct {
	players *PlayerIterator
	dealer  *Dealer
	winner  *playerController
}

func New(players []Player) *Game {
	return &Game{
		players: newPlayerIterator(players),
		dealer:  NewDealer(),
	}
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Dealer() *Dealer {
	return g.dealer
}

func (g *Game) Current() *playerController {
	return g.players.Current()
}

// Winner returns the player who emptied their hand, nil while the game is
// still running.
func (g *Game) Winner() *playerController {
	return g.winner
}

func (g *Game) GetPlayerCards(playerId int64) []card.Card {
	return g.players.GetPlayerController(playerId).Hand()
}

func (g *Game) DealStartingCards() {
	g.players.ForEach(func(player *playerController) {
		hand := g.dealer.Draw(consts.InitialHandSize)
		player.AddCards(hand)
	})
}

func (g *Game) PlayFirstCard() error {
	firstCard := g.dealer.FlipFirst()
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	if err := g.performCardActions(firstCard, nil); err != nil {
		return err
	}
	g.players.Next()
	return nil
}

// PlayTurn runs the current player's turn and reports whether the game is
// over: the player either puts a card on the pile or draws one, actions of
// the played card are carried out, and the turn moves on.
func (g *Game) PlayTurn() (bool, error) {
	player := g.players.Current()
	gameState := g.ExtractState(player)
	playedCard, err := player.Play(gameState, g.dealer)
	if err != nil {
		return false, err
	}
	if playedCard == nil {
		event.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerName: player.Name(),
		})
		g.players.Next()
		return false, nil
	}

	previousCard := g.dealer.Top()
	g.dealer.Discard(playedCard)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
	})
	if err := g.performCardActions(playedCard, previousCard); err != nil {
		return false, err
	}
	if player.NoCards() {
		g.winner = player
		return true, nil
	}
	g.players.Next()
	return false, nil
}

func (g *Game) performCardActions(playedCard card.Card, previousCard card.Card) error {
	player := g.players.Current()
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			cards := g.dealer.Draw(cardAction.Amount())
			g.players.Current().AddCards(cards)
		case action.ChallengeableDrawCardsAction:
			if err := g.resolveChallenge(player, cardAction.Amount(), previousCard); err != nil {
				return err
			}
		case action.ReverseTurnsAction:
			g.players.Reverse()
			event.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{})
			if g.players.Size() == 2 {
				skippedPlayer := g.players.Skip()
				event.TurnSkipped.Emit(event.TurnSkippedPayload{
					PlayerName: skippedPlayer.Name(),
				})
			}
		case action.SkipTurnAction:
			skippedPlayer := g.players.Skip()
			event.TurnSkipped.Emit(event.TurnSkippedPayload{
				PlayerName: skippedPlayer.Name(),
			})
		case action.PickColorAction:
			gameState := g.ExtractState(player)
			pickedColor, err := player.PickColor(gameState)
			if err != nil {
				return err
			}
			coloredCard := card.NewColoredCard(playedCard, pickedColor)
			g.dealer.ReplaceTop(coloredCard)
			event.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerName: player.Name(),
				Color:      pickedColor,
			})
		}
	}
	return nil
}

// resolveChallenge settles a wild draw four: the current player (already
// skipped onto) may challenge. An unchallenged or legal wild draw four
// penalizes the challenger, an illegal one falls back on the offender.
func (g *Game) resolveChallenge(offender *playerController, amount int, previousCard card.Card) error {
	challenger := g.players.Current()
	gameState := g.ExtractState(challenger)
	challenged, err := challenger.Challenge(gameState)
	if err != nil {
		return err
	}
	if !challenged {
		challenger.AddCards(g.dealer.Draw(amount))
		return nil
	}

	legal := wildDrawFourWasLegal(offender.Hand(), previousCard)
	event.WildDrawFourChallenged.Emit(event.WildDrawFourChallengedPayload{
		ChallengerName: challenger.Name(),
		OffenderName:   offender.Name(),
		RevealedHand:   offender.Hand(),
		Legal:          legal,
	})
	if legal {
		challenger.AddCards(g.dealer.Draw(amount + 2))
	} else {
		offender.AddCards(g.dealer.Draw(amount))
	}
	return nil
}

// Points tallies what the winner scores: the combined value of every other
// player's remaining hand.
func (g *Game) Points(winnerId int64) int {
	points := 0
	g.players.ForEach(func(player *playerController) {
		if player.ID() != winnerId {
			points += HandPoints(player.Hand())
		}
	})
	return points
}

func (g *Game) ExtractState(player *playerController) State {
	playerSequence := make([]string, 0)
	playerHandCounts := make(map[string]int)

	g.players.ForEach(func(player *playerController) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts[player.Name()] = len(player.Hand())
	})

	return State{
		LastPlayedCard:    g.dealer.Top(),
		PlayedCards:       g.dealer.PlayedCards(),
		CurrentPlayerHand: player.Hand(),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		DeckSize:          g.dealer.DeckSize(),
	}
}
