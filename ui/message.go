package ui

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) {
	Printfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerCouldNotDraw(playerName string) {
	Printfln("%s, there are no cards left to draw!", playerName)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) {
	Printfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card, hand []card.Card) {
	Printfln("%s, none of your cards match %s!", playerName, lastPlayedCard)
	Printfln("Your hand is %s", hand)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	Printfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerPassed(playerName string) {
	Printfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) {
	Printfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) {
	Printfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerScored(playerName string, points int) {
	Printfln("%s scores %d points!", playerName, points)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) {
	Printfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) SeriesWon(playerName string, score int) {
	Printfln("%s wins the series with %d points!", playerName, score)
}

func (m MessageWriter) TurnOrderReversed() {
	Println("Turn order has been reversed!")
}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WildDrawFourChallenged(challengerName string, offenderName string, revealedHand []card.Card, legal bool) {
	Printfln("%s challenges %s's wild draw four!", challengerName, offenderName)
	Printfln("%s's hand was %s", offenderName, revealedHand)
	if legal {
		Printfln("The wild draw four was legal, %s draws the penalty with two extra cards!", challengerName)
	} else {
		Printfln("The wild draw four was illegal, %s takes the penalty instead!", offenderName)
	}
}

func (m MessageWriter) WinnerFound(playerName string) {
	Printfln("%s wins!", playerName)
}
