package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

func PromptString(message string) (string, error) {
	for {
		Println(message)
		var input string
		_, err := fmt.Scanln(&input)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return "", consts.ErrorsInputClosed
		}
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func promptInteger(message string) (int, error) {
	for {
		Println(message)
		var input int
		_, err := fmt.Scanln(&input)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, consts.ErrorsInputClosed
		}
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return input, nil
	}
}

func promptLowercaseString(message string) (string, error) {
	input, err := PromptString(message)
	if err != nil {
		return "", err
	}
	return strings.ToLower(input), nil
}

// PromptCardSelection lists the playable cards as a numbered menu and
// returns the chosen one. Entering 0 means the player wants to draw
// instead, in which case the returned card is nil.
func PromptCardSelection(cards []card.Card) (card.Card, error) {
	cardSelectionLines := []string{"Select a card to play, or 0 to draw:"}
	for i, card := range cards {
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%d: %s", i+1, card))
	}
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	selection, err := PromptIntegerInRange(0, len(cards), cardSelectionMessage)
	if err != nil {
		return nil, err
	}
	if selection == 0 {
		return nil, nil
	}
	return cards[selection-1], nil
}

func PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName, err := promptLowercaseString(colorMessage)
		if err != nil {
			return nil, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}

func PromptConfirm(message string) (bool, error) {
	for {
		input, err := promptLowercaseString(message + " ('y' or 'n')")
		if err != nil {
			return false, err
		}
		switch input {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		Printfln("Unknown choice '%s'", input)
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := promptInteger(message)
		if err != nil {
			return 0, err
		}
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input, nil
	}
}
