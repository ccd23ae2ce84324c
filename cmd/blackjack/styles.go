package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack21/blackjack"
	"github.com/lox/blackjack21/internal/game"
)

// Static styles for content elements
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFAFAF")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	pushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func renderCard(c blackjack.Card) string {
	if c.IsRed() {
		return redCardStyle.Render(c.String())
	}
	return blackCardStyle.Render(c.String())
}

func renderCards(cards []blackjack.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

func renderResult(r game.Result) string {
	switch {
	case r.Won():
		return winStyle.Render(r.String())
	case r.Lost():
		return lossStyle.Render(r.String())
	default:
		return pushStyle.Render(r.String())
	}
}

// roundPrinter narrates round events to stdout.
type roundPrinter struct {
	dealerName string
}

func (p *roundPrinter) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		fmt.Println(headerStyle.Render(" New round "))
		for _, player := range e.Players {
			for _, hand := range player.Hands {
				fmt.Printf("  %-12s %s  (%d)\n", player.Name, renderCards(hand.Cards), hand.Total())
			}
		}
		fmt.Printf("  %-12s %s %s\n", p.dealerName, renderCard(e.Upcard), infoStyle.Render("??"))
	case game.PlayerActionEvent:
		line := fmt.Sprintf("  %-12s %s", e.Player.Name, e.Action)
		if e.Card != nil {
			line += ", draws " + renderCard(*e.Card)
		}
		fmt.Printf("%s  (%d)\n", line, e.Hand.Total())
	case game.DealerTurnEvent:
		line := fmt.Sprintf("  %-12s %s  (%d)", p.dealerName, renderCards(e.Cards), e.Total)
		if e.Bust {
			line += " " + lossStyle.Render("bust")
		}
		fmt.Println(line)
	case game.RoundEndEvent:
		for _, player := range e.Players {
			for _, hand := range player.Hands {
				fmt.Printf("  %-12s %s  (%d) %s\n",
					player.Name, renderCards(hand.Cards), hand.Total(), renderResult(hand.Result))
			}
		}
	}
}
