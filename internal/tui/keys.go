package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/lox/rpsls/internal/game"
)

type keyMap struct {
	Moves    [game.NumMoves]key.Binding
	NewMatch key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Moves: [game.NumMoves]key.Binding{
			game.Rock:     key.NewBinding(key.WithKeys("r", "1"), key.WithHelp("r", "rock")),
			game.Paper:    key.NewBinding(key.WithKeys("p", "2"), key.WithHelp("p", "paper")),
			game.Scissors: key.NewBinding(key.WithKeys("s", "3"), key.WithHelp("s", "scissors")),
			game.Lizard:   key.NewBinding(key.WithKeys("l", "4"), key.WithHelp("l", "lizard")),
			game.Spock:    key.NewBinding(key.WithKeys("k", "5"), key.WithHelp("k", "spock")),
		},
		NewMatch: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new match")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.Moves[:], k.NewMatch, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Moves[:], {k.NewMatch, k.Quit}}
}
