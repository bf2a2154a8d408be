package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, botName string, rounds int) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	m, err := New(Config{Rounds: rounds, Bot: botName, Seed: 1, Logger: logger})
	require.NoError(t, err)
	return m
}

func TestUnknownBot(t *testing.T) {
	_, err := New(Config{Rounds: 3, Bot: "dynamite", Seed: 1})
	assert.Error(t, err)
}

func TestPlayRound(t *testing.T) {
	m := newModel(t, "rock", 3)

	m.Update(keyPress("p"))
	require.NoError(t, m.Err())

	you, them := m.Score()
	assert.Equal(t, 1, you)
	assert.Equal(t, -1, them)

	lines := m.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Round 1: you PAPER, rock ROCK")
	assert.Contains(t, lines[1], "you win")
}

func TestDigitKeys(t *testing.T) {
	m := newModel(t, "rock", 3)
	m.Update(keyPress("3")) // scissors loses to rock

	you, _ := m.Score()
	assert.Equal(t, -1, you)
	assert.Contains(t, m.Lines()[1], "you lose")
}

func TestMatchEndsAndRestarts(t *testing.T) {
	m := newModel(t, "spock", 2)
	m.Update(keyPress("l"))
	m.Update(keyPress("l"))
	require.True(t, m.Done())

	last := m.Lines()[len(m.Lines())-1]
	assert.Contains(t, last, "You won the match 2 to -2.")

	m.Update(keyPress("r"))
	assert.Contains(t, m.Lines()[len(m.Lines())-1], "Match over")

	m.Update(keyPress("n"))
	assert.False(t, m.Done())
	you, them := m.Score()
	assert.Zero(t, you)
	assert.Zero(t, them)
	assert.Len(t, m.Lines(), 1)
}

func TestNewMatchIgnoredMidMatch(t *testing.T) {
	m := newModel(t, "rock", 5)
	m.Update(keyPress("r"))
	m.Update(keyPress("n"))
	assert.Len(t, m.Lines(), 2)
}

func TestQuit(t *testing.T) {
	m := newModel(t, "random", 3)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestView(t *testing.T) {
	m := newModel(t, "cycle", 4)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(keyPress("k"))

	view := m.View()
	assert.Contains(t, view, "Rock Paper Scissors Lizard Spock")
	assert.Contains(t, view, "Round 1/4")
	assert.True(t, strings.Contains(view, "Current state: player_0: SPOCK, player_1: ROCK"))
}
