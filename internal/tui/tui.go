// Package tui lets a human play a match against a bot in the terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/bot"
	"github.com/lox/rpsls/internal/env"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/randutil"
)

// Config configures an interactive match.
type Config struct {
	Rounds int
	Bot    string
	Seed   int64
	Logger *log.Logger
}

// Model is the Bubble Tea model for a human-vs-bot match. The human always
// sits as player_0 and moves first; the bot's reply is played immediately
// and only sees the human's move once the round has resolved.
type Model struct {
	engine   *game.Engine
	env      env.Env
	opponent bot.Agent
	botName  string
	logger   *log.Logger

	human  game.Party
	botObs game.Move

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	lines    []string

	width    int
	height   int
	err      error
	quitting bool
}

// New creates a model and starts the first match.
func New(config Config) (*Model, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("tui")

	seed := randutil.Seed(config.Seed)
	opponent, err := bot.New(config.Bot, randutil.New(randutil.Derive(seed, 1)), logger)
	if err != nil {
		return nil, err
	}

	engine := game.NewEngine(game.WithRounds(config.Rounds), game.WithLogger(logger))
	m := &Model{
		engine:   engine,
		env:      env.Wrap(engine, randutil.New(randutil.Derive(seed, 2)), logger),
		opponent: opponent,
		botName:  config.Bot,
		logger:   logger,
		human:    game.PlayerA,
		viewport: viewport.New(60, 10),
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
	if err := m.newMatch(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) newMatch() error {
	if _, err := m.env.Reset(); err != nil {
		return err
	}
	m.botObs = game.None
	m.lines = nil
	m.addLine(InfoStyle.Render(fmt.Sprintf("New match against %s: %d rounds. Pick a move.", m.botName, m.engine.Rounds())))
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-6, 3)
		m.help.Width = msg.Width
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NewMatch):
			if m.engine.Phase() == game.MatchDone {
				m.err = m.newMatch()
			}
			return m, nil
		}
		for _, mv := range game.Moves() {
			if key.Matches(msg, m.keys.Moves[mv]) {
				m.err = m.play(mv)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// play submits the human's move and then the bot's reply, resolving the round.
func (m *Model) play(move game.Move) error {
	if m.engine.Phase() == game.MatchDone {
		m.addLine(InfoStyle.Render("Match over. Press n for a new match or q to quit."))
		return nil
	}

	obs, err := m.env.Step(move)
	if err != nil {
		return err
	}
	m.botObs = obs

	reply := m.opponent.Act(m.botObs)
	if _, err := m.env.Step(reply); err != nil {
		return err
	}

	m.addLine(m.describeRound())
	if m.engine.Phase() == game.MatchDone {
		m.addLine(m.describeMatch())
	}
	return nil
}

func (m *Model) describeRound() string {
	you, them := m.engine.Pending(m.human), m.engine.Pending(m.human.Opponent())
	line := fmt.Sprintf("Round %d: you %s, %s %s", m.engine.Round(), you, m.botName, them)

	switch r := m.engine.Reward(m.human); {
	case r > 0:
		return LogStyle.Render(line+": ") + WinStyle.Render("you win")
	case r < 0:
		return LogStyle.Render(line+": ") + LossStyle.Render("you lose")
	default:
		return LogStyle.Render(line+": ") + TieStyle.Render("tie")
	}
}

func (m *Model) describeMatch() string {
	you, them := m.Score()
	switch {
	case you > them:
		return WinStyle.Render(fmt.Sprintf("You won the match %d to %d.", you, them))
	case you < them:
		return LossStyle.Render(fmt.Sprintf("%s won the match %d to %d.", m.botName, them, you))
	default:
		return TieStyle.Render(fmt.Sprintf("Match drawn at %d.", you))
	}
}

func (m *Model) addLine(line string) {
	m.lines = append(m.lines, line)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	you, them := m.Score()
	header := HeaderStyle.Render("Rock Paper Scissors Lizard Spock")
	score := ScoreStyle.Render(fmt.Sprintf("Round %d/%d   you %+d   %s %+d",
		m.engine.Round(), m.engine.Rounds(), you, m.botName, them))

	var state strings.Builder
	if err := m.env.Render(&state); err != nil {
		state.Reset()
		state.WriteString(err.Error())
	}

	parts := []string{header, score, m.viewport.View(), InfoStyle.Render(strings.TrimSpace(state.String()))}
	if m.err != nil {
		parts = append(parts, LossStyle.Render("error: "+m.err.Error()))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Score returns the cumulative rewards of the human and the bot.
func (m *Model) Score() (int, int) {
	return m.engine.Cumulative(m.human), m.engine.Cumulative(m.human.Opponent())
}

// Done reports whether the current match is over.
func (m *Model) Done() bool {
	return m.engine.Phase() == game.MatchDone
}

// Lines returns the round log.
func (m *Model) Lines() []string {
	return m.lines
}

// Err returns the last error raised while playing, if any.
func (m *Model) Err() error {
	return m.err
}

// Run starts the interactive program and blocks until the player quits.
func Run(config Config, opts ...tea.ProgramOption) error {
	m, err := New(config)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}
