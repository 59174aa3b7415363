package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/wordblocks/internal/core"
	"github.com/vovakirdan/wordblocks/internal/registry"
	"github.com/vovakirdan/wordblocks/internal/storage"
)

// topicSetter is implemented by games that take a per-instance vocabulary
// topic.
type topicSetter interface {
	SetTopic(topic string)
}

type screenState int

const (
	stateMenu screenState = iota
	stateGame
	stateScores
)

// SessionModel manages the full arcade flow inside one Bubble Tea program:
// menu -> game or scoreboard -> menu. SSH sessions use it because they
// cannot start a new program per screen the way the local CLI does.
type SessionModel struct {
	id         string
	store      *storage.Store
	config     core.RuntimeConfig
	topic      string
	state      screenState
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, topic string) SessionModel {
	return SessionModel{
		id:     uuid.NewString(),
		store:  store,
		config: cfg,
		topic:  topic,
		menu:   NewMenuModel(store, cfg, topic),
	}
}

// ID identifies the session in logs.
func (m SessionModel) ID() string {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. The menu's own quit command
// is swallowed unless the user really quit.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.topic = m.menu.Topic()
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.state = stateScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			logger.Warn("cannot create game", "err", err)
			m.menu = NewMenuModel(m.store, m.config, m.topic)
			return m, nil
		}
		m.topic = m.menu.Topic()
		if ts, ok := game.(topicSetter); ok {
			ts.SetTopic(m.topic)
		}

		m.config = m.menu.Config()
		m.gameModel = NewGameModel(game, m.store, m.config)
		logger.Debug("game started", "session", m.id, "game", game.ID(), "topic", m.topic)
		m.state = stateGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	logger.Debug("back to menu", "session", m.id)
	m.state = stateMenu
	m.menu = NewMenuModel(m.store, m.config, m.topic)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.gameModel.View()
	case stateScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
