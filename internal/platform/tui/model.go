package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordblocks/internal/core"
	"github.com/vovakirdan/wordblocks/internal/registry"
	"github.com/vovakirdan/wordblocks/internal/storage"
)

// GameModel is the Bubble Tea model for running one game. It is used for
// local play and embedded in SSH sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	words      []string // Words cleared in the current game
	standalone bool     // Quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	saved      bool // Whether the result has been saved for current game over
}

// NewGameModel creates a game model that reports back to a menu.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The renderer adapts to any size, so a resize never restarts the game.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	case core.ActionConfirm:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.words = nil
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.words = append(m.words, result.ClearedWords...)

	if m.gameState.GameOver && !m.saved {
		m.saveResult()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the final score and the words cleared during the game.
// Failures are logged and otherwise ignored.
func (m *GameModel) saveResult() {
	if m.store == nil {
		return
	}
	id := m.game.ID()
	if m.gameState.Score > 0 {
		_, err := m.store.SaveResult(storage.GameResult{
			GameID: id,
			Score:  m.gameState.Score,
			Level:  m.gameState.Level,
			Lines:  m.gameState.Lines,
		})
		if err != nil {
			logger.Warn("could not save score", "game", id, "err", err)
		}
	}
	if err := m.store.RecordClearedWords(id, m.words); err != nil {
		logger.Warn("could not record cleared words", "game", id, "err", err)
	}
	logger.Debug("game saved", "game", id, "score", m.gameState.Score, "words", len(m.words))
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
// It returns true when the player left with Back rather than Quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
