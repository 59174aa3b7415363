package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordblocks/internal/content"
	"github.com/vovakirdan/wordblocks/internal/core"
	"github.com/vovakirdan/wordblocks/internal/registry"
	"github.com/vovakirdan/wordblocks/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	topics         []string
	topicCursor    int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. topic preselects a vocabulary
// topic; empty means the default topic.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, topic string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil {
				item.HighScore = high
			}
		}
		items = append(items, item)
	}

	want := strings.ToLower(topic)
	if want == "" {
		want = content.DefaultTopic
	}
	topics := content.Topics()
	topicCursor := 0
	for i, t := range topics {
		if t == want {
			topicCursor = i
		}
	}

	return MenuModel{
		items:       items,
		topics:      topics,
		topicCursor: topicCursor,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		store:       store,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if len(m.topics) > 0 {
			m.topicCursor = (m.topicCursor + len(m.topics) - 1) % len(m.topics)
		}

	case MenuActionRight:
		if len(m.topics) > 0 {
			m.topicCursor = (m.topicCursor + 1) % len(m.topics)
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("W O R D   B L O C K S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		line := item.Title
		if item.HighScore > 0 {
			line = fmt.Sprintf("%-22s best %d", item.Title, item.HighScore)
		}
		if i == m.cursor {
			cursor = "> "
			b.WriteString(centerText(activeStyle.Render(cursor+line), m.width))
		} else {
			b.WriteString(centerText(cursor+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Topic: < %s >", m.Topic()), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Topic  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Topic returns the currently chosen vocabulary topic.
func (m MenuModel) Topic() string {
	if len(m.topics) == 0 {
		return content.DefaultTopic
	}
	return m.topics[m.topicCursor]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its ANSI sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Topic           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, topic string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, topic)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Topic:  m.Topic(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
