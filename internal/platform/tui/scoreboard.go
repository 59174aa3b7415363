package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordblocks/internal/registry"
	"github.com/vovakirdan/wordblocks/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show game list sidebar
	sidebarWidth       = 24  // Width of game list sidebar
	maxScores          = 100 // Max rows to load
)

// boardView selects what the scoreboard table shows.
type boardView int

const (
	viewScores boardView = iota
	viewWords
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ToggleView key.Binding
	Back       key.Binding
	Quit       key.Binding
	NextGame   key.Binding
	PrevGame   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.ToggleView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.ToggleView, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev game"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "scores/words"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
// It shows either the top scores or the most cleared words per game.
type ScoreboardModel struct {
	games       []registry.GameInfo
	gameCursor  int
	view        boardView
	store       *storage.Store
	scores      []storage.ScoreEntry
	words       []storage.WordStat
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show game list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.reload()
	return m
}

// columns returns the table columns for the current view, fitted to width.
func (m *ScoreboardModel) columns() []table.Column {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	if m.view == viewWords {
		cols := []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Word", Width: 16},
			{Title: "Cleared", Width: 8},
			{Title: "Last", Width: 14},
		}
		if tableWidth > 50 {
			cols[1].Width = min(tableWidth-30, 28)
		}
		return cols
	}

	cols := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Lines", Width: 6},
		{Title: "Date", Width: 14},
	}
	if tableWidth > 50 {
		cols[4].Width = min(tableWidth-30, 20)
	}
	return cols
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentGame returns the selected game ID, or "" when none are registered.
func (m *ScoreboardModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload fetches rows for the current game and view.
func (m *ScoreboardModel) reload() {
	m.scores, m.words = nil, nil
	gameID := m.currentGame()

	if m.store != nil && gameID != "" {
		var err error
		switch m.view {
		case viewScores:
			m.scores, err = m.store.TopScores(gameID, maxScores)
		case viewWords:
			m.words, err = m.store.TopWords(gameID, maxScores)
		}
		if err != nil {
			logger.Warn("scoreboard query failed", "game", gameID, "err", err)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rows.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewScores:
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%d", s.Level),
				fmt.Sprintf("%d", s.Lines),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	case viewWords:
		rows = make([]table.Row, len(m.words))
		for i, w := range m.words {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				w.Word,
				fmt.Sprintf("%d", w.Times),
				w.LastCleared.Format("Jan 02 15:04"),
			}
		}
	}

	// Columns must change before rows so the row width matches.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleView):
			if m.view == viewScores {
				m.view = viewWords
			} else {
				m.view = viewScores
			}
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	heading := "HIGH SCORES"
	if m.view == viewWords {
		heading = "MOST CLEARED WORDS"
	}
	if len(m.games) > 0 {
		heading = fmt.Sprintf("%s - %s", heading, m.games[m.gameCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(heading, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with sidebar for game selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + shorten(g.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the scoreboard with game tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.games) > 0 {
		tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		activeTabStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

		tabs := make([]string, len(m.games))
		for i, g := range m.games {
			name := shorten(g.Title, 12)
			if i == m.gameCursor {
				tabs[i] = activeTabStyle.Render(name)
			} else {
				tabs[i] = tabStyle.Render(" " + name + " ")
			}
		}

		tabLine := strings.Join(tabs, " ")
		if lipgloss.Width(tabLine) > m.width-4 {
			tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
		}
		b.WriteString(centerText(tabLine, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := (m.view == viewScores && len(m.scores) == 0) || (m.view == viewWords && len(m.words) == 0)
	if !empty {
		return m.table.View()
	}

	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	if m.view == viewWords {
		return emptyStyle.Render("No words cleared yet.\nComplete a row to learn one!")
	}
	return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
}

// shorten truncates s to n runes, marking the cut with a period.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
