package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match3-arena/internal/game"
	"github.com/vovakirdan/match3-arena/internal/storage"
)

// Results browser layout constants
const (
	maxTournaments = 20 // Max tournament runs to load
	tableHeightPad = 8  // Rows reserved for header, help and margins
)

// ResultsKeyMap defines the key bindings for the results browser.
type ResultsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextRun key.Binding
	PrevRun key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextRun, k.PrevRun, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextRun, k.PrevRun, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextRun: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next run"),
		),
		PrevRun: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for browsing stored tournament runs.
type ResultsModel struct {
	store       *storage.Store
	tournaments []storage.TournamentMeta
	cursor      int // Currently selected tournament index
	records     []storage.OutcomeRecord
	table       table.Model
	help        help.Model
	keys        ResultsKeyMap
	width       int
	height      int
	quitting    bool
	loadErr     error
}

// NewResultsModel creates a results browser over the given store.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	keys := DefaultResultsKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ResultsModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()

	metas, err := store.RecentTournaments(maxTournaments)
	if err != nil {
		m.loadErr = err
		return m
	}
	m.tournaments = metas

	if len(m.tournaments) > 0 {
		m.loadOutcomes(m.tournaments[0].ID)
	}

	return m
}

// createTable creates the outcome table with appropriate columns.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 6},
		{Title: "Points", Width: 9},
		{Title: "Swaps", Width: 8},
		{Title: "Cascades", Width: 9},
		{Title: "Reason", Width: 16},
		{Title: "To target", Width: 10},
	}

	height := m.height - tableHeightPad
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// loadOutcomes loads outcomes for the given tournament ID.
func (m *ResultsModel) loadOutcomes(tournamentID int64) {
	records, err := m.store.Outcomes(tournamentID)
	if err != nil {
		m.records = nil
		m.loadErr = err
	} else {
		m.records = records
		m.loadErr = nil
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current outcomes.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.records))
	for i, rec := range m.records {
		o := rec.Outcome
		milestone := "-"
		if o.SwapsToTarget != game.MilestoneAbsent {
			milestone = fmt.Sprintf("%d", o.SwapsToTarget)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", o.GameID),
			fmt.Sprintf("%d", o.Points),
			fmt.Sprintf("%d", o.Swaps),
			fmt.Sprintf("%d", o.Cascades),
			string(o.Reason),
			milestone,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results browser.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextRun):
			if len(m.tournaments) > 0 {
				m.cursor = (m.cursor + 1) % len(m.tournaments)
				m.loadOutcomes(m.tournaments[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevRun):
			if len(m.tournaments) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.tournaments) - 1
				}
				m.loadOutcomes(m.tournaments[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results browser.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "TOURNAMENT RESULTS"
	if len(m.tournaments) > 0 {
		t := m.tournaments[m.cursor]
		title = fmt.Sprintf("TOURNAMENT #%d - %s, %d games, %dx%d, target %d",
			t.ID, t.Policy, t.Games, t.Rows, t.Cols, t.Target)
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(2, 4)
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.loadErr)))
	} else if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No results recorded yet.\nRun a tournament to fill the database."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunResults runs the results browser until the user quits.
func RunResults(store *storage.Store, width, height int) error {
	model := NewResultsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
