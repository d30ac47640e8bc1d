package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match3-arena/internal/game"
	"github.com/vovakirdan/match3-arena/internal/policy"
)

// WatchConfig describes the single game shown in watch mode.
type WatchConfig struct {
	Rows     int
	Cols     int
	Colors   int
	Target   int
	Policy   string
	Seed     int64 // 0 = time-based
	TickRate int   // Moves per second
}

// WatchModel is the Bubble Tea model that plays one game move by move.
type WatchModel struct {
	cfg   WatchConfig
	mgr   *game.Manager
	theme Theme

	paused   bool
	done     bool
	outcome  game.Outcome
	err      error
	width    int
	height   int
	quitting bool
}

// NewWatchModel creates a watch model and its self-contained game.
func NewWatchModel(cfg WatchConfig) (WatchModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	mgr, err := newManager(cfg)
	if err != nil {
		return WatchModel{}, err
	}
	return WatchModel{
		cfg:   cfg,
		mgr:   mgr,
		theme: DefaultTheme(),
	}, nil
}

func newManager(cfg WatchConfig) (*game.Manager, error) {
	pol, err := policy.Create(cfg.Policy)
	if err != nil {
		return nil, err
	}
	return game.New(game.Config{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Colors: cfg.Colors,
		Target: cfg.Target,
		Seed:   cfg.Seed,
		Policy: pol,
	})
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and advances the game.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if !m.done && !m.paused {
			m.step()
		}
		return m, tickCmd(m.cfg.TickRate)
	}

	return m, nil
}

func (m *WatchModel) step() {
	out, done, err := m.mgr.Step()
	if err != nil {
		m.err = err
		m.done = true
		return
	}
	if done {
		m.outcome = out
		m.done = true
	}
}

func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "p", " ":
		m.paused = !m.paused
	case "n":
		// Single-step while paused
		if m.paused && !m.done {
			m.step()
		}
	case "r":
		// Restart with a fresh seed
		m.cfg.Seed = time.Now().UnixNano()
		mgr, err := newManager(m.cfg)
		if err != nil {
			m.err = err
			m.done = true
			return m, nil
		}
		m.mgr = mgr
		m.done = false
		m.err = nil
		m.outcome = game.Outcome{}
	}
	return m, nil
}

// View renders the HUD, grid and footer.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(m.theme.HUDTitle.Render("match3-arena"))
	sb.WriteString("  ")
	sb.WriteString(m.theme.HUDLabel.Render("policy "))
	sb.WriteString(m.theme.HUDValue.Render(m.cfg.Policy))
	sb.WriteString(m.theme.HUDLabel.Render("  seed "))
	sb.WriteString(m.theme.HUDValue.Render(fmt.Sprintf("%d", m.cfg.Seed)))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderGrid())
	sb.WriteString("\n")

	sb.WriteString(m.theme.HUDLabel.Render("score "))
	sb.WriteString(m.theme.HUDValue.Render(fmt.Sprintf("%d / %d", m.mgr.Score(), m.mgr.Target())))
	sb.WriteString(m.theme.HUDLabel.Render("   swaps "))
	sb.WriteString(m.theme.HUDValue.Render(fmt.Sprintf("%d", m.mgr.Swaps())))
	sb.WriteString(m.theme.HUDLabel.Render("   cascades "))
	sb.WriteString(m.theme.HUDValue.Render(fmt.Sprintf("%d", m.mgr.Cascades())))
	sb.WriteString("\n\n")

	switch {
	case m.err != nil:
		sb.WriteString(m.theme.ErrorOverlay.Render(fmt.Sprintf("error: %v", m.err)))
		sb.WriteString("\n")
	case m.done:
		sb.WriteString(m.theme.DoneOverlay.Render(fmt.Sprintf(
			"game over: %s (%d points, %d swaps)",
			m.outcome.Reason, m.outcome.Points, m.outcome.Swaps)))
		sb.WriteString("\n")
	case m.paused:
		sb.WriteString(m.theme.DoneOverlay.Render("paused"))
		sb.WriteString("\n")
	}

	sb.WriteString(m.theme.HUDControls.Render("space/p pause · n step · r restart · q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m WatchModel) renderGrid() string {
	var sb strings.Builder
	grid := m.mgr.Board().Snapshot()
	for _, row := range grid {
		for _, c := range row {
			style := m.theme.Tiles[0]
			r := m.theme.EmptyRune
			if int(c) >= 1 && int(c) < len(m.theme.Tiles) {
				style = m.theme.Tiles[c]
				r = m.theme.TileRune
			}
			sb.WriteString(style.Render(string(r)))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RunWatch runs watch mode in the current terminal until the user quits.
func RunWatch(cfg WatchConfig) error {
	model, err := NewWatchModel(cfg)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
