package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match3-arena/internal/board"
)

// Theme contains the visual styles for watch mode.
type Theme struct {
	// Tiles maps a board color to its style; index 0 is the empty cell.
	Tiles [board.MaxColors + 1]lipgloss.Style

	// TileRune is the glyph used for every tile.
	TileRune rune
	// EmptyRune is the glyph used for empty cells.
	EmptyRune rune

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDControls  lipgloss.Style
	DoneOverlay  lipgloss.Style
	ErrorOverlay lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	t := Theme{
		TileRune:  '●',
		EmptyRune: '·',

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		DoneOverlay:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ErrorOverlay: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}

	t.Tiles[board.Empty] = lipgloss.NewStyle().Foreground(lipgloss.Color("238")) // Dark gray
	t.Tiles[board.Red] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	t.Tiles[board.Green] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	t.Tiles[board.Blue] = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	t.Tiles[board.Yellow] = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	t.Tiles[board.Orange] = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	t.Tiles[board.Purple] = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))

	return t
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	t.Tiles[board.Red] = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	t.Tiles[board.Green] = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	t.Tiles[board.Blue] = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	t.Tiles[board.Yellow] = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	t.Tiles[board.Orange] = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))
	t.Tiles[board.Purple] = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	return t
}
