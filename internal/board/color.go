// Package board implements the match-3 board engine: formation detection,
// removal, gravity, refill, swap validation and fast local move scoring.
// It contains pure game logic with no external dependencies so that games
// stay deterministic and testable.
package board

// Color identifies the tile occupying a cell. Empty is a sentinel for a
// vacated cell and never appears as a playable tile.
type Color int8

// Empty plus the playable palette. A board is configured with a color count
// K and only uses colors 1..K; the full palette covers the six-color variant.
const (
	Empty Color = iota
	Red
	Green
	Blue
	Yellow
	Orange
	Purple
)

// MaxColors is the largest supported palette size.
const MaxColors = 6

// String returns a short human-readable name, mostly for test failures.
func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Purple:
		return "purple"
	default:
		return "invalid"
	}
}
