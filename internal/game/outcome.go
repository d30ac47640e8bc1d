// Package game drives one simulated match-3 game: it repeatedly asks the
// board for candidate moves, ranks them with a policy, commits the best one,
// resolves cascades and decides when the game is over.
package game

// StoppingReason says why a game ended.
type StoppingReason string

const (
	// ReachedTarget means the running score met or exceeded the target.
	ReachedTarget StoppingReason = "REACHED_TARGET"
	// NoMoves means no legal swap remained on the board.
	NoMoves StoppingReason = "NO_MOVES"
)

// MilestoneAbsent marks an Outcome whose score never crossed the target.
const MilestoneAbsent = -1

// Outcome is the terminal record of one game.
type Outcome struct {
	GameID        int
	Points        int
	Swaps         int
	Cascades      int
	ReachedTarget bool
	Reason        StoppingReason
	// SwapsToTarget is the swap count at the first target crossing, never
	// overwritten afterwards, or MilestoneAbsent.
	SwapsToTarget int
}
