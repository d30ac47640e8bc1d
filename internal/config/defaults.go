package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// Default returns the baseline configuration: the classic 11x11 four-color
// board, 10000-point target, greedy policy.
func Default() Config {
	return Config{
		Tournament: TournamentConfig{
			Games:   100,
			Workers: 0,
		},
		Board: BoardConfig{
			Rows:   11,
			Cols:   11,
			Colors: 4,
		},
		Game: GameConfig{
			Target:           10000,
			MaxSwaps:         0,
			MaxCascadePasses: 0,
		},
		Policy: PolicyConfig{
			Name:          "greedy",
			RepeatPenalty: 0.8,
			CascadeWeight: 0.2,
			PotentialCap:  2.0,
		},
		Input: InputConfig{
			Predefined: false,
			Path:       "",
		},
		Output: OutputConfig{
			CSV: "",
		},
	}
}
