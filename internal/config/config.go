// Package config provides YAML-based configuration loading and variant
// presets for the match-3 tournament simulator.
package config

// Config is the full configuration surface of a tournament run.
type Config struct {
	Tournament TournamentConfig `yaml:"tournament"`
	Board      BoardConfig      `yaml:"board"`
	Game       GameConfig       `yaml:"game"`
	Policy     PolicyConfig     `yaml:"policy"`
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
}

// TournamentConfig controls tournament size and parallelism.
type TournamentConfig struct {
	Games   int `yaml:"games"`
	Workers int `yaml:"workers"` // 0 = number of CPUs
}

// BoardConfig defines the grid dimensions and palette.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Colors int `yaml:"colors"`
}

// GameConfig defines per-game goals and liveness caps.
type GameConfig struct {
	Target           int `yaml:"target"`
	MaxSwaps         int `yaml:"max_swaps"`          // 0 = package default
	MaxCascadePasses int `yaml:"max_cascade_passes"` // 0 = package default
}

// PolicyConfig selects the move-ranking policy and its heuristic constants.
// The constants are tunable knobs, not load-bearing invariants.
type PolicyConfig struct {
	Name          string  `yaml:"name"`
	RepeatPenalty float64 `yaml:"repeat_penalty"`
	CascadeWeight float64 `yaml:"cascade_weight"`
	PotentialCap  float64 `yaml:"potential_cap"`
}

// InputConfig controls the optional predefined-board source.
type InputConfig struct {
	Predefined bool   `yaml:"predefined"`
	Path       string `yaml:"path"`
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	CSV string `yaml:"csv"`
}
