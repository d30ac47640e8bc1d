package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3-arena/internal/boards"
	"github.com/vovakirdan/match3-arena/internal/config"
	"github.com/vovakirdan/match3-arena/internal/policy"
	"github.com/vovakirdan/match3-arena/internal/report"
	"github.com/vovakirdan/match3-arena/internal/storage"
	"github.com/vovakirdan/match3-arena/internal/tournament"
)

var (
	flagGames   int
	flagRows    int
	flagCols    int
	flagColors  int
	flagTarget  int
	flagPolicy  string
	flagVariant string
	flagWorkers int
	flagBoards  string
	flagCSV     string
	flagProfile string
	flagNoSave  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a tournament",
	Long: `Run a tournament of independent games and print aggregate statistics.

Each game plays itself with the selected policy until it reaches the target
score or runs out of moves. Games run in parallel on a worker pool; results
are deterministic for a fixed --seed regardless of worker count.

Variant presets:
  baseline - 4 colors, greedy policy
  enhanced - 6 colors, smart policy

Examples:
  match3 run
  match3 run --games 500 --policy smart --seed 42
  match3 run --variant enhanced --csv results.csv
  match3 run --boards ./boards.txt --games 10
  match3 run --profile cpu`,
	Run: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games to play")
	runCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows")
	runCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns")
	runCmd.Flags().IntVar(&flagColors, "colors", 0, "Palette size (1-6)")
	runCmd.Flags().IntVar(&flagTarget, "target", 0, "Target score per game")
	runCmd.Flags().StringVar(&flagPolicy, "policy", "", "Move-ranking policy (see 'match3 policies')")
	runCmd.Flags().StringVar(&flagVariant, "variant", "", "Preset: baseline or enhanced")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Worker pool size (0 = number of CPUs)")
	runCmd.Flags().StringVar(&flagBoards, "boards", "", "Path to predefined boards file")
	runCmd.Flags().StringVar(&flagCSV, "csv", "", "Write per-game results to this CSV file")
	runCmd.Flags().StringVar(&flagProfile, "profile", "", "Enable profiling: cpu or mem")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Skip saving results to the database")
}

func runRun(cmd *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		logger.Fatal("unknown profile mode", "mode", flagProfile)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	if flagVariant != "" {
		config.ApplyVariant(&cfg, config.Variant(flagVariant))
	}

	// Explicit flags win over the config file and the variant preset.
	flags := cmd.Flags()
	if flags.Changed("games") {
		cfg.Tournament.Games = flagGames
	}
	if flags.Changed("workers") {
		cfg.Tournament.Workers = flagWorkers
	}
	if flags.Changed("rows") {
		cfg.Board.Rows = flagRows
	}
	if flags.Changed("cols") {
		cfg.Board.Cols = flagCols
	}
	if flags.Changed("colors") {
		cfg.Board.Colors = flagColors
	}
	if flags.Changed("target") {
		cfg.Game.Target = flagTarget
	}
	if flags.Changed("policy") {
		cfg.Policy.Name = flagPolicy
	}
	if flags.Changed("boards") {
		cfg.Input.Predefined = true
		cfg.Input.Path = flagBoards
	}
	if flags.Changed("csv") {
		cfg.Output.CSV = flagCSV
	}

	var grids []boards.Grid
	if cfg.Input.Predefined && cfg.Input.Path != "" {
		grids, err = boards.Load(cfg.Input.Path, cfg.Board.Rows, cfg.Board.Cols, cfg.Board.Colors, logger)
		if err != nil {
			logger.Fatal("cannot load boards", "path", cfg.Input.Path, "error", err)
		}
		if len(grids) < cfg.Tournament.Games {
			logger.Info("fewer boards than games, remainder plays random boards",
				"boards", len(grids), "games", cfg.Tournament.Games)
		}
	}

	tournamentCfg := tournament.Config{
		Games:            cfg.Tournament.Games,
		Rows:             cfg.Board.Rows,
		Cols:             cfg.Board.Cols,
		Colors:           cfg.Board.Colors,
		Target:           cfg.Game.Target,
		Policy:           cfg.Policy.Name,
		Seed:             flagSeed,
		Workers:          cfg.Tournament.Workers,
		Boards:           grids,
		MaxCascadePasses: cfg.Game.MaxCascadePasses,
		MaxSwaps:         cfg.Game.MaxSwaps,
	}
	if cfg.Policy.Name == "smart" {
		tournamentCfg.NewPolicy = smartFactory(cfg.Policy)
	}

	logger.Info("starting tournament",
		"games", tournamentCfg.Games,
		"board", fmt.Sprintf("%dx%d", tournamentCfg.Rows, tournamentCfg.Cols),
		"colors", tournamentCfg.Colors,
		"target", tournamentCfg.Target,
		"policy", tournamentCfg.Policy,
	)

	res, err := tournament.Run(tournamentCfg, logger)
	if err != nil {
		logger.Fatal("tournament failed", "error", err)
	}

	fmt.Println(report.RenderSummary(res, tournamentCfg.Target))

	if cfg.Output.CSV != "" {
		if err := report.WriteCSV(cfg.Output.CSV, res.Outcomes); err != nil {
			logger.Error("cannot write CSV", "path", cfg.Output.CSV, "error", err)
		} else {
			logger.Info("results written", "path", cfg.Output.CSV)
		}
	}

	if !flagNoSave && flagDBPath != "" {
		saveResults(logger, tournamentCfg, res)
	}
}

// smartFactory builds smart policies with the constants from the config,
// keeping the package defaults for fields left at zero.
func smartFactory(pc config.PolicyConfig) func() policy.Policy {
	return func() policy.Policy {
		p := policy.NewSmart()
		if pc.RepeatPenalty != 0 {
			p.RepeatPenalty = pc.RepeatPenalty
		}
		if pc.CascadeWeight != 0 {
			p.CascadeWeight = pc.CascadeWeight
		}
		if pc.PotentialCap != 0 {
			p.PotentialCap = pc.PotentialCap
		}
		return p
	}
}

// saveResults persists the tournament; failures are logged, never fatal.
func saveResults(logger *log.Logger, cfg tournament.Config, res *tournament.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open results database", "path", flagDBPath, "error", err)
		return
	}
	defer store.Close()

	meta := storage.TournamentMeta{
		Policy: cfg.Policy,
		Games:  cfg.Games,
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Colors: cfg.Colors,
		Target: cfg.Target,
		Seed:   res.Seed,
	}
	id, err := store.SaveTournament(meta, res.Outcomes)
	if err != nil {
		logger.Error("cannot save results", "error", err)
		return
	}
	logger.Info("results saved", "tournament_id", id)
}
