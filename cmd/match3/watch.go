package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/match3-arena/internal/config"
	"github.com/vovakirdan/match3-arena/internal/platform/tui"
	"github.com/vovakirdan/match3-arena/internal/policy"
)

var (
	flagWatchPolicy  string
	flagWatchVariant string
	flagWatchRate    int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a single game play itself",
	Long: `Watch one game play itself move by move in the terminal.

Controls:
  Space/P    - Pause
  N          - Single step (while paused)
  R          - Restart with a new seed
  Q/Ctrl+C   - Quit

Examples:
  match3 watch
  match3 watch --policy smart --rate 10
  match3 watch --variant enhanced --seed 42`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchPolicy, "policy", "", "Move-ranking policy")
	watchCmd.Flags().StringVar(&flagWatchVariant, "variant", "", "Preset: baseline or enhanced")
	watchCmd.Flags().IntVar(&flagWatchRate, "rate", 4, "Moves per second")
}

func runWatch(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagWatchVariant != "" {
		config.ApplyVariant(&cfg, config.Variant(flagWatchVariant))
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy.Name = flagWatchPolicy
	}

	if !policy.Exists(cfg.Policy.Name) {
		fmt.Fprintf(os.Stderr, "Error: unknown policy %q\n", cfg.Policy.Name)
		fmt.Fprintln(os.Stderr, "Run 'match3 policies' to see available policies.")
		os.Exit(1)
	}

	// Warn up front when the terminal cannot fit the grid; the board needs
	// two columns per cell plus a few HUD lines.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Board.Cols*2 || h < cfg.Board.Rows+7 {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is small for a %dx%d board\n",
				w, h, cfg.Board.Rows, cfg.Board.Cols)
		}
	}

	watchCfg := tui.WatchConfig{
		Rows:     cfg.Board.Rows,
		Cols:     cfg.Board.Cols,
		Colors:   cfg.Board.Colors,
		Target:   cfg.Game.Target,
		Policy:   cfg.Policy.Name,
		Seed:     flagSeed,
		TickRate: flagWatchRate,
	}

	if err := tui.RunWatch(watchCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
