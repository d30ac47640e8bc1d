// match3 is an automated match-3 tournament simulator for the terminal.
//
// Usage:
//
//	match3 run                - Run a tournament and print the summary
//	match3 watch              - Watch one game play itself in a TUI
//	match3 serve              - Start SSH server for remote watching
//	match3 stats              - Show stored tournament results
//	match3 policies           - List available move-ranking policies
//
// Global flags:
//
//	--seed <value>  - Base RNG seed for reproducible runs (0 = time-based)
//	--db <path>     - Results database path (default: ~/.match3/results.db)
//	--config <path> - Path to a custom YAML config
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Automated match-3 tournament simulator",
	Long: `match3 plays match-3 games by itself and measures how its move-ranking
policies perform over large tournaments.

Available commands:
  run      - Run a tournament and print aggregate statistics
  watch    - Watch a single game play itself move by move
  serve    - Start SSH server so others can watch remotely
  stats    - Browse stored tournament results
  policies - List available move-ranking policies

Examples:
  match3 run --games 500 --policy smart
  match3 run --variant enhanced --csv results.csv
  match3 watch --policy greedy
  match3 serve --ssh :2222
  match3 stats --browse`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Base RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(policiesCmd)
}
