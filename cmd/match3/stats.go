package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/match3-arena/internal/platform/tui"
	"github.com/vovakirdan/match3-arena/internal/storage"
)

var (
	flagStatsLimit  int
	flagStatsBrowse bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored tournament results",
	Long: `Display recent tournament runs and their aggregate statistics.

With --browse, opens an interactive table of per-game outcomes instead.

Examples:
  match3 stats
  match3 stats --limit 5
  match3 stats --browse`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent tournaments to show")
	statsCmd.Flags().BoolVar(&flagStatsBrowse, "browse", false, "Browse per-game outcomes interactively")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		if err := tui.RunResults(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	metas, err := store.RecentTournaments(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving tournaments: %v\n", err)
		os.Exit(1)
	}

	if len(metas) == 0 {
		fmt.Println("No tournaments recorded yet.")
		fmt.Println()
		fmt.Println("Run 'match3 run' to record the first one.")
		return
	}

	fmt.Println("Recent tournaments:")
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-6s  %-8s  %-8s  %-7s  %s\n",
		"ID", "Policy", "Games", "Board", "Target", "Avg pts", "Max pts", "Reached", "Date")

	for _, m := range metas {
		stats, err := store.TournamentStats(m.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats for tournament %d: %v\n", m.ID, err)
			continue
		}

		fmt.Printf("  %-4d  %-8s  %-6d  %-7s  %-6d  %-8.1f  %-8d  %-7d  %s\n",
			m.ID, m.Policy, m.Games,
			fmt.Sprintf("%dx%d", m.Rows, m.Cols),
			m.Target,
			stats.AvgPoints, stats.MaxPoints, stats.ReachedCount,
			m.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Println("Run 'match3 stats --browse' for per-game outcomes.")
}
