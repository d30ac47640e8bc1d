package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match3-arena/internal/tournament"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(24)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderSummary formats the tournament aggregates for the terminal.
func RenderSummary(res *tournament.Result, target int) string {
	s := res.Summary
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Tournament Summary"))
	sb.WriteString("\n\n")

	line := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(valueStyle.Render(value))
		sb.WriteString("\n")
	}

	line("Games played", fmt.Sprintf("%d", s.Games))
	sb.WriteString(labelStyle.Render(fmt.Sprintf("Reached %d", target)))
	sb.WriteString(goodStyle.Render(fmt.Sprintf("%.1f%%", s.SuccessRate)))
	sb.WriteString("\n")
	line("Points avg / median", fmt.Sprintf("%.2f / %.1f", s.AvgPoints, s.MedianPoints))
	line("Swaps avg / median", fmt.Sprintf("%.2f / %.1f", s.AvgSwaps, s.MedianSwaps))
	line("Cascades avg / median", fmt.Sprintf("%.2f / %.1f", s.AvgCascades, s.MedianCascades))

	if s.MilestoneGames > 0 {
		line("Swaps to target", fmt.Sprintf("%.2f avg / %.1f median (%d games)",
			s.AvgSwapsToTarget, s.MedianSwapsToTarget, s.MilestoneGames))
	} else {
		line("Swaps to target", "never reached")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("seed %d, elapsed %s", res.Seed, res.Elapsed.Round(time.Millisecond))))
	sb.WriteString("\n")

	return sb.String()
}
