package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3-arena/internal/policy"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List all available move-ranking policies",
	Long:  `Shows the policies the automated player can use to rank moves.`,
	Run:   runPolicies,
}

func runPolicies(_ *cobra.Command, _ []string) {
	infos := policy.List()

	if len(infos) == 0 {
		fmt.Println("No policies available.")
		return
	}

	fmt.Println("Available policies:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, p := range infos {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, p := range infos {
		fmt.Printf("  %-*s  %s\n", maxNameLen, p.Name, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'match3 run --policy <name>' to use a policy.")
}
