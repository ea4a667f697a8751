package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzlebox/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long:  `Shows a list of all puzzles registered in the puzzle box.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No puzzles available.")
		return
	}

	// Styles degrade to plain text when out is not a terminal
	r := lipgloss.NewRenderer(out)
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	headerStyle := r.NewStyle().Foreground(lipgloss.Color("241"))
	idStyle := r.NewStyle().Foreground(lipgloss.Color("6"))

	fmt.Fprintln(out, titleStyle.Render("Available puzzles:"))
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("  %-*s  %s", maxIDLen, "ID", "Title")))
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("  %-*s  %s", maxIDLen, "--", "-----")))

	// Print games
	for _, g := range games {
		fmt.Fprintf(out, "  %s  %s\n", idStyle.Render(fmt.Sprintf("%-*s", maxIDLen, g.ID)), g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'puzzlebox show <id>' to see a starting board.")
}
