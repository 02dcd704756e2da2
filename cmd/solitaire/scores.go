package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 results for the specified variant.

Examples:
  solitaire scores klondike
  solitaire scores spider
  solitaire scores klondike --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded results for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	variantID := args[0]

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'solitaire list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	v, err := registry.Create(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
		os.Exit(1)
	}
	title := v.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearResults(variantID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all results for %s.\n", title)
		return
	}

	results, err := store.TopResults(variantID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'solitaire play %s' to set the first high score!\n", variantID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Difficulty", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "----------", "-----", "----", "----")

	for i, entry := range results {
		timeStr := fmt.Sprintf("%02d:%02d", entry.Duration/60, entry.Duration%60)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %-6d  %-6s  %s\n", i+1, entry.Score, entry.Difficulty, entry.Moves, timeStr, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(variantID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	if stats, statsErr := store.GetVariantStats(variantID); statsErr == nil && stats.GamesCount > 0 {
		fmt.Printf("Played: %d  Won: %d\n", stats.GamesCount, stats.WinsCount)
	}
}
