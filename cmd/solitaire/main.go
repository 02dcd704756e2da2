// solitaire is a TUI platform for playing solitaire card games in the
// terminal.
//
// Usage:
//
//	solitaire list               - List available variants
//	solitaire play <variant>     - Play a variant
//	solitaire menu               - Start menu to pick a variant interactively
//	solitaire serve              - Start SSH server for remote play
//	solitaire scores <variant>   - Show high scores for a variant
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path (default: ~/.solitaire/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-solitaire/internal/games/klondike"
	_ "github.com/vovakirdan/tui-solitaire/internal/games/spider"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "TUI Solitaire - Play card games in your terminal",
	Long: `TUI Solitaire is a terminal-based platform for playing classic
solitaire card games directly in your terminal.

Available commands:
  list     - Show all available variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  solitaire list
  solitaire play klondike
  solitaire play spider --difficulty hard
  solitaire menu
  solitaire serve --ssh :2222
  solitaire scores klondike`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.solitaire/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
