package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/engine"
	"github.com/vovakirdan/tui-solitaire/internal/platform/tui"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

var flagMenuConfig string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive variant picker",
	Long: `Start the interactive menu to pick a variant and difficulty.
After a game ends you are returned to the menu.

Examples:
  solitaire menu
  solitaire menu --db ./results.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuConfig, "config", "", "Path to custom difficulty config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	profiles, err := config.LoadProfiles(flagMenuConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := termSize()

	for {
		result, err := tui.RunMenu(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if result.WantsScoreboard {
			back, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				os.Exit(1)
			}
			if !back {
				return
			}
			continue
		}

		if result.Quit {
			return
		}

		v, err := registry.Create(result.VariantID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
			os.Exit(1)
		}

		diff := config.NewDifficultyManager(result.Difficulty, profiles)
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		game := engine.NewGame(v, diff.EngineOptions(seed))

		if err := tui.RunPlay(game, store, diff); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
	}
}
