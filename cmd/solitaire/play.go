package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/engine"
	"github.com/vovakirdan/tui-solitaire/internal/platform/tui"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a solitaire variant",
	Long: `Start playing the specified variant.

Controls:
  Left/Right  - Move between piles
  Up/Down     - Grab more/fewer cards from a column
  Enter/Space - Pick up or drop cards
  D           - Draw from the stock
  U           - Undo
  ?           - Hint
  A           - Auto-complete
  R           - Restart
  Q/Ctrl+C    - Quit (unfinished games are autosaved)

Difficulty options:
  easy   - Draw one, winnable deals, unlimited undo, hints on
  normal - Draw three, standard deals, 20 undos
  hard   - Draw three, biased-hard deals, 5 undos, no hints

Examples:
  solitaire play klondike
  solitaire play spider --difficulty easy
  solitaire play klondike --difficulty hard
  solitaire play klondike --resume
  solitaire play spider --config ./my-difficulty.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom difficulty config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty tier: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the autosaved game instead of dealing")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := args[0]

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'solitaire list' to see available variants.")
		os.Exit(1)
	}

	difficulty := config.Difficulty(flagDifficulty)
	if !difficulty.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal or hard)\n", flagDifficulty)
		os.Exit(1)
	}

	profiles, err := config.LoadProfiles(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	diff := config.NewDifficultyManager(difficulty, profiles)

	var game *engine.Game
	if flagResume {
		game, diff = resumeGame(store, variantID, profiles)
	}
	if game == nil {
		v, createErr := registry.Create(variantID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", createErr)
			os.Exit(1)
		}
		game = engine.NewGame(v, diff.EngineOptions(flagSeed))
	}

	runErr := tui.RunPlay(game, store, diff)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resumeGame loads the autosave slot when it holds a game for the
// requested variant. Returns nils when no matching save exists.
func resumeGame(store *storage.Store, variantID string, profiles config.Profiles) (*engine.Game, *config.DifficultyManager) {
	if store == nil {
		return nil, nil
	}
	entry, err := store.LoadGame(tui.AutosaveSlot)
	if err != nil || entry == nil || entry.Variant != variantID {
		return nil, nil
	}
	v, err := registry.Create(variantID)
	if err != nil {
		return nil, nil
	}
	game, err := engine.RestoreGame(v, entry.State)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not restore saved game: %v\n", err)
		return nil, nil
	}
	diff := config.NewDifficultyManager(config.Difficulty(entry.Difficulty), profiles)
	return game, diff
}

// termSize returns the terminal dimensions, with sane fallbacks.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
