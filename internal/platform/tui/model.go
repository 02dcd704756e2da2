package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/engine"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

// AutosaveSlot is the save slot written when a session quits mid-game.
const AutosaveSlot = "autosave"

// position addresses one selectable pile on the board.
type position struct {
	area  engine.Area
	index int
}

// PlayModel is the Bubble Tea model for one game session.
type PlayModel struct {
	game      *engine.Game
	store     *storage.Store
	diff      *config.DifficultyManager
	hints     *engine.HintSystem
	keys      PlayKeyMap
	help      help.Model
	positions []position

	cursor    int
	pickCount int
	picked    bool
	pickedPos int

	hint        *engine.Move
	status      string
	width       int
	height      int
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewPlayModel creates a play model around an already-dealt game.
func NewPlayModel(g *engine.Game, store *storage.Store, diff *config.DifficultyManager) PlayModel {
	return PlayModel{
		game:      g,
		store:     store,
		diff:      diff,
		hints:     engine.NewHintSystem(),
		keys:      DefaultPlayKeyMap(),
		help:      help.New(),
		positions: boardPositions(g),
		pickCount: 1,
	}
}

// boardPositions builds the cursor order: stock, waste, foundations,
// then the tableau columns. Variants without foundations skip the
// waste and foundation slots.
func boardPositions(g *engine.Game) []position {
	positions := []position{{area: engine.AreaStock}}
	if g.Variant().FoundationCount() > 0 {
		positions = append(positions, position{area: engine.AreaWaste})
		for i := range g.Foundations {
			positions = append(positions, position{area: engine.AreaFoundation, index: i})
		}
	}
	for i := range g.Tableau {
		positions = append(positions, position{area: engine.AreaTableau, index: i})
	}
	return positions
}

// at reports whether the cursor sits on the given pile.
func (m PlayModel) at(area engine.Area, index int) bool {
	p := m.positions[m.cursor]
	return p.area == area && p.index == index
}

// pickedAt reports whether the given pile holds the picked cards.
func (m PlayModel) pickedAt(area engine.Area, index int) bool {
	if !m.picked {
		return false
	}
	p := m.positions[m.pickedPos]
	return p.area == area && p.index == index
}

// Init starts the clock.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd()
	}
	return m, nil
}

// handleKey processes keyboard input for the play screen.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.autosave()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.picked {
			m.picked = false
			m.status = ""
			return m, nil
		}
		m.autosave()
		m.backToMenu = true
		// The session wrapper intercepts BackToMenu before this quit
		// runs; standalone programs exit here.
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
		if !m.picked {
			m.pickCount = 1
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.positions)-1 {
			m.cursor++
		}
		if !m.picked {
			m.pickCount = 1
		}

	case key.Matches(msg, m.keys.More):
		m.adjustPick(1)

	case key.Matches(msg, m.keys.Fewer):
		m.adjustPick(-1)

	case key.Matches(msg, m.keys.Select):
		m.handleSelect()

	case key.Matches(msg, m.keys.Draw):
		m.doDraw()

	case key.Matches(msg, m.keys.Undo):
		m.doUndo()

	case key.Matches(msg, m.keys.Hint):
		m.doHint()

	case key.Matches(msg, m.keys.AutoComplete):
		m.doAutoComplete()

	case key.Matches(msg, m.keys.Restart):
		m.restart()

	case key.Matches(msg, m.keys.Save):
		m.doSave()
	}

	m.afterAction()
	return m, nil
}

// adjustPick grows or shrinks the grab size on a tableau column.
func (m *PlayModel) adjustPick(delta int) {
	p := m.positions[m.cursor]
	if p.area != engine.AreaTableau || m.picked {
		return
	}
	limit := len(m.game.Tableau[p.index])
	if limit == 0 {
		return
	}
	m.pickCount += delta
	if m.pickCount < 1 {
		m.pickCount = 1
	}
	if m.pickCount > limit {
		m.pickCount = limit
	}
}

// handleSelect picks up cards or drops the picked cards on the cursor
// pile, depending on selection state.
func (m *PlayModel) handleSelect() {
	p := m.positions[m.cursor]

	if p.area == engine.AreaStock {
		m.doDraw()
		return
	}

	if !m.picked {
		if m.pileLen(p) == 0 {
			m.status = "Nothing to pick up there"
			return
		}
		if p.area != engine.AreaTableau {
			m.pickCount = 1
		}
		m.picked = true
		m.pickedPos = m.cursor
		m.status = ""
		return
	}

	src := m.positions[m.pickedPos]
	m.picked = false
	if src == p {
		return
	}
	if !m.game.MoveCards(src.area, src.index, p.area, p.index, m.pickCount) {
		m.status = "That move is not allowed"
		return
	}
	m.pickCount = 1
	m.hint = nil
	m.status = ""
}

// pileLen returns the length of the pile at a position.
func (m *PlayModel) pileLen(p position) int {
	switch p.area {
	case engine.AreaWaste:
		return len(m.game.Waste)
	case engine.AreaFoundation:
		return len(m.game.Foundations[p.index])
	case engine.AreaTableau:
		return len(m.game.Tableau[p.index])
	}
	return 0
}

func (m *PlayModel) doDraw() {
	if !m.game.DrawFromStock() {
		m.status = "The stock is exhausted"
		return
	}
	m.hint = nil
	m.status = ""
}

func (m *PlayModel) doUndo() {
	if !m.diff.CanUndo(m.game.UndosUsed) {
		m.status = "No undos left on this difficulty"
		return
	}
	if !m.game.UndoLastMove() {
		m.status = "Nothing to undo"
		return
	}
	m.hint = nil
	m.status = ""
}

func (m *PlayModel) doHint() {
	if !m.diff.CanShowHints() {
		m.status = "Hints are disabled on this difficulty"
		return
	}
	hint := m.hints.GetBestMove(m.game)
	if hint == nil {
		if m.hints.IsGameStuck(m.game) {
			m.status = "No moves remain; the game is stuck"
		} else {
			m.status = "No hint available right now"
		}
		return
	}
	m.hint = hint
	m.status = ""
}

func (m *PlayModel) doAutoComplete() {
	if !m.diff.CanAutoComplete() {
		m.status = "Auto-complete is disabled on this difficulty"
		return
	}
	if !m.game.AutoCompleteAvailable {
		m.status = "Auto-complete is not available yet"
		return
	}
	m.game.AutoComplete()
	m.hint = nil
	m.status = ""
}

// restart abandons the current game and deals a fresh one on the same
// variant and difficulty.
func (m *PlayModel) restart() {
	v, err := registry.Create(m.game.Variant().ID())
	if err != nil {
		return
	}
	m.game = engine.NewGame(v, m.diff.EngineOptions(time.Now().UnixNano()))
	m.positions = boardPositions(m.game)
	m.cursor = 0
	m.pickCount = 1
	m.picked = false
	m.hint = nil
	m.status = ""
	m.resultSaved = false
}

// doSave writes the game into the autosave slot on demand.
func (m *PlayModel) doSave() {
	if m.saveTo(AutosaveSlot) {
		m.status = "Game saved"
	} else {
		m.status = "Could not save the game"
	}
}

// autosave persists an unfinished game so it can be resumed later.
func (m *PlayModel) autosave() {
	if m.game.GameWon || m.store == nil {
		return
	}
	m.saveTo(AutosaveSlot)
}

// saveTo serializes the game into a save slot.
func (m *PlayModel) saveTo(slot string) bool {
	if m.store == nil {
		return false
	}
	state, err := m.game.SaveJSON()
	if err != nil {
		return false
	}
	err = m.store.SaveGame(storage.SaveEntry{
		Slot:       slot,
		Variant:    m.game.Variant().ID(),
		Difficulty: string(m.diff.Difficulty()),
		State:      state,
	})
	return err == nil
}

// afterAction records the result once the game is decided and clears
// the stale autosave.
func (m *PlayModel) afterAction() {
	if !m.game.GameWon || m.resultSaved {
		return
	}
	m.resultSaved = true
	m.status = "You won!"
	if m.store == nil {
		return
	}
	stats := m.game.GetGameStats()
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveResult(storage.ResultEntry{
		Variant:    stats.Variant,
		Difficulty: string(m.diff.Difficulty()),
		Score:      stats.Score,
		Moves:      stats.Moves,
		Duration:   int(stats.Duration.Seconds()),
		Won:        true,
	})
	//nolint:errcheck // A finished game no longer needs its autosave
	m.store.DeleteSave(AutosaveSlot)
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// View renders the play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	var b []string
	b = append(b, renderStatus(m))
	b = append(b, "")
	b = append(b, renderTopRow(m))
	b = append(b, "")
	b = append(b, renderTableau(m))
	b = append(b, "")
	b = append(b, m.help.View(m.keys))
	out := ""
	for i, line := range b {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

// RunPlay starts a standalone Bubble Tea program for one game.
func RunPlay(g *engine.Game, store *storage.Store, diff *config.DifficultyManager) error {
	model := NewPlayModel(g, store, diff)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
