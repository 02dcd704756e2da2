package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-solitaire/internal/engine"
)

// Card and board styles.
var (
	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))
	faceDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
	emptySlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
	pickedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)
	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
)

const (
	faceDownGlyph = "[##]"
	emptyGlyph    = "[  ]"
)

// cardGlyph renders one card as a fixed-width token like " Q♠ ".
func cardGlyph(c engine.Card) string {
	if !c.FaceUp {
		return faceDownStyle.Render(faceDownGlyph)
	}
	text := fmt.Sprintf("%3s%s", c.Rank.String(), c.Suit.Symbol())
	if c.Red() {
		return redCardStyle.Render(text)
	}
	return blackCardStyle.Render(text)
}

// topGlyph renders the top card of a pile, or the empty slot marker.
func topGlyph(pile []engine.Card) string {
	if len(pile) == 0 {
		return emptySlotStyle.Render(emptyGlyph)
	}
	return cardGlyph(pile[len(pile)-1])
}

// marker decorates a pile label according to cursor and pick state.
func marker(active, picked bool) string {
	switch {
	case picked:
		return pickedStyle.Render("*")
	case active:
		return cursorStyle.Render(">")
	default:
		return " "
	}
}

// renderTopRow renders the stock, waste and foundation piles.
func renderTopRow(m PlayModel) string {
	g := m.game
	var parts []string

	stockLabel := fmt.Sprintf("Stock(%d)", len(g.Stock))
	parts = append(parts,
		marker(m.at(engine.AreaStock, 0), false)+stockLabel+" "+stockFace(g))

	if g.Variant().FoundationCount() > 0 {
		parts = append(parts,
			marker(m.at(engine.AreaWaste, 0), m.pickedAt(engine.AreaWaste, 0))+
				fmt.Sprintf("Waste(%d) ", len(g.Waste))+topGlyph(g.Waste))
		for i, f := range g.Foundations {
			parts = append(parts,
				marker(m.at(engine.AreaFoundation, i), false)+
					engine.Suits[i].Symbol()+" "+topGlyph(f))
		}
	} else {
		parts = append(parts, fmt.Sprintf("Done: %d", len(g.Completed)))
	}

	return strings.Join(parts, "   ")
}

// stockFace shows whether the stock still holds cards.
func stockFace(g *engine.Game) string {
	if len(g.Stock) == 0 {
		return emptySlotStyle.Render(emptyGlyph)
	}
	return faceDownStyle.Render(faceDownGlyph)
}

// renderTableau renders the tableau columns side by side.
func renderTableau(m PlayModel) string {
	g := m.game
	cols := make([]string, len(g.Tableau))
	for i, pile := range g.Tableau {
		var b strings.Builder
		head := fmt.Sprintf("%s C%d", marker(m.at(engine.AreaTableau, i), m.pickedAt(engine.AreaTableau, i)), i+1)
		b.WriteString(head)
		b.WriteString("\n")
		if len(pile) == 0 {
			b.WriteString(" " + emptySlotStyle.Render(emptyGlyph))
		}
		grabFrom := -1
		if m.at(engine.AreaTableau, i) && !m.picked {
			grabFrom = len(pile) - m.pickCount
		}
		if m.pickedAt(engine.AreaTableau, i) {
			grabFrom = len(pile) - m.pickCount
		}
		for j, c := range pile {
			b.WriteString(" ")
			glyph := cardGlyph(c)
			if grabFrom >= 0 && j >= grabFrom {
				glyph = pickedStyle.Render("|") + glyph
			} else {
				glyph = " " + glyph
			}
			b.WriteString(glyph)
			if j < len(pile)-1 {
				b.WriteString("\n")
			}
		}
		cols[i] = b.String()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padColumns(cols, 8)...)
}

// padColumns pads every column block to a fixed width so the join
// stays aligned regardless of pile depth.
func padColumns(cols []string, width int) []string {
	style := lipgloss.NewStyle().Width(width)
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = style.Render(c)
	}
	return out
}

// renderStatus renders the score line and the transient status message.
func renderStatus(m PlayModel) string {
	g := m.game
	line := fmt.Sprintf("Score: %d   Moves: %d   Time: %s   [%s/%s]",
		g.Score, g.Moves, g.GetFormattedTime(), g.Variant().Title(), m.diff.Difficulty())
	if g.AutoCompleteAvailable && m.diff.CanAutoComplete() {
		line += "   " + winStyle.Render("auto-complete ready (a)")
	}
	out := headerStyle.Render(line)
	if m.hint != nil {
		out += "\n" + hintStyle.Render("Hint: "+m.hint.Description)
	}
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status)
	}
	return out
}
