package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/conjuror/internal/card"
	"github.com/arcanaland/conjuror/internal/palette"

	colorize "github.com/fatih/color" // Renamed to keep "color" free for card colors
)

// cardWidth is the visible width of a rendered card face in terminal columns.
const cardWidth = 30

// renderCards lays cards out in rows, fitting as many per row as the
// terminal is wide. When numbered is set, each card gets an index label;
// the table session's flip command uses those indices.
func renderCards(cards []*card.Card, showTimestamps, numbered bool) {
	if len(cards) == 0 {
		fmt.Println("The table is empty.")
		return
	}

	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	columns := width / (cardWidth + 2)
	if columns < 1 {
		columns = 1
	}

	fmt.Println()
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		row := cards[start:end]

		if numbered {
			fmt.Print("  ")
			for i := range row {
				label := fmt.Sprintf("[%d] %s", start+i+1, shortID(row[i].ID))
				fmt.Print(pad(label, cardWidth), "  ")
			}
			fmt.Println()
		}

		rendered := make([][]string, len(row))
		for i, c := range row {
			rendered[i] = renderCard(c, showTimestamps)
		}

		for line := range rendered[0] {
			fmt.Print("  ")
			for i := range rendered {
				fmt.Print(rendered[i][line], "  ")
			}
			fmt.Println()
		}
		fmt.Println()
	}
}

// renderCard renders one card as a slice of styled lines, each cardWidth
// columns wide. Face-down cards show the card back instead of their text.
func renderCard(c *card.Card, showTimestamps bool) []string {
	inner := cardWidth - 4
	style := styleFor(c.Color)

	edge := style.border.Sprint(strings.Repeat(" ", cardWidth))
	if c.Flipped {
		return renderBack(c, showTimestamps, edge)
	}

	desc := wrapText(c.Description, inner)
	if len(desc) > 3 {
		desc = desc[:3]
	}
	for len(desc) < 3 {
		desc = append(desc, "")
	}

	blank := style.face.Sprint(strings.Repeat(" ", cardWidth))

	lines := []string{edge}
	lines = append(lines, style.title.Sprint("  "+pad(c.Title, inner)+"  "))
	lines = append(lines, blank)
	for _, d := range desc {
		lines = append(lines, style.face.Sprint("  "+pad(d, inner)+"  "))
	}
	lines = append(lines, blank)
	if showTimestamps {
		lines = append(lines, style.dim.Sprint("  "+pad(c.CreatedAt, inner)+"  "))
	}
	lines = append(lines, edge)
	return lines
}

// renderBack renders the face-down side of a card, a darkened shade of
// its face color. The line count matches renderCard so mixed rows align.
func renderBack(c *card.Card, showTimestamps bool, edge string) []string {
	inner := cardWidth - 4

	backHex, err := palette.AdjustBrightness(c.Color, -55)
	if err != nil {
		backHex = c.Color
	}
	r, g, b := rgb(backHex)
	back := colorize.BgRGB(r, g, b).AddRGB(210, 210, 210)

	rows := 6
	if showTimestamps {
		rows = 7
	}

	motif := "✦   ✦   ✦   ✦"
	lines := []string{edge}
	for i := 0; i < rows; i++ {
		text := ""
		switch {
		case i == rows/2:
			text = center("face down", inner)
		case i%2 == 0:
			text = center(motif, inner)
		}
		lines = append(lines, back.Sprint("  "+pad(text, inner)+"  "))
	}
	lines = append(lines, edge)
	return lines
}

// cardStyle bundles the color styles derived from one face color.
type cardStyle struct {
	border *colorize.Color
	face   *colorize.Color
	title  *colorize.Color
	dim    *colorize.Color
}

// styleFor derives the styles for a face color. The border is a darker
// shade of the face so every card reads as one of the palette colors.
func styleFor(hex string) cardStyle {
	r, g, b := rgb(hex)

	borderHex, err := palette.AdjustBrightness(hex, -35)
	if err != nil {
		borderHex = hex
	}
	br, bg, bb := rgb(borderHex)

	return cardStyle{
		border: colorize.BgRGB(br, bg, bb),
		face:   colorize.BgRGB(r, g, b).AddRGB(255, 255, 255),
		title:  colorize.BgRGB(r, g, b).AddRGB(255, 255, 255).Add(colorize.Bold),
		dim:    colorize.BgRGB(r, g, b).AddRGB(230, 230, 230).Add(colorize.Faint),
	}
}

// rgb decomposes a #rrggbb string into integer channels
func rgb(hex string) (int, int, int) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0
	}
	r, g, b := c.RGB255()
	return int(r), int(g), int(b)
}

// pad right-pads s with spaces to the given visible width, truncating
// with an ellipsis when it is too long. Width is counted in runes since
// card text is not necessarily ASCII.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// center centers s within the given visible width
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

// wrapText wraps text into lines of at most width characters, breaking on spaces
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	var current string

	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// shortID returns the first uuid group of an id, enough to tell cards
// apart within a session
func shortID(id string) string {
	if i := strings.Index(id, "-"); i > 0 {
		return id[:i]
	}
	return id
}
