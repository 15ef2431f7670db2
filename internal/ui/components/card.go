package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards so that
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border box at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// HighlightCard is Card with the primary border colour, used for the
// focused element of a screen.
func HighlightCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}
