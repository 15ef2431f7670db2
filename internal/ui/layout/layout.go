package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/theme"
)

const (
	MinWidth  = 64
	MinHeight = 20

	// Header and footer are one line of text inside a rounded border.
	HeaderHeight = 3
	FooterHeight = 3

	// Below this height slides drop their image prompt.
	CompactHeightThreshold = 28
)

const brand = "EduVision"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight reports whether height is too short for full slides.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the height left for a screen between header and footer.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("The study view needs at least %dx%d.\n\nCurrent size: %dx%d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(text))
}

// RenderHeader renders the top bar: brand on the left, the screen title in
// the middle and status (slide, question or score) on the right.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" " + brand)
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status + " ")

	return bar(spread(left, mid, right, width-2), width)
}

// RenderFooter renders the key hints, dropping trailing hints that do not fit.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	avail := width - 4
	line := ""
	for _, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		next := part
		if line != "" {
			next = line + "   " + part
		}
		if lipgloss.Width(next) > avail {
			break
		}
		line = next
	}
	return bar(" "+line, width)
}

// RenderFrame stacks header, content and footer to fill height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread places mid centred in width with left and right pinned to the edges.
func spread(left, mid, right string, width int) string {
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)

	leftGap := max((width-mw)/2-lw, 1)
	rightGap := max(width-lw-leftGap-mw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + mid + strings.Repeat(" ", rightGap) + right
}
