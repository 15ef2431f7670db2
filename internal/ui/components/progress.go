package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// StepProgress returns a bar for step current (0-based) of total.
func StepProgress(label string, current, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(current+1) / float64(total)
	}
	return NewProgressBar(label, pct, true, width)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// Dots renders one marker per step with the current step highlighted,
// numbered so the learner knows which key jumps where.
func Dots(current, total int) string {
	parts := make([]string, total)
	for i := range parts {
		label := fmt.Sprintf("● %d", i+1)
		if i == current {
			parts[i] = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label)
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.Border).Render(label)
		}
	}
	return strings.Join(parts, "  ")
}
