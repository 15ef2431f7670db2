package results

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/eduvision/internal/quiz"
	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	st := s.nav.State()
	if st.Result == nil || st.Session == nil {
		return ""
	}
	res := st.Result
	tier := s.Tier()
	cw := components.ContentWidth(width)

	scoreLine := lipgloss.NewStyle().
		Foreground(tierColor(tier)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", res.Score))
	summary := fmt.Sprintf("%d of %d correct", res.Correct, res.Total)

	header := []string{
		theme.Title.Width(cw).Render("Quiz Complete"),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, scoreLine),
		theme.Subtitle.Width(cw).Render(summary),
		"",
		lipgloss.NewStyle().Foreground(tierColor(tier)).Width(cw).Align(lipgloss.Center).Render(tier.Message()),
		"",
	}
	menu := s.menu.View()

	reviewHeight := height - len(header) - lipgloss.Height(menu) - 4
	review := s.review(cw, reviewHeight)

	content := strings.Join(header, "\n") + "\n" + review + "\n\n" + menu
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// review renders the per-question breakdown, windowed to fit height.
func (s *ResultsScreen) review(cw, height int) string {
	st := s.nav.State()

	var lines []string
	for i, q := range st.Session.Quiz {
		chosen := -1
		if opt, ok := st.Answers.Get(i); ok {
			chosen = opt
		}
		mark := theme.Incorrect.Render("✗")
		if i < len(st.Result.PerQuestion) && st.Result.PerQuestion[i] {
			mark = theme.Correct.Render("✓")
		}
		lines = append(lines, mark+" "+theme.Body.Bold(true).Render(fmt.Sprintf("Q%d. %s", i+1, q.Question)))
		lines = append(lines, strings.Split(strings.TrimRight(components.ReviewView(q.Options, chosen, q.CorrectAnswer), "\n"), "\n")...)
		lines = append(lines, theme.Hint.Width(cw).Render("   "+q.Explanation), "")
	}

	if height < 3 {
		height = 3
	}
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := s.offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.offset:end], "\n")
}

func tierColor(t qz.Tier) color.Color {
	switch t {
	case qz.TierMastered:
		return theme.Success
	case qz.TierOnTrack:
		return theme.Secondary
	case qz.TierGoodEffort:
		return theme.Accent
	default:
		return theme.Error
	}
}
