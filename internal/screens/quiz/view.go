package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	st := s.nav.State()
	q, ok := st.Question()
	if !ok {
		return ""
	}
	total := len(st.Session.Quiz)
	cw := components.ContentWidth(width)

	label := "Next Question"
	if st.OnLastQuestion() {
		label = "Finish Quiz"
	}

	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-8).Render(q.Question) +
		"\n\n" + s.choices.View()

	sections := []string{
		components.StepProgress(fmt.Sprintf("Question %d of %d", st.CurrentQuestion+1, total), st.CurrentQuestion, total, cw).View(),
		"",
		components.Card(body, cw),
		"",
		components.NewButton(label, !st.CanAdvance()).View(),
	}
	if s.hint != "" {
		sections = append(sections, theme.Hint.Render(s.hint))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
