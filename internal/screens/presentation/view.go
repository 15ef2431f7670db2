package presentation

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/layout"
	"github.com/abhisek/eduvision/internal/ui/theme"
)

func (s *PresentationScreen) View(width, height int) string {
	st := s.nav.State()
	slide, ok := st.Slide()
	if !ok {
		return ""
	}
	total := len(st.Session.Slides)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections,
		components.StepProgress(fmt.Sprintf("Slide %d of %d", st.CurrentSlide+1, total), st.CurrentSlide, total, cw).View(),
		"",
	)

	var body strings.Builder
	body.WriteString(theme.Title.Render(slide.Title))
	body.WriteString("\n\n")
	for _, line := range slide.Content {
		body.WriteString(theme.Body.Width(cw - 8).Render("• " + strings.TrimSpace(line)))
		body.WriteString("\n")
	}
	if !layout.IsCompactHeight(height) {
		body.WriteString("\n")
		body.WriteString(theme.Hint.Render("[image] " + slide.ImagePrompt))
	}
	sections = append(sections, components.Card(body.String(), cw))

	sections = append(sections, "", components.Dots(st.CurrentSlide, total))
	sections = append(sections, "", s.narrationLine())

	sections = append(sections, "", components.NewButton("Start Quiz", !st.OnLastSlide()).View())
	if s.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func (s *PresentationScreen) narrationLine() string {
	n := s.nav.Narrator()
	var parts []string
	switch {
	case n.Playing():
		parts = append(parts, "♪ Narrating")
	case n.Pending():
		parts = append(parts, "♪ Starting...")
	default:
		parts = append(parts, "Press P to listen")
	}
	if n.Muted() {
		parts = append(parts, "(muted)")
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Join(parts, " "))
}
