package upload

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/theme"
)

func (s *UploadScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.processing {
		body := s.spinner.View() + " " + theme.Body.Render("Building your slides and quiz...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	var sections []string
	sections = append(sections,
		theme.Title.Width(cw).Render("Turn your notes into a study session"),
		theme.Subtitle.Width(cw).Render("Paste text below or load a .txt / .md file"),
		"",
	)

	text := s.area.View()
	if s.focus == focusText {
		sections = append(sections, components.HighlightCard(text, cw))
	} else {
		sections = append(sections, components.Card(text, cw))
	}

	sections = append(sections, theme.Hint.Render("File: ")+s.path.View())
	sections = append(sections, "")
	sections = append(sections, components.NewButton("Process (Ctrl+S)", !s.CanProcess()).View())

	switch {
	case s.errMsg != "":
		sections = append(sections, "", theme.ErrorText.Render(s.errMsg))
	case s.notice != "":
		sections = append(sections, "", theme.Hint.Render(s.notice))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
