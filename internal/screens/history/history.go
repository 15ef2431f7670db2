package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/quiz"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/store"
	"github.com/abhisek/eduvision/internal/ui/layout"
	"github.com/abhisek/eduvision/internal/ui/theme"
)

// Limit is the number of quiz results shown.
const Limit = 50

type historyLoadedMsg struct {
	Results  []store.QuizResultRecord
	Sessions int
	Err      error
}

// HistoryScreen lists past quiz results.
type HistoryScreen struct {
	eventRepo store.EventRepo
	results   []store.QuizResultRecord
	sessions  int
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		results, err := s.eventRepo.QueryQuizResults(ctx, store.QueryOpts{Limit: Limit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		sessions, err := s.eventRepo.CountSessions(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Results: results, Sessions: sessions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Finish a study session to see it here!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%d sessions started, %d quizzes completed", s.sessions, len(s.results)))))
	b.WriteString("\n\n")

	for i, r := range s.results {
		dateStr := r.Timestamp.Local().Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-24s  %3d%%  %d/%d", prefix, dateStr, truncate(r.Topic, 24), r.Score, r.Correct, r.Total)

		style := lipgloss.NewStyle().Foreground(tierColor(quiz.ParseTier(r.Tier)))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("    "+answersLine(r.Answers))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func answersLine(answers []int) string {
	parts := make([]string, len(answers))
	for i, a := range answers {
		if a < 0 {
			parts[i] = fmt.Sprintf("Q%d: -", i+1)
		} else {
			parts[i] = fmt.Sprintf("Q%d: %d", i+1, a+1)
		}
	}
	return strings.Join(parts, "  ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func tierColor(t quiz.Tier) color.Color {
	switch t {
	case quiz.TierMastered:
		return theme.Success
	case quiz.TierOnTrack:
		return theme.Secondary
	case quiz.TierGoodEffort:
		return theme.Accent
	default:
		return theme.Text
	}
}
