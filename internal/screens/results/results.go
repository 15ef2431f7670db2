package results

import (
	"context"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/eduvision/internal/quiz"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/study"
	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/layout"
)

// ResultsScreen shows the graded quiz and what to do next.
type ResultsScreen struct {
	nav    *study.Navigator
	menu   components.Menu
	offset int // first visible line of the review
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen over nav, which must be showing results.
func New(nav *study.Navigator) *ResultsScreen {
	s := &ResultsScreen{nav: nav}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Review slides", Key: "r", Action: s.dispatch(study.Review{})},
		{Label: "Retake quiz", Key: "t", Action: s.dispatch(study.Retake{})},
		{Label: "New session", Key: "n", Action: s.dispatch(study.Reset{})},
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "PgUp/PgDn", Description: "Scroll review"},
	}
}

// Tier returns the motivation tier for the graded score.
func (s *ResultsScreen) Tier() qz.Tier {
	res := s.nav.State().Result
	if res == nil {
		return qz.TierDontGiveUp
	}
	return qz.Motivation(res.Score)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "pgdown":
		s.offset++
		return s, nil
	case "pgup":
		if s.offset > 0 {
			s.offset--
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(kmsg)
	return s, cmd
}

func (s *ResultsScreen) dispatch(a study.Action) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.nav.Dispatch(context.Background(), a); err != nil {
			return nil
		}
		return screen.FollowView(study.ViewResults, s.nav)
	}
}
