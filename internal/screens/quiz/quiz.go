package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/study"
	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/layout"
)

// QuizScreen asks the session's questions one at a time.
type QuizScreen struct {
	nav     *study.Navigator
	choices components.ChoiceList
	hint    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over nav, which must be in the quiz.
func New(nav *study.Navigator) *QuizScreen {
	s := &QuizScreen{nav: nav}
	s.resetChoices()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Space", Description: "Choose"},
	}
	if s.nav.State().CanAdvance() {
		label := "Next"
		if s.nav.State().OnLastQuestion() {
			label = "Finish"
		}
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: label})
	}
	return append(hints, layout.KeyHint{Key: "N", Description: "New session"})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	ctx := context.Background()
	s.hint = ""

	switch key := kmsg.String(); key {
	case "1", "2", "3", "4":
		s.answer(ctx, int(key[0]-'1'))
		return s, nil

	case "space":
		s.answer(ctx, s.choices.Cursor)
		return s, nil

	case "enter":
		if !s.nav.State().CanAdvance() {
			s.hint = "Pick an answer first."
			return s, nil
		}
		if err := s.nav.Dispatch(ctx, study.Advance{}); err != nil {
			return s, nil
		}
		s.resetChoices()
		return s, screen.FollowView(study.ViewQuiz, s.nav)

	case "n":
		if err := s.nav.Dispatch(ctx, study.Reset{}); err != nil {
			return s, nil
		}
		return s, screen.FollowView(study.ViewQuiz, s.nav)
	}

	s.choices = s.choices.Update(kmsg)
	return s, nil
}

func (s *QuizScreen) answer(ctx context.Context, option int) {
	if err := s.nav.Dispatch(ctx, study.Answer{Option: option}); err != nil {
		return
	}
	s.choices.Chosen = option
	s.choices.Cursor = option
}

// resetChoices rebuilds the option list for the visible question.
func (s *QuizScreen) resetChoices() {
	st := s.nav.State()
	q, ok := st.Question()
	if !ok {
		s.choices = components.ChoiceList{}
		return
	}
	chosen := -1
	if opt, ok := st.Answers.Get(st.CurrentQuestion); ok {
		chosen = opt
	}
	s.choices = components.NewChoiceList(q.Options, chosen)
}
