package presentation

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/study"
	"github.com/abhisek/eduvision/internal/ui/layout"
)

// PresentationScreen steps through the slides of the active session and
// drives narration.
type PresentationScreen struct {
	nav    *study.Navigator
	errMsg string
}

var _ screen.Screen = (*PresentationScreen)(nil)
var _ screen.KeyHintProvider = (*PresentationScreen)(nil)

// New creates a PresentationScreen over nav, which must be presenting.
func New(nav *study.Navigator) *PresentationScreen {
	return &PresentationScreen{nav: nav}
}

func (s *PresentationScreen) Init() tea.Cmd {
	return nil
}

func (s *PresentationScreen) Title() string {
	st := s.nav.State()
	if st.Session == nil {
		return "Presentation"
	}
	return st.Session.Topic
}

func (s *PresentationScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Slides"},
		{Key: "1-5", Description: "Jump"},
	}
	if s.nav.Narrator().Pending() {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Stop"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Narrate"})
	}
	if s.nav.Narrator().Muted() {
		hints = append(hints, layout.KeyHint{Key: "M", Description: "Unmute"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "M", Description: "Mute"})
	}
	if s.nav.State().OnLastSlide() {
		hints = append(hints, layout.KeyHint{Key: "Q", Description: "Start quiz"})
	}
	return append(hints, layout.KeyHint{Key: "N", Description: "New session"})
}

func (s *PresentationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	ctx := context.Background()
	s.errMsg = ""

	var err error
	switch key := kmsg.String(); key {
	case "right", "l", "space":
		err = s.nav.Dispatch(ctx, study.Next{})
	case "left", "h":
		err = s.nav.Dispatch(ctx, study.Prev{})
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		err = s.nav.Dispatch(ctx, study.Jump{Index: int(key[0] - '1')})
	case "enter":
		err = s.nav.StartQuizOrNext(ctx)
	case "q":
		err = s.nav.Dispatch(ctx, study.StartQuiz{})
		if errors.Is(err, study.ErrNotLastSlide) {
			s.errMsg = "The quiz unlocks on the last slide."
			return s, nil
		}
	case "p":
		if err := s.nav.Speak(ctx); err != nil {
			s.errMsg = "Narration failed: " + err.Error()
		}
		return s, nil
	case "m":
		s.nav.ToggleMute()
		return s, nil
	case "n":
		err = s.nav.Dispatch(ctx, study.Reset{})
	default:
		return s, nil
	}

	if err != nil {
		// Out-of-range jumps and the like are simply ignored.
		return s, nil
	}
	return s, screen.FollowView(study.ViewPresentation, s.nav)
}
