package results

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/eduvision/internal/quiz"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/study"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// testScreen finishes a quiz with the given answers and returns the
// results screen.
func testScreen(t *testing.T, answers ...int) (*ResultsScreen, *study.Navigator) {
	t.Helper()
	ctx := context.Background()
	nav := study.NewNavigator(nil)

	steps := []study.Action{
		study.Upload{Material: "Mitochondria are the powerhouse of the cell."},
		study.StartQuiz{},
	}
	for _, a := range answers {
		steps = append(steps, study.Answer{Option: a}, study.Advance{})
	}
	for _, a := range steps {
		if err := nav.Dispatch(ctx, a); err != nil {
			t.Fatalf("%s: %v", a.Name(), err)
		}
	}
	if nav.State().View != study.ViewResults {
		t.Fatalf("view = %v, want results", nav.State().View)
	}
	return New(nav), nav
}

func followed(t *testing.T, cmd tea.Cmd) study.View {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a view change")
	}
	msg, ok := cmd().(screen.ViewChangedMsg)
	if !ok {
		t.Fatal("expected ViewChangedMsg")
	}
	return msg.View
}

func TestTier(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    qz.Tier
	}{
		{"all correct", []int{0, 1, 2}, qz.TierMastered},
		{"two correct", []int{0, 1, 0}, qz.TierGoodEffort},
		{"none correct", []int{3, 3, 3}, qz.TierDontGiveUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testScreen(t, tt.answers...)
			if got := s.Tier(); got != tt.want {
				t.Errorf("tier = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReviewShortcut(t *testing.T) {
	s, nav := testScreen(t, 0, 1, 2)

	_, cmd := s.Update(keyPress('r'))
	if v := followed(t, cmd); v != study.ViewPresentation {
		t.Errorf("view = %v, want presentation", v)
	}
	if nav.State().CurrentSlide != 0 {
		t.Error("review should start at the first slide")
	}
}

func TestRetakeShortcut(t *testing.T) {
	s, nav := testScreen(t, 3, 3, 3)

	_, cmd := s.Update(keyPress('t'))
	if v := followed(t, cmd); v != study.ViewQuiz {
		t.Errorf("view = %v, want quiz", v)
	}
	if nav.State().Answers.Len() != 0 {
		t.Error("retake should clear answers")
	}
}

func TestNewSessionShortcut(t *testing.T) {
	s, _ := testScreen(t, 0, 1, 2)

	_, cmd := s.Update(keyPress('n'))
	if v := followed(t, cmd); v != study.ViewUpload {
		t.Errorf("view = %v, want upload", v)
	}
}

func TestScrollClamped(t *testing.T) {
	s, _ := testScreen(t, 0, 1, 2)

	s.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	if s.offset != 0 {
		t.Errorf("offset = %d, want 0", s.offset)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	if s.offset != 1 {
		t.Errorf("offset = %d, want 1", s.offset)
	}
}

func TestViewShowsScore(t *testing.T) {
	s, _ := testScreen(t, 0, 1, 0)

	out := s.View(80, 40)
	for _, want := range []string{"67%", "2 of 3 correct", qz.TierGoodEffort.Message()} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
