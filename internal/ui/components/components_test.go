package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pickedMsg string

func pick(name string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return pickedMsg(name) }
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Review", Action: pick("review")},
		{Label: "Also locked", Disabled: true},
		{Label: "Retake", Action: pick("retake")},
	})
	if m.Selected != 1 {
		t.Fatalf("selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("selected = %d, want 3 (end of list)", m.Selected)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil || cmd() != pickedMsg("retake") {
		t.Error("enter should activate the selected item")
	}
}

func TestMenu_Shortcut(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Review", Key: "r", Action: pick("review")},
		{Label: "New", Key: "n", Action: pick("new")},
		{Label: "Off", Key: "o", Action: pick("off"), Disabled: true},
	})

	m, cmd := m.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if m.Selected != 1 {
		t.Errorf("selected = %d, want 1", m.Selected)
	}
	if cmd == nil || cmd() != pickedMsg("new") {
		t.Error("shortcut should activate its item")
	}

	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'o', Text: "o"}); cmd != nil {
		t.Error("disabled item should not activate")
	}
	if !strings.Contains(m.View(), "[r] Review") {
		t.Error("view should show shortcuts")
	}
}

func TestChoiceList_Cursor(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c"}, -1)
	if c.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", c.Cursor)
	}
	c = c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", c.Cursor)
	}
	for i := 0; i < 4; i++ {
		c = c.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	}
	if c.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", c.Cursor)
	}

	c = NewChoiceList([]string{"a", "b", "c"}, 1)
	if c.Cursor != 1 || c.Chosen != 1 {
		t.Errorf("list = %+v", c)
	}
	if !strings.Contains(c.View(), "2) ● b") {
		t.Error("chosen option should be marked")
	}
}

func TestReviewView(t *testing.T) {
	out := ReviewView([]string{"right", "wrong", "other"}, 1, 0)
	if !strings.Contains(out, "1) right  ✓") {
		t.Error("correct option should be ticked")
	}
	if !strings.Contains(out, "2) wrong  ✗") {
		t.Error("wrong choice should be crossed")
	}
}

func TestDots(t *testing.T) {
	out := Dots(1, 4)
	if got := strings.Count(out, "●"); got != 4 {
		t.Errorf("dots = %d, want 4", got)
	}
	if !strings.Contains(out, "4") {
		t.Error("dots should be numbered")
	}
	if Dots(0, 0) != "" {
		t.Error("no steps should render nothing")
	}
}

func TestStepProgress(t *testing.T) {
	p := StepProgress("Slide", 1, 4, 40)
	if p.Percent != 0.5 {
		t.Errorf("percent = %v, want 0.5", p.Percent)
	}
	if !strings.Contains(p.View(), "50%") {
		t.Error("view should show percent")
	}
	if StepProgress("x", 0, 0, 40).Percent != 0 {
		t.Error("empty total should be zero")
	}
}

func TestButton(t *testing.T) {
	if NewButton("Start Quiz", true).Press() {
		t.Error("disabled button should not press")
	}
	b := NewButton("Start Quiz", false)
	if !b.Press() {
		t.Error("enabled button should press")
	}
	if !strings.Contains(b.View(), "Start Quiz") {
		t.Error("view should show the label")
	}
}
