package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/ui/theme"
)

// ChoiceList renders the options of a multiple-choice question with a
// movable cursor. The chosen option is owned by the caller.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing is chosen
}

// NewChoiceList creates a list with the cursor on the chosen option, or on
// the first option when nothing is chosen yet.
func NewChoiceList(options []string, chosen int) ChoiceList {
	cursor := chosen
	if cursor < 0 {
		cursor = 0
	}
	return ChoiceList{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Update moves the cursor.
func (c ChoiceList) Update(msg tea.Msg) ChoiceList {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}
	return c
}

// View renders the options numbered from 1.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i == c.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, opt)

		switch {
		case i == c.Chosen:
			b.WriteString(theme.Selected.Render(line))
		case i == c.Cursor:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ReviewView renders the options after grading: the correct option in
// green and a wrong choice in red.
func ReviewView(options []string, chosen, correct int) string {
	var b strings.Builder
	for i, opt := range options {
		line := fmt.Sprintf("  %d) %s", i+1, opt)
		switch {
		case i == correct:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case i == chosen:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
