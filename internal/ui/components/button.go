package components

import (
	"github.com/abhisek/eduvision/internal/ui/theme"
)

// Button is a styled button. A disabled button renders dimmed and its
// Press reports false.
type Button struct {
	Label    string
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label string, disabled bool) Button {
	return Button{
		Label:    label,
		Disabled: disabled,
	}
}

// Press reports whether pressing the button should take effect.
func (b Button) Press() bool {
	return !b.Disabled
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Disabled {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}
