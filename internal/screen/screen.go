package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/study"
	"github.com/abhisek/eduvision/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ViewChangedMsg tells the app that the navigator moved to another view and
// the screen for View should become active.
type ViewChangedMsg struct {
	View study.View
}

// FollowView returns a command announcing the navigator's view when it
// differs from from, or nil when the view is unchanged.
func FollowView(from study.View, nav *study.Navigator) tea.Cmd {
	to := nav.State().View
	if to == from {
		return nil
	}
	return func() tea.Msg {
		return ViewChangedMsg{View: to}
	}
}
