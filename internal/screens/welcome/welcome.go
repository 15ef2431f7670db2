package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bookEnd      = 400 * time.Millisecond
	bannerEnd    = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const bookArt = `   ____________________
  /        /         /|
 /  ≡≡≡   /  ≡≡≡    / |
/________/_________/  |
|        |         |  /
|________|_________| /`

// page frames flicker beside the book
var pageFrames = []string{"✎", "✦"}

type tickMsg time.Time

// WelcomeScreen plays a short splash before handing over to the upload screen.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that is replaced by the screen next builds.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	s := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(bookArt)

	if w.elapsed >= bookEnd {
		mark := pageFrames[w.tickCount%len(pageFrames)]
		accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(mark)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 2 {
			lines[2] = lines[2] + "  " + accent
		}
		rendered = strings.Join(lines, "\n")
	}

	sections := []string{rendered}

	if w.elapsed >= bannerEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Turn your notes into slides and a quiz."),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("press any key to start"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
