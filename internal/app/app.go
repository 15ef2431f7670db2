package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/narration"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/screens/history"
	"github.com/abhisek/eduvision/internal/screens/presentation"
	"github.com/abhisek/eduvision/internal/screens/quiz"
	"github.com/abhisek/eduvision/internal/screens/results"
	"github.com/abhisek/eduvision/internal/screens/upload"
	"github.com/abhisek/eduvision/internal/screens/welcome"
	"github.com/abhisek/eduvision/internal/source"
	"github.com/abhisek/eduvision/internal/store"
	"github.com/abhisek/eduvision/internal/study"
	"github.com/abhisek/eduvision/internal/ui/layout"
)

// Options holds dependencies for the TUI.
type Options struct {
	// Speaker narrates slides. Nil disables narration.
	Speaker narration.Speaker

	// EventRepo backs quiz history. Nil disables history.
	EventRepo store.EventRepo

	Logger *logger.Logger

	// ProcessingDelay is shown between submitting material and the first slide.
	ProcessingDelay time.Duration

	// Material prefills the upload screen.
	Material string

	// WatchPath, when set, reloads the upload text whenever the file changes.
	WatchPath string

	// Splash shows the welcome animation first.
	Splash bool
}

// narrationMsg carries a speaker lifecycle event onto the update loop.
type narrationMsg narration.Event

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	nav    *study.Navigator
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the upload screen, or on
// the welcome splash when enabled.
func newAppModel(nav *study.Navigator, opts Options) AppModel {
	m := AppModel{nav: nav, opts: opts}
	if opts.Splash {
		m.router = router.New(welcome.New(func() screen.Screen {
			return m.uploadScreen(opts.Material)
		}))
	} else {
		m.router = router.New(m.uploadScreen(opts.Material))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case narrationMsg:
		m.nav.Narrator().Handle(narration.Event(msg))
		return m, nil

	case screen.ViewChangedMsg:
		next := m.screenFor(msg.View)
		cmd := m.router.Reset(next)
		if m.width > 0 {
			// Let the new screen size itself.
			size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
			return m, tea.Batch(cmd, func() tea.Msg { return size })
		}
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.nav.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// screenFor builds the screen that renders view.
func (m AppModel) screenFor(view study.View) screen.Screen {
	switch view {
	case study.ViewPresentation:
		return presentation.New(m.nav)
	case study.ViewQuiz:
		return quiz.New(m.nav)
	case study.ViewResults:
		return results.New(m.nav)
	default:
		return m.uploadScreen("")
	}
}

func (m AppModel) uploadScreen(material string) screen.Screen {
	var openHistory func() screen.Screen
	if m.opts.EventRepo != nil {
		repo := m.opts.EventRepo
		openHistory = func() screen.Screen { return history.New(repo) }
	}
	return upload.New(m.nav, m.opts.ProcessingDelay, material, openHistory)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// status summarises the session for the header.
func (m AppModel) status() string {
	st := m.nav.State()
	var s string
	switch st.View {
	case study.ViewPresentation:
		s = fmt.Sprintf("Slide %d/%d", st.CurrentSlide+1, len(st.Session.Slides))
	case study.ViewQuiz:
		s = fmt.Sprintf("Q %d/%d", st.CurrentQuestion+1, len(st.Session.Quiz))
	case study.ViewResults:
		s = fmt.Sprintf("Score %d%%", st.Result.Score)
	}
	if m.nav.Narrator().Playing() {
		s = "♪ " + s
	}
	return s
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var p *tea.Program
	narrator := narration.NewController(opts.Speaker,
		narration.WithLogger(log),
		narration.WithDelivery(func(ev narration.Event) {
			// Speakers notify from their own goroutines.
			if p != nil {
				p.Send(narrationMsg(ev))
			}
		}),
	)

	navOpts := []study.NavigatorOption{study.WithLogger(log)}
	if opts.EventRepo != nil {
		navOpts = append(navOpts, study.WithRecorder(store.NewRecorder(opts.EventRepo)))
	}
	nav := study.NewNavigator(narrator, navOpts...)
	defer nav.Close()

	p = tea.NewProgram(newAppModel(nav, opts))

	if opts.WatchPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		path := opts.WatchPath
		w, err := source.NewWatcher(path, func(text string, err error) {
			p.Send(upload.MaterialLoadedMsg{Path: path, Text: text, Err: err})
		}, log)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer w.Stop()
		go func() {
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("material watcher stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
