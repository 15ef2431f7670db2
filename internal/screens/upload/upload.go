package upload

import (
	"context"
	"errors"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/source"
	"github.com/abhisek/eduvision/internal/study"
	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/layout"
)

// MaterialLoadedMsg carries study material read from disk, either on
// request or because a watched file changed.
type MaterialLoadedMsg struct {
	Path string
	Text string
	Err  error
}

// processedMsg fires once the processing delay has elapsed.
type processedMsg struct {
	Material string
}

type focus int

const (
	focusText focus = iota
	focusPath
)

// UploadScreen collects study material by paste or from a file and turns
// it into a study session.
type UploadScreen struct {
	nav         *study.Navigator
	delay       time.Duration
	openHistory func() screen.Screen

	area       textarea.Model
	path       components.TextInput
	spinner    spinner.Model
	focus      focus
	processing bool
	errMsg     string
	notice     string
}

var _ screen.Screen = (*UploadScreen)(nil)
var _ screen.KeyHintProvider = (*UploadScreen)(nil)

// New creates the upload screen. material prefills the text area.
// openHistory may be nil when history is disabled.
func New(nav *study.Navigator, delay time.Duration, material string, openHistory func() screen.Screen) *UploadScreen {
	area := textarea.New()
	area.Placeholder = "Paste your study material here..."
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.MaxHeight = 0
	area.SetWidth(60)
	area.SetHeight(10)
	area.SetValue(material)

	return &UploadScreen{
		nav:         nav,
		delay:       delay,
		openHistory: openHistory,
		area:        area,
		path:        components.NewTextInput("notes.md", 256),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (s *UploadScreen) Init() tea.Cmd {
	return s.area.Focus()
}

func (s *UploadScreen) Title() string {
	return "New Session"
}

func (s *UploadScreen) KeyHints() []layout.KeyHint {
	if s.processing {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	hints := []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Process"},
		{Key: "Tab", Description: "Text/File"},
	}
	if s.focus == focusPath {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Load file"})
	}
	if s.openHistory != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// CanProcess reports whether the text area holds any material.
func (s *UploadScreen) CanProcess() bool {
	return strings.TrimSpace(s.area.Value()) != ""
}

func (s *UploadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cw := components.ContentWidth(msg.Width)
		s.area.SetWidth(cw - 4)
		s.area.SetHeight(textHeight(msg.Height))
		return s, nil

	case MaterialLoadedMsg:
		return s.handleLoaded(msg)

	case processedMsg:
		return s.handleProcessed(msg)

	case spinner.TickMsg:
		if !s.processing {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.processing {
			return s, nil
		}
		return s.handleKey(msg)
	}

	return s.forward(msg)
}

func (s *UploadScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.toggleFocus()
	case "ctrl+s":
		return s, s.process()
	case "ctrl+l":
		if s.openHistory == nil {
			return s, nil
		}
		next := s.openHistory()
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "enter":
		if s.focus == focusPath {
			return s, loadFile(strings.TrimSpace(s.path.Value()))
		}
	}
	return s.forward(msg)
}

func (s *UploadScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.focus == focusPath {
		s.path, cmd = s.path.Update(msg)
	} else {
		s.area, cmd = s.area.Update(msg)
	}
	return s, cmd
}

func (s *UploadScreen) toggleFocus() tea.Cmd {
	if s.focus == focusText {
		s.focus = focusPath
		s.area.Blur()
		return s.path.Focus()
	}
	s.focus = focusText
	s.path.Blur()
	return s.area.Focus()
}

// process starts the cosmetic processing delay. Blank material is ignored.
func (s *UploadScreen) process() tea.Cmd {
	if !s.CanProcess() {
		s.errMsg = "Paste some text or load a file first."
		return nil
	}
	s.processing = true
	s.errMsg = ""
	material := s.area.Value()

	if s.delay <= 0 {
		return func() tea.Msg { return processedMsg{Material: material} }
	}
	return tea.Batch(s.spinner.Tick, tea.Tick(s.delay, func(time.Time) tea.Msg {
		return processedMsg{Material: material}
	}))
}

func (s *UploadScreen) handleProcessed(msg processedMsg) (screen.Screen, tea.Cmd) {
	s.processing = false
	if err := s.nav.Dispatch(context.Background(), study.Upload{Material: msg.Material}); err != nil {
		s.errMsg = describe(err)
		return s, nil
	}
	return s, screen.FollowView(study.ViewUpload, s.nav)
}

func (s *UploadScreen) handleLoaded(msg MaterialLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Keep whatever text is already there.
		s.errMsg = describe(msg.Err)
		s.path.Submit(false)
		return s, nil
	}
	s.area.SetValue(msg.Text)
	s.errMsg = ""
	s.notice = "Loaded " + msg.Path
	s.path.Submit(true)
	return s, nil
}

func loadFile(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		text, err := source.Load(path)
		return MaterialLoadedMsg{Path: path, Text: text, Err: err}
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, deck.ErrEmptyMaterial):
		return "Paste some text or load a file first."
	case errors.Is(err, deck.ErrNoSentences):
		return "No sentences long enough to study were found. Try a longer text."
	case errors.Is(err, source.ErrUnsupportedType):
		return "Only .txt and .md files are supported."
	case errors.Is(err, source.ErrNotUTF8):
		return "That file is not UTF-8 text."
	default:
		return err.Error()
	}
}

func textHeight(total int) int {
	h := layout.ContentHeight(total) - 12
	if h < 3 {
		h = 3
	}
	return h
}
