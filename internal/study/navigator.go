package study

import (
	"context"

	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/narration"
	"github.com/abhisek/eduvision/internal/quiz"
)

// Recorder persists session milestones. Implementations must not block
// navigation; failures are logged and ignored.
type Recorder interface {
	SessionStarted(ctx context.Context, sess *deck.StudySession) error
	QuizCompleted(ctx context.Context, sess *deck.StudySession, answers quiz.Answers, res quiz.Result) error
}

// Navigator owns the state of the active study session and applies the side
// effects of transitions: narration is cancelled whenever the visible slide
// changes or the session is discarded, and milestones go to the Recorder.
type Navigator struct {
	state    State
	narrator *narration.Controller
	recorder Recorder
	log      *logger.Logger
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithRecorder enables persistence of session milestones.
func WithRecorder(r Recorder) NavigatorOption {
	return func(n *Navigator) { n.recorder = r }
}

// WithLogger sets the navigator's logger.
func WithLogger(l *logger.Logger) NavigatorOption {
	return func(n *Navigator) { n.log = l }
}

// NewNavigator starts in the upload view. A nil narrator disables narration.
func NewNavigator(narrator *narration.Controller, opts ...NavigatorOption) *Navigator {
	if narrator == nil {
		narrator = narration.NewController(nil)
	}
	n := &Navigator{
		state:    State{View: ViewUpload},
		narrator: narrator,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// State returns the current state.
func (n *Navigator) State() State {
	return n.state
}

// Narrator returns the narration controller driven by the navigator.
func (n *Navigator) Narrator() *narration.Controller {
	return n.narrator
}

// Dispatch applies a to the current state. On rejection the state is left
// untouched and a *RejectedError is returned.
func (n *Navigator) Dispatch(ctx context.Context, a Action) error {
	prev := n.state
	next, err := Transition(prev, a)
	if err != nil {
		n.log.Debug("action rejected", "action", a.Name(), "view", prev.View.String(), "error", err)
		return err
	}
	n.state = next

	switch a.(type) {
	case Next, Prev, Jump, Reset:
		n.narrator.CancelOnNavigate()
	default:
		if prev.View != next.View && (prev.View == ViewPresentation || next.View == ViewPresentation) {
			// The visible slide appeared or went away.
			n.narrator.CancelOnNavigate()
		}
	}

	switch {
	case prev.View == ViewUpload && next.View == ViewPresentation:
		n.log.Info("session created",
			"session", next.Session.ID,
			"topic", next.Session.Topic,
			"slides", len(next.Session.Slides))
		if n.recorder != nil {
			if err := n.recorder.SessionStarted(ctx, next.Session); err != nil {
				n.log.Warn("record session start failed", "session", next.Session.ID, "error", err)
			}
		}

	case prev.View == ViewQuiz && next.View == ViewResults:
		n.log.Info("quiz completed",
			"session", next.Session.ID,
			"score", next.Result.Score,
			"tier", quiz.Motivation(next.Result.Score).String())
		if n.recorder != nil {
			if err := n.recorder.QuizCompleted(ctx, next.Session, next.Answers, *next.Result); err != nil {
				n.log.Warn("record quiz result failed", "session", next.Session.ID, "error", err)
			}
		}
	}

	if prev.View != next.View {
		n.log.Debug("view changed", "from", prev.View.String(), "to", next.View.String())
	}
	return nil
}

// Speak toggles narration of the visible slide. It does nothing outside the
// presentation.
func (n *Navigator) Speak(ctx context.Context) error {
	slide, ok := n.state.Slide()
	if !ok {
		return nil
	}
	return n.narrator.Speak(ctx, slide)
}

// ToggleMute flips narration mute.
func (n *Navigator) ToggleMute() {
	n.narrator.ToggleMute()
}

// StartQuizOrNext advances the presentation: it starts the quiz on the last
// slide and shows the next slide otherwise.
func (n *Navigator) StartQuizOrNext(ctx context.Context) error {
	if n.state.OnLastSlide() {
		return n.Dispatch(ctx, StartQuiz{})
	}
	return n.Dispatch(ctx, Next{})
}

// Close tears the session down, cancelling any narration in flight.
func (n *Navigator) Close() {
	n.narrator.Close()
}
