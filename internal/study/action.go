package study

import (
	"errors"
	"fmt"
)

// Action is a learner command applied to a State.
type Action interface {
	Name() string
}

type (
	// Upload builds a session from study material.
	Upload struct{ Material string }

	// Next shows the following slide.
	Next struct{}

	// Prev shows the preceding slide.
	Prev struct{}

	// Jump shows the slide at Index.
	Jump struct{ Index int }

	// StartQuiz leaves the last slide for the first quiz question.
	StartQuiz struct{}

	// Answer selects Option for the visible question.
	Answer struct{ Option int }

	// Advance moves past the visible question, grading after the last one.
	Advance struct{}

	// Review returns from the results to the first slide.
	Review struct{}

	// Retake restarts the quiz from the results.
	Retake struct{}

	// Reset discards the session and returns to upload.
	Reset struct{}
)

func (Upload) Name() string    { return "upload" }
func (Next) Name() string      { return "next" }
func (Prev) Name() string      { return "prev" }
func (Jump) Name() string      { return "jump" }
func (StartQuiz) Name() string { return "start-quiz" }
func (Answer) Name() string    { return "answer" }
func (Advance) Name() string   { return "advance" }
func (Review) Name() string    { return "review" }
func (Retake) Name() string    { return "retake" }
func (Reset) Name() string     { return "reset" }

var (
	ErrWrongView        = errors.New("action not available in this view")
	ErrNotLastSlide     = errors.New("quiz can only start from the last slide")
	ErrSlideOutOfRange  = errors.New("slide index out of range")
	ErrUnanswered       = errors.New("current question has no answer")
	ErrOptionOutOfRange = errors.New("answer option out of range")
	ErrUnknownAction    = errors.New("unknown action")
)

// RejectedError reports an action that the state machine refused.
// The state is unchanged when an action is rejected.
type RejectedError struct {
	Action string
	View   View
	Err    error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s rejected in %s view: %v", e.Action, e.View, e.Err)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

func reject(s State, a Action, err error) (State, error) {
	return s, &RejectedError{Action: a.Name(), View: s.View, Err: err}
}
