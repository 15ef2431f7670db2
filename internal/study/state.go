package study

import (
	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/quiz"
)

// View is the screen the learner is on.
type View int

const (
	ViewUpload       View = iota // Waiting for study material
	ViewPresentation             // Stepping through slides
	ViewQuiz                     // Answering quiz questions
	ViewResults                  // Reviewing the score
)

func (v View) String() string {
	switch v {
	case ViewUpload:
		return "upload"
	case ViewPresentation:
		return "presentation"
	case ViewQuiz:
		return "quiz"
	case ViewResults:
		return "results"
	default:
		return "unknown"
	}
}

// State is the full navigation state of one study session.
// Transition never mutates a State in place; it returns a new one.
type State struct {
	View View

	// Session is nil only in ViewUpload.
	Session *deck.StudySession

	// CurrentSlide indexes Session.Slides while presenting.
	CurrentSlide int

	// CurrentQuestion indexes Session.Quiz while in the quiz.
	CurrentQuestion int

	// Answers holds the learner's selections by question index.
	Answers quiz.Answers

	// Result is set once the quiz has been graded.
	Result *quiz.Result
}

// Slide returns the visible slide. ok is false outside the presentation.
func (s State) Slide() (slide deck.Slide, ok bool) {
	if s.View != ViewPresentation || s.Session == nil {
		return deck.Slide{}, false
	}
	return s.Session.Slides[s.CurrentSlide], true
}

// Question returns the visible quiz question. ok is false outside the quiz.
func (s State) Question() (q quiz.Question, ok bool) {
	if s.View != ViewQuiz || s.Session == nil {
		return quiz.Question{}, false
	}
	return s.Session.Quiz[s.CurrentQuestion], true
}

// OnLastSlide reports whether the final slide is visible.
func (s State) OnLastSlide() bool {
	return s.View == ViewPresentation && s.Session != nil && s.CurrentSlide == s.Session.LastSlide()
}

// OnLastQuestion reports whether the final quiz question is visible.
func (s State) OnLastQuestion() bool {
	return s.View == ViewQuiz && s.Session != nil && s.CurrentQuestion == len(s.Session.Quiz)-1
}

// CanAdvance reports whether the visible question has an answer.
func (s State) CanAdvance() bool {
	return s.View == ViewQuiz && s.Answers.Has(s.CurrentQuestion)
}
