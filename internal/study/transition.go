package study

import (
	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/quiz"
)

// Transition applies a to s and returns the resulting state. A rejected
// action returns s unchanged together with a *RejectedError.
func Transition(s State, a Action) (State, error) {
	switch a := a.(type) {
	case Upload:
		if s.View != ViewUpload {
			return reject(s, a, ErrWrongView)
		}
		sess, err := deck.NewSession(a.Material)
		if err != nil {
			return reject(s, a, err)
		}
		return State{View: ViewPresentation, Session: sess}, nil

	case Next:
		if s.View != ViewPresentation {
			return reject(s, a, ErrWrongView)
		}
		if s.CurrentSlide < s.Session.LastSlide() {
			s.CurrentSlide++
		}
		return s, nil

	case Prev:
		if s.View != ViewPresentation {
			return reject(s, a, ErrWrongView)
		}
		if s.CurrentSlide > 0 {
			s.CurrentSlide--
		}
		return s, nil

	case Jump:
		if s.View != ViewPresentation {
			return reject(s, a, ErrWrongView)
		}
		if a.Index < 0 || a.Index > s.Session.LastSlide() {
			return reject(s, a, ErrSlideOutOfRange)
		}
		s.CurrentSlide = a.Index
		return s, nil

	case StartQuiz:
		if s.View != ViewPresentation {
			return reject(s, a, ErrWrongView)
		}
		if !s.OnLastSlide() {
			return reject(s, a, ErrNotLastSlide)
		}
		return restartQuiz(s), nil

	case Answer:
		if s.View != ViewQuiz {
			return reject(s, a, ErrWrongView)
		}
		q := s.Session.Quiz[s.CurrentQuestion]
		if a.Option < 0 || a.Option >= len(q.Options) {
			return reject(s, a, ErrOptionOutOfRange)
		}
		s.Answers = s.Answers.Clone()
		s.Answers.Set(s.CurrentQuestion, a.Option)
		return s, nil

	case Advance:
		if s.View != ViewQuiz {
			return reject(s, a, ErrWrongView)
		}
		if !s.Answers.Has(s.CurrentQuestion) {
			return reject(s, a, ErrUnanswered)
		}
		if s.CurrentQuestion < len(s.Session.Quiz)-1 {
			s.CurrentQuestion++
			return s, nil
		}
		res := quiz.Score(s.Session.Quiz, s.Answers)
		s.Result = &res
		s.View = ViewResults
		return s, nil

	case Review:
		if s.View != ViewResults {
			return reject(s, a, ErrWrongView)
		}
		s.View = ViewPresentation
		s.CurrentSlide = 0
		return s, nil

	case Retake:
		if s.View != ViewResults {
			return reject(s, a, ErrWrongView)
		}
		return restartQuiz(s), nil

	case Reset:
		return State{View: ViewUpload}, nil

	default:
		return reject(s, a, ErrUnknownAction)
	}
}

func restartQuiz(s State) State {
	s.View = ViewQuiz
	s.CurrentQuestion = 0
	s.Answers = quiz.Answers{}
	s.Result = nil
	return s
}
