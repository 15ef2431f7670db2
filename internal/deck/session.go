package deck

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/eduvision/internal/quiz"
)

var (
	// ErrEmptyMaterial is returned when the study text is blank.
	ErrEmptyMaterial = errors.New("study material is empty")

	// ErrNoSentences is returned when no fragment of the text is long enough
	// to become a sentence, so no slide could be built.
	ErrNoSentences = errors.New("study material has no sentences longer than 10 characters")
)

// StudySession is the full derived artifact for one piece of study text.
type StudySession struct {
	ID     string          `json:"id"`
	Topic  string          `json:"topic"`
	Slides []Slide         `json:"slides"`
	Quiz   []quiz.Question `json:"quiz"`
}

// NewSession segments material into slides and attaches the fixed quiz.
// Blank material and material without qualifying sentences are rejected,
// so a returned session always has at least one slide.
func NewSession(material string) (*StudySession, error) {
	if strings.TrimSpace(material) == "" {
		return nil, ErrEmptyMaterial
	}

	sentences := Sentences(material)
	if len(sentences) == 0 {
		return nil, ErrNoSentences
	}

	return &StudySession{
		ID:     uuid.New().String(),
		Topic:  Topic(sentences),
		Slides: segmentSentences(sentences),
		Quiz:   quiz.Generate(),
	}, nil
}

// LastSlide returns the index of the final slide.
func (s *StudySession) LastSlide() int {
	return len(s.Slides) - 1
}
