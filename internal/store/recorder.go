package store

import (
	"context"

	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/quiz"
	"github.com/abhisek/eduvision/internal/study"
)

// Recorder adapts an EventRepo to the navigator's study.Recorder.
type Recorder struct {
	repo EventRepo
}

var _ study.Recorder = (*Recorder)(nil)

// NewRecorder creates a Recorder writing to repo.
func NewRecorder(repo EventRepo) *Recorder {
	return &Recorder{repo: repo}
}

func (r *Recorder) SessionStarted(ctx context.Context, sess *deck.StudySession) error {
	return r.repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  sess.ID,
		Action:     "start",
		Topic:      sess.Topic,
		SlideCount: len(sess.Slides),
	})
}

func (r *Recorder) QuizCompleted(ctx context.Context, sess *deck.StudySession, answers quiz.Answers, res quiz.Result) error {
	return r.repo.AppendQuizResult(ctx, QuizResultData{
		SessionID: sess.ID,
		Topic:     sess.Topic,
		Score:     res.Score,
		Correct:   res.Correct,
		Total:     res.Total,
		Tier:      quiz.Motivation(res.Score).String(),
		Answers:   answers.Slice(len(sess.Quiz)),
	})
}
