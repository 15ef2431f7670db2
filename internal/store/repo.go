package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	SessionID string // only events of this session ("" = all)
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID  string
	Action     string // "start"
	Topic      string
	SlideCount int
}

// QuizResultData captures one graded quiz attempt.
type QuizResultData struct {
	SessionID string
	Topic     string
	Score     int
	Correct   int
	Total     int
	Tier      string
	Answers   []int // selected option per question, -1 when unanswered
}

// QuizResultRecord is a persisted quiz attempt.
type QuizResultRecord struct {
	Sequence  int64
	Timestamp time.Time
	QuizResultData
}

// EventRepo provides append and query access to session history.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendQuizResult records a graded quiz attempt.
	AppendQuizResult(ctx context.Context, data QuizResultData) error

	// QueryQuizResults returns quiz attempts, most recent first.
	QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultRecord, error)

	// CountSessions returns how many sessions have been started.
	CountSessions(ctx context.Context) (int, error)
}
