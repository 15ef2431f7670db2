package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= last {
			t.Errorf("sequence %d not greater than %d", n, last)
		}
		last = n
	}
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	n, err := repo.CountSessions(ctx)
	if err != nil {
		t.Fatalf("count (empty): %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}

	for _, id := range []string{"s1", "s2"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:  id,
			Action:     "start",
			Topic:      "Cells...",
			SlideCount: 3,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "reset"}); err != nil {
		t.Fatalf("append reset: %v", err)
	}

	n, err = repo.CountSessions(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestQuizResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	inputs := []QuizResultData{
		{SessionID: "a", Topic: "First", Score: 33, Correct: 1, Total: 3, Tier: "dont-give-up", Answers: []int{0, -1, 0}},
		{SessionID: "b", Topic: "Second", Score: 100, Correct: 3, Total: 3, Tier: "mastered", Answers: []int{0, 1, 2}},
		{SessionID: "a", Topic: "First", Score: 67, Correct: 2, Total: 3, Tier: "good-effort"},
	}
	for _, in := range inputs {
		if err := repo.AppendQuizResult(ctx, in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryQuizResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d results, want 3", len(all))
	}
	// Most recent first.
	if all[0].Score != 67 || all[2].Score != 33 {
		t.Errorf("unexpected order: %d, %d, %d", all[0].Score, all[1].Score, all[2].Score)
	}
	if all[0].Sequence <= all[1].Sequence {
		t.Errorf("sequence not descending: %d, %d", all[0].Sequence, all[1].Sequence)
	}
	if all[2].Timestamp.Before(before) {
		t.Errorf("timestamp %v too old", all[2].Timestamp)
	}
	if got := all[2].Answers; len(got) != 3 || got[1] != -1 {
		t.Errorf("answers = %v, want [0 -1 0]", got)
	}
	if len(all[0].Answers) != 0 {
		t.Errorf("nil answers should round-trip as empty, got %v", all[0].Answers)
	}

	limited, err := repo.QueryQuizResults(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 1 || limited[0].Score != 67 {
		t.Errorf("limit 1 = %+v", limited)
	}

	forA, err := repo.QueryQuizResults(ctx, QueryOpts{SessionID: "a"})
	if err != nil {
		t.Fatalf("query session: %v", err)
	}
	if len(forA) != 2 {
		t.Errorf("session a has %d results, want 2", len(forA))
	}
}

func TestRecorder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	rec := NewRecorder(repo)
	ctx := context.Background()

	sess := &deck.StudySession{
		ID:     "sess-1",
		Topic:  "Photosynthesis...",
		Slides: make([]deck.Slide, 2),
		Quiz:   quiz.Generate(),
	}
	if err := rec.SessionStarted(ctx, sess); err != nil {
		t.Fatalf("session started: %v", err)
	}

	answers := quiz.NewAnswers(0, 3)
	res := quiz.Score(sess.Quiz, answers)
	if err := rec.QuizCompleted(ctx, sess, answers, res); err != nil {
		t.Fatalf("quiz completed: %v", err)
	}

	n, err := repo.CountSessions(ctx)
	if err != nil || n != 1 {
		t.Errorf("count = %d, %v; want 1", n, err)
	}

	got, err := repo.QueryQuizResults(ctx, QueryOpts{SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	r := got[0]
	if r.Score != 33 || r.Correct != 1 || r.Total != 3 {
		t.Errorf("result = %+v", r.QuizResultData)
	}
	if r.Tier != "dont-give-up" {
		t.Errorf("tier = %q", r.Tier)
	}
	want := []int{0, 3, -1}
	for i := range want {
		if r.Answers[i] != want[i] {
			t.Errorf("answers = %v, want %v", r.Answers, want)
			break
		}
	}
}
