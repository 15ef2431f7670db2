package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/store"
)

type fakeRepo struct {
	results  []store.QuizResultRecord
	sessions int
	err      error
	opts     store.QueryOpts
}

func (r *fakeRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (r *fakeRepo) AppendQuizResult(context.Context, store.QuizResultData) error     { return nil }

func (r *fakeRepo) CountSessions(context.Context) (int, error) {
	return r.sessions, r.err
}

func (r *fakeRepo) QueryQuizResults(_ context.Context, opts store.QueryOpts) ([]store.QuizResultRecord, error) {
	r.opts = opts
	return r.results, r.err
}

func sampleRepo() *fakeRepo {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &fakeRepo{
		sessions: 4,
		results: []store.QuizResultRecord{
			{Sequence: 9, Timestamp: ts, QuizResultData: store.QuizResultData{
				SessionID: "b", Topic: "Photosynthesis", Score: 100, Correct: 3, Total: 3,
				Tier: "mastered", Answers: []int{0, 1, 2},
			}},
			{Sequence: 4, Timestamp: ts.Add(-time.Hour), QuizResultData: store.QuizResultData{
				SessionID: "a", Topic: "Cells", Score: 33, Correct: 1, Total: 3,
				Tier: "dont-give-up", Answers: []int{0, -1, 3},
			}},
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	s.Update(cmd())
}

func TestLoad(t *testing.T) {
	repo := sampleRepo()
	s := New(repo)
	load(t, s)

	if !s.loaded {
		t.Fatal("expected loaded")
	}
	if repo.opts.Limit != Limit {
		t.Errorf("limit = %d, want %d", repo.opts.Limit, Limit)
	}
	out := s.View(100, 30)
	for _, want := range []string{"4 sessions started, 2 quizzes completed", "Photosynthesis", "100%", "1/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLoadError(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("database is locked")})
	load(t, s)

	if !strings.Contains(s.View(80, 20), "database is locked") {
		t.Error("view should show the error")
	}
}

func TestEmpty(t *testing.T) {
	s := New(&fakeRepo{})
	load(t, s)

	if !strings.Contains(s.View(80, 20), "No quizzes yet") {
		t.Error("expected empty state")
	}
}

func TestNavigateAndExpand(t *testing.T) {
	s := New(sampleRepo())
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[1] {
		t.Fatal("enter should expand the selected row")
	}
	if !strings.Contains(s.View(100, 30), "Q2: -") {
		t.Error("expanded row should list answers")
	}
}

func TestEscPops(t *testing.T) {
	s := New(sampleRepo())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAnswersLine(t *testing.T) {
	if got := answersLine([]int{0, -1, 3}); got != "Q1: 1  Q2: -  Q3: 4" {
		t.Errorf("answersLine = %q", got)
	}
}
