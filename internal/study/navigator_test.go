package study_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/narration"
	"github.com/abhisek/eduvision/internal/narration/mock"
	"github.com/abhisek/eduvision/internal/quiz"
	"github.com/abhisek/eduvision/internal/study"
)

type fakeRecorder struct {
	started []*deck.StudySession
	results []quiz.Result
	answers []quiz.Answers
	err     error
}

func (r *fakeRecorder) SessionStarted(_ context.Context, sess *deck.StudySession) error {
	r.started = append(r.started, sess)
	return r.err
}

func (r *fakeRecorder) QuizCompleted(_ context.Context, _ *deck.StudySession, answers quiz.Answers, res quiz.Result) error {
	r.answers = append(r.answers, answers)
	r.results = append(r.results, res)
	return r.err
}

func twelveSentences() string {
	var b strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&b, "Statement %02d explains something useful. ", i)
	}
	return b.String()
}

func newNavigator(t *testing.T) (*study.Navigator, *mock.Speaker, *fakeRecorder) {
	t.Helper()
	sp := &mock.Speaker{AutoStart: true}
	rec := &fakeRecorder{}
	nav := study.NewNavigator(narration.NewController(sp), study.WithRecorder(rec))
	require.NoError(t, nav.Dispatch(context.Background(), study.Upload{Material: twelveSentences()}))
	return nav, sp, rec
}

func TestNavigator_StartsAtUpload(t *testing.T) {
	nav := study.NewNavigator(nil)
	assert.Equal(t, study.ViewUpload, nav.State().View)
	assert.NoError(t, nav.Speak(context.Background()), "speak outside the presentation is a no-op")
}

func TestNavigator_RejectionLeavesState(t *testing.T) {
	nav, _, _ := newNavigator(t)
	before := nav.State()

	err := nav.Dispatch(context.Background(), study.StartQuiz{})
	assert.ErrorIs(t, err, study.ErrNotLastSlide)
	assert.Equal(t, before, nav.State())
}

func TestNavigator_NavigationCancelsNarration(t *testing.T) {
	ctx := context.Background()
	actions := []study.Action{
		study.Next{},
		study.Prev{},
		study.Jump{Index: 2},
		study.Reset{},
	}
	for _, a := range actions {
		t.Run(a.Name(), func(t *testing.T) {
			nav, sp, _ := newNavigator(t)
			require.NoError(t, nav.Dispatch(ctx, study.Next{}))

			require.NoError(t, nav.Speak(ctx))
			require.True(t, nav.Narrator().Playing())

			require.NoError(t, nav.Dispatch(ctx, a))
			assert.False(t, nav.Narrator().Playing())
			assert.False(t, nav.Narrator().Pending())
			assert.True(t, sp.Calls()[0].Playback.IsCancelled())
		})
	}
}

func TestNavigator_ClampedNextStillCancels(t *testing.T) {
	ctx := context.Background()
	nav, _, _ := newNavigator(t)
	require.NoError(t, nav.Dispatch(ctx, study.Jump{Index: 3}))

	require.NoError(t, nav.Speak(ctx))
	require.NoError(t, nav.Dispatch(ctx, study.Next{}))

	assert.Equal(t, 3, nav.State().CurrentSlide)
	assert.False(t, nav.Narrator().Playing())
}

func TestNavigator_StartQuizCancelsNarration(t *testing.T) {
	ctx := context.Background()
	nav, _, _ := newNavigator(t)
	require.NoError(t, nav.Dispatch(ctx, study.Jump{Index: 3}))
	require.NoError(t, nav.Speak(ctx))

	require.NoError(t, nav.StartQuizOrNext(ctx))
	assert.Equal(t, study.ViewQuiz, nav.State().View)
	assert.False(t, nav.Narrator().Pending())
}

func TestNavigator_MuteKeepsNarration(t *testing.T) {
	ctx := context.Background()
	nav, sp, _ := newNavigator(t)

	require.NoError(t, nav.Speak(ctx))
	nav.ToggleMute()

	assert.True(t, nav.Narrator().Playing())
	assert.True(t, nav.Narrator().Muted())
	assert.Equal(t, 0.0, sp.Calls()[0].Playback.Volume())
}

func TestNavigator_StartQuizOrNext(t *testing.T) {
	ctx := context.Background()
	nav, _, _ := newNavigator(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, nav.StartQuizOrNext(ctx))
		assert.Equal(t, i, nav.State().CurrentSlide)
	}
	require.NoError(t, nav.StartQuizOrNext(ctx))
	assert.Equal(t, study.ViewQuiz, nav.State().View)
}

func TestNavigator_RecordsMilestones(t *testing.T) {
	ctx := context.Background()
	nav, _, rec := newNavigator(t)

	require.Len(t, rec.started, 1)
	assert.Equal(t, nav.State().Session.ID, rec.started[0].ID)

	for _, a := range []study.Action{
		study.Jump{Index: 3}, study.StartQuiz{},
		study.Answer{Option: 0}, study.Advance{},
		study.Answer{Option: 1}, study.Advance{},
		study.Answer{Option: 2}, study.Advance{},
	} {
		require.NoError(t, nav.Dispatch(ctx, a))
	}

	assert.Equal(t, study.ViewResults, nav.State().View)
	require.Len(t, rec.results, 1)
	assert.Equal(t, 100, rec.results[0].Score)
	assert.Equal(t, 3, rec.answers[0].Len())
}

func TestNavigator_RecorderFailureDoesNotBlock(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	nav := study.NewNavigator(nil, study.WithRecorder(rec))

	require.NoError(t, nav.Dispatch(context.Background(), study.Upload{Material: twelveSentences()}))
	assert.Equal(t, study.ViewPresentation, nav.State().View)
}

func TestNavigator_Close(t *testing.T) {
	ctx := context.Background()
	nav, sp, _ := newNavigator(t)
	require.NoError(t, nav.Speak(ctx))

	nav.Close()
	assert.False(t, nav.Narrator().Pending())
	assert.True(t, sp.Calls()[0].Playback.IsCancelled())
}
