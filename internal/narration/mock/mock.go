// Package mock provides a test double for the narration.Speaker interface.
//
// The mock never produces audio. Each Speak call is recorded together with
// its notify callback so tests can fire start and end events at the moment
// of their choosing:
//
//	sp := &mock.Speaker{}
//	ctrl := narration.NewController(sp)
//	_ = ctrl.Speak(ctx, slide)
//	sp.Start(0)  // playback began
//	sp.Finish(0) // natural completion
package mock

import (
	"context"
	"sync"

	"github.com/abhisek/eduvision/internal/narration"
)

// Call records one invocation of Speak.
type Call struct {
	Utterance narration.Utterance
	Playback  *Playback
	notify    func(narration.EventKind)
}

// Speaker is a mock implementation of narration.Speaker.
type Speaker struct {
	mu sync.Mutex

	// AutoStart emits EventStart synchronously from within Speak.
	AutoStart bool

	// Err, if non-nil, is returned from Speak instead of starting playback.
	Err error

	// Unsupported makes Speak behave like an environment without speech.
	Unsupported bool

	calls []*Call
}

var _ narration.Speaker = (*Speaker)(nil)

func (s *Speaker) Speak(_ context.Context, u narration.Utterance, notify func(narration.EventKind)) (narration.Playback, error) {
	s.mu.Lock()
	if s.Err != nil {
		s.mu.Unlock()
		return nil, s.Err
	}
	if s.Unsupported {
		s.mu.Unlock()
		return nil, nil
	}
	pb := &Playback{Volumes: []float64{u.Volume}}
	s.calls = append(s.calls, &Call{Utterance: u, Playback: pb, notify: notify})
	autoStart := s.AutoStart
	s.mu.Unlock()

	if autoStart {
		notify(narration.EventStart)
	}
	return pb, nil
}

// Calls returns a snapshot of all recorded Speak calls.
func (s *Speaker) Calls() []*Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// Start emits EventStart for the i-th call.
func (s *Speaker) Start(i int) {
	s.emit(i, narration.EventStart)
}

// Finish emits EventEnd for the i-th call, as if playback completed.
func (s *Speaker) Finish(i int) {
	s.emit(i, narration.EventEnd)
}

func (s *Speaker) emit(i int, kind narration.EventKind) {
	s.mu.Lock()
	c := s.calls[i]
	s.mu.Unlock()
	c.notify(kind)
}

// Playback is a mock narration.Playback recording volume changes.
type Playback struct {
	mu        sync.Mutex
	Volumes   []float64 // initial volume followed by every SetVolume
	Cancelled bool
}

func (p *Playback) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Volumes = append(p.Volumes, volume)
}

func (p *Playback) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Cancelled = true
}

// Volume returns the most recent volume.
func (p *Playback) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Volumes[len(p.Volumes)-1]
}

// IsCancelled reports whether Cancel was called.
func (p *Playback) IsCancelled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Cancelled
}
