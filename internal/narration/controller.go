package narration

import (
	"context"
	"fmt"

	"github.com/abhisek/eduvision/internal/deck"
	"github.com/abhisek/eduvision/internal/logger"
)

// request is the single outstanding narration owned by the controller.
type request struct {
	id       uint64
	playback Playback
	cancel   context.CancelFunc
}

// Controller tracks narration state for the active slide.
//
// A Controller is not safe for concurrent use. Speakers may notify from
// other goroutines, so callers running an event loop should install a
// delivery function (WithDelivery) that marshals events back onto the loop
// and calls Handle there.
type Controller struct {
	speaker Speaker
	deliver func(Event)
	log     *logger.Logger

	playing bool
	muted   bool
	active  *request
	lastID  uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithDelivery routes speaker events through fn instead of calling Handle
// directly.
func WithDelivery(fn func(Event)) Option {
	return func(c *Controller) { c.deliver = fn }
}

// WithLogger sets the controller's logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// NewController creates a controller backed by speaker. A nil speaker
// models an environment without speech support: Speak becomes a no-op.
func NewController(speaker Speaker, opts ...Option) *Controller {
	c := &Controller{speaker: speaker, log: logger.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.deliver == nil {
		c.deliver = c.Handle
	}
	return c
}

// Playing reports whether narration is audibly in progress.
func (c *Controller) Playing() bool { return c.playing }

// Muted reports whether narration volume is zeroed.
func (c *Controller) Muted() bool { return c.muted }

// Pending reports whether a narration request is outstanding.
func (c *Controller) Pending() bool { return c.active != nil }

// Speak toggles narration of slide. While a request is outstanding it acts
// as stop; otherwise it starts narrating the slide's title and content.
func (c *Controller) Speak(ctx context.Context, slide deck.Slide) error {
	if c.speaker == nil {
		return nil
	}

	if c.active != nil {
		c.log.Debug("narration stopped by toggle", "request", c.active.id)
		c.stop()
		return nil
	}

	c.lastID++
	id := c.lastID
	reqCtx, cancel := context.WithCancel(ctx)
	req := &request{id: id, cancel: cancel}
	c.active = req

	u := Utterance{
		Text:   slide.NarrationText(),
		Rate:   Rate,
		Pitch:  Pitch,
		Volume: c.volume(),
	}
	pb, err := c.speaker.Speak(reqCtx, u, func(kind EventKind) {
		c.deliver(Event{ID: id, Kind: kind})
	})
	if err != nil {
		cancel()
		if c.active == req {
			c.active = nil
			c.playing = false
		}
		c.log.Warn("narration failed", "slide", slide.Title, "error", err)
		return fmt.Errorf("speak %q: %w", slide.Title, err)
	}
	if pb == nil {
		// Unsupported environment: nothing will ever play.
		cancel()
		if c.active == req {
			c.active = nil
		}
		return nil
	}

	// A synchronous speaker may already have finished the request.
	if c.active == req {
		req.playback = pb
	} else {
		pb.Cancel()
	}
	c.log.Debug("narration requested", "request", id, "slide", slide.Title, "volume", u.Volume)
	return nil
}

// Handle applies a lifecycle event. Events for requests other than the
// outstanding one are stale and ignored.
func (c *Controller) Handle(ev Event) {
	if c.active == nil || ev.ID != c.active.id {
		c.log.Debug("stale narration event dropped", "request", ev.ID, "kind", ev.Kind.String())
		return
	}
	switch ev.Kind {
	case EventStart:
		c.playing = true
	case EventEnd:
		c.active.cancel()
		c.active = nil
		c.playing = false
	}
}

// ToggleMute flips the mute flag and adjusts the live volume of the
// outstanding narration without restarting it. Whether the playing
// utterance actually changes depends on the backend: speech.Command fixes
// the volume when the synthesiser starts, so there the change is heard
// from the next utterance on.
func (c *Controller) ToggleMute() {
	c.muted = !c.muted
	if c.active != nil && c.active.playback != nil {
		c.active.playback.SetVolume(c.volume())
	}
}

// CancelOnNavigate stops any narration because the visible slide changed.
func (c *Controller) CancelOnNavigate() {
	c.stop()
}

// Close cancels outstanding narration so no callback fires after teardown.
func (c *Controller) Close() {
	c.stop()
}

func (c *Controller) stop() {
	if c.active != nil {
		if c.active.playback != nil {
			c.active.playback.Cancel()
		}
		c.active.cancel()
		c.active = nil
	}
	c.playing = false
}

func (c *Controller) volume() float64 {
	if c.muted {
		return 0
	}
	return 1
}
