// Package narration coordinates text-to-speech playback of slides with
// navigation.
//
// The speech engine is an external capability behind the Speaker interface.
// Lifecycle callbacks from the engine are turned into Event values and fed
// back into the Controller, which only ever acts on events belonging to the
// request it currently owns.
package narration

import "context"

const (
	// Rate is the fixed speaking rate requested for slide narration.
	Rate = 0.8

	// Pitch is the fixed pitch requested for slide narration.
	Pitch = 1.0
)

// Utterance is one narration request handed to a Speaker.
type Utterance struct {
	Text   string
	Rate   float64
	Pitch  float64
	Volume float64 // 0 (silent) to 1
}

// EventKind identifies a playback lifecycle transition.
type EventKind int

const (
	EventStart EventKind = iota + 1
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Event is a lifecycle notification for the request identified by ID.
type Event struct {
	ID   uint64
	Kind EventKind
}

// Playback controls an in-flight utterance.
type Playback interface {
	// SetVolume changes the volume of the utterance while it plays.
	// Backends that fix the volume at launch, such as speech.Command,
	// only record it.
	SetVolume(volume float64)

	// Cancel stops playback. No EventEnd is emitted after Cancel returns.
	Cancel()
}

// Speaker is the text-to-speech capability.
//
// Speak starts playback of u and reports its lifecycle through notify,
// possibly from another goroutine. EventEnd is reported only on natural
// completion. A Speaker that cannot narrate in the current environment
// returns a nil Playback and a nil error and never calls notify.
type Speaker interface {
	Speak(ctx context.Context, u Utterance, notify func(EventKind)) (Playback, error)
}
