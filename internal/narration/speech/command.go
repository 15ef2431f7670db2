package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/abhisek/eduvision/internal/logger"
	"github.com/abhisek/eduvision/internal/narration"
)

const (
	// baseWordsPerMinute is the synthesiser speed that corresponds to rate 1.0.
	baseWordsPerMinute = 175

	// espeakBasePitch is espeak's default pitch (0-99) that corresponds to pitch 1.0.
	espeakBasePitch = 50
)

// Command narrates by running an external synthesiser process, one process
// per utterance. espeak and say are driven with their native rate, pitch and
// volume flags; any other program receives the text as its only argument.
type Command struct {
	// Name is the program to run (a name on PATH or an absolute path).
	Name string

	// Voice is passed to synthesisers that support voice selection.
	Voice string

	Log *logger.Logger
}

var _ narration.Speaker = (*Command)(nil)

// DefaultProgram returns the synthesiser usually available on this OS.
func DefaultProgram() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak-ng"
}

// Speak starts the synthesiser. EventStart is reported once the process is
// running and EventEnd when it exits on its own.
func (c *Command) Speak(ctx context.Context, u narration.Utterance, notify func(narration.EventKind)) (narration.Playback, error) {
	log := c.Log
	if log == nil {
		log = logger.Nop()
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, c.Name, c.args(u)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("command '%s' failed to start: %w", c.Name, err)
	}

	pb := &processPlayback{cancel: cancel, volume: u.Volume}
	go func() {
		notify(narration.EventStart)
		err := cmd.Wait()
		cancel()
		if pb.isCancelled() {
			return
		}
		if err != nil {
			// Natural end either way; the controller only needs to know playback is over.
			log.Warn("synthesiser exited with error",
				"program", c.Name,
				"error", err,
				"stderr", strings.TrimSpace(stderr.String()))
		}
		notify(narration.EventEnd)
	}()
	return pb, nil
}

// args maps an utterance onto the program's command line.
func (c *Command) args(u narration.Utterance) []string {
	wpm := strconv.Itoa(int(math.Round(baseWordsPerMinute * u.Rate)))

	switch strings.TrimSuffix(filepath.Base(c.Name), ".exe") {
	case "espeak", "espeak-ng":
		pitch := int(math.Round(espeakBasePitch * u.Pitch))
		pitch = max(0, min(pitch, 99))
		amplitude := int(math.Round(100 * u.Volume))
		args := []string{"-s", wpm, "-p", strconv.Itoa(pitch), "-a", strconv.Itoa(amplitude)}
		if c.Voice != "" {
			args = append(args, "-v", c.Voice)
		}
		return append(args, u.Text)

	case "say":
		args := []string{"-r", wpm}
		if c.Voice != "" {
			args = append(args, "-v", c.Voice)
		}
		// say has no volume flag; it honours an embedded volume command.
		text := fmt.Sprintf("[[volm %.2f]] %s", u.Volume, u.Text)
		return append(args, text)

	default:
		return []string{u.Text}
	}
}

// processPlayback controls a running synthesiser process.
type processPlayback struct {
	mu        sync.Mutex
	cancel    context.CancelFunc
	cancelled bool
	volume    float64
}

// SetVolume records the requested volume. A synthesiser process fixes its
// volume at launch, so the change applies to the next utterance only.
func (p *processPlayback) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
}

func (p *processPlayback) Cancel() {
	p.mu.Lock()
	p.cancelled = true
	p.mu.Unlock()
	p.cancel()
}

func (p *processPlayback) isCancelled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancelled
}

// Nop is the Speaker for environments without speech support.
type Nop struct{}

var _ narration.Speaker = Nop{}

func (Nop) Speak(context.Context, narration.Utterance, func(narration.EventKind)) (narration.Playback, error) {
	return nil, nil
}

// ErrUnknownBackend is returned by New for unrecognised backend names.
var ErrUnknownBackend = errors.New("unknown narration backend")

// New resolves a backend by name. "auto" picks the platform synthesiser
// when it is installed and falls back to Nop; "command" requires program
// to be on PATH; "none" disables narration.
func New(backend, program, voice string, log *logger.Logger) (narration.Speaker, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch backend {
	case "", "auto":
		if program == "" {
			program = DefaultProgram()
		}
		path, err := exec.LookPath(program)
		if err != nil {
			log.Info("speech synthesiser not found, narration disabled", "program", program)
			return Nop{}, nil
		}
		return &Command{Name: path, Voice: voice, Log: log}, nil
	case "command":
		if program == "" {
			program = DefaultProgram()
		}
		path, err := exec.LookPath(program)
		if err != nil {
			return nil, fmt.Errorf("narration program %q: %w", program, err)
		}
		return &Command{Name: path, Voice: voice, Log: log}, nil
	case "none":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
