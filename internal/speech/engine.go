// Package speech drives a local text-to-speech synthesizer.
package speech

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	apierrors "github.com/ananth/nexchat/internal/errors"
)

// EventKind identifies an utterance lifecycle notification.
type EventKind int

const (
	// EventStarted fires when the synthesizer process begins.
	EventStarted EventKind = iota
	// EventEnded fires when the utterance finishes cleanly.
	EventEnded
	// EventErrored fires when the synthesizer fails.
	EventErrored
)

// Event is one lifecycle notification for the active utterance.
// Cancelled utterances emit no terminal event: their chain is detached
// the moment a newer utterance takes over.
type Event struct {
	Kind EventKind
	Err  error
}

// synthesizer describes one supported synthesizer program.
type synthesizer struct {
	name string
	args func(text string) []string
}

// Candidate synthesizers, probed in PATH order. Speech rate sits below
// each program's default, pitch neutral, volume at maximum.
var synthesizers = []synthesizer{
	{
		name: "espeak-ng",
		args: func(text string) []string {
			return []string{"-s", "130", "-p", "50", "-a", "200", text}
		},
	},
	{
		name: "espeak",
		args: func(text string) []string {
			return []string{"-s", "130", "-p", "50", "-a", "200", text}
		},
	},
	{
		name: "say",
		args: func(text string) []string {
			return []string{"-r", "130", text}
		},
	},
	{
		name: "flite",
		args: func(text string) []string {
			return []string{"-t", text}
		},
	},
}

// runFunc starts the synthesizer and blocks until it exits.
type runFunc func(ctx context.Context, program string, args []string) error

// runSynthesizer is the production runFunc.
func runSynthesizer(ctx context.Context, program string, args []string) error {
	cmd := exec.CommandContext(ctx, program, args...)
	return cmd.Run()
}

// Engine owns the single active utterance. Speak is cancel-then-start:
// a new request kills the running synthesizer before spawning its own,
// so at most one utterance is ever audible and at most one end/error
// chain is live.
type Engine struct {
	events chan Event
	logger *zap.Logger

	lookPath func(string) (string, error)
	run      runFunc

	mu      sync.Mutex
	program string
	argsFor func(string) []string
	cancel  context.CancelFunc
	gen     uint64
}

// EngineOption configures the engine
type EngineOption func(*Engine)

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLookPath overrides synthesizer discovery (used by tests)
func WithLookPath(lookPath func(string) (string, error)) EngineOption {
	return func(e *Engine) {
		e.lookPath = lookPath
	}
}

// WithRunner overrides how the synthesizer process runs (used by tests)
func WithRunner(run runFunc) EngineOption {
	return func(e *Engine) {
		e.run = run
	}
}

// NewEngine probes PATH for a supported synthesizer. An engine without
// one still constructs; Speak reports ErrSpeechUnavailable.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		events:   make(chan Event, 8),
		logger:   zap.NewNop(),
		lookPath: exec.LookPath,
		run:      runSynthesizer,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, s := range synthesizers {
		path, err := e.lookPath(s.name)
		if err != nil {
			continue
		}
		e.program = path
		e.argsFor = s.args
		e.logger.Debug("speech synthesizer found", zap.String("program", path))
		break
	}

	if e.program == "" {
		e.logger.Debug("no speech synthesizer on PATH")
	}

	return e
}

// Available reports whether a synthesizer was found.
func (e *Engine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.program != ""
}

// Program returns the resolved synthesizer path, or "" when speech is
// unsupported.
func (e *Engine) Program() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.program
}

// Events returns the utterance lifecycle channel. The UI pump consumes
// it for the life of the program.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// Speak starts speaking text, cancelling any active utterance first.
// It returns immediately; lifecycle lands on the events channel.
func (e *Engine) Speak(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	e.mu.Lock()
	if e.program == "" {
		e.mu.Unlock()
		return apierrors.ErrSpeechUnavailable
	}

	// Cancel-then-start: the previous utterance's chain detaches here.
	if e.cancel != nil {
		e.cancel()
	}
	e.gen++
	gen := e.gen

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel

	program := e.program
	args := e.argsFor(text)
	e.mu.Unlock()

	go e.speak(ctx, gen, program, args)
	return nil
}

// Stop cancels the active utterance, if any. No terminal event fires.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.gen++
}

// speak runs one utterance to completion on its own goroutine.
func (e *Engine) speak(ctx context.Context, gen uint64, program string, args []string) {
	e.emit(gen, Event{Kind: EventStarted})

	err := e.run(ctx, program, args)
	if ctx.Err() != nil {
		// Cancelled by a newer utterance or Stop: stay silent.
		return
	}
	if err != nil {
		e.logger.Warn("synthesizer failed",
			zap.String("program", program),
			zap.Error(err))
		e.emit(gen, Event{Kind: EventErrored, Err: err})
		return
	}
	e.emit(gen, Event{Kind: EventEnded})
}

// emit forwards ev unless gen is no longer the active utterance.
func (e *Engine) emit(gen uint64, ev Event) {
	e.mu.Lock()
	stale := gen != e.gen
	e.mu.Unlock()
	if stale {
		return
	}
	e.events <- ev
}
