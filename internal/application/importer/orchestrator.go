package importer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

// Default timings, matching the panel's slide-out animations.
const (
	DefaultDisplayWindow = 2000 * time.Millisecond
	DefaultErrorDismiss  = 150 * time.Millisecond
)

var (
	// ErrImportInFlight is returned by Submit while a fetch is running. The
	// submit is dropped, not queued.
	ErrImportInFlight = errors.New("an import is already in progress")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("orchestrator closed")
)

// Observer receives every new state snapshot. It is called without the
// orchestrator's lock held, so it may call back into the orchestrator;
// snapshots from different goroutines can arrive out of order and should
// be compared by Version.
type Observer func(State)

// Options configures an Orchestrator.
type Options struct {
	Pipeline      *Pipeline
	Clock         Clock
	Observer      Observer
	Logger        ports.Logger
	DisplayWindow time.Duration
	ErrorDismiss  time.Duration
	// Go runs the fetch. Defaults to starting a goroutine; tests pass a
	// synchronous runner.
	Go func(func())
}

// Orchestrator owns the interactive import state:
//
//	Idle -> Fetching -> {Success, Error} -> Idle
//
// Only one fetch is in flight at a time. Every transition cancels the
// pending timer, and timer callbacks and fetch results carry a generation
// so stale ones are ignored.
type Orchestrator struct {
	pipeline      *Pipeline
	clock         Clock
	observer      Observer
	logger        ports.Logger
	displayWindow time.Duration
	errorDismiss  time.Duration
	run           func(func())

	mu       sync.Mutex
	state    State
	timer    Timer
	timerGen uint64
	fetchGen uint64
	closed   bool

	// docMu serializes materialization so two imports never interleave
	// writes to the host document.
	docMu sync.Mutex
}

// New validates opts and returns an idle Orchestrator.
func New(opts Options) (*Orchestrator, error) {
	if opts.Pipeline == nil {
		return nil, errors.New("pipeline is required")
	}
	o := &Orchestrator{
		pipeline:      opts.Pipeline,
		clock:         opts.Clock,
		observer:      opts.Observer,
		logger:        opts.Logger,
		displayWindow: opts.DisplayWindow,
		errorDismiss:  opts.ErrorDismiss,
		run:           opts.Go,
	}
	if o.clock == nil {
		o.clock = SystemClock{}
	}
	if o.logger == nil {
		o.logger = logging.NewNoOpLogger()
	}
	o.logger = o.logger.With("layer", "application", "component", "orchestrator")
	if o.displayWindow <= 0 {
		o.displayWindow = DefaultDisplayWindow
	}
	if o.errorDismiss <= 0 {
		o.errorDismiss = DefaultErrorDismiss
	}
	if o.run == nil {
		o.run = func(f func()) { go f() }
	}
	return o, nil
}

// State returns the current snapshot.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Edit records new input text. While an error banner is shown it also
// schedules the banner's dismissal.
func (o *Orchestrator) Edit(text string) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	s := edited(o.state, text)
	if s.Phase == PhaseError && o.timer == nil {
		o.scheduleLocked(o.errorDismiss)
	}
	o.setLocked(s)
	o.mu.Unlock()
	o.emit(s)
}

// Submit validates raw and, when it resolves, starts a fetch. An invalid
// URL moves straight to PhaseError and returns the resolution error.
func (o *Orchestrator) Submit(ctx context.Context, raw string) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return ErrClosed
	}
	if o.state.Busy() {
		o.mu.Unlock()
		o.logger.Debug(ctx, "submit ignored while fetching", "input", raw)
		return ErrImportInFlight
	}

	o.stopTimerLocked()
	id, err := palette.Resolve(raw)
	if err != nil {
		s := rejected(o.state, UserMessage(err))
		o.setLocked(s)
		o.mu.Unlock()
		o.logger.Warn(ctx, "invalid palette url", "input", raw, "error", err)
		o.pipeline.recordFailure(ctx, "", err)
		o.emit(s)
		return err
	}

	o.fetchGen++
	gen := o.fetchGen
	s := fetching(o.state, id)
	o.setLocked(s)
	o.mu.Unlock()
	o.emit(s)

	o.run(func() {
		pal, err := o.pipeline.Fetch(ctx, id)
		o.finish(ctx, gen, pal, err)
	})
	return nil
}

// Close stops timers and discards any result still in flight. A
// materialization already writing to the document is allowed to finish;
// Close returns once it has, so the caller can close the document.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	o.closed = true
	o.stopTimerLocked()
	o.mu.Unlock()

	o.docMu.Lock()
	defer o.docMu.Unlock()
}

func (o *Orchestrator) isClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

func (o *Orchestrator) finish(ctx context.Context, gen uint64, pal palette.Palette, err error) {
	o.mu.Lock()
	if o.closed || gen != o.fetchGen || o.state.Phase != PhaseFetching {
		o.mu.Unlock()
		o.logger.Debug(ctx, "discarding stale fetch result", "generation", gen)
		return
	}

	if err != nil {
		s := failed(o.state, UserMessage(err))
		o.setLocked(s)
		o.mu.Unlock()
		o.emit(s)
		return
	}

	s := fetched(o.state, pal)
	o.setLocked(s)
	o.scheduleLocked(o.displayWindow)
	o.mu.Unlock()
	o.emit(s)

	// The document is written as soon as the palette arrives; the summary
	// is shown for review afterwards.
	o.docMu.Lock()
	defer o.docMu.Unlock()
	if o.isClosed() {
		o.logger.Debug(ctx, "orchestrator closed before styles were written", "palette", pal.Name)
		return
	}
	if _, err := o.pipeline.Materialize(ctx, pal); err != nil {
		o.logger.Warn(ctx, "palette imported with style errors", "palette", pal.Name, "error", err)
	}
}

func (o *Orchestrator) expire(gen uint64) {
	o.mu.Lock()
	if o.closed || gen != o.timerGen || o.timer == nil {
		o.mu.Unlock()
		return
	}
	o.timer = nil
	if o.state.Phase != PhaseSuccess && o.state.Phase != PhaseError {
		o.mu.Unlock()
		return
	}
	s := expired(o.state)
	o.setLocked(s)
	o.mu.Unlock()
	o.emit(s)
}

func (o *Orchestrator) scheduleLocked(d time.Duration) {
	o.stopTimerLocked()
	gen := o.timerGen
	o.timer = o.clock.AfterFunc(d, func() { o.expire(gen) })
}

// stopTimerLocked cancels the pending timer and invalidates its callback
// even if it has already started running.
func (o *Orchestrator) stopTimerLocked() {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.timerGen++
}

func (o *Orchestrator) setLocked(s State) {
	o.state = s
}

func (o *Orchestrator) emit(s State) {
	if o.observer != nil {
		o.observer(s)
	}
}
