package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/input"
	"github.com/ryanoneill/envision/logging"
	"github.com/ryanoneill/envision/subscription"
	"github.com/ryanoneill/envision/terminal"
)

// Runtime drives an App: it owns the state, feeds messages and input
// events through Update, runs commands, pumps subscriptions, and
// renders through a Terminal after each step.
//
// A Runtime can be driven synchronously (Dispatch, Tick, RunTicks) for
// tests, or with Run for a live event loop. It is not safe to drive one
// runtime from multiple goroutines; Quit is the only method safe to
// call concurrently.
type Runtime[S, M any] struct {
	app     App[S, M]
	state   S
	term    *terminal.Terminal
	capture *backend.CaptureBackend
	events  *input.EventQueue
	cfg     Config
	log     *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc

	msgCh   chan M
	pending []M

	errMu sync.Mutex
	errs  []error

	wg       sync.WaitGroup
	quit     bool
	exitOnce sync.Once
}

// Headless builds a runtime over a fresh capture backend of the given
// size, using the default config.
func Headless[S, M any](a App[S, M], width, height int) (*Runtime[S, M], error) {
	return HeadlessWithConfig(a, width, height, DefaultConfig())
}

// HeadlessWithConfig is Headless with explicit tuning. The capture
// backend's history bound comes from cfg.HistoryCapacity.
func HeadlessWithConfig[S, M any](a App[S, M], width, height int, cfg Config) (*Runtime[S, M], error) {
	b := backend.NewCaptureBackendWithHistory(width, height, cfg.HistoryCapacity)
	return WithBackendAndConfig(a, b, cfg)
}

// WithBackend builds a runtime over an existing backend with the
// default config.
func WithBackend[S, M any](a App[S, M], b backend.Backend) (*Runtime[S, M], error) {
	return WithBackendAndConfig(a, b, DefaultConfig())
}

// WithBackendAndConfig builds a runtime over an existing backend. The
// app's Init runs immediately; its startup command is executed on the
// first dispatch, tick or run.
func WithBackendAndConfig[S, M any](a App[S, M], b backend.Backend, cfg Config) (*Runtime[S, M], error) {
	term, err := terminal.New(b)
	if err != nil {
		return nil, fmt.Errorf("creating terminal: %w", err)
	}
	cfg = cfg.normalized()
	ctx, cancel := context.WithCancel(context.Background())
	log := cfg.Logger
	if log == nil {
		log = logging.NopLogger()
	}
	r := &Runtime[S, M]{
		app:    a,
		term:   term,
		events: input.NewEventQueue(),
		cfg:    cfg,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
		msgCh:  make(chan M, cfg.MessageBuffer),
	}
	if capture, ok := b.(*backend.CaptureBackend); ok {
		r.capture = capture
	}
	var cmd Command[M]
	r.state, cmd = a.Init()
	r.execute(cmd)
	return r, nil
}

// State returns the application state for inspection.
func (r *Runtime[S, M]) State() *S { return &r.state }

// Terminal returns the runtime's terminal.
func (r *Runtime[S, M]) Terminal() *terminal.Terminal { return r.term }

// Capture returns the capture backend when the runtime renders into
// one.
func (r *Runtime[S, M]) Capture() (*backend.CaptureBackend, bool) {
	return r.capture, r.capture != nil
}

// Events returns the input event queue for feeding simulated input.
func (r *Runtime[S, M]) Events() *input.EventQueue { return r.events }

// SendEvent queues an input event.
func (r *Runtime[S, M]) SendEvent(ev input.Event) { r.events.Push(ev) }

// Context returns the runtime's cancellation context, shared with every
// subscription and future it starts.
func (r *Runtime[S, M]) Context() context.Context { return r.ctx }

// ShouldQuit reports whether the runtime has been asked to stop.
func (r *Runtime[S, M]) ShouldQuit() bool {
	if r.quit {
		return true
	}
	if p, ok := any(r.app).(QuitPolicy[S]); ok && p.ShouldQuit(&r.state) {
		return true
	}
	return r.ctx.Err() != nil
}

// Quit asks the runtime to stop. Safe to call from any goroutine; the
// cancellation propagates to subscriptions and futures.
func (r *Runtime[S, M]) Quit() { r.cancel() }

// Errors returns the errors collected from Attempt commands so far.
func (r *Runtime[S, M]) Errors() []error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}

func (r *Runtime[S, M]) recordError(err error) {
	r.errMu.Lock()
	r.errs = append(r.errs, err)
	r.errMu.Unlock()
	r.log.Error("command failed", "error", err)
}

// Dispatch runs one message through Update and fully processes the
// resulting commands, including any follow-up messages they produce.
func (r *Runtime[S, M]) Dispatch(msg M) {
	r.dispatchOne(msg)
	r.processPending()
}

// DispatchAll dispatches messages in order.
func (r *Runtime[S, M]) DispatchAll(msgs ...M) {
	for _, m := range msgs {
		r.Dispatch(m)
	}
}

func (r *Runtime[S, M]) dispatchOne(msg M) {
	r.log.Debug("dispatch", "message", fmt.Sprintf("%v", msg))
	cmd := r.app.Update(&r.state, msg)
	r.execute(cmd)
	if p, ok := any(r.app).(QuitPolicy[S]); ok && p.ShouldQuit(&r.state) {
		r.quit = true
	}
}

func (r *Runtime[S, M]) processPending() {
	for len(r.pending) > 0 {
		msg := r.pending[0]
		r.pending = r.pending[1:]
		r.dispatchOne(msg)
	}
}

func (r *Runtime[S, M]) execute(cmd Command[M]) {
	for _, a := range cmd.actions {
		switch a.kind {
		case actionMessage:
			r.pending = append(r.pending, a.msg)
		case actionQuit:
			r.quit = true
		case actionCallback:
			if m, ok := a.callback(); ok {
				r.pending = append(r.pending, m)
			}
		case actionFuture:
			r.spawnFuture(a.future)
		case actionFallible:
			r.spawnFallible(a.fallible)
		}
	}
}

func (r *Runtime[S, M]) spawnFuture(fn func(ctx context.Context) (M, bool)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		m, ok := fn(r.ctx)
		if !ok {
			return
		}
		select {
		case r.msgCh <- m:
		case <-r.ctx.Done():
		}
	}()
}

func (r *Runtime[S, M]) spawnFallible(fn func(ctx context.Context) (M, error)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		m, err := fn(r.ctx)
		if err != nil {
			r.recordError(err)
			return
		}
		select {
		case r.msgCh <- m:
		case <-r.ctx.Done():
		}
	}()
}

// Subscribe starts a subscription on the runtime's context and forwards
// its messages into the update loop. The stream ends when the
// subscription closes it or the runtime quits.
func (r *Runtime[S, M]) Subscribe(sub subscription.Subscription[M]) {
	ch := sub.Stream(r.ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for m := range ch {
			select {
			case r.msgCh <- m:
			case <-r.ctx.Done():
				return
			}
		}
	}()
}

// drainMessages moves queued future and subscription messages into the
// update loop, at most limit of them.
func (r *Runtime[S, M]) drainMessages(limit int) {
	for i := 0; i < limit; i++ {
		select {
		case m := <-r.msgCh:
			r.Dispatch(m)
		default:
			return
		}
	}
}

// ProcessEvent pops one queued event, resizes on Resize events, and
// feeds the event through the app's event handler. It reports whether
// an event was processed.
func (r *Runtime[S, M]) ProcessEvent() bool {
	ev, ok := r.events.Pop()
	if !ok {
		return false
	}
	if rz, isResize := ev.(input.Resize); isResize {
		if r.capture != nil {
			r.capture.Resize(rz.Width, rz.Height)
		}
		if err := r.term.Resize(rz.Width, rz.Height); err != nil {
			r.log.Warn("resize failed", "error", err)
		}
	}
	r.log.Debug("event", "type", input.TypeString(ev))
	if msg, handled := r.handleEvent(ev); handled {
		r.Dispatch(msg)
	}
	return true
}

// ProcessAllEvents drains the whole event queue.
func (r *Runtime[S, M]) ProcessAllEvents() {
	for r.ProcessEvent() {
	}
}

func (r *Runtime[S, M]) handleEvent(ev input.Event) (M, bool) {
	if h, ok := any(r.app).(StateEventHandler[S, M]); ok {
		return h.HandleEventWithState(&r.state, ev)
	}
	if h, ok := any(r.app).(EventHandler[M]); ok {
		return h.HandleEvent(ev)
	}
	var zero M
	return zero, false
}

// Render draws the current state.
func (r *Runtime[S, M]) Render() error {
	return r.term.Draw(func(f *terminal.Frame) {
		r.app.View(&r.state, f)
	})
}

func (r *Runtime[S, M]) tickBody() {
	r.processPending()
	r.drainMessages(r.cfg.MaxMessagesPerTick)
	for i := 0; i < r.cfg.MaxMessagesPerTick; i++ {
		if r.quit || !r.ProcessEvent() {
			break
		}
	}
	if h, ok := any(r.app).(TickHandler[S, M]); ok {
		if msg, fire := h.OnTick(&r.state); fire {
			r.Dispatch(msg)
		}
	}
	if p, ok := any(r.app).(QuitPolicy[S]); ok && p.ShouldQuit(&r.state) {
		r.quit = true
	}
}

// Tick runs one synchronous runtime step: pending messages, queued
// future and subscription messages, a bounded batch of input events,
// the tick hook, and a render.
func (r *Runtime[S, M]) Tick() error {
	r.tickBody()
	return r.Render()
}

// RunTicks runs up to n ticks, stopping early when the app quits.
func (r *Runtime[S, M]) RunTicks(n int) error {
	for i := 0; i < n && !r.ShouldQuit(); i++ {
		if err := r.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Run drives the app until it quits or the context is cancelled: an
// initial render, then a loop reacting to future and subscription
// messages as they arrive with a tick (including event processing) on
// every TickRate interval. A final render happens before the exit hook
// runs.
func (r *Runtime[S, M]) Run() error {
	defer r.shutdown()
	r.log.Info("runtime starting", "tick_rate", r.cfg.TickRate.String())

	r.processPending()
	if err := r.Render(); err != nil {
		return err
	}

	ticker := time.NewTicker(r.cfg.TickRate)
	defer ticker.Stop()

	for !r.quit {
		select {
		case m := <-r.msgCh:
			r.Dispatch(m)
		case <-ticker.C:
			r.tickBody()
		case <-r.ctx.Done():
			r.quit = true
		}
		if r.quit {
			break
		}
		if err := r.Render(); err != nil {
			return err
		}
	}

	// Final frame so the last state change is visible in the capture.
	if err := r.Render(); err != nil {
		return err
	}
	return nil
}

// shutdown cancels subscriptions and futures, waits for them, and runs
// the exit hook exactly once.
func (r *Runtime[S, M]) shutdown() {
	r.exitOnce.Do(func() {
		r.cancel()
		r.wg.Wait()
		if h, ok := any(r.app).(ExitHandler[S]); ok {
			h.OnExit(&r.state)
		}
		r.log.Info("runtime stopped")
	})
}

// Close stops the runtime without a final render. Calling Close after
// Run has returned is a no-op.
func (r *Runtime[S, M]) Close() {
	r.shutdown()
}

// CapturedOutput returns the capture backend's plain rendering, or the
// empty string when the runtime does not render into a capture backend.
func (r *Runtime[S, M]) CapturedOutput() string {
	if r.capture == nil {
		return ""
	}
	return r.capture.Render(backend.FormatPlain)
}

// CapturedANSI returns the capture backend's ANSI rendering.
func (r *Runtime[S, M]) CapturedANSI() string {
	if r.capture == nil {
		return ""
	}
	return r.capture.Render(backend.FormatANSI)
}

// ContainsText reports whether the captured output contains text on a
// single row.
func (r *Runtime[S, M]) ContainsText(text string) bool {
	return r.capture != nil && r.capture.ContainsText(text)
}

// FindText returns the captured positions of text.
func (r *Runtime[S, M]) FindText(text string) []backend.Position {
	if r.capture == nil {
		return nil
	}
	return r.capture.FindText(text)
}
