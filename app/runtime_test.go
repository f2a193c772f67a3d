package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/input"
	"github.com/ryanoneill/envision/subscription"
	"github.com/ryanoneill/envision/terminal"
)

type counterMsg int

const (
	increment counterMsg = iota
	decrement
	clear
)

type counterState struct {
	count int
}

// counterApp is the minimal app: no optional hooks.
type counterApp struct {
	startCmd Command[counterMsg]
}

func (a *counterApp) Init() (counterState, Command[counterMsg]) {
	return counterState{}, a.startCmd
}

func (a *counterApp) Update(s *counterState, msg counterMsg) Command[counterMsg] {
	switch msg {
	case increment:
		s.count++
	case decrement:
		s.count--
	case clear:
		s.count = 0
	}
	return None[counterMsg]()
}

func (a *counterApp) View(s *counterState, f *terminal.Frame) {
	f.SetString(0, 0, fmt.Sprintf("Count: %d", s.count), backend.Style{})
}

// keyCounterApp adds key handling and quit-at-limit behavior.
type keyCounterApp struct {
	counterApp
	limit  int
	exited int
}

func (a *keyCounterApp) HandleEvent(ev input.Event) (counterMsg, bool) {
	if k, ok := input.AsKey(ev); ok {
		switch {
		case k.IsChar('+'):
			return increment, true
		case k.IsChar('-'):
			return decrement, true
		}
	}
	return 0, false
}

func (a *keyCounterApp) ShouldQuit(s *counterState) bool {
	return a.limit > 0 && s.count >= a.limit
}

func (a *keyCounterApp) OnExit(s *counterState) {
	a.exited++
}

func TestHeadlessInitAndRender(t *testing.T) {
	rt, err := Headless[counterState, counterMsg](&counterApp{}, 20, 3)
	if err != nil {
		t.Fatalf("Headless() error = %v", err)
	}
	defer rt.Close()
	if err := rt.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !rt.ContainsText("Count: 0") {
		t.Errorf("output = %q, want Count: 0", rt.CapturedOutput())
	}
}

func TestInitCommandRunsOnFirstTick(t *testing.T) {
	app := &counterApp{startCmd: Messages[counterMsg](increment, increment)}
	rt, err := Headless[counterState, counterMsg](app, 20, 3)
	if err != nil {
		t.Fatalf("Headless() error = %v", err)
	}
	defer rt.Close()
	if err := rt.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if rt.State().count != 2 {
		t.Errorf("count = %d, want 2 after init command", rt.State().count)
	}
}

func TestDispatchUpdatesState(t *testing.T) {
	rt, _ := Headless[counterState, counterMsg](&counterApp{}, 20, 3)
	defer rt.Close()
	rt.DispatchAll(increment, increment, decrement)
	if rt.State().count != 1 {
		t.Errorf("count = %d, want 1", rt.State().count)
	}
}

func TestDispatchFollowsCommandChains(t *testing.T) {
	// Each bump message expands to two increments via a command.
	type chainState struct{ count int }
	app := appFuncs[chainState, string]{
		init: func() (chainState, Command[string]) { return chainState{}, None[string]() },
		update: func(s *chainState, msg string) Command[string] {
			switch msg {
			case "bump":
				return Messages("inc", "inc")
			case "inc":
				s.count++
			}
			return None[string]()
		},
	}
	rt, _ := Headless[chainState, string](app, 10, 1)
	defer rt.Close()
	rt.Dispatch("bump")
	if rt.State().count != 2 {
		t.Errorf("count = %d, want 2", rt.State().count)
	}
}

func TestPerformRunsSynchronously(t *testing.T) {
	app := &counterApp{startCmd: Perform(func() (counterMsg, bool) { return increment, true })}
	rt, _ := Headless[counterState, counterMsg](app, 10, 1)
	defer rt.Close()
	rt.Tick()
	if rt.State().count != 1 {
		t.Errorf("count = %d, want 1", rt.State().count)
	}
}

func TestQuitCommand(t *testing.T) {
	app := &counterApp{startCmd: Quit[counterMsg]()}
	rt, _ := Headless[counterState, counterMsg](app, 10, 1)
	defer rt.Close()
	if !rt.ShouldQuit() {
		t.Errorf("ShouldQuit() = false after quit command")
	}
}

func TestFutureDeliversMessage(t *testing.T) {
	app := &counterApp{startCmd: Future(func(ctx context.Context) (counterMsg, bool) {
		return increment, true
	})}
	rt, _ := Headless[counterState, counterMsg](app, 10, 1)
	defer rt.Close()

	deadline := time.After(time.Second)
	for rt.State().count == 0 {
		select {
		case <-deadline:
			t.Fatalf("future message never arrived")
		default:
			rt.Tick()
			time.Sleep(time.Millisecond)
		}
	}
}

func TestAttemptRecordsError(t *testing.T) {
	wantErr := errors.New("boom")
	app := &counterApp{startCmd: Attempt(func(ctx context.Context) (counterMsg, error) {
		return 0, wantErr
	})}
	rt, _ := Headless[counterState, counterMsg](app, 10, 1)
	defer rt.Close()

	deadline := time.After(time.Second)
	for len(rt.Errors()) == 0 {
		select {
		case <-deadline:
			t.Fatalf("error never recorded")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if !errors.Is(rt.Errors()[0], wantErr) {
		t.Errorf("recorded error = %v, want %v", rt.Errors()[0], wantErr)
	}
}

func TestEventHandling(t *testing.T) {
	rt, _ := Headless[counterState, counterMsg](&keyCounterApp{}, 10, 1)
	defer rt.Close()
	rt.SendEvent(input.Char('+'))
	rt.SendEvent(input.Char('+'))
	rt.SendEvent(input.Char('x')) // unbound, dropped
	rt.SendEvent(input.Char('-'))
	rt.ProcessAllEvents()
	if rt.State().count != 1 {
		t.Errorf("count = %d, want 1", rt.State().count)
	}
	if !rt.Events().IsEmpty() {
		t.Errorf("queue should be drained")
	}
}

func TestStateEventHandlerWins(t *testing.T) {
	app := &modalApp{}
	rt, _ := Headless[modalState, string](app, 10, 1)
	defer rt.Close()

	rt.SendEvent(input.Char('a'))
	rt.ProcessAllEvents()
	if rt.State().last != "insert:a" {
		t.Errorf("last = %q, want state-aware handler to win", rt.State().last)
	}
}

func TestTickDrainsBoundedEvents(t *testing.T) {
	cfg := DefaultConfig().WithMaxMessagesPerTick(2)
	rt, _ := HeadlessWithConfig[counterState, counterMsg](&keyCounterApp{}, 10, 1, cfg)
	defer rt.Close()
	for i := 0; i < 5; i++ {
		rt.SendEvent(input.Char('+'))
	}
	rt.Tick()
	if rt.State().count != 2 {
		t.Errorf("count = %d after one tick, want 2 (bounded)", rt.State().count)
	}
	if rt.Events().Len() != 3 {
		t.Errorf("queue length = %d, want 3 left over", rt.Events().Len())
	}
}

func TestOnTickHook(t *testing.T) {
	app := &tickApp{}
	rt, _ := Headless[counterState, counterMsg](app, 10, 1)
	defer rt.Close()
	rt.Tick()
	rt.Tick()
	if rt.State().count != 2 {
		t.Errorf("count = %d, want one increment per tick", rt.State().count)
	}
}

func TestQuitPolicyStopsRunTicks(t *testing.T) {
	app := &keyCounterApp{limit: 3}
	rt, _ := Headless[counterState, counterMsg](app, 10, 1)
	for i := 0; i < 10; i++ {
		rt.SendEvent(input.Char('+'))
	}
	if err := rt.RunTicks(10); err != nil {
		t.Fatalf("RunTicks() error = %v", err)
	}
	if rt.State().count != 3 {
		t.Errorf("count = %d, want exactly 3", rt.State().count)
	}
	rt.Close()
	if app.exited != 1 {
		t.Errorf("OnExit ran %d times, want 1", app.exited)
	}
	rt.Close()
	if app.exited != 1 {
		t.Errorf("OnExit ran again on second Close")
	}
}

func TestResizeEventResizesCapture(t *testing.T) {
	rt, _ := Headless[counterState, counterMsg](&counterApp{}, 10, 2)
	defer rt.Close()
	rt.SendEvent(input.Resize{Width: 30, Height: 5})
	rt.ProcessAllEvents()
	capture, ok := rt.Capture()
	if !ok {
		t.Fatalf("Capture() = false for headless runtime")
	}
	if capture.Width() != 30 || capture.Height() != 5 {
		t.Errorf("capture size = %dx%d, want 30x5", capture.Width(), capture.Height())
	}
}

func TestRunWithSubscriptionAndQuit(t *testing.T) {
	app := &keyCounterApp{limit: 3}
	rt, _ := HeadlessWithConfig[counterState, counterMsg](app, 20, 3,
		DefaultConfig().WithTickRate(5*time.Millisecond))
	rt.Subscribe(subscription.Tick[counterMsg](time.Millisecond).WithMessage(func() counterMsg {
		return increment
	}))

	done := make(chan error, 1)
	go func() { done <- rt.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run() did not stop at the quit limit")
	}
	if rt.State().count < 3 {
		t.Errorf("count = %d, want at least 3", rt.State().count)
	}
	if !rt.ContainsText(fmt.Sprintf("Count: %d", rt.State().count)) {
		t.Errorf("final frame missing final count: %q", rt.CapturedOutput())
	}
	if app.exited != 1 {
		t.Errorf("OnExit ran %d times, want 1", app.exited)
	}
}

func TestQuitCancelsSubscriptions(t *testing.T) {
	rt, _ := HeadlessWithConfig[counterState, counterMsg](&counterApp{}, 10, 1,
		DefaultConfig().WithTickRate(5*time.Millisecond))
	rt.Subscribe(subscription.Tick[counterMsg](time.Millisecond).WithMessage(func() counterMsg {
		return increment
	}))

	done := make(chan error, 1)
	go func() { done <- rt.Run() }()
	time.Sleep(20 * time.Millisecond)
	rt.Quit()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run() did not stop after Quit()")
	}
	if rt.Context().Err() == nil {
		t.Errorf("context should be cancelled after Quit()")
	}
}

func TestCaptureHistoryDuringRunTicks(t *testing.T) {
	cfg := DefaultConfig().WithHistoryCapacity(2)
	rt, _ := HeadlessWithConfig[counterState, counterMsg](&counterApp{}, 20, 1, cfg)
	defer rt.Close()
	rt.Dispatch(increment)
	rt.RunTicks(5)
	capture, _ := rt.Capture()
	if capture.HistoryLen() != 2 {
		t.Errorf("history length = %d, want bounded at 2", capture.HistoryLen())
	}
}

// appFuncs adapts closures to the App interface for one-off test apps.
type appFuncs[S, M any] struct {
	init   func() (S, Command[M])
	update func(*S, M) Command[M]
	view   func(*S, *terminal.Frame)
}

func (a appFuncs[S, M]) Init() (S, Command[M]) { return a.init() }
func (a appFuncs[S, M]) Update(s *S, m M) Command[M] {
	return a.update(s, m)
}
func (a appFuncs[S, M]) View(s *S, f *terminal.Frame) {
	if a.view != nil {
		a.view(s, f)
	}
}

type modalState struct {
	last string
}

// modalApp implements both event handler flavors; the state-aware one
// must take precedence.
type modalApp struct{}

func (a *modalApp) Init() (modalState, Command[string]) { return modalState{}, None[string]() }
func (a *modalApp) Update(s *modalState, msg string) Command[string] {
	s.last = msg
	return None[string]()
}
func (a *modalApp) View(s *modalState, f *terminal.Frame) {}

func (a *modalApp) HandleEvent(ev input.Event) (string, bool) {
	return "plain", true
}

func (a *modalApp) HandleEventWithState(s *modalState, ev input.Event) (string, bool) {
	if k, ok := input.AsKey(ev); ok && k.Code == input.KeyRune {
		return "insert:" + string(k.Rune), true
	}
	return "", false
}

type tickApp struct {
	counterApp
}

func (a *tickApp) OnTick(s *counterState) (counterMsg, bool) {
	return increment, true
}
