package app

import (
	"github.com/ryanoneill/envision/input"
	"github.com/ryanoneill/envision/terminal"
)

// App is a message-driven application. S is the state type, M the
// message type; messages should be cheap to copy.
//
// Init produces the starting state and an optional startup command.
// Update applies one message to the state and may request further
// effects. View renders the state into a frame; it must not mutate
// state.
type App[S, M any] interface {
	Init() (S, Command[M])
	Update(state *S, msg M) Command[M]
	View(state *S, f *terminal.Frame)
}

// EventHandler maps raw input events to messages. Apps that do not
// implement it ignore input events.
type EventHandler[M any] interface {
	HandleEvent(ev input.Event) (M, bool)
}

// StateEventHandler is EventHandler with access to the current state,
// for apps whose key bindings depend on mode. When an app implements
// both, StateEventHandler wins.
type StateEventHandler[S, M any] interface {
	HandleEventWithState(state *S, ev input.Event) (M, bool)
}

// TickHandler receives a periodic callback once per runtime tick,
// after messages and events have been processed. Returning true feeds
// the message into the update loop.
type TickHandler[S, M any] interface {
	OnTick(state *S) (M, bool)
}

// QuitPolicy lets an app quit based on state alone, checked after every
// dispatch and tick.
type QuitPolicy[S any] interface {
	ShouldQuit(state *S) bool
}

// ExitHandler runs once when the runtime stops, after the final render.
type ExitHandler[S any] interface {
	OnExit(state *S)
}
