package app

import "context"

type actionKind uint8

const (
	actionMessage actionKind = iota
	actionQuit
	actionCallback
	actionFuture
	actionFallible
)

type action[M any] struct {
	kind     actionKind
	msg      M
	callback func() (M, bool)
	future   func(ctx context.Context) (M, bool)
	fallible func(ctx context.Context) (M, error)
}

// Command is the effect an update requests from the runtime: zero or
// more messages to feed back, work to run now or in the background, or
// a quit request. The zero value does nothing.
type Command[M any] struct {
	actions []action[M]
}

// None returns a command that does nothing.
func None[M any]() Command[M] {
	return Command[M]{}
}

// IsNone reports whether the command carries no actions.
func (c Command[M]) IsNone() bool { return len(c.actions) == 0 }

// Message returns a command that feeds msg back into the update loop.
func Message[M any](msg M) Command[M] {
	return Command[M]{actions: []action[M]{{kind: actionMessage, msg: msg}}}
}

// Messages returns a command that feeds several messages back in order.
func Messages[M any](msgs ...M) Command[M] {
	c := Command[M]{actions: make([]action[M], 0, len(msgs))}
	for _, m := range msgs {
		c.actions = append(c.actions, action[M]{kind: actionMessage, msg: m})
	}
	return c
}

// Quit returns a command that stops the runtime.
func Quit[M any]() Command[M] {
	return Command[M]{actions: []action[M]{{kind: actionQuit}}}
}

// Perform returns a command that runs fn synchronously during command
// processing. Returning false produces no message.
func Perform[M any](fn func() (M, bool)) Command[M] {
	return Command[M]{actions: []action[M]{{kind: actionCallback, callback: fn}}}
}

// Future returns a command that runs fn on its own goroutine. The
// result, when fn returns true, is delivered to the update loop as an
// ordinary message. fn observes the runtime's context and should stop
// promptly once it is cancelled.
func Future[M any](fn func(ctx context.Context) (M, bool)) Command[M] {
	return Command[M]{actions: []action[M]{{kind: actionFuture, future: fn}}}
}

// Attempt is Future for fallible work: a nil error delivers the
// message, a non-nil error is recorded by the runtime instead.
func Attempt[M any](fn func(ctx context.Context) (M, error)) Command[M] {
	return Command[M]{actions: []action[M]{{kind: actionFallible, fallible: fn}}}
}

// Batch combines commands into one, preserving order.
func Batch[M any](cmds ...Command[M]) Command[M] {
	var out Command[M]
	for _, c := range cmds {
		out.actions = append(out.actions, c.actions...)
	}
	return out
}

// And returns c followed by next.
func (c Command[M]) And(next Command[M]) Command[M] {
	return Batch(c, next)
}

// MapCommand converts a child command into a parent command by mapping
// every produced message with f.
func MapCommand[M, N any](c Command[M], f func(M) N) Command[N] {
	out := Command[N]{actions: make([]action[N], 0, len(c.actions))}
	for _, a := range c.actions {
		switch a.kind {
		case actionMessage:
			out.actions = append(out.actions, action[N]{kind: actionMessage, msg: f(a.msg)})
		case actionQuit:
			out.actions = append(out.actions, action[N]{kind: actionQuit})
		case actionCallback:
			inner := a.callback
			out.actions = append(out.actions, action[N]{
				kind: actionCallback,
				callback: func() (N, bool) {
					m, ok := inner()
					if !ok {
						var zero N
						return zero, false
					}
					return f(m), true
				},
			})
		case actionFuture:
			inner := a.future
			out.actions = append(out.actions, action[N]{
				kind: actionFuture,
				future: func(ctx context.Context) (N, bool) {
					m, ok := inner(ctx)
					if !ok {
						var zero N
						return zero, false
					}
					return f(m), true
				},
			})
		case actionFallible:
			inner := a.fallible
			out.actions = append(out.actions, action[N]{
				kind: actionFallible,
				fallible: func(ctx context.Context) (N, error) {
					m, err := inner(ctx)
					if err != nil {
						var zero N
						return zero, err
					}
					return f(m), nil
				},
			})
		}
	}
	return out
}
