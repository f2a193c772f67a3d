package subscription

import (
	"context"
	"time"
)

// Subscription is a lazy source of messages. Stream starts the source
// and returns its channel; the channel is closed when the source ends
// or the context is cancelled. A subscription does nothing until
// Stream is called.
type Subscription[M any] interface {
	Stream(ctx context.Context) <-chan M
}

// Func adapts a plain function to the Subscription interface.
type Func[M any] func(ctx context.Context) <-chan M

// Stream calls f.
func (f Func[M]) Stream(ctx context.Context) <-chan M { return f(ctx) }

func emit[M any](ctx context.Context, out chan<- M, m M) bool {
	select {
	case out <- m:
		return true
	case <-ctx.Done():
		return false
	}
}

// TickBuilder configures a fixed-interval subscription. The first
// message arrives one interval after the stream starts.
type TickBuilder[M any] struct {
	interval  time.Duration
	immediate bool
}

// Tick returns a builder for a subscription that fires every interval.
func Tick[M any](interval time.Duration) TickBuilder[M] {
	return TickBuilder[M]{interval: interval}
}

// IntervalImmediate returns a builder like Tick whose first message is
// emitted as soon as the stream starts, strictly before any
// interval-spaced message.
func IntervalImmediate[M any](interval time.Duration) TickBuilder[M] {
	return TickBuilder[M]{interval: interval, immediate: true}
}

// WithMessage completes the builder: f produces each emitted message.
func (b TickBuilder[M]) WithMessage(f func() M) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			if b.immediate {
				if !emit(ctx, out, f()) {
					return
				}
			}
			ticker := time.NewTicker(b.interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if !emit(ctx, out, f()) {
						return
					}
				}
			}
		}()
		return out
	})
}

// Timer returns a subscription that emits msg once after delay, then
// ends.
func Timer[M any](delay time.Duration, msg M) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
			case <-timer.C:
				emit(ctx, out, msg)
			}
		}()
		return out
	})
}

// Channel returns a subscription that forwards messages from ch until
// ch is closed or the stream is cancelled.
func Channel[M any](ch <-chan M) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case m, ok := <-ch:
					if !ok {
						return
					}
					if !emit(ctx, out, m) {
						return
					}
				}
			}
		}()
		return out
	})
}

// Generate returns a subscription that repeatedly calls next for the
// next message. Returning false ends the stream. next observes the
// stream context and should return promptly once it is cancelled.
func Generate[M any](next func(ctx context.Context) (M, bool)) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			for {
				if ctx.Err() != nil {
					return
				}
				m, ok := next(ctx)
				if !ok {
					return
				}
				if !emit(ctx, out, m) {
					return
				}
			}
		}()
		return out
	})
}
