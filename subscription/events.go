package subscription

import (
	"context"

	"github.com/ryanoneill/envision/input"
)

// Events returns a subscription that maps terminal input events to
// messages. Events for which handler returns false are dropped. The
// stream ends when the event source closes.
func Events[M any](events <-chan input.Event, handler func(input.Event) (M, bool)) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-events:
					if !ok {
						return
					}
					m, keep := handler(ev)
					if !keep {
						continue
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
