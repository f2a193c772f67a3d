package subscription

import (
	"context"
	"sync"
	"time"
)

// Map transforms every message of inner with f.
func Map[M, N any](inner Subscription[M], f func(M) N) Subscription[N] {
	return Func[N](func(ctx context.Context) <-chan N {
		in := inner.Stream(ctx)
		out := make(chan N)
		go func() {
			defer close(out)
			for m := range in {
				if !emit(ctx, out, f(m)) {
					return
				}
			}
		}()
		return out
	})
}

// Filter drops messages for which pred returns false.
func Filter[M any](inner Subscription[M], pred func(M) bool) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		in := inner.Stream(ctx)
		out := make(chan M)
		go func() {
			defer close(out)
			for m := range in {
				if !pred(m) {
					continue
				}
				if !emit(ctx, out, m) {
					return
				}
			}
		}()
		return out
	})
}

// Take ends the stream after n messages, cancelling the inner
// subscription. Take with n of zero yields no messages at all.
func Take[M any](inner Subscription[M], n int) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		innerCtx, cancel := context.WithCancel(ctx)
		if n <= 0 {
			cancel()
			close(out)
			return out
		}
		in := inner.Stream(innerCtx)
		go func() {
			defer close(out)
			defer cancel()
			seen := 0
			for m := range in {
				if !emit(ctx, out, m) {
					return
				}
				seen++
				if seen >= n {
					return
				}
			}
		}()
		return out
	})
}

// Batch merges several subscriptions into one stream. The merged stream
// ends when every member has ended; cancellation reaches all members.
func Batch[M any](subs ...Subscription[M]) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		out := make(chan M)
		var wg sync.WaitGroup
		for _, sub := range subs {
			in := sub.Stream(ctx)
			wg.Add(1)
			go func() {
				defer wg.Done()
				for m := range in {
					if !emit(ctx, out, m) {
						return
					}
				}
			}()
		}
		go func() {
			wg.Wait()
			close(out)
		}()
		return out
	})
}

// Debounce delays messages until the inner stream has been quiet for d,
// emitting only the most recent one. A pending message is flushed when
// the inner stream ends.
func Debounce[M any](inner Subscription[M], d time.Duration) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		in := inner.Stream(ctx)
		out := make(chan M)
		go func() {
			defer close(out)
			var pending M
			has := false
			timer := time.NewTimer(d)
			defer timer.Stop()
			if !timer.Stop() {
				<-timer.C
			}
			for {
				select {
				case <-ctx.Done():
					return
				case m, ok := <-in:
					if !ok {
						if has {
							emit(ctx, out, pending)
						}
						return
					}
					pending = m
					has = true
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(d)
				case <-timer.C:
					if has {
						has = false
						if !emit(ctx, out, pending) {
							return
						}
					}
				}
			}
		}()
		return out
	})
}

// Throttle drops messages that arrive within d of the last emitted one.
func Throttle[M any](inner Subscription[M], d time.Duration) Subscription[M] {
	return Func[M](func(ctx context.Context) <-chan M {
		in := inner.Stream(ctx)
		out := make(chan M)
		go func() {
			defer close(out)
			var lastEmit time.Time
			for m := range in {
				now := time.Now()
				if !lastEmit.IsZero() && now.Sub(lastEmit) < d {
					continue
				}
				if !emit(ctx, out, m) {
					return
				}
				lastEmit = now
			}
		}()
		return out
	})
}
