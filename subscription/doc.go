// Package subscription provides cancellable message streams for
// driving applications: timers, tickers, channels and event sources,
// plus combinators to map, filter, limit, merge, debounce and throttle
// them. Streams are lazy; nothing runs until Stream is called, and the
// stream's context cancels every goroutine it started.
package subscription
