package app

import (
	"time"

	"github.com/ryanoneill/envision/logging"
)

// Config tunes a Runtime.
type Config struct {
	// TickRate is the interval between runtime ticks.
	TickRate time.Duration
	// MaxMessagesPerTick bounds how many queued events one tick may
	// drain, so a flood cannot starve rendering.
	MaxMessagesPerTick int
	// HistoryCapacity bounds the capture backend's frame history when
	// the runtime constructs the backend itself. Zero disables history.
	HistoryCapacity int
	// MessageBuffer sizes the channel carrying messages from futures
	// and subscriptions.
	MessageBuffer int
	// Logger receives runtime diagnostics. Nil disables logging.
	Logger *logging.Logger
}

// DefaultConfig returns the standard tuning: 50ms ticks, at most 100
// events per tick, history of 10 frames, message buffer of 64.
func DefaultConfig() Config {
	return Config{
		TickRate:           50 * time.Millisecond,
		MaxMessagesPerTick: 100,
		HistoryCapacity:    10,
		MessageBuffer:      64,
	}
}

// WithTickRate returns c with the tick interval replaced.
func (c Config) WithTickRate(d time.Duration) Config {
	c.TickRate = d
	return c
}

// WithMaxMessagesPerTick returns c with the per-tick event bound
// replaced.
func (c Config) WithMaxMessagesPerTick(n int) Config {
	c.MaxMessagesPerTick = n
	return c
}

// WithHistoryCapacity returns c with the frame history bound replaced.
func (c Config) WithHistoryCapacity(n int) Config {
	c.HistoryCapacity = n
	return c
}

// WithLogger returns c with the logger replaced.
func (c Config) WithLogger(l *logging.Logger) Config {
	c.Logger = l
	return c
}

func (c Config) normalized() Config {
	if c.TickRate <= 0 {
		c.TickRate = 50 * time.Millisecond
	}
	if c.MaxMessagesPerTick <= 0 {
		c.MaxMessagesPerTick = 100
	}
	if c.MessageBuffer <= 0 {
		c.MessageBuffer = 64
	}
	return c
}
