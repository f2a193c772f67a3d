// Package harness provides a test harness for driving applications
// against a capture backend: simulated input, screen queries, snapshot
// files and golden-file matching.
package harness

import (
	"fmt"
	"strings"

	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/input"
	"github.com/ryanoneill/envision/terminal"
)

// Harness couples a capture backend, a terminal and an event queue for
// exercising render code in tests.
type Harness struct {
	capture *backend.CaptureBackend
	term    *terminal.Terminal
	events  *input.EventQueue
}

// New returns a harness over a fresh capture backend of the given
// dimensions, with history enabled.
func New(width, height int) (*Harness, error) {
	capture := backend.NewCaptureBackendWithHistory(width, height, 100)
	term, err := terminal.New(capture)
	if err != nil {
		return nil, fmt.Errorf("creating terminal: %w", err)
	}
	return &Harness{
		capture: capture,
		term:    term,
		events:  input.NewEventQueue(),
	}, nil
}

// Width returns the backend width.
func (h *Harness) Width() int { return h.capture.Width() }

// Height returns the backend height.
func (h *Harness) Height() int { return h.capture.Height() }

// FrameCount returns the backend's frame counter.
func (h *Harness) FrameCount() uint64 { return h.capture.CurrentFrame() }

// Backend returns the capture backend.
func (h *Harness) Backend() *backend.CaptureBackend { return h.capture }

// Terminal returns the terminal.
func (h *Harness) Terminal() *terminal.Terminal { return h.term }

// Events returns the simulated input queue.
func (h *Harness) Events() *input.EventQueue { return h.events }

// Render runs one draw cycle with the given render function.
func (h *Harness) Render(render func(*terminal.Frame)) error {
	return h.term.Draw(render)
}

// Screen returns the rendered screen as plain text.
func (h *Harness) Screen() string { return h.capture.String() }

// Row returns the content of row y.
func (h *Harness) Row(y int) string { return h.capture.RowContent(y) }

// Snapshot returns a snapshot of the current frame.
func (h *Harness) Snapshot() *backend.FrameSnapshot { return h.capture.Snapshot() }

// Contains reports whether needle appears in any row.
func (h *Harness) Contains(needle string) bool { return h.capture.ContainsText(needle) }

// FindText returns the position of the first occurrence of needle, or
// false when absent.
func (h *Harness) FindText(needle string) (backend.Position, bool) {
	found := h.capture.FindText(needle)
	if len(found) == 0 {
		return backend.Position{}, false
	}
	return found[0], true
}

// FindAllText returns every occurrence of needle.
func (h *Harness) FindAllText(needle string) []backend.Position {
	return h.capture.FindText(needle)
}

// RegionContent returns the text inside the given rectangle, one line
// per row.
func (h *Harness) RegionContent(area backend.Rect) string {
	var lines []string
	for y := area.Y; y < area.Bottom(); y++ {
		row := h.capture.RowContent(y)
		runes := []rune(row)
		x := min(area.X, len(runes))
		end := min(area.Right(), len(runes))
		lines = append(lines, string(runes[x:end]))
	}
	return strings.Join(lines, "\n")
}

// PushEvent queues a simulated input event.
func (h *Harness) PushEvent(ev input.Event) { h.events.Push(ev) }

// PopEvent removes and returns the next queued event.
func (h *Harness) PopEvent() (input.Event, bool) { return h.events.Pop() }

// ClearEvents empties the event queue.
func (h *Harness) ClearEvents() { h.events.Clear() }

// TypeString queues a key event per character of s.
func (h *Harness) TypeString(s string) { h.events.PushText(s) }

// Enter queues an Enter key press.
func (h *Harness) Enter() { h.events.Push(input.Enter()) }

// Escape queues an Escape key press.
func (h *Harness) Escape() { h.events.Push(input.Escape()) }

// Tab queues a Tab key press.
func (h *Harness) Tab() { h.events.Push(input.KeyPress(input.KeyTab)) }

// Ctrl queues a Ctrl+char key press.
func (h *Harness) Ctrl(c rune) { h.events.Push(input.Ctrl(c)) }

// Click queues a left mouse click at (x, y).
func (h *Harness) Click(x, y int) { h.events.Push(input.Click(x, y)) }
