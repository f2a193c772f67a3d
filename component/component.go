// Package component provides reusable message-driven UI components.
//
// A Component owns no state of its own: it declares a state type, a
// message type and an output type, and applies messages to state the
// caller holds. Outputs are how a component reports meaningful changes
// (a selection, a submission) to the application embedding it.
package component

import (
	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/terminal"
	"github.com/ryanoneill/envision/theme"
)

// Component applies messages of type M to state of type S, emitting an
// output of type O when something the host cares about happened.
// Update returns false when there is no output. View renders the state
// into the given area and must not mutate it.
type Component[S, M, O any] interface {
	Init() S
	Update(state *S, msg M) (O, bool)
	View(state *S, f *terminal.Frame, area backend.Rect, th theme.Theme)
}

// Focusable is implemented by components whose state tracks keyboard
// focus.
type Focusable[S any] interface {
	IsFocused(state *S) bool
	SetFocused(state *S, focused bool)
}

// Focus marks the component focused.
func Focus[S any](c Focusable[S], state *S) {
	c.SetFocused(state, true)
}

// Blur removes focus.
func Blur[S any](c Focusable[S], state *S) {
	c.SetFocused(state, false)
}

// Toggleable is implemented by components that can be shown and hidden.
type Toggleable[S any] interface {
	IsVisible(state *S) bool
	SetVisible(state *S, visible bool)
}

// Show makes the component visible.
func Show[S any](c Toggleable[S], state *S) {
	c.SetVisible(state, true)
}

// Hide makes the component invisible.
func Hide[S any](c Toggleable[S], state *S) {
	c.SetVisible(state, false)
}

// Toggle flips visibility.
func Toggle[S any](c Toggleable[S], state *S) {
	c.SetVisible(state, !c.IsVisible(state))
}

// drawBox draws a single-line border around the area's perimeter.
func drawBox(f *terminal.Frame, area backend.Rect, st backend.Style) {
	if area.Width < 2 || area.Height < 2 {
		return
	}
	right := area.Right() - 1
	bottom := area.Bottom() - 1
	f.SetString(area.X, area.Y, "┌", st)
	f.SetString(right, area.Y, "┐", st)
	f.SetString(area.X, bottom, "└", st)
	f.SetString(right, bottom, "┘", st)
	for x := area.X + 1; x < right; x++ {
		f.SetString(x, area.Y, "─", st)
		f.SetString(x, bottom, "─", st)
	}
	for y := area.Y + 1; y < bottom; y++ {
		f.SetString(area.X, y, "│", st)
		f.SetString(right, y, "│", st)
	}
}

// truncate clips s to at most width cells, assuming single-width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
