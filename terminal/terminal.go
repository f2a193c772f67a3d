package terminal

import (
	"fmt"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/ryanoneill/envision/backend"
)

// Terminal owns a Backend and double-buffers draws against it: each Draw
// renders into a fresh frame, diffs it against the previous one, and
// forwards only the changed cells before flushing.
type Terminal struct {
	backend  backend.Backend
	frame    *Frame
	previous []cellbuf.Cell
	width    int
	height   int
}

// New wraps a backend, sizing the buffers from it.
func New(b backend.Backend) (*Terminal, error) {
	size, err := b.Size()
	if err != nil {
		return nil, fmt.Errorf("reading backend size: %w", err)
	}
	t := &Terminal{backend: b}
	t.resize(size.Width, size.Height)
	return t, nil
}

// Backend returns the wrapped backend.
func (t *Terminal) Backend() backend.Backend { return t.backend }

// Size returns the current buffer size.
func (t *Terminal) Size() backend.Size {
	return backend.Size{Width: t.width, Height: t.height}
}

func (t *Terminal) resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	t.width = width
	t.height = height
	t.frame = newFrame(width, height)
	t.previous = make([]cellbuf.Cell, width*height)
	for i := range t.previous {
		t.previous[i] = blankCell()
	}
}

// Resize adjusts the buffers to a new size and forces the next draw to
// repaint everything.
func (t *Terminal) Resize(width, height int) error {
	t.resize(width, height)
	if err := t.backend.Clear(); err != nil {
		return fmt.Errorf("clearing backend on resize: %w", err)
	}
	return nil
}

// Draw runs the render callback against a blank frame, pushes the cells
// that changed since the previous draw to the backend, applies cursor
// state, and flushes.
func (t *Terminal) Draw(render func(*Frame)) error {
	t.frame.reset()
	render(t.frame)

	var ops []backend.DrawOp
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			i := y*t.width + x
			if cellsEqual(t.frame.cells[i], t.previous[i]) {
				continue
			}
			ops = append(ops, backend.DrawOp{X: x, Y: y, Cell: &t.frame.cells[i]})
		}
	}
	if err := t.backend.Draw(ops); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}

	if t.frame.cursorSet {
		if err := t.backend.SetCursorPosition(t.frame.cursor); err != nil {
			return fmt.Errorf("positioning cursor: %w", err)
		}
		if err := t.backend.ShowCursor(); err != nil {
			return fmt.Errorf("showing cursor: %w", err)
		}
	} else if err := t.backend.HideCursor(); err != nil {
		return fmt.Errorf("hiding cursor: %w", err)
	}

	if err := t.backend.Flush(); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}

	copy(t.previous, t.frame.cells)
	return nil
}

// Clear wipes both buffers and the backend.
func (t *Terminal) Clear() error {
	t.frame.reset()
	for i := range t.previous {
		t.previous[i] = blankCell()
	}
	if err := t.backend.Clear(); err != nil {
		return fmt.Errorf("clearing backend: %w", err)
	}
	return nil
}

func cellsEqual(a, b cellbuf.Cell) bool {
	if a.Rune != b.Rune || a.Width != b.Width || a.Style != b.Style || a.Link != b.Link {
		return false
	}
	if len(a.Comb) != len(b.Comb) {
		return false
	}
	for i := range a.Comb {
		if a.Comb[i] != b.Comb[i] {
			return false
		}
	}
	return true
}
