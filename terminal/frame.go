package terminal

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/rivo/uniseg"

	"github.com/ryanoneill/envision/backend"
)

// Frame is the drawing surface handed to a render callback. It is a
// working buffer: nothing reaches the backend until the draw completes.
type Frame struct {
	width  int
	height int
	cells  []cellbuf.Cell

	cursor    backend.Position
	cursorSet bool
}

func newFrame(width, height int) *Frame {
	f := &Frame{width: width, height: height, cells: make([]cellbuf.Cell, width*height)}
	f.reset()
	return f
}

func blankCell() cellbuf.Cell {
	return cellbuf.Cell{Rune: ' ', Width: 1}
}

func (f *Frame) reset() {
	for i := range f.cells {
		f.cells[i] = blankCell()
	}
	f.cursorSet = false
	f.cursor = backend.Position{}
}

// Size returns the frame extent.
func (f *Frame) Size() backend.Size {
	return backend.Size{Width: f.width, Height: f.height}
}

// Area returns the full frame as a rectangle, for layout.
func (f *Frame) Area() backend.Rect {
	return backend.Rect{Width: f.width, Height: f.height}
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Cell returns a pointer to the cell at (x, y) for direct edits, or nil
// when out of bounds.
func (f *Frame) Cell(x, y int) *cellbuf.Cell {
	if !f.inBounds(x, y) {
		return nil
	}
	return &f.cells[y*f.width+x]
}

// SetCell places a cell. Out-of-bounds placements are ignored.
func (f *Frame) SetCell(x, y int, c cellbuf.Cell) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = c
}

// SetString writes s starting at (x, y), one grapheme cluster per cell.
// Wide clusters occupy extra continuation cells. Writing stops at the
// right edge; rows do not wrap.
func (f *Frame) SetString(x, y int, s string, st backend.Style) {
	if y < 0 || y >= f.height {
		return
	}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if x >= f.width {
			break
		}
		cluster := gr.Str()
		width := gr.Width()
		if width < 1 {
			continue
		}
		if x >= 0 {
			cell := styledCell(cluster, width, st)
			f.cells[y*f.width+x] = cell
			for i := 1; i < width && x+i < f.width; i++ {
				f.cells[y*f.width+x+i] = cellbuf.Cell{}
			}
		}
		x += width
	}
}

// SetStyle folds a style into every cell of the area.
func (f *Frame) SetStyle(area backend.Rect, st backend.Style) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if !f.inBounds(x, y) {
				continue
			}
			cell := &f.cells[y*f.width+x]
			capture := backend.FromCellbuf(cell, 0)
			capture.ApplyStyle(st)
			*cell = capture.ToCellbuf()
		}
	}
}

// Fill sets every cell of the area to c.
func (f *Frame) Fill(area backend.Rect, c cellbuf.Cell) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			f.SetCell(x, y, c)
		}
	}
}

// Clear blanks the area.
func (f *Frame) Clear(area backend.Rect) {
	f.Fill(area, blankCell())
}

// SetCursor requests the cursor be shown at (x, y) after this frame.
// Without a call the cursor is hidden.
func (f *Frame) SetCursor(x, y int) {
	f.cursor = backend.Position{X: x, Y: y}
	f.cursorSet = true
}

func styledCell(cluster string, width int, st backend.Style) cellbuf.Cell {
	capture := backend.CellWithSymbol(cluster)
	capture.ApplyStyle(st)
	cell := capture.ToCellbuf()
	cell.Width = width
	return cell
}
