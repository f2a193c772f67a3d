package backend

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/cellbuf"
)

// ClearType selects how much of the grid ClearRegion wipes.
type ClearType int

const (
	// ClearAll wipes the whole grid.
	ClearAll ClearType = iota
	// ClearAfterCursor wipes from the cursor to the end of the grid.
	ClearAfterCursor
	// ClearBeforeCursor wipes from the start of the grid up to the
	// cursor; the cursor cell itself is untouched.
	ClearBeforeCursor
	// ClearCurrentLine wipes the cursor's row.
	ClearCurrentLine
	// ClearUntilNewLine wipes from the cursor to the end of its row.
	ClearUntilNewLine
)

// DrawOp places one cell at a grid coordinate.
type DrawOp struct {
	X    int
	Y    int
	Cell *cellbuf.Cell
}

// Backend is the rendering surface the terminal draws into.
type Backend interface {
	Draw(ops []DrawOp) error
	HideCursor() error
	ShowCursor() error
	CursorPosition() (Position, error)
	SetCursorPosition(Position) error
	Clear() error
	ClearRegion(ClearType) error
	Size() (Size, error)
	WindowSize() (WindowSize, error)
	Flush() error
}

// Estimated pixel footprint of one cell, used when a capture surface has
// no real window behind it.
const (
	DefaultCellPixelWidth  = 8
	DefaultCellPixelHeight = 16
)

// CaptureBackend is an in-memory Backend that records every cell drawn
// to it. Content can be inspected, rendered to plain text, ANSI or JSON,
// snapshotted, and diffed across frames.
//
// The frame counter starts at zero and increments only on Flush, so all
// drawing between flushes is stamped with the same frame.
type CaptureBackend struct {
	width         int
	height        int
	cells         []Cell
	cursor        Position
	cursorVisible bool
	currentFrame  uint64

	historyCapacity int
	history         []*FrameSnapshot

	cellPixelWidth  int
	cellPixelHeight int
}

var _ Backend = (*CaptureBackend)(nil)

// NewCaptureBackend returns a capture surface of the given size with
// history capture disabled.
func NewCaptureBackend(width, height int) *CaptureBackend {
	return NewCaptureBackendWithHistory(width, height, 0)
}

// NewCaptureBackendWithHistory returns a capture surface that retains up
// to capacity frame snapshots. Capacity zero disables history.
func NewCaptureBackendWithHistory(width, height, capacity int) *CaptureBackend {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = NewCell()
	}
	return &CaptureBackend{
		width:           width,
		height:          height,
		cells:           cells,
		cursorVisible:   true,
		historyCapacity: capacity,
		cellPixelWidth:  DefaultCellPixelWidth,
		cellPixelHeight: DefaultCellPixelHeight,
	}
}

// SetCellPixelSize overrides the per-cell pixel estimate reported by
// WindowSize.
func (b *CaptureBackend) SetCellPixelSize(w, h int) {
	if w > 0 {
		b.cellPixelWidth = w
	}
	if h > 0 {
		b.cellPixelHeight = h
	}
}

// Width returns the grid width in cells.
func (b *CaptureBackend) Width() int { return b.width }

// Height returns the grid height in cells.
func (b *CaptureBackend) Height() int { return b.height }

// CurrentFrame returns the number of completed flushes.
func (b *CaptureBackend) CurrentFrame() uint64 { return b.currentFrame }

// HistoryCapacity returns the configured history bound.
func (b *CaptureBackend) HistoryCapacity() int { return b.historyCapacity }

func (b *CaptureBackend) index(x, y int) int { return y*b.width + x }

func (b *CaptureBackend) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at (x, y), or false when out of bounds.
func (b *CaptureBackend) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[b.index(x, y)], true
}

// CellMut returns a pointer to the cell at (x, y) for in-place edits, or
// nil when out of bounds.
func (b *CaptureBackend) CellMut(x, y int) *Cell {
	if !b.inBounds(x, y) {
		return nil
	}
	return &b.cells[b.index(x, y)]
}

// Cells returns the backing cell slice in row-major order. The slice is
// live; mutations bypass frame stamping.
func (b *CaptureBackend) Cells() []Cell { return b.cells }

// RowContent returns the concatenated symbols of row y, or the empty
// string when y is out of range.
func (b *CaptureBackend) RowContent(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteString(b.cells[b.index(x, y)].Symbol)
	}
	return sb.String()
}

// ContentLines returns every row's content, top to bottom.
func (b *CaptureBackend) ContentLines() []string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		lines[y] = b.RowContent(y)
	}
	return lines
}

// ContainsText reports whether text occurs in any single row.
func (b *CaptureBackend) ContainsText(text string) bool {
	for y := 0; y < b.height; y++ {
		if strings.Contains(b.RowContent(y), text) {
			return true
		}
	}
	return false
}

// FindText returns the positions of all non-overlapping occurrences of
// text, searched row by row, left to right. The X coordinate is the
// column of the match's first cell.
func (b *CaptureBackend) FindText(text string) []Position {
	var found []Position
	if text == "" {
		return found
	}
	for y := 0; y < b.height; y++ {
		// Track the byte offset of each column so matches on wide or
		// multi-byte symbols map back to the right cell.
		offsets := make([]int, b.width+1)
		var row strings.Builder
		for x := 0; x < b.width; x++ {
			offsets[x] = row.Len()
			row.WriteString(b.cells[b.index(x, y)].Symbol)
		}
		offsets[b.width] = row.Len()
		content := row.String()
		from := 0
		for {
			i := strings.Index(content[from:], text)
			if i < 0 {
				break
			}
			at := from + i
			for x := 0; x < b.width; x++ {
				if offsets[x] <= at && at < offsets[x+1] {
					found = append(found, Position{X: x, Y: y})
					break
				}
			}
			from = at + len(text)
		}
	}
	return found
}

// Draw places cells on the grid, stamping each with the current frame.
// Out-of-bounds operations are ignored.
func (b *CaptureBackend) Draw(ops []DrawOp) error {
	for _, op := range ops {
		if !b.inBounds(op.X, op.Y) {
			continue
		}
		b.cells[b.index(op.X, op.Y)] = FromCellbuf(op.Cell, b.currentFrame)
	}
	return nil
}

// SetCell places a capture cell directly, stamping it with the current
// frame. Out of bounds is an error.
func (b *CaptureBackend) SetCell(x, y int, c Cell) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("cell (%d, %d) outside %dx%d grid", x, y, b.width, b.height)
	}
	c.LastModifiedFrame = b.currentFrame
	b.cells[b.index(x, y)] = c
	return nil
}

// HideCursor marks the cursor invisible.
func (b *CaptureBackend) HideCursor() error {
	b.cursorVisible = false
	return nil
}

// ShowCursor marks the cursor visible.
func (b *CaptureBackend) ShowCursor() error {
	b.cursorVisible = true
	return nil
}

// CursorVisible reports cursor visibility.
func (b *CaptureBackend) CursorVisible() bool { return b.cursorVisible }

// CursorPosition returns the cursor position.
func (b *CaptureBackend) CursorPosition() (Position, error) {
	return b.cursor, nil
}

// SetCursorPosition moves the cursor. The cursor may rest one past the
// last column or row, as after writing the final cell; positions beyond
// that are clamped.
func (b *CaptureBackend) SetCursorPosition(p Position) error {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.X > b.width {
		p.X = b.width
	}
	if p.Y > b.height {
		p.Y = b.height
	}
	b.cursor = p
	return nil
}

// Clear resets every cell to blank.
func (b *CaptureBackend) Clear() error {
	for i := range b.cells {
		b.cells[i].Reset()
	}
	return nil
}

// ClearRegion resets a cursor-relative region of the grid.
func (b *CaptureBackend) ClearRegion(ct ClearType) error {
	if len(b.cells) == 0 {
		return nil
	}
	var start, end int
	switch ct {
	case ClearAll:
		return b.Clear()
	case ClearAfterCursor:
		start = b.index(b.cursor.X, b.cursor.Y)
		end = len(b.cells)
	case ClearBeforeCursor:
		start = 0
		end = b.index(b.cursor.X, b.cursor.Y)
	case ClearCurrentLine:
		start = b.index(0, b.cursor.Y)
		end = start + b.width
	case ClearUntilNewLine:
		start = b.index(b.cursor.X, b.cursor.Y)
		end = b.index(0, b.cursor.Y) + b.width
	default:
		return fmt.Errorf("unknown clear type %d", ct)
	}
	for i := start; i < end && i < len(b.cells); i++ {
		b.cells[i].Reset()
	}
	return nil
}

// Size returns the grid size.
func (b *CaptureBackend) Size() (Size, error) {
	return Size{Width: b.width, Height: b.height}, nil
}

// WindowSize returns the grid size plus an estimated pixel size based on
// the configured per-cell pixel footprint.
func (b *CaptureBackend) WindowSize() (WindowSize, error) {
	return WindowSize{
		Columns: Size{Width: b.width, Height: b.height},
		Pixels: Size{
			Width:  b.width * b.cellPixelWidth,
			Height: b.height * b.cellPixelHeight,
		},
	}, nil
}

// Flush completes the current frame: when history capture is enabled the
// frame is snapshotted, then the frame counter advances.
func (b *CaptureBackend) Flush() error {
	if b.historyCapacity > 0 {
		b.saveToHistory()
	}
	b.currentFrame++
	return nil
}

func (b *CaptureBackend) saveToHistory() {
	if len(b.history) >= b.historyCapacity {
		b.history = b.history[1:]
	}
	b.history = append(b.history, b.Snapshot())
}

// Resize changes the grid size, preserving overlapping content. Cursor
// position is clamped to the new bounds.
func (b *CaptureBackend) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = NewCell()
	}
	for y := 0; y < height && y < b.height; y++ {
		for x := 0; x < width && x < b.width; x++ {
			cells[y*width+x] = b.cells[b.index(x, y)]
		}
	}
	b.width = width
	b.height = height
	b.cells = cells
	b.SetCursorPosition(b.cursor)
}

// Snapshot captures the current grid state. Cell data is copied once at
// capture time; the snapshot never changes afterward.
func (b *CaptureBackend) Snapshot() *FrameSnapshot {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &FrameSnapshot{
		Frame: b.currentFrame,
		Size:  Size{Width: b.width, Height: b.height},
		Cursor: CursorSnapshot{
			Position: b.cursor,
			Visible:  b.cursorVisible,
		},
		cells: cells,
	}
}

// History returns the retained snapshots, oldest first. The slice is a
// copy; the snapshots are shared.
func (b *CaptureBackend) History() []*FrameSnapshot {
	out := make([]*FrameSnapshot, len(b.history))
	copy(out, b.history)
	return out
}

// HistoryLen returns the number of retained snapshots.
func (b *CaptureBackend) HistoryLen() int { return len(b.history) }

// HistoryFrame returns the retained snapshot with the given frame number,
// or false when it has been evicted or never captured.
func (b *CaptureBackend) HistoryFrame(frame uint64) (*FrameSnapshot, bool) {
	for _, s := range b.history {
		if s.Frame == frame {
			return s, true
		}
	}
	return nil, false
}

// ClearHistory drops all retained snapshots.
func (b *CaptureBackend) ClearHistory() { b.history = nil }

// DiffFromPrevious diffs the most recent retained snapshot against the
// current grid, or false when history is empty.
func (b *CaptureBackend) DiffFromPrevious() (*FrameDiff, bool) {
	if len(b.history) == 0 {
		return nil, false
	}
	prev := b.history[len(b.history)-1]
	return b.DiffFrom(prev), true
}

// DiffFrom diffs an earlier snapshot against the current grid.
func (b *CaptureBackend) DiffFrom(prev *FrameSnapshot) *FrameDiff {
	return diffSnapshots(prev, b.Snapshot())
}

// String renders the grid as plain text.
func (b *CaptureBackend) String() string {
	return b.Render(FormatPlain)
}
