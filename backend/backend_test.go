package backend

import (
	"testing"

	"github.com/charmbracelet/x/cellbuf"
)

func drawText(t *testing.T, b *CaptureBackend, x, y int, text string) {
	t.Helper()
	var ops []DrawOp
	for i, r := range []rune(text) {
		cell := cellbuf.Cell{Rune: r, Width: 1}
		ops = append(ops, DrawOp{X: x + i, Y: y, Cell: &cell})
	}
	if err := b.Draw(ops); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
}

func TestNewCaptureBackend(t *testing.T) {
	b := NewCaptureBackend(10, 4)
	size, err := b.Size()
	if err != nil {
		t.Fatalf("Size() error = %v", err)
	}
	if size.Width != 10 || size.Height != 4 {
		t.Errorf("Size() = %v, want 10x4", size)
	}
	if b.CurrentFrame() != 0 {
		t.Errorf("CurrentFrame() = %d, want 0", b.CurrentFrame())
	}
	if !b.CursorVisible() {
		t.Errorf("cursor should start visible")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			cell, ok := b.Cell(x, y)
			if !ok || !cell.IsEmpty() {
				t.Fatalf("cell (%d, %d) = %+v, ok=%v, want empty", x, y, cell, ok)
			}
		}
	}
}

func TestCellBoundsChecks(t *testing.T) {
	b := NewCaptureBackend(3, 2)
	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{name: "origin", x: 0, y: 0, ok: true},
		{name: "last", x: 2, y: 1, ok: true},
		{name: "x too big", x: 3, y: 0, ok: false},
		{name: "y too big", x: 0, y: 2, ok: false},
		{name: "negative x", x: -1, y: 0, ok: false},
		{name: "negative y", x: 0, y: -1, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := b.Cell(tt.x, tt.y); ok != tt.ok {
				t.Errorf("Cell(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
			}
			mut := b.CellMut(tt.x, tt.y)
			if (mut != nil) != tt.ok {
				t.Errorf("CellMut(%d, %d) nil = %v, want %v", tt.x, tt.y, mut == nil, !tt.ok)
			}
		})
	}
}

func TestDrawStampsCurrentFrame(t *testing.T) {
	b := NewCaptureBackend(10, 2)
	drawText(t, b, 0, 0, "a")
	cell, _ := b.Cell(0, 0)
	if cell.LastModifiedFrame != 0 {
		t.Errorf("LastModifiedFrame = %d, want 0", cell.LastModifiedFrame)
	}

	if err := b.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	drawText(t, b, 1, 0, "b")
	cell, _ = b.Cell(1, 0)
	if cell.LastModifiedFrame != 1 {
		t.Errorf("LastModifiedFrame = %d, want 1", cell.LastModifiedFrame)
	}
	// The earlier cell keeps its original stamp.
	cell, _ = b.Cell(0, 0)
	if cell.LastModifiedFrame != 0 {
		t.Errorf("untouched cell stamp = %d, want 0", cell.LastModifiedFrame)
	}
}

func TestFrameCounterAdvancesOnlyOnFlush(t *testing.T) {
	b := NewCaptureBackend(5, 5)
	drawText(t, b, 0, 0, "x")
	drawText(t, b, 1, 0, "y")
	if b.CurrentFrame() != 0 {
		t.Errorf("CurrentFrame() = %d after draws, want 0", b.CurrentFrame())
	}
	for i := 0; i < 3; i++ {
		if err := b.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}
	}
	if b.CurrentFrame() != 3 {
		t.Errorf("CurrentFrame() = %d, want 3", b.CurrentFrame())
	}
}

func TestDrawIgnoresOutOfBounds(t *testing.T) {
	b := NewCaptureBackend(2, 2)
	cell := cellbuf.Cell{Rune: 'x', Width: 1}
	err := b.Draw([]DrawOp{
		{X: 5, Y: 5, Cell: &cell},
		{X: -1, Y: 0, Cell: &cell},
		{X: 1, Y: 1, Cell: &cell},
	})
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	got, _ := b.Cell(1, 1)
	if got.Symbol != "x" {
		t.Errorf("in-bounds draw not applied, got %q", got.Symbol)
	}
}

func TestRowContent(t *testing.T) {
	b := NewCaptureBackend(5, 2)
	drawText(t, b, 0, 0, "hello")
	tests := []struct {
		name string
		y    int
		want string
	}{
		{name: "written row", y: 0, want: "hello"},
		{name: "blank row", y: 1, want: "     "},
		{name: "below grid", y: 2, want: ""},
		{name: "negative", y: -1, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.RowContent(tt.y); got != tt.want {
				t.Errorf("RowContent(%d) = %q, want %q", tt.y, got, tt.want)
			}
		})
	}
}

func TestFindText(t *testing.T) {
	b := NewCaptureBackend(10, 3)
	drawText(t, b, 0, 0, "abcabc")
	drawText(t, b, 3, 2, "abc")

	got := b.FindText("abc")
	want := []Position{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("FindText() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindText()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if found := b.FindText("zzz"); len(found) != 0 {
		t.Errorf("FindText(zzz) = %v, want none", found)
	}
	if found := b.FindText(""); len(found) != 0 {
		t.Errorf("FindText(\"\") = %v, want none", found)
	}
	if !b.ContainsText("cab") {
		t.Errorf("ContainsText(cab) = false, want true")
	}
	if b.ContainsText("cabz") {
		t.Errorf("ContainsText(cabz) = true, want false")
	}
}

func TestSetCursorPositionClamps(t *testing.T) {
	b := NewCaptureBackend(4, 3)
	tests := []struct {
		name string
		in   Position
		want Position
	}{
		{name: "inside", in: Position{X: 2, Y: 1}, want: Position{X: 2, Y: 1}},
		{name: "right edge", in: Position{X: 4, Y: 1}, want: Position{X: 4, Y: 1}},
		{name: "bottom edge", in: Position{X: 0, Y: 3}, want: Position{X: 0, Y: 3}},
		{name: "past right", in: Position{X: 10, Y: 1}, want: Position{X: 4, Y: 1}},
		{name: "past bottom", in: Position{X: 0, Y: 9}, want: Position{X: 0, Y: 3}},
		{name: "negative", in: Position{X: -2, Y: -2}, want: Position{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.SetCursorPosition(tt.in); err != nil {
				t.Fatalf("SetCursorPosition() error = %v", err)
			}
			got, _ := b.CursorPosition()
			if got != tt.want {
				t.Errorf("CursorPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursorVisibility(t *testing.T) {
	b := NewCaptureBackend(2, 2)
	if err := b.HideCursor(); err != nil {
		t.Fatalf("HideCursor() error = %v", err)
	}
	if b.CursorVisible() {
		t.Errorf("cursor should be hidden")
	}
	if err := b.ShowCursor(); err != nil {
		t.Fatalf("ShowCursor() error = %v", err)
	}
	if !b.CursorVisible() {
		t.Errorf("cursor should be visible")
	}
}

func TestClearRegion(t *testing.T) {
	// 5x3 grid filled with 'abcde' on each row, cursor at (2, 1).
	setup := func(t *testing.T) *CaptureBackend {
		b := NewCaptureBackend(5, 3)
		for y := 0; y < 3; y++ {
			drawText(t, b, 0, y, "abcde")
		}
		if err := b.SetCursorPosition(Position{X: 2, Y: 1}); err != nil {
			t.Fatalf("SetCursorPosition() error = %v", err)
		}
		return b
	}
	tests := []struct {
		name string
		ct   ClearType
		want []string
	}{
		{name: "all", ct: ClearAll, want: []string{"     ", "     ", "     "}},
		{name: "after cursor", ct: ClearAfterCursor, want: []string{"abcde", "ab   ", "     "}},
		{name: "before cursor", ct: ClearBeforeCursor, want: []string{"     ", "  cde", "abcde"}},
		{name: "current line", ct: ClearCurrentLine, want: []string{"abcde", "     ", "abcde"}},
		{name: "until newline", ct: ClearUntilNewLine, want: []string{"abcde", "ab   ", "abcde"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setup(t)
			if err := b.ClearRegion(tt.ct); err != nil {
				t.Fatalf("ClearRegion() error = %v", err)
			}
			for y, want := range tt.want {
				if got := b.RowContent(y); got != want {
					t.Errorf("row %d = %q, want %q", y, got, want)
				}
			}
		})
	}
}

func TestWindowSize(t *testing.T) {
	b := NewCaptureBackend(80, 24)
	ws, err := b.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize() error = %v", err)
	}
	if ws.Columns.Width != 80 || ws.Columns.Height != 24 {
		t.Errorf("Columns = %v, want 80x24", ws.Columns)
	}
	if ws.Pixels.Width != 640 || ws.Pixels.Height != 384 {
		t.Errorf("Pixels = %v, want 640x384", ws.Pixels)
	}

	b.SetCellPixelSize(10, 20)
	ws, _ = b.WindowSize()
	if ws.Pixels.Width != 800 || ws.Pixels.Height != 480 {
		t.Errorf("Pixels after override = %v, want 800x480", ws.Pixels)
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	b := NewCaptureBackend(5, 3)
	drawText(t, b, 0, 0, "hello")
	drawText(t, b, 0, 2, "world")
	b.SetCursorPosition(Position{X: 4, Y: 2})

	b.Resize(3, 2)
	if got := b.RowContent(0); got != "hel" {
		t.Errorf("row 0 = %q, want %q", got, "hel")
	}
	cursor, _ := b.CursorPosition()
	if cursor != (Position{X: 2, Y: 1}) {
		t.Errorf("cursor = %v, want clamped to (2, 1)", cursor)
	}

	b.Resize(6, 3)
	if got := b.RowContent(0); got != "hel   " {
		t.Errorf("row 0 after grow = %q, want %q", got, "hel   ")
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	b := NewCaptureBackend(5, 1)
	drawText(t, b, 0, 0, "aaaaa")
	snap := b.Snapshot()

	drawText(t, b, 0, 0, "bbbbb")
	if got := snap.RowContent(0); got != "aaaaa" {
		t.Errorf("snapshot changed after later draws: %q", got)
	}
}

func TestHistoryBounded(t *testing.T) {
	b := NewCaptureBackendWithHistory(3, 1, 2)
	for i := 0; i < 5; i++ {
		drawText(t, b, 0, 0, string(rune('a'+i)))
		if err := b.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}
	}
	if b.HistoryLen() != 2 {
		t.Fatalf("HistoryLen() = %d, want 2", b.HistoryLen())
	}
	// Oldest frames were evicted; frames 3 and 4 remain.
	history := b.History()
	if history[0].Frame != 3 || history[1].Frame != 4 {
		t.Errorf("history frames = %d, %d, want 3, 4", history[0].Frame, history[1].Frame)
	}
	if _, ok := b.HistoryFrame(0); ok {
		t.Errorf("frame 0 should have been evicted")
	}
	if snap, ok := b.HistoryFrame(4); !ok || snap.RowContent(0) != "e  " {
		t.Errorf("HistoryFrame(4) = %v, ok=%v", snap, ok)
	}
}

func TestHistoryDisabledByZeroCapacity(t *testing.T) {
	b := NewCaptureBackend(3, 1)
	for i := 0; i < 4; i++ {
		if err := b.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}
	}
	if b.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0 with capacity 0", b.HistoryLen())
	}
	if _, ok := b.DiffFromPrevious(); ok {
		t.Errorf("DiffFromPrevious() should report no history")
	}
}

func TestClearHistory(t *testing.T) {
	b := NewCaptureBackendWithHistory(2, 1, 5)
	b.Flush()
	b.Flush()
	if b.HistoryLen() != 2 {
		t.Fatalf("HistoryLen() = %d, want 2", b.HistoryLen())
	}
	b.ClearHistory()
	if b.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d after clear, want 0", b.HistoryLen())
	}
}

func TestDiffFromPrevious(t *testing.T) {
	b := NewCaptureBackendWithHistory(5, 1, 3)
	drawText(t, b, 0, 0, "aaaaa")
	b.Flush()

	drawText(t, b, 2, 0, "x")
	diff, ok := b.DiffFromPrevious()
	if !ok {
		t.Fatalf("DiffFromPrevious() found no history")
	}
	if !diff.HasChanges() || diff.ChangedCount() != 1 {
		t.Fatalf("diff = %+v, want one changed cell", diff)
	}
	ch := diff.ChangedCells[0]
	if ch.Position != (Position{X: 2, Y: 0}) || ch.Old.Symbol != "a" || ch.New.Symbol != "x" {
		t.Errorf("change = %+v, want a->x at (2, 0)", ch)
	}
}
