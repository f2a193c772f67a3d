package backend

import (
	"fmt"
	"strings"
)

// CellChange records one cell that differs between two frames.
type CellChange struct {
	Position Position `json:"position"`
	Old      Cell     `json:"old"`
	New      Cell     `json:"new"`
}

// FrameDiff describes how a later frame differs from an earlier one.
// Changed cells are restricted to the intersection of the two grids and
// listed in row-major order.
type FrameDiff struct {
	FromFrame    uint64       `json:"from_frame"`
	ToFrame      uint64       `json:"to_frame"`
	ChangedCells []CellChange `json:"changed_cells"`
	SizeChanged  bool         `json:"size_changed"`
	CursorMoved  bool         `json:"cursor_moved"`
}

func diffSnapshots(from, to *FrameSnapshot) *FrameDiff {
	d := &FrameDiff{
		FromFrame:   from.Frame,
		ToFrame:     to.Frame,
		SizeChanged: from.Size != to.Size,
		CursorMoved: from.Cursor.Position != to.Cursor.Position,
	}
	w := min(from.Size.Width, to.Size.Width)
	h := min(from.Size.Height, to.Size.Height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			oldCell := from.cells[y*from.Size.Width+x]
			newCell := to.cells[y*to.Size.Width+x]
			if !oldCell.Equal(newCell) {
				d.ChangedCells = append(d.ChangedCells, CellChange{
					Position: Position{X: x, Y: y},
					Old:      oldCell,
					New:      newCell,
				})
			}
		}
	}
	return d
}

// HasChanges reports whether anything differs between the frames.
func (d *FrameDiff) HasChanges() bool {
	return len(d.ChangedCells) > 0 || d.SizeChanged || d.CursorMoved
}

// ChangedCount returns the number of changed cells.
func (d *FrameDiff) ChangedCount() int { return len(d.ChangedCells) }

// String summarizes the diff, one line per changed cell.
func (d *FrameDiff) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "frame %d -> %d: %d cell(s) changed", d.FromFrame, d.ToFrame, len(d.ChangedCells))
	if d.SizeChanged {
		sb.WriteString(", size changed")
	}
	if d.CursorMoved {
		sb.WriteString(", cursor moved")
	}
	sb.WriteByte('\n')
	for _, ch := range d.ChangedCells {
		fmt.Fprintf(&sb, "  (%d, %d): %q -> %q\n",
			ch.Position.X, ch.Position.Y, ch.Old.Symbol, ch.New.Symbol)
	}
	return sb.String()
}
