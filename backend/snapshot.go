package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CursorSnapshot records cursor state at capture time.
type CursorSnapshot struct {
	Position Position
	Visible  bool
}

// FrameSnapshot is an immutable capture of the grid at one frame. Cell
// data is copied once at capture; clones of a snapshot share it.
type FrameSnapshot struct {
	Frame  uint64
	Size   Size
	Cursor CursorSnapshot
	cells  []Cell
}

// NewFrameSnapshot builds a snapshot from raw parts. The cell slice is
// taken over, not copied; it must hold size.Width*size.Height cells.
func NewFrameSnapshot(frame uint64, size Size, cursor CursorSnapshot, cells []Cell) (*FrameSnapshot, error) {
	if len(cells) != size.Width*size.Height {
		return nil, fmt.Errorf("snapshot cell count %d does not match %dx%d grid",
			len(cells), size.Width, size.Height)
	}
	return &FrameSnapshot{Frame: frame, Size: size, Cursor: cursor, cells: cells}, nil
}

// Cells returns the snapshot's cells in row-major order. Callers must
// treat the slice as read-only; it is shared between clones.
func (s *FrameSnapshot) Cells() []Cell { return s.cells }

// Cell returns the cell at (x, y), or false when out of bounds.
func (s *FrameSnapshot) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= s.Size.Width || y < 0 || y >= s.Size.Height {
		return Cell{}, false
	}
	return s.cells[y*s.Size.Width+x], true
}

// RowContent returns the concatenated symbols of row y, or the empty
// string when y is out of range.
func (s *FrameSnapshot) RowContent(y int) string {
	if y < 0 || y >= s.Size.Height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < s.Size.Width; x++ {
		sb.WriteString(s.cells[y*s.Size.Width+x].Symbol)
	}
	return sb.String()
}

// ContainsText reports whether text occurs in any single row.
func (s *FrameSnapshot) ContainsText(text string) bool {
	for y := 0; y < s.Size.Height; y++ {
		if strings.Contains(s.RowContent(y), text) {
			return true
		}
	}
	return false
}

// ToPlain renders the snapshot as plain text, one line per row.
func (s *FrameSnapshot) ToPlain() string {
	return renderPlain(s.cells, s.Size.Width, s.Size.Height)
}

// ToANSI renders the snapshot with ANSI escape sequences.
func (s *FrameSnapshot) ToANSI() string {
	return renderANSI(s.cells, s.Size.Width, s.Size.Height)
}

// Equal compares snapshots cell by cell, including frame number and
// cursor state.
func (s *FrameSnapshot) Equal(o *FrameSnapshot) bool {
	if s.Frame != o.Frame || s.Size != o.Size || s.Cursor != o.Cursor {
		return false
	}
	for i := range s.cells {
		if !s.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}

// SameContent compares snapshot grids ignoring frame numbers, cursor
// state and capture metadata.
func (s *FrameSnapshot) SameContent(o *FrameSnapshot) bool {
	if s.Size != o.Size {
		return false
	}
	for i := range s.cells {
		if !s.cells[i].SameContent(o.cells[i]) {
			return false
		}
	}
	return true
}

// Diff returns the changes from s to a later snapshot.
func (s *FrameSnapshot) Diff(to *FrameSnapshot) *FrameDiff {
	return diffSnapshots(s, to)
}

type snapshotJSON struct {
	Frame  uint64             `json:"frame"`
	Size   [2]int             `json:"size"`
	Cursor cursorSnapshotJSON `json:"cursor"`
	Cells  []Cell             `json:"cells"`
}

type cursorSnapshotJSON struct {
	Position [2]int `json:"position"`
	Visible  bool   `json:"visible"`
}

// MarshalJSON encodes the snapshot with size as [width, height] and
// cursor position as [x, y].
func (s *FrameSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotJSON{
		Frame: s.Frame,
		Size:  [2]int{s.Size.Width, s.Size.Height},
		Cursor: cursorSnapshotJSON{
			Position: [2]int{s.Cursor.Position.X, s.Cursor.Position.Y},
			Visible:  s.Cursor.Visible,
		},
		Cells: s.cells,
	})
}

func (s *FrameSnapshot) UnmarshalJSON(data []byte) error {
	var raw snapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	size := Size{Width: raw.Size[0], Height: raw.Size[1]}
	if len(raw.Cells) != size.Width*size.Height {
		return fmt.Errorf("snapshot cell count %d does not match %dx%d grid",
			len(raw.Cells), size.Width, size.Height)
	}
	s.Frame = raw.Frame
	s.Size = size
	s.Cursor = CursorSnapshot{
		Position: Position{X: raw.Cursor.Position[0], Y: raw.Cursor.Position[1]},
		Visible:  raw.Cursor.Visible,
	}
	s.cells = raw.Cells
	return nil
}
