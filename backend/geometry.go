package backend

// Position is a cell coordinate. X grows rightward, Y grows downward,
// origin at the top-left.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a grid extent in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WindowSize pairs the grid extent with an estimated pixel extent.
type WindowSize struct {
	Columns Size
	Pixels  Size
}

// Rect is a rectangular region of the grid.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Inner returns r shrunk by margin on every side. A rectangle too small
// for the margin collapses to zero size.
func (r Rect) Inner(margin int) Rect {
	if r.Width < 2*margin || r.Height < 2*margin {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
}
