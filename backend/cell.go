package backend

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/mattn/go-runewidth"
)

// Style is a partial restyling of a cell. Nil color fields leave the
// cell's color untouched; Add and Sub adjust the attribute set.
type Style struct {
	Fg        *Color
	Bg        *Color
	Underline *Color
	Add       Modifier
	Sub       Modifier
}

// Styled returns a Style that sets the foreground and background.
func Styled(fg, bg Color) Style {
	return Style{Fg: &fg, Bg: &bg}
}

// Fg returns a Style that sets only the foreground.
func Fg(c Color) Style { return Style{Fg: &c} }

// Bg returns a Style that sets only the background.
func Bg(c Color) Style { return Style{Bg: &c} }

// WithAdd returns s with extra attributes to add.
func (s Style) WithAdd(m Modifier) Style {
	s.Add = s.Add.Union(m)
	return s
}

// WithSub returns s with extra attributes to remove.
func (s Style) WithSub(m Modifier) Style {
	s.Sub = s.Sub.Union(m)
	return s
}

// Cell is one rendered grid cell plus capture metadata: the frame counter
// value at which it last changed, and a skip flag for cells a renderer
// should leave alone (the trailing half of a wide glyph).
type Cell struct {
	Symbol            string   `json:"symbol"`
	Fg                Color    `json:"fg"`
	Bg                Color    `json:"bg"`
	Modifiers         Modifier `json:"modifiers"`
	UnderlineColor    *Color   `json:"underline_color"`
	LastModifiedFrame uint64   `json:"last_modified_frame"`
	Skip              bool     `json:"skip"`
}

// NewCell returns a blank cell: a space with default colors.
func NewCell() Cell {
	return Cell{Symbol: " "}
}

// CellWithSymbol returns a blank cell showing s.
func CellWithSymbol(s string) Cell {
	c := NewCell()
	c.Symbol = s
	return c
}

// FromCellbuf converts a cellbuf cell into a capture cell stamped with
// the given frame counter value. A nil cell converts to a blank. A
// zero-width cell is the trailing half of a wide glyph and becomes a
// blank marked Skip.
func FromCellbuf(c *cellbuf.Cell, frame uint64) Cell {
	if c == nil {
		out := NewCell()
		out.LastModifiedFrame = frame
		return out
	}
	out := Cell{
		Symbol:            c.String(),
		Fg:                FromANSIColor(c.Style.Fg),
		Bg:                FromANSIColor(c.Style.Bg),
		Modifiers:         ModifierFromAttrs(c.Style.Attrs, c.Style.UlStyle),
		LastModifiedFrame: frame,
		Skip:              c.Rune == 0 && c.Width == 0,
	}
	if out.Symbol == "" {
		out.Symbol = " "
	}
	if c.Style.Ul != nil {
		ul := FromANSIColor(c.Style.Ul)
		out.UnderlineColor = &ul
	}
	return out
}

// ToCellbuf converts the cell back to the cellbuf model. Capture metadata
// does not survive the round trip.
func (c Cell) ToCellbuf() cellbuf.Cell {
	attrs, ulStyle := c.Modifiers.Attrs()
	st := cellbuf.Style{
		Fg:      c.Fg.ANSIColor(),
		Bg:      c.Bg.ANSIColor(),
		Attrs:   attrs,
		UlStyle: ulStyle,
	}
	if c.UnderlineColor != nil {
		st.Ul = c.UnderlineColor.ANSIColor()
	}
	runes := []rune(c.Symbol)
	out := cellbuf.Cell{Style: st, Width: c.Width()}
	if len(runes) > 0 {
		out.Rune = runes[0]
		out.Comb = runes[1:]
	}
	return out
}

// Width returns the display width of the cell's symbol in columns.
func (c Cell) Width() int {
	return runewidth.StringWidth(c.Symbol)
}

// SetSymbol replaces the cell content and returns the cell for chaining.
func (c *Cell) SetSymbol(s string) *Cell {
	c.Symbol = s
	return c
}

// SetRune replaces the cell content with a single rune.
func (c *Cell) SetRune(r rune) *Cell {
	c.Symbol = string(r)
	return c
}

// SetFg sets the foreground color.
func (c *Cell) SetFg(color Color) *Cell {
	c.Fg = color
	return c
}

// SetBg sets the background color.
func (c *Cell) SetBg(color Color) *Cell {
	c.Bg = color
	return c
}

// ApplyStyle folds a style into the cell: non-nil colors override, Add
// attributes are unioned in, Sub attributes removed.
func (c *Cell) ApplyStyle(s Style) *Cell {
	if s.Fg != nil {
		c.Fg = *s.Fg
	}
	if s.Bg != nil {
		c.Bg = *s.Bg
	}
	if s.Underline != nil {
		ul := *s.Underline
		c.UnderlineColor = &ul
	}
	c.Modifiers = c.Modifiers.Union(s.Add).Difference(s.Sub)
	return c
}

// Reset restores the cell to blank, preserving LastModifiedFrame so the
// change history stays intact.
func (c *Cell) Reset() {
	frame := c.LastModifiedFrame
	*c = NewCell()
	c.LastModifiedFrame = frame
}

// IsEmpty reports whether the cell is a bare space with default colors
// and no attributes.
func (c Cell) IsEmpty() bool {
	return c.Symbol == " " && c.Fg.IsReset() && c.Bg.IsReset() &&
		c.Modifiers.IsEmpty() && c.UnderlineColor == nil
}

// HasStyling reports whether any color or attribute is set.
func (c Cell) HasStyling() bool {
	return !c.Fg.IsReset() || !c.Bg.IsReset() || !c.Modifiers.IsEmpty() ||
		c.UnderlineColor != nil
}

// Equal compares cells including capture metadata.
func (c Cell) Equal(o Cell) bool {
	if c.Symbol != o.Symbol || c.Fg != o.Fg || c.Bg != o.Bg ||
		c.Modifiers != o.Modifiers || c.LastModifiedFrame != o.LastModifiedFrame ||
		c.Skip != o.Skip {
		return false
	}
	switch {
	case c.UnderlineColor == nil && o.UnderlineColor == nil:
		return true
	case c.UnderlineColor == nil || o.UnderlineColor == nil:
		return false
	default:
		return *c.UnderlineColor == *o.UnderlineColor
	}
}

// SameContent compares cells ignoring capture metadata.
func (c Cell) SameContent(o Cell) bool {
	c.LastModifiedFrame = 0
	c.Skip = false
	o.LastModifiedFrame = 0
	o.Skip = false
	return c.Equal(o)
}
