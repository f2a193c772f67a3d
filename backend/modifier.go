package backend

import (
	"strings"

	"github.com/charmbracelet/x/cellbuf"
)

// Modifier is a set of text style attributes.
type Modifier struct {
	Bold       bool `json:"bold"`
	Dim        bool `json:"dim"`
	Italic     bool `json:"italic"`
	Underlined bool `json:"underlined"`
	SlowBlink  bool `json:"slow_blink"`
	RapidBlink bool `json:"rapid_blink"`
	Reversed   bool `json:"reversed"`
	Hidden     bool `json:"hidden"`
	CrossedOut bool `json:"crossed_out"`
}

// IsEmpty reports whether no attribute is set.
func (m Modifier) IsEmpty() bool { return m == Modifier{} }

// Union returns the attributes set in either m or o.
func (m Modifier) Union(o Modifier) Modifier {
	return Modifier{
		Bold:       m.Bold || o.Bold,
		Dim:        m.Dim || o.Dim,
		Italic:     m.Italic || o.Italic,
		Underlined: m.Underlined || o.Underlined,
		SlowBlink:  m.SlowBlink || o.SlowBlink,
		RapidBlink: m.RapidBlink || o.RapidBlink,
		Reversed:   m.Reversed || o.Reversed,
		Hidden:     m.Hidden || o.Hidden,
		CrossedOut: m.CrossedOut || o.CrossedOut,
	}
}

// Difference returns the attributes set in m but not in o.
func (m Modifier) Difference(o Modifier) Modifier {
	return Modifier{
		Bold:       m.Bold && !o.Bold,
		Dim:        m.Dim && !o.Dim,
		Italic:     m.Italic && !o.Italic,
		Underlined: m.Underlined && !o.Underlined,
		SlowBlink:  m.SlowBlink && !o.SlowBlink,
		RapidBlink: m.RapidBlink && !o.RapidBlink,
		Reversed:   m.Reversed && !o.Reversed,
		Hidden:     m.Hidden && !o.Hidden,
		CrossedOut: m.CrossedOut && !o.CrossedOut,
	}
}

// ANSI returns the SGR parameters for the set attributes joined with
// semicolons, in SGR code order (1 through 9). Empty when no attribute
// is set.
func (m Modifier) ANSI() string {
	var codes []string
	if m.Bold {
		codes = append(codes, "1")
	}
	if m.Dim {
		codes = append(codes, "2")
	}
	if m.Italic {
		codes = append(codes, "3")
	}
	if m.Underlined {
		codes = append(codes, "4")
	}
	if m.SlowBlink {
		codes = append(codes, "5")
	}
	if m.RapidBlink {
		codes = append(codes, "6")
	}
	if m.Reversed {
		codes = append(codes, "7")
	}
	if m.Hidden {
		codes = append(codes, "8")
	}
	if m.CrossedOut {
		codes = append(codes, "9")
	}
	return strings.Join(codes, ";")
}

// Attrs converts m to a cellbuf attribute mask plus underline style.
// Underline is carried separately in that model.
func (m Modifier) Attrs() (cellbuf.AttrMask, cellbuf.UnderlineStyle) {
	var a cellbuf.AttrMask
	if m.Bold {
		a |= cellbuf.BoldAttr
	}
	if m.Dim {
		a |= cellbuf.FaintAttr
	}
	if m.Italic {
		a |= cellbuf.ItalicAttr
	}
	if m.SlowBlink {
		a |= cellbuf.SlowBlinkAttr
	}
	if m.RapidBlink {
		a |= cellbuf.RapidBlinkAttr
	}
	if m.Reversed {
		a |= cellbuf.ReverseAttr
	}
	if m.Hidden {
		a |= cellbuf.ConcealAttr
	}
	if m.CrossedOut {
		a |= cellbuf.StrikethroughAttr
	}
	var ul cellbuf.UnderlineStyle
	if m.Underlined {
		ul = cellbuf.UnderlineStyle(1)
	}
	return a, ul
}

// ModifierFromAttrs converts a cellbuf attribute mask plus underline style
// to a Modifier. Any non-zero underline style maps to Underlined.
func ModifierFromAttrs(a cellbuf.AttrMask, ul cellbuf.UnderlineStyle) Modifier {
	return Modifier{
		Bold:       a&cellbuf.BoldAttr != 0,
		Dim:        a&cellbuf.FaintAttr != 0,
		Italic:     a&cellbuf.ItalicAttr != 0,
		Underlined: ul != cellbuf.UnderlineStyle(0),
		SlowBlink:  a&cellbuf.SlowBlinkAttr != 0,
		RapidBlink: a&cellbuf.RapidBlinkAttr != 0,
		Reversed:   a&cellbuf.ReverseAttr != 0,
		Hidden:     a&cellbuf.ConcealAttr != 0,
		CrossedOut: a&cellbuf.StrikethroughAttr != 0,
	}
}
