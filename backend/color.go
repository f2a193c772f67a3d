package backend

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

type colorKind uint8

const (
	colorReset colorKind = iota
	colorNamed
	colorIndexed
	colorRGB
)

// Color is a terminal color: the terminal default (Reset), one of the 16
// named colors, a 256-palette index, or a 24-bit RGB value. The zero value
// is Reset.
type Color struct {
	kind    colorKind
	named   uint8
	index   uint8
	r, g, b uint8
}

// The 16 named colors. Gray and DarkGray follow the common terminal
// convention: Gray is bright-ish "white" (SGR 37) and DarkGray is the
// bright variant of black (SGR 90).
var (
	Reset    = Color{}
	Black    = Color{kind: colorNamed, named: 0}
	Red      = Color{kind: colorNamed, named: 1}
	Green    = Color{kind: colorNamed, named: 2}
	Yellow   = Color{kind: colorNamed, named: 3}
	Blue     = Color{kind: colorNamed, named: 4}
	Magenta  = Color{kind: colorNamed, named: 5}
	Cyan     = Color{kind: colorNamed, named: 6}
	Gray     = Color{kind: colorNamed, named: 7}
	DarkGray = Color{kind: colorNamed, named: 8}
	LightRed = Color{kind: colorNamed, named: 9}
	// LightGreen through White are the remaining bright variants.
	LightGreen   = Color{kind: colorNamed, named: 10}
	LightYellow  = Color{kind: colorNamed, named: 11}
	LightBlue    = Color{kind: colorNamed, named: 12}
	LightMagenta = Color{kind: colorNamed, named: 13}
	LightCyan    = Color{kind: colorNamed, named: 14}
	White        = Color{kind: colorNamed, named: 15}
)

var namedTags = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray",
	"dark_gray", "light_red", "light_green", "light_yellow", "light_blue",
	"light_magenta", "light_cyan", "white",
}

// Indexed returns a 256-color palette color.
func Indexed(i uint8) Color {
	return Color{kind: colorIndexed, index: i}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsReset reports whether c is the terminal default color.
func (c Color) IsReset() bool { return c.kind == colorReset }

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return namedTags[c.named]
	case colorIndexed:
		return fmt.Sprintf("indexed(%d)", c.index)
	case colorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	default:
		return "reset"
	}
}

// foreground SGR parameters for the 16 named colors, in named order
var namedFg = [16]string{
	"30", "31", "32", "33", "34", "35", "36", "37",
	"90", "91", "92", "93", "94", "95", "96", "97",
}

// ANSIForeground returns the SGR parameter string selecting c as the
// foreground color, without the escape framing.
func (c Color) ANSIForeground() string {
	switch c.kind {
	case colorNamed:
		return namedFg[c.named]
	case colorIndexed:
		return fmt.Sprintf("38;5;%d", c.index)
	case colorRGB:
		return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
	default:
		return "39"
	}
}

// ANSIBackground returns the SGR parameter string selecting c as the
// background color, without the escape framing.
func (c Color) ANSIBackground() string {
	switch c.kind {
	case colorNamed:
		if c.named < 8 {
			return fmt.Sprintf("%d", 40+c.named)
		}
		return fmt.Sprintf("%d", 100+c.named-8)
	case colorIndexed:
		return fmt.Sprintf("48;5;%d", c.index)
	case colorRGB:
		return fmt.Sprintf("48;2;%d;%d;%d", c.r, c.g, c.b)
	default:
		return "49"
	}
}

// ANSIColor converts c to the charmbracelet/x/ansi color model. Reset maps
// to nil, which that model uses for the terminal default.
func (c Color) ANSIColor() ansi.Color {
	switch c.kind {
	case colorNamed:
		return ansi.BasicColor(c.named)
	case colorIndexed:
		return ansi.ExtendedColor(c.index)
	case colorRGB:
		return ansi.TrueColor(uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b))
	default:
		return nil
	}
}

// FromANSIColor converts a charmbracelet/x/ansi color to a Color. A nil
// color is the terminal default. Colors outside the basic, extended and
// true-color models are flattened to RGB.
func FromANSIColor(c ansi.Color) Color {
	switch v := c.(type) {
	case nil:
		return Reset
	case ansi.BasicColor:
		if v < 16 {
			return Color{kind: colorNamed, named: uint8(v)}
		}
		return Reset
	case ansi.ExtendedColor:
		return Indexed(uint8(v))
	case ansi.TrueColor:
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	default:
		r, g, b, _ := c.RGBA()
		return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

type rgbJSON struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// MarshalJSON encodes named colors and reset as string tags, indexed
// colors as {"indexed": N} and RGB colors as {"rgb": {"r": .., ..}}.
func (c Color) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case colorNamed:
		return json.Marshal(namedTags[c.named])
	case colorIndexed:
		return json.Marshal(map[string]uint8{"indexed": c.index})
	case colorRGB:
		return json.Marshal(map[string]rgbJSON{"rgb": {R: c.r, G: c.g, B: c.b}})
	default:
		return json.Marshal("reset")
	}
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag == "reset" {
			*c = Reset
			return nil
		}
		for i, name := range namedTags {
			if name == tag {
				*c = Color{kind: colorNamed, named: uint8(i)}
				return nil
			}
		}
		return fmt.Errorf("unknown color tag %q", tag)
	}
	var obj struct {
		Indexed *uint8   `json:"indexed"`
		RGB     *rgbJSON `json:"rgb"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding color: %w", err)
	}
	switch {
	case obj.Indexed != nil:
		*c = Indexed(*obj.Indexed)
	case obj.RGB != nil:
		*c = RGB(obj.RGB.R, obj.RGB.G, obj.RGB.B)
	default:
		return fmt.Errorf("unknown color value %s", data)
	}
	return nil
}
