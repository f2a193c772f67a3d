package backend

import (
	"encoding/json"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestColorANSIForeground(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "reset", color: Reset, want: "39"},
		{name: "black", color: Black, want: "30"},
		{name: "red", color: Red, want: "31"},
		{name: "gray", color: Gray, want: "37"},
		{name: "dark gray", color: DarkGray, want: "90"},
		{name: "light red", color: LightRed, want: "91"},
		{name: "white", color: White, want: "97"},
		{name: "indexed", color: Indexed(42), want: "38;5;42"},
		{name: "rgb", color: RGB(255, 128, 0), want: "38;2;255;128;0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.ANSIForeground(); got != tt.want {
				t.Errorf("ANSIForeground() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorANSIBackground(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "reset", color: Reset, want: "49"},
		{name: "black", color: Black, want: "40"},
		{name: "cyan", color: Cyan, want: "46"},
		{name: "gray", color: Gray, want: "47"},
		{name: "dark gray", color: DarkGray, want: "100"},
		{name: "white", color: White, want: "107"},
		{name: "indexed", color: Indexed(7), want: "48;5;7"},
		{name: "rgb", color: RGB(1, 2, 3), want: "48;2;1;2;3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.ANSIBackground(); got != tt.want {
				t.Errorf("ANSIBackground() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorANSIRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		color Color
	}{
		{name: "reset", color: Reset},
		{name: "black", color: Black},
		{name: "magenta", color: Magenta},
		{name: "gray", color: Gray},
		{name: "dark gray", color: DarkGray},
		{name: "light cyan", color: LightCyan},
		{name: "white", color: White},
		{name: "indexed", color: Indexed(200)},
		{name: "rgb", color: RGB(10, 20, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromANSIColor(tt.color.ANSIColor()); got != tt.color {
				t.Errorf("round trip = %v, want %v", got, tt.color)
			}
		})
	}
}

func TestColorANSIColorMapping(t *testing.T) {
	if Gray.ANSIColor() != ansi.White {
		t.Errorf("Gray should map to ansi.White")
	}
	if DarkGray.ANSIColor() != ansi.BrightBlack {
		t.Errorf("DarkGray should map to ansi.BrightBlack")
	}
	if White.ANSIColor() != ansi.BrightWhite {
		t.Errorf("White should map to ansi.BrightWhite")
	}
	if Reset.ANSIColor() != nil {
		t.Errorf("Reset should map to nil")
	}
	if FromANSIColor(nil) != Reset {
		t.Errorf("nil should map back to Reset")
	}
}

func TestColorJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		wantJSON string
	}{
		{name: "reset", color: Reset, wantJSON: `"reset"`},
		{name: "named", color: Red, wantJSON: `"red"`},
		{name: "light variant", color: LightBlue, wantJSON: `"light_blue"`},
		{name: "indexed", color: Indexed(9), wantJSON: `{"indexed":9}`},
		{name: "rgb", color: RGB(1, 2, 3), wantJSON: `{"rgb":{"r":1,"g":2,"b":3}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.color)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.wantJSON {
				t.Errorf("Marshal() = %s, want %s", data, tt.wantJSON)
			}
			var back Color
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if back != tt.color {
				t.Errorf("round trip = %v, want %v", back, tt.color)
			}
		})
	}
}

func TestModifierANSI(t *testing.T) {
	tests := []struct {
		name string
		mod  Modifier
		want string
	}{
		{name: "empty", mod: Modifier{}, want: ""},
		{name: "bold", mod: Modifier{Bold: true}, want: "1"},
		{name: "bold underlined", mod: Modifier{Bold: true, Underlined: true}, want: "1;4"},
		{name: "crossed out", mod: Modifier{CrossedOut: true}, want: "9"},
		{
			name: "everything",
			mod: Modifier{
				Bold: true, Dim: true, Italic: true, Underlined: true,
				SlowBlink: true, RapidBlink: true, Reversed: true,
				Hidden: true, CrossedOut: true,
			},
			want: "1;2;3;4;5;6;7;8;9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mod.ANSI(); got != tt.want {
				t.Errorf("ANSI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModifierSetOperations(t *testing.T) {
	a := Modifier{Bold: true, Italic: true}
	b := Modifier{Italic: true, Underlined: true}

	union := a.Union(b)
	if !union.Bold || !union.Italic || !union.Underlined {
		t.Errorf("Union() = %+v, want bold, italic and underlined", union)
	}

	diff := a.Difference(b)
	if !diff.Bold || diff.Italic || diff.Underlined {
		t.Errorf("Difference() = %+v, want only bold", diff)
	}

	if !(Modifier{}).IsEmpty() {
		t.Errorf("zero value should be empty")
	}
	if a.IsEmpty() {
		t.Errorf("non-zero modifier should not be empty")
	}
}

func TestModifierAttrsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mod  Modifier
	}{
		{name: "empty", mod: Modifier{}},
		{name: "bold", mod: Modifier{Bold: true}},
		{name: "underlined", mod: Modifier{Underlined: true}},
		{name: "mixed", mod: Modifier{Dim: true, Reversed: true, CrossedOut: true}},
		{
			name: "everything",
			mod: Modifier{
				Bold: true, Dim: true, Italic: true, Underlined: true,
				SlowBlink: true, RapidBlink: true, Reversed: true,
				Hidden: true, CrossedOut: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, ul := tt.mod.Attrs()
			if got := ModifierFromAttrs(attrs, ul); got != tt.mod {
				t.Errorf("round trip = %+v, want %+v", got, tt.mod)
			}
		})
	}
}

func TestCellDefaults(t *testing.T) {
	c := NewCell()
	if c.Symbol != " " {
		t.Errorf("Symbol = %q, want space", c.Symbol)
	}
	if !c.IsEmpty() {
		t.Errorf("new cell should be empty")
	}
	if c.HasStyling() {
		t.Errorf("new cell should have no styling")
	}
}

func TestCellIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{name: "blank", cell: NewCell(), want: true},
		{name: "symbol", cell: CellWithSymbol("x"), want: false},
		{name: "colored space", cell: Cell{Symbol: " ", Fg: Red}, want: false},
		{name: "bold space", cell: Cell{Symbol: " ", Modifiers: Modifier{Bold: true}}, want: false},
		{name: "stamped blank", cell: Cell{Symbol: " ", LastModifiedFrame: 7}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellResetPreservesFrame(t *testing.T) {
	c := CellWithSymbol("x")
	c.Fg = Red
	c.LastModifiedFrame = 12
	c.Reset()
	if c.Symbol != " " || c.Fg != Reset {
		t.Errorf("Reset() left content %q fg %v", c.Symbol, c.Fg)
	}
	if c.LastModifiedFrame != 12 {
		t.Errorf("Reset() changed LastModifiedFrame to %d", c.LastModifiedFrame)
	}
}

func TestCellApplyStyle(t *testing.T) {
	c := NewCell()
	c.Modifiers = Modifier{Dim: true}

	c.ApplyStyle(Style{Fg: &Red, Add: Modifier{Bold: true}, Sub: Modifier{Dim: true}})
	if c.Fg != Red {
		t.Errorf("Fg = %v, want red", c.Fg)
	}
	if c.Bg != Reset {
		t.Errorf("Bg = %v, want reset (untouched)", c.Bg)
	}
	if !c.Modifiers.Bold || c.Modifiers.Dim {
		t.Errorf("Modifiers = %+v, want bold without dim", c.Modifiers)
	}

	c.ApplyStyle(Bg(Blue))
	if c.Fg != Red || c.Bg != Blue {
		t.Errorf("partial style overwrote fg: fg=%v bg=%v", c.Fg, c.Bg)
	}
}

func TestCellWidth(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   int
	}{
		{name: "ascii", symbol: "a", want: 1},
		{name: "space", symbol: " ", want: 1},
		{name: "wide", symbol: "漢", want: 2},
		{name: "empty", symbol: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellWithSymbol(tt.symbol).Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCellCellbufRoundTrip(t *testing.T) {
	ul := Yellow
	tests := []struct {
		name string
		cell Cell
	}{
		{name: "blank", cell: NewCell()},
		{name: "plain symbol", cell: CellWithSymbol("x")},
		{name: "wide symbol", cell: CellWithSymbol("漢")},
		{
			name: "styled",
			cell: Cell{
				Symbol:    "q",
				Fg:        Red,
				Bg:        Indexed(17),
				Modifiers: Modifier{Bold: true, Underlined: true},
			},
		},
		{
			name: "underline color",
			cell: Cell{Symbol: "u", Modifiers: Modifier{Underlined: true}, UnderlineColor: &ul},
		},
		{name: "rgb", cell: Cell{Symbol: "r", Fg: RGB(1, 2, 3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := tt.cell.ToCellbuf()
			back := FromCellbuf(&cb, tt.cell.LastModifiedFrame)
			if !back.SameContent(tt.cell) {
				t.Errorf("round trip = %+v, want %+v", back, tt.cell)
			}
		})
	}
}

func TestCellEqual(t *testing.T) {
	ul := Cyan
	a := Cell{Symbol: "x", Fg: Red, LastModifiedFrame: 3, UnderlineColor: &ul}
	b := a
	ul2 := Cyan
	b.UnderlineColor = &ul2
	if !a.Equal(b) {
		t.Errorf("cells with equal underline color values should be equal")
	}
	b.LastModifiedFrame = 4
	if a.Equal(b) {
		t.Errorf("Equal() should include the frame stamp")
	}
	if !a.SameContent(b) {
		t.Errorf("SameContent() should ignore the frame stamp")
	}
}
