package backend

import "strings"

type styleKey struct {
	fg   Color
	bg   Color
	mods Modifier
}

// renderANSI renders rows with ANSI escape sequences. Every style
// change starts with a reset, even from the default style, then the new
// style's codes. Style state does not carry across rows: a row ends
// with a reset when any style is active, and rows are joined with plain
// newlines.
func renderANSI(cells []Cell, width, height int) string {
	var sb strings.Builder
	var defaultKey styleKey
	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		cur := defaultKey
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			want := styleKey{fg: cell.Fg, bg: cell.Bg, mods: cell.Modifiers}
			if want != cur {
				sb.WriteString("\x1b[0m")
				var parts []string
				if !want.mods.IsEmpty() {
					parts = append(parts, want.mods.ANSI())
				}
				if !want.fg.IsReset() {
					parts = append(parts, want.fg.ANSIForeground())
				}
				if !want.bg.IsReset() {
					parts = append(parts, want.bg.ANSIBackground())
				}
				if len(parts) > 0 {
					sb.WriteString("\x1b[")
					sb.WriteString(strings.Join(parts, ";"))
					sb.WriteByte('m')
				}
				cur = want
			}
			sb.WriteString(cell.Symbol)
		}
		if cur != defaultKey {
			sb.WriteString("\x1b[0m")
		}
	}
	return sb.String()
}
