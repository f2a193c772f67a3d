package backend

import "strings"

// OutputFormat selects a rendering of captured content.
type OutputFormat int

const (
	// FormatPlain renders symbols only, one line per row.
	FormatPlain OutputFormat = iota
	// FormatANSI renders with ANSI escape sequences for styling.
	FormatANSI
	// FormatJSON renders a compact JSON description of the frame.
	FormatJSON
	// FormatJSONPretty renders the JSON description with two-space
	// indentation.
	FormatJSONPretty
)

// ParseOutputFormat maps a format name to an OutputFormat. Recognized
// names are plain, ansi, json and json-pretty.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	switch strings.ToLower(name) {
	case "plain", "text":
		return FormatPlain, true
	case "ansi":
		return FormatANSI, true
	case "json":
		return FormatJSON, true
	case "json-pretty", "json_pretty":
		return FormatJSONPretty, true
	default:
		return FormatPlain, false
	}
}

func (f OutputFormat) String() string {
	switch f {
	case FormatANSI:
		return "ansi"
	case FormatJSON:
		return "json"
	case FormatJSONPretty:
		return "json-pretty"
	default:
		return "plain"
	}
}

// Render renders the backend's current content in this format.
func (f OutputFormat) Render(b *CaptureBackend) string {
	return b.Render(f)
}

// Render renders the current content in the given format.
func (b *CaptureBackend) Render(f OutputFormat) string {
	switch f {
	case FormatANSI:
		return renderANSI(b.cells, b.width, b.height)
	case FormatJSON:
		return renderJSON(b, false)
	case FormatJSONPretty:
		return renderJSON(b, true)
	default:
		return renderPlain(b.cells, b.width, b.height)
	}
}

// ToANSI renders the current content with ANSI escape sequences.
func (b *CaptureBackend) ToANSI() string {
	return b.Render(FormatANSI)
}

// ToJSON renders the current content as compact JSON.
func (b *CaptureBackend) ToJSON() string {
	return b.Render(FormatJSON)
}

// ToJSONPretty renders the current content as indented JSON.
func (b *CaptureBackend) ToJSONPretty() string {
	return b.Render(FormatJSONPretty)
}

// RenderTrimmed renders plain text with trailing whitespace removed from
// each line and trailing blank lines dropped.
func (b *CaptureBackend) RenderTrimmed() string {
	return trimRender(renderPlain(b.cells, b.width, b.height))
}

// renderPlain joins cell symbols row by row. Rows are separated by
// newlines with no trailing newline; trailing spaces are preserved.
func renderPlain(cells []Cell, width, height int) string {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			sb.WriteString(cells[y*width+x].Symbol)
		}
	}
	return sb.String()
}

func trimRender(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
