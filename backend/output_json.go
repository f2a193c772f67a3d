package backend

import "encoding/json"

type jsonFrame struct {
	Frame       uint64           `json:"frame"`
	Size        Size             `json:"size"`
	Cursor      jsonCursor       `json:"cursor"`
	Lines       []string         `json:"lines"`
	StyledCells []jsonStyledCell `json:"styled_cells"`
}

type jsonCursor struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Visible bool `json:"visible"`
}

type jsonStyledCell struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Symbol     string  `json:"symbol"`
	Fg         *string `json:"fg"`
	Bg         *string `json:"bg"`
	Bold       bool    `json:"bold"`
	Italic     bool    `json:"italic"`
	Underlined bool    `json:"underlined"`
}

// renderJSON describes the frame as JSON: frame number, size, cursor,
// the plain text lines, and every styled non-space cell. Encoding errors
// degrade to an error object rather than failing the render.
func renderJSON(b *CaptureBackend, pretty bool) string {
	frame := jsonFrame{
		Frame: b.currentFrame,
		Size:  Size{Width: b.width, Height: b.height},
		Cursor: jsonCursor{
			X:       b.cursor.X,
			Y:       b.cursor.Y,
			Visible: b.cursorVisible,
		},
		Lines: make([]string, 0, b.height),
	}
	for y := 0; y < b.height; y++ {
		frame.Lines = append(frame.Lines, b.RowContent(y))
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if !cell.HasStyling() || cell.Symbol == " " {
				continue
			}
			sc := jsonStyledCell{
				X:          x,
				Y:          y,
				Symbol:     cell.Symbol,
				Bold:       cell.Modifiers.Bold,
				Italic:     cell.Modifiers.Italic,
				Underlined: cell.Modifiers.Underlined,
			}
			if !cell.Fg.IsReset() {
				tag := cell.Fg.String()
				sc.Fg = &tag
			}
			if !cell.Bg.IsReset() {
				tag := cell.Bg.String()
				sc.Bg = &tag
			}
			frame.StyledCells = append(frame.StyledCells, sc)
		}
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(frame, "", "  ")
	} else {
		data, err = json.Marshal(frame)
	}
	if err != nil {
		fallback, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(fallback)
	}
	return string(data)
}

// RenderLinesJSON encodes only the plain text lines of the grid as a
// JSON array, for consumers that want text without styling metadata.
func (b *CaptureBackend) RenderLinesJSON() string {
	data, err := json.Marshal(b.ContentLines())
	if err != nil {
		fallback, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(fallback)
	}
	return string(data)
}

// ToJSON encodes a snapshot as compact JSON.
func (s *FrameSnapshot) ToJSON() string {
	data, err := json.Marshal(s)
	if err != nil {
		fallback, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(fallback)
	}
	return string(data)
}

// ToJSONPretty encodes a snapshot with two-space indentation.
func (s *FrameSnapshot) ToJSONPretty() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		fallback, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(fallback)
	}
	return string(data)
}
