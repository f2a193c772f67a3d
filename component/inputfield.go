package component

import (
	"unicode"

	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/terminal"
	"github.com/ryanoneill/envision/theme"
)

// InputMessage is a message understood by InputField.
type InputMessage interface {
	isInputMessage()
}

// InputInsert inserts a character at the cursor.
type InputInsert struct{ Char rune }

// InputBackspace deletes the character before the cursor.
type InputBackspace struct{}

// InputDelete deletes the character at the cursor.
type InputDelete struct{}

// InputLeft moves the cursor left by one character.
type InputLeft struct{}

// InputRight moves the cursor right by one character.
type InputRight struct{}

// InputHome moves the cursor to the start.
type InputHome struct{}

// InputEnd moves the cursor to the end.
type InputEnd struct{}

// InputWordLeft moves the cursor to the start of the previous word.
type InputWordLeft struct{}

// InputWordRight moves the cursor past the end of the next word.
type InputWordRight struct{}

// InputDeleteWordBack deletes from the cursor back to the word start.
type InputDeleteWordBack struct{}

// InputDeleteWordForward deletes from the cursor through the next word.
type InputDeleteWordForward struct{}

// InputClear empties the field.
type InputClear struct{}

// InputSetValue replaces the whole value.
type InputSetValue struct{ Value string }

// InputSubmit submits the current value.
type InputSubmit struct{}

func (InputInsert) isInputMessage()            {}
func (InputBackspace) isInputMessage()         {}
func (InputDelete) isInputMessage()            {}
func (InputLeft) isInputMessage()              {}
func (InputRight) isInputMessage()             {}
func (InputHome) isInputMessage()              {}
func (InputEnd) isInputMessage()               {}
func (InputWordLeft) isInputMessage()          {}
func (InputWordRight) isInputMessage()         {}
func (InputDeleteWordBack) isInputMessage()    {}
func (InputDeleteWordForward) isInputMessage() {}
func (InputClear) isInputMessage()             {}
func (InputSetValue) isInputMessage()          {}
func (InputSubmit) isInputMessage()            {}

// InputOutput is what an InputField reports to its host.
type InputOutput interface {
	isInputOutput()
}

// InputChanged reports the new value after an edit.
type InputChanged struct{ Value string }

// InputSubmitted reports the value at submit time.
type InputSubmitted struct{ Value string }

func (InputChanged) isInputOutput()   {}
func (InputSubmitted) isInputOutput() {}

// InputFieldState is the state of a single-line text input. The cursor
// is a character index into the value, 0..Len inclusive.
type InputFieldState struct {
	value       []rune
	cursor      int
	focused     bool
	placeholder string
}

// InputWithValue returns an input state holding value with the cursor
// at the end.
func InputWithValue(value string) InputFieldState {
	runes := []rune(value)
	return InputFieldState{value: runes, cursor: len(runes)}
}

// InputWithPlaceholder returns an empty input state with placeholder
// text.
func InputWithPlaceholder(placeholder string) InputFieldState {
	return InputFieldState{placeholder: placeholder}
}

// Value returns the current text.
func (s *InputFieldState) Value() string { return string(s.value) }

// SetValue replaces the text and moves the cursor to the end.
func (s *InputFieldState) SetValue(value string) {
	s.value = []rune(value)
	s.cursor = len(s.value)
}

// CursorPosition returns the cursor's character index.
func (s *InputFieldState) CursorPosition() int { return s.cursor }

// SetCursor moves the cursor to the given character index, clamped to
// the value's length.
func (s *InputFieldState) SetCursor(pos int) {
	s.cursor = min(max(pos, 0), len(s.value))
}

// Placeholder returns the text shown when the field is empty.
func (s *InputFieldState) Placeholder() string { return s.placeholder }

// SetPlaceholder replaces the placeholder text.
func (s *InputFieldState) SetPlaceholder(p string) { s.placeholder = p }

// IsEmpty reports whether the field holds no text.
func (s *InputFieldState) IsEmpty() bool { return len(s.value) == 0 }

// Len returns the number of characters in the field.
func (s *InputFieldState) Len() int { return len(s.value) }

func (s *InputFieldState) insert(r rune) {
	s.value = append(s.value[:s.cursor], append([]rune{r}, s.value[s.cursor:]...)...)
	s.cursor++
}

func (s *InputFieldState) backspace() bool {
	if s.cursor == 0 {
		return false
	}
	s.value = append(s.value[:s.cursor-1], s.value[s.cursor:]...)
	s.cursor--
	return true
}

func (s *InputFieldState) deleteForward() bool {
	if s.cursor >= len(s.value) {
		return false
	}
	s.value = append(s.value[:s.cursor], s.value[s.cursor+1:]...)
	return true
}

// wordLeft returns the index of the start of the word preceding the
// cursor.
func (s *InputFieldState) wordLeft() int {
	i := s.cursor
	for i > 0 && unicode.IsSpace(s.value[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(s.value[i-1]) {
		i--
	}
	return i
}

// wordRight returns the index just past the word at the cursor,
// including any trailing whitespace.
func (s *InputFieldState) wordRight() int {
	i := s.cursor
	for i < len(s.value) && !unicode.IsSpace(s.value[i]) {
		i++
	}
	for i < len(s.value) && unicode.IsSpace(s.value[i]) {
		i++
	}
	return i
}

// InputField is a single-line text input with cursor navigation and
// word-wise editing.
type InputField struct{}

// Init returns an empty input state.
func (InputField) Init() InputFieldState {
	return InputFieldState{}
}

// Update applies one message. Edits that change the text emit
// InputChanged; pure cursor movement emits nothing. Submit always
// emits InputSubmitted, even for an empty value.
func (InputField) Update(s *InputFieldState, msg InputMessage) (InputOutput, bool) {
	changed := func() (InputOutput, bool) {
		return InputChanged{Value: s.Value()}, true
	}

	switch m := msg.(type) {
	case InputInsert:
		s.insert(m.Char)
		return changed()

	case InputBackspace:
		if s.backspace() {
			return changed()
		}

	case InputDelete:
		if s.deleteForward() {
			return changed()
		}

	case InputLeft:
		if s.cursor > 0 {
			s.cursor--
		}

	case InputRight:
		if s.cursor < len(s.value) {
			s.cursor++
		}

	case InputHome:
		s.cursor = 0

	case InputEnd:
		s.cursor = len(s.value)

	case InputWordLeft:
		s.cursor = s.wordLeft()

	case InputWordRight:
		s.cursor = s.wordRight()

	case InputDeleteWordBack:
		if s.cursor == 0 {
			return nil, false
		}
		start := s.wordLeft()
		s.value = append(s.value[:start], s.value[s.cursor:]...)
		s.cursor = start
		return changed()

	case InputDeleteWordForward:
		if s.cursor >= len(s.value) {
			return nil, false
		}
		end := s.wordRight()
		s.value = append(s.value[:s.cursor], s.value[end:]...)
		return changed()

	case InputClear:
		if len(s.value) == 0 {
			return nil, false
		}
		s.value = s.value[:0]
		s.cursor = 0
		return changed()

	case InputSetValue:
		if s.Value() == m.Value {
			return nil, false
		}
		s.SetValue(m.Value)
		return changed()

	case InputSubmit:
		return InputSubmitted{Value: s.Value()}, true
	}

	return nil, false
}

// View renders the value (or placeholder when empty) inside a border,
// with a block cursor when focused.
func (InputField) View(s *InputFieldState, f *terminal.Frame, area backend.Rect, th theme.Theme) {
	if area.Width < 2 || area.Height < 3 {
		return
	}

	borderStyle := backend.Fg(th.Border)
	if s.focused {
		borderStyle = backend.Fg(th.Focused)
	}
	box := backend.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 3}
	drawBox(f, box, borderStyle)

	textStyle := backend.Fg(th.Foreground)
	display := string(s.value)
	if len(s.value) == 0 && s.placeholder != "" && !s.focused {
		display = s.placeholder
		textStyle = backend.Fg(th.Placeholder)
	}
	if s.focused {
		runes := []rune(display)
		before := string(runes[:min(s.cursor, len(runes))])
		after := ""
		if s.cursor < len(runes) {
			after = string(runes[s.cursor+1:])
		}
		display = before + "█" + after
		textStyle = backend.Fg(th.Focused)
	}
	f.SetString(area.X+1, area.Y+1, truncate(display, area.Width-2), textStyle)
}

// IsFocused reports keyboard focus.
func (InputField) IsFocused(s *InputFieldState) bool { return s.focused }

// SetFocused sets keyboard focus.
func (InputField) SetFocused(s *InputFieldState, focused bool) { s.focused = focused }
