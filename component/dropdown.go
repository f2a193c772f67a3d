package component

import (
	"strings"

	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/terminal"
	"github.com/ryanoneill/envision/theme"
)

// DropdownMessage is a message understood by Dropdown.
type DropdownMessage interface {
	isDropdownMessage()
}

// DropdownOpen opens the option list, clearing the filter.
type DropdownOpen struct{}

// DropdownClose closes the option list, clearing the filter.
type DropdownClose struct{}

// DropdownToggle opens a closed dropdown and closes an open one.
type DropdownToggle struct{}

// DropdownInsert appends a character to the filter, auto-opening the
// dropdown.
type DropdownInsert struct{ Char rune }

// DropdownBackspace removes the last filter character.
type DropdownBackspace struct{}

// DropdownClearFilter empties the filter.
type DropdownClearFilter struct{}

// DropdownSetFilter replaces the whole filter text.
type DropdownSetFilter struct{ Text string }

// DropdownSelectNext moves the highlight down, wrapping at the end.
type DropdownSelectNext struct{}

// DropdownSelectPrevious moves the highlight up, wrapping at the start.
type DropdownSelectPrevious struct{}

// DropdownConfirm selects the highlighted option and closes the list.
type DropdownConfirm struct{}

func (DropdownOpen) isDropdownMessage()           {}
func (DropdownClose) isDropdownMessage()          {}
func (DropdownToggle) isDropdownMessage()         {}
func (DropdownInsert) isDropdownMessage()         {}
func (DropdownBackspace) isDropdownMessage()      {}
func (DropdownClearFilter) isDropdownMessage()    {}
func (DropdownSetFilter) isDropdownMessage()      {}
func (DropdownSelectNext) isDropdownMessage()     {}
func (DropdownSelectPrevious) isDropdownMessage() {}
func (DropdownConfirm) isDropdownMessage()        {}

// DropdownOutput is what a Dropdown reports to its host.
type DropdownOutput interface {
	isDropdownOutput()
}

// DropdownChanged reports that confirming picked a different option
// than before.
type DropdownChanged struct{ Index int }

// DropdownSubmitted reports that confirming re-picked the already
// selected option.
type DropdownSubmitted struct{ Index int }

// DropdownFilterChanged reports the new filter text.
type DropdownFilterChanged struct{ Filter string }

func (DropdownChanged) isDropdownOutput()       {}
func (DropdownSubmitted) isDropdownOutput()     {}
func (DropdownFilterChanged) isDropdownOutput() {}

// DropdownState is the state of a searchable dropdown.
type DropdownState struct {
	options          []string
	filteredIndices  []int
	selectedIndex    int
	hasSelection     bool
	highlightedIndex int
	open             bool
	focused          bool
	disabled         bool
	filterText       string
	placeholder      string
}

// NewDropdownState returns a dropdown over the given options with no
// selection.
func NewDropdownState(options ...string) DropdownState {
	s := DropdownState{
		options:     append([]string(nil), options...),
		placeholder: "Search...",
	}
	s.updateFilter()
	return s
}

// DropdownWithSelection returns a dropdown with a pre-selected index.
// An out-of-range index leaves the dropdown unselected.
func DropdownWithSelection(options []string, selected int) DropdownState {
	s := NewDropdownState(options...)
	if selected >= 0 && selected < len(s.options) {
		s.selectedIndex = selected
		s.hasSelection = true
	}
	return s
}

// Options returns the full option list.
func (s *DropdownState) Options() []string { return s.options }

// SetOptions replaces the option list, dropping an out-of-range
// selection and re-filtering.
func (s *DropdownState) SetOptions(options ...string) {
	s.options = append([]string(nil), options...)
	if s.hasSelection && s.selectedIndex >= len(s.options) {
		s.hasSelection = false
		s.selectedIndex = 0
	}
	s.updateFilter()
}

// SelectedIndex returns the selected option index, or false when
// nothing is selected.
func (s *DropdownState) SelectedIndex() (int, bool) {
	return s.selectedIndex, s.hasSelection
}

// SelectedValue returns the selected option, or false when nothing is
// selected.
func (s *DropdownState) SelectedValue() (string, bool) {
	if !s.hasSelection || s.selectedIndex >= len(s.options) {
		return "", false
	}
	return s.options[s.selectedIndex], true
}

// SetSelectedIndex selects index, ignoring out-of-range values.
func (s *DropdownState) SetSelectedIndex(index int) {
	if index >= 0 && index < len(s.options) {
		s.selectedIndex = index
		s.hasSelection = true
	}
}

// ClearSelection removes the selection.
func (s *DropdownState) ClearSelection() {
	s.hasSelection = false
	s.selectedIndex = 0
}

// FilterText returns the current filter.
func (s *DropdownState) FilterText() string { return s.filterText }

// FilteredOptions returns the option values matching the filter.
func (s *DropdownState) FilteredOptions() []string {
	out := make([]string, 0, len(s.filteredIndices))
	for _, i := range s.filteredIndices {
		out = append(out, s.options[i])
	}
	return out
}

// FilteredCount returns how many options match the filter.
func (s *DropdownState) FilteredCount() int { return len(s.filteredIndices) }

// HighlightedIndex returns the highlight position within the filtered
// list.
func (s *DropdownState) HighlightedIndex() int { return s.highlightedIndex }

// IsOpen reports whether the option list is showing.
func (s *DropdownState) IsOpen() bool { return s.open }

// Placeholder returns the text shown when nothing is selected.
func (s *DropdownState) Placeholder() string { return s.placeholder }

// SetPlaceholder replaces the placeholder text.
func (s *DropdownState) SetPlaceholder(p string) { s.placeholder = p }

// IsDisabled reports whether the dropdown ignores messages.
func (s *DropdownState) IsDisabled() bool { return s.disabled }

// SetDisabled sets the disabled state. Disabling an open dropdown
// closes it.
func (s *DropdownState) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		s.open = false
	}
}

// updateFilter recomputes filteredIndices from the filter text using
// case-insensitive contains matching, resetting the highlight.
func (s *DropdownState) updateFilter() {
	filter := strings.ToLower(s.filterText)
	s.filteredIndices = s.filteredIndices[:0]
	for i, opt := range s.options {
		if filter == "" || strings.Contains(strings.ToLower(opt), filter) {
			s.filteredIndices = append(s.filteredIndices, i)
		}
	}
	s.highlightedIndex = 0
}

// highlightSelection moves the highlight to the current selection's
// position in the filtered list, when present.
func (s *DropdownState) highlightSelection() {
	if !s.hasSelection {
		return
	}
	for pos, idx := range s.filteredIndices {
		if idx == s.selectedIndex {
			s.highlightedIndex = pos
			return
		}
	}
}

// Dropdown is a searchable single-selection dropdown. Typing filters
// the options with case-insensitive contains matching; navigation wraps
// around the filtered list. A disabled dropdown ignores every message.
type Dropdown struct{}

// Init returns an empty dropdown state.
func (Dropdown) Init() DropdownState {
	return NewDropdownState()
}

// Update applies one message. Messages that arrive while the dropdown
// is closed (navigation, confirm) or while it is disabled do nothing.
func (Dropdown) Update(s *DropdownState, msg DropdownMessage) (DropdownOutput, bool) {
	if s.disabled {
		return nil, false
	}

	switch m := msg.(type) {
	case DropdownOpen:
		if len(s.options) > 0 {
			s.open = true
			s.filterText = ""
			s.updateFilter()
			s.highlightSelection()
		}

	case DropdownClose:
		s.open = false
		s.filterText = ""
		s.updateFilter()

	case DropdownToggle:
		if s.open {
			s.open = false
			s.filterText = ""
			s.updateFilter()
		} else if len(s.options) > 0 {
			s.open = true
			s.filterText = ""
			s.updateFilter()
			s.highlightSelection()
		}

	case DropdownInsert:
		s.filterText += string(m.Char)
		s.updateFilter()
		if !s.open && len(s.options) > 0 {
			s.open = true
		}
		return DropdownFilterChanged{Filter: s.filterText}, true

	case DropdownBackspace:
		if s.filterText == "" {
			return nil, false
		}
		runes := []rune(s.filterText)
		s.filterText = string(runes[:len(runes)-1])
		s.updateFilter()
		return DropdownFilterChanged{Filter: s.filterText}, true

	case DropdownClearFilter:
		if s.filterText == "" {
			return nil, false
		}
		s.filterText = ""
		s.updateFilter()
		return DropdownFilterChanged{}, true

	case DropdownSetFilter:
		if s.filterText == m.Text {
			return nil, false
		}
		s.filterText = m.Text
		s.updateFilter()
		if !s.open && len(s.options) > 0 {
			s.open = true
		}
		return DropdownFilterChanged{Filter: s.filterText}, true

	case DropdownSelectNext:
		if s.open && len(s.filteredIndices) > 0 {
			s.highlightedIndex = (s.highlightedIndex + 1) % len(s.filteredIndices)
		}

	case DropdownSelectPrevious:
		if s.open && len(s.filteredIndices) > 0 {
			if s.highlightedIndex == 0 {
				s.highlightedIndex = len(s.filteredIndices) - 1
			} else {
				s.highlightedIndex--
			}
		}

	case DropdownConfirm:
		if !s.open || len(s.filteredIndices) == 0 {
			return nil, false
		}
		originalIndex := s.filteredIndices[s.highlightedIndex]
		oldSelection, hadSelection := s.selectedIndex, s.hasSelection
		s.selectedIndex = originalIndex
		s.hasSelection = true
		s.open = false
		s.filterText = ""
		s.updateFilter()
		if !hadSelection || oldSelection != originalIndex {
			return DropdownChanged{Index: originalIndex}, true
		}
		return DropdownSubmitted{Index: originalIndex}, true
	}

	return nil, false
}

// View renders the input box, plus the filtered option list below it
// when open. The list is clipped to the area.
func (Dropdown) View(s *DropdownState, f *terminal.Frame, area backend.Rect, th theme.Theme) {
	if area.Width < 2 || area.Height < 3 {
		return
	}

	var st backend.Style
	switch {
	case s.disabled:
		st = backend.Fg(th.Disabled)
	case s.focused:
		st = backend.Fg(th.Focused)
	default:
		st = backend.Fg(th.Foreground)
	}
	borderStyle := backend.Fg(th.Border)
	if s.focused && !s.disabled {
		borderStyle = backend.Fg(th.Focused)
	}

	box := backend.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 3}
	drawBox(f, box, borderStyle)

	var display string
	textStyle := st
	switch {
	case s.open:
		if s.filterText == "" {
			display = "█ ▲"
		} else {
			display = s.filterText + "█ ▲"
		}
	default:
		if value, ok := s.SelectedValue(); ok {
			display = value + " ▼"
		} else {
			display = s.placeholder + " ▼"
			if !s.disabled && !s.focused {
				textStyle = backend.Fg(th.Placeholder)
			}
		}
	}
	f.SetString(area.X+1, area.Y+1, truncate(display, area.Width-2), textStyle)

	if !s.open {
		return
	}
	listTop := area.Y + 3
	for pos, idx := range s.filteredIndices {
		y := listTop + pos
		if y >= area.Bottom() {
			break
		}
		prefix := "  "
		rowStyle := backend.Fg(th.Foreground)
		if pos == s.highlightedIndex {
			prefix = "> "
			rowStyle = backend.Fg(th.Focused)
		}
		if s.hasSelection && idx == s.selectedIndex {
			rowStyle = rowStyle.WithAdd(backend.Modifier{Bold: true})
		}
		f.SetString(area.X, y, truncate(prefix+s.options[idx], area.Width), rowStyle)
	}
}

// IsFocused reports keyboard focus.
func (Dropdown) IsFocused(s *DropdownState) bool { return s.focused }

// SetFocused sets keyboard focus.
func (Dropdown) SetFocused(s *DropdownState, focused bool) { s.focused = focused }
