package component

import (
	"fmt"

	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/terminal"
	"github.com/ryanoneill/envision/theme"
)

// ListMessage is a message understood by SelectableList.
type ListMessage interface {
	isListMessage()
}

// ListUp moves the selection up by one.
type ListUp struct{}

// ListDown moves the selection down by one.
type ListDown struct{}

// ListFirst moves the selection to the first item.
type ListFirst struct{}

// ListLast moves the selection to the last item.
type ListLast struct{}

// ListPageUp moves the selection up by Page items.
type ListPageUp struct{ Page int }

// ListPageDown moves the selection down by Page items.
type ListPageDown struct{ Page int }

// ListSelect emits the selected item.
type ListSelect struct{}

func (ListUp) isListMessage()       {}
func (ListDown) isListMessage()     {}
func (ListFirst) isListMessage()    {}
func (ListLast) isListMessage()     {}
func (ListPageUp) isListMessage()   {}
func (ListPageDown) isListMessage() {}
func (ListSelect) isListMessage()   {}

// ListOutput is what a SelectableList reports to its host.
type ListOutput[T any] interface {
	isListOutput()
}

// ListSelected reports that the current item was picked.
type ListSelected[T any] struct{ Item T }

// ListSelectionChanged reports that the selection moved to a new index.
type ListSelectionChanged[T any] struct{ Index int }

func (ListSelected[T]) isListOutput()         {}
func (ListSelectionChanged[T]) isListOutput() {}

// SelectableListState is the state of a SelectableList.
type SelectableListState[T any] struct {
	items        []T
	selected     int
	hasSelection bool
	focused      bool
}

// ListWithItems returns a list state over items with the first item
// selected.
func ListWithItems[T any](items ...T) SelectableListState[T] {
	s := SelectableListState[T]{items: append([]T(nil), items...)}
	if len(s.items) > 0 {
		s.hasSelection = true
	}
	return s
}

// Items returns the item slice.
func (s *SelectableListState[T]) Items() []T { return s.items }

// SetItems replaces the items. An existing selection is clamped to the
// new length; an empty list clears it.
func (s *SelectableListState[T]) SetItems(items ...T) {
	s.items = append([]T(nil), items...)
	if len(s.items) == 0 {
		s.selected = 0
		s.hasSelection = false
		return
	}
	if !s.hasSelection {
		s.selected = 0
		s.hasSelection = true
	} else if s.selected >= len(s.items) {
		s.selected = len(s.items) - 1
	}
}

// SelectedIndex returns the selected index, or false when nothing is
// selected.
func (s *SelectableListState[T]) SelectedIndex() (int, bool) {
	return s.selected, s.hasSelection
}

// SelectedItem returns the selected item, or false when nothing is
// selected.
func (s *SelectableListState[T]) SelectedItem() (T, bool) {
	var zero T
	if !s.hasSelection || s.selected >= len(s.items) {
		return zero, false
	}
	return s.items[s.selected], true
}

// Select moves the selection to index, ignoring out-of-range values.
func (s *SelectableListState[T]) Select(index int) {
	if index >= 0 && index < len(s.items) {
		s.selected = index
		s.hasSelection = true
	}
}

// ClearSelection removes the selection.
func (s *SelectableListState[T]) ClearSelection() {
	s.selected = 0
	s.hasSelection = false
}

// IsEmpty reports whether the list has no items.
func (s *SelectableListState[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of items.
func (s *SelectableListState[T]) Len() int { return len(s.items) }

// SelectableList is a scrollable list with selection tracking. Items
// are rendered with fmt.Sprint unless the host draws them itself.
type SelectableList[T any] struct{}

// Init returns an empty list state.
func (SelectableList[T]) Init() SelectableListState[T] {
	return SelectableListState[T]{}
}

// Update applies one navigation message. Navigation clamps at the
// ends and only emits an output when the selection actually moved.
// Messages to an empty list do nothing.
func (SelectableList[T]) Update(s *SelectableListState[T], msg ListMessage) (ListOutput[T], bool) {
	if len(s.items) == 0 {
		return nil, false
	}

	current := s.selected
	if !s.hasSelection {
		current = 0
	}
	last := len(s.items) - 1

	moveTo := func(index int) (ListOutput[T], bool) {
		if index == current && s.hasSelection {
			return nil, false
		}
		s.selected = index
		s.hasSelection = true
		return ListSelectionChanged[T]{Index: index}, true
	}

	switch m := msg.(type) {
	case ListUp:
		return moveTo(max(current-1, 0))
	case ListDown:
		return moveTo(min(current+1, last))
	case ListFirst:
		return moveTo(0)
	case ListLast:
		return moveTo(last)
	case ListPageUp:
		return moveTo(max(current-m.Page, 0))
	case ListPageDown:
		return moveTo(min(current+m.Page, last))
	case ListSelect:
		if item, ok := s.SelectedItem(); ok {
			return ListSelected[T]{Item: item}, true
		}
	}
	return nil, false
}

// View renders the items inside a border, scrolled so the selection is
// visible, with a "> " marker on the selected row.
func (SelectableList[T]) View(s *SelectableListState[T], f *terminal.Frame, area backend.Rect, th theme.Theme) {
	borderStyle := backend.Fg(th.Border)
	if s.focused {
		borderStyle = backend.Fg(th.Focused)
	}
	drawBox(f, area, borderStyle)

	inner := area.Inner(1)
	if inner.Width <= 0 || inner.Height <= 0 {
		return
	}

	offset := 0
	if s.hasSelection && s.selected >= inner.Height {
		offset = s.selected - inner.Height + 1
	}

	for row := 0; row < inner.Height; row++ {
		idx := offset + row
		if idx >= len(s.items) {
			break
		}
		prefix := "  "
		rowStyle := backend.Fg(th.Foreground)
		if s.hasSelection && idx == s.selected {
			prefix = "> "
			rowStyle = backend.Fg(th.Selected).WithAdd(backend.Modifier{Bold: true})
			if !s.focused {
				rowStyle = backend.Fg(th.Muted).WithAdd(backend.Modifier{Bold: true})
			}
		}
		line := truncate(prefix+fmt.Sprint(s.items[idx]), inner.Width)
		f.SetString(inner.X, inner.Y+row, line, rowStyle)
	}
}

// IsFocused reports keyboard focus.
func (SelectableList[T]) IsFocused(s *SelectableListState[T]) bool { return s.focused }

// SetFocused sets keyboard focus.
func (SelectableList[T]) SetFocused(s *SelectableListState[T], focused bool) { s.focused = focused }
