package input

// Event is an input event fed to an application: key presses, mouse
// activity, resizes, focus changes and pastes.
type Event interface {
	isEvent()
}

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all of m2's modifiers are held.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// KeyCode identifies a non-character key, or KeyRune for a character.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyCodeNames = map[KeyCode]string{
	KeyRune: "rune", KeyEnter: "enter", KeyEscape: "escape",
	KeyBackspace: "backspace", KeyTab: "tab", KeyDelete: "delete",
	KeyInsert: "insert", KeyUp: "up", KeyDown: "down", KeyLeft: "left",
	KeyRight: "right", KeyHome: "home", KeyEnd: "end",
	KeyPageUp: "page_up", KeyPageDown: "page_down",
	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5",
	KeyF6: "f6", KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10",
	KeyF11: "f11", KeyF12: "f12",
}

func (k KeyCode) String() string {
	if name, ok := keyCodeNames[k]; ok {
		return name
	}
	return "unknown"
}

// Key is a key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

func (Key) isEvent() {}

// IsChar reports whether the key is the plain character r, with no
// modifiers beyond shift.
func (k Key) IsChar(r rune) bool {
	return k.Code == KeyRune && k.Rune == r && !k.Mods.Has(ModCtrl) && !k.Mods.Has(ModAlt)
}

// IsCtrl reports whether the key is Ctrl plus the character r.
func (k Key) IsCtrl(r rune) bool {
	return k.Code == KeyRune && k.Rune == r && k.Mods.Has(ModCtrl)
}

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseWheelUp
	MouseWheelDown
	MouseNone
)

// MouseAction is the kind of mouse activity.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
	MouseDrag
	MouseScroll
)

// Mouse is a mouse event at a cell coordinate.
type Mouse struct {
	X      int
	Y      int
	Button MouseButton
	Action MouseAction
	Mods   Modifiers
}

func (Mouse) isEvent() {}

// Resize reports a new terminal size.
type Resize struct {
	Width  int
	Height int
}

func (Resize) isEvent() {}

// FocusGained reports the terminal gaining focus.
type FocusGained struct{}

func (FocusGained) isEvent() {}

// FocusLost reports the terminal losing focus.
type FocusLost struct{}

func (FocusLost) isEvent() {}

// Paste carries bracketed-paste content.
type Paste struct {
	Content string
}

func (Paste) isEvent() {}

// Char returns a plain character key press.
func Char(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// Ctrl returns a Ctrl-modified character key press.
func Ctrl(r rune) Key { return Key{Code: KeyRune, Rune: r, Mods: ModCtrl} }

// Alt returns an Alt-modified character key press.
func Alt(r rune) Key { return Key{Code: KeyRune, Rune: r, Mods: ModAlt} }

// KeyPress returns a non-character key press.
func KeyPress(code KeyCode) Key { return Key{Code: code} }

// Enter returns an Enter key press.
func Enter() Key { return KeyPress(KeyEnter) }

// Escape returns an Escape key press.
func Escape() Key { return KeyPress(KeyEscape) }

// Backspace returns a Backspace key press.
func Backspace() Key { return KeyPress(KeyBackspace) }

// Click returns a left button press at (x, y).
func Click(x, y int) Mouse {
	return Mouse{X: x, Y: y, Button: MouseLeft, Action: MousePress}
}

// AsKey returns the event as a Key when it is one.
func AsKey(ev Event) (Key, bool) {
	k, ok := ev.(Key)
	return k, ok
}

// AsMouse returns the event as a Mouse when it is one.
func AsMouse(ev Event) (Mouse, bool) {
	m, ok := ev.(Mouse)
	return m, ok
}

// TypeString names the event's kind, for logging.
func TypeString(ev Event) string {
	switch ev.(type) {
	case Key:
		return "key"
	case Mouse:
		return "mouse"
	case Resize:
		return "resize"
	case FocusGained:
		return "focus_gained"
	case FocusLost:
		return "focus_lost"
	case Paste:
		return "paste"
	default:
		return "unknown"
	}
}
