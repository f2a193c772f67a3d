package input

import "testing"

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	if !q.IsEmpty() {
		t.Fatalf("new queue should be empty")
	}
	q.Push(Char('a'))
	q.Push(Char('b'))
	q.PushFront(Enter())
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	ev, ok := q.Peek()
	if !ok {
		t.Fatalf("Peek() on non-empty queue failed")
	}
	if k, _ := AsKey(ev); k.Code != KeyEnter {
		t.Errorf("Peek() = %+v, want enter first", ev)
	}
	if q.Len() != 3 {
		t.Errorf("Peek() consumed an event")
	}

	want := []rune{0, 'a', 'b'}
	for i, r := range want {
		ev, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() %d failed", i)
		}
		k, isKey := AsKey(ev)
		if !isKey {
			t.Fatalf("Pop() %d = %T, want Key", i, ev)
		}
		if i == 0 {
			if k.Code != KeyEnter {
				t.Errorf("Pop() 0 = %+v, want enter", k)
			}
		} else if !k.IsChar(r) {
			t.Errorf("Pop() %d = %+v, want %q", i, k, r)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Errorf("Pop() on empty queue should fail")
	}
}

func TestEventQueuePushText(t *testing.T) {
	q := NewEventQueue()
	q.PushText("hi")
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	ev, _ := q.Pop()
	if k, _ := AsKey(ev); !k.IsChar('h') {
		t.Errorf("first event = %+v, want h", ev)
	}
}

func TestEventQueueClear(t *testing.T) {
	q := NewEventQueue()
	q.PushAll(Char('x'), Click(1, 2), Resize{Width: 80, Height: 24})
	q.Clear()
	if !q.IsEmpty() {
		t.Errorf("queue not empty after Clear()")
	}
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		wantType string
	}{
		{name: "char", event: Char('x'), wantType: "key"},
		{name: "ctrl", event: Ctrl('c'), wantType: "key"},
		{name: "mouse", event: Click(3, 4), wantType: "mouse"},
		{name: "resize", event: Resize{Width: 80, Height: 24}, wantType: "resize"},
		{name: "focus gained", event: FocusGained{}, wantType: "focus_gained"},
		{name: "focus lost", event: FocusLost{}, wantType: "focus_lost"},
		{name: "paste", event: Paste{Content: "hi"}, wantType: "paste"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeString(tt.event); got != tt.wantType {
				t.Errorf("TypeString() = %q, want %q", got, tt.wantType)
			}
		})
	}
}

func TestKeyPredicates(t *testing.T) {
	if !Char('q').IsChar('q') {
		t.Errorf("IsChar failed for plain char")
	}
	if Ctrl('q').IsChar('q') {
		t.Errorf("IsChar should reject ctrl-modified keys")
	}
	if !Ctrl('c').IsCtrl('c') {
		t.Errorf("IsCtrl failed")
	}
	if Char('c').IsCtrl('c') {
		t.Errorf("IsCtrl should require the ctrl modifier")
	}
	if !Alt('x').Mods.Has(ModAlt) {
		t.Errorf("Alt() should set ModAlt")
	}
}
