package harness

import (
	"strings"
	"testing"
)

// AssertContains fails the test when the screen does not contain
// needle in any single row.
func (h *Harness) AssertContains(t testing.TB, needle string) {
	t.Helper()
	if !h.Contains(needle) {
		t.Errorf("screen does not contain %q:\n%s", needle, h.Screen())
	}
}

// AssertNotContains fails the test when the screen contains needle.
func (h *Harness) AssertNotContains(t testing.TB, needle string) {
	t.Helper()
	if h.Contains(needle) {
		t.Errorf("screen unexpectedly contains %q:\n%s", needle, h.Screen())
	}
}

// AssertRowEquals fails the test when row y, with trailing whitespace
// trimmed, differs from want.
func (h *Harness) AssertRowEquals(t testing.TB, y int, want string) {
	t.Helper()
	got := strings.TrimRight(h.Row(y), " \t")
	if got != strings.TrimRight(want, " \t") {
		t.Errorf("row %d = %q, want %q", y, got, want)
	}
}

// AssertRowContains fails the test when row y does not contain needle.
func (h *Harness) AssertRowContains(t testing.TB, y int, needle string) {
	t.Helper()
	if !strings.Contains(h.Row(y), needle) {
		t.Errorf("row %d = %q, does not contain %q", y, h.Row(y), needle)
	}
}

// AssertTextAt fails the test when needle's first occurrence is not at
// (x, y).
func (h *Harness) AssertTextAt(t testing.TB, needle string, x, y int) {
	t.Helper()
	pos, ok := h.FindText(needle)
	if !ok {
		t.Errorf("screen does not contain %q:\n%s", needle, h.Screen())
		return
	}
	if pos.X != x || pos.Y != y {
		t.Errorf("%q found at (%d,%d), want (%d,%d)", needle, pos.X, pos.Y, x, y)
	}
}

// AssertScreenEquals fails the test when the normalized screen differs
// from want. Both sides are normalized like golden files.
func (h *Harness) AssertScreenEquals(t testing.TB, want string) {
	t.Helper()
	got := normalizeGolden(h.Screen())
	want = normalizeGolden(want)
	if got != want {
		t.Errorf("screen mismatch\n--- want ---\n%s--- got ---\n%s", want, got)
	}
}
