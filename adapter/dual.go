// Package adapter provides backends that compose other backends.
package adapter

import (
	"fmt"

	"github.com/ryanoneill/envision/backend"
)

// DualBackend writes to two backends simultaneously: a primary backend
// that owns the real output, and a capture backend that records every
// operation for inspection. Reads (size, cursor position) come from the
// primary.
type DualBackend struct {
	primary   backend.Backend
	capture   *backend.CaptureBackend
	syncSizes bool
}

// New returns a dual backend tee-ing the primary into the capture
// backend, with size synchronization enabled.
func New(primary backend.Backend, capture *backend.CaptureBackend) *DualBackend {
	return &DualBackend{primary: primary, capture: capture, syncSizes: true}
}

// WithAutoCapture returns a dual backend whose capture backend is sized
// to match the primary.
func WithAutoCapture(primary backend.Backend) (*DualBackend, error) {
	size, err := primary.Size()
	if err != nil {
		return nil, fmt.Errorf("sizing capture backend: %w", err)
	}
	return New(primary, backend.NewCaptureBackend(size.Width, size.Height)), nil
}

// Primary returns the primary backend.
func (d *DualBackend) Primary() backend.Backend { return d.primary }

// Capture returns the capture backend.
func (d *DualBackend) Capture() *backend.CaptureBackend { return d.capture }

// CapturedText returns the captured content as plain text.
func (d *DualBackend) CapturedText() string { return d.capture.String() }

// CapturedANSI returns the captured content with ANSI escapes.
func (d *DualBackend) CapturedANSI() string {
	return d.capture.Render(backend.FormatANSI)
}

// ContainsText reports whether the captured content contains needle in
// any single row.
func (d *DualBackend) ContainsText(needle string) bool {
	return d.capture.ContainsText(needle)
}

// FrameCount returns the capture backend's frame counter.
func (d *DualBackend) FrameCount() uint64 { return d.capture.CurrentFrame() }

// Resize resizes the capture backend to the given dimensions when size
// synchronization is enabled. The primary is assumed to have resized
// itself.
func (d *DualBackend) Resize(width, height int) {
	if d.syncSizes {
		d.capture.Resize(width, height)
	}
}

// Draw forwards the operations to both backends.
func (d *DualBackend) Draw(ops []backend.DrawOp) error {
	if err := d.primary.Draw(ops); err != nil {
		return fmt.Errorf("primary draw: %w", err)
	}
	if err := d.capture.Draw(ops); err != nil {
		return fmt.Errorf("capture draw: %w", err)
	}
	return nil
}

// HideCursor hides the cursor on both backends.
func (d *DualBackend) HideCursor() error {
	if err := d.primary.HideCursor(); err != nil {
		return fmt.Errorf("primary hide cursor: %w", err)
	}
	return d.capture.HideCursor()
}

// ShowCursor shows the cursor on both backends.
func (d *DualBackend) ShowCursor() error {
	if err := d.primary.ShowCursor(); err != nil {
		return fmt.Errorf("primary show cursor: %w", err)
	}
	return d.capture.ShowCursor()
}

// CursorPosition returns the primary backend's cursor position.
func (d *DualBackend) CursorPosition() (backend.Position, error) {
	return d.primary.CursorPosition()
}

// SetCursorPosition moves the cursor on both backends.
func (d *DualBackend) SetCursorPosition(p backend.Position) error {
	if err := d.primary.SetCursorPosition(p); err != nil {
		return fmt.Errorf("primary set cursor: %w", err)
	}
	return d.capture.SetCursorPosition(p)
}

// Clear clears both backends.
func (d *DualBackend) Clear() error {
	if err := d.primary.Clear(); err != nil {
		return fmt.Errorf("primary clear: %w", err)
	}
	return d.capture.Clear()
}

// ClearRegion clears a region on both backends.
func (d *DualBackend) ClearRegion(ct backend.ClearType) error {
	if err := d.primary.ClearRegion(ct); err != nil {
		return fmt.Errorf("primary clear region: %w", err)
	}
	return d.capture.ClearRegion(ct)
}

// Size returns the primary backend's size.
func (d *DualBackend) Size() (backend.Size, error) {
	return d.primary.Size()
}

// WindowSize returns the primary backend's window size.
func (d *DualBackend) WindowSize() (backend.WindowSize, error) {
	return d.primary.WindowSize()
}

// Flush flushes both backends.
func (d *DualBackend) Flush() error {
	if err := d.primary.Flush(); err != nil {
		return fmt.Errorf("primary flush: %w", err)
	}
	return d.capture.Flush()
}

// Builder configures a DualBackend.
type Builder struct {
	primary         backend.Backend
	width, height   int
	hasSize         bool
	historyCapacity int
	syncSizes       bool
}

// NewBuilder returns a builder over the given primary backend.
func NewBuilder(primary backend.Backend) *Builder {
	return &Builder{primary: primary, syncSizes: true}
}

// CaptureSize sets the capture backend's dimensions. When unset, the
// primary's size is used.
func (b *Builder) CaptureSize(width, height int) *Builder {
	b.width, b.height = width, height
	b.hasSize = true
	return b
}

// WithHistory enables frame history with the given capacity.
func (b *Builder) WithHistory(capacity int) *Builder {
	b.historyCapacity = capacity
	return b
}

// NoSyncSizes disables size synchronization.
func (b *Builder) NoSyncSizes() *Builder {
	b.syncSizes = false
	return b
}

// Build constructs the dual backend.
func (b *Builder) Build() (*DualBackend, error) {
	width, height := b.width, b.height
	if !b.hasSize {
		size, err := b.primary.Size()
		if err != nil {
			return nil, fmt.Errorf("sizing capture backend: %w", err)
		}
		width, height = size.Width, size.Height
	}
	var capture *backend.CaptureBackend
	if b.historyCapacity > 0 {
		capture = backend.NewCaptureBackendWithHistory(width, height, b.historyCapacity)
	} else {
		capture = backend.NewCaptureBackend(width, height)
	}
	return &DualBackend{primary: b.primary, capture: capture, syncSizes: b.syncSizes}, nil
}
