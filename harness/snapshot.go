package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ryanoneill/envision/backend"
)

// SaveSnapshot writes a snapshot to path in the given format. JSON
// formats round-trip through LoadSnapshot; plain and ANSI are for
// human inspection only.
func SaveSnapshot(path string, snap *backend.FrameSnapshot, format backend.OutputFormat) error {
	var content string
	switch format {
	case backend.FormatPlain:
		content = snap.ToPlain()
	case backend.FormatANSI:
		content = snap.ToANSI()
	case backend.FormatJSON:
		content = snap.ToJSON()
	case backend.FormatJSONPretty:
		content = snap.ToJSONPretty()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a JSON snapshot file.
func LoadSnapshot(path string) (*backend.FrameSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var snap backend.FrameSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// SnapshotExt returns the conventional file extension for a format.
func SnapshotExt(format backend.OutputFormat) string {
	switch format {
	case backend.FormatANSI:
		return "ansi"
	case backend.FormatJSON, backend.FormatJSONPretty:
		return "json"
	default:
		return "txt"
	}
}

// LineDiff is a single differing line between two snapshots.
type LineDiff struct {
	Line  int
	Left  string
	Right string
}

// SnapshotDiff is a line-level comparison of two snapshots' plain
// text renderings.
type SnapshotDiff struct {
	ChangedLines []LineDiff
}

// DiffSnapshots compares two snapshots line by line. When one snapshot
// has more rows than the other, the missing side compares as empty.
func DiffSnapshots(left, right *backend.FrameSnapshot) *SnapshotDiff {
	leftLines := strings.Split(left.ToPlain(), "\n")
	rightLines := strings.Split(right.ToPlain(), "\n")

	d := &SnapshotDiff{}
	for i := 0; i < max(len(leftLines), len(rightLines)); i++ {
		var l, r string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		if l != r {
			d.ChangedLines = append(d.ChangedLines, LineDiff{Line: i, Left: l, Right: r})
		}
	}
	return d
}

// IsEmpty reports whether the snapshots render identically.
func (d *SnapshotDiff) IsEmpty() bool { return len(d.ChangedLines) == 0 }

// Changes returns the number of differing lines.
func (d *SnapshotDiff) Changes() int { return len(d.ChangedLines) }

// Format renders the diff for display.
func (d *SnapshotDiff) Format() string {
	if len(d.ChangedLines) == 0 {
		return "No differences\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Changed lines (%d):\n", len(d.ChangedLines))
	for _, ld := range d.ChangedLines {
		fmt.Fprintf(&sb, "  Line %d:\n", ld.Line+1)
		fmt.Fprintf(&sb, "    - %s\n", ld.Left)
		fmt.Fprintf(&sb, "    + %s\n", ld.Right)
	}
	return sb.String()
}

// Matches reports whether two snapshots render to identical plain
// text.
func Matches(left, right *backend.FrameSnapshot) bool {
	return left.ToPlain() == right.ToPlain()
}
