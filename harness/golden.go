package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MatchGolden compares the harness's screen against a golden file at
// testdata/<name>.txt relative to the test's working directory.
//
// Set ENVISION_UPDATE=1 to create or update golden files.
func (h *Harness) MatchGolden(t testing.TB, name string) {
	t.Helper()
	MatchGolden(t, name, h.Screen())
}

// MatchGolden compares content against the golden file
// testdata/<sanitized-name>.txt. Content is normalized before
// comparison: trailing spaces are trimmed from each line, trailing
// blank lines are dropped, and a single final newline is appended.
func MatchGolden(t testing.TB, name, content string) {
	t.Helper()

	path := filepath.Join("testdata", sanitizeName(name)+".txt")
	normalized := normalizeGolden(content)

	if shouldUpdate() {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("harness: golden: creating directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(normalized), 0o644); err != nil {
			t.Fatalf("harness: golden: writing file: %v", err)
		}
		return
	}

	golden, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("harness: golden: file not found: %s\nRun with ENVISION_UPDATE=1 to create it.\n\nActual screen:\n%s", path, normalized)
		}
		t.Fatalf("harness: golden: reading file: %v", err)
	}

	if string(golden) != normalized {
		t.Fatalf("harness: golden: mismatch for %q\nGolden file: %s\nRun with ENVISION_UPDATE=1 to update.\n\n--- golden ---\n%s\n--- actual ---\n%s",
			name, path, string(golden), normalized)
	}
}

// normalizeGolden trims trailing spaces per line, drops trailing blank
// lines and ends with a single newline.
func normalizeGolden(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n") + "\n"
}

// sanitizeName replaces path-hostile characters with underscores.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}

// shouldUpdate reports whether ENVISION_UPDATE is set to a truthy
// value.
func shouldUpdate() bool {
	v := os.Getenv("ENVISION_UPDATE")
	return v == "1" || v == "true" || v == "yes"
}
