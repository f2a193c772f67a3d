// Package theme defines the color roles components draw with, plus
// built-in palettes and YAML theme-file loading.
package theme

import "github.com/ryanoneill/envision/backend"

// Theme maps rendering roles to colors. Components take a Theme in
// their view so palettes swap without touching component code.
type Theme struct {
	Name string

	// Base roles
	Foreground  backend.Color
	Background  backend.Color
	Border      backend.Color
	Muted       backend.Color
	Placeholder backend.Color

	// Interaction roles
	Focused  backend.Color
	Selected backend.Color
	Disabled backend.Color

	// Semantic roles
	Primary backend.Color
	Success backend.Color
	Warning backend.Color
	Error   backend.Color
}

// Default returns the standard dark palette.
func Default() Theme {
	return Theme{
		Name:        "default",
		Foreground:  backend.Gray,
		Background:  backend.Reset,
		Border:      backend.DarkGray,
		Muted:       backend.DarkGray,
		Placeholder: backend.DarkGray,
		Focused:     backend.LightCyan,
		Selected:    backend.Cyan,
		Disabled:    backend.DarkGray,
		Primary:     backend.Blue,
		Success:     backend.Green,
		Warning:     backend.Yellow,
		Error:       backend.Red,
	}
}

// Light returns a palette for light terminal backgrounds.
func Light() Theme {
	return Theme{
		Name:        "light",
		Foreground:  backend.Black,
		Background:  backend.Reset,
		Border:      backend.Gray,
		Muted:       backend.Gray,
		Placeholder: backend.Gray,
		Focused:     backend.Blue,
		Selected:    backend.Blue,
		Disabled:    backend.Gray,
		Primary:     backend.Blue,
		Success:     backend.Green,
		Warning:     backend.Yellow,
		Error:       backend.Red,
	}
}

// HighContrast returns a palette that avoids muted tones entirely.
func HighContrast() Theme {
	return Theme{
		Name:        "high-contrast",
		Foreground:  backend.White,
		Background:  backend.Black,
		Border:      backend.White,
		Muted:       backend.Gray,
		Placeholder: backend.Gray,
		Focused:     backend.LightYellow,
		Selected:    backend.LightYellow,
		Disabled:    backend.Gray,
		Primary:     backend.LightBlue,
		Success:     backend.LightGreen,
		Warning:     backend.LightYellow,
		Error:       backend.LightRed,
	}
}

// Builtin returns the named built-in theme, or false when the name is
// unknown.
func Builtin(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return Default(), true
	case "light":
		return Light(), true
	case "high-contrast":
		return HighContrast(), true
	default:
		return Theme{}, false
	}
}
