package theme

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ryanoneill/envision/backend"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background,omitempty"`
	Border     string `yaml:"border"`
	Muted      string `yaml:"muted"`
	Primary    string `yaml:"primary"`
	Success    string `yaml:"success"`
	Warning    string `yaml:"warning"`
	Error      string `yaml:"error"`

	// Interaction colors (optional - defaults derive from the base
	// colors when not specified)
	Focused     string `yaml:"focused,omitempty"`
	Selected    string `yaml:"selected,omitempty"`
	Disabled    string `yaml:"disabled,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var tf ThemeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := tf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &tf, nil
}

// Load loads a YAML theme file and converts it to a Theme.
func Load(path string) (Theme, error) {
	tf, err := LoadThemeFile(path)
	if err != nil {
		return Theme{}, err
	}
	return tf.ToTheme(), nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if t.Version == "" {
		return errors.New("theme version is required")
	}

	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	requiredColors := map[string]string{
		"foreground": t.Colors.Foreground,
		"border":     t.Colors.Border,
		"muted":      t.Colors.Muted,
		"primary":    t.Colors.Primary,
		"success":    t.Colors.Success,
		"warning":    t.Colors.Warning,
		"error":      t.Colors.Error,
	}

	for name, color := range requiredColors {
		if color == "" {
			return fmt.Errorf("color '%s' is required", name)
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	optionalColors := map[string]string{
		"background":  t.Colors.Background,
		"focused":     t.Colors.Focused,
		"selected":    t.Colors.Selected,
		"disabled":    t.Colors.Disabled,
		"placeholder": t.Colors.Placeholder,
	}

	for name, color := range optionalColors {
		if color != "" && !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToTheme converts the theme file to a Theme, deriving unspecified
// interaction colors from the base palette.
func (t *ThemeFile) ToTheme() Theme {
	th := Theme{
		Name:       t.Name,
		Foreground: parseHex(t.Colors.Foreground),
		Border:     parseHex(t.Colors.Border),
		Muted:      parseHex(t.Colors.Muted),
		Primary:    parseHex(t.Colors.Primary),
		Success:    parseHex(t.Colors.Success),
		Warning:    parseHex(t.Colors.Warning),
		Error:      parseHex(t.Colors.Error),
	}
	if t.Colors.Background != "" {
		th.Background = parseHex(t.Colors.Background)
	}
	th.Focused = colorOrDefault(t.Colors.Focused, th.Primary)
	th.Selected = colorOrDefault(t.Colors.Selected, th.Primary)
	th.Disabled = colorOrDefault(t.Colors.Disabled, th.Muted)
	th.Placeholder = colorOrDefault(t.Colors.Placeholder, th.Muted)
	return th
}

func colorOrDefault(hex string, fallback backend.Color) backend.Color {
	if hex == "" {
		return fallback
	}
	return parseHex(hex)
}

// parseHex converts a validated #RGB or #RRGGBB string to a color.
func parseHex(hex string) backend.Color {
	digits := hex[1:]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return backend.Reset
	}
	return backend.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}
