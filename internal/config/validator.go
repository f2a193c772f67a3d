package config

import (
	"fmt"
	"strings"

	"github.com/ryanoneill/envision/backend"
	"github.com/ryanoneill/envision/logging"
	"github.com/ryanoneill/envision/theme"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "output.format")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all
// validation errors found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validatePixels()...)
	errors = append(errors, c.validateTheme()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if c.Output.Format != "" {
		if _, ok := backend.ParseOutputFormat(c.Output.Format); !ok {
			errors = append(errors, ValidationError{
				Field:   "output.format",
				Value:   c.Output.Format,
				Message: "must be one of: plain, ansi, json, json-pretty",
			})
		}
	}

	return errors
}

func (c *Config) validatePixels() []ValidationError {
	var errors []ValidationError

	if c.Pixels.CellWidth <= 0 {
		errors = append(errors, ValidationError{
			Field:   "pixels.cell_width",
			Value:   c.Pixels.CellWidth,
			Message: "must be positive",
		})
	}
	if c.Pixels.CellHeight <= 0 {
		errors = append(errors, ValidationError{
			Field:   "pixels.cell_height",
			Value:   c.Pixels.CellHeight,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateTheme() []ValidationError {
	var errors []ValidationError

	// A theme file overrides the name and is validated on load.
	if c.Theme.File == "" && c.Theme.Name != "" {
		if _, ok := theme.Builtin(c.Theme.Name); !ok {
			errors = append(errors, ValidationError{
				Field:   "theme.name",
				Value:   c.Theme.Name,
				Message: "must be one of: default, light, high-contrast",
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !validLevel(c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.ValidLevels(), ", ")),
		})
	}

	return errors
}

func validLevel(level string) bool {
	for _, valid := range logging.ValidLevels() {
		if strings.EqualFold(level, valid) {
			return true
		}
	}
	return false
}
