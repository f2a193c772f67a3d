package config

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should validate, got %v", errs)
	}
	if cfg.Output.Format != "plain" {
		t.Errorf("default format = %q, want plain", cfg.Output.Format)
	}
	if cfg.Pixels.CellWidth != 8 || cfg.Pixels.CellHeight != 16 {
		t.Errorf("default pixels = %dx%d, want 8x16", cfg.Pixels.CellWidth, cfg.Pixels.CellHeight)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		field   string
		wantErr bool
	}{
		{
			name:   "valid ansi format",
			mutate: func(c *Config) { c.Output.Format = "ansi" },
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			field:   "output.format",
			wantErr: true,
		},
		{
			name:    "zero cell width",
			mutate:  func(c *Config) { c.Pixels.CellWidth = 0 },
			field:   "pixels.cell_width",
			wantErr: true,
		},
		{
			name:    "negative cell height",
			mutate:  func(c *Config) { c.Pixels.CellHeight = -1 },
			field:   "pixels.cell_height",
			wantErr: true,
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.Theme.Name = "solarized" },
			field:   "theme.name",
			wantErr: true,
		},
		{
			name:   "theme file overrides name",
			mutate: func(c *Config) { c.Theme.Name = "solarized"; c.Theme.File = "my.yaml" },
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			field:   "logging.level",
			wantErr: true,
		},
		{
			name:   "uppercase log level",
			mutate: func(c *Config) { c.Logging.Level = "DEBUG" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if !tt.wantErr {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("error field = %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := ValidationErrors{
		{Field: "output.format", Value: "xml", Message: "must be one of: plain, ansi, json, json-pretty"},
		{Field: "pixels.cell_width", Value: 0, Message: "must be positive"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("Error() = %q", msg)
	}
	if !strings.Contains(msg, "output.format") || !strings.Contains(msg, "pixels.cell_width") {
		t.Errorf("Error() = %q", msg)
	}

	single := ValidationErrors{errs[0]}
	if strings.Contains(single.Error(), "validation errors") {
		t.Errorf("single error should not use the list form: %q", single.Error())
	}
}
