package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "render.hidden_class").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., colliding class names).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings. Empty values
// mean "unset" and are accepted, so a single config file layer validates.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Parser.Flavor != "" && !cfg.Parser.Flavor.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "parser.flavor",
			Value:   cfg.Parser.Flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: native, goldmark, gfm", cfg.Parser.Flavor),
		})
	}

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: markdown, json, html, tree", cfg.Format),
		})
	}

	switch cfg.Color {
	case "", config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	validateClasses(cfg.Render, result)

	return result
}

// validateClasses rejects class names that are not a single HTML class token
// and warns when the visibility classes cannot be told apart.
func validateClasses(r config.RenderConfig, result *ValidationResult) {
	fields := []struct {
		name  string
		value string
	}{
		{"render.syntax_class", r.SyntaxClass},
		{"render.visible_class", r.VisibleClass},
		{"render.hidden_class", r.HiddenClass},
	}
	for _, f := range fields {
		if strings.ContainsFunc(f.value, isClassSeparator) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   f.name,
				Value:   f.value,
				Message: fmt.Sprintf("class name %q must not contain whitespace", f.value),
			})
		}
	}

	if r.VisibleClass != "" && r.VisibleClass == r.HiddenClass {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "render.hidden_class",
			Value:   r.HiddenClass,
			Message: fmt.Sprintf("visible and hidden syntax share the class %q", r.HiddenClass),
		})
	}
}

func isClassSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// ValidateResolved validates a fully merged configuration. On top of Validate
// it requires every class name to be set, since the renderer cannot toggle
// visibility without them.
func ValidateResolved(cfg *config.Config) *ValidationResult {
	result := Validate(cfg)
	if cfg == nil {
		return result
	}

	required := []struct {
		name  string
		value string
	}{
		{"render.syntax_class", cfg.Render.SyntaxClass},
		{"render.visible_class", cfg.Render.VisibleClass},
		{"render.hidden_class", cfg.Render.HiddenClass},
	}
	for _, f := range required {
		if f.value == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   f.name,
				Message: "class name must not be empty",
			})
		}
	}
	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
