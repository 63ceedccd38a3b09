package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

var (
	appNamePattern     = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	commandNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9:_-]*$`)

	validColors  = map[string]bool{"auto": true, "always": true, "never": true}
	validFormats = map[string]bool{"text": true, "json": true, "yaml": true}
	validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validator handles configuration validation.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

// Validate validates a complete configuration and returns ValidationErrors
// listing every problem found.
func (v *Validator) Validate(config *Config) error {
	v.errors = make(ValidationErrors, 0)

	v.validateMetadata(&config.Metadata)
	v.validateInteraction(&config.Interaction)

	if config.Output.Color != "" && !validColors[config.Output.Color] {
		v.addError("output.color", fmt.Sprintf("must be one of auto, always, never (got %q)", config.Output.Color))
	}
	if config.Output.Format != "" && !validFormats[config.Output.Format] {
		v.addError("output.format", fmt.Sprintf("must be one of text, json, yaml (got %q)", config.Output.Format))
	}
	if config.Logging.Level != "" && !validLevels[config.Logging.Level] {
		v.addError("logging.level", fmt.Sprintf("must be one of debug, info, warn, error (got %q)", config.Logging.Level))
	}

	for name, id := range config.Commands {
		if !commandNamePattern.MatchString(name) {
			v.addError("commands", fmt.Sprintf("invalid command name %q", name))
		}
		if strings.TrimSpace(id) == "" {
			v.addError("commands."+name, "service id is required")
		}
	}

	if len(v.errors) > 0 {
		return v.errors
	}

	return nil
}

func (v *Validator) validateMetadata(meta *Metadata) {
	if meta.Name == "" {
		v.addError("metadata.name", "is required")
	} else if !appNamePattern.MatchString(meta.Name) {
		v.addError("metadata.name", "must be lowercase alphanumeric with hyphens")
	}

	if meta.Version == "" {
		v.addError("metadata.version", "is required")
	}
}

func (v *Validator) validateInteraction(interaction *Interaction) {
	if interaction.MaxAttempts < 0 {
		v.addError("interaction.max_attempts", "must not be negative")
	}
}

func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{
		Field:   field,
		Message: message,
	})
}
