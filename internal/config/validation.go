// Package config provides configuration loading and processing for the
// appdirs CLI.
package config

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidStrategyKind is returned when a strategy kind value is invalid.
	ErrInvalidStrategyKind = errors.New("invalid strategy kind value")

	// ErrInvalidPattern is returned when an override glob pattern is invalid.
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrEmptyValue is returned when a required value is empty.
	ErrEmptyValue = errors.New("empty value not allowed")
)

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
// Returns an error describing all validation failures.
func (v *Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	var validationErrors []error

	// Validate output config
	if cfg.Output != nil {
		if err := v.validateOutputConfig(cfg.Output); err != nil {
			validationErrors = append(validationErrors, errors.Wrap(err, "output"))
		}
	}

	// Validate strategy config
	if cfg.Strategy != nil {
		if err := v.validateStrategyConfig(cfg.Strategy); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}

	if len(validationErrors) > 0 {
		return errors.WithSecondaryError(
			errors.Wrapf(
				ErrInvalidConfig,
				"validation failed with %d error(s)",
				len(validationErrors),
			),
			combineErrors(validationErrors),
		)
	}

	return nil
}

// validateOutputConfig validates the output configuration.
func (*Validator) validateOutputConfig(cfg *config.OutputConfig) error {
	if cfg.Format != config.FormatUnknown && !cfg.Format.IsAFormat() {
		return errors.Wrapf(
			config.ErrInvalidFormat,
			"format must be %q, %q, %q, or %q, got %q",
			config.FormatTable.String(),
			config.FormatPlain.String(),
			config.FormatJSON.String(),
			config.FormatYAML.String(),
			cfg.Format.String(),
		)
	}

	return nil
}

// validateStrategyConfig validates the strategy configuration.
func (v *Validator) validateStrategyConfig(cfg *config.StrategyConfig) error {
	var validationErrors []error

	if cfg.Kind != appdir.KindUnknown && !cfg.Kind.IsAKind() {
		validationErrors = append(
			validationErrors,
			errors.Wrapf(
				ErrInvalidStrategyKind,
				"strategy.kind must be %q, %q, %q, or %q, got %q",
				appdir.KindXDG.String(),
				appdir.KindApple.String(),
				appdir.KindWindows.String(),
				appdir.KindUnix.String(),
				cfg.Kind.String(),
			),
		)
	}

	for i, override := range cfg.Overrides {
		if err := v.validateOverride(override); err != nil {
			validationErrors = append(
				validationErrors,
				errors.Wrapf(err, "strategy.overrides[%d]", i),
			)
		}
	}

	if len(validationErrors) > 0 {
		return combineErrors(validationErrors)
	}

	return nil
}

// validateOverride validates a single strategy override.
func (*Validator) validateOverride(cfg config.Override) error {
	var validationErrors []error

	if cfg.Match == "" {
		validationErrors = append(
			validationErrors,
			errors.WithMessage(ErrEmptyValue, "match"),
		)
	} else if !doublestar.ValidatePattern(cfg.Match) {
		validationErrors = append(
			validationErrors,
			errors.Wrapf(ErrInvalidPattern, "match %q", cfg.Match),
		)
	}

	if cfg.Kind == appdir.KindUnknown || !cfg.Kind.IsAKind() {
		validationErrors = append(
			validationErrors,
			errors.Wrapf(
				ErrInvalidStrategyKind,
				"kind must be %q, %q, %q, or %q",
				appdir.KindXDG.String(),
				appdir.KindApple.String(),
				appdir.KindWindows.String(),
				appdir.KindUnix.String(),
			),
		)
	}

	if len(validationErrors) > 0 {
		return combineErrors(validationErrors)
	}

	return nil
}

// combineErrors combines multiple errors into a single error.
func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
