package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/thoreinstein/motd/internal/errors"
)

// Validation errors for settings fields.
var (
	// ErrEmptyTimeFormat indicates time_format is blank.
	ErrEmptyTimeFormat = errors.New("time_format must not be empty")

	// ErrBarCharacter indicates a progress character is not exactly one rune.
	ErrBarCharacter = errors.New("must be exactly one character")

	// ErrNegativeWidth indicates progress_width is below zero.
	ErrNegativeWidth = errors.New("progress_width must be >= 0")

	// ErrCommandTimeout indicates command_timeout is not positive.
	ErrCommandTimeout = errors.New("command_timeout must be positive")
)

// FieldError ties a validation error to a settings key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks s. It returns nil when s is valid, otherwise every
// problem found.
func Validate(s *Settings) []error {
	if s == nil {
		return []error{errors.New("settings are nil")}
	}

	var errs []error

	if s.TimeFormat == "" {
		errs = append(errs, ErrEmptyTimeFormat)
	}

	for field, val := range map[string]string{
		"progress_full_character":  s.ProgressFullCharacter,
		"progress_empty_character": s.ProgressEmptyCharacter,
	} {
		if utf8.RuneCountInString(val) != 1 {
			errs = append(errs, &FieldError{Field: field, Value: val, Err: ErrBarCharacter})
		}
	}

	if s.ProgressWidth < 0 {
		errs = append(errs, ErrNegativeWidth)
	}

	if s.CommandTimeout <= 0 {
		errs = append(errs, &FieldError{
			Field: "command_timeout",
			Value: s.CommandTimeout.String(),
			Err:   ErrCommandTimeout,
		})
	}

	return errs
}

// Timeout returns CommandTimeout, or the default when it is unset.
func (s *Settings) Timeout() time.Duration {
	if s == nil || s.CommandTimeout <= 0 {
		return Default().CommandTimeout
	}
	return s.CommandTimeout
}
