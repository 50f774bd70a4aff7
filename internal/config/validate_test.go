package config

import (
	"testing"
	"time"

	"github.com/thoreinstein/motd/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(*Settings) {},
		},
		{
			name:   "multibyte bar character",
			mutate: func(s *Settings) { s.ProgressFullCharacter = "█" },
		},
		{
			name:    "empty time format",
			mutate:  func(s *Settings) { s.TimeFormat = "" },
			wantErr: ErrEmptyTimeFormat,
		},
		{
			name:    "empty bar character",
			mutate:  func(s *Settings) { s.ProgressEmptyCharacter = "" },
			wantErr: ErrBarCharacter,
		},
		{
			name:    "long bar character",
			mutate:  func(s *Settings) { s.ProgressFullCharacter = "==" },
			wantErr: ErrBarCharacter,
		},
		{
			name:    "negative width",
			mutate:  func(s *Settings) { s.ProgressWidth = -1 },
			wantErr: ErrNegativeWidth,
		},
		{
			name:    "zero timeout",
			mutate:  func(s *Settings) { s.CommandTimeout = 0 },
			wantErr: ErrCommandTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)

			errs := Validate(s)
			if tt.wantErr == nil {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if !errors.Is(errs[0], tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", errs[0], tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	s := &Settings{ProgressWidth: -3}

	errs := Validate(s)
	// time format, both bar characters, width, timeout
	if len(errs) != 5 {
		t.Errorf("Validate() returned %d errors, want 5: %v", len(errs), errs)
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v, want one error", errs)
	}
}

func TestFieldError(t *testing.T) {
	err := &FieldError{Field: "progress_prefix", Value: "<<", Err: ErrBarCharacter}
	want := `progress_prefix "<<": must be exactly one character`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrBarCharacter) {
		t.Error("FieldError should unwrap to its cause")
	}
}

func TestSettingsTimeout(t *testing.T) {
	var nilSettings *Settings
	if got := nilSettings.Timeout(); got != Default().CommandTimeout {
		t.Errorf("nil Timeout() = %v, want default", got)
	}
	s := &Settings{CommandTimeout: time.Second}
	if got := s.Timeout(); got != time.Second {
		t.Errorf("Timeout() = %v, want 1s", got)
	}
}
