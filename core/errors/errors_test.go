package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with ID",
			err:      &NotFoundError{Resource: "book", ID: "Gen"},
			wantMsg:  "book not found: Gen",
			wantBase: ErrNotFound,
		},
		{
			name:     "without ID",
			err:      &NotFoundError{Resource: "canon"},
			wantMsg:  "canon not found",
			wantBase: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlying := fmt.Errorf("canon index miss")
		err := &NotFoundError{Resource: "book", ID: "Xyz", Err: underlying}
		if got := err.Error(); got != "book not found: Xyz" {
			t.Errorf("Error() = %q, want %q", got, "book not found: Xyz")
		}
		if got := err.Unwrap(); got != underlying {
			t.Errorf("Unwrap() = %v, want %v", got, underlying)
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with field",
			err:      &ValidationError{Field: "pattern", Message: "must anchor at start"},
			wantMsg:  "validation failed for pattern: must anchor at start",
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "duplicate book id"},
			wantMsg:  "validation failed: duplicate book id",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlying := fmt.Errorf("regex parse error")
		err := &ValidationError{Field: "pattern", Message: "invalid regex", Err: underlying}
		if got := err.Unwrap(); got != underlying {
			t.Errorf("Unwrap() = %v, want %v", got, underlying)
		}
	})
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with input",
			err:     &ParseError{Format: "reference", Input: "Gen 99:1", Message: "chapter out of range"},
			wantMsg: `failed to parse reference "Gen 99:1": chapter out of range`,
		},
		{
			name:    "without input",
			err:     &ParseError{Format: "canon-xml", Message: "missing chapters element"},
			wantMsg: "failed to parse canon-xml: missing chapters element",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, ErrInvalidInput) {
				t.Errorf("Unwrap() = %v, want ErrInvalidInput", got)
			}
		})
	}
}

func TestUnsupportedError(t *testing.T) {
	err := &UnsupportedError{Feature: "vsub range", Reason: "sub-verse letters cannot span a range end"}
	want := "unsupported vsub range: sub-verse letters cannot span a range end"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := err.Unwrap(); !errors.Is(got, ErrUnsupported) {
		t.Errorf("Unwrap() = %v, want ErrUnsupported", got)
	}
}

func TestConstructors(t *testing.T) {
	if got := NewNotFound("book", "Gen").Error(); got != "book not found: Gen" {
		t.Errorf("NewNotFound() = %q", got)
	}
	if got := NewValidation("id", "must be positive").Error(); got != "validation failed for id: must be positive" {
		t.Errorf("NewValidation() = %q", got)
	}
	if got := NewParse("reference", "Gen 1", "unexpected token").Error(); got == "" {
		t.Errorf("NewParse() returned empty message")
	}
	if got := NewUnsupported("html output", "no URI configured").Error(); got != "unsupported html output: no URI configured" {
		t.Errorf("NewUnsupported() = %q", got)
	}
}

func TestWrapAndWrapf(t *testing.T) {
	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
	base := errors.New("boom")
	wrapped := Wrap(base, "loading canon")
	if wrapped.Error() != "loading canon: boom" {
		t.Errorf("Wrap() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Errorf("Wrap() did not preserve chain to base error")
	}

	if got := Wrapf(nil, "ctx %d", 1); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
	wrappedf := Wrapf(base, "parsing %q", "Gen 1")
	if wrappedf.Error() != `parsing "Gen 1": boom` {
		t.Errorf("Wrapf() = %q", wrappedf.Error())
	}
}

func TestIsAndAs(t *testing.T) {
	nf := NewNotFound("book", "Gen")
	if !Is(nf, ErrNotFound) {
		t.Errorf("Is() = false, want true")
	}
	var target *NotFoundError
	if !As(nf, &target) {
		t.Errorf("As() = false, want true")
	}
}
