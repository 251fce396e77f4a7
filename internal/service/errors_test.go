package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "export filename",
			err:  &ValidationError{Field: "filename", Message: filenamePrompt},
			want: "validation error on field filename: Please enter a filename.",
		},
		{
			name: "draft key",
			err:  &ValidationError{Field: "key", Message: "cannot be empty"},
			want: "validation error on field key: cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	if got := WrapError(nil, "failed to render markdown"); got != nil {
		t.Errorf("WrapError(nil) = %v, want nil", got)
	}

	cause := errors.New("unexpected EOF")
	got := WrapError(cause, "failed to render markdown")
	if got.Error() != "failed to render markdown: unexpected EOF" {
		t.Errorf("WrapError() = %q", got)
	}
	if !errors.Is(got, cause) {
		t.Error("WrapError() should keep the cause")
	}
}

// Each error the service returns belongs to exactly one kind, which is what
// the HTTP layer switches on.
func TestErrorKinds(t *testing.T) {
	sentinels := []error{ErrInvalidInput, ErrNotFound, ErrExternalService}

	tests := []struct {
		name           string
		err            error
		want           error
		wantValidation bool
	}{
		{
			name: "missing draft",
			err:  fmt.Errorf("draft %q: %w", "notes", ErrNotFound),
			want: ErrNotFound,
		},
		{
			name: "pdf service down",
			err:  fmt.Errorf("%w: %w", ErrExternalService, errors.New("status 503")),
			want: ErrExternalService,
		},
		{
			name: "rejected pdf request",
			err:  fmt.Errorf("%w: %w", ErrInvalidInput, errors.New("bad engine")),
			want: ErrInvalidInput,
		},
		{
			name:           "empty filename",
			err:            WrapError(&ValidationError{Field: "filename", Message: filenamePrompt}, "export"),
			wantValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, sentinel := range sentinels {
				if got := errors.Is(tt.err, sentinel); got != (sentinel == tt.want) {
					t.Errorf("errors.Is(%v, %v) = %v", tt.err, sentinel, got)
				}
			}
			var validationErr *ValidationError
			if got := errors.As(tt.err, &validationErr); got != tt.wantValidation {
				t.Errorf("errors.As(ValidationError) = %v, want %v", got, tt.wantValidation)
			}
		})
	}
}
