package service

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "field and message",
			err: &ValidationError{
				Field:   "rating",
				Message: "must be between 1 and 5",
			},
			want: "validation error on field rating: must be between 1 and 5",
		},
		{
			name: "empty field",
			err: &ValidationError{
				Field:   "",
				Message: "invalid",
			},
			want: "validation error on field : invalid",
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
	tests := []struct {
		name    string
		err     error
		msg     string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "nil error",
			err:     nil,
			msg:     "context",
			wantNil: true,
		},
		{
			name:    "wrapped error",
			err:     errors.New("original error"),
			msg:     "context",
			wantMsg: "context: original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.msg)
			if tt.wantNil {
				if got != nil {
					t.Errorf("WrapError() = %v, want nil", got)
				}
				return
			}
			if got == nil || got.Error() != tt.wantMsg {
				t.Errorf("WrapError() = %v, want %v", got, tt.wantMsg)
				return
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("WrapError() should wrap original error")
			}
		})
	}
}

func TestStorageError(t *testing.T) {
	if storageError(nil, "save") != nil {
		t.Error("storageError(nil) should be nil")
	}

	cause := errors.New("disk full")
	err := storageError(cause, "failed to save record")

	if !errors.Is(err, ErrStorage) {
		t.Error("storageError() should match ErrStorage")
	}
	if !errors.Is(err, cause) {
		t.Error("storageError() should wrap the cause")
	}
	if want := "failed to save record: storage error: disk full"; err.Error() != want {
		t.Errorf("storageError() = %q, want %q", err.Error(), want)
	}
}
