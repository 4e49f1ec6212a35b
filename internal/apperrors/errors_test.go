package apperrors

import (
	"errors"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with message",
			err:  New("bdd.Enforce", ErrInvalidInput, "empty input"),
			want: "bdd.Enforce: empty input: invalid input",
		},
		{
			name: "without message",
			err:  Wrap("testcase.WriteFile", ErrInternal),
			want: "testcase.WriteFile: internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	base := errors.New("disk full")
	wrapped := Wrap("testcase.WriteFile", base)
	if !errors.Is(wrapped, base) {
		t.Errorf("errors.Is() = false, want true")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf("config.Load", ErrInvalidInput, "max_cases %d out of range", 99)
	want := "config.Load: max_cases 99 out of range: invalid input"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSentinelChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{name: "not found direct", err: ErrNotFound, check: IsNotFound, want: true},
		{name: "not found wrapped", err: Wrap("x", ErrNotFound), check: IsNotFound, want: true},
		{name: "invalid input wrapped", err: New("x", ErrInvalidInput, "bad"), check: IsInvalidInput, want: true},
		{name: "internal wrapped", err: Wrap("x", ErrInternal), check: IsInternal, want: true},
		{name: "mismatch", err: Wrap("x", ErrNotFound), check: IsInvalidInput, want: false},
		{name: "nil", err: nil, check: IsNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check = %v, want %v", got, tt.want)
			}
		})
	}
}
