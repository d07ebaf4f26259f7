package testutil

import (
	"errors"
	"sort"
	"testing"

	apperrors "finwallet/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertValidationFields checks that err is a validation failure naming
// exactly the given fields.
func AssertValidationFields(t *testing.T, err error, fields ...string) {
	t.Helper()

	AssertAppError(t, err, apperrors.ErrValidation.Code)

	var appErr *apperrors.AppError
	errors.As(err, &appErr)

	got := make([]string, 0, len(appErr.Fields))
	for f := range appErr.Fields {
		got = append(got, f)
	}
	sort.Strings(got)
	want := append([]string(nil), fields...)
	sort.Strings(want)

	if len(got) != len(want) {
		t.Fatalf("expected failing fields %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected failing fields %v, got %v", want, got)
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
