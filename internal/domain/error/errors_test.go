package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientPoints.Error() != "insufficient points" {
		t.Errorf("ErrInsufficientPoints has unexpected message: %s", ErrInsufficientPoints.Error())
	}
	if ErrInsufficientPoints.Kind != KindFailedPrecondition {
		t.Errorf("ErrInsufficientPoints has unexpected kind: %s", ErrInsufficientPoints.Kind)
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientPoints", ErrInsufficientPoints, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidID", ErrInvalidID, 4003},
		{"SelfDealing", ErrSelfDealing, 4031},
		{"UserNotFound", ErrUserNotFound, 4041},
		{"DuplicateRequest", ErrDuplicateRequest, 4091},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidID), 4003},
		{"DetailedError", Invalidf("firstName %q is invalid", "1"), 4000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrWrongBunk, http.StatusForbidden},
		{ErrInvalidAmount, http.StatusBadRequest},
		{ErrInsufficientPoints, http.StatusBadRequest},
		{ErrBunkNotFound, http.StatusNotFound},
		{ErrDuplicateUser, http.StatusConflict},
		{ErrConflict, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		if got := HTTPStatus(tc.err); got != tc.expected {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
		}
	}
}

func TestPublicMessageHidesInternalDetails(t *testing.T) {
	err := fmt.Errorf("%w: pq: relation users does not exist", ErrDatabaseConnection)
	if msg := PublicMessage(err); msg != "internal server error" {
		t.Errorf("PublicMessage leaked details: %s", msg)
	}

	if msg := PublicMessage(WithMessage(ErrBunkNotFound, "assigned bunk not found")); msg != "assigned bunk not found" {
		t.Errorf("PublicMessage = %s", msg)
	}
}

func TestWithMessageKeepsIdentity(t *testing.T) {
	err := WithMessage(ErrNotAManager, "user u1 is a customer")
	if !errors.Is(err, ErrNotAManager) {
		t.Errorf("errors.Is(err, ErrNotAManager) = false, want true")
	}
	if KindOf(err) != KindFailedPrecondition {
		t.Errorf("KindOf(err) = %s, want %s", KindOf(err), KindFailedPrecondition)
	}
}

func TestOperationError(t *testing.T) {
	opErr := NewOperationError("credit", "m1", "c1", ErrCustomerNotVerified)

	expected := "credit failed (actor: m1, target: c1): customer is not verified"
	if opErr.Error() != expected {
		t.Errorf("OperationError.Error() = %s, want %s", opErr.Error(), expected)
	}

	if !errors.Is(opErr, ErrCustomerNotVerified) {
		t.Errorf("errors.Is(opErr, ErrCustomerNotVerified) = false, want true")
	}

	var typed *OperationError
	if !errors.As(opErr, &typed) {
		t.Fatalf("errors.As failed")
	}
	fields := typed.LogFields()
	if fields["error_kind"] != "failed-precondition" || fields["error_code"] != CodeCustomerNotVerified {
		t.Errorf("unexpected log fields: %v", fields)
	}
}
