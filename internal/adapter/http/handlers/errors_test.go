package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"shajghor/internal/usecase"
)

func TestMapUseCaseError(t *testing.T) {
	cases := []struct {
		err      error
		wantCode string
		status   int
	}{
		{usecase.ErrUnauthenticated, "UNAUTHORIZED", http.StatusUnauthorized},
		{usecase.ErrForbiddenSelf, "FORBIDDEN", http.StatusForbidden},
		{usecase.ErrForbiddenRole, "FORBIDDEN", http.StatusForbidden},
		{usecase.ErrAccountDisabled, "ACCOUNT_DISABLED", http.StatusForbidden},
		{usecase.ErrBookingNotFound, "BOOKING_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrServiceNotFound, "SERVICE_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrAccountNotFound, "ACCOUNT_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrInvalidServicePrice, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrEmptyProfileUpdate, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnavailable, "PAYMENT_GATEWAY_UNAVAILABLE", http.StatusServiceUnavailable},
		{usecase.ErrBookingCreateFailed, "INTERNAL_ERROR", http.StatusInternalServerError},
		{fmt.Errorf("%w: %w", usecase.ErrUpstream, errors.New("dynamodb: throttled")), "INTERNAL_ERROR", http.StatusInternalServerError},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			appErr := mapUseCaseError(tc.err)
			if appErr.Code != tc.wantCode || appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %s/%d, got %s/%d", tc.wantCode, tc.status, appErr.Code, appErr.HTTPStatus)
			}
		})
	}
}

func TestMapUseCaseError_UpstreamHidesCause(t *testing.T) {
	appErr := mapUseCaseError(fmt.Errorf("%w: %w", usecase.ErrUpstream, errors.New("secret table name")))
	body := appErr.ToHTTPError()
	if body.Message != "An internal error occurred" {
		t.Fatalf("unexpected message: %s", body.Message)
	}
}
