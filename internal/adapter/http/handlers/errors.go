package handlers

import (
	"errors"
	"net/http"

	"shajghor/internal/usecase"
	"shajghor/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

var validationErrors = []error{
	usecase.ErrInvalidEmail,
	usecase.ErrEmptyProfileUpdate,
	usecase.ErrInvalidAccountStatus,
	usecase.ErrInvalidRole,
	usecase.ErrInvalidBookingID,
	usecase.ErrInvalidDecoratorEmail,
	usecase.ErrInvalidServiceID,
	usecase.ErrInvalidServiceTitle,
	usecase.ErrInvalidServicePrice,
	usecase.ErrInvalidServiceCommission,
	usecase.ErrInvalidServiceStatus,
	usecase.ErrInvalidCheckoutBookingID,
	usecase.ErrInvalidCheckoutPrice,
}

// mapUseCaseError turns a usecase error into the HTTP error taxonomy. Upstream
// failures keep their cause for logs but answer with a fixed message.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized Access", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccountDisabled):
		return pkg.NewDomainErrorSimple("ACCOUNT_DISABLED", "Account is disabled", http.StatusForbidden)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden Access", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusServiceUnavailable)
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, err error) {
	appErr := mapUseCaseError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
