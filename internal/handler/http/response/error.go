package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
	"github.com/staffbook/staffbook-backend-go/internal/domain/owner"
	"github.com/staffbook/staffbook-backend-go/internal/domain/provider"
	"github.com/staffbook/staffbook-backend-go/internal/domain/salary"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidOTP):
		Unauthorized(w, "Invalid or expired OTP")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound), errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrOTPRateLimited):
		TooManyRequests(w, "Too many OTP requests, try again later", 60)
	case errors.Is(err, auth.ErrOTPDelivery):
		BadGateway(w, "Failed to send OTP")
	case errors.Is(err, auth.ErrGoogleDisabled):
		NotFound(w, "Google sign-in is not available")
	case errors.Is(err, auth.ErrOwnerNotFound), errors.Is(err, owner.ErrOwnerNotFound):
		NotFound(w, "Owner not found")

	// Provider and salary errors
	case errors.Is(err, provider.ErrServiceProviderNotFound), errors.Is(err, salary.ErrProviderNotFound):
		NotFound(w, "Service provider not found")

	// Attendance errors
	case errors.Is(err, attendance.ErrProviderNotOwned):
		Forbidden(w, "One or more service providers do not belong to you")
	case errors.Is(err, attendance.ErrStorage):
		slog.Error("attendance storage error", "error", err)
		InternalServerError(w, "Failed to save attendance")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
