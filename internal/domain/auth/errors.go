package auth

import "errors"

var (
	ErrInvalidOTP          = errors.New("invalid or expired OTP")
	ErrOTPRateLimited      = errors.New("too many OTP requests, try again later")
	ErrOTPDelivery         = errors.New("failed to send OTP")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrOwnerNotFound       = errors.New("owner not found")

	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")

	// Google OAuth callback errors
	ErrGoogleDisabled           = errors.New("google sign-in is not configured")
	ErrGoogleAccessDeniedByUser = errors.New("google access denied by user")
	ErrGoogleEmailNotVerified   = errors.New("google email is not verified")
	ErrStateCookieEmpty         = errors.New("state cookie is empty")
	ErrStateParamEmpty          = errors.New("state parameter is empty")
	ErrStateMismatch            = errors.New("state mismatch")
	ErrCodeValueEmpty           = errors.New("code value is empty")
)
