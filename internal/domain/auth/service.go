package auth

import (
	"context"
)

type AuthService interface {
	RequestOTP(ctx context.Context, req RequestOTPRequest) error
	// VerifyOTP signs the owner in, creating the account on first success.
	VerifyOTP(ctx context.Context, req VerifyOTPRequest, sessionReq SessionTrackingRequest) (LoginResponse, error)
	LoginWithGoogle(ctx context.Context, googleID string, email string, sessionReq SessionTrackingRequest) (LoginResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
