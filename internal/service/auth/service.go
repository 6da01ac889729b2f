package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
	"github.com/staffbook/staffbook-backend-go/internal/domain/owner"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/metrics"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/otp"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/ratelimit"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	tx database.Transactor
	owner.OwnerRepository
	jwt.Service
	postgresql.JWTRepository
	sender  otp.Sender
	limiter *ratelimit.KeyedLimiter
	metrics *metrics.Metrics
}

// NewAuthService wires the auth flows. limiter and m may be nil.
func NewAuthService(
	tx database.Transactor,
	ownerRepository owner.OwnerRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
	sender otp.Sender,
	limiter *ratelimit.KeyedLimiter,
	m *metrics.Metrics,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:              tx,
		OwnerRepository: ownerRepository,
		Service:         jwtService,
		JWTRepository:   jwtRepository,
		sender:          sender,
		limiter:         limiter,
		metrics:         m,
	}
}

func (a *AuthServiceImpl) observeRequest(result string) {
	if a.metrics != nil {
		a.metrics.OTPRequests.WithLabelValues(result).Inc()
	}
}

func (a *AuthServiceImpl) observeVerification(result string) {
	if a.metrics != nil {
		a.metrics.OTPVerifications.WithLabelValues(result).Inc()
	}
}

// RequestOTP implements auth.AuthService.
func (a *AuthServiceImpl) RequestOTP(ctx context.Context, req auth.RequestOTPRequest) error {
	if err := req.Validate(); err != nil {
		a.observeRequest(metrics.ResultInvalid)
		return err
	}

	if a.limiter != nil && !a.limiter.Allow(req.Mobile) {
		a.observeRequest(metrics.ResultRateLimited)
		return auth.ErrOTPRateLimited
	}

	if err := a.sender.Send(ctx, req.Mobile); err != nil {
		a.observeRequest(metrics.ResultError)
		if errors.Is(err, otp.ErrDelivery) {
			slog.Error("OTP delivery failed", "error", err)
			return fmt.Errorf("%w: %w", auth.ErrOTPDelivery, err)
		}
		return fmt.Errorf("failed to send otp: %w", err)
	}

	a.observeRequest(metrics.ResultOK)
	return nil
}

// VerifyOTP implements auth.AuthService.
func (a *AuthServiceImpl) VerifyOTP(ctx context.Context, req auth.VerifyOTPRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		a.observeVerification(metrics.ResultInvalid)
		return auth.LoginResponse{}, err
	}

	if err := a.sender.Verify(ctx, req.Mobile, req.OTP); err != nil {
		if errors.Is(err, otp.ErrInvalidCode) {
			a.observeVerification(metrics.ResultInvalid)
			return auth.LoginResponse{}, auth.ErrInvalidOTP
		}
		a.observeVerification(metrics.ResultError)
		return auth.LoginResponse{}, fmt.Errorf("failed to verify otp: %w", err)
	}

	resp, err := a.login(ctx, sessionTrackReq, func(txCtx context.Context, newID string) (owner.Owner, bool, error) {
		return a.FindOrCreateByMobile(txCtx, newID, req.Mobile)
	})
	if err != nil {
		a.observeVerification(metrics.ResultError)
		return auth.LoginResponse{}, err
	}

	a.observeVerification(metrics.ResultOK)
	return resp, nil
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleID string, email string, sessionTrackReq auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if googleID == "" || email == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	return a.login(ctx, sessionTrackReq, func(txCtx context.Context, newID string) (owner.Owner, bool, error) {
		return a.FindOrCreateByGoogle(txCtx, newID, googleID, email)
	})
}

// login resolves the owner and stores a fresh refresh token in one transaction.
func (a *AuthServiceImpl) login(
	ctx context.Context,
	sessionTrackReq auth.SessionTrackingRequest,
	resolve func(txCtx context.Context, newID string) (owner.Owner, bool, error),
) (auth.LoginResponse, error) {
	var resp auth.LoginResponse

	newID, err := uuid.NewV7()
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate owner id: %w", err)
	}

	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		ownerData, created, err := resolve(txCtx, newID.String())
		if err != nil {
			return fmt.Errorf("failed to resolve owner: %w", err)
		}
		resp.OwnerID = ownerData.ID
		resp.IsNewOwner = created

		resp.AccessToken, resp.AccessTokenExpiresIn, err = a.GenerateAccessToken(ownerData.ID, ownerData.Mobile)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.GenerateRefreshToken(ownerData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, ownerData.ID, resp.RefreshToken, resp.RefreshTokenExpiresIn, sessionTrackReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if resp.IsNewOwner {
		slog.Info("Owner registered", "owner_id", resp.OwnerID)
	}
	return resp, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// Signature, expiry and token type
	tokenOwnerID, err := a.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	storedOwnerID, revoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if storedOwnerID != tokenOwnerID {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	ownerData, err := a.GetByID(ctx, storedOwnerID)
	if err != nil {
		if errors.Is(err, owner.ErrOwnerNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrOwnerNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get owner: %w", err)
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.GenerateAccessToken(ownerData.ID, ownerData.Mobile)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return resp, nil
}

// Logout implements auth.AuthService. Unknown and already revoked tokens are a no-op.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, revoked, err := a.IsRefreshTokenRevoked(txCtx, token)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if revoked {
			return nil
		}
		if err := a.RevokeRefreshToken(txCtx, token); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		return nil
	})
}
