package auth

import "github.com/staffbook/staffbook-backend-go/internal/pkg/validator"

type RequestOTPRequest struct {
	Mobile string `json:"mobile"`
}

// Validate rewrites Mobile into its normalized 91XXXXXXXXXX form.
func (r *RequestOTPRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile is required",
		})
	} else if normalized, ok := validator.NormalizeMobile(r.Mobile); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be a valid 10 digit Indian mobile number",
		})
	} else {
		r.Mobile = normalized
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VerifyOTPRequest struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"otp"`
}

// Validate rewrites Mobile into its normalized 91XXXXXXXXXX form.
func (r *VerifyOTPRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile is required",
		})
	} else if normalized, ok := validator.NormalizeMobile(r.Mobile); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be a valid 10 digit Indian mobile number",
		})
	} else {
		r.Mobile = normalized
	}

	if validator.IsEmpty(r.OTP) {
		errs = append(errs, validator.ValidationError{
			Field:   "otp",
			Message: "otp is required",
		})
	} else if !validator.IsValidOTP(r.OTP) {
		errs = append(errs, validator.ValidationError{
			Field:   "otp",
			Message: "otp must be 4 to 10 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	} else if len(r.RefreshToken) > 2048 {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token must not exceed 2048 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type LoginResponse struct {
	TokenResponse
	OwnerID    string `json:"owner_id"`
	IsNewOwner bool   `json:"is_new_owner"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
