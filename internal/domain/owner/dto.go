package owner

import (
	"strings"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

// UpdateProfileRequest is a partial update; nil fields are left untouched.
type UpdateProfileRequest struct {
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
		if trimmed == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		} else if validator.Length(trimmed) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if r.Email != nil {
		trimmed := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &trimmed
		if len(trimmed) > 254 {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must not exceed 254 characters",
			})
		} else if !validator.IsValidEmail(trimmed) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must be a valid email address",
			})
		}
	}

	if r.Address != nil && validator.Length(*r.Address) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not exceed 500 characters",
		})
	}

	// Coordinates only make sense as a pair
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OwnerResponse struct {
	ID        string    `json:"id"`
	Mobile    *string   `json:"mobile"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewOwnerResponse(o Owner) OwnerResponse {
	return OwnerResponse{
		ID:        o.ID,
		Mobile:    o.Mobile,
		Name:      o.Name,
		Email:     o.Email,
		Address:   o.Address,
		Latitude:  o.Latitude,
		Longitude: o.Longitude,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
