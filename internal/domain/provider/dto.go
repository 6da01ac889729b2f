package provider

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

const (
	maxNameLength    = 100
	maxRoleLength    = 50
	maxAllowedLeaves = 31
)

// maxDailySalary is the largest value NUMERIC(12,2) can hold.
var maxDailySalary = decimal.RequireFromString("9999999999.99")

type CreateServiceProviderRequest struct {
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	DailySalary   decimal.Decimal `json:"daily_salary"`
	AllowedLeaves int             `json:"allowed_leaves"`
	ContactNumber *string         `json:"contact_number"`
	UPIID         *string         `json:"upi_id"`
}

func (r *CreateServiceProviderRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
	r.ContactNumber = blankToNil(r.ContactNumber)
	r.UPIID = blankToNil(r.UPIID)

	if r.Name == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if validator.Length(r.Name) > maxNameLength {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}

	if r.Role == "" {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	} else if validator.Length(r.Role) > maxRoleLength {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must not exceed 50 characters"})
	}

	errs = append(errs, validateSalary(r.DailySalary)...)
	errs = append(errs, validateLeaves(r.AllowedLeaves)...)
	errs = append(errs, validateContact(r.ContactNumber, r.UPIID)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateServiceProviderRequest is a partial update; nil fields are left untouched.
type UpdateServiceProviderRequest struct {
	Name          *string          `json:"name"`
	Role          *string          `json:"role"`
	DailySalary   *decimal.Decimal `json:"daily_salary"`
	AllowedLeaves *int             `json:"allowed_leaves"`
	ContactNumber *string          `json:"contact_number"`
	UPIID         *string          `json:"upi_id"`
}

func (r *UpdateServiceProviderRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
		if name == "" {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
		} else if validator.Length(name) > maxNameLength {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
		}
	}
	if r.Role != nil {
		role := strings.TrimSpace(*r.Role)
		r.Role = &role
		if role == "" {
			errs = append(errs, validator.ValidationError{Field: "role", Message: "role must not be empty"})
		} else if validator.Length(role) > maxRoleLength {
			errs = append(errs, validator.ValidationError{Field: "role", Message: "role must not exceed 50 characters"})
		}
	}
	if r.DailySalary != nil {
		errs = append(errs, validateSalary(*r.DailySalary)...)
	}
	if r.AllowedLeaves != nil {
		errs = append(errs, validateLeaves(*r.AllowedLeaves)...)
	}
	errs = append(errs, validateContact(r.ContactNumber, r.UPIID)...)

	if r.Name == nil && r.Role == nil && r.DailySalary == nil && r.AllowedLeaves == nil &&
		r.ContactNumber == nil && r.UPIID == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateSalary(d decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors
	switch {
	case d.IsNegative():
		errs = append(errs, validator.ValidationError{Field: "daily_salary", Message: "daily_salary must not be negative"})
	case d.GreaterThan(maxDailySalary):
		errs = append(errs, validator.ValidationError{Field: "daily_salary", Message: "daily_salary is too large"})
	case !d.Equal(d.Round(2)):
		errs = append(errs, validator.ValidationError{Field: "daily_salary", Message: "daily_salary must have at most 2 decimal places"})
	}
	return errs
}

func validateLeaves(n int) validator.ValidationErrors {
	if n < 0 || n > maxAllowedLeaves {
		return validator.ValidationErrors{{Field: "allowed_leaves", Message: "allowed_leaves must be between 0 and 31"}}
	}
	return nil
}

// validateContact checks optional fields; an empty string on update clears the value.
func validateContact(contact, upi *string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if contact != nil && *contact != "" && !validator.IsValidContactNumber(*contact) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_number",
			Message: "contact_number must be 10 to 15 digits with an optional leading +",
		})
	}
	if upi != nil && *upi != "" && !validator.IsValidUPI(*upi) {
		errs = append(errs, validator.ValidationError{
			Field:   "upi_id",
			Message: "upi_id must look like name@bank",
		})
	}
	return errs
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ServiceProviderResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	DailySalary   string    `json:"daily_salary"`
	AllowedLeaves int       `json:"allowed_leaves"`
	ContactNumber *string   `json:"contact_number"`
	UPIID         *string   `json:"upi_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewServiceProviderResponse(sp ServiceProvider) ServiceProviderResponse {
	return ServiceProviderResponse{
		ID:            sp.ID,
		Name:          sp.Name,
		Role:          sp.Role,
		DailySalary:   sp.DailySalary.StringFixed(2),
		AllowedLeaves: sp.AllowedLeaves,
		ContactNumber: sp.ContactNumber,
		UPIID:         sp.UPIID,
		CreatedAt:     sp.CreatedAt,
		UpdatedAt:     sp.UpdatedAt,
	}
}
