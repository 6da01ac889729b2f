package provider

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceProvider is a person working for an owner on a daily wage: a maid,
// cook, driver and so on. AllowedLeaves is the number of paid absences per month.
type ServiceProvider struct {
	ID            string
	OwnerID       string
	Name          string
	Role          string
	DailySalary   decimal.Decimal
	AllowedLeaves int
	ContactNumber *string
	UPIID         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
