package owner

import "time"

// Owner is the household account that registers and pays service providers.
type Owner struct {
	ID        string
	Mobile    *string
	Name      *string
	Email     *string
	Address   *string
	Latitude  *float64
	Longitude *float64
	GoogleID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
