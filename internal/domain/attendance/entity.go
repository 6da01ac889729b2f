package attendance

import "time"

// Record is one provider's attendance on one calendar day. Present means the
// provider worked that day. There is at most one record per provider and date.
type Record struct {
	ID                string
	ServiceProviderID string
	Date              time.Time
	Present           bool
	Note              *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProviderRef is the slice of a service provider the attendance views need.
type ProviderRef struct {
	ID   string
	Name string
	Role string
}

// DailyEntry is a stored record joined with its provider.
type DailyEntry struct {
	ProviderRef
	Present bool
	Note    *string
}

// MonthlyEntry is one (provider, day) cell of a normalized month.
type MonthlyEntry struct {
	ProviderRef
	Date    time.Time
	Present bool
	Note    *string
}

// MonthlySummary counts one provider's month. Unrecorded days are neither
// present nor recorded absent.
type MonthlySummary struct {
	ProviderRef
	DaysInMonth    int
	DaysPresent    int
	DaysAbsent     int
	DaysUnrecorded int
}
