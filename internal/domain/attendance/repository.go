package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// CountOwnedProviders returns how many of providerIDs (distinct) belong to ownerID.
	CountOwnedProviders(ctx context.Context, ownerID string, providerIDs []string) (int, error)

	// Upsert inserts the record or, when (provider, date) already exists,
	// overwrites present and note in place.
	Upsert(ctx context.Context, rec Record) error

	ListByDate(ctx context.Context, ownerID string, date time.Time) ([]DailyEntry, error)

	// ListProviders returns the owner's providers in creation order.
	ListProviders(ctx context.Context, ownerID string) ([]ProviderRef, error)

	// ListInRange returns every record of the owner's providers with from <= date <= to.
	ListInRange(ctx context.Context, ownerID string, from, to time.Time) ([]Record, error)

	// CountInRange counts one provider's stored present and absent days.
	CountInRange(ctx context.Context, providerID string, from, to time.Time) (present int, absent int, err error)
}
