package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// TokenPurger deletes refresh tokens that stopped being usable before cutoff.
type TokenPurger interface {
	PurgeRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error)
}

// TokenJobs keeps the refresh token table from growing without bound.
type TokenJobs struct {
	purger    TokenPurger
	retention time.Duration
	now       func() time.Time
}

func NewTokenJobs(purger TokenPurger, retention time.Duration) *TokenJobs {
	return &TokenJobs{purger: purger, retention: retention, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_refresh_tokens", interval, j.PurgeRefreshTokens)
}

// PurgeRefreshTokens removes tokens expired or revoked longer than the
// retention period ago.
func (j *TokenJobs) PurgeRefreshTokens(ctx context.Context) error {
	cutoff := j.now().Add(-j.retention)
	n, err := j.purger.PurgeRefreshTokens(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge refresh tokens: %w", err)
	}
	if n > 0 {
		slog.Info("Purged refresh tokens", "count", n, "cutoff", cutoff)
	}
	return nil
}
