package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// CountOwnedProviders implements attendance.AttendanceRepository.
// Matching provider rows are share-locked until the surrounding transaction ends.
func (r *attendanceRepositoryImpl) CountOwnedProviders(ctx context.Context, ownerID string, providerIDs []string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM (
			SELECT id
			FROM service_providers
			WHERE owner_id = $1 AND id = ANY($2::uuid[])
			FOR SHARE
		) owned
	`
	var count int
	if err := q.QueryRow(ctx, query, ownerID, providerIDs).Scan(&count); err != nil {
		return 0, fmt.Errorf("count owned providers: %w", err)
	}
	return count, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, service_provider_id, date, present, note)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (service_provider_id, date) DO UPDATE
		SET present    = EXCLUDED.present,
			note       = EXCLUDED.note,
			updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, rec.ID, rec.ServiceProviderID, rec.Date, rec.Present, rec.Note)
	if err != nil {
		return fmt.Errorf("upsert attendance for provider %s on %s: %w", rec.ServiceProviderID, rec.Date.Format(time.DateOnly), err)
	}
	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, ownerID string, date time.Time) ([]attendance.DailyEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT sp.id, sp.name, sp.role, a.present, a.note
		FROM attendance a
		JOIN service_providers sp ON sp.id = a.service_provider_id
		WHERE sp.owner_id = $1 AND a.date = $2
		ORDER BY sp.created_at, sp.id
	`, ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("list attendance by date: %w", err)
	}
	defer rows.Close()

	entries := make([]attendance.DailyEntry, 0)
	for rows.Next() {
		var e attendance.DailyEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Present, &e.Note); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListProviders implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListProviders(ctx context.Context, ownerID string) ([]attendance.ProviderRef, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, role
		FROM service_providers
		WHERE owner_id = $1
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	providers := make([]attendance.ProviderRef, 0)
	for rows.Next() {
		var p attendance.ProviderRef
		if err := rows.Scan(&p.ID, &p.Name, &p.Role); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return providers, nil
}

// ListInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListInRange(ctx context.Context, ownerID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT a.id, a.service_provider_id, a.date, a.present, a.note, a.created_at, a.updated_at
		FROM attendance a
		JOIN service_providers sp ON sp.id = a.service_provider_id
		WHERE sp.owner_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.service_provider_id, a.date
	`, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list attendance in range: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.ServiceProviderID, &rec.Date, &rec.Present, &rec.Note, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CountInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountInRange(ctx context.Context, providerID string, from, to time.Time) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	var present, absent int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE present),
			   COUNT(*) FILTER (WHERE NOT present)
		FROM attendance
		WHERE service_provider_id = $1 AND date BETWEEN $2 AND $3
	`, providerID, from, to).Scan(&present, &absent)
	if err != nil {
		return 0, 0, fmt.Errorf("count attendance: %w", err)
	}
	return present, absent, nil
}
