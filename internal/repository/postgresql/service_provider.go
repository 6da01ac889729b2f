package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffbook/staffbook-backend-go/internal/domain/provider"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

const serviceProviderColumns = `id, owner_id, name, role, daily_salary, allowed_leaves, contact_number, upi_id, created_at, updated_at`

type serviceProviderRepositoryImpl struct {
	db *database.DB
}

func NewServiceProviderRepository(db *database.DB) provider.ServiceProviderRepository {
	return &serviceProviderRepositoryImpl{db: db}
}

func scanServiceProvider(row pgx.Row) (provider.ServiceProvider, error) {
	var sp provider.ServiceProvider
	err := row.Scan(
		&sp.ID,
		&sp.OwnerID,
		&sp.Name,
		&sp.Role,
		&sp.DailySalary,
		&sp.AllowedLeaves,
		&sp.ContactNumber,
		&sp.UPIID,
		&sp.CreatedAt,
		&sp.UpdatedAt,
	)
	return sp, err
}

// Create implements provider.ServiceProviderRepository.
func (r *serviceProviderRepositoryImpl) Create(ctx context.Context, sp provider.ServiceProvider) (provider.ServiceProvider, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO service_providers (id, owner_id, name, role, daily_salary, allowed_leaves, contact_number, upi_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + serviceProviderColumns

	created, err := scanServiceProvider(q.QueryRow(ctx, query,
		sp.ID, sp.OwnerID, sp.Name, sp.Role, sp.DailySalary, sp.AllowedLeaves, sp.ContactNumber, sp.UPIID,
	))
	if err != nil {
		return provider.ServiceProvider{}, fmt.Errorf("insert service provider: %w", err)
	}
	return created, nil
}

// ListByOwner implements provider.ServiceProviderRepository.
func (r *serviceProviderRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]provider.ServiceProvider, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+serviceProviderColumns+`
		FROM service_providers
		WHERE owner_id = $1
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list service providers: %w", err)
	}
	defer rows.Close()

	providers := make([]provider.ServiceProvider, 0)
	for rows.Next() {
		sp, err := scanServiceProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service provider: %w", err)
		}
		providers = append(providers, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return providers, nil
}

// GetByID implements provider.ServiceProviderRepository.
func (r *serviceProviderRepositoryImpl) GetByID(ctx context.Context, ownerID string, id string) (provider.ServiceProvider, error) {
	q := GetQuerier(ctx, r.db)

	sp, err := scanServiceProvider(q.QueryRow(ctx, `
		SELECT `+serviceProviderColumns+`
		FROM service_providers
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return provider.ServiceProvider{}, provider.ErrServiceProviderNotFound
		}
		return provider.ServiceProvider{}, fmt.Errorf("get service provider: %w", err)
	}
	return sp, nil
}

// Update implements provider.ServiceProviderRepository.
// An empty contact number or UPI id clears the column.
func (r *serviceProviderRepositoryImpl) Update(ctx context.Context, ownerID string, id string, req provider.UpdateServiceProviderRequest) (provider.ServiceProvider, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE service_providers
		SET name           = COALESCE($3, name),
			role           = COALESCE($4, role),
			daily_salary   = COALESCE($5, daily_salary),
			allowed_leaves = COALESCE($6, allowed_leaves),
			contact_number = CASE WHEN $7::text IS NULL THEN contact_number ELSE NULLIF($7::text, '') END,
			upi_id         = CASE WHEN $8::text IS NULL THEN upi_id ELSE NULLIF($8::text, '') END,
			updated_at     = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + serviceProviderColumns

	sp, err := scanServiceProvider(q.QueryRow(ctx, query,
		id, ownerID, req.Name, req.Role, req.DailySalary, req.AllowedLeaves, req.ContactNumber, req.UPIID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return provider.ServiceProvider{}, provider.ErrServiceProviderNotFound
		}
		return provider.ServiceProvider{}, fmt.Errorf("update service provider: %w", err)
	}
	return sp, nil
}
