package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffbook/staffbook-backend-go/internal/domain/owner"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
)

const ownerColumns = `id, mobile, name, email, address, latitude, longitude, google_id, created_at, updated_at`

type ownerRepositoryImpl struct {
	db *database.DB
}

func NewOwnerRepository(db *database.DB) owner.OwnerRepository {
	return &ownerRepositoryImpl{db: db}
}

func scanOwner(row pgx.Row, extra ...any) (owner.Owner, error) {
	var o owner.Owner
	dest := []any{
		&o.ID,
		&o.Mobile,
		&o.Name,
		&o.Email,
		&o.Address,
		&o.Latitude,
		&o.Longitude,
		&o.GoogleID,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return owner.Owner{}, err
	}
	return o, nil
}

// FindOrCreateByMobile implements owner.OwnerRepository.
// The no-op DO UPDATE makes RETURNING yield the existing row on conflict;
// xmax is zero only for a freshly inserted tuple.
func (r *ownerRepositoryImpl) FindOrCreateByMobile(ctx context.Context, id string, mobile string) (owner.Owner, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO owners (id, mobile)
		VALUES ($1, $2)
		ON CONFLICT (mobile) DO UPDATE SET mobile = EXCLUDED.mobile
		RETURNING ` + ownerColumns + `, (xmax = 0) AS inserted
	`
	var created bool
	o, err := scanOwner(q.QueryRow(ctx, query, id, mobile), &created)
	if err != nil {
		return owner.Owner{}, false, fmt.Errorf("find or create owner by mobile: %w", err)
	}
	return o, created, nil
}

// FindOrCreateByGoogle implements owner.OwnerRepository.
// Callers run it inside a transaction.
func (r *ownerRepositoryImpl) FindOrCreateByGoogle(ctx context.Context, id string, googleID string, email string) (owner.Owner, bool, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOwner(q.QueryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE google_id = $1`, googleID))
	if err == nil {
		return o, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return owner.Owner{}, false, fmt.Errorf("get owner by google id: %w", err)
	}

	// Link an owner that signed up by mobile and later filled in the same email
	linkQuery := `
		UPDATE owners
		SET google_id = $1, updated_at = NOW()
		WHERE id = (
			SELECT id FROM owners
			WHERE lower(email) = lower($2) AND google_id IS NULL
			ORDER BY created_at
			LIMIT 1
		)
		RETURNING ` + ownerColumns
	o, err = scanOwner(q.QueryRow(ctx, linkQuery, googleID, email))
	if err == nil {
		return o, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return owner.Owner{}, false, fmt.Errorf("link google account: %w", err)
	}

	insertQuery := `
		INSERT INTO owners (id, google_id, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (google_id) DO UPDATE SET google_id = EXCLUDED.google_id
		RETURNING ` + ownerColumns + `, (xmax = 0) AS inserted
	`
	var created bool
	o, err = scanOwner(q.QueryRow(ctx, insertQuery, id, googleID, email), &created)
	if err != nil {
		return owner.Owner{}, false, fmt.Errorf("create owner from google: %w", err)
	}
	return o, created, nil
}

// GetByID implements owner.OwnerRepository.
func (r *ownerRepositoryImpl) GetByID(ctx context.Context, id string) (owner.Owner, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOwner(q.QueryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return owner.Owner{}, owner.ErrOwnerNotFound
		}
		return owner.Owner{}, fmt.Errorf("get owner: %w", err)
	}
	return o, nil
}

// UpdateProfile implements owner.OwnerRepository.
func (r *ownerRepositoryImpl) UpdateProfile(ctx context.Context, id string, req owner.UpdateProfileRequest) (owner.Owner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE owners
		SET name       = COALESCE($2, name),
			email      = COALESCE($3, email),
			address    = COALESCE($4, address),
			latitude   = COALESCE($5, latitude),
			longitude  = COALESCE($6, longitude),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + ownerColumns

	o, err := scanOwner(q.QueryRow(ctx, query, id, req.Name, req.Email, req.Address, req.Latitude, req.Longitude))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return owner.Owner{}, owner.ErrOwnerNotFound
		}
		return owner.Owner{}, fmt.Errorf("update owner profile: %w", err)
	}
	return o, nil
}
