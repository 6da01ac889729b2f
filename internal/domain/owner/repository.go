package owner

import "context"

type OwnerRepository interface {
	// FindOrCreateByMobile returns the owner for mobile, inserting it with id
	// when absent. created is true only for the inserting call.
	FindOrCreateByMobile(ctx context.Context, id string, mobile string) (owner Owner, created bool, err error)

	// FindOrCreateByGoogle matches on google id first, then links an owner
	// that already uses email, and inserts otherwise.
	FindOrCreateByGoogle(ctx context.Context, id string, googleID string, email string) (owner Owner, created bool, err error)

	GetByID(ctx context.Context, id string) (Owner, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (Owner, error)
}
