package owner

import "context"

type OwnerService interface {
	GetProfile(ctx context.Context, ownerID string) (OwnerResponse, error)
	UpdateProfile(ctx context.Context, ownerID string, req UpdateProfileRequest) (OwnerResponse, error)
}
