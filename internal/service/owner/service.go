package owner

import (
	"context"

	"github.com/staffbook/staffbook-backend-go/internal/domain/owner"
)

type OwnerServiceImpl struct {
	owner.OwnerRepository
}

func NewOwnerService(ownerRepository owner.OwnerRepository) owner.OwnerService {
	return &OwnerServiceImpl{OwnerRepository: ownerRepository}
}

// GetProfile implements owner.OwnerService.
func (s *OwnerServiceImpl) GetProfile(ctx context.Context, ownerID string) (owner.OwnerResponse, error) {
	o, err := s.GetByID(ctx, ownerID)
	if err != nil {
		return owner.OwnerResponse{}, err
	}
	return owner.NewOwnerResponse(o), nil
}

// UpdateProfile implements owner.OwnerService.
func (s *OwnerServiceImpl) UpdateProfile(ctx context.Context, ownerID string, req owner.UpdateProfileRequest) (owner.OwnerResponse, error) {
	if err := req.Validate(); err != nil {
		return owner.OwnerResponse{}, err
	}

	o, err := s.OwnerRepository.UpdateProfile(ctx, ownerID, req)
	if err != nil {
		return owner.OwnerResponse{}, err
	}
	return owner.NewOwnerResponse(o), nil
}
