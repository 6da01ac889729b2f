package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffbook/staffbook-backend-go/internal/domain/provider"
)

type ServiceProviderServiceImpl struct {
	provider.ServiceProviderRepository
}

func NewServiceProviderService(providerRepository provider.ServiceProviderRepository) provider.ServiceProviderService {
	return &ServiceProviderServiceImpl{ServiceProviderRepository: providerRepository}
}

// List implements provider.ServiceProviderService.
func (s *ServiceProviderServiceImpl) List(ctx context.Context, ownerID string) ([]provider.ServiceProviderResponse, error) {
	providers, err := s.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service providers: %w", err)
	}

	resp := make([]provider.ServiceProviderResponse, 0, len(providers))
	for _, sp := range providers {
		resp = append(resp, provider.NewServiceProviderResponse(sp))
	}
	return resp, nil
}

// Create implements provider.ServiceProviderService.
func (s *ServiceProviderServiceImpl) Create(ctx context.Context, ownerID string, req provider.CreateServiceProviderRequest) (provider.ServiceProviderResponse, error) {
	if err := req.Validate(); err != nil {
		return provider.ServiceProviderResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return provider.ServiceProviderResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	created, err := s.ServiceProviderRepository.Create(ctx, provider.ServiceProvider{
		ID:            id.String(),
		OwnerID:       ownerID,
		Name:          req.Name,
		Role:          req.Role,
		DailySalary:   req.DailySalary,
		AllowedLeaves: req.AllowedLeaves,
		ContactNumber: req.ContactNumber,
		UPIID:         req.UPIID,
	})
	if err != nil {
		return provider.ServiceProviderResponse{}, fmt.Errorf("failed to create service provider: %w", err)
	}
	return provider.NewServiceProviderResponse(created), nil
}

// Get implements provider.ServiceProviderService.
func (s *ServiceProviderServiceImpl) Get(ctx context.Context, ownerID string, id string) (provider.ServiceProviderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return provider.ServiceProviderResponse{}, provider.ErrServiceProviderNotFound
	}

	sp, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return provider.ServiceProviderResponse{}, err
	}
	return provider.NewServiceProviderResponse(sp), nil
}

// Update implements provider.ServiceProviderService.
func (s *ServiceProviderServiceImpl) Update(ctx context.Context, ownerID string, id string, req provider.UpdateServiceProviderRequest) (provider.ServiceProviderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return provider.ServiceProviderResponse{}, provider.ErrServiceProviderNotFound
	}
	if err := req.Validate(); err != nil {
		return provider.ServiceProviderResponse{}, err
	}

	sp, err := s.ServiceProviderRepository.Update(ctx, ownerID, id, req)
	if err != nil {
		return provider.ServiceProviderResponse{}, err
	}
	return provider.NewServiceProviderResponse(sp), nil
}
