package provider

import "context"

// ServiceProviderRepository scopes every lookup by owner id.
type ServiceProviderRepository interface {
	Create(ctx context.Context, sp ServiceProvider) (ServiceProvider, error)
	ListByOwner(ctx context.Context, ownerID string) ([]ServiceProvider, error)
	GetByID(ctx context.Context, ownerID string, id string) (ServiceProvider, error)
	Update(ctx context.Context, ownerID string, id string, req UpdateServiceProviderRequest) (ServiceProvider, error)
}
