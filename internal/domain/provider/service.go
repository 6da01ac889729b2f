package provider

import "context"

type ServiceProviderService interface {
	List(ctx context.Context, ownerID string) ([]ServiceProviderResponse, error)
	Create(ctx context.Context, ownerID string, req CreateServiceProviderRequest) (ServiceProviderResponse, error)
	Get(ctx context.Context, ownerID string, id string) (ServiceProviderResponse, error)
	Update(ctx context.Context, ownerID string, id string, req UpdateServiceProviderRequest) (ServiceProviderResponse, error)
}
