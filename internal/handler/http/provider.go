package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffbook/staffbook-backend-go/internal/domain/provider"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

type ServiceProviderHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type serviceProviderHandlerImpl struct {
	providerService provider.ServiceProviderService
}

func NewServiceProviderHandler(providerService provider.ServiceProviderService) ServiceProviderHandler {
	return &serviceProviderHandlerImpl{providerService: providerService}
}

// List implements ServiceProviderHandler.
func (h *serviceProviderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	providers, err := h.providerService.List(r.Context(), ownerID)
	if err != nil {
		slog.Error("ListServiceProviders service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, providers)
}

// Create implements ServiceProviderHandler.
func (h *serviceProviderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	var req provider.CreateServiceProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateServiceProvider decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.providerService.Create(r.Context(), ownerID, req)
	if err != nil {
		slog.Error("CreateServiceProvider service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Service provider added", created)
}

// Get implements ServiceProviderHandler.
func (h *serviceProviderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	sp, err := h.providerService.Get(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sp)
}

// Update implements ServiceProviderHandler.
func (h *serviceProviderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	var req provider.UpdateServiceProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateServiceProvider decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.providerService.Update(r.Context(), ownerID, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("UpdateServiceProvider service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Service provider updated", updated)
}
