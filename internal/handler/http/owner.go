package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
	"github.com/staffbook/staffbook-backend-go/internal/domain/owner"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
)

// requestOwnerID writes a 401 and returns false when the verified token has
// no owner id.
func requestOwnerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, err := jwt.OwnerIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return "", false
	}
	return ownerID, true
}

type OwnerHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type ownerHandlerImpl struct {
	ownerService owner.OwnerService
}

func NewOwnerHandler(ownerService owner.OwnerService) OwnerHandler {
	return &ownerHandlerImpl{ownerService: ownerService}
}

// GetProfile implements OwnerHandler.
func (h *ownerHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	profile, err := h.ownerService.GetProfile(r.Context(), ownerID)
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// UpdateProfile implements OwnerHandler.
func (h *ownerHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	var req owner.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.ownerService.UpdateProfile(r.Context(), ownerID, req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated", profile)
}
