// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants", a.onboard)
	mux.Get("/api/v0/tenants", a.list)
	mux.Get("/api/v0/tenants/{id}/status", a.status)
	mux.Post("/api/v0/tenants/{id}/suspend", a.suspend)
	mux.Post("/api/v0/tenants/{id}/reactivate", a.reactivate)
	mux.Patch("/api/v0/tenants/{id}/tier", a.changeTier)
	mux.Delete("/api/v0/tenants/{id}", a.offboard)
}

type onboardResponse struct {
	TenantID string       `json:"tenant_id"`
	Status   types.Status `json:"status"`
}

func (a *API) onboard(w http.ResponseWriter, r *http.Request) {
	var req OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tenant, err := a.service.Onboard(r.Context(), &req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	// Synchronous acknowledgement only; provisioning continues in the
	// background.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(onboardResponse{TenantID: tenant.ID, Status: tenant.Status})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	statuses, err := a.service.ListTenants(r.Context(), page, size)
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(statuses)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	status, err := a.service.GetStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

func (a *API) suspend(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Suspend(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) reactivate(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Reactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type changeTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=basic premium enterprise"`
}

func (a *API) changeTier(w http.ResponseWriter, r *http.Request) {
	var req changeTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.service.ChangeTier(r.Context(), chi.URLParam(r, "id"), types.Tier(req.Tier)); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) offboard(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Offboard(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrDuplicateTenant):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, registry.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, registry.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, registry.ErrVersionConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		a.logger.Errorf("onboarding request failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
