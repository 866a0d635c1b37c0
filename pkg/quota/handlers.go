// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/pkg/tenantctx"
)

// API exposes quota admission to the CRUD services. A service calls
// authorize before creating an entity and release after deleting one.
// The tenant context middleware must run in front of it.
type API struct {
	enforcer EnforcerInterface
	logger   logging.LoggerInterface
}

func NewAPI(enforcer EnforcerInterface, logger logging.LoggerInterface) *API {
	return &API{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/quota/{kind}/authorize", a.authorize)
	mux.Post("/api/v0/quota/{kind}/release", a.release)
}

type quotaResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func (a *API) authorize(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantctx.FromContext(r.Context())
	if !ok {
		http.Error(w, "no tenant context", http.StatusUnauthorized)
		return
	}
	kind := chi.URLParam(r, "kind")

	err := a.enforcer.Authorize(r.Context(), tc.TenantID, kind, 1)
	switch {
	case err == nil:
		writeQuota(w, http.StatusOK, quotaResponse{Allowed: true})
	case errors.Is(err, ErrQuotaExceeded):
		writeQuota(w, http.StatusTooManyRequests, quotaResponse{Allowed: false, Reason: err.Error()})
	case errors.Is(err, ErrUnknownResourceKind):
		writeQuota(w, http.StatusBadRequest, quotaResponse{Allowed: false, Reason: err.Error()})
	default:
		a.logger.Errorf("quota authorize failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (a *API) release(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantctx.FromContext(r.Context())
	if !ok {
		http.Error(w, "no tenant context", http.StatusUnauthorized)
		return
	}
	kind := chi.URLParam(r, "kind")

	if err := a.enforcer.Release(r.Context(), tc.TenantID, kind, 1); err != nil {
		a.logger.Errorf("quota release failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeQuota(w, http.StatusOK, quotaResponse{Allowed: true})
}

func writeQuota(w http.ResponseWriter, status int, body quotaResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
