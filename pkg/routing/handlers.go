// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/pkg/tenantctx"
)

// API lets the CRUD services ask where the calling tenant's data lives.
// The tenant context middleware must run in front of it.
type API struct {
	router RouterInterface
	logger logging.LoggerInterface
}

func NewAPI(router RouterInterface, logger logging.LoggerInterface) *API {
	return &API{
		router: router,
		logger: logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/binding", a.binding)
}

func (a *API) binding(w http.ResponseWriter, r *http.Request) {
	tc, ok := tenantctx.FromContext(r.Context())
	if !ok {
		http.Error(w, "no tenant context", http.StatusUnauthorized)
		return
	}

	binding, err := a.router.Resolve(r.Context(), tc)
	if err != nil {
		switch {
		case errors.Is(err, ErrBindingNotReady):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrIsolationViolation):
			// Abort, never serve a fallback binding.
			http.Error(w, "internal error", http.StatusInternalServerError)
		default:
			a.logger.Errorf("binding resolution failed: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(binding)
}
