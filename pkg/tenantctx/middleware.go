// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantctx

import (
	"context"
	"errors"
	"net/http"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

const (
	// Headers set by the gateway after it has verified the identity token.
	TenantIDHeader = "X-Tenant-Id"
	TierHeader     = "X-Tenant-Tier"
	SubjectHeader  = "X-Subject"
)

type contextKey struct{}

var tenantContextKey contextKey

// ContextWith returns a new context carrying the tenant context.
func ContextWith(ctx context.Context, tc *types.TenantContext) context.Context {
	return context.WithValue(ctx, tenantContextKey, tc)
}

// FromContext extracts the tenant context injected by the middleware.
func FromContext(ctx context.Context) (*types.TenantContext, bool) {
	tc, ok := ctx.Value(tenantContextKey).(*types.TenantContext)
	return tc, ok
}

// ClaimsFromRequest reads the gateway claim headers.
func ClaimsFromRequest(r *http.Request) Claims {
	return Claims{
		TenantID: r.Header.Get(TenantIDHeader),
		Tier:     r.Header.Get(TierHeader),
		Subject:  r.Header.Get(SubjectHeader),
	}
}

type Middleware struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(resolver ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HTTPMiddleware resolves the tenant context for every request and rejects
// requests it cannot attribute to an active tenant.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "tenantctx.Middleware.HTTPMiddleware")
		defer span.End()

		tc, err := m.resolver.Resolve(ctx, ClaimsFromRequest(r))
		if err != nil {
			m.reject(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWith(ctx, tc)))
	})
}

func (m *Middleware) reject(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingClaim):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrUnknownTenant), errors.Is(err, ErrTenantNotActive):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrResolutionTimeout):
		// Fail closed: deny rather than serve without a verified context.
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		m.logger.Errorf("tenant resolution failed: %v", err)
		http.Error(w, "tenant resolution failed", http.StatusInternalServerError)
	}
}
