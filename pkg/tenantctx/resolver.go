// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantctx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

var (
	ErrMissingClaim    = errors.New("required identity claim missing")
	ErrUnknownTenant   = errors.New("claimed tenant has no registry record")
	ErrTenantNotActive = errors.New("tenant is not active")
	// ErrResolutionTimeout means the registry lookup did not complete in
	// time; the request path fails closed on it.
	ErrResolutionTimeout = errors.New("tenant resolution timed out")
)

// Claims is the gateway-verified identity claim set. The resolver trusts it
// and performs no cryptographic verification of its own.
type Claims struct {
	TenantID string
	Tier     string
	Subject  string
}

var _ ResolverInterface = (*Resolver)(nil)

// Resolver combines verified claims with a fresh registry read into the
// TenantContext carried through every downstream call. Side-effect-free.
type Resolver struct {
	registry RegistryInterface
	timeout  time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(
	reg RegistryInterface,
	timeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	return &Resolver{
		registry: reg,
		timeout:  timeout,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Resolve rejects any tenant that is not active.
func (r *Resolver) Resolve(ctx context.Context, claims Claims) (*types.TenantContext, error) {
	ctx, span := r.tracer.Start(ctx, "tenantctx.Resolver.Resolve")
	defer span.End()

	return r.resolve(ctx, claims, false)
}

// ResolveForStatus additionally admits requested, provisioning and failed
// tenants. Only the onboarding status endpoint may use it.
func (r *Resolver) ResolveForStatus(ctx context.Context, claims Claims) (*types.TenantContext, error) {
	ctx, span := r.tracer.Start(ctx, "tenantctx.Resolver.ResolveForStatus")
	defer span.End()

	return r.resolve(ctx, claims, true)
}

func (r *Resolver) resolve(ctx context.Context, claims Claims, statusCheck bool) (*types.TenantContext, error) {
	if claims.TenantID == "" || claims.Tier == "" {
		return nil, ErrMissingClaim
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tenant, err := r.registry.GetTenant(ctx, claims.TenantID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, ErrUnknownTenant
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrResolutionTimeout
		}
		return nil, fmt.Errorf("registry lookup failed: %w", err)
	}

	if !r.admits(tenant.Status, statusCheck) {
		r.logger.Security().AccessDenied(claims.Subject, claims.TenantID, string(tenant.Status))
		return nil, fmt.Errorf("%w: status %s", ErrTenantNotActive, tenant.Status)
	}

	if string(tenant.Tier) != claims.Tier {
		// The registry wins; a stale token tier only affects logging.
		r.logger.Warnf("claimed tier %q differs from registry tier %q for tenant %s", claims.Tier, tenant.Tier, tenant.ID)
	}

	return &types.TenantContext{
		TenantID:       tenant.ID,
		Tier:           tenant.Tier,
		IsolationModel: tenant.IsolationModel,
		Subject:        claims.Subject,
	}, nil
}

func (r *Resolver) admits(status types.Status, statusCheck bool) bool {
	if status == types.StatusActive {
		return true
	}
	if !statusCheck {
		return false
	}
	switch status {
	case types.StatusRequested, types.StatusProvisioning, types.StatusFailed:
		return true
	}
	return false
}
