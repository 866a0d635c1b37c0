// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

var (
	ErrBindingNotReady = errors.New("resource binding not ready")
	// ErrIsolationViolation means the router produced a binding for a
	// different tenant than the request's. Unrecoverable; never retried.
	ErrIsolationViolation = errors.New("tenant isolation violation")
)

// SharedPoolTable is the fixed shared-resource descriptor for pool tenants.
const SharedPoolTable = "shared_tenant_data"

var _ RouterInterface = (*Router)(nil)

// Router maps a TenantContext to the ResourceBinding describing where that
// tenant's data lives. It never returns a binding whose tenant association
// differs from the input context.
type Router struct {
	registry RegistryInterface
	cache    *bindingCache

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRouter(reg RegistryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Router {
	return &Router{
		registry: reg,
		cache:    newBindingCache(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (r *Router) Resolve(ctx context.Context, tc *types.TenantContext) (*types.ResourceBinding, error) {
	ctx, span := r.tracer.Start(ctx, "routing.Router.Resolve")
	defer span.End()

	var (
		binding *types.ResourceBinding
		err     error
	)

	switch tc.IsolationModel {
	case types.ModelPool:
		binding, err = r.resolvePool(ctx, tc)
	case types.ModelBridge:
		binding, err = r.resolveBridge(ctx, tc)
	case types.ModelSilo:
		binding, err = r.resolveSilo(ctx, tc)
	default:
		return nil, fmt.Errorf("unknown isolation model: %q", tc.IsolationModel)
	}
	if err != nil {
		return nil, err
	}

	// The single most important property of the engine: the binding must
	// belong to the requesting tenant. A mismatch is an internal bug and
	// aborts the request.
	if binding.TenantID != tc.TenantID {
		r.monitor.IncIsolationFault()
		r.logger.Security().IsolationFault(tc.TenantID, binding.TenantID)
		return nil, ErrIsolationViolation
	}

	return binding, nil
}

// resolvePool returns the fixed shared descriptor plus the mandatory
// tenant-id filter marker, so downstream code cannot silently omit scoping.
func (r *Router) resolvePool(ctx context.Context, tc *types.TenantContext) (*types.ResourceBinding, error) {
	tenant, err := r.lookupActive(ctx, tc.TenantID)
	if err != nil {
		return nil, err
	}

	return &types.ResourceBinding{
		TenantID:     tenant.ID,
		Model:        types.ModelPool,
		SharedTable:  SharedPoolTable,
		TenantFilter: fmt.Sprintf("tenant_id = %s", tenant.ID),
	}, nil
}

func (r *Router) resolveBridge(ctx context.Context, tc *types.TenantContext) (*types.ResourceBinding, error) {
	tenant, err := r.lookupActive(ctx, tc.TenantID)
	if err != nil {
		return nil, err
	}

	// Unreachable when the resolver already enforced active status, but the
	// router re-checks rather than trust its callers.
	if tenant.Binding.SchemaName == "" {
		return nil, ErrBindingNotReady
	}

	binding := tenant.Binding
	return &binding, nil
}

func (r *Router) resolveSilo(ctx context.Context, tc *types.TenantContext) (*types.ResourceBinding, error) {
	if cached, ok := r.cache.get(tc.TenantID); ok {
		return cached, nil
	}

	tenant, err := r.lookupActive(ctx, tc.TenantID)
	if err != nil {
		return nil, err
	}

	if !tenant.Binding.Ready() {
		return nil, ErrBindingNotReady
	}

	binding := tenant.Binding
	r.cache.put(tc.TenantID, &binding)
	return &binding, nil
}

// lookupActive reads the tenant and treats any non-active status as not
// ready. It also drops any cached silo binding the moment a non-active
// status is observed; serving a stale dedicated endpoint would be a severe
// isolation violation.
func (r *Router) lookupActive(ctx context.Context, tenantID string) (*types.Tenant, error) {
	tenant, err := r.registry.GetTenant(ctx, tenantID)
	if err != nil {
		r.cache.invalidate(tenantID)
		return nil, fmt.Errorf("registry lookup failed: %w", err)
	}

	if tenant.Status != types.StatusActive {
		r.cache.invalidate(tenantID)
		return nil, fmt.Errorf("%w: tenant status %s", ErrBindingNotReady, tenant.Status)
	}

	return tenant, nil
}

// Invalidate drops any cached binding for the tenant. The orchestrator calls
// it on every status transition.
func (r *Router) Invalidate(tenantID string) {
	r.cache.invalidate(tenantID)
}
