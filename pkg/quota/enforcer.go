// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

var (
	ErrQuotaExceeded       = errors.New("quota exceeded")
	ErrUnknownResourceKind = errors.New("unknown resource kind for tenant")
)

var _ EnforcerInterface = (*Enforcer)(nil)

// Enforcer owns the per-tenant usage counters. No other component reads or
// writes them; all mutation goes through its atomic store operations.
type Enforcer struct {
	counters CounterStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewEnforcer(counters CounterStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Enforcer {
	return &Enforcer{
		counters: counters,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Authorize admits the operation only if the counter can absorb delta
// without crossing the ceiling. Denials are surfaced, never retried:
// retrying cannot change the outcome.
func (e *Enforcer) Authorize(ctx context.Context, tenantID, kind string, delta int64) error {
	ctx, span := e.tracer.Start(ctx, "quota.Enforcer.Authorize")
	defer span.End()

	err := e.counters.CheckAndIncrement(ctx, tenantID, kind, delta)
	switch {
	case err == nil:
		e.monitor.IncQuotaDecision(kind, "allowed")
		return nil
	case errors.Is(err, registry.ErrCounterLimit):
		e.monitor.IncQuotaDecision(kind, "exceeded")
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, kind)
	case errors.Is(err, registry.ErrNotFound):
		e.monitor.IncQuotaDecision(kind, "unknown_kind")
		return fmt.Errorf("%w: %s", ErrUnknownResourceKind, kind)
	default:
		return fmt.Errorf("quota check failed: %w", err)
	}
}

// Release returns quota on entity deletion.
func (e *Enforcer) Release(ctx context.Context, tenantID, kind string, delta int64) error {
	ctx, span := e.tracer.Start(ctx, "quota.Enforcer.Release")
	defer span.End()

	if err := e.counters.ReleaseCounter(ctx, tenantID, kind, delta); err != nil {
		return fmt.Errorf("quota release failed: %w", err)
	}
	return nil
}

// ApplyTier rewrites the tenant's ceilings for the new tier. Only future
// checks observe the change; existing entities are never invalidated.
func (e *Enforcer) ApplyTier(ctx context.Context, tenantID string, tier types.Tier) error {
	ctx, span := e.tracer.Start(ctx, "quota.Enforcer.ApplyTier")
	defer span.End()

	if err := e.counters.SetCeilings(ctx, tenantID, types.DefaultLimits(tier)); err != nil {
		return fmt.Errorf("failed to apply tier limits: %w", err)
	}

	e.logger.Infof("applied %s tier limits for tenant %s", tier, tenantID)
	return nil
}
