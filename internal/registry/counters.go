// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// EnsureCounters allocates the tenant's usage-counter namespace, one row per
// resource kind. Idempotent, so the provisioning step can be re-run safely.
func (r *Registry) EnsureCounters(ctx context.Context, tenantID string, limits map[string]int64) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.EnsureCounters")
	defer span.End()

	for kind, ceiling := range limits {
		_, err := r.db.Statement(ctx).
			Insert("usage_counters").
			Columns("tenant_id", "resource_kind", "used", "ceiling").
			Values(tenantID, kind, 0, ceiling).
			Suffix("ON CONFLICT (tenant_id, resource_kind) DO NOTHING").
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate counter %s: %w", kind, err)
		}
	}

	return nil
}

// CheckAndIncrement atomically increments the counter only when the new
// usage stays within the ceiling. A negative ceiling means unlimited. The
// whole check-and-increment is a single conditional UPDATE, so two racing
// callers can never jointly exceed the limit.
func (r *Registry) CheckAndIncrement(ctx context.Context, tenantID, kind string, delta int64) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.CheckAndIncrement")
	defer span.End()

	res, err := r.db.Statement(ctx).
		Update("usage_counters").
		Set("used", sq.Expr("used + ?", delta)).
		Where(sq.Eq{"tenant_id": tenantID, "resource_kind": kind}).
		Where(sq.Expr("(ceiling < 0 OR used + ? <= ceiling)", delta)).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment counter: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Distinguish a missing namespace from a full one.
	var one int
	err = r.db.Statement(ctx).
		Select("1").
		From("usage_counters").
		Where(sq.Eq{"tenant_id": tenantID, "resource_kind": kind}).
		QueryRowContext(ctx).
		Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read counter: %w", err)
	}

	return ErrCounterLimit
}

// ReleaseCounter decrements the counter on entity deletion, flooring at zero.
func (r *Registry) ReleaseCounter(ctx context.Context, tenantID, kind string, delta int64) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.ReleaseCounter")
	defer span.End()

	_, err := r.db.Statement(ctx).
		Update("usage_counters").
		Set("used", sq.Expr("GREATEST(used - ?, 0)", delta)).
		Where(sq.Eq{"tenant_id": tenantID, "resource_kind": kind}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to release counter: %w", err)
	}

	return nil
}

// SetCeilings rewrites the tenant's counter ceilings after a tier change.
// Current usage is never touched; only future checks see the new limits.
func (r *Registry) SetCeilings(ctx context.Context, tenantID string, limits map[string]int64) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.SetCeilings")
	defer span.End()

	for kind, ceiling := range limits {
		_, err := r.db.Statement(ctx).
			Insert("usage_counters").
			Columns("tenant_id", "resource_kind", "used", "ceiling").
			Values(tenantID, kind, 0, ceiling).
			Suffix("ON CONFLICT (tenant_id, resource_kind) DO UPDATE SET ceiling = EXCLUDED.ceiling").
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to set ceiling %s: %w", kind, err)
		}
	}

	return nil
}
