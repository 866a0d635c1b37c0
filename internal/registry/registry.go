// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/tenant-isolation-service/internal/db"
	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

const maxConflictRetries = 3

var tenantColumns = []string{
	"id", "company_name", "admin_email", "tier", "isolation_model",
	"status", "limits", "binding", "version", "created_at", "updated_at",
}

// Registry is the single source of truth for tenant records. All writes go
// through versioned updates; reads return snapshots.
type Registry struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewRegistry(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Registry {
	r := new(Registry)

	r.db = c

	r.logger = logger
	r.tracer = tracer
	r.monitor = monitor

	return r
}

// TenantDraft carries the onboarding inputs for a new tenant record.
type TenantDraft struct {
	CompanyName    string
	AdminEmail     string
	Tier           types.Tier
	IsolationModel types.IsolationModel
}

// CreateTenant inserts a new tenant in requested status with tier default
// limits. A non-deleted tenant already owned by the same admin identity
// yields ErrDuplicateTenant.
func (r *Registry) CreateTenant(ctx context.Context, draft TenantDraft) (*types.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	limits := types.DefaultLimits(draft.Tier)
	limitsJSON, err := json.Marshal(limits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode limits: %w", err)
	}

	binding := types.ResourceBinding{
		TenantID: id.String(),
		Model:    draft.IsolationModel,
	}
	bindingJSON, err := json.Marshal(binding)
	if err != nil {
		return nil, fmt.Errorf("failed to encode binding: %w", err)
	}

	row := r.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "company_name", "admin_email", "tier", "isolation_model", "status", "limits", "binding", "version").
		Values(id.String(), draft.CompanyName, draft.AdminEmail, string(draft.Tier), string(draft.IsolationModel), string(types.StatusRequested), limitsJSON, bindingJSON, 1).
		Suffix("RETURNING " + columnList()).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateTenant
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return t, nil
}

// GetTenant returns a snapshot of the tenant record.
func (r *Registry) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.GetTenant")
	defer span.End()

	row := r.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// ListTenants returns a page of tenant records ordered by creation time,
// excluding deleted ones.
func (r *Registry) ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.ListTenants")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := r.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.NotEq{"status": string(types.StatusDeleted)}).
		OrderBy("created_at").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

// UpdateTenant applies mutate to the tenant snapshot at expectedVersion and
// persists the result. A stale expectedVersion yields ErrVersionConflict; a
// status change that is not in the lifecycle graph yields ErrInvalidTransition.
// This is the only path that mutates status, binding or limits.
func (r *Registry) UpdateTenant(ctx context.Context, id string, expectedVersion int64, mutate func(*types.Tenant) error) (*types.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.UpdateTenant")
	defer span.End()

	current, err := r.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Version != expectedVersion {
		return nil, ErrVersionConflict
	}

	prevStatus := current.Status
	if err := mutate(current); err != nil {
		return nil, err
	}

	if current.Status != prevStatus && !prevStatus.CanTransition(current.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, prevStatus, current.Status)
	}

	limitsJSON, err := json.Marshal(current.Limits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode limits: %w", err)
	}
	bindingJSON, err := json.Marshal(current.Binding)
	if err != nil {
		return nil, fmt.Errorf("failed to encode binding: %w", err)
	}

	res, err := r.db.Statement(ctx).
		Update("tenants").
		Set("tier", string(current.Tier)).
		Set("status", string(current.Status)).
		Set("limits", limitsJSON).
		Set("binding", bindingJSON).
		Set("version", expectedVersion+1).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "version": expectedVersion}).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// The snapshot moved between our read and write.
		return nil, ErrVersionConflict
	}

	current.Version = expectedVersion + 1
	current.UpdatedAt = time.Now().UTC()
	return current, nil
}

// ApplyTenant runs UpdateTenant against the latest version, re-reading and
// retrying a bounded number of times when it loses a version race.
func (r *Registry) ApplyTenant(ctx context.Context, id string, mutate func(*types.Tenant) error) (*types.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.ApplyTenant")
	defer span.End()

	var lastErr error
	for i := 0; i < maxConflictRetries; i++ {
		current, err := r.GetTenant(ctx, id)
		if err != nil {
			return nil, err
		}

		updated, err := r.UpdateTenant(ctx, id, current.Version, mutate)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// DeleteTenant soft deletes the tenant, preserving the record for audit.
func (r *Registry) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.DeleteTenant")
	defer span.End()

	_, err := r.ApplyTenant(ctx, id, func(t *types.Tenant) error {
		t.Status = types.StatusDeleted
		return nil
	})
	return err
}

func columnList() string {
	list := tenantColumns[0]
	for _, c := range tenantColumns[1:] {
		list += ", " + c
	}
	return list
}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var (
		t           types.Tenant
		tier        string
		model       string
		status      string
		limitsJSON  []byte
		bindingJSON []byte
	)

	err := row.Scan(
		&t.ID, &t.CompanyName, &t.AdminEmail, &tier, &model,
		&status, &limitsJSON, &bindingJSON, &t.Version, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Tier = types.Tier(tier)
	t.IsolationModel = types.IsolationModel(model)
	t.Status = types.Status(status)

	if err := json.Unmarshal(limitsJSON, &t.Limits); err != nil {
		return nil, fmt.Errorf("failed to decode limits: %w", err)
	}
	if err := json.Unmarshal(bindingJSON, &t.Binding); err != nil {
		return nil, fmt.Errorf("failed to decode binding: %w", err)
	}

	return &t, nil
}
