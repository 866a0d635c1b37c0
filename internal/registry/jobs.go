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
	"github.com/jackc/pgx/v5"

	"github.com/canonical/tenant-isolation-service/internal/types"
)

var jobColumns = []string{
	"tenant_id", "model", "steps", "current_step", "attempts",
	"last_error", "deadline", "created_at", "updated_at",
}

// UpsertJob persists the job keyed by tenant id, one in-flight transition
// per tenant. The cursor must be durable before the next step starts.
func (r *Registry) UpsertJob(ctx context.Context, job *types.ProvisioningJob) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.UpsertJob")
	defer span.End()

	stepsJSON, err := json.Marshal(job.Steps)
	if err != nil {
		return fmt.Errorf("failed to encode steps: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.Statement(ctx).
		Insert("provisioning_jobs").
		Columns("tenant_id", "model", "steps", "current_step", "attempts", "last_error", "deadline", "updated_at").
		Values(job.TenantID, string(job.Model), stepsJSON, job.CurrentStep, job.Attempts, job.LastError, job.Deadline, now).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			steps = EXCLUDED.steps,
			current_step = EXCLUDED.current_step,
			attempts = EXCLUDED.attempts,
			last_error = EXCLUDED.last_error,
			deadline = EXCLUDED.deadline,
			updated_at = EXCLUDED.updated_at`).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert provisioning job: %w", err)
	}

	return nil
}

func (r *Registry) GetJob(ctx context.Context, tenantID string) (*types.ProvisioningJob, error) {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.GetJob")
	defer span.End()

	row := r.db.Statement(ctx).
		Select(jobColumns...).
		From("provisioning_jobs").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get provisioning job: %w", err)
	}

	return job, nil
}

// ListJobs returns every persisted job, used by the worker to resume
// in-flight transitions after a restart.
func (r *Registry) ListJobs(ctx context.Context) ([]*types.ProvisioningJob, error) {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.ListJobs")
	defer span.End()

	rows, err := r.db.Statement(ctx).
		Select(jobColumns...).
		From("provisioning_jobs").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list provisioning jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*types.ProvisioningJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan provisioning job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return jobs, nil
}

// DeleteJob removes the job once the tenant reached a terminal outcome.
func (r *Registry) DeleteJob(ctx context.Context, tenantID string) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.DeleteJob")
	defer span.End()

	_, err := r.db.Statement(ctx).
		Delete("provisioning_jobs").
		Where(sq.Eq{"tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete provisioning job: %w", err)
	}

	return nil
}

func scanJob(row sq.RowScanner) (*types.ProvisioningJob, error) {
	var (
		job       types.ProvisioningJob
		model     string
		stepsJSON []byte
	)

	err := row.Scan(
		&job.TenantID, &model, &stepsJSON, &job.CurrentStep, &job.Attempts,
		&job.LastError, &job.Deadline, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.Model = types.IsolationModel(model)
	if err := json.Unmarshal(stepsJSON, &job.Steps); err != nil {
		return nil, fmt.Errorf("failed to decode steps: %w", err)
	}

	return &job, nil
}
