// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
	"github.com/canonical/tenant-isolation-service/pkg/routing"
)

type Config struct {
	StepTimeout    time.Duration
	JobTimeout     time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
}

var _ OrchestratorInterface = (*Orchestrator)(nil)

// Orchestrator drives tenants through the lifecycle state machine. Jobs for
// different tenants run fully in parallel; within one job steps are strictly
// sequential and each outcome is persisted before the cursor advances, so a
// restart resumes after the last completed step.
type Orchestrator struct {
	registry    RegistryInterface
	backend     BackendInterface
	sink        SinkInterface
	invalidator InvalidatorInterface
	cfg         Config

	// running guards against the same tenant's job being driven twice,
	// e.g. by an onboarding goroutine and the resume scan at once.
	running sync.Map

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewOrchestrator(
	reg RegistryInterface,
	backend BackendInterface,
	sink SinkInterface,
	invalidator InvalidatorInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Orchestrator {
	return &Orchestrator{
		registry:    reg,
		backend:     backend,
		sink:        sink,
		invalidator: invalidator,
		cfg:         cfg,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// Launch moves a requested tenant into provisioning, persists the job and
// runs it to completion.
func (o *Orchestrator) Launch(ctx context.Context, tenantID string) error {
	ctx, span := o.tracer.Start(ctx, "provisioning.Orchestrator.Launch")
	defer span.End()

	tenant, err := o.transition(ctx, tenantID, types.StatusProvisioning)
	if err != nil {
		return err
	}

	job := &types.ProvisioningJob{
		TenantID: tenantID,
		Model:    tenant.IsolationModel,
		Steps:    Plan(tenant.IsolationModel),
		Deadline: time.Now().UTC().Add(o.cfg.JobTimeout),
	}
	if err := o.registry.UpsertJob(ctx, job); err != nil {
		return err
	}

	return o.Run(ctx, job)
}

// Run executes the job's remaining steps. A handled provisioning failure
// (tenant moved to failed) returns nil; only infrastructure errors, such as
// the registry being unreachable, surface as errors.
func (o *Orchestrator) Run(ctx context.Context, job *types.ProvisioningJob) error {
	ctx, span := o.tracer.Start(ctx, "provisioning.Orchestrator.Run")
	defer span.End()

	if _, loaded := o.running.LoadOrStore(job.TenantID, struct{}{}); loaded {
		return nil
	}
	defer o.running.Delete(job.TenantID)

	for !job.Done() {
		if time.Now().After(job.Deadline) {
			return o.fail(ctx, job, ErrJobTimeout)
		}

		step := job.Steps[job.CurrentStep]
		result, err := o.executeStep(ctx, job, step)
		if err != nil {
			return o.fail(ctx, job, err)
		}

		if err := o.applyResult(ctx, job.TenantID, result); err != nil {
			return err
		}

		// Persist the cursor before starting the next step.
		job.CurrentStep++
		job.Attempts = 0
		job.LastError = ""
		if err := o.registry.UpsertJob(ctx, job); err != nil {
			return err
		}

		o.monitor.IncProvisioningStep(step, "success")
	}

	if _, err := o.transition(ctx, job.TenantID, types.StatusActive); err != nil {
		return err
	}

	return o.registry.DeleteJob(ctx, job.TenantID)
}

// Resume re-runs in-flight jobs from their persisted cursors, called on
// startup and on the worker's periodic scan.
func (o *Orchestrator) Resume(ctx context.Context) error {
	ctx, span := o.tracer.Start(ctx, "provisioning.Orchestrator.Resume")
	defer span.End()

	jobs, err := o.registry.ListJobs(ctx)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		tenant, err := o.registry.GetTenant(ctx, job.TenantID)
		if err != nil {
			o.logger.Errorf("cannot resume job for tenant %s: %v", job.TenantID, err)
			continue
		}
		// Failed tenants keep their job archived for inspection; nothing
		// to resume.
		if tenant.Status != types.StatusProvisioning {
			continue
		}

		o.logger.Infof("resuming provisioning for tenant %s at step %d of %d", job.TenantID, job.CurrentStep+1, len(job.Steps))
		if err := o.Run(ctx, job); err != nil {
			o.logger.Errorf("failed to resume job for tenant %s: %v", job.TenantID, err)
		}
	}

	return nil
}

// Suspend toggles an active tenant to suspended. No provisioning steps are
// re-run; the router treats suspended tenants as not ready.
func (o *Orchestrator) Suspend(ctx context.Context, tenantID string) error {
	ctx, span := o.tracer.Start(ctx, "provisioning.Orchestrator.Suspend")
	defer span.End()

	_, err := o.transition(ctx, tenantID, types.StatusSuspended)
	return err
}

// Reactivate toggles a suspended tenant back to active.
func (o *Orchestrator) Reactivate(ctx context.Context, tenantID string) error {
	ctx, span := o.tracer.Start(ctx, "provisioning.Orchestrator.Reactivate")
	defer span.End()

	_, err := o.transition(ctx, tenantID, types.StatusActive)
	return err
}

func (o *Orchestrator) executeStep(ctx context.Context, job *types.ProvisioningJob, step string) (*StepResult, error) {
	params := o.stepParams(job)

	// The job deadline bounds the whole retry loop. It wins over any
	// attempt budget left on the step.
	retryCtx, cancel := context.WithDeadline(ctx, job.Deadline)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = o.cfg.InitialBackoff
	// Attempt budget and the job deadline bound the retries, not elapsed time.
	bo.MaxElapsedTime = 0

	var result *StepResult
	operation := func() error {
		stepCtx, stepCancel := context.WithTimeout(retryCtx, o.cfg.StepTimeout)
		defer stepCancel()

		res, err := o.backend.ExecuteStep(stepCtx, step, job.TenantID, params)
		if err == nil {
			result = res
			return nil
		}

		if errors.Is(err, ErrStepFatal) {
			return backoff.Permanent(err)
		}

		// A step that overran its deadline counts as a failed attempt.
		job.Attempts++
		job.LastError = err.Error()
		if uerr := o.registry.UpsertJob(ctx, job); uerr != nil {
			o.logger.Errorf("failed to persist attempt for tenant %s: %v", job.TenantID, uerr)
		}
		o.monitor.IncProvisioningStep(step, "retry")

		if job.Attempts >= o.cfg.MaxAttempts {
			return backoff.Permanent(fmt.Errorf("attempt budget exhausted: %w", err))
		}
		return err
	}

	if err := backoff.Retry(operation, backoff.WithContext(bo, retryCtx)); err != nil {
		if retryCtx.Err() != nil && ctx.Err() == nil {
			return nil, ErrJobTimeout
		}
		return nil, err
	}
	return result, nil
}

func (o *Orchestrator) stepParams(job *types.ProvisioningJob) map[string]string {
	if job.Model == types.ModelBridge {
		return map[string]string{"schema_name": routing.SchemaNameFor(job.TenantID)}
	}
	return nil
}

// applyResult folds the step's binding fragments into the tenant record.
func (o *Orchestrator) applyResult(ctx context.Context, tenantID string, result *StepResult) error {
	if result == nil || *result == (StepResult{}) {
		return nil
	}

	_, err := o.registry.ApplyTenant(ctx, tenantID, func(t *types.Tenant) error {
		if result.SchemaName != "" {
			t.Binding.SchemaName = result.SchemaName
		}
		if result.DedicatedEndpoint != "" {
			t.Binding.DedicatedEndpoint = result.DedicatedEndpoint
		}
		if result.CredentialRef != "" {
			t.Binding.CredentialRef = result.CredentialRef
		}
		if result.NetworkRef != "" {
			t.Binding.NetworkRef = result.NetworkRef
		}
		return nil
	})
	return err
}

// fail parks the job for inspection and moves the tenant to failed. Fatal
// provisioning errors never crash the orchestrator; other tenants' jobs
// keep running. Already-completed steps are left in place: rollback of
// dedicated infrastructure is a deliberate operator action, not an
// automatic one.
func (o *Orchestrator) fail(ctx context.Context, job *types.ProvisioningJob, cause error) error {
	job.LastError = cause.Error()
	if err := o.registry.UpsertJob(ctx, job); err != nil {
		o.logger.Errorf("failed to persist failed job for tenant %s: %v", job.TenantID, err)
	}

	o.monitor.IncProvisioningStep(job.FailedStep(), "failed")
	o.logger.Errorf("provisioning failed for tenant %s at step %s: %v", job.TenantID, job.FailedStep(), cause)

	if _, err := o.transition(ctx, job.TenantID, types.StatusFailed); err != nil {
		return err
	}
	return nil
}

// transition applies a status change through the registry's versioned
// update, invalidates any cached binding and emits the lifecycle event.
func (o *Orchestrator) transition(ctx context.Context, tenantID string, to types.Status) (*types.Tenant, error) {
	var from types.Status
	updated, err := o.registry.ApplyTenant(ctx, tenantID, func(t *types.Tenant) error {
		from = t.Status
		t.Status = to
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.invalidator.Invalidate(tenantID)
	o.sink.Emit(ctx, types.LifecycleEvent{
		TenantID:  tenantID,
		From:      from,
		To:        to,
		Timestamp: time.Now().UTC(),
	})

	return updated, nil
}
