// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"

	"github.com/canonical/tenant-isolation-service/internal/types"
)

// RegistryInterface is the subset of the tenant registry the orchestrator
// needs. The orchestrator is the only writer of status and binding while a
// tenant is provisioning.
type RegistryInterface interface {
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ApplyTenant(ctx context.Context, id string, mutate func(*types.Tenant) error) (*types.Tenant, error)
	UpsertJob(ctx context.Context, job *types.ProvisioningJob) error
	GetJob(ctx context.Context, tenantID string) (*types.ProvisioningJob, error)
	ListJobs(ctx context.Context) ([]*types.ProvisioningJob, error)
	DeleteJob(ctx context.Context, tenantID string) error
}

// StepResult carries the binding fragments produced by a completed step.
// Empty fields leave the binding untouched.
type StepResult struct {
	SchemaName        string
	DedicatedEndpoint string
	CredentialRef     string
	NetworkRef        string
}

// BackendInterface executes one infrastructure step. Implementations must be
// idempotent for a given (step, tenantID) pair: re-running a completed step
// must not duplicate resources.
type BackendInterface interface {
	ExecuteStep(ctx context.Context, step, tenantID string, params map[string]string) (*StepResult, error)
}

// SinkInterface is the lifecycle event sink, see pkg/notifications.
type SinkInterface interface {
	Emit(ctx context.Context, event types.LifecycleEvent)
}

// InvalidatorInterface drops cached bindings when a tenant leaves active
// status, see pkg/routing.
type InvalidatorInterface interface {
	Invalidate(tenantID string)
}

// OrchestratorInterface drives tenants through the lifecycle state machine.
type OrchestratorInterface interface {
	Launch(ctx context.Context, tenantID string) error
	Run(ctx context.Context, job *types.ProvisioningJob) error
	Resume(ctx context.Context) error
	Suspend(ctx context.Context, tenantID string) error
	Reactivate(ctx context.Context, tenantID string) error
}
