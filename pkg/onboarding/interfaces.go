// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"

	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

// RegistryInterface is the subset of the tenant registry the onboarding
// service needs.
type RegistryInterface interface {
	CreateTenant(ctx context.Context, draft registry.TenantDraft) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	ApplyTenant(ctx context.Context, id string, mutate func(*types.Tenant) error) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	GetJob(ctx context.Context, tenantID string) (*types.ProvisioningJob, error)
}

// OrchestratorInterface is the lifecycle driver, see pkg/provisioning.
type OrchestratorInterface interface {
	Launch(ctx context.Context, tenantID string) error
	Suspend(ctx context.Context, tenantID string) error
	Reactivate(ctx context.Context, tenantID string) error
}

// QuotaInterface applies tier limit changes, see pkg/quota.
type QuotaInterface interface {
	ApplyTier(ctx context.Context, tenantID string, tier types.Tier) error
}

// TenantStatus is the onboarding status view of a tenant.
type TenantStatus struct {
	TenantID       string               `json:"tenant_id"`
	Status         types.Status         `json:"status"`
	IsolationModel types.IsolationModel `json:"isolation_model"`
	FailedStep     string               `json:"failed_step,omitempty"`
	LastError      string               `json:"last_error,omitempty"`
}

// ServiceInterface exposes the tenant lifecycle operations of the engine.
type ServiceInterface interface {
	Onboard(ctx context.Context, req *OnboardRequest) (*types.Tenant, error)
	GetStatus(ctx context.Context, tenantID string) (*TenantStatus, error)
	ListTenants(ctx context.Context, page, size int64) ([]*TenantStatus, error)
	Suspend(ctx context.Context, tenantID string) error
	Reactivate(ctx context.Context, tenantID string) error
	Offboard(ctx context.Context, tenantID string) error
	ChangeTier(ctx context.Context, tenantID string, tier types.Tier) error
}
