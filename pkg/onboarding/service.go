// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

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

// OnboardRequest carries the tenant onboarding inputs.
type OnboardRequest struct {
	CompanyName    string `json:"company_name" validate:"required"`
	AdminEmail     string `json:"admin_email" validate:"required,email"`
	Tier           string `json:"tier" validate:"required,oneof=basic premium enterprise"`
	IsolationModel string `json:"isolation_model" validate:"required,oneof=pool bridge silo"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	registry     RegistryInterface
	orchestrator OrchestratorInterface
	quota        QuotaInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	reg RegistryInterface,
	orchestrator OrchestratorInterface,
	quota QuotaInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry:     reg,
		orchestrator: orchestrator,
		quota:        quota,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

// Onboard creates the tenant record and kicks off provisioning in the
// background. The acknowledgement never waits for provisioning completion;
// later step failures are discoverable via GetStatus and the notification
// channel.
func (s *Service) Onboard(ctx context.Context, req *OnboardRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.Onboard")
	defer span.End()

	tenant, err := s.registry.CreateTenant(ctx, registry.TenantDraft{
		CompanyName:    req.CompanyName,
		AdminEmail:     req.AdminEmail,
		Tier:           types.Tier(req.Tier),
		IsolationModel: types.IsolationModel(req.IsolationModel),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("onboarded tenant %s (%s, %s)", tenant.ID, tenant.Tier, tenant.IsolationModel)

	go func() {
		// Detached from the request: the job carries its own deadline.
		if err := s.orchestrator.Launch(context.Background(), tenant.ID); err != nil {
			s.logger.Errorf("failed to launch provisioning for tenant %s: %v", tenant.ID, err)
		}
	}()

	return tenant, nil
}

// GetStatus reports lifecycle progress, including the step a failed or
// in-flight job is parked on. Explicitly allowed for non-active tenants.
func (s *Service) GetStatus(ctx context.Context, tenantID string) (*TenantStatus, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.GetStatus")
	defer span.End()

	tenant, err := s.registry.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	status := &TenantStatus{
		TenantID:       tenant.ID,
		Status:         tenant.Status,
		IsolationModel: tenant.IsolationModel,
	}

	if tenant.Status == types.StatusProvisioning || tenant.Status == types.StatusFailed {
		job, err := s.registry.GetJob(ctx, tenantID)
		if err == nil {
			status.FailedStep = job.FailedStep()
			status.LastError = job.LastError
		} else if !errors.Is(err, registry.ErrNotFound) {
			return nil, err
		}
	}

	return status, nil
}

// ListTenants returns a page of non-deleted tenants in their status view.
func (s *Service) ListTenants(ctx context.Context, page, size int64) ([]*TenantStatus, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.ListTenants")
	defer span.End()

	tenants, err := s.registry.ListTenants(ctx, page, size)
	if err != nil {
		return nil, err
	}

	statuses := make([]*TenantStatus, 0, len(tenants))
	for _, tenant := range tenants {
		statuses = append(statuses, &TenantStatus{
			TenantID:       tenant.ID,
			Status:         tenant.Status,
			IsolationModel: tenant.IsolationModel,
		})
	}

	return statuses, nil
}

func (s *Service) Suspend(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.Suspend")
	defer span.End()

	return s.orchestrator.Suspend(ctx, tenantID)
}

func (s *Service) Reactivate(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.Reactivate")
	defer span.End()

	return s.orchestrator.Reactivate(ctx, tenantID)
}

// Offboard soft deletes the tenant; the record stays for audit and any
// dedicated resources await deliberate operator cleanup.
func (s *Service) Offboard(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.Offboard")
	defer span.End()

	return s.registry.DeleteTenant(ctx, tenantID)
}

// ChangeTier updates the commercial plan and rewrites quota ceilings for
// future checks. Existing entities are never retroactively invalidated.
func (s *Service) ChangeTier(ctx context.Context, tenantID string, tier types.Tier) error {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.ChangeTier")
	defer span.End()

	if !tier.Valid() {
		return fmt.Errorf("invalid tier: %q", tier)
	}

	tenant, err := s.registry.GetTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant.Status == types.StatusDeleted {
		return registry.ErrNotFound
	}

	if _, err := s.registry.ApplyTenant(ctx, tenantID, func(t *types.Tenant) error {
		t.Tier = tier
		t.Limits = types.DefaultLimits(tier)
		return nil
	}); err != nil {
		return err
	}

	return s.quota.ApplyTier(ctx, tenantID, tier)
}
