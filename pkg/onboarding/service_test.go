// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package onboarding -destination ./mock_onboarding.go -source=./interfaces.go

func newTestService(reg RegistryInterface, orchestrator OrchestratorInterface, quota QuotaInterface) *Service {
	return NewService(reg, orchestrator, quota, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_Onboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := &OnboardRequest{
		CompanyName:    "Acme Corp",
		AdminEmail:     "admin@acme.test",
		Tier:           "premium",
		IsolationModel: "bridge",
	}
	created := &types.Tenant{
		ID:             "tenant-1",
		Tier:           types.TierPremium,
		IsolationModel: types.ModelBridge,
		Status:         types.StatusRequested,
	}

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockOrchestrator := NewMockOrchestratorInterface(ctrl)
	mockQuota := NewMockQuotaInterface(ctrl)

	mockRegistry.EXPECT().CreateTenant(gomock.Any(), registry.TenantDraft{
		CompanyName:    "Acme Corp",
		AdminEmail:     "admin@acme.test",
		Tier:           types.TierPremium,
		IsolationModel: types.ModelBridge,
	}).Return(created, nil)

	launched := make(chan struct{})
	mockOrchestrator.EXPECT().Launch(gomock.Any(), "tenant-1").DoAndReturn(func(context.Context, string) error {
		close(launched)
		return nil
	})

	s := newTestService(mockRegistry, mockOrchestrator, mockQuota)
	tenant, err := s.Onboard(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The acknowledgement is synchronous and precedes provisioning.
	if tenant.Status != types.StatusRequested {
		t.Errorf("status = %s, want requested", tenant.Status)
	}

	select {
	case <-launched:
	case <-time.After(time.Second):
		t.Fatal("provisioning was never launched")
	}
}

func TestService_Onboard_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockRegistry.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, registry.ErrDuplicateTenant)

	s := newTestService(mockRegistry, NewMockOrchestratorInterface(ctrl), NewMockQuotaInterface(ctrl))
	_, err := s.Onboard(context.Background(), &OnboardRequest{
		CompanyName:    "Acme Corp",
		AdminEmail:     "admin@acme.test",
		Tier:           "basic",
		IsolationModel: "pool",
	})
	if !errors.Is(err, registry.ErrDuplicateTenant) {
		t.Fatalf("expected ErrDuplicateTenant, got %v", err)
	}
}

func TestService_GetStatus(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name       string
		setupMocks func(*MockRegistryInterface)
		expected   *TenantStatus
	}{
		{
			name: "active tenant has no job detail",
			setupMocks: func(reg *MockRegistryInterface) {
				reg.EXPECT().GetTenant(gomock.Any(), tenantID).Return(&types.Tenant{
					ID: tenantID, Status: types.StatusActive, IsolationModel: types.ModelPool,
				}, nil)
			},
			expected: &TenantStatus{TenantID: tenantID, Status: types.StatusActive, IsolationModel: types.ModelPool},
		},
		{
			name: "failed tenant reports the parked step",
			setupMocks: func(reg *MockRegistryInterface) {
				reg.EXPECT().GetTenant(gomock.Any(), tenantID).Return(&types.Tenant{
					ID: tenantID, Status: types.StatusFailed, IsolationModel: types.ModelSilo,
				}, nil)
				reg.EXPECT().GetJob(gomock.Any(), tenantID).Return(&types.ProvisioningJob{
					TenantID:    tenantID,
					Steps:       []string{"allocate_counter_namespace", "allocate_network"},
					CurrentStep: 1,
					LastError:   "network allocation refused",
				}, nil)
			},
			expected: &TenantStatus{
				TenantID:       tenantID,
				Status:         types.StatusFailed,
				IsolationModel: types.ModelSilo,
				FailedStep:     "allocate_network",
				LastError:      "network allocation refused",
			},
		},
		{
			name: "provisioning without a visible job",
			setupMocks: func(reg *MockRegistryInterface) {
				reg.EXPECT().GetTenant(gomock.Any(), tenantID).Return(&types.Tenant{
					ID: tenantID, Status: types.StatusProvisioning, IsolationModel: types.ModelBridge,
				}, nil)
				reg.EXPECT().GetJob(gomock.Any(), tenantID).Return(nil, registry.ErrNotFound)
			},
			expected: &TenantStatus{TenantID: tenantID, Status: types.StatusProvisioning, IsolationModel: types.ModelBridge},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRegistry := NewMockRegistryInterface(ctrl)
			tc.setupMocks(mockRegistry)

			s := newTestService(mockRegistry, NewMockOrchestratorInterface(ctrl), NewMockQuotaInterface(ctrl))
			status, err := s.GetStatus(context.Background(), tenantID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *status != *tc.expected {
				t.Errorf("status = %+v, want %+v", status, tc.expected)
			}
		})
	}
}

func TestService_ListTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockRegistry.EXPECT().ListTenants(gomock.Any(), int64(2), int64(10)).Return([]*types.Tenant{
		{ID: "tenant-1", Status: types.StatusActive, IsolationModel: types.ModelPool},
		{ID: "tenant-2", Status: types.StatusSuspended, IsolationModel: types.ModelSilo},
	}, nil)

	s := newTestService(mockRegistry, NewMockOrchestratorInterface(ctrl), NewMockQuotaInterface(ctrl))
	statuses, err := s.ListTenants(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("statuses = %d, want 2", len(statuses))
	}
	if statuses[0].TenantID != "tenant-1" || statuses[1].Status != types.StatusSuspended {
		t.Errorf("unexpected status view: %+v, %+v", statuses[0], statuses[1])
	}
}

func TestService_ChangeTier(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name        string
		tier        types.Tier
		setupMocks  func(*MockRegistryInterface, *MockQuotaInterface)
		expectedErr error
	}{
		{
			name: "upgrade applies new ceilings",
			tier: types.TierEnterprise,
			setupMocks: func(reg *MockRegistryInterface, quota *MockQuotaInterface) {
				reg.EXPECT().GetTenant(gomock.Any(), tenantID).Return(&types.Tenant{
					ID: tenantID, Status: types.StatusActive, Tier: types.TierBasic,
				}, nil)
				reg.EXPECT().ApplyTenant(gomock.Any(), tenantID, gomock.Any()).Return(&types.Tenant{ID: tenantID}, nil)
				quota.EXPECT().ApplyTier(gomock.Any(), tenantID, types.TierEnterprise).Return(nil)
			},
		},
		{
			name:       "invalid tier",
			tier:       types.Tier("platinum"),
			setupMocks: func(*MockRegistryInterface, *MockQuotaInterface) {},
			// A plain validation error, no sentinel to match.
			expectedErr: errors.New("invalid tier"),
		},
		{
			name: "deleted tenant is gone",
			tier: types.TierPremium,
			setupMocks: func(reg *MockRegistryInterface, quota *MockQuotaInterface) {
				reg.EXPECT().GetTenant(gomock.Any(), tenantID).Return(&types.Tenant{
					ID: tenantID, Status: types.StatusDeleted,
				}, nil)
			},
			expectedErr: registry.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRegistry := NewMockRegistryInterface(ctrl)
			mockQuota := NewMockQuotaInterface(ctrl)
			tc.setupMocks(mockRegistry, mockQuota)

			s := newTestService(mockRegistry, NewMockOrchestratorInterface(ctrl), mockQuota)
			err := s.ChangeTier(context.Background(), tenantID, tc.tier)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected an error")
				}
				if errors.Is(tc.expectedErr, registry.ErrNotFound) && !errors.Is(err, registry.ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Offboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := "tenant-1"
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockRegistry.EXPECT().DeleteTenant(gomock.Any(), tenantID).Return(nil)

	s := newTestService(mockRegistry, NewMockOrchestratorInterface(ctrl), NewMockQuotaInterface(ctrl))
	if err := s.Offboard(context.Background(), tenantID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
