// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package routing -destination ./mock_routing.go -source=./interfaces.go

func newTestRouter(reg RegistryInterface) *Router {
	return NewRouter(reg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func poolTenant(id string) *types.Tenant {
	return &types.Tenant{
		ID:             id,
		Tier:           types.TierBasic,
		IsolationModel: types.ModelPool,
		Status:         types.StatusActive,
		Binding: types.ResourceBinding{
			TenantID:     id,
			Model:        types.ModelPool,
			SharedTable:  SharedPoolTable,
			TenantFilter: fmt.Sprintf("tenant_id = %s", id),
		},
	}
}

func siloTenant(id string) *types.Tenant {
	return &types.Tenant{
		ID:             id,
		Tier:           types.TierEnterprise,
		IsolationModel: types.ModelSilo,
		Status:         types.StatusActive,
		Binding: types.ResourceBinding{
			TenantID:          id,
			Model:             types.ModelSilo,
			DedicatedEndpoint: "db-" + id + ".internal:5432",
			CredentialRef:     "vault://tenants/" + id,
			NetworkRef:        "vpc-" + id,
		},
	}
}

func TestRouter_Resolve_Pool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := "tenant-1"
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockRegistry.EXPECT().GetTenant(gomock.Any(), tenantID).Return(poolTenant(tenantID), nil)

	r := newTestRouter(mockRegistry)
	binding, err := r.Resolve(context.Background(), &types.TenantContext{TenantID: tenantID, IsolationModel: types.ModelPool})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if binding.SharedTable != SharedPoolTable {
		t.Errorf("SharedTable = %q, want %q", binding.SharedTable, SharedPoolTable)
	}
	if binding.TenantFilter == "" {
		t.Error("pool binding must carry the tenant filter marker")
	}
	if !binding.Ready() {
		t.Error("pool binding must be ready")
	}
}

func TestRouter_Resolve_Bridge(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name        string
		tenant      *types.Tenant
		expectedErr error
	}{
		{
			name: "ready schema binding",
			tenant: &types.Tenant{
				ID: tenantID, IsolationModel: types.ModelBridge, Status: types.StatusActive,
				Binding: types.ResourceBinding{TenantID: tenantID, Model: types.ModelBridge, SchemaName: "tenant_tenant_1"},
			},
		},
		{
			name: "schema not yet provisioned",
			tenant: &types.Tenant{
				ID: tenantID, IsolationModel: types.ModelBridge, Status: types.StatusActive,
				Binding: types.ResourceBinding{TenantID: tenantID, Model: types.ModelBridge},
			},
			expectedErr: ErrBindingNotReady,
		},
		{
			name: "suspended tenant",
			tenant: &types.Tenant{
				ID: tenantID, IsolationModel: types.ModelBridge, Status: types.StatusSuspended,
				Binding: types.ResourceBinding{TenantID: tenantID, Model: types.ModelBridge, SchemaName: "tenant_tenant_1"},
			},
			expectedErr: ErrBindingNotReady,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRegistry := NewMockRegistryInterface(ctrl)
			mockRegistry.EXPECT().GetTenant(gomock.Any(), tenantID).Return(tc.tenant, nil)

			r := newTestRouter(mockRegistry)
			binding, err := r.Resolve(context.Background(), &types.TenantContext{TenantID: tenantID, IsolationModel: types.ModelBridge})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if binding.SchemaName != "tenant_tenant_1" {
				t.Errorf("SchemaName = %q", binding.SchemaName)
			}
		})
	}
}

func TestRouter_Resolve_IsolationGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A corrupted record whose binding points at another tenant must never
	// be served.
	tenant := &types.Tenant{
		ID: "tenant-1", IsolationModel: types.ModelBridge, Status: types.StatusActive,
		Binding: types.ResourceBinding{TenantID: "tenant-2", Model: types.ModelBridge, SchemaName: "tenant_tenant_2"},
	}

	mockRegistry := NewMockRegistryInterface(ctrl)
	mockRegistry.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(tenant, nil)

	r := newTestRouter(mockRegistry)
	binding, err := r.Resolve(context.Background(), &types.TenantContext{TenantID: "tenant-1", IsolationModel: types.ModelBridge})

	if !errors.Is(err, ErrIsolationViolation) {
		t.Fatalf("expected ErrIsolationViolation, got %v", err)
	}
	if binding != nil {
		t.Error("no binding may be returned on an isolation violation")
	}
}

func TestRouter_Resolve_SiloCaching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := "tenant-1"
	tctx := &types.TenantContext{TenantID: tenantID, IsolationModel: types.ModelSilo}

	mockRegistry := NewMockRegistryInterface(ctrl)
	// One registry read serves both resolves; the second is a cache hit.
	mockRegistry.EXPECT().GetTenant(gomock.Any(), tenantID).Return(siloTenant(tenantID), nil).Times(1)

	r := newTestRouter(mockRegistry)
	for i := 0; i < 2; i++ {
		binding, err := r.Resolve(context.Background(), tctx)
		if err != nil {
			t.Fatalf("resolve %d: unexpected error: %v", i, err)
		}
		if binding.DedicatedEndpoint == "" {
			t.Fatalf("resolve %d: missing dedicated endpoint", i)
		}
	}
}

func TestRouter_Resolve_SiloInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := "tenant-1"
	tctx := &types.TenantContext{TenantID: tenantID, IsolationModel: types.ModelSilo}

	mockRegistry := NewMockRegistryInterface(ctrl)
	gomock.InOrder(
		mockRegistry.EXPECT().GetTenant(gomock.Any(), tenantID).Return(siloTenant(tenantID), nil),
		// After invalidation the router must go back to the registry and
		// observe the suspension.
		mockRegistry.EXPECT().GetTenant(gomock.Any(), tenantID).DoAndReturn(func(context.Context, string) (*types.Tenant, error) {
			tenant := siloTenant(tenantID)
			tenant.Status = types.StatusSuspended
			return tenant, nil
		}),
		mockRegistry.EXPECT().GetTenant(gomock.Any(), tenantID).DoAndReturn(func(context.Context, string) (*types.Tenant, error) {
			tenant := siloTenant(tenantID)
			tenant.Status = types.StatusSuspended
			return tenant, nil
		}),
	)

	r := newTestRouter(mockRegistry)

	if _, err := r.Resolve(context.Background(), tctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Invalidate(tenantID)

	if _, err := r.Resolve(context.Background(), tctx); !errors.Is(err, ErrBindingNotReady) {
		t.Fatalf("expected ErrBindingNotReady after suspension, got %v", err)
	}

	// The suspension observation must also have dropped any cache state.
	if _, err := r.Resolve(context.Background(), tctx); !errors.Is(err, ErrBindingNotReady) {
		t.Fatalf("expected ErrBindingNotReady on repeat, got %v", err)
	}
}

func TestRouter_Resolve_UnknownModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newTestRouter(NewMockRegistryInterface(ctrl))
	_, err := r.Resolve(context.Background(), &types.TenantContext{TenantID: "tenant-1", IsolationModel: "hybrid"})
	if err == nil {
		t.Fatal("expected error for unknown isolation model")
	}
}

func TestSchemaNameFor(t *testing.T) {
	testCases := []struct {
		name     string
		tenantID string
		expected string
	}{
		{name: "uuid", tenantID: "0191e2a4-7d3e-7c1a-8f4b-2a9d3c1e5f60", expected: "tenant_0191e2a4_7d3e_7c1a_8f4b_2a9d3c1e5f60"},
		{name: "uppercase folded", tenantID: "ABC123", expected: "tenant_abc123"},
		{name: "injection attempt neutralized", tenantID: "x; DROP SCHEMA public", expected: "tenant_x__drop_schema_public"},
		{name: "quotes collapse", tenantID: `a"b'c`, expected: "tenant_a_b_c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SchemaNameFor(tc.tenantID); got != tc.expected {
				t.Errorf("SchemaNameFor(%q) = %q, want %q", tc.tenantID, got, tc.expected)
			}
		})
	}
}
