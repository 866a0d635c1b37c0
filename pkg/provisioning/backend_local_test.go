// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

type localRegistryFake struct {
	tenant        *types.Tenant
	tenantErr     error
	countersErr   error
	schemaErr     error
	counterLimits map[string]int64
	schemas       []string
}

func (f *localRegistryFake) GetTenant(context.Context, string) (*types.Tenant, error) {
	return f.tenant, f.tenantErr
}

func (f *localRegistryFake) EnsureCounters(_ context.Context, _ string, limits map[string]int64) error {
	if f.countersErr != nil {
		return f.countersErr
	}
	f.counterLimits = limits
	return nil
}

func (f *localRegistryFake) CreateTenantSchema(_ context.Context, schema string) error {
	if f.schemaErr != nil {
		return f.schemaErr
	}
	f.schemas = append(f.schemas, schema)
	return nil
}

func (f *localRegistryFake) SeedTenantSchema(_ context.Context, schema string) error {
	return f.schemaErr
}

func newTestLocalBackend(reg LocalRegistryInterface) *LocalBackend {
	return NewLocalBackend(reg, tracing.NewNoopTracer(), logging.NewNoopLogger())
}

func TestLocalBackend_AllocateCounterNamespace(t *testing.T) {
	limits := types.DefaultLimits(types.TierBasic)
	fake := &localRegistryFake{
		tenant: &types.Tenant{ID: "tenant-1", Tier: types.TierBasic, Limits: limits},
	}

	b := newTestLocalBackend(fake)
	result, err := b.ExecuteStep(context.Background(), StepAllocateCounterNamespace, "tenant-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *result != (StepResult{}) {
		t.Errorf("counter allocation must not produce binding fragments, got %+v", result)
	}
	if len(fake.counterLimits) != len(limits) {
		t.Errorf("counters seeded with %d limits, want %d", len(fake.counterLimits), len(limits))
	}
}

func TestLocalBackend_CreateSchema(t *testing.T) {
	fake := &localRegistryFake{}
	b := newTestLocalBackend(fake)

	result, err := b.ExecuteStep(context.Background(), StepCreateSchema, "tenant-1", map[string]string{"schema_name": "tenant_tenant_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SchemaName != "tenant_tenant_1" {
		t.Errorf("SchemaName = %q", result.SchemaName)
	}
	if len(fake.schemas) != 1 || fake.schemas[0] != "tenant_tenant_1" {
		t.Errorf("schemas created = %v", fake.schemas)
	}
}

func TestLocalBackend_ErrorClassification(t *testing.T) {
	testCases := []struct {
		name        string
		fake        *localRegistryFake
		step        string
		expectedErr error
	}{
		{
			name:        "transient registry failure retries",
			fake:        &localRegistryFake{tenantErr: errors.New("connection refused")},
			step:        StepAllocateCounterNamespace,
			expectedErr: ErrStepRetryable,
		},
		{
			name:        "transient DDL failure retries",
			fake:        &localRegistryFake{schemaErr: errors.New("deadlock detected")},
			step:        StepCreateSchema,
			expectedErr: ErrStepRetryable,
		},
		{
			name:        "invalid schema name is fatal",
			fake:        &localRegistryFake{schemaErr: registry.ErrInvalidSchemaName},
			step:        StepCreateSchema,
			expectedErr: ErrStepFatal,
		},
		{
			name:        "silo step needs the external backend",
			fake:        &localRegistryFake{},
			step:        StepAllocateDatabase,
			expectedErr: ErrStepFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestLocalBackend(tc.fake)
			_, err := b.ExecuteStep(context.Background(), tc.step, "tenant-1", map[string]string{"schema_name": "tenant_tenant_1"})
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestCompositeBackend_Routing(t *testing.T) {
	local := newScriptedBackend()
	remote := newScriptedBackend()
	b := NewCompositeBackend(local, remote)

	ctx := context.Background()
	for _, step := range Plan(types.ModelBridge) {
		if _, err := b.ExecuteStep(ctx, step, "tenant-1", nil); err != nil {
			t.Fatalf("step %s: %v", step, err)
		}
	}
	for _, step := range []string{StepAllocateNetwork, StepAllocateDatabase} {
		if _, err := b.ExecuteStep(ctx, step, "tenant-1", nil); err != nil {
			t.Fatalf("step %s: %v", step, err)
		}
	}

	if len(local.calls) != 3 {
		t.Errorf("local calls = %v, want the bridge steps", local.calls)
	}
	if len(remote.calls) != 2 {
		t.Errorf("remote calls = %v, want the silo steps", remote.calls)
	}
}
