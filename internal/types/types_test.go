// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
)

func TestStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "requested to provisioning", from: StatusRequested, to: StatusProvisioning, allowed: true},
		{name: "provisioning to active", from: StatusProvisioning, to: StatusActive, allowed: true},
		{name: "provisioning to failed", from: StatusProvisioning, to: StatusFailed, allowed: true},
		{name: "active to suspended", from: StatusActive, to: StatusSuspended, allowed: true},
		{name: "suspended to active", from: StatusSuspended, to: StatusActive, allowed: true},
		{name: "active to deleted", from: StatusActive, to: StatusDeleted, allowed: true},
		{name: "suspended to deleted", from: StatusSuspended, to: StatusDeleted, allowed: true},
		{name: "failed to deleted", from: StatusFailed, to: StatusDeleted, allowed: true},
		{name: "requested skips provisioning", from: StatusRequested, to: StatusActive, allowed: false},
		{name: "requested to deleted", from: StatusRequested, to: StatusDeleted, allowed: false},
		{name: "failed to active", from: StatusFailed, to: StatusActive, allowed: false},
		{name: "deleted is terminal", from: StatusDeleted, to: StatusActive, allowed: false},
		{name: "deleted cannot reprovision", from: StatusDeleted, to: StatusProvisioning, allowed: false},
		{name: "active back to provisioning", from: StatusActive, to: StatusProvisioning, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransition(tc.to); got != tc.allowed {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}

func TestDefaultLimits(t *testing.T) {
	testCases := []struct {
		name     string
		tier     Tier
		expected map[string]int64
	}{
		{
			name: "basic",
			tier: TierBasic,
			expected: map[string]int64{
				ResourceProducts: 100,
				ResourceOrders:   1000,
				ResourceUsers:    10,
				ResourceAPICalls: 1000,
			},
		},
		{
			name: "premium",
			tier: TierPremium,
			expected: map[string]int64{
				ResourceProducts: 1000,
				ResourceOrders:   10000,
				ResourceUsers:    50,
				ResourceAPICalls: 10000,
			},
		},
		{
			name: "enterprise",
			tier: TierEnterprise,
			expected: map[string]int64{
				ResourceProducts: UnlimitedCeiling,
				ResourceOrders:   UnlimitedCeiling,
				ResourceUsers:    UnlimitedCeiling,
				ResourceAPICalls: 100000,
			},
		},
		{
			name: "unknown tier falls back to basic",
			tier: Tier("platinum"),
			expected: map[string]int64{
				ResourceProducts: 100,
				ResourceOrders:   1000,
				ResourceUsers:    10,
				ResourceAPICalls: 1000,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			limits := DefaultLimits(tc.tier)
			if len(limits) != len(tc.expected) {
				t.Fatalf("expected %d limits, got %d", len(tc.expected), len(limits))
			}
			for kind, ceiling := range tc.expected {
				if limits[kind] != ceiling {
					t.Errorf("limit %s = %d, want %d", kind, limits[kind], ceiling)
				}
			}
		})
	}
}

func TestResourceBinding_Ready(t *testing.T) {
	testCases := []struct {
		name    string
		binding ResourceBinding
		ready   bool
	}{
		{
			name:    "pool with filter",
			binding: ResourceBinding{Model: ModelPool, TenantFilter: "tenant_id = abc"},
			ready:   true,
		},
		{
			name:    "pool without filter",
			binding: ResourceBinding{Model: ModelPool},
			ready:   false,
		},
		{
			name:    "bridge with schema",
			binding: ResourceBinding{Model: ModelBridge, SchemaName: "tenant_abc"},
			ready:   true,
		},
		{
			name:    "bridge without schema",
			binding: ResourceBinding{Model: ModelBridge},
			ready:   false,
		},
		{
			name: "silo complete",
			binding: ResourceBinding{
				Model:             ModelSilo,
				DedicatedEndpoint: "db.tenant.example.com:5432",
				CredentialRef:     "vault://tenants/abc",
				NetworkRef:        "vpc-123",
			},
			ready: true,
		},
		{
			name: "silo missing network",
			binding: ResourceBinding{
				Model:             ModelSilo,
				DedicatedEndpoint: "db.tenant.example.com:5432",
				CredentialRef:     "vault://tenants/abc",
			},
			ready: false,
		},
		{
			name:    "no model",
			binding: ResourceBinding{},
			ready:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.binding.Ready(); got != tc.ready {
				t.Errorf("Ready() = %v, want %v", got, tc.ready)
			}
		})
	}
}

func TestProvisioningJob_Cursor(t *testing.T) {
	job := &ProvisioningJob{
		Steps: []string{"allocate_counter_namespace", "create_schema", "seed_schema"},
	}

	if job.Done() {
		t.Error("fresh job must not be done")
	}
	if got := job.FailedStep(); got != "allocate_counter_namespace" {
		t.Errorf("FailedStep() = %q, want first step", got)
	}

	job.CurrentStep = 2
	if got := job.FailedStep(); got != "seed_schema" {
		t.Errorf("FailedStep() = %q, want last step", got)
	}

	job.CurrentStep = 3
	if !job.Done() {
		t.Error("job with cursor past the last step must be done")
	}
	if got := job.FailedStep(); got != "" {
		t.Errorf("FailedStep() on done job = %q, want empty", got)
	}
}
