// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
)

func TestCreateTenantSchema_RejectsInvalidNames(t *testing.T) {
	r := NewRegistry(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	// Validation happens before any database access, a nil client is safe
	// for the rejection paths.
	invalid := []string{
		"",
		"public",
		"tenant_",
		"tenant_ABC",
		"tenant_a-b",
		"tenant_a.b",
		`tenant_a"b`,
		"tenant_a; DROP SCHEMA public",
		"other_abc123",
	}

	for _, name := range invalid {
		if err := r.CreateTenantSchema(context.Background(), name); !errors.Is(err, ErrInvalidSchemaName) {
			t.Errorf("CreateTenantSchema(%q) = %v, want ErrInvalidSchemaName", name, err)
		}
		if err := r.SeedTenantSchema(context.Background(), name); !errors.Is(err, ErrInvalidSchemaName) {
			t.Errorf("SeedTenantSchema(%q) = %v, want ErrInvalidSchemaName", name, err)
		}
	}
}
