// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

// LocalRegistryInterface is what the in-process backend needs from the
// registry: tier limits for counter allocation and the bridge schema DDL.
type LocalRegistryInterface interface {
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	EnsureCounters(ctx context.Context, tenantID string, limits map[string]int64) error
	CreateTenantSchema(ctx context.Context, schemaName string) error
	SeedTenantSchema(ctx context.Context, schemaName string) error
}

var _ BackendInterface = (*LocalBackend)(nil)

// LocalBackend executes the steps that need no external infrastructure:
// pool counter-namespace allocation and bridge schema creation/seeding, all
// against the shared cluster. Silo steps require the external executor.
type LocalBackend struct {
	registry LocalRegistryInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewLocalBackend(reg LocalRegistryInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *LocalBackend {
	return &LocalBackend{
		registry: reg,
		tracer:   tracer,
		logger:   logger,
	}
}

func (b *LocalBackend) ExecuteStep(ctx context.Context, step, tenantID string, params map[string]string) (*StepResult, error) {
	ctx, span := b.tracer.Start(ctx, "provisioning.LocalBackend.ExecuteStep")
	defer span.End()

	switch step {
	case StepAllocateCounterNamespace:
		tenant, err := b.registry.GetTenant(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStepRetryable, err)
		}
		if err := b.registry.EnsureCounters(ctx, tenantID, tenant.Limits); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStepRetryable, err)
		}
		return &StepResult{}, nil

	case StepCreateSchema:
		schema := params["schema_name"]
		if err := b.registry.CreateTenantSchema(ctx, schema); err != nil {
			return nil, classifySchemaErr(err)
		}
		return &StepResult{SchemaName: schema}, nil

	case StepSeedSchema:
		schema := params["schema_name"]
		if err := b.registry.SeedTenantSchema(ctx, schema); err != nil {
			return nil, classifySchemaErr(err)
		}
		return &StepResult{SchemaName: schema}, nil

	default:
		return nil, fmt.Errorf("%w: step %s requires the external provisioning backend", ErrStepFatal, step)
	}
}

func classifySchemaErr(err error) error {
	// A malformed identifier cannot fix itself on retry.
	if errors.Is(err, registry.ErrInvalidSchemaName) {
		return fmt.Errorf("%w: %v", ErrStepFatal, err)
	}
	return fmt.Errorf("%w: %v", ErrStepRetryable, err)
}
