// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
)

var _ BackendInterface = (*CompositeBackend)(nil)

// CompositeBackend sends the shared-cluster steps to the local backend and
// everything else (the silo pipeline) to the external executor. Without an
// external executor configured, silo steps fail fatally through the local
// backend's default case.
type CompositeBackend struct {
	local  BackendInterface
	remote BackendInterface
}

func NewCompositeBackend(local, remote BackendInterface) *CompositeBackend {
	return &CompositeBackend{local: local, remote: remote}
}

func (b *CompositeBackend) ExecuteStep(ctx context.Context, step, tenantID string, params map[string]string) (*StepResult, error) {
	switch step {
	case StepAllocateCounterNamespace, StepCreateSchema, StepSeedSchema:
		return b.local.ExecuteStep(ctx, step, tenantID, params)
	default:
		if b.remote == nil {
			return b.local.ExecuteStep(ctx, step, tenantID, params)
		}
		return b.remote.ExecuteStep(ctx, step, tenantID, params)
	}
}
