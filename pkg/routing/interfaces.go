// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"context"

	"github.com/canonical/tenant-isolation-service/internal/types"
)

// RegistryInterface is the subset of the tenant registry the router needs.
type RegistryInterface interface {
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
}

// RouterInterface resolves a tenant context to the concrete resource its
// data lives in.
type RouterInterface interface {
	Resolve(ctx context.Context, tc *types.TenantContext) (*types.ResourceBinding, error)
}
