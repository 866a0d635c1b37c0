// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantctx

import (
	"context"

	"github.com/canonical/tenant-isolation-service/internal/types"
)

// RegistryInterface is the subset of the tenant registry the resolver needs.
type RegistryInterface interface {
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
}

// ResolverInterface turns verified identity claims into a TenantContext.
type ResolverInterface interface {
	Resolve(ctx context.Context, claims Claims) (*types.TenantContext, error)
	ResolveForStatus(ctx context.Context, claims Claims) (*types.TenantContext, error)
}
