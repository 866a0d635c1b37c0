// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"

	"github.com/canonical/tenant-isolation-service/internal/types"
)

// CounterStoreInterface is the atomic usage-counter storage owned by the
// enforcer. CheckAndIncrement must be a single atomic check-and-update.
type CounterStoreInterface interface {
	EnsureCounters(ctx context.Context, tenantID string, limits map[string]int64) error
	CheckAndIncrement(ctx context.Context, tenantID, kind string, delta int64) error
	ReleaseCounter(ctx context.Context, tenantID, kind string, delta int64) error
	SetCeilings(ctx context.Context, tenantID string, limits map[string]int64) error
}

// EnforcerInterface authorizes mutating operations against tier limits.
type EnforcerInterface interface {
	Authorize(ctx context.Context, tenantID, kind string, delta int64) error
	Release(ctx context.Context, tenantID, kind string, delta int64) error
	ApplyTier(ctx context.Context, tenantID string, tier types.Tier) error
}
