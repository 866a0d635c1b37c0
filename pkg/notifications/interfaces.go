// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	"github.com/canonical/tenant-isolation-service/internal/types"
)

// SinkInterface receives a lifecycle event for every tenant status
// transition. Delivery is best effort; a sink failure never blocks or undoes
// the transition that produced the event.
type SinkInterface interface {
	Emit(ctx context.Context, event types.LifecycleEvent)
}
