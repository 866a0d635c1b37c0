// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"github.com/canonical/tenant-isolation-service/internal/types"
)

// Step names, shared with the provisioning backend contract.
const (
	StepAllocateCounterNamespace = "allocate_counter_namespace"
	StepCreateSchema             = "create_schema"
	StepSeedSchema               = "seed_schema"
	StepAllocateNetwork          = "allocate_network"
	StepAllocateDatabase         = "allocate_database"
	StepAllocateCompute          = "allocate_compute"
	StepAllocateGateway          = "allocate_gateway"
	StepUpdateRouting            = "update_routing"
	StepNotifyComplete           = "notify_complete"
)

// Plan returns the ordered step sequence for an isolation model. The set of
// models is closed; callers have validated the model before provisioning
// starts.
func Plan(model types.IsolationModel) []string {
	switch model {
	case types.ModelPool:
		return []string{
			StepAllocateCounterNamespace,
		}
	case types.ModelBridge:
		return []string{
			StepAllocateCounterNamespace,
			StepCreateSchema,
			StepSeedSchema,
		}
	case types.ModelSilo:
		return []string{
			StepAllocateCounterNamespace,
			StepAllocateNetwork,
			StepAllocateDatabase,
			StepAllocateCompute,
			StepAllocateGateway,
			StepUpdateRouting,
			StepNotifyComplete,
		}
	}
	return nil
}
