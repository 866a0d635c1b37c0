// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tier is the commercial plan of a tenant. It controls quota ceilings and is
// independent of the isolation model.
type Tier string

const (
	TierBasic      Tier = "basic"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

func (t Tier) Valid() bool {
	switch t {
	case TierBasic, TierPremium, TierEnterprise:
		return true
	}
	return false
}

// Resource kinds tracked by the quota enforcer.
const (
	ResourceProducts = "max_products"
	ResourceOrders   = "max_orders"
	ResourceUsers    = "max_users"
	ResourceAPICalls = "max_api_calls_per_hour"
	UnlimitedCeiling = int64(-1)
)

// DefaultLimits returns the per-tier quota ceilings. A negative ceiling means
// unlimited. Unknown tiers fall back to basic.
func DefaultLimits(t Tier) map[string]int64 {
	switch t {
	case TierPremium:
		return map[string]int64{
			ResourceProducts: 1000,
			ResourceOrders:   10000,
			ResourceUsers:    50,
			ResourceAPICalls: 10000,
		}
	case TierEnterprise:
		return map[string]int64{
			ResourceProducts: UnlimitedCeiling,
			ResourceOrders:   UnlimitedCeiling,
			ResourceUsers:    UnlimitedCeiling,
			ResourceAPICalls: 100000,
		}
	default:
		return map[string]int64{
			ResourceProducts: 100,
			ResourceOrders:   1000,
			ResourceUsers:    10,
			ResourceAPICalls: 1000,
		}
	}
}

// IsolationModel is the strength of resource separation for a tenant. It is
// immutable once provisioning begins.
type IsolationModel string

const (
	ModelPool   IsolationModel = "pool"
	ModelBridge IsolationModel = "bridge"
	ModelSilo   IsolationModel = "silo"
)

func (m IsolationModel) Valid() bool {
	switch m {
	case ModelPool, ModelBridge, ModelSilo:
		return true
	}
	return false
}

// Status is the lifecycle state of a tenant.
type Status string

const (
	StatusRequested    Status = "requested"
	StatusProvisioning Status = "provisioning"
	StatusActive       Status = "active"
	StatusSuspended    Status = "suspended"
	StatusFailed       Status = "failed"
	StatusDeleted      Status = "deleted"
)

// transitions is the closed lifecycle graph. Every tenant passes through
// provisioning; deleted is terminal.
var transitions = map[Status][]Status{
	StatusRequested:    {StatusProvisioning},
	StatusProvisioning: {StatusActive, StatusFailed},
	StatusActive:       {StatusSuspended, StatusDeleted},
	StatusSuspended:    {StatusActive, StatusDeleted},
	StatusFailed:       {StatusDeleted},
	StatusDeleted:      {},
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Tenant is the registry record for a customer organization. Reads return
// snapshots; all mutation goes through the registry's versioned update.
type Tenant struct {
	ID             string           `db:"id"`
	CompanyName    string           `db:"company_name"`
	AdminEmail     string           `db:"admin_email"`
	Tier           Tier             `db:"tier"`
	IsolationModel IsolationModel   `db:"isolation_model"`
	Status         Status           `db:"status"`
	Limits         map[string]int64 `db:"limits"`
	Binding        ResourceBinding  `db:"binding"`
	Version        int64            `db:"version"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

// ResourceBinding describes where a tenant's data lives and how access must
// be scoped. Fields are populated progressively during provisioning; which
// ones matter depends on Model.
type ResourceBinding struct {
	TenantID string         `json:"tenant_id"`
	Model    IsolationModel `json:"model"`

	// pool: downstream data access must carry this filter clause.
	SharedTable  string `json:"shared_table,omitempty"`
	TenantFilter string `json:"tenant_filter,omitempty"`

	// bridge
	SchemaName string `json:"schema_name,omitempty"`

	// silo
	DedicatedEndpoint string `json:"dedicated_endpoint,omitempty"`
	CredentialRef     string `json:"credential_ref,omitempty"`
	NetworkRef        string `json:"network_ref,omitempty"`
}

// Ready reports whether the binding carries everything its model needs.
func (b ResourceBinding) Ready() bool {
	switch b.Model {
	case ModelPool:
		return b.TenantFilter != ""
	case ModelBridge:
		return b.SchemaName != ""
	case ModelSilo:
		return b.DedicatedEndpoint != "" && b.CredentialRef != "" && b.NetworkRef != ""
	}
	return false
}

// TenantContext is the per-request tenant identity, passed explicitly through
// every call boundary. There is no ambient tenant state.
type TenantContext struct {
	TenantID       string
	Tier           Tier
	IsolationModel IsolationModel
	Subject        string
}

// ProvisioningJob is one in-flight lifecycle transition: an ordered step list
// plus a cursor, persisted so a restart resumes after the last completed step.
type ProvisioningJob struct {
	TenantID    string         `db:"tenant_id"`
	Model       IsolationModel `db:"model"`
	Steps       []string       `db:"steps"`
	CurrentStep int            `db:"current_step"`
	Attempts    int            `db:"attempts"`
	LastError   string         `db:"last_error"`
	Deadline    time.Time      `db:"deadline"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// Done reports whether every step has completed.
func (j *ProvisioningJob) Done() bool {
	return j.CurrentStep >= len(j.Steps)
}

// FailedStep names the step the cursor is parked on, or "" when none.
func (j *ProvisioningJob) FailedStep() string {
	if j.CurrentStep >= 0 && j.CurrentStep < len(j.Steps) {
		return j.Steps[j.CurrentStep]
	}
	return ""
}

// LifecycleEvent is delivered to the notification sink on every status
// transition.
type LifecycleEvent struct {
	TenantID  string    `json:"tenant_id"`
	From      Status    `json:"from_status"`
	To        Status    `json:"to_status"`
	Timestamp time.Time `json:"timestamp"`
}
