// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// RegistryTimeout bounds request-path registry lookups; on expiry the
	// request is denied (fail closed).
	RegistryTimeout time.Duration `envconfig:"registry_timeout" default:"2s"`

	ProvisioningBackendURL     string        `envconfig:"provisioning_backend_url"`
	ProvisioningWorkerEnabled  bool          `envconfig:"provisioning_worker_enabled" default:"true"`
	ProvisioningStepTimeout    time.Duration `envconfig:"provisioning_step_timeout" default:"5m"`
	ProvisioningJobTimeout     time.Duration `envconfig:"provisioning_job_timeout" default:"30m"`
	ProvisioningMaxAttempts    int           `envconfig:"provisioning_max_attempts" default:"5"`
	ProvisioningInitialBackoff time.Duration `envconfig:"provisioning_initial_backoff" default:"1s"`

	NotificationWebhookURL string `envconfig:"notification_webhook_url"`
}
